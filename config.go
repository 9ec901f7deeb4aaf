package ocbuild

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/outofforest/ocbuild/pkg/release"
	"github.com/outofforest/ocbuild/pkg/settings"
	"github.com/outofforest/ocbuild/pkg/tree"
)

// DefaultBootloaderVersion is the OpenCore release installed if nothing else is requested.
const DefaultBootloaderVersion = "0.7.3"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Output: "Volumes/EFI",
		Bootloader: tree.Bootloader{
			Version: DefaultBootloaderVersion,
		},
		Settings: settings.Dict{},
		BinaryData: tree.BinaryData{
			Dir:    "files/OcBinaryData",
			Update: true,
		},
		Release:       release.DefaultConfig(),
		ValidatorPath: "bin/ocvalidate",
		Normalize:     true,
	}
}

// LoadManifest loads configuration from YAML file. Values missing in the file are taken from DefaultConfig.
func LoadManifest(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	defer f.Close()

	config := DefaultConfig()
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrapf(err, "decoding manifest %s failed", path)
	}
	return config, nil
}
