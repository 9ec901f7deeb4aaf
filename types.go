package ocbuild

import (
	"github.com/outofforest/ocbuild/pkg/kext"
	"github.com/outofforest/ocbuild/pkg/release"
	"github.com/outofforest/ocbuild/pkg/settings"
	"github.com/outofforest/ocbuild/pkg/tree"
)

// Config is the configuration of the OpenCore tree builder.
type Config struct {
	// Output is the root directory of the generated tree, usually the mount point of EFI partition.
	Output     string            `yaml:"output"`
	Debug      bool              `yaml:"debug"`
	Bootloader tree.Bootloader   `yaml:"bootloader"`
	Kexts      []kext.Descriptor `yaml:"kexts"`
	Patches    []settings.Dict   `yaml:"patches"`
	// Settings is the overlay merged into the default configuration.
	Settings   settings.Dict   `yaml:"settings"`
	BinaryData tree.BinaryData `yaml:"binaryData"`
	Release    release.Config  `yaml:"release"`
	// ValidatorPath is where ocvalidate is stored and executed from.
	ValidatorPath string `yaml:"validator"`
	// Normalize reencodes config.plist with plutil if it is available.
	Normalize bool `yaml:"normalize"`
	// Strict rejects settings having types different from the default ones.
	Strict bool `yaml:"strict"`
	// CPUCount overrides the number of logical processors of the target machine.
	CPUCount int         `yaml:"cpuCount"`
	Image    ImageConfig `yaml:"image"`
}

// ImageConfig defines EFI image to produce.
type ImageConfig struct {
	// Path of the image file. Empty value skips the image.
	Path string `yaml:"path"`
	Size int64  `yaml:"size"`
}
