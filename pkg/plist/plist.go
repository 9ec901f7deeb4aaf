package plist

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"howett.net/plist"

	"github.com/outofforest/libexec"
	"github.com/outofforest/logger"
	"github.com/outofforest/ocbuild/pkg/settings"
)

// FileName is the name of the generated configuration file.
const FileName = "config.plist"

// ValidatorMinVersion is the bootloader version after which ocvalidate understands the configuration.
var ValidatorMinVersion = semver.MustParse("0.6.5")

// Format is the serialization format of the property list.
type Format int

// Formats.
const (
	XML    Format = plist.XMLFormat
	Binary Format = plist.BinaryFormat
)

// Config configures the writer.
type Config struct {
	// Version is the bootloader version, validator runs only if it is greater than ValidatorMinVersion.
	Version *semver.Version
	// Format defaults to XML.
	Format Format
	// Normalize reencodes the file with plutil if it is available.
	Normalize bool
	// ValidatorPath is the path to ocvalidate binary. Empty value disables validation.
	ValidatorPath string
}

// Write stores configuration in the config.plist file inside dir and returns its path.
func Write(ctx context.Context, config settings.Dict, dir string, writerConfig Config) (string, error) {
	log := logger.Get(ctx)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.WithStack(err)
	}

	path := filepath.Join(dir, FileName)
	log.Info("Writing configuration", zap.String("path", path))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer f.Close()

	if err := Encode(f, config, writerConfig.Format); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.WithStack(err)
	}

	if writerConfig.Normalize {
		normalize(ctx, path)
	}
	if writerConfig.ValidatorPath != "" && writerConfig.Version != nil &&
		writerConfig.Version.GreaterThan(ValidatorMinVersion) {
		validate(ctx, writerConfig.ValidatorPath, path)
	}

	return path, nil
}

// Encode serializes configuration. Dictionary keys are stored in lexicographic order.
func Encode(w io.Writer, config settings.Dict, format Format) error {
	if format == 0 {
		format = XML
	}
	encoder := plist.NewEncoderForFormat(w, int(format))
	if format == XML {
		encoder.Indent("\t")
	}
	value, err := toPlist(config)
	if err != nil {
		return errors.Wrap(err, "converting configuration failed")
	}
	return errors.WithStack(encoder.Encode(value))
}

// Read loads configuration from property list file.
func Read(path string) (settings.Dict, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var raw map[string]interface{}
	if _, err := plist.Unmarshal(content, &raw); err != nil {
		return nil, errors.Wrapf(err, "decoding %s failed", path)
	}

	v, err := fromPlist(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s failed", path)
	}
	return v.(settings.Dict), nil
}

func normalize(ctx context.Context, path string) {
	log := logger.Get(ctx)

	if _, err := exec.LookPath("plutil"); err != nil {
		log.Debug("plutil not available, skipping normalization")
		return
	}
	if out, err := run(ctx, exec.Command("plutil", "-convert", "xml1", path)); err != nil {
		log.Warn("Normalizing configuration failed", zap.Error(err), zap.String("output", out))
	}
}

func validate(ctx context.Context, validatorPath, path string) {
	log := logger.Get(ctx)

	if _, err := os.Stat(validatorPath); err != nil {
		log.Warn("Validator not available", zap.String("validator", validatorPath), zap.Error(err))
		return
	}

	out, err := run(ctx, exec.Command(validatorPath, path))
	if err != nil {
		log.Warn("Configuration validation reported problems", zap.Error(err), zap.String("output", out))
		return
	}
	log.Info("Configuration validated", zap.String("output", out))
}

func run(ctx context.Context, cmd *exec.Cmd) (string, error) {
	out := &bytes.Buffer{}
	cmd.Stdout = out
	cmd.Stderr = out
	err := libexec.Exec(ctx, cmd)
	return out.String(), err
}
