package ocbuild

import (
	"context"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
	"github.com/outofforest/ocbuild/pkg/image"
	"github.com/outofforest/ocbuild/pkg/kext"
	"github.com/outofforest/ocbuild/pkg/plist"
	"github.com/outofforest/ocbuild/pkg/release"
	"github.com/outofforest/ocbuild/pkg/settings"
	"github.com/outofforest/ocbuild/pkg/tasks"
	"github.com/outofforest/ocbuild/pkg/tree"
)

// Build builds the complete OpenCore tree: files, config.plist and optionally the EFI image.
func Build(ctx context.Context, config Config) error {
	kexts := resolveKexts(ctx, config)

	if err := buildTree(ctx, config, kexts); err != nil {
		return err
	}
	if _, err := writeConfig(ctx, config, kexts); err != nil {
		return err
	}
	if err := Normalize(ctx, config); err != nil {
		return err
	}
	if config.Image.Path == "" {
		return nil
	}
	return CreateImage(ctx, config)
}

// BuildTree installs bootloader, binary data and kexts into the output directory.
func BuildTree(ctx context.Context, config Config) error {
	return buildTree(ctx, config, resolveKexts(ctx, config))
}

// WriteConfig generates config.plist inside the output tree and returns its path.
func WriteConfig(ctx context.Context, config Config) (string, error) {
	return writeConfig(ctx, config, resolveKexts(ctx, config))
}

// Normalize fixes permissions and removes garbage from the output tree.
func Normalize(ctx context.Context, config Config) error {
	return tasks.Normalize(ctx, config.Output)
}

// CreateImage packs the output tree into FAT32 image.
func CreateImage(ctx context.Context, config Config) error {
	if config.Image.Path == "" {
		return errors.New("image path is not set")
	}
	return image.Create(ctx, config.Output, config.Image.Path, config.Image.Size)
}

// Settings returns the final OpenCore configuration for the kexts.
func Settings(config Config, kexts []kext.Descriptor) (settings.Dict, error) {
	opts := []settings.Option{kext.KernelHook(kexts, config.Patches)}
	if config.Strict {
		opts = append(opts, settings.Strict())
	}

	res, err := settings.Merge(settings.Defaults(), config.Settings, opts...)
	if err != nil {
		return nil, err
	}
	if config.Strict {
		if err := settings.Validate(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func resolveKexts(ctx context.Context, config Config) []kext.Descriptor {
	cpuCount := config.CPUCount
	if cpuCount <= 0 {
		cpuCount = runtime.NumCPU()
	}
	logger.Get(ctx).Debug("Resolving kexts", zap.Int("cpuCount", cpuCount))
	return kext.Resolve(config.Kexts, cpuCount)
}

func buildTree(ctx context.Context, config Config, kexts []kext.Descriptor) error {
	logger.Get(ctx).Info("Building tree", zap.String("output", config.Output),
		zap.String("bootloader", config.Bootloader.Version))

	return tree.Build(ctx, release.New(ctx, config.Release), tree.Config{
		Root:          config.Output,
		Bootloader:    config.Bootloader,
		Kexts:         kexts,
		BinaryData:    config.BinaryData,
		ValidatorPath: config.ValidatorPath,
		Variant:       release.VariantFor(config.Debug),
	})
}

func writeConfig(ctx context.Context, config Config, kexts []kext.Descriptor) (string, error) {
	version, err := semver.NewVersion(config.Bootloader.Version)
	if err != nil {
		return "", errors.Wrapf(err, "invalid bootloader version %q", config.Bootloader.Version)
	}

	res, err := Settings(config, kexts)
	if err != nil {
		return "", err
	}

	return plist.Write(ctx, res, tree.OCDir(config.Output), plist.Config{
		Version:       version,
		Normalize:     config.Normalize,
		ValidatorPath: config.ValidatorPath,
	})
}
