package tree

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/libexec"
	"github.com/outofforest/logger"
	"github.com/outofforest/ocbuild/pkg/kext"
	"github.com/outofforest/ocbuild/pkg/release"
)

const (
	bootloaderRepo    = "acidanthera"
	bootloaderProject = "OpenCorePkg"
	bootloaderAsset   = "OpenCore"

	archDir       = "X64"
	validatorPath = "Utilities/ocvalidate/ocvalidate"
)

// Directories of the bootloader package not needed on EFI partition.
var obsoleteDirs = []string{"Docs", "IA32", "Utilities", archDir}

// updateCommand returns command fetching the latest revision of the binary data submodule.
var updateCommand = func() *exec.Cmd {
	return exec.Command("git", "submodule", "update", "--init", "--remote", "--merge")
}

// Installer installs release archive into directory.
type Installer interface {
	Install(ctx context.Context, source release.Source, dir string, variant release.Variant) error
}

// Bootloader defines OpenCore release to install.
type Bootloader struct {
	Version string `yaml:"version"`
	Hash    string `yaml:"hash"`
}

// BinaryData defines location of OcBinaryData checkout.
type BinaryData struct {
	// Dir is the directory containing Drivers and Resources subdirectories. Empty value skips the step.
	Dir string `yaml:"dir"`
	// Update runs git submodule update before files are copied.
	Update bool `yaml:"update"`
}

// Config is the configuration of the tree builder.
type Config struct {
	Root       string
	Bootloader Bootloader
	Kexts      []kext.Descriptor
	BinaryData BinaryData
	// ValidatorPath is the path ocvalidate is copied to. Empty value skips copying.
	ValidatorPath string
	Variant       release.Variant
}

// EFIDir returns path of the EFI directory inside the tree.
func EFIDir(root string) string {
	return filepath.Join(root, "EFI")
}

// OCDir returns path of the OpenCore directory inside the tree.
func OCDir(root string) string {
	return filepath.Join(EFIDir(root), "OC")
}

// KextsDir returns path of the kexts directory inside the tree.
func KextsDir(root string) string {
	return filepath.Join(OCDir(root), "Kexts")
}

// Build builds the OpenCore files structure. Existing tree is removed first.
func Build(ctx context.Context, installer Installer, config Config) error {
	if err := installBootloader(ctx, installer, config); err != nil {
		return err
	}
	if err := installBinaryData(ctx, config.BinaryData, OCDir(config.Root)); err != nil {
		return err
	}

	for _, k := range config.Kexts {
		if err := installer.Install(ctx, release.Source{
			Repo:    k.Repo,
			Project: k.Name,
			Asset:   k.Name,
			Version: k.Version,
			Hash:    k.Hash,
		}, KextsDir(config.Root), config.Variant); err != nil {
			return errors.Wrapf(err, "installing kext %q failed", k.Name)
		}
	}
	return nil
}

func installBootloader(ctx context.Context, installer Installer, config Config) error {
	log := logger.Get(ctx)

	if _, err := os.Stat(config.Root); err == nil {
		log.Info("Cleaning directory", zap.String("dir", config.Root))
		if err := os.RemoveAll(config.Root); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := installer.Install(ctx, release.Source{
		Repo:    bootloaderRepo,
		Project: bootloaderProject,
		Asset:   bootloaderAsset,
		Version: config.Bootloader.Version,
		Hash:    config.Bootloader.Hash,
	}, config.Root, config.Variant); err != nil {
		return errors.Wrap(err, "installing bootloader failed")
	}

	archEFIDir := filepath.Join(config.Root, archDir, "EFI")
	if _, err := os.Stat(archEFIDir); err != nil {
		return errors.Wrapf(err, "bootloader package doesn't contain %s", filepath.Join(archDir, "EFI"))
	}
	if err := copyTree(archEFIDir, EFIDir(config.Root)); err != nil {
		return err
	}

	if config.ValidatorPath != "" {
		if err := preserveValidator(ctx, filepath.Join(config.Root, validatorPath), config.ValidatorPath); err != nil {
			return err
		}
	}

	for _, dir := range obsoleteDirs {
		if err := os.RemoveAll(filepath.Join(config.Root, dir)); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(os.MkdirAll(KextsDir(config.Root), 0o755))
}

func preserveValidator(ctx context.Context, src, dst string) error {
	info, err := os.Stat(src)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		logger.Get(ctx).Warn("Bootloader package doesn't contain validator")
		return nil
	default:
		return errors.WithStack(err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.WithStack(err)
	}
	if err := copyFile(src, dst, info); err != nil {
		return err
	}
	return errors.WithStack(os.Chmod(dst, 0o755))
}

func installBinaryData(ctx context.Context, config BinaryData, ocDir string) error {
	log := logger.Get(ctx)

	if config.Dir == "" {
		log.Info("Binary data not configured, skipping")
		return nil
	}

	if config.Update {
		log.Info("Updating binary data")
		if err := libexec.Exec(ctx, updateCommand()); err != nil {
			log.Warn("Updating binary data failed", zap.Error(err))
		}
	}

	log.Info("Copying binary data", zap.String("dir", config.Dir))
	for _, dir := range []string{"Drivers", "Resources"} {
		if err := copyTree(filepath.Join(config.Dir, dir), filepath.Join(ocDir, dir)); err != nil {
			return err
		}
	}
	return nil
}
