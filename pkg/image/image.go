package image

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/diskfs/go-diskfs/backend/file"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/filesystem/fat32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
)

const (
	// DefaultSize is the size of the image used if none is provided.
	DefaultSize = 200 * 1024 * 1024

	// Label is the volume label of the created filesystem.
	Label = "EFI"
)

// Create creates FAT32 image containing the content of srcDir.
func Create(ctx context.Context, srcDir, imagePath string, size int64) error {
	if size == 0 {
		size = DefaultSize
	}

	logger.Get(ctx).Info("Building EFI image", zap.String("image", imagePath), zap.Int64("size", size))

	if err := os.MkdirAll(filepath.Dir(imagePath), 0o755); err != nil {
		return errors.WithStack(err)
	}
	if err := os.Remove(imagePath); err != nil && !os.IsNotExist(err) {
		return errors.WithStack(err)
	}

	b, err := file.CreateFromPath(imagePath, size)
	if err != nil {
		return errors.WithStack(err)
	}
	defer b.Close()

	efiFS, err := fat32.Create(b, size, 0, 0, Label)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return errors.WithStack(err)
		}
		if rel == "." {
			return nil
		}
		dst := path.Join("/", filepath.ToSlash(rel))

		switch {
		case d.IsDir():
			return errors.WithStack(efiFS.Mkdir(dst))
		case d.Type().IsRegular():
			return copyFile(efiFS, p, dst)
		default:
			return nil
		}
	}))
}

func copyFile(efiFS filesystem.FileSystem, src, dst string) error {
	inF, err := os.Open(src)
	if err != nil {
		return errors.WithStack(err)
	}
	defer inF.Close()

	outF, err := efiFS.OpenFile(dst, os.O_RDWR|os.O_TRUNC|os.O_CREATE)
	if err != nil {
		return errors.WithStack(err)
	}
	defer outF.Close()

	_, err = io.Copy(outF, inF)
	return errors.WithStack(err)
}
