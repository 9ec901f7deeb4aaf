package tasks

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/pkg/xattr"
	"go.uber.org/zap"

	"github.com/outofforest/logger"
)

const (
	dsStore  = ".DS_Store"
	dirPerm  = 0o755
	filePerm = 0o644
)

// Normalize removes macOS marker files, sets permissions and clears extended attributes in the tree.
func Normalize(ctx context.Context, dir string) error {
	log := logger.Get(ctx)
	log.Info("Normalizing files", zap.String("dir", dir))

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			return nil
		case d.IsDir():
			if err := os.Chmod(path, dirPerm); err != nil {
				return errors.WithStack(err)
			}
		case d.Name() == dsStore:
			log.Debug("Removing marker file", zap.String("path", path))
			return errors.WithStack(os.Remove(path))
		case d.Type().IsRegular():
			if err := os.Chmod(path, filePerm); err != nil {
				return errors.WithStack(err)
			}
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return err
	}

	clearAttributes(ctx, paths)
	return nil
}

func clearAttributes(ctx context.Context, paths []string) {
	log := logger.Get(ctx)

	var failures int
	for _, path := range paths {
		if err := clearPathAttributes(path); err != nil {
			failures++
			log.Debug("Clearing extended attributes failed", zap.String("path", path), zap.Error(err))
		}
	}
	if failures > 0 {
		log.Warn("Extended attributes were not cleared on some paths", zap.Int("count", failures))
	}
}

func clearPathAttributes(path string) error {
	names, err := xattr.LList(path)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, name := range names {
		if err := xattr.LRemove(path, name); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
