package tree

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Destination files older than source by less than this are considered up to date.
const mtimeTolerance = time.Second

// copyTree copies directories and files recursively.
func copyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.WithStack(err)
	}

	for _, e := range entries {
		srcPath := filepath.Join(src, e.Name())
		dstPath := filepath.Join(dst, e.Name())

		info, err := os.Stat(srcPath)
		if err != nil {
			return errors.WithStack(err)
		}
		if info.IsDir() {
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		dstInfo, err := os.Stat(dstPath)
		switch {
		case err == nil:
			if info.ModTime().Sub(dstInfo.ModTime()) <= mtimeTolerance {
				continue
			}
		case !os.IsNotExist(err):
			return errors.WithStack(err)
		}

		if err := copyFile(srcPath, dstPath, info); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies file preserving its permissions and modification time.
func copyFile(src, dst string, info fs.FileInfo) error {
	srcF, err := os.Open(src)
	if err != nil {
		return errors.WithStack(err)
	}
	defer srcF.Close()

	dstF, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()|0o600)
	if err != nil {
		return errors.WithStack(err)
	}
	defer dstF.Close()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return errors.WithStack(err)
	}
	if err := dstF.Close(); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.Chtimes(dst, info.ModTime(), info.ModTime()))
}
