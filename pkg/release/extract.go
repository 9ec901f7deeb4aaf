package release

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/archive"
	"github.com/outofforest/logger"
)

// Artifacts shipped together with kexts which must not land on EFI partition.
var unwanted = []glob.Glob{
	glob.MustCompile("*.app"),
	glob.MustCompile("*.dSYM"),
	glob.MustCompile("*.dsl"),
}

// extract inflates archive into staging directory next to dir and then moves its top-level entries into dir,
// replacing the existing ones. Inflater never truncates files so entries must not be written over stale content.
func extract(origin string, content []byte, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WithStack(err)
	}

	staging, err := os.MkdirTemp(filepath.Dir(filepath.Clean(dir)), ".extract-")
	if err != nil {
		return errors.WithStack(err)
	}
	defer os.RemoveAll(staging) //nolint:errcheck

	if err := archive.InflateZip(bytes.NewReader(content), staging); err != nil {
		return errors.Wrapf(ErrArchiveCorrupt, "extracting archive %q failed: %s", origin, err)
	}

	entries, err := os.ReadDir(staging)
	if err != nil {
		return errors.WithStack(err)
	}
	for _, e := range entries {
		target := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(target); err != nil {
			return errors.WithStack(err)
		}
		if err := os.Rename(filepath.Join(staging, e.Name()), target); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func cleanup(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.WithStack(err)
	}

	log := logger.Get(ctx)
	for _, e := range entries {
		for _, g := range unwanted {
			if !g.Match(e.Name()) {
				continue
			}
			log.Debug("Removing unwanted artifact", zap.String("name", e.Name()))
			if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
				return errors.WithStack(err)
			}
			break
		}
	}
	return nil
}
