package image

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/diskfs/go-diskfs"
	"github.com/ridge/must"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/ocbuild/pkg/test"
)

func TestCreate(t *testing.T) {
	const size = 64 * 1024 * 1024

	src := t.TempDir()
	must.OK(os.MkdirAll(filepath.Join(src, "EFI", "OC", "Kexts"), 0o755))
	must.OK(os.MkdirAll(filepath.Join(src, "EFI", "BOOT"), 0o755))
	must.OK(os.WriteFile(filepath.Join(src, "EFI", "OC", "config.plist"), []byte("<plist/>"), 0o644))
	must.OK(os.WriteFile(filepath.Join(src, "EFI", "BOOT", "BOOTx64.efi"), []byte("boot"), 0o644))

	imagePath := filepath.Join(t.TempDir(), "out", "efi.img")

	require.NoError(t, Create(test.Context(t), src, imagePath, size))

	info, err := os.Stat(imagePath)
	require.NoError(t, err)
	require.EqualValues(t, size, info.Size())

	disk, err := diskfs.Open(imagePath)
	require.NoError(t, err)

	efiFS, err := disk.GetFilesystem(0)
	require.NoError(t, err)

	f, err := efiFS.OpenFile("/EFI/OC/config.plist", os.O_RDONLY)
	require.NoError(t, err)
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "<plist/>", string(content))
}

func TestCreateMissingSource(t *testing.T) {
	err := Create(test.Context(t), filepath.Join(t.TempDir(), "missing"),
		filepath.Join(t.TempDir(), "efi.img"), 64*1024*1024)
	require.Error(t, err)
}
