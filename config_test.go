package ocbuild

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ridge/must"
	"github.com/stretchr/testify/require"

	"github.com/outofforest/ocbuild/pkg/kext"
	"github.com/outofforest/ocbuild/pkg/plist"
	"github.com/outofforest/ocbuild/pkg/settings"
	"github.com/outofforest/ocbuild/pkg/test"
	"github.com/outofforest/ocbuild/pkg/tree"
)

func writeManifest(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	must.OK(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadExampleManifest(t *testing.T) {
	config, err := LoadManifest(filepath.Join("examples", "manifest.yaml"))
	require.NoError(t, err)

	require.Equal(t, "Volumes/EFI", config.Output)
	require.Equal(t, "0.7.3", config.Bootloader.Version)
	require.Equal(t, []string{"Lilu", "FeatureUnlock", "WhateverGreen"},
		[]string{config.Kexts[0].Name, config.Kexts[1].Name, config.Kexts[2].Name})
	require.Equal(t, tree.BinaryData{Dir: "files/OcBinaryData", Update: true}, config.BinaryData)
	require.Len(t, config.Patches, 2)
	require.Equal(t, settings.MustHex("00 74 23 48 8B"), config.Patches[0]["Find"])
	require.Equal(t, settings.Integer(800), config.Patches[0]["Limit"])
	require.Equal(t, settings.String("20.4.0"), config.Patches[1]["MinKernel"])

	require.Equal(t, settings.MustHex("01"),
		config.Settings.Dict("NVRAM").Dict("Add").Dict("4D1EDE05-38C7-4A6A-9CC6-4BCCA8B38C14")["UIScale"])
	require.Equal(t, settings.Integer(9999999), config.Settings.Dict("Kernel").Dict("Quirks")["SetApfsTrimTimeout"])

	config.Strict = true
	res, err := Settings(config, kext.Resolve(config.Kexts, 4))
	require.NoError(t, err)
	require.Len(t, res.Dict("Kernel")["Add"], 3)
	require.Equal(t, settings.String("_register_and_init_prng"),
		res.Dict("Kernel")["Patch"].(settings.Array)[1].(settings.Dict)["Base"])
	require.Equal(t, settings.Integer(1), res.Dict("Kernel")["Patch"].(settings.Array)[1].(settings.Dict)["Count"])
}

func TestLoadManifestKeepsDefaults(t *testing.T) {
	config, err := LoadManifest(writeManifest(t, `
output: /tmp/EFI
release:
  timeout: 30s
`))
	require.NoError(t, err)

	defaults := DefaultConfig()
	require.Equal(t, "/tmp/EFI", config.Output)
	require.Equal(t, 30*time.Second, config.Release.Timeout)
	require.Equal(t, defaults.Release.BaseURL, config.Release.BaseURL)
	require.Equal(t, defaults.Bootloader, config.Bootloader)
	require.Equal(t, defaults.ValidatorPath, config.ValidatorPath)
	require.True(t, config.BinaryData.Update)
}

func TestLoadManifestDisablesBinaryDataUpdate(t *testing.T) {
	config, err := LoadManifest(writeManifest(t, "binaryData:\n  update: false\n"))
	require.NoError(t, err)
	require.False(t, config.BinaryData.Update)
	require.Equal(t, DefaultConfig().BinaryData.Dir, config.BinaryData.Dir)
}

func TestLoadEmptyManifest(t *testing.T) {
	config, err := LoadManifest(writeManifest(t, ""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadManifestRejectsUnknownFields(t *testing.T) {
	_, err := LoadManifest(writeManifest(t, "outptu: /tmp/EFI\n"))
	require.Error(t, err)
}

func TestLoadManifestRejectsInvalidSettings(t *testing.T) {
	_, err := LoadManifest(writeManifest(t, `
settings:
  Misc:
    Boot:
      Timeout: 1.5
`))
	require.Error(t, err)
}

func TestPlistCommand(t *testing.T) {
	ctx := test.Context(t)
	output := filepath.Join(t.TempDir(), "EFI")

	cmd := NewCommand()
	cmd.SetArgs([]string{
		"plist",
		"--manifest", writeManifest(t, "bootloader:\n  version: 0.6.0\ncpuCount: 1\nnormalize: false\n"),
		"--output", output,
	})
	require.NoError(t, cmd.ExecuteContext(ctx))

	res, err := plist.Read(filepath.Join(output, "EFI", "OC", plist.FileName))
	require.NoError(t, err)
	require.Empty(t, res.Dict("Kernel")["Add"])
}
