package kext

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/ocbuild/pkg/settings"
)

func TestEntries(t *testing.T) {
	entries := Entries([]Descriptor{{Name: "Lilu"}, {Name: "WhateverGreen"}})
	require.Len(t, entries, 2)

	for i, name := range []string{"Lilu", "WhateverGreen"} {
		entry := entries[i].(settings.Dict)
		require.Equal(t, settings.String(name+".kext"), entry["BundlePath"])
		require.Equal(t, settings.String("Contents/MacOS/"+name), entry["ExecutablePath"])
		require.Equal(t, settings.String("Contents/Info.plist"), entry["PlistPath"])
		require.Equal(t, settings.Bool(true), entry["Enabled"])
	}
}

func TestEntryProperties(t *testing.T) {
	entry := Entry(Descriptor{
		Name: "VoodooPS2Controller",
		Properties: settings.Dict{
			"MinKernel": settings.String("20.0.0"),
			"Comment":   settings.String("keyboard"),
		},
	})
	require.Equal(t, settings.String("20.0.0"), entry["MinKernel"])
	require.Equal(t, settings.String("keyboard"), entry["Comment"])
	require.Equal(t, settings.String("VoodooPS2Controller.kext"), entry["BundlePath"])
}

func TestResolve(t *testing.T) {
	descriptors := []Descriptor{{Name: "Lilu", Repo: "acidanthera", Version: "1.5.6"}}

	require.Equal(t, descriptors, Resolve(descriptors, 8))
	require.Equal(t, descriptors, Resolve(descriptors, CPUThreshold))

	resolved := Resolve(descriptors, 16)
	require.Len(t, resolved, 2)
	require.Equal(t, MCEReporterDisabler, resolved[0].Name)
	require.Equal(t, "Lilu", resolved[1].Name)
	require.Len(t, descriptors, 1)

	entry := Entry(resolved[0])
	require.Equal(t, settings.String(""), entry["ExecutablePath"])
	require.Equal(t, settings.String(MCEReporterDisabler+".kext"), entry["BundlePath"])

	require.Equal(t, resolved, Resolve(resolved, 32))
}

func TestPatches(t *testing.T) {
	patches := Patches([]settings.Dict{
		{
			"Base":       settings.String("_early_random"),
			"Find":       settings.MustHex("00 74 23 48 8B"),
			"Identifier": settings.String("kernel"),
			"Limit":      settings.Integer(800),
			"MinKernel":  settings.String("20.4.0"),
			"Replace":    settings.MustHex("00 EB 23 48 8B"),
		},
	})
	require.Len(t, patches, 1)

	patch := patches[0].(settings.Dict)
	require.Len(t, patch, len(DefaultPatch()))
	require.Equal(t, settings.String("_early_random"), patch["Base"])
	require.Equal(t, settings.Integer(800), patch["Limit"])
	require.Equal(t, settings.Integer(1), patch["Count"])
	require.Equal(t, settings.Bool(true), patch["Enabled"])
	require.Equal(t, settings.Data{}, patch["Mask"])
	require.Equal(t, settings.MustHex("00EB23488B"), patch["Replace"])
}

func TestKernelHook(t *testing.T) {
	res, err := settings.Merge(settings.Defaults(), settings.Dict{
		"Kernel": settings.Dict{
			"Quirks": settings.Dict{"DisableLinkeditJettison": settings.Bool(true)},
		},
	}, KernelHook([]Descriptor{{Name: "Lilu"}}, nil))
	require.NoError(t, err)

	kernel := res.Dict("Kernel")
	require.Len(t, kernel["Add"], 1)
	require.Equal(t, settings.String("Lilu.kext"), kernel["Add"].(settings.Array)[0].(settings.Dict)["BundlePath"])
	require.Equal(t, settings.Array{}, kernel["Patch"])
	require.Equal(t, settings.Bool(true), kernel.Dict("Quirks")["DisableLinkeditJettison"])
}
