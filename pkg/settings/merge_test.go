package settings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func testOverlay() Dict {
	return Dict{
		"Kernel": Dict{
			"Quirks": Dict{
				"DisableLinkeditJettison": Bool(true),
				"SetApfsTrimTimeout":      Integer(9999999),
			},
		},
		"Misc": Dict{
			"Security": Dict{
				"PasswordHash": MustHex("01 02"),
			},
		},
		"UEFI": Dict{
			"Drivers": Array{
				Dict{"Path": String("OpenRuntime.efi"), "Enabled": Bool(true), "Arguments": String("")},
			},
		},
	}
}

func TestMergeOverlayWins(t *testing.T) {
	res, err := Merge(Defaults(), testOverlay())
	require.NoError(t, err)

	quirks := res.Dict("Kernel").Dict("Quirks")
	require.Equal(t, Bool(true), quirks["DisableLinkeditJettison"])
	require.Equal(t, Integer(9999999), quirks["SetApfsTrimTimeout"])
	require.Equal(t, MustHex("0102"), res.Dict("Misc").Dict("Security")["PasswordHash"])
}

func TestMergePreservesBaseKeys(t *testing.T) {
	res, err := Merge(Defaults(), testOverlay())
	require.NoError(t, err)

	defaults := Defaults()
	require.Len(t, res, len(defaults))
	require.Equal(t, defaults["ACPI"], res["ACPI"])
	require.Equal(t, Bool(false), res.Dict("Kernel").Dict("Quirks")["XhciPortLimit"])
	require.Equal(t, defaults.Dict("Kernel")["Emulate"], res.Dict("Kernel")["Emulate"])
}

func TestMergeIdempotent(t *testing.T) {
	once, err := Merge(Defaults(), testOverlay())
	require.NoError(t, err)
	twice, err := Merge(once, testOverlay())
	require.NoError(t, err)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("merge is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestMergeReplacesArrays(t *testing.T) {
	base := Dict{"Drivers": Array{String("a.efi"), String("b.efi")}}
	overlay := Dict{"Drivers": Array{String("c.efi")}}

	res, err := Merge(base, overlay)
	require.NoError(t, err)
	require.Equal(t, Array{String("c.efi")}, res["Drivers"])
}

func TestMergeReplacesDictWithScalar(t *testing.T) {
	base := Dict{"Section": Dict{"Key": Bool(true)}}
	overlay := Dict{"Section": String("flat")}

	res, err := Merge(base, overlay)
	require.NoError(t, err)
	require.Equal(t, String("flat"), res["Section"])
}

func TestMergeReplacesScalarWithDict(t *testing.T) {
	base := Dict{"Section": Integer(1)}
	overlay := Dict{"Section": Dict{"Key": Bool(true)}}

	res, err := Merge(base, overlay)
	require.NoError(t, err)
	require.Equal(t, Dict{"Key": Bool(true)}, res["Section"])
}

func TestMergeInsertsMissingKeys(t *testing.T) {
	res, err := Merge(Dict{}, Dict{"A": Dict{"B": String("c")}})
	require.NoError(t, err)
	require.Equal(t, Dict{"A": Dict{"B": String("c")}}, res)
}

func TestMergeDoesNotModifyInputs(t *testing.T) {
	base := Defaults()
	overlay := testOverlay()

	res, err := Merge(base, overlay)
	require.NoError(t, err)

	res.Dict("Kernel").Dict("Quirks")["XhciPortLimit"] = Bool(true)
	res.Dict("UEFI")["Drivers"].(Array)[0].(Dict)["Enabled"] = Bool(false)

	require.Equal(t, Defaults(), base)
	require.Equal(t, testOverlay(), overlay)
}

func TestMergeStrict(t *testing.T) {
	_, err := Merge(Defaults(), Dict{"Misc": Dict{"Boot": Dict{"Timeout": String("5")}}}, Strict())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSchemaMismatch))
	require.Contains(t, err.Error(), "Misc.Boot.Timeout")

	_, err = Merge(Defaults(), Dict{"Misc": String("flat")}, Strict())
	require.True(t, errors.Is(err, ErrSchemaMismatch))

	res, err := Merge(Defaults(), Dict{"Misc": Dict{"Boot": Dict{"Timeout": Integer(0), "Custom": Bool(true)}}},
		Strict())
	require.NoError(t, err)
	require.Equal(t, Integer(0), res.Dict("Misc").Dict("Boot")["Timeout"])
	require.Equal(t, Bool(true), res.Dict("Misc").Dict("Boot")["Custom"])
}

func TestMergeStrictTreatsUnsetBaseAsMissing(t *testing.T) {
	base := Dict{"Misc": Dict{"Boot": Dict{"Timeout": nil, "ShowPicker": Bool(true)}}}

	res, err := Merge(base, Dict{"Misc": Dict{"Boot": Dict{"Timeout": Integer(5)}}}, Strict())
	require.NoError(t, err)
	require.Equal(t, Integer(5), res.Dict("Misc").Dict("Boot")["Timeout"])
	require.Equal(t, Bool(true), res.Dict("Misc").Dict("Boot")["ShowPicker"])
}

func TestMergeStrictRejectsUnsetOverlay(t *testing.T) {
	_, err := Merge(Defaults(), Dict{"Misc": Dict{"Boot": Dict{"Timeout": nil}}}, Strict())
	require.True(t, errors.Is(err, ErrSchemaMismatch))
	require.Contains(t, err.Error(), "got nil")

	res, err := Merge(Dict{"Misc": nil}, Dict{"Misc": Dict{"Boot": Dict{}}}, Strict())
	require.NoError(t, err)
	require.Equal(t, Dict{}, res.Dict("Misc").Dict("Boot"))
}

func TestMergeSectionHook(t *testing.T) {
	var calls int
	hook := WithSectionHook("Kernel", func(section Dict) Dict {
		calls++
		section["Add"] = Array{Dict{"BundlePath": String("Lilu.kext")}}
		return section
	})

	overlay := Dict{"Kernel": Dict{"Add": Array{}, "Quirks": Dict{"XhciPortLimit": Bool(true)}}}
	res, err := Merge(Defaults(), overlay, hook)
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	require.Equal(t, Array{Dict{"BundlePath": String("Lilu.kext")}}, res.Dict("Kernel")["Add"])
	require.Equal(t, Bool(true), res.Dict("Kernel").Dict("Quirks")["XhciPortLimit"])

	// Overlay passed by the caller is left untouched.
	require.Equal(t, Array{}, overlay.Dict("Kernel")["Add"])

	res, err = Merge(Defaults(), Dict{}, hook)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Len(t, res.Dict("Kernel")["Add"], 1)
}

func TestHex(t *testing.T) {
	d, err := Hex("70 69 6B\n65 72 61 00")
	require.NoError(t, err)
	require.Equal(t, Data("pikera\x00"), d)

	d, err = Hex("")
	require.NoError(t, err)
	require.Equal(t, Data{}, d)

	_, err = Hex("0")
	require.Error(t, err)
	_, err = Hex("zz")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	config := Defaults()
	require.NoError(t, Validate(config))

	config.Dict("NVRAM")["Add"] = Dict{"4D1EDE05-38C7-4A6A-9CC6-4BCCA8B38C14": Dict{}}
	require.NoError(t, Validate(config))

	config.Dict("NVRAM")["Delete"] = Dict{"not-a-guid": Array{}}
	require.True(t, errors.Is(Validate(config), ErrSchemaMismatch))

	config = Defaults()
	config.Dict("Kernel")["Add"] = Array{Dict{"BundlePath": String("")}}
	require.True(t, errors.Is(Validate(config), ErrSchemaMismatch))
}
