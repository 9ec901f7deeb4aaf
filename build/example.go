package build

import (
	"github.com/outofforest/ocbuild"
	"github.com/outofforest/ocbuild/pkg/kext"
	. "github.com/outofforest/ocbuild/pkg/settings" //nolint:stylecheck
	"github.com/outofforest/ocbuild/pkg/tree"
)

const nvramGUID = "4D1EDE05-38C7-4A6A-9CC6-4BCCA8B38C14"

var config = func() ocbuild.Config {
	c := ocbuild.DefaultConfig()
	c.Image.Path = "bin/efi.img"
	c.Bootloader = tree.Bootloader{
		Version: ocbuild.DefaultBootloaderVersion,
	}
	c.Kexts = []kext.Descriptor{
		{Name: "Lilu", Repo: "acidanthera", Version: "1.5.6"},
		{Name: "FeatureUnlock", Repo: "acidanthera", Version: "1.0.3"},
		{Name: "WhateverGreen", Repo: "acidanthera", Version: "1.5.3"},
	}
	c.Patches = []Dict{
		{
			"Base":       String("_early_random"),
			"Find":       MustHex("00 74 23 48 8B"),
			"Identifier": String("kernel"),
			"Limit":      Integer(800),
			"MinKernel":  String("20.4.0"),
			"Replace":    MustHex("00 EB 23 48 8B"),
		},
		{
			"Base":       String("_register_and_init_prng"),
			"Find":       MustHex("BA 48 01 00 00 31 F6"),
			"Identifier": String("kernel"),
			"Limit":      Integer(256),
			"MinKernel":  String("20.4.0"),
			"Replace":    MustHex("BA 48 01 00 00 EB 05"),
		},
	}
	c.Settings = Dict{
		"DeviceProperties": Dict{
			"Add": Dict{
				"PciRoot(0x0)/Pci(0x3,0x0)/Pci(0x0,0x0)": Dict{
					"agdpmod":             MustHex("70 69 6B 65 72 61 00"),
					"rebuild-device-tree": MustHex("00"),
					"shikigva":            MustHex("50"),
					"unfairgva":           MustHex("01 00 00 00"),
				},
				"PciRoot(0x0)/Pci(0x7,0x0)/Pci(0x0,0x0)/Pci(0x0,0x0)/Pci(0x0,0x0)": Dict{
					"built-in": MustHex("00"),
				},
				"PciRoot(0x0)/Pci(0x7,0x0)/Pci(0x0,0x0)/Pci(0x8,0x0)/Pci(0x0,0x0)": Dict{
					"built-in": MustHex("00"),
				},
			},
		},
		"Kernel": Dict{
			"Quirks": Dict{
				"DisableLinkeditJettison": Bool(true),
				"SetApfsTrimTimeout":      Integer(9999999),
			},
			"Scheme": Dict{
				"KernelArch": String("x86_64"),
			},
		},
		"Misc": Dict{
			"Boot": Dict{
				"ConsoleAttributes": Integer(15),
				"HideAuxiliary":     Bool(true),
				"PollAppleHotKeys":  Bool(true),
				"PickerMode":        String("External"),
				"ShowPicker":        Bool(true),
			},
			"Security": Dict{
				"AllowSetDefault":      Bool(true),
				"BlacklistAppleUpdate": Bool(true),
				"ExposeSensitiveData":  Integer(3),
				"ScanPolicy":           Integer(0),
				"Vault":                String("Optional"),
			},
		},
		"NVRAM": Dict{
			"Add": Dict{
				nvramGUID: Dict{
					"DefaultBackgroundColor": MustHex("00 00 00 00"),
					"UIScale":                MustHex("01"),
				},
			},
			"Delete": Dict{
				nvramGUID: Array{String("DefaultBackgroundColor"), String("UIScale")},
			},
		},
		"PlatformInfo": Dict{
			"SMBIOS": Dict{
				"BIOSVersion":  String("9999.0.0.0.0"),
				"BoardProduct": String("Mac-7BA5B2D9E42DDD94"),
			},
			"UpdateSMBIOS": Bool(true),
		},
		"UEFI": Dict{
			"AppleInput": Dict{
				"AppleEvent": String("Builtin"),
			},
			"ConnectDrivers": Bool(true),
			"Drivers": Array{
				Dict{"Path": String("OpenCanopy.efi"), "Enabled": Bool(true), "Arguments": String("")},
				Dict{"Path": String("OpenRuntime.efi"), "Enabled": Bool(true), "Arguments": String("")},
			},
			"Output": Dict{
				"ProvideConsoleGop": Bool(true),
				"Resolution":        String("Max"),
			},
			"ProtocolOverrides": Dict{
				"AppleBootPolicy":         Bool(true),
				"AppleUserInterfaceTheme": Bool(true),
			},
			"Quirks": Dict{
				"RequestBootVarRouting": Bool(true),
			},
		},
	}
	return c
}()
