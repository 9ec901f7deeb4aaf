package settings

// Defaults returns the complete OpenCore configuration with default values.
// Each call returns a fresh copy.
func Defaults() Dict {
	return Dict{
		"ACPI":             acpi(),
		"Booter":           booter(),
		"DeviceProperties": Dict{"Add": Dict{}, "Delete": Dict{}},
		"Kernel":           kernel(),
		"Misc":             misc(),
		"NVRAM":            nvram(),
		"PlatformInfo":     platformInfo(),
		"UEFI":             uefi(),
	}
}

func acpi() Dict {
	return Dict{
		"Add":    Array{},
		"Delete": Array{},
		"Patch":  Array{},
		"Quirks": Dict{
			"FadtEnableReset":  Bool(false),
			"NormalizeHeaders": Bool(false),
			"RebaseRegions":    Bool(false),
			"ResetHwSig":       Bool(false),
			"ResetLogoStatus":  Bool(false),
			"SyncTableIds":     Bool(false),
		},
	}
}

func booter() Dict {
	return Dict{
		"MmioWhitelist": Array{},
		"Patch":         Array{},
		"Quirks": Dict{
			"AllowRelocationBlock":   Bool(false),
			"AvoidRuntimeDefrag":     Bool(false),
			"DevirtualiseMmio":       Bool(false),
			"DisableSingleUser":      Bool(false),
			"DisableVariableWrite":   Bool(false),
			"DiscardHibernateMap":    Bool(false),
			"EnableSafeModeSlide":    Bool(false),
			"EnableWriteUnprotector": Bool(false),
			"ForceBooterSignature":   Bool(false),
			"ForceExitBootServices":  Bool(false),
			"ProtectMemoryRegions":   Bool(false),
			"ProtectSecureBoot":      Bool(true),
			"ProtectUefiServices":    Bool(false),
			"ProvideCustomSlide":     Bool(false),
			"ProvideMaxSlide":        Integer(0),
			"RebuildAppleMemoryMap":  Bool(false),
			"SetupVirtualMap":        Bool(false),
			"SignalAppleOS":          Bool(false),
			"SyncRuntimePermissions": Bool(false),
		},
	}
}

func kernel() Dict {
	return Dict{
		"Add":   Array{},
		"Block": Array{},
		"Emulate": Dict{
			"Cpuid1Data":           MustHex("00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00"),
			"Cpuid1Mask":           MustHex("00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00"),
			"DummyPowerManagement": Bool(false),
			"MaxKernel":            String(""),
			"MinKernel":            String(""),
		},
		"Force": Array{},
		"Patch": Array{},
		"Quirks": Dict{
			"AppleCpuPmCfgLock":       Bool(false),
			"AppleXcpmCfgLock":        Bool(false),
			"AppleXcpmExtraMsrs":      Bool(false),
			"AppleXcpmForceBoost":     Bool(false),
			"CustomSMBIOSGuid":        Bool(false),
			"DisableIoMapper":         Bool(false),
			"DisableLinkeditJettison": Bool(false),
			"DisableRtcChecksum":      Bool(false),
			"ExtendBTFeatureFlags":    Bool(false),
			"ExternalDiskIcons":       Bool(false),
			"ForceSecureBootScheme":   Bool(false),
			"IncreasePciBarSize":      Bool(false),
			"LapicKernelPanic":        Bool(false),
			"LegacyCommpage":          Bool(false),
			"PanicNoKextDump":         Bool(false),
			"PowerTimeoutKernelPanic": Bool(false),
			"ProvideCurrentCpuInfo":   Bool(false),
			"SetApfsTrimTimeout":      Integer(-1),
			"ThirdPartyDrives":        Bool(false),
			"XhciPortLimit":           Bool(false),
		},
		"Scheme": Dict{
			"CustomKernel": Bool(false),
			"FuzzyMatch":   Bool(false),
			"KernelArch":   String("Auto"),
			"KernelCache":  String("Auto"),
		},
	}
}

func misc() Dict {
	return Dict{
		"BlessOverride": Array{},
		"Boot": Dict{
			"ConsoleAttributes": Integer(0),
			"HibernateMode":     String("None"),
			"HideAuxiliary":     Bool(false),
			"LauncherOption":    String("Disabled"),
			"LauncherPath":      String("Default"),
			"PickerAttributes":  Integer(0),
			"PickerAudioAssist": Bool(false),
			"PickerMode":        String("Builtin"),
			"PickerVariant":     String("Auto"),
			"PollAppleHotKeys":  Bool(false),
			"ShowPicker":        Bool(true),
			"TakeoffDelay":      Integer(0),
			"Timeout":           Integer(5),
		},
		"Debug": Dict{
			"AppleDebug":      Bool(false),
			"ApplePanic":      Bool(false),
			"DisableWatchDog": Bool(false),
			"DisplayDelay":    Integer(0),
			"DisplayLevel":    Integer(0),
			"SerialInit":      Bool(false),
			"SysReport":       Bool(false),
			"Target":          Integer(0),
		},
		"Entries": Array{},
		"Security": Dict{
			"AllowNvramReset":      Bool(false),
			"AllowSetDefault":      Bool(false),
			"AllowToggleSip":       Bool(false),
			"ApECID":               Integer(0),
			"AuthRestart":          Bool(false),
			"BlacklistAppleUpdate": Bool(false),
			"DmgLoading":           String("Signed"),
			"EnablePassword":       Bool(false),
			"ExposeSensitiveData":  Integer(6),
			"HaltLevel":            Integer(2147483648),
			"PasswordHash":         Data{},
			"PasswordSalt":         Data{},
			"ScanPolicy":           Integer(17760515),
			"SecureBootModel":      String("Default"),
			"Vault":                String("Secure"),
		},
		"Tools": Array{},
	}
}

func nvram() Dict {
	return Dict{
		"Add":             Dict{},
		"Delete":          Dict{},
		"LegacyEnable":    Bool(false),
		"LegacyOverwrite": Bool(false),
		"LegacySchema":    Dict{},
		"WriteFlash":      Bool(false),
	}
}

func platformInfo() Dict {
	return Dict{
		"Automatic":    Bool(false),
		"CustomMemory": Bool(false),
		"DataHub": Dict{
			"ARTFrequency":         Integer(0),
			"BoardProduct":         String(""),
			"BoardRevision":        Data{},
			"DevicePathsSupported": Integer(0),
			"FSBFrequency":         Integer(0),
			"InitialTSC":           Integer(0),
			"PlatformName":         String(""),
			"SmcBranch":            Data{},
			"SmcPlatform":          Data{},
			"SmcRevision":          Data{},
			"StartupPowerEvents":   Integer(0),
			"SystemProductName":    String(""),
			"SystemSerialNumber":   String(""),
			"SystemUUID":           String(""),
		},
		"Generic": Dict{
			"AdviseFeatures":     Bool(false),
			"MaxBIOSVersion":     Bool(false),
			"MLB":                String(""),
			"ProcessorType":      Integer(0),
			"ROM":                Data{},
			"SpoofVendor":        Bool(false),
			"SystemMemoryStatus": String("Auto"),
			"SystemProductName":  String(""),
			"SystemSerialNumber": String(""),
			"SystemUUID":         String(""),
		},
		"Memory": Dict{
			"DataWidth":       Integer(0),
			"Devices":         Array{},
			"ErrorCorrection": Integer(3),
			"FormFactor":      Integer(2),
			"MaxCapacity":     Integer(0),
			"TotalWidth":      Integer(0),
			"Type":            Integer(2),
			"TypeDetail":      Integer(4),
		},
		"PlatformNVRAM": Dict{
			"BID":                  String(""),
			"FirmwareFeatures":     Data{},
			"FirmwareFeaturesMask": Data{},
			"MLB":                  String(""),
			"ROM":                  Data{},
			"SystemSerialNumber":   String(""),
			"SystemUUID":           String(""),
		},
		"SMBIOS": Dict{
			"BIOSReleaseDate":        String(""),
			"BIOSVendor":             String(""),
			"BIOSVersion":            String(""),
			"BoardAssetTag":          String(""),
			"BoardLocationInChassis": String(""),
			"BoardManufacturer":      String(""),
			"BoardProduct":           String(""),
			"BoardSerialNumber":      String(""),
			"BoardType":              Integer(0),
			"BoardVersion":           String(""),
			"ChassisAssetTag":        String(""),
			"ChassisManufacturer":    String(""),
			"ChassisSerialNumber":    String(""),
			"ChassisType":            Integer(0),
			"ChassisVersion":         String(""),
			"FirmwareFeatures":       Data{},
			"FirmwareFeaturesMask":   Data{},
			"PlatformFeature":        Integer(-1),
			"ProcessorType":          Integer(0),
			"SmcVersion":             Data{},
			"SystemFamily":           String(""),
			"SystemManufacturer":     String(""),
			"SystemProductName":      String(""),
			"SystemSKUNumber":        String(""),
			"SystemSerialNumber":     String(""),
			"SystemUUID":             String(""),
			"SystemVersion":          String(""),
		},
		"UpdateDataHub":      Bool(false),
		"UpdateNVRAM":        Bool(false),
		"UpdateSMBIOS":       Bool(false),
		"UpdateSMBIOSMode":   String("Create"),
		"UseRawUuidEncoding": Bool(false),
	}
}

func uefi() Dict {
	return Dict{
		"APFS": Dict{
			"EnableJumpstart":  Bool(false),
			"GlobalConnect":    Bool(false),
			"HideVerbose":      Bool(false),
			"JumpstartHotPlug": Bool(false),
			"MinDate":          Integer(0),
			"MinVersion":       Integer(0),
		},
		"AppleInput": Dict{
			"AppleEvent":             String("Auto"),
			"CustomDelays":           Bool(false),
			"KeyInitialDelay":        Integer(50),
			"KeySubsequentDelay":     Integer(5),
			"GraphicsInputMirroring": Bool(false),
			"PointerSpeedDiv":        Integer(1),
			"PointerSpeedMul":        Integer(1),
		},
		"Audio": Dict{
			"AudioCodec":        Integer(0),
			"AudioDevice":       String(""),
			"AudioOut":          Integer(0),
			"AudioSupport":      Bool(false),
			"MinimumVolume":     Integer(0),
			"PlayChime":         String("Auto"),
			"ResetTrafficClass": Bool(false),
			"SetupDelay":        Integer(0),
			"VolumeAmplifier":   Integer(0),
		},
		"ConnectDrivers": Bool(false),
		"Drivers":        Array{},
		"Input": Dict{
			"KeyFiltering":       Bool(false),
			"KeyForgetThreshold": Integer(0),
			"KeySupport":         Bool(false),
			"KeySupportMode":     String("Auto"),
			"KeySwap":            Bool(false),
			"PointerSupport":     Bool(false),
			"PointerSupportMode": String(""),
			"TimerResolution":    Integer(0),
		},
		"Output": Dict{
			"ClearScreenOnModeSwitch": Bool(false),
			"ConsoleMode":             String(""),
			"DirectGopRendering":      Bool(false),
			"ForceResolution":         Bool(false),
			"GopPassThrough":          String("Disabled"),
			"IgnoreTextInGraphics":    Bool(false),
			"ProvideConsoleGop":       Bool(false),
			"ReconnectOnResChange":    Bool(false),
			"ReplaceTabWithSpace":     Bool(false),
			"Resolution":              String(""),
			"SanitiseClearScreen":     Bool(false),
			"TextRenderer":            String("BuiltinGraphics"),
			"UgaPassThrough":          Bool(false),
		},
		"ProtocolOverrides": Dict{
			"AppleAudio":              Bool(false),
			"AppleBootPolicy":         Bool(false),
			"AppleDebugLog":           Bool(false),
			"AppleEg2Info":            Bool(false),
			"AppleFramebufferInfo":    Bool(false),
			"AppleImageConversion":    Bool(false),
			"AppleImg4Verification":   Bool(false),
			"AppleKeyMap":             Bool(false),
			"AppleRtcRam":             Bool(false),
			"AppleSecureBoot":         Bool(false),
			"AppleSmcIo":              Bool(false),
			"AppleUserInterfaceTheme": Bool(false),
			"DataHub":                 Bool(false),
			"DeviceProperties":        Bool(false),
			"FirmwareVolume":          Bool(false),
			"HashServices":            Bool(false),
			"OSInfo":                  Bool(false),
			"UnicodeCollation":        Bool(false),
		},
		"Quirks": Dict{
			"ActivateHpetSupport":      Bool(false),
			"EnableVectorAcceleration": Bool(false),
			"DisableSecurityPolicy":    Bool(false),
			"ExitBootServicesDelay":    Integer(0),
			"ForceOcWriteFlash":        Bool(false),
			"ForgeUefiSupport":         Bool(false),
			"IgnoreInvalidFlexRatio":   Bool(false),
			"ReleaseUsbOwnership":      Bool(false),
			"ReloadOptionRoms":         Bool(false),
			"RequestBootVarRouting":    Bool(false),
			"TscSyncTimeout":           Integer(0),
			"UnblockFsConnect":         Bool(false),
		},
		"ReservedMemory": Array{},
	}
}
