package kext

import (
	"github.com/samber/lo"

	"github.com/outofforest/ocbuild/pkg/settings"
)

const (
	// MCEReporterDisabler is the kext required on hosts with many logical processors.
	MCEReporterDisabler = "AppleMCEReporterDisabler"

	// CPUThreshold is the processor count above which MCEReporterDisabler is installed.
	CPUThreshold = 15
)

// Descriptor describes kext to download and configure.
type Descriptor struct {
	Name       string        `yaml:"name"`
	Repo       string        `yaml:"repo"`
	Version    string        `yaml:"version"`
	Hash       string        `yaml:"hash"`
	Properties settings.Dict `yaml:"properties"`
}

// Resolve returns the final list of kexts to install on host with cpuCount logical processors.
func Resolve(descriptors []Descriptor, cpuCount int) []Descriptor {
	res := append([]Descriptor{}, descriptors...)
	if cpuCount <= CPUThreshold {
		return res
	}
	if lo.ContainsBy(res, func(d Descriptor) bool { return d.Name == MCEReporterDisabler }) {
		return res
	}
	return append([]Descriptor{{
		Name:    MCEReporterDisabler,
		Repo:    "acidanthera",
		Version: "1.0.0",
		Properties: settings.Dict{
			// Kext contains Info.plist only.
			"ExecutablePath": settings.String(""),
		},
	}}, res...)
}

// Entry returns Kernel.Add entry for the kext.
func Entry(d Descriptor) settings.Dict {
	entry := settings.Dict{
		"Arch":           settings.String("x86_64"),
		"BundlePath":     settings.String(d.Name + ".kext"),
		"Comment":        settings.String(""),
		"Enabled":        settings.Bool(true),
		"ExecutablePath": settings.String("Contents/MacOS/" + d.Name),
		"MaxKernel":      settings.String(""),
		"MinKernel":      settings.String(""),
		"PlistPath":      settings.String("Contents/Info.plist"),
	}
	for k, v := range d.Properties {
		entry[k] = settings.Clone(v)
	}
	return entry
}

// Entries returns Kernel.Add entries for kexts.
func Entries(descriptors []Descriptor) settings.Array {
	return lo.Map(descriptors, func(d Descriptor, _ int) settings.Value {
		return Entry(d)
	})
}

// DefaultPatch returns kernel patch with all the fields set to defaults.
func DefaultPatch() settings.Dict {
	return settings.Dict{
		"Arch":        settings.String("x86_64"),
		"Base":        settings.String(""),
		"Comment":     settings.String(""),
		"Count":       settings.Integer(1),
		"Enabled":     settings.Bool(true),
		"Find":        settings.Data{},
		"Identifier":  settings.String(""),
		"Limit":       settings.Integer(0),
		"Mask":        settings.Data{},
		"MaxKernel":   settings.String(""),
		"MinKernel":   settings.String(""),
		"Replace":     settings.Data{},
		"ReplaceMask": settings.Data{},
		"Skip":        settings.Integer(0),
	}
}

// Patches returns Kernel.Patch entries, fields missing in patches are taken from DefaultPatch.
func Patches(patches []settings.Dict) settings.Array {
	return lo.Map(patches, func(p settings.Dict, _ int) settings.Value {
		patch := DefaultPatch()
		for k, v := range p {
			patch[k] = settings.Clone(v)
		}
		return patch
	})
}

// KernelHook returns merge hook injecting kexts and patches into Kernel section.
func KernelHook(descriptors []Descriptor, patches []settings.Dict) settings.Option {
	return settings.WithSectionHook("Kernel", func(section settings.Dict) settings.Dict {
		section["Add"] = Entries(descriptors)
		section["Patch"] = Patches(patches)
		return section
	})
}
