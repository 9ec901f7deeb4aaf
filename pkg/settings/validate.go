package settings

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Validate checks invariants of the final configuration which can't be expressed by default types.
func Validate(config Dict) error {
	nvram := config.Dict("NVRAM")
	for _, section := range []string{"Add", "Delete", "LegacySchema"} {
		for guid := range nvram.Dict(section) {
			if _, err := uuid.Parse(guid); err != nil {
				return errors.Wrapf(ErrSchemaMismatch, "NVRAM.%s: invalid GUID %q", section, guid)
			}
		}
	}

	kexts, _ := config.Dict("Kernel")["Add"].(Array)
	for i, k := range kexts {
		entry, ok := k.(Dict)
		if !ok {
			return errors.Wrapf(ErrSchemaMismatch, "Kernel.Add[%d]: dict expected, got %s", i, k.Kind())
		}
		if bundle, _ := entry["BundlePath"].(String); bundle == "" {
			return errors.Wrapf(ErrSchemaMismatch, "Kernel.Add[%d]: BundlePath is empty", i)
		}
	}
	return nil
}
