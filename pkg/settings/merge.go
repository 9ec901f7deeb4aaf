package settings

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrSchemaMismatch is returned in strict mode if overlay value has different type than the default one.
var ErrSchemaMismatch = errors.New("schema mismatch")

// SectionHook regenerates top-level overlay section before it is merged.
type SectionHook func(section Dict) Dict

// Option configures merge.
type Option func(m *merger)

// Strict turns type mismatches between base and overlay into errors.
func Strict() Option {
	return func(m *merger) {
		m.strict = true
	}
}

// WithSectionHook registers hook executed for top-level section key.
// Hook is called even if overlay does not contain the section.
func WithSectionHook(key string, hook SectionHook) Option {
	return func(m *merger) {
		m.hooks[key] = hook
	}
}

type merger struct {
	strict bool
	hooks  map[string]SectionHook
}

// Merge deep-merges overlay into base and returns the result as a new dictionary.
// Nested dictionaries are merged key by key, any other overlay value replaces the base one.
func Merge(base, overlay Dict, opts ...Option) (Dict, error) {
	m := &merger{hooks: map[string]SectionHook{}}
	for _, opt := range opts {
		opt(m)
	}

	if len(m.hooks) > 0 {
		overlay = overlay.Clone()
		for key, hook := range m.hooks {
			section, _ := overlay[key].(Dict)
			if section == nil {
				section = Dict{}
			}
			overlay[key] = hook(section)
		}
	}

	return m.merge(nil, base.Clone(), overlay)
}

func (m *merger) merge(path []string, result, overlay Dict) (Dict, error) {
	for key, value := range overlay {
		baseValue := result[key]
		if baseValue == nil {
			result[key] = Clone(value)
			continue
		}

		baseDict, baseIsDict := baseValue.(Dict)
		overlayDict, overlayIsDict := value.(Dict)
		if baseIsDict && overlayIsDict {
			merged, err := m.merge(append(path, key), baseDict, overlayDict)
			if err != nil {
				return nil, err
			}
			result[key] = merged
			continue
		}

		if m.strict && (value == nil || baseValue.Kind() != value.Kind()) {
			return nil, errors.Wrapf(ErrSchemaMismatch, "key %q: expected %s, got %s",
				strings.Join(append(path, key), "."), baseValue.Kind(), kindOf(value))
		}
		result[key] = Clone(value)
	}
	return result, nil
}

func kindOf(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}
