package plist

import (
	"math"

	"github.com/pkg/errors"

	"github.com/outofforest/ocbuild/pkg/settings"
)

func toPlist(v settings.Value) (interface{}, error) {
	switch v := v.(type) {
	case settings.Dict:
		res := make(map[string]interface{}, len(v))
		for k, item := range v {
			value, err := toPlist(item)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k)
			}
			res[k] = value
		}
		return res, nil
	case settings.Array:
		res := make([]interface{}, 0, len(v))
		for i, item := range v {
			value, err := toPlist(item)
			if err != nil {
				return nil, errors.Wrapf(err, "item %d", i)
			}
			res = append(res, value)
		}
		return res, nil
	case settings.Bool:
		return bool(v), nil
	case settings.Integer:
		return int64(v), nil
	case settings.String:
		return string(v), nil
	case settings.Data:
		if v == nil {
			return []byte{}, nil
		}
		return []byte(v), nil
	case nil:
		return nil, errors.New("value is not set")
	default:
		return nil, errors.Errorf("unsupported value %T", v)
	}
}

func fromPlist(v interface{}) (settings.Value, error) {
	switch v := v.(type) {
	case map[string]interface{}:
		res := make(settings.Dict, len(v))
		for k, item := range v {
			value, err := fromPlist(item)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k)
			}
			res[k] = value
		}
		return res, nil
	case []interface{}:
		res := make(settings.Array, 0, len(v))
		for _, item := range v {
			value, err := fromPlist(item)
			if err != nil {
				return nil, err
			}
			res = append(res, value)
		}
		return res, nil
	case bool:
		return settings.Bool(v), nil
	case int64:
		return settings.Integer(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, errors.Errorf("integer %d out of range", v)
		}
		return settings.Integer(v), nil
	case string:
		return settings.String(v), nil
	case []byte:
		if v == nil {
			return settings.Data{}, nil
		}
		return settings.Data(v), nil
	default:
		return nil, errors.Errorf("unsupported plist value %T", v)
	}
}
