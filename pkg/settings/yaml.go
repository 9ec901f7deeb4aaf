package settings

import (
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// HexTag marks YAML scalar containing binary data encoded as hexadecimal string.
const HexTag = "!hex"

// UnmarshalYAML decodes dictionary from YAML mapping.
func (d *Dict) UnmarshalYAML(node *yaml.Node) error {
	v, err := FromYAML(node)
	if err != nil {
		return err
	}
	dict, ok := v.(Dict)
	if !ok {
		return errors.Errorf("line %d: mapping expected, got %s", node.Line, v.Kind())
	}
	*d = dict
	return nil
}

// FromYAML converts YAML node to value.
func FromYAML(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, errors.Errorf("line %d: exactly one document expected", node.Line)
		}
		return FromYAML(node.Content[0])
	case yaml.AliasNode:
		return FromYAML(node.Alias)
	case yaml.SequenceNode:
		res := make(Array, 0, len(node.Content))
		for _, n := range node.Content {
			v, err := FromYAML(n)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case yaml.MappingNode:
		res := make(Dict, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, errors.Errorf("line %d: scalar key expected", keyNode.Line)
			}
			if _, exists := res[keyNode.Value]; exists {
				return nil, errors.Errorf("line %d: duplicated key %q", keyNode.Line, keyNode.Value)
			}
			v, err := FromYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			res[keyNode.Value] = v
		}
		return res, nil
	case yaml.ScalarNode:
		return scalarFromYAML(node)
	default:
		return nil, errors.Errorf("line %d: unsupported yaml node", node.Line)
	}
}

func scalarFromYAML(node *yaml.Node) (Value, error) {
	switch tag := node.ShortTag(); tag {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, errors.WithStack(err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return nil, errors.WithStack(err)
		}
		return Integer(i), nil
	case "!!str":
		return String(node.Value), nil
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(node.Value), ""))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		return Data(b), nil
	case HexTag:
		d, err := Hex(node.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		return d, nil
	default:
		return nil, errors.Errorf("line %d: unsupported value type %s", node.Line, tag)
	}
}
