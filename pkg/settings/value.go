package settings

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Kind is the type tag of a configuration value.
type Kind int

// Value kinds.
const (
	KindBool Kind = iota
	KindInteger
	KindString
	KindData
	KindArray
	KindDict
)

var kindNames = map[Kind]string{
	KindBool:    "bool",
	KindInteger: "integer",
	KindString:  "string",
	KindData:    "data",
	KindArray:   "array",
	KindDict:    "dict",
}

func (k Kind) String() string {
	if name, exists := kindNames[k]; exists {
		return name
	}
	return "unknown"
}

// Value is a node of the configuration tree.
type Value interface {
	Kind() Kind
}

// Bool is a boolean leaf.
type Bool bool

// Kind returns KindBool.
func (Bool) Kind() Kind { return KindBool }

// Integer is an integer leaf.
type Integer int64

// Kind returns KindInteger.
func (Integer) Kind() Kind { return KindInteger }

// String is a string leaf.
type String string

// Kind returns KindString.
func (String) Kind() Kind { return KindString }

// Data is a byte sequence leaf.
type Data []byte

// Kind returns KindData.
func (Data) Kind() Kind { return KindData }

// Array is an ordered sequence of values.
type Array []Value

// Kind returns KindArray.
func (Array) Kind() Kind { return KindArray }

// Dict maps unique keys to values.
type Dict map[string]Value

// Kind returns KindDict.
func (Dict) Kind() Kind { return KindDict }

// Dict returns nested dictionary stored under key or nil if there is none.
func (d Dict) Dict(key string) Dict {
	v, _ := d[key].(Dict)
	return v
}

// Clone returns a deep copy of the value.
func Clone(v Value) Value {
	switch v := v.(type) {
	case Dict:
		return v.Clone()
	case Array:
		return v.Clone()
	case Data:
		if v == nil {
			return v
		}
		return append(Data{}, v...)
	default:
		return v
	}
}

// Clone returns a deep copy of the dictionary.
func (d Dict) Clone() Dict {
	res := make(Dict, len(d))
	for k, v := range d {
		res[k] = Clone(v)
	}
	return res
}

// Clone returns a deep copy of the array.
func (a Array) Clone() Array {
	return lo.Map(a, func(v Value, _ int) Value {
		return Clone(v)
	})
}

// Hex decodes binary data represented as hexadecimal string, whitespaces are ignored.
func Hex(s string) (Data, error) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid hex data %q", s)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// MustHex is like Hex but panics on invalid input.
func MustHex(s string) Data {
	return lo.Must(Hex(s))
}
