package columnar

import (
	"strings"

	"github.com/pkg/errors"
)

// Kind is an enumeration of the element kinds supported by columns.
//
// The set is closed: every algorithm of this package resolves the code path
// for a column once, by switching on its kind, before touching any row.
type Kind int8

const (
	Boolean Kind = iota + 1
	Int32
	Int64
	Uint32
	Uint64
	Float
	Double
	ByteArray
	UUID
	List
	Struct
)

var kindNames = [...]string{
	Boolean:   "BOOLEAN",
	Int32:     "INT32",
	Int64:     "INT64",
	Uint32:    "UINT32",
	Uint64:    "UINT64",
	Float:     "FLOAT",
	Double:    "DOUBLE",
	ByteArray: "BYTE_ARRAY",
	UUID:      "UUID",
	List:      "LIST",
	Struct:    "STRUCT",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsFloat returns true if k is one of the floating point kinds, which are the
// only kinds holding NaN values.
func (k Kind) IsFloat() bool { return k == Float || k == Double }

// IsNested returns true for kinds whose values are made of child columns.
func (k Kind) IsNested() bool { return k == List || k == Struct }

// IsInteger returns true for the integral kinds.
func (k Kind) IsInteger() bool {
	switch k {
	case Int32, Int64, Uint32, Uint64:
		return true
	}
	return false
}

var kindAliases = map[string]Kind{
	"bool":       Boolean,
	"boolean":    Boolean,
	"int32":      Int32,
	"int":        Int64,
	"int64":      Int64,
	"uint32":     Uint32,
	"uint64":     Uint64,
	"float":      Float,
	"float32":    Float,
	"double":     Double,
	"float64":    Double,
	"byte_array": ByteArray,
	"bytes":      ByteArray,
	"string":     ByteArray,
	"uuid":       UUID,
	"list":       List,
	"struct":     Struct,
}

// ParseKind returns the kind named by s. Names are case insensitive and accept
// both the upper case names returned by Kind.String and the usual Go type
// names (e.g. "float64", "string").
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, errors.Wrapf(ErrInvalidKind, "unknown kind %q", s)
}
