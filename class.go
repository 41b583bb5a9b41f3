package columnar

import (
	"bytes"
	"math"

	"github.com/google/uuid"
)

// rowEqualFunc compares the values at two row positions of the same column.
type rowEqualFunc func(i, j int) bool

// rowPredicate tests a single row position.
type rowPredicate func(i int) bool

// class carries the code paths specialized for the values of a primitive
// kind. Classes are looked up once per operation, by kind, which resolves the
// functions used in the per-row loops without further type inspection.
type class struct {
	equal func(*Column) rowEqualFunc
	isNaN func(*Column) rowPredicate
}

var classes = [...]class{
	Boolean: {
		equal: equalComparable[bool],
		isNaN: neverNaN,
	},
	Int32: {
		equal: equalComparable[int32],
		isNaN: neverNaN,
	},
	Int64: {
		equal: equalComparable[int64],
		isNaN: neverNaN,
	},
	Uint32: {
		equal: equalComparable[uint32],
		isNaN: neverNaN,
	},
	Uint64: {
		equal: equalComparable[uint64],
		isNaN: neverNaN,
	},
	Float: {
		equal: equalComparable[float32],
		isNaN: isNaNFloat,
	},
	Double: {
		equal: equalComparable[float64],
		isNaN: isNaNDouble,
	},
	ByteArray: {
		equal: equalByteArray,
		isNaN: neverNaN,
	},
	UUID: {
		equal: equalUUID,
		isNaN: neverNaN,
	},
}

// classOf returns the class of kind k, or nil if k is not a primitive kind.
func classOf(k Kind) *class {
	if k > 0 && int(k) < len(classes) && classes[k].equal != nil {
		return &classes[k]
	}
	return nil
}

// Floating point values compare with ==, which follows IEEE 754: NaN values
// are never equal.
func equalComparable[T bool | int32 | int64 | uint32 | uint64 | float32 | float64](c *Column) rowEqualFunc {
	values := Values[T](c)
	return func(i, j int) bool { return values[i] == values[j] }
}

func equalByteArray(c *Column) rowEqualFunc {
	values := Values[[]byte](c)
	return func(i, j int) bool { return bytes.Equal(values[i], values[j]) }
}

func equalUUID(c *Column) rowEqualFunc {
	values := Values[uuid.UUID](c)
	return func(i, j int) bool { return values[i] == values[j] }
}

func neverNaN(*Column) rowPredicate {
	return func(int) bool { return false }
}

func isNaNFloat(c *Column) rowPredicate {
	values := Values[float32](c)
	return func(i int) bool { return math.IsNaN(float64(values[i])) }
}

func isNaNDouble(c *Column) rowPredicate {
	values := Values[float64](c)
	return func(i int) bool { return math.IsNaN(values[i]) }
}
