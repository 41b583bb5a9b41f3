package columnar

import (
	"math"
	"reflect"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/segmentio/columnar/nulls"
)

// Builder constructs columns one row at a time from dynamically typed values.
//
// Builders are used to load columns from row oriented sources; programs which
// already hold their values in typed slices should use NewColumn instead.
//
// Builders are not safe for concurrent use.
type Builder struct {
	kind     Kind
	numRows  int
	nulls    *nulls.Nulls
	values   valueBuffer
	offsets  []int32
	children []*Builder
}

// NewBuilder constructs a builder of primitive columns of the given kind.
//
// The function panics if kind is a nested kind; use NewListBuilder or
// NewStructBuilder for those.
func NewBuilder(kind Kind) *Builder {
	b := &Builder{kind: kind}
	switch kind {
	case Boolean:
		b.values = &typedBuffer[bool]{convert: toBool}
	case Int32:
		b.values = &typedBuffer[int32]{convert: toInt32}
	case Int64:
		b.values = &typedBuffer[int64]{convert: toInt64}
	case Uint32:
		b.values = &typedBuffer[uint32]{convert: toUint32}
	case Uint64:
		b.values = &typedBuffer[uint64]{convert: toUint64}
	case Float:
		b.values = &typedBuffer[float32]{convert: toFloat32}
	case Double:
		b.values = &typedBuffer[float64]{convert: toFloat64}
	case ByteArray:
		b.values = &typedBuffer[[]byte]{convert: toByteArray}
	case UUID:
		b.values = &typedBuffer[uuid.UUID]{convert: toUUID}
	default:
		panic("cannot create primitive builder of kind " + kind.String())
	}
	return b
}

// NewListBuilder constructs a builder of list columns whose elements are
// appended to the given element builder.
func NewListBuilder(element *Builder) *Builder {
	return &Builder{
		kind:     List,
		offsets:  []int32{0},
		children: []*Builder{element},
	}
}

// NewStructBuilder constructs a builder of struct columns with one field per
// builder passed as argument.
func NewStructBuilder(fields ...*Builder) *Builder {
	return &Builder{
		kind:     Struct,
		children: fields,
	}
}

// Kind returns the kind of the column being built.
func (b *Builder) Kind() Kind { return b.kind }

// Len returns the number of rows appended so far.
func (b *Builder) Len() int { return b.numRows }

// AppendNull appends a null row.
func (b *Builder) AppendNull() {
	if b.nulls == nil {
		b.nulls = new(nulls.Nulls)
	}
	b.nulls.Add(b.numRows)
	b.numRows++

	switch b.kind {
	case List:
		b.offsets = append(b.offsets, b.offsets[len(b.offsets)-1])
	case Struct:
		for _, field := range b.children {
			field.AppendNull()
		}
	default:
		b.values.appendZero()
	}
}

// Append appends a row holding v. A nil value appends a null row.
//
// Primitive builders accept the Go types convertible to their kind without
// loss (e.g. any integer type in range for Int64, strings for ByteArray or
// UUID). List builders accept slices, each element being appended to the
// element builder. Struct builders accept a []any holding one value per field.
//
// On error, the builder is left unchanged.
func (b *Builder) Append(v any) error {
	if v == nil {
		b.AppendNull()
		return nil
	}

	switch b.kind {
	case List:
		return b.appendList(v)
	case Struct:
		return b.appendStruct(v)
	}

	if err := b.values.appendValue(v); err != nil {
		return err
	}
	b.numRows++
	return nil
}

func (b *Builder) appendList(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return errors.Wrapf(ErrInvalidArgument, "cannot append value of type %T to a list column", v)
	}
	element := b.children[0]
	last := int(b.offsets[len(b.offsets)-1])
	if err := validateRowCount(last + rv.Len()); err != nil {
		return err
	}
	for i, n := 0, rv.Len(); i < n; i++ {
		if err := element.Append(rv.Index(i).Interface()); err != nil {
			element.truncate(last)
			return errors.WithMessagef(err, "list element %d", i)
		}
	}
	b.offsets = append(b.offsets, int32(last+rv.Len()))
	b.numRows++
	return nil
}

func (b *Builder) appendStruct(v any) error {
	fields, ok := v.([]any)
	if !ok {
		return errors.Wrapf(ErrInvalidArgument, "cannot append value of type %T to a struct column", v)
	}
	if len(fields) != len(b.children) {
		return errors.Wrapf(ErrInvalidArgument, "struct value has %d fields, expected %d", len(fields), len(b.children))
	}
	for i, field := range b.children {
		if err := field.Append(fields[i]); err != nil {
			// Keep the fields aligned so the builder remains usable.
			for _, f := range b.children[:i] {
				f.truncate(b.numRows)
			}
			return errors.WithMessagef(err, "struct field %d", i)
		}
	}
	b.numRows++
	return nil
}

// truncate drops the rows appended after the first n, used to roll back
// partial appends.
func (b *Builder) truncate(n int) {
	if b.numRows <= n {
		return
	}
	if b.nulls.CountRange(n, b.numRows) != 0 {
		b.nulls = b.nulls.Slice(0, n)
	}
	b.numRows = n
	switch b.kind {
	case List:
		b.offsets = b.offsets[:n+1]
		b.children[0].truncate(int(b.offsets[n]))
	case Struct:
		for _, field := range b.children {
			field.truncate(n)
		}
	default:
		b.values.truncate(n)
	}
}

// Build returns the column holding the rows appended to b, and resets the
// builder.
func (b *Builder) Build() *Column {
	col := &Column{
		kind:    b.kind,
		numRows: b.numRows,
	}
	if b.nulls.Any() {
		col.nulls = b.nulls
	}

	switch b.kind {
	case List:
		col.offsets = b.offsets
		col.children = []*Column{b.children[0].Build()}
		b.offsets = []int32{0}
	case Struct:
		col.children = make([]*Column, len(b.children))
		for i, field := range b.children {
			col.children[i] = field.Build()
		}
	default:
		col.values = b.values.build()
	}

	b.numRows = 0
	b.nulls = nil
	return col
}

type valueBuffer interface {
	appendValue(any) error
	appendZero()
	truncate(int)
	build() any
}

type typedBuffer[T Value] struct {
	values  []T
	convert func(any) (T, bool)
}

func (buf *typedBuffer[T]) appendValue(v any) error {
	value, ok := buf.convert(v)
	if !ok {
		return errors.Wrapf(ErrInvalidArgument, "cannot convert value %v of type %T to %s", v, v, kindOf[T]())
	}
	buf.values = append(buf.values, value)
	return nil
}

func (buf *typedBuffer[T]) appendZero() {
	var zero T
	buf.values = append(buf.values, zero)
}

func (buf *typedBuffer[T]) truncate(n int) { buf.values = buf.values[:n] }

func (buf *typedBuffer[T]) build() any {
	values := buf.values
	buf.values = nil
	return values
}

func toBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func toSigned(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint:
		return int64(x), uint64(x) <= math.MaxInt64
	case uint64:
		return int64(x), x <= math.MaxInt64
	default:
		return 0, false
	}
}

func toUnsigned(v any) (uint64, bool) {
	switch x := v.(type) {
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	default:
		i, ok := toSigned(v)
		return uint64(i), ok && i >= 0
	}
}

func toInt32(v any) (int32, bool) {
	i, ok := toSigned(v)
	return int32(i), ok && i >= math.MinInt32 && i <= math.MaxInt32
}

func toInt64(v any) (int64, bool) { return toSigned(v) }

func toUint32(v any) (uint32, bool) {
	u, ok := toUnsigned(v)
	return uint32(u), ok && u <= math.MaxUint32
}

func toUint64(v any) (uint64, bool) { return toUnsigned(v) }

func toFloat32(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	}
	i, ok := toSigned(v)
	return float32(i), ok
}

func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	i, ok := toSigned(v)
	return float64(i), ok
}

func toByteArray(v any) ([]byte, bool) {
	switch x := v.(type) {
	case []byte:
		return x, true
	case string:
		return []byte(x), true
	default:
		return nil, false
	}
}

func toUUID(v any) (uuid.UUID, bool) {
	switch x := v.(type) {
	case uuid.UUID:
		return x, true
	case [16]byte:
		return x, true
	case []byte:
		u, err := uuid.FromBytes(x)
		return u, err == nil
	case string:
		u, err := uuid.Parse(x)
		return u, err == nil
	default:
		return uuid.UUID{}, false
	}
}
