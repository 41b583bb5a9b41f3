package columnar_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/segmentio/columnar"
)

func TestBuilderPrimitive(t *testing.T) {
	b := columnar.NewBuilder(columnar.Int64)
	for _, v := range []any{1, int8(2), nil, uint32(4)} {
		if err := b.Append(v); err != nil {
			t.Fatal(err)
		}
	}

	col := b.Build()
	if values := columnar.Values[int64](col); !reflect.DeepEqual(values, []int64{1, 2, 0, 4}) {
		t.Errorf("wrong values: %v", values)
	}
	if rows := col.Nulls().Rows(); !reflect.DeepEqual(rows, []int{2}) {
		t.Errorf("wrong null rows: %v", rows)
	}
	if n := b.Len(); n != 0 {
		t.Errorf("builder was not reset: %d rows", n)
	}
}

func TestBuilderConversionErrors(t *testing.T) {
	tests := []struct {
		kind  columnar.Kind
		value any
	}{
		{columnar.Boolean, 1},
		{columnar.Int32, int64(1) << 40},
		{columnar.Uint32, -1},
		{columnar.Uint64, "1"},
		{columnar.Double, "1.5"},
		{columnar.ByteArray, 42},
		{columnar.UUID, "not a uuid"},
	}

	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			b := columnar.NewBuilder(test.kind)
			if err := b.Append(test.value); !errors.Is(err, columnar.ErrInvalidArgument) {
				t.Errorf("wrong error: %v", err)
			}
			if n := b.Len(); n != 0 {
				t.Errorf("failed append added %d rows", n)
			}
		})
	}
}

func TestBuilderUUID(t *testing.T) {
	id := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")

	b := columnar.NewBuilder(columnar.UUID)
	for _, v := range []any{id, id.String(), id[:], [16]byte(id)} {
		if err := b.Append(v); err != nil {
			t.Fatal(err)
		}
	}

	for i, v := range columnar.Values[uuid.UUID](b.Build()) {
		if v != id {
			t.Errorf("row %d: wrong uuid: %s", i, v)
		}
	}
}

func TestBuilderList(t *testing.T) {
	b := columnar.NewListBuilder(columnar.NewBuilder(columnar.ByteArray))
	for _, v := range []any{
		[]string{"a", "b"},
		nil,
		[]string{},
		[]any{"c", nil},
	} {
		if err := b.Append(v); err != nil {
			t.Fatal(err)
		}
	}

	col := b.Build()
	if offsets := col.Offsets(); !reflect.DeepEqual(offsets, []int32{0, 2, 2, 2, 4}) {
		t.Errorf("wrong offsets: %v", offsets)
	}
	if !col.IsNull(1) || col.IsNull(2) {
		t.Errorf("wrong null rows: %v", col.Nulls())
	}
	if !col.Child(0).IsNull(3) {
		t.Errorf("wrong null elements: %v", col.Child(0).Nulls())
	}
}

func TestBuilderListRollback(t *testing.T) {
	b := columnar.NewListBuilder(columnar.NewBuilder(columnar.Int32))
	if err := b.Append([]any{1, 2}); err != nil {
		t.Fatal(err)
	}
	if err := b.Append([]any{3, "oops"}); err == nil {
		t.Fatal("appending a list with an invalid element did not fail")
	}
	if err := b.Append([]any{4}); err != nil {
		t.Fatal(err)
	}

	col := b.Build()
	if offsets := col.Offsets(); !reflect.DeepEqual(offsets, []int32{0, 2, 3}) {
		t.Errorf("wrong offsets: %v", offsets)
	}
	if values := columnar.Values[int32](col.Child(0)); !reflect.DeepEqual(values, []int32{1, 2, 4}) {
		t.Errorf("wrong elements: %v", values)
	}
}

func TestBuilderStruct(t *testing.T) {
	b := columnar.NewStructBuilder(
		columnar.NewBuilder(columnar.Int32),
		columnar.NewBuilder(columnar.ByteArray),
	)

	if err := b.Append([]any{1, "a"}); err != nil {
		t.Fatal(err)
	}
	if err := b.Append([]any{2, 3}); !errors.Is(err, columnar.ErrInvalidArgument) {
		t.Fatalf("wrong error: %v", err)
	}
	if err := b.Append([]any{2}); !errors.Is(err, columnar.ErrInvalidArgument) {
		t.Fatalf("wrong error: %v", err)
	}
	b.AppendNull()

	col := b.Build()
	if n := col.Len(); n != 2 {
		t.Fatalf("wrong number of rows: want=2 got=%d", n)
	}
	for i, child := range col.Children() {
		if n := child.Len(); n != 2 {
			t.Errorf("field %d: wrong number of rows: want=2 got=%d", i, n)
		}
		if !child.IsNull(1) {
			t.Errorf("field %d: null struct row is not null", i)
		}
	}
}

func TestNewBuilderNestedKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("creating a primitive builder of a nested kind did not panic")
		}
	}()
	columnar.NewBuilder(columnar.List)
}
