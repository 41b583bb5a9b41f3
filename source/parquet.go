package source

import (
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/segmentio/parquet-go"
	"github.com/segmentio/parquet-go/format"

	"github.com/segmentio/columnar"
)

// ReadParquet loads a frame from the parquet file of the given size that r
// reads from.
//
// Each top-level field of the file schema becomes a column. Primitive fields
// map to the primitive kinds, groups to structs, and repeated fields or
// groups annotated as LIST to lists. Lists must hold primitive elements.
func ReadParquet(r io.ReaderAt, size int64, options ...Option) (*Frame, error) {
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}

	f, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, errors.Wrap(err, "opening parquet file")
	}

	schema := f.Schema()
	names := make([]string, 0, len(schema.Fields()))
	loaders := make([]fieldLoader, 0, len(schema.Fields()))
	selected := make(map[string]bool, len(config.Columns))
	for _, name := range config.Columns {
		selected[name] = true
	}

	column := 0
	for _, field := range schema.Fields() {
		first := column
		column += numLeaves(field)
		if len(selected) != 0 && !selected[field.Name()] {
			continue
		}
		loader, err := newFieldLoader(field, first, 0)
		if err != nil {
			return nil, errors.WithMessagef(err, "parquet field %q", field.Name())
		}
		names = append(names, field.Name())
		loaders = append(loaders, loader)
	}
	for _, name := range config.Columns {
		if indexOf(names, name) < 0 {
			return nil, errors.Wrapf(columnar.ErrInvalidArgument, "parquet file has no column named %q", name)
		}
	}

	reader := parquet.NewReader(f)
	defer reader.Close()

	rows := make([]parquet.Row, 128)
	values := make([][]parquet.Value, column)
	for {
		n, err := reader.ReadRows(rows)

		for _, row := range rows[:n] {
			for i := range values {
				values[i] = values[i][:0]
			}
			for _, v := range row {
				values[v.Column()] = append(values[v.Column()], v)
			}
			for _, loader := range loaders {
				if err := loader.load(values); err != nil {
					return nil, err
				}
			}
		}

		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrap(err, "reading parquet rows")
		}
	}

	columns := make([]*columnar.Column, len(loaders))
	for i, loader := range loaders {
		if columns[i], err = loader.build(); err != nil {
			return nil, err
		}
	}
	return newFrame(names, columns)
}

func numLeaves(node parquet.Node) int {
	if node.Leaf() {
		return 1
	}
	n := 0
	for _, field := range node.Fields() {
		n += numLeaves(field)
	}
	return n
}

// fieldLoader accumulates the values of a schema field, receiving the values
// of all leaf columns one row at a time.
type fieldLoader interface {
	load(values [][]parquet.Value) error
	build() (*columnar.Column, error)
}

// newFieldLoader constructs the loader of node, whose first leaf is the given
// column, and whose parent is at definition level def.
func newFieldLoader(node parquet.Node, column, def int) (fieldLoader, error) {
	if node.Optional() || node.Repeated() {
		def++
	}

	switch {
	case node.Repeated():
		return newListLoader(node, column, def, def)

	case node.Leaf():
		kind, convert, err := leafConverter(node)
		if err != nil {
			return nil, err
		}
		return &leafLoader{
			column:  column,
			maxDef:  def,
			builder: columnar.NewBuilder(kind),
			convert: convert,
		}, nil

	case isList(node):
		repeated := node.Fields()[0]
		return newListLoader(repeated, column, def, def+1)

	default:
		s := &structLoader{column: column, def: def, optional: node.Optional()}
		for _, field := range node.Fields() {
			loader, err := newFieldLoader(field, column, def)
			if err != nil {
				return nil, errors.WithMessagef(err, "field %q", field.Name())
			}
			s.fields = append(s.fields, loader)
			column += numLeaves(field)
		}
		return s, nil
	}
}

// isList returns true for groups with a single repeated field, which is the
// layout of groups annotated as LIST. Writers predating the annotation used
// the same layout without it.
func isList(node parquet.Node) bool {
	fields := node.Fields()
	return len(fields) == 1 && fields[0].Repeated()
}

// newListLoader constructs a loader of lists whose elements are the repeated
// node. Values with a definition level lower than nullDef are null lists, and
// lower than repDef empty lists.
func newListLoader(repeated parquet.Node, column, nullDef, repDef int) (fieldLoader, error) {
	element := repeated
	maxDef := repDef
	if !element.Leaf() {
		fields := element.Fields()
		if len(fields) != 1 || !fields[0].Leaf() {
			return nil, errors.Wrap(columnar.ErrInvalidKind, "lists of nested values are not supported")
		}
		element = fields[0]
		if element.Repeated() {
			return nil, errors.Wrap(columnar.ErrInvalidKind, "lists of lists are not supported")
		}
		if element.Optional() {
			maxDef++
		}
	}

	kind, convert, err := leafConverter(element)
	if err != nil {
		return nil, err
	}
	return &listLoader{
		column:   column,
		nullDef:  nullDef,
		repDef:   repDef,
		maxDef:   maxDef,
		nullable: nullDef < repDef,
		builder:  columnar.NewListBuilder(columnar.NewBuilder(kind)),
		convert:  convert,
	}, nil
}

type leafLoader struct {
	column  int
	maxDef  int
	builder *columnar.Builder
	convert func(parquet.Value) any
}

func (l *leafLoader) load(values [][]parquet.Value) error {
	v := values[l.column]
	if len(v) == 0 || v[0].IsNull() || int(v[0].DefinitionLevel()) < l.maxDef {
		l.builder.AppendNull()
		return nil
	}
	return l.builder.Append(l.convert(v[0]))
}

func (l *leafLoader) build() (*columnar.Column, error) { return l.builder.Build(), nil }

type listLoader struct {
	column   int
	nullDef  int
	repDef   int
	maxDef   int
	nullable bool
	builder  *columnar.Builder
	convert  func(parquet.Value) any
	elements []any
}

func (l *listLoader) load(values [][]parquet.Value) error {
	v := values[l.column]
	if len(v) == 0 {
		l.builder.AppendNull()
		return nil
	}

	def := int(v[0].DefinitionLevel())
	switch {
	case l.nullable && def < l.nullDef:
		l.builder.AppendNull()
		return nil
	case def < l.repDef:
		return l.builder.Append(l.elements[:0])
	}

	l.elements = l.elements[:0]
	for _, value := range v {
		if value.IsNull() || int(value.DefinitionLevel()) < l.maxDef {
			l.elements = append(l.elements, nil)
		} else {
			l.elements = append(l.elements, l.convert(value))
		}
	}
	return l.builder.Append(l.elements)
}

func (l *listLoader) build() (*columnar.Column, error) { return l.builder.Build(), nil }

type structLoader struct {
	column   int
	def      int
	optional bool
	fields   []fieldLoader
	numRows  int
	nullRows []int
}

func (s *structLoader) load(values [][]parquet.Value) error {
	if s.optional {
		if v := values[s.column]; len(v) == 0 || int(v[0].DefinitionLevel()) < s.def {
			s.nullRows = append(s.nullRows, s.numRows)
		}
	}
	s.numRows++
	for _, field := range s.fields {
		if err := field.load(values); err != nil {
			return err
		}
	}
	return nil
}

func (s *structLoader) build() (*columnar.Column, error) {
	children := make([]*columnar.Column, len(s.fields))
	for i, field := range s.fields {
		child, err := field.build()
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return columnar.NewStructColumn(children, s.nullRows...)
}

// leafConverter returns the kind of column holding the values of a leaf node,
// and the function converting its parquet values to values accepted by the
// builders of that kind.
func leafConverter(node parquet.Node) (columnar.Kind, func(parquet.Value) any, error) {
	typ := node.Type()
	logicalType := typ.LogicalType()
	unsigned := logicalType != nil && logicalType.Integer != nil && !logicalType.Integer.IsSigned

	switch typ.Kind() {
	case parquet.Boolean:
		return columnar.Boolean, func(v parquet.Value) any { return v.Boolean() }, nil
	case parquet.Int32:
		if unsigned {
			return columnar.Uint32, func(v parquet.Value) any { return uint32(v.Int32()) }, nil
		}
		return columnar.Int32, func(v parquet.Value) any { return v.Int32() }, nil
	case parquet.Int64:
		if unsigned {
			return columnar.Uint64, func(v parquet.Value) any { return uint64(v.Int64()) }, nil
		}
		return columnar.Int64, func(v parquet.Value) any { return v.Int64() }, nil
	case parquet.Float:
		return columnar.Float, func(v parquet.Value) any { return v.Float() }, nil
	case parquet.Double:
		return columnar.Double, func(v parquet.Value) any { return v.Double() }, nil
	case parquet.FixedLenByteArray:
		if isUUID(logicalType) {
			return columnar.UUID, func(v parquet.Value) any {
				var id uuid.UUID
				copy(id[:], v.ByteArray())
				return id
			}, nil
		}
		return columnar.ByteArray, copyByteArray, nil
	case parquet.ByteArray:
		return columnar.ByteArray, copyByteArray, nil
	default:
		return 0, nil, errors.Wrapf(columnar.ErrInvalidKind, "unsupported parquet type %s", typ)
	}
}

func isUUID(logicalType *format.LogicalType) bool {
	return logicalType != nil && logicalType.UUID != nil
}

// The values read from parquet files may reference buffers reused by the
// reader.
func copyByteArray(v parquet.Value) any {
	return append([]byte{}, v.ByteArray()...)
}
