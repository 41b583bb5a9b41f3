package source

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/segmentio/columnar"
)

// ReadCSV loads a frame from the CSV content of r.
//
// The first record of the input is a header naming the columns. The kinds of
// the columns are declared by the Schema option; columns absent from the
// schema hold byte arrays. Cells matching the configured null value are null.
func ReadCSV(r io.Reader, options ...Option) (*Frame, error) {
	config, err := NewConfig(options...)
	if err != nil {
		return nil, err
	}
	specs, _ := parseSchema(config.Schema)

	reader := csv.NewReader(r)
	reader.Comma = config.Comma
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(columnar.ErrInvalidArgument, "CSV input has no header")
		}
		return nil, errors.Wrap(err, "reading CSV header")
	}
	names := append([]string(nil), header...)

	kinds := make(map[string]columnar.Kind, len(specs))
	for _, spec := range specs {
		kinds[spec.name] = spec.kind
	}

	selected := make([]int, 0, len(names))
	if len(config.Columns) == 0 {
		for i := range names {
			selected = append(selected, i)
		}
	} else {
		for _, name := range config.Columns {
			index := indexOf(names, name)
			if index < 0 {
				return nil, errors.Wrapf(columnar.ErrInvalidArgument, "CSV input has no column named %q", name)
			}
			selected = append(selected, index)
		}
	}

	builders := make([]*columnar.Builder, len(selected))
	parsers := make([]cellParser, len(selected))
	for i, index := range selected {
		kind, ok := kinds[names[index]]
		if !ok {
			kind = columnar.ByteArray
		}
		builders[i] = columnar.NewBuilder(kind)
		parsers[i] = cellParserOf(kind)
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "reading CSV line %d", line)
		}

		for i, index := range selected {
			cell := record[index]
			if cell == config.NullValue {
				builders[i].AppendNull()
				continue
			}
			value, err := parsers[i](cell)
			if err != nil {
				return nil, errors.Wrapf(columnar.ErrInvalidArgument, "CSV line %d, column %q: %v", line, names[index], err)
			}
			if err := builders[i].Append(value); err != nil {
				return nil, errors.WithMessagef(err, "CSV line %d, column %q", line, names[index])
			}
		}
	}

	columns := make([]*columnar.Column, len(builders))
	selectedNames := make([]string, len(selected))
	for i, b := range builders {
		columns[i] = b.Build()
		selectedNames[i] = names[selected[i]]
	}
	return newFrame(selectedNames, columns)
}

// cellParser converts the text of a CSV cell to a value accepted by the
// builder of a column.
type cellParser func(string) (any, error)

func cellParserOf(kind columnar.Kind) cellParser {
	switch kind {
	case columnar.Boolean:
		return func(s string) (any, error) { return strconv.ParseBool(s) }
	case columnar.Int32, columnar.Int64:
		return func(s string) (any, error) { return strconv.ParseInt(s, 10, 64) }
	case columnar.Uint32, columnar.Uint64:
		return func(s string) (any, error) { return strconv.ParseUint(s, 10, 64) }
	case columnar.Float, columnar.Double:
		return func(s string) (any, error) { return strconv.ParseFloat(s, 64) }
	default: // byte arrays and UUIDs are converted by the builders
		return func(s string) (any, error) { return s, nil }
	}
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
