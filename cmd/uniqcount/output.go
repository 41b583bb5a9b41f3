package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"

	"github.com/segmentio/columnar"
)

type outputFunc func(io.Writer, []result) error

func outputOf(format string) (outputFunc, error) {
	switch strings.ToLower(format) {
	case "table":
		return writeTable, nil
	case "json":
		return writeJSON, nil
	default:
		return nil, errors.Wrapf(columnar.ErrInvalidArgument, "unsupported output format %q", format)
	}
}

func writeTable(w io.Writer, results []result) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"FILE", "COLUMNS", "ROWS", "DISTINCT"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range results {
		table.Append([]string{
			r.File,
			strings.Join(r.Columns, ","),
			strconv.Itoa(r.Rows),
			strconv.Itoa(r.Distinct),
		})
	}

	table.Render()
	return nil
}

func writeJSON(w io.Writer, results []result) error {
	if results == nil {
		results = []result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
