package main

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/segmentio/columnar"
	"github.com/segmentio/columnar/internal/logutil"
	"github.com/segmentio/columnar/source"
	"github.com/segmentio/columnar/stream"
)

// result is the outcome of counting the distinct rows of a set of columns of
// a file.
type result struct {
	File     string   `json:"file"`
	Columns  []string `json:"columns"`
	Rows     int      `json:"rows"`
	Distinct int      `json:"distinct"`
}

func runCount(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := loadConfig(path)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, c); err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	output, err := outputOf(format)
	if err != nil {
		return err
	}

	logger, err := logutil.NewLogger(&c.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := stream.New(&stream.Config{
		Workers: c.Count.Workers,
		Grain:   c.Count.Grain,
	})
	if err != nil {
		return err
	}
	defer s.Close()

	options := []columnar.CountOption{
		columnar.OnStream(s),
		columnar.Logger(logger),
	}

	var results []result
	for _, file := range args {
		r, err := countFile(file, c, logger, options)
		if err != nil {
			return errors.WithMessage(err, file)
		}
		results = append(results, r...)
	}
	return output(cmd.OutOrStdout(), results)
}

func countFile(file string, c *config, logger *zap.Logger, options []columnar.CountOption) ([]result, error) {
	start := time.Now()

	frame, err := source.Open(file, &source.Config{
		Schema:    c.Source.Schema,
		NullValue: c.Source.NullValue,
		Columns:   c.Source.Columns,
	})
	if err != nil {
		return nil, err
	}
	// Parquet files do not preserve the order of the selected columns.
	if frame, err = frame.Select(c.Source.Columns...); err != nil {
		return nil, err
	}

	logger.Info("loaded file",
		zap.String("file", file),
		zap.Strings("columns", frame.Names),
		zap.Int("rows", frame.Table.NumRows()),
		zap.Duration("duration", time.Since(start)),
	)

	if !c.Count.Each {
		distinct, err := columnar.UniqueCountTable(frame.Table, c.Count.NullsEqual, options...)
		if err != nil {
			return nil, err
		}
		return []result{{
			File:     file,
			Columns:  frame.Names,
			Rows:     frame.Table.NumRows(),
			Distinct: distinct,
		}}, nil
	}

	results := make([]result, frame.Table.NumColumns())
	for i, col := range frame.Table.Columns() {
		distinct, err := columnar.UniqueCount(col, c.Count.Nulls, c.Count.NaN, options...)
		if err != nil {
			return nil, errors.WithMessagef(err, "column %q", frame.Names[i])
		}
		results[i] = result{
			File:     file,
			Columns:  []string{frame.Names[i]},
			Rows:     col.Len(),
			Distinct: distinct,
		}
	}
	return results, nil
}

// applyFlags overrides the configuration with the flags set on the command
// line.
func applyFlags(cmd *cobra.Command, c *config) (err error) {
	flags := cmd.Flags()
	changed := func(name string) bool { return flags.Changed(name) }

	if changed("nulls") {
		s, _ := flags.GetString("nulls")
		if c.Count.Nulls, err = columnar.ParseNullPolicy(s); err != nil {
			return err
		}
	}
	if changed("nan") {
		s, _ := flags.GetString("nan")
		if c.Count.NaN, err = columnar.ParseNaNPolicy(s); err != nil {
			return err
		}
	}
	if changed("nulls-equal") {
		s, _ := flags.GetString("nulls-equal")
		if c.Count.NullsEqual, err = columnar.ParseNullEquality(s); err != nil {
			return err
		}
	}
	if changed("each") {
		c.Count.Each, _ = flags.GetBool("each")
	}
	if changed("workers") {
		c.Count.Workers, _ = flags.GetInt("workers")
	}
	if changed("grain") {
		c.Count.Grain, _ = flags.GetInt("grain")
	}
	if changed("columns") {
		c.Source.Columns, _ = flags.GetStringSlice("columns")
	}
	if changed("schema") {
		c.Source.Schema, _ = flags.GetString("schema")
	}
	if changed("null-value") {
		c.Source.NullValue, _ = flags.GetString("null-value")
	}
	if changed("log-level") {
		c.Log.Level, _ = flags.GetString("log-level")
	}
	if changed("log-format") {
		c.Log.Format, _ = flags.GetString("log-format")
	}
	if changed("log-file") {
		c.Log.Filename, _ = flags.GetString("log-file")
	}

	for i, name := range c.Source.Columns {
		c.Source.Columns[i] = strings.TrimSpace(name)
	}
	return nil
}
