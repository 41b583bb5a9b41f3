// Command uniqcount counts the distinct rows of sorted data files.
//
// The rows of the input files must already be sorted (or at least grouped)
// on the selected columns; uniqcount counts runs of equal consecutive rows
// and does not sort its input.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "uniqcount [flags] file...",
		Short:         "Count the distinct rows of sorted CSV or parquet files",
		Args:          cobra.MinimumNArgs(1),
		RunE:          runCount,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.String("config", "", "TOML configuration file")
	flags.StringSliceP("columns", "c", nil, "columns to compare (default: all)")
	flags.Bool("each", false, "count the distinct values of each column separately")
	flags.String("nulls", "include", "null values in per-column counts: include or exclude")
	flags.String("nan", "value", "NaN values in per-column counts: value or null")
	flags.String("nulls-equal", "equal", "comparison of null values in row counts: equal or unequal")
	flags.String("schema", "", "CSV column kinds, as name:kind pairs (e.g. id:int64,name:string)")
	flags.String("null-value", "", "text of null CSV cells")
	flags.StringP("format", "f", "table", "output format: table or json")
	flags.Int("workers", 0, "number of goroutines counting rows (default: GOMAXPROCS)")
	flags.Int("grain", 0, "minimum number of rows counted by each task")
	flags.String("log-level", "", "log level (default: info)")
	flags.String("log-format", "", "log format: console or json")
	flags.String("log-file", "", "log file, rotated when it grows (default: stderr)")
	return cmd
}
