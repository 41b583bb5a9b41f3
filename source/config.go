package source

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/segmentio/columnar"
)

const (
	DefaultComma     = ','
	DefaultNullValue = ""
)

// The Config type carries configuration options for loading data sources.
//
// Config implements the Option interface so it can be used directly as
// argument to the Open function when needed, for example:
//
//	f, err := source.Open("data.csv", &source.Config{
//		Schema: "id:int64,name:string",
//	})
type Config struct {
	// Comma-separated list of name:kind pairs declaring the columns of CSV
	// files. When empty, the columns are named after the header of the file
	// and hold byte arrays.
	Schema string
	// Field delimiter of CSV files.
	Comma rune
	// Text of CSV cells holding null values.
	NullValue string
	// Names of the columns to load. All columns are loaded when empty.
	Columns []string
}

// DefaultConfig returns a new Config value initialized with the default
// source configuration.
func DefaultConfig() *Config {
	return &Config{
		Comma:     DefaultComma,
		NullValue: DefaultNullValue,
	}
}

// NewConfig constructs a new source configuration applying the options passed
// as arguments.
func NewConfig(options ...Option) (*Config, error) {
	config := DefaultConfig()
	config.Apply(options...)
	return config, config.Validate()
}

// Apply applies the given list of options to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.ConfigureSource(c)
	}
}

// ConfigureSource applies configuration options from c to config.
func (c *Config) ConfigureSource(config *Config) {
	*config = Config{
		Schema:    coalesceString(c.Schema, config.Schema),
		Comma:     coalesceRune(c.Comma, config.Comma),
		NullValue: coalesceString(c.NullValue, config.NullValue),
		Columns:   coalesceStrings(c.Columns, config.Columns),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *Config) Validate() error {
	if c.Comma == '\n' || c.Comma == '\r' || c.Comma == '"' {
		return errors.Wrapf(columnar.ErrInvalidArgument, "source.(*Config).Comma: invalid delimiter %q", c.Comma)
	}
	_, err := parseSchema(c.Schema)
	return err
}

// Option is an interface implemented by types that carry configuration options
// for data sources.
type Option interface {
	ConfigureSource(*Config)
}

// Schema configures the columns of CSV files, as a comma-separated list of
// name:kind pairs, for example "id:int64,score:double,name:string".
func Schema(schema string) Option {
	return option(func(config *Config) { config.Schema = schema })
}

// Comma configures the field delimiter of CSV files.
//
// Defaults to ','.
func Comma(comma rune) Option {
	return option(func(config *Config) { config.Comma = comma })
}

// NullValue configures the text of CSV cells holding null values.
//
// Defaults to the empty string.
func NullValue(null string) Option {
	return option(func(config *Config) { config.NullValue = null })
}

// Columns configures the names of the columns to load.
func Columns(names ...string) Option {
	return option(func(config *Config) { config.Columns = names })
}

type option func(*Config)

func (opt option) ConfigureSource(config *Config) { opt(config) }

type columnSpec struct {
	name string
	kind columnar.Kind
}

func parseSchema(schema string) ([]columnSpec, error) {
	if strings.TrimSpace(schema) == "" {
		return nil, nil
	}
	var specs []columnSpec
	for _, field := range strings.Split(schema, ",") {
		name, kindName, ok := strings.Cut(field, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Wrapf(columnar.ErrInvalidArgument, "malformed schema field %q, expected name:kind", field)
		}
		kind, err := columnar.ParseKind(kindName)
		if err != nil {
			return nil, errors.WithMessagef(err, "schema field %q", name)
		}
		if kind.IsNested() {
			return nil, errors.Wrapf(columnar.ErrInvalidKind, "schema field %q: %s columns cannot be loaded from CSV", name, kind)
		}
		specs = append(specs, columnSpec{name: name, kind: kind})
	}
	return specs, nil
}

func coalesceString(s1, s2 string) string {
	if s1 != "" {
		return s1
	}
	return s2
}

func coalesceRune(r1, r2 rune) rune {
	if r1 != 0 {
		return r1
	}
	return r2
}

func coalesceStrings(s1, s2 []string) []string {
	if s1 != nil {
		return s1
	}
	return s2
}
