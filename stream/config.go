package stream

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultGrain is the default number of rows processed by each task.
	DefaultGrain = 16384
)

// The Config type carries configuration options for streams.
//
// Config implements the Option interface so it can be used directly as
// argument to the New function when needed, for example:
//
//	s, err := stream.New(&stream.Config{
//		Workers: 4,
//	})
type Config struct {
	// Number of goroutines executing the tasks of the stream.
	Workers int
	// Minimum number of rows processed by each task. Operations over fewer
	// rows than the grain run inline on the calling goroutine.
	Grain int
}

// DefaultConfig returns a new Config value initialized with the default
// stream configuration.
func DefaultConfig() *Config {
	return &Config{
		Workers: runtime.GOMAXPROCS(0),
		Grain:   DefaultGrain,
	}
}

// NewConfig constructs a new stream configuration applying the options passed
// as arguments.
func NewConfig(options ...Option) (*Config, error) {
	config := DefaultConfig()
	config.Apply(options...)
	return config, config.Validate()
}

// Apply applies the given list of options to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.ConfigureStream(c)
	}
}

// ConfigureStream applies configuration options from c to config.
func (c *Config) ConfigureStream(config *Config) {
	*config = Config{
		Workers: coalesceInt(c.Workers, config.Workers),
		Grain:   coalesceInt(c.Grain, config.Grain),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *Config) Validate() error {
	const baseName = "stream.(*Config)."
	return errorInvalidConfiguration(
		validatePositiveInt(baseName+"Workers", c.Workers),
		validatePositiveInt(baseName+"Grain", c.Grain),
	)
}

// Option is an interface implemented by types that carry configuration options
// for streams.
type Option interface {
	ConfigureStream(*Config)
}

// Workers configures the number of goroutines executing the tasks of a stream.
//
// Defaults to GOMAXPROCS.
func Workers(n int) Option {
	return option(func(config *Config) { config.Workers = n })
}

// Grain configures the minimum number of rows processed by each task.
//
// Defaults to DefaultGrain.
func Grain(n int) Option {
	return option(func(config *Config) { config.Grain = n })
}

type option func(*Config)

func (opt option) ConfigureStream(config *Config) { opt(config) }

func coalesceInt(i1, i2 int) int {
	if i1 != 0 {
		return i1
	}
	return i2
}

func validatePositiveInt(optionName string, optionValue int) error {
	if optionValue > 0 {
		return nil
	}
	return errorInvalidOptionValue(optionName, optionValue)
}

func errorInvalidOptionValue(optionName string, optionValue interface{}) error {
	return errors.Errorf("invalid option value: %s: %v", optionName, optionValue)
}

func errorInvalidConfiguration(reasons ...error) error {
	var err *invalidConfiguration

	for _, reason := range reasons {
		if reason != nil {
			if err == nil {
				err = new(invalidConfiguration)
			}
			err.reasons = append(err.reasons, reason)
		}
	}

	if err != nil {
		return err
	}

	return nil
}

type invalidConfiguration struct {
	reasons []error
}

func (err *invalidConfiguration) Error() string {
	errorMessage := new(strings.Builder)
	for _, reason := range err.reasons {
		errorMessage.WriteString(reason.Error())
		errorMessage.WriteString("\n")
	}
	errorString := errorMessage.String()
	if errorString != "" {
		errorString = errorString[:len(errorString)-1]
	}
	return errorString
}
