package columnar

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/segmentio/columnar/stream"
)

// The CountConfig type carries configuration options for distinct counts.
//
// CountConfig implements the CountOption interface so it can be used directly
// as argument to the UniqueCount functions when needed, for example:
//
//	n, err := columnar.UniqueCountTable(table, columnar.NullsEqual, &columnar.CountConfig{
//		Stream: s,
//	})
type CountConfig struct {
	// The stream that the counting passes run on.
	Stream *stream.Stream
	// Logger receiving debug information about the execution of counts.
	Logger *zap.Logger
}

// DefaultCountConfig returns a new CountConfig value initialized with the
// default configuration: the process-wide default stream and a no-op logger.
func DefaultCountConfig() *CountConfig {
	return &CountConfig{
		Stream: stream.Default(),
		Logger: zap.NewNop(),
	}
}

// NewCountConfig constructs a new configuration applying the options passed
// as arguments.
func NewCountConfig(options ...CountOption) (*CountConfig, error) {
	config := DefaultCountConfig()
	config.Apply(options...)
	return config, config.Validate()
}

// Apply applies the given list of options to c.
func (c *CountConfig) Apply(options ...CountOption) {
	for _, opt := range options {
		opt.ConfigureCount(c)
	}
}

// ConfigureCount applies configuration options from c to config.
func (c *CountConfig) ConfigureCount(config *CountConfig) {
	*config = CountConfig{
		Stream: coalesceStream(c.Stream, config.Stream),
		Logger: coalesceLogger(c.Logger, config.Logger),
	}
}

// Validate returns a non-nil error if the configuration of c is invalid.
func (c *CountConfig) Validate() error {
	const baseName = "columnar.(*CountConfig)."
	if c.Stream == nil {
		return errors.Wrapf(ErrInvalidArgument, "%sStream must not be nil", baseName)
	}
	if c.Logger == nil {
		return errors.Wrapf(ErrInvalidArgument, "%sLogger must not be nil", baseName)
	}
	return nil
}

// CountOption is an interface implemented by types that carry configuration
// options for distinct counts.
type CountOption interface {
	ConfigureCount(*CountConfig)
}

// OnStream configures the stream that counting passes run on.
//
// Defaults to stream.Default().
func OnStream(s *stream.Stream) CountOption {
	return countOption(func(config *CountConfig) { config.Stream = s })
}

// Logger configures the logger receiving debug information about counts.
//
// Defaults to a no-op logger.
func Logger(logger *zap.Logger) CountOption {
	return countOption(func(config *CountConfig) { config.Logger = logger })
}

type countOption func(*CountConfig)

func (opt countOption) ConfigureCount(config *CountConfig) { opt(config) }

func coalesceStream(s1, s2 *stream.Stream) *stream.Stream {
	if s1 != nil {
		return s1
	}
	return s2
}

func coalesceLogger(l1, l2 *zap.Logger) *zap.Logger {
	if l1 != nil {
		return l1
	}
	return l2
}
