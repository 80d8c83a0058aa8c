package litematic

import (
	"log/slog"

	"github.com/arloliu/litematic/internal/options"
	"github.com/arloliu/litematic/nbt"
)

// IOConfig holds settings shared by Load, Save and the verification helpers.
type IOConfig struct {
	logger *slog.Logger
	codec  []nbt.Option
}

// Option configures litematic operations.
type Option = options.Option[*IOConfig]

// WithLogger routes progress and warnings to logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *IOConfig) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithCodecOptions passes options through to the nbt codec.
func WithCodecOptions(opts ...nbt.Option) Option {
	return options.NoError(func(c *IOConfig) {
		c.codec = append(c.codec, opts...)
	})
}

func newConfig(opts []Option) *IOConfig {
	cfg := &IOConfig{logger: slog.New(slog.DiscardHandler)}
	// every litematic option is infallible
	_ = options.Apply(cfg, opts...)

	return cfg
}

// codecOptions returns the configured codec options plus the logger.
func (c *IOConfig) codecOptions() []nbt.Option {
	out := make([]nbt.Option, 0, len(c.codec)+1)
	out = append(out, nbt.WithLogger(c.logger))

	return append(out, c.codec...)
}
