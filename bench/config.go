package bench

import (
	"errors"
	"fmt"
)

const (
	DefaultInnerIterations int64 = 1_000_000_000
	DefaultOuterIterations int64 = 1
)

var ErrInvalidConfig = errors.New("invalid harness config")

// Config controls how many times each case is executed.
type Config struct {
	// InnerIterations is the number of timed calls per outer iteration.
	InnerIterations int64
	// OuterIterations is the number of timed repetitions, one result line each.
	OuterIterations int64
	Clock           Clock
}

func DefaultConfig() Config {
	return Config{
		InnerIterations: DefaultInnerIterations,
		OuterIterations: DefaultOuterIterations,
		Clock:           SystemClock(),
	}
}

func (c Config) Validate() error {
	if c.InnerIterations <= 0 {
		return fmt.Errorf("%w: inner iterations must be positive, got %d", ErrInvalidConfig, c.InnerIterations)
	}
	if c.OuterIterations <= 0 {
		return fmt.Errorf("%w: outer iterations must be positive, got %d", ErrInvalidConfig, c.OuterIterations)
	}
	if c.Clock == nil {
		return fmt.Errorf("%w: clock is nil", ErrInvalidConfig)
	}
	return nil
}

type Option func(*Config)

func WithInnerIterations(n int64) Option {
	return func(c *Config) { c.InnerIterations = n }
}

func WithOuterIterations(n int64) Option {
	return func(c *Config) { c.OuterIterations = n }
}

func WithClock(clock Clock) Option {
	return func(c *Config) { c.Clock = clock }
}
