// Package evalctx - Evaluation context
// A Context lives for exactly one top-level evaluation and is passed
// explicitly into every unit scaling and arithmetic call.
package evalctx

import (
	"github.com/google/uuid"
)

// Context carries per-evaluation data needed by unit scaling
type Context struct {
	id uuid.UUID

	// User overrides of unit unscale factors, keyed by unit symbol
	userScales map[string]float64
}

// Option configures a Context
type Option func(*Context)

// WithUserScales snapshots user-defined unit scales into the context
func WithUserScales(scales map[string]float64) Option {
	return func(c *Context) {
		for symbol, factor := range scales {
			c.userScales[symbol] = factor
		}
	}
}

// WithID fixes the evaluation ID, mostly useful in tests
func WithID(id uuid.UUID) Option {
	return func(c *Context) {
		c.id = id
	}
}

// New creates a new evaluation context
func New(opts ...Option) *Context {
	c := &Context{
		id:         uuid.New(),
		userScales: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID identifies the evaluation in logs
func (c *Context) ID() uuid.UUID {
	return c.id
}

// UserScale returns the user-defined unscale factor for a unit symbol
func (c *Context) UserScale(symbol string) (float64, bool) {
	if c == nil {
		return 0, false
	}
	factor, ok := c.userScales[symbol]
	return factor, ok
}
