package unit

import (
	"unitcalc/core/evalctx"
)

// Native is a base unit (m, s) or a unit scaling one (km, min)
type Native struct {
	symbol      string
	description string

	// parent units per one of this unit
	factor float64

	// unit this one is defined from; nil for a base unit
	parent *Native

	// base dimension; nil when the unit is a base itself
	base *Native
}

// NewBase creates a base unit with scale 1
func NewBase(symbol, description string) *Native {
	return &Native{symbol: symbol, description: description, factor: 1}
}

// NewScaled creates a unit worth factor units of base. The factor is
// resolved through base at scaling time, so overriding base rescales it.
func NewScaled(symbol, description string, base *Native, factor float64) *Native {
	root := base.Base()
	return &Native{
		symbol:      symbol,
		description: description,
		factor:      factor,
		parent:      base,
		base:        root,
	}
}

// Symbol returns the unit symbol
func (n *Native) Symbol() string {
	return n.symbol
}

// Description returns the human readable name
func (n *Native) Description() string {
	return n.description
}

// Base returns the base dimension this unit scales
func (n *Native) Base() *Native {
	if n.base == nil {
		return n
	}
	return n.base
}

// Factor returns the unscale factor, honoring user overrides in ctx
func (n *Native) Factor(ctx *evalctx.Context) float64 {
	if factor, ok := ctx.UserScale(n.symbol); ok {
		return factor
	}
	if n.parent == nil {
		return n.factor
	}
	return n.factor * n.parent.Factor(ctx)
}

// Elements yields the unit itself, or its base in Dimension mode
func (n *Native) Elements(mode EnumMode) []Element {
	if mode == Dimension {
		return []Element{{unit: n.Base(), exp: 1}}
	}
	return []Element{{unit: n, exp: 1}}
}

// ScaleValue divides by the unscale factor
func (n *Native) ScaleValue(ctx *evalctx.Context, raw float64) float64 {
	return raw / n.Factor(ctx)
}

// UnscaleValue multiplies by the unscale factor
func (n *Native) UnscaleValue(ctx *evalctx.Context, val float64) float64 {
	return val * n.Factor(ctx)
}

func (n *Native) IsDimless() bool {
	return false
}

func (n *Native) String() string {
	return n.symbol
}

func (n *Native) sealed() {}
