// Package unit provides the unit algebra used by calculator values.
// A unit is a product of exponentiated base units. Units are immutable
// and shared: composite units only reference the catalog entries they
// are built from.
package unit

import (
	"unitcalc/core/evalctx"
)

// EnumMode selects how a unit enumerates its elements
type EnumMode int

const (
	// Raw yields the elements as written (km*m stays km*m)
	Raw EnumMode = iota

	// Dimension maps every element onto its base dimension and merges
	// matching bases (km*m becomes m^2)
	Dimension
)

// Unit describes a dimension as a product of unit elements
type Unit interface {
	// Elements enumerates the (unit, exponent) pairs of this unit.
	// The returned slice is owned by the caller.
	Elements(mode EnumMode) []Element

	// ScaleValue converts a canonical payload into this unit's magnitude
	ScaleValue(ctx *evalctx.Context, raw float64) float64

	// UnscaleValue converts a magnitude in this unit into a canonical payload
	UnscaleValue(ctx *evalctx.Context, val float64) float64

	// IsDimless reports whether the unit has no elements
	IsDimless() bool

	String() string

	// sealed keeps the variant set closed to this package
	sealed()
}

// Element is one (unit, exponent) term of a unit
type Element struct {
	unit Unit
	exp  int
}

// NewElement creates an element referencing u
func NewElement(u Unit, exp int) Element {
	return Element{unit: u, exp: exp}
}

// Unit returns the referenced unit
func (e Element) Unit() Unit {
	return e.unit
}

// Exp returns the exponent
func (e Element) Exp() int {
	return e.exp
}

// Dimless is the shared dimensionless unit
var Dimless Unit = &Derived{}
