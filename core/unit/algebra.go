package unit

import (
	"unitcalc/internal/errors"
)

// Multiply composes two units. Exponents of matching units add, zero
// exponents are dropped and the remaining elements keep their order.
func Multiply(a, b Unit) Unit {
	elems := a.Elements(Raw)
	for _, elm := range b.Elements(Raw) {
		elems = merge(elems, elm.unit, elm.exp)
	}
	return fromElements(elems)
}

// Invert negates every exponent
func Invert(u Unit) Unit {
	elems := u.Elements(Raw)
	for i := range elems {
		elems[i].exp = -elems[i].exp
	}
	return fromElements(elems)
}

// Sqrt halves every exponent. Units with an odd exponent have no square
// root in this algebra and fail with a NOT_IMPLEMENTED error.
func Sqrt(u Unit) (Unit, error) {
	elems := u.Elements(Raw)
	for i := range elems {
		if elems[i].exp%2 != 0 {
			return nil, errors.NotImplemented("square root of [" + u.String() + "]")
		}
		elems[i].exp /= 2
	}
	return fromElements(elems), nil
}

// DimensionEqual reports whether two units share the same base
// dimension signature, ignoring element order and scale factors
func DimensionEqual(a, b Unit) bool {
	sa := signature(a)
	sb := signature(b)
	if len(sa) != len(sb) {
		return false
	}
	for base, exp := range sa {
		if sb[base] != exp {
			return false
		}
	}
	return true
}

// AssertDimensionEquality fails with DIMENSION_MISMATCH unless a and b
// are dimensionally equal
func AssertDimensionEquality(a, b Unit) error {
	if !DimensionEqual(a, b) {
		return errors.DimensionMismatch(a.String(), b.String())
	}
	return nil
}

func signature(u Unit) map[Unit]int {
	sig := make(map[Unit]int)
	for _, elm := range u.Elements(Dimension) {
		sig[elm.unit] += elm.exp
	}
	return sig
}

// flatten expands elements into base dimensions
func flatten(elems []Element) []Element {
	var out []Element
	for _, elm := range elems {
		for _, dim := range elm.unit.Elements(Dimension) {
			out = merge(out, dim.unit, dim.exp*elm.exp)
		}
	}
	return dropZero(out)
}

func merge(elems []Element, u Unit, exp int) []Element {
	for i := range elems {
		if elems[i].unit == u {
			elems[i].exp += exp
			return elems
		}
	}
	return append(elems, Element{unit: u, exp: exp})
}

func dropZero(elems []Element) []Element {
	out := elems[:0]
	for _, elm := range elems {
		if elm.exp != 0 {
			out = append(out, elm)
		}
	}
	return out
}

// fromElements returns the simplest unit for a product: Dimless when
// empty, the unit itself for a single exponent-one element
func fromElements(elems []Element) Unit {
	elems = dropZero(elems)
	switch {
	case len(elems) == 0:
		return Dimless
	case len(elems) == 1 && elems[0].exp == 1:
		return elems[0].unit
	default:
		return NewDerived(elems...)
	}
}
