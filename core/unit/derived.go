package unit

import (
	"fmt"
	"math"
	"strings"

	"unitcalc/core/evalctx"
)

// Derived is a composite unit: an ordered product of elements.
// A named derived unit (N, Hz) is a catalog entry and enumerates in Raw
// mode as a single element referencing itself.
type Derived struct {
	name     string
	elements []Element
}

// NewDerived creates an unnamed composite unit
func NewDerived(elements ...Element) *Derived {
	return &Derived{elements: append([]Element(nil), elements...)}
}

// NewNamed creates a composite unit rendered under its own name
func NewNamed(name string, elements ...Element) *Derived {
	return &Derived{name: name, elements: append([]Element(nil), elements...)}
}

// Name returns the catalog name, empty for computed units
func (d *Derived) Name() string {
	return d.name
}

// Definition returns the elements the unit is defined by
func (d *Derived) Definition() []Element {
	return append([]Element(nil), d.elements...)
}

func (d *Derived) Elements(mode EnumMode) []Element {
	if mode == Dimension {
		return flatten(d.elements)
	}
	if d.name != "" {
		return []Element{{unit: d, exp: 1}}
	}
	return append([]Element(nil), d.elements...)
}

func (d *Derived) ScaleValue(ctx *evalctx.Context, raw float64) float64 {
	for _, elm := range d.elements {
		raw = raw / math.Pow(elm.unit.UnscaleValue(ctx, 1), float64(elm.exp))
	}
	return raw
}

func (d *Derived) UnscaleValue(ctx *evalctx.Context, val float64) float64 {
	for _, elm := range d.elements {
		val = val * math.Pow(elm.unit.UnscaleValue(ctx, 1), float64(elm.exp))
	}
	return val
}

func (d *Derived) IsDimless() bool {
	return len(d.elements) == 0
}

// String renders kg*m/s^2, 1/s or J/(kg*K)
func (d *Derived) String() string {
	if d.name != "" {
		return d.name
	}
	if len(d.elements) == 0 {
		return "1"
	}

	var num, den []string
	for _, elm := range d.elements {
		switch {
		case elm.exp > 0:
			num = append(num, elementString(elm.unit, elm.exp))
		case elm.exp < 0:
			den = append(den, elementString(elm.unit, -elm.exp))
		}
	}

	result := strings.Join(num, "*")
	if result == "" {
		result = "1"
	}
	switch len(den) {
	case 0:
	case 1:
		result += "/" + den[0]
	default:
		result += "/(" + strings.Join(den, "*") + ")"
	}
	return result
}

func (d *Derived) sealed() {}

func elementString(u Unit, exp int) string {
	if exp == 1 {
		return u.String()
	}
	return fmt.Sprintf("%s^%d", u.String(), exp)
}
