package catalog

import (
	"unitcalc/core/unit"
)

// Base units shared by the registrars; composite definitions reference
// these exact instances.
var (
	Meter    = unit.NewBase("m", "meter")
	Kilogram = unit.NewBase("kg", "kilogram")
	Second   = unit.NewBase("s", "second")
	Ampere   = unit.NewBase("A", "ampere")
	Kelvin   = unit.NewBase("K", "kelvin")
	Mole     = unit.NewBase("mol", "mole")
	Candela  = unit.NewBase("cd", "candela")
)

// RegisterSI populates the catalog with SI base units and common multiples
func RegisterSI(c *Catalog) {
	// Length
	c.native(Length, Meter)
	c.native(Length, unit.NewScaled("km", "kilometer", Meter, 1e3))
	c.native(Length, unit.NewScaled("cm", "centimeter", Meter, 1e-2))
	c.native(Length, unit.NewScaled("mm", "millimeter", Meter, 1e-3))
	c.native(Length, unit.NewScaled("um", "micrometer", Meter, 1e-6))
	c.native(Length, unit.NewScaled("nm", "nanometer", Meter, 1e-9))

	// Mass
	c.native(Mass, Kilogram)
	gram := c.native(Mass, unit.NewScaled("g", "gram", Kilogram, 1e-3))
	c.native(Mass, unit.NewScaled("mg", "milligram", gram, 1e-3))
	c.native(Mass, unit.NewScaled("t", "tonne", Kilogram, 1e3))

	// Time
	c.native(Time, Second)
	c.native(Time, unit.NewScaled("ms", "millisecond", Second, 1e-3))
	minute := c.native(Time, unit.NewScaled("min", "minute", Second, 60))
	hour := c.native(Time, unit.NewScaled("h", "hour", minute, 60))
	c.native(Time, unit.NewScaled("day", "day", hour, 24))

	c.native(Current, Ampere)
	c.native(Current, unit.NewScaled("mA", "milliampere", Ampere, 1e-3))
	c.native(Temperature, Kelvin)
	c.native(Amount, Mole)
	c.native(Luminosity, Candela)
}

// RegisterCustomary populates the catalog with US customary units
func RegisterCustomary(c *Catalog) {
	inch := c.native(Length, unit.NewScaled("inch", "inch", Meter, 0.0254)) // by definition
	foot := c.native(Length, unit.NewScaled("ft", "foot", inch, 12))
	c.native(Length, unit.NewScaled("yd", "yard", foot, 3))
	c.native(Length, unit.NewScaled("mi", "mile", foot, 5280))

	pound := c.native(Mass, unit.NewScaled("lb", "pound", Kilogram, 0.45359237)) // by definition
	c.native(Mass, unit.NewScaled("oz", "ounce", pound, 1.0/16.0))
}

// RegisterDerived populates the catalog with named derived SI units
func RegisterDerived(c *Catalog) {
	e := unit.NewElement

	c.derived("hertz", unit.NewNamed("Hz", e(Second, -1)))
	newton := c.derived("newton", unit.NewNamed("N", e(Kilogram, 1), e(Meter, 1), e(Second, -2)))
	c.derived("pascal", unit.NewNamed("Pa", e(newton, 1), e(Meter, -2)))
	joule := c.derived("joule", unit.NewNamed("J", e(newton, 1), e(Meter, 1)))
	watt := c.derived("watt", unit.NewNamed("W", e(joule, 1), e(Second, -1)))
	c.derived("coulomb", unit.NewNamed("C", e(Ampere, 1), e(Second, 1)))
	c.derived("volt", unit.NewNamed("V", e(watt, 1), e(Ampere, -1)))
}
