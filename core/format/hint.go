// Package format provides format hints: immutable rendering policies
// attached to values, independent of their unit.
package format

import (
	"sort"
)

// Notation selects how a numeric payload renders
type Notation string

const (
	NotationDecimal  Notation = "dec"
	NotationHex      Notation = "hex"
	NotationBinary   Notation = "bin"
	NotationOctal    Notation = "oct"
	NotationExponent Notation = "exp"
	NotationSI       Notation = "si"
)

// Formatter renders a payload
type Formatter interface {
	Format(x float64) string
}

// Hint couples a notation with the formatter implementing it.
// The zero Hint renders as shortest decimal.
type Hint struct {
	notation  Notation
	formatter Formatter
}

// NewHint creates a hint from a formatter
func NewHint(notation Notation, formatter Formatter) Hint {
	return Hint{notation: notation, formatter: formatter}
}

// Notation returns the notation selector
func (h Hint) Notation() Notation {
	if h.formatter == nil {
		return NotationDecimal
	}
	return h.notation
}

// Format renders x
func (h Hint) Format(x float64) string {
	if h.formatter == nil {
		return Decimal{Precision: -1}.Format(x)
	}
	return h.formatter.Format(x)
}

// WithPrecision returns a hint of the same notation with fixed decimals.
// Integer notations ignore precision.
func (h Hint) WithPrecision(precision int32) Hint {
	switch f := h.formatter.(type) {
	case Decimal:
		f.Precision = precision
		return NewHint(h.notation, f)
	case SIPrefix:
		f.Precision = precision
		return NewHint(h.notation, f)
	case Exponent:
		f.Precision = precision
		return NewHint(h.notation, f)
	case nil:
		return NewHint(NotationDecimal, Decimal{Precision: precision})
	default:
		return h
	}
}

var (
	// Default renders shortest round-trip decimal
	Default = NewHint(NotationDecimal, Decimal{Precision: -1})

	Hex      = NewHint(NotationHex, Radix{Base: 16, Prefix: "0x"})
	Binary   = NewHint(NotationBinary, Radix{Base: 2, Prefix: "0b"})
	Octal    = NewHint(NotationOctal, Radix{Base: 8, Prefix: "0o"})
	Exp      = NewHint(NotationExponent, Exponent{Precision: -1})
	SI       = NewHint(NotationSI, SIPrefix{Precision: -1})
	catalog  = map[string]Hint{}
	ordering []string
)

func init() {
	for _, h := range []Hint{Default, Hex, Binary, Octal, Exp, SI} {
		catalog[string(h.notation)] = h
		ordering = append(ordering, string(h.notation))
	}
	sort.Strings(ordering)
}

// Lookup returns the shared hint registered under name
func Lookup(name string) (Hint, bool) {
	h, ok := catalog[name]
	return h, ok
}

// Names lists the registered formatter names
func Names() []string {
	return append([]string(nil), ordering...)
}
