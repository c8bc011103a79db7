package format

import (
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Decimal renders plain decimal digits; Precision < 0 keeps the
// shortest representation that round-trips
type Decimal struct {
	Precision int32
}

func (f Decimal) Format(x float64) string {
	if s, ok := special(x); ok {
		return s
	}
	d := decimal.NewFromFloat(x)
	if f.Precision >= 0 {
		return d.StringFixed(f.Precision)
	}
	return d.String()
}

// Radix renders the integer part of the payload in another base
type Radix struct {
	Base   int
	Prefix string
}

func (f Radix) Format(x float64) string {
	if s, ok := special(x); ok {
		return s
	}
	// truncates toward zero without a 64-bit limit
	n, _ := new(big.Float).SetFloat64(x).Int(nil)
	if n.Sign() < 0 {
		return "-" + f.Prefix + n.Neg(n).Text(f.Base)
	}
	return f.Prefix + n.Text(f.Base)
}

// Exponent renders scientific notation
type Exponent struct {
	Precision int32
}

func (f Exponent) Format(x float64) string {
	if s, ok := special(x); ok {
		return s
	}
	return strconv.FormatFloat(x, 'e', int(f.Precision), 64)
}

var siPrefixes = map[int32]string{
	-24: "y", -21: "z", -18: "a", -15: "f", -12: "p", -9: "n", -6: "u", -3: "m",
	0: "", 3: "k", 6: "M", 9: "G", 12: "T", 15: "P", 18: "E", 21: "Z", 24: "Y",
}

// SIPrefix renders engineering notation with an SI prefix: 1.5k, 20m
type SIPrefix struct {
	Precision int32
}

func (f SIPrefix) Format(x float64) string {
	if s, ok := special(x); ok {
		return s
	}
	if x == 0 {
		return "0"
	}

	exp := int32(math.Floor(math.Log10(math.Abs(x))/3)) * 3
	exp = max(-24, min(24, exp))

	mantissa := decimal.NewFromFloat(x).Shift(-exp)
	if f.Precision >= 0 {
		return mantissa.StringFixed(f.Precision) + siPrefixes[exp]
	}
	return mantissa.String() + siPrefixes[exp]
}

func special(x float64) (string, bool) {
	switch {
	case math.IsNaN(x):
		return "NaN", true
	case math.IsInf(x, 1):
		return "Inf", true
	case math.IsInf(x, -1):
		return "-Inf", true
	}
	return "", false
}
