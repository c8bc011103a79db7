package value

import (
	"math"
	"strconv"
	"strings"

	"unitcalc/core/evalctx"
	"unitcalc/core/format"
	"unitcalc/core/unit"
	"unitcalc/internal/errors"
)

// Str is a text value. Two strings concatenate under Add and compare
// lexically; any other use parses the text as a number, failing with a
// TYPE_CONVERSION error when it is not one.
type Str struct {
	raw  string
	hint format.Hint
}

// NewStr creates a string value
func NewStr(s string) *Str {
	return &Str{raw: s, hint: format.Default}
}

func (v *Str) Kind() Kind { return KindString }
func (v *Str) Unit() unit.Unit { return unit.Dimless }
func (v *Str) FormatHint() format.Hint { return v.hint }
func (v *Str) Raw() any { return v.raw }
func (v *Str) IsScalar() bool { return false }
func (v *Str) IsInteger() bool { return false }
func (v *Str) String() string { return v.Render(nil) }

func (v *Str) Render(ctx *evalctx.Context) string {
	return strconv.Quote(v.raw)
}

// Float64 returns NaN when the text is not a number
func (v *Str) Float64() float64 {
	x, err := v.parse()
	if err != nil {
		return math.NaN()
	}
	return x
}

func (v *Str) Int() int32 { return int32(int64(v.Float64())) }
func (v *Str) Long() int64 { return int64(v.Float64()) }

func (v *Str) parse() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(v.raw), 64)
}

func (v *Str) upConvert(ctx *evalctx.Context, to Kind) (Value, error) {
	switch to {
	case KindString:
		return v, nil
	case KindReal:
		x, err := v.parse()
		if err != nil {
			return nil, errors.TypeConversion(v.Kind().String(), to.String()).WithContext("text", v.raw)
		}
		return NewReal(x, v.hint, unit.Dimless), nil
	}
	return nil, errors.TypeConversion(v.Kind().String(), to.String())
}

func (v *Str) add(ctx *evalctx.Context, b Value) (Value, error) {
	return &Str{raw: v.raw + b.(*Str).raw, hint: v.hint}, nil
}

func (v *Str) sub(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.sub)
}

func (v *Str) mul(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.mul)
}

func (v *Str) div(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.div)
}

func (v *Str) idiv(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.idiv)
}

func (v *Str) mod(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.mod)
}

func (v *Str) bitAnd(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.bitAnd)
}

func (v *Str) bitOr(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.bitOr)
}

func (v *Str) bitXor(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.bitXor)
}

func (v *Str) logicShiftL(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.logicShiftL)
}

func (v *Str) logicShiftR(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.logicShiftR)
}

func (v *Str) arithShiftL(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.arithShiftL)
}

func (v *Str) arithShiftR(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.arithShiftR)
}

func (v *Str) compare(ctx *evalctx.Context, b Value) (int, error) {
	return strings.Compare(v.raw, b.(*Str).raw), nil
}

func (v *Str) plus(ctx *evalctx.Context) (Value, error) {
	return v, nil
}

func (v *Str) neg(ctx *evalctx.Context) (Value, error) {
	r, err := AsReal(ctx, v)
	if err != nil {
		return nil, err
	}
	return r.neg(ctx)
}

func (v *Str) bitNot(ctx *evalctx.Context) (Value, error) {
	r, err := AsReal(ctx, v)
	if err != nil {
		return nil, err
	}
	return r.bitNot(ctx)
}

func (v *Str) sqrt(ctx *evalctx.Context) (Value, error) {
	r, err := AsReal(ctx, v)
	if err != nil {
		return nil, err
	}
	return r.sqrt(ctx)
}

func (v *Str) asDimless(ctx *evalctx.Context) (Value, error) {
	return v, nil
}

func (v *Str) format(h format.Hint) Value {
	return &Str{raw: v.raw, hint: h}
}
