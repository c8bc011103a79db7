package value

import (
	"cmp"
	"math"

	"unitcalc/core/evalctx"
	"unitcalc/core/format"
	"unitcalc/core/unit"
	"unitcalc/internal/errors"
)

// Real is the scalar real variant: a float64 payload in canonical units
type Real struct {
	raw  float64
	hint format.Hint
	unit unit.Unit
}

// NewReal creates a real value; a nil unit means dimensionless
func NewReal(x float64, hint format.Hint, u unit.Unit) *Real {
	if u == nil {
		u = unit.Dimless
	}
	return &Real{raw: x, hint: hint, unit: u}
}

// Number creates a dimensionless real with the default hint
func Number(x float64) *Real {
	return NewReal(x, format.Default, unit.Dimless)
}

func (r *Real) Kind() Kind { return KindReal }
func (r *Real) Unit() unit.Unit { return r.unit }
func (r *Real) FormatHint() format.Hint { return r.hint }
func (r *Real) Raw() any { return r.raw }
func (r *Real) IsScalar() bool { return true }
func (r *Real) IsInteger() bool { return r.raw == math.Trunc(r.raw) }
func (r *Real) Float64() float64 { return r.raw }
func (r *Real) Long() int64 { return int64(r.raw) }
func (r *Real) Int() int32 { return int32(int64(r.raw)) }
func (r *Real) String() string { return r.Render(nil) }
func (r *Real) format(h format.Hint) Value { return NewReal(r.raw, h, r.unit) }

// Render uses the format hint for dimensionless values and
// scaled[unit] otherwise
func (r *Real) Render(ctx *evalctx.Context) string {
	if r.unit.IsDimless() {
		return r.hint.Format(r.raw)
	}
	return format.Default.Format(r.unit.ScaleValue(ctx, r.raw)) + "[" + r.unit.String() + "]"
}

func (r *Real) upConvert(ctx *evalctx.Context, to Kind) (Value, error) {
	if to == KindReal {
		return r, nil
	}
	return nil, errors.TypeConversion(r.Kind().String(), to.String())
}

func (r *Real) peer(b Value) *Real {
	return b.(*Real)
}

// Add and Sub combine raw payloads directly. Payloads are canonical, so
// 1 km + 500 m is 1500 canonical meters rendered under km.
func (r *Real) add(ctx *evalctx.Context, b Value) (Value, error) {
	if err := unit.AssertDimensionEquality(r.unit, b.Unit()); err != nil {
		return nil, err
	}
	return NewReal(r.raw+r.peer(b).raw, r.hint, r.unit), nil
}

func (r *Real) sub(ctx *evalctx.Context, b Value) (Value, error) {
	if err := unit.AssertDimensionEquality(r.unit, b.Unit()); err != nil {
		return nil, err
	}
	return NewReal(r.raw-r.peer(b).raw, r.hint, r.unit), nil
}

func (r *Real) mul(ctx *evalctx.Context, b Value) (Value, error) {
	bv := r.peer(b)
	return NewReal(r.raw*bv.raw, r.hint, unit.Multiply(r.unit, bv.unit)), nil
}

func (r *Real) div(ctx *evalctx.Context, b Value) (Value, error) {
	bv := r.peer(b)
	return NewReal(r.raw/bv.raw, r.hint, unit.Multiply(r.unit, unit.Invert(bv.unit))), nil
}

func (r *Real) idiv(ctx *evalctx.Context, b Value) (Value, error) {
	bv := r.peer(b)
	return NewReal(math.Trunc(r.raw/bv.raw), r.hint, unit.Multiply(r.unit, unit.Invert(bv.unit))), nil
}

func (r *Real) mod(ctx *evalctx.Context, b Value) (Value, error) {
	return NewReal(math.Mod(r.raw, r.peer(b).raw), r.hint, r.unit), nil
}

// Bitwise and shift results are dimensionless; operands are truncated
// to 32 bits without complaint.

func (r *Real) bitAnd(ctx *evalctx.Context, b Value) (Value, error) {
	return r.int32Result(r.Int() & b.Int()), nil
}

func (r *Real) bitOr(ctx *evalctx.Context, b Value) (Value, error) {
	return r.int32Result(r.Int() | b.Int()), nil
}

func (r *Real) bitXor(ctx *evalctx.Context, b Value) (Value, error) {
	return r.int32Result(r.Int() ^ b.Int()), nil
}

func (r *Real) logicShiftL(ctx *evalctx.Context, b Value) (Value, error) {
	return r.int32Result(r.Int() << shiftCount(b)), nil
}

func (r *Real) logicShiftR(ctx *evalctx.Context, b Value) (Value, error) {
	return r.int32Result(int32(uint32(r.Int()) >> shiftCount(b))), nil
}

func (r *Real) arithShiftL(ctx *evalctx.Context, b Value) (Value, error) {
	a := uint32(r.Int())
	sign := a & (1 << 31)
	shifted := (a << shiftCount(b)) & 0x7fffffff
	return r.int32Result(int32(sign | shifted)), nil
}

func (r *Real) arithShiftR(ctx *evalctx.Context, b Value) (Value, error) {
	return r.int32Result(r.Int() >> shiftCount(b)), nil
}

func (r *Real) int32Result(x int32) *Real {
	return NewReal(float64(x), r.hint, unit.Dimless)
}

// shiftCount keeps the low five bits, like a 32-bit machine shift
func shiftCount(b Value) uint {
	return uint(b.Int()) & 31
}

func (r *Real) compare(ctx *evalctx.Context, b Value) (int, error) {
	if err := unit.AssertDimensionEquality(r.unit, b.Unit()); err != nil {
		return 0, err
	}
	return cmp.Compare(r.raw, r.peer(b).raw), nil
}

func (r *Real) plus(ctx *evalctx.Context) (Value, error) {
	return r, nil
}

func (r *Real) neg(ctx *evalctx.Context) (Value, error) {
	return NewReal(-r.raw, r.hint, r.unit), nil
}

// bitNot keeps the unit, unlike the binary bitwise operators
func (r *Real) bitNot(ctx *evalctx.Context) (Value, error) {
	return NewReal(float64(^r.Int()), r.hint, r.unit), nil
}

func (r *Real) sqrt(ctx *evalctx.Context) (Value, error) {
	u, err := unit.Sqrt(r.unit)
	if err != nil {
		return nil, err
	}
	return NewReal(math.Sqrt(r.raw), r.hint, u), nil
}

func (r *Real) asDimless(ctx *evalctx.Context) (Value, error) {
	return NewReal(r.raw, r.hint, unit.Dimless), nil
}
