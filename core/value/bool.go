package value

import (
	"cmp"

	"unitcalc/core/evalctx"
	"unitcalc/core/format"
	"unitcalc/core/unit"
	"unitcalc/internal/errors"
)

// Bool is a dimensionless truth value. Logical operators stay boolean;
// everything else promotes to Real as 1 or 0.
type Bool struct {
	raw  bool
	hint format.Hint
}

// NewBool creates a boolean value
func NewBool(b bool) *Bool {
	return &Bool{raw: b, hint: format.Default}
}

func (v *Bool) Kind() Kind { return KindBool }
func (v *Bool) Unit() unit.Unit { return unit.Dimless }
func (v *Bool) FormatHint() format.Hint { return v.hint }
func (v *Bool) Raw() any { return v.raw }
func (v *Bool) IsScalar() bool { return true }
func (v *Bool) IsInteger() bool { return true }
func (v *Bool) Float64() float64 { return float64(v.bit()) }
func (v *Bool) Int() int32 { return v.bit() }
func (v *Bool) Long() int64 { return int64(v.bit()) }
func (v *Bool) String() string { return v.Render(nil) }

func (v *Bool) Render(ctx *evalctx.Context) string {
	if v.raw {
		return "true"
	}
	return "false"
}

func (v *Bool) bit() int32 {
	if v.raw {
		return 1
	}
	return 0
}

func (v *Bool) real() *Real {
	return NewReal(v.Float64(), v.hint, unit.Dimless)
}

func (v *Bool) upConvert(ctx *evalctx.Context, to Kind) (Value, error) {
	switch to {
	case KindBool:
		return v, nil
	case KindReal:
		return v.real(), nil
	}
	return nil, errors.TypeConversion(v.Kind().String(), to.String())
}

// viaReal promotes both operands to Real and applies op
func viaReal(ctx *evalctx.Context, a, b Value, op binaryOp) (Value, error) {
	ra, err := AsReal(ctx, a)
	if err != nil {
		return nil, err
	}
	rb, err := AsReal(ctx, b)
	if err != nil {
		return nil, err
	}
	return op(ra, ctx, rb)
}

func (v *Bool) add(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.add)
}

func (v *Bool) sub(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.sub)
}

func (v *Bool) mul(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.mul)
}

func (v *Bool) div(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.div)
}

func (v *Bool) idiv(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.idiv)
}

func (v *Bool) mod(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.mod)
}

func (v *Bool) bitAnd(ctx *evalctx.Context, b Value) (Value, error) {
	return &Bool{raw: v.raw && b.(*Bool).raw, hint: v.hint}, nil
}

func (v *Bool) bitOr(ctx *evalctx.Context, b Value) (Value, error) {
	return &Bool{raw: v.raw || b.(*Bool).raw, hint: v.hint}, nil
}

func (v *Bool) bitXor(ctx *evalctx.Context, b Value) (Value, error) {
	return &Bool{raw: v.raw != b.(*Bool).raw, hint: v.hint}, nil
}

func (v *Bool) logicShiftL(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.logicShiftL)
}

func (v *Bool) logicShiftR(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.logicShiftR)
}

func (v *Bool) arithShiftL(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.arithShiftL)
}

func (v *Bool) arithShiftR(ctx *evalctx.Context, b Value) (Value, error) {
	return viaReal(ctx, v, b, Value.arithShiftR)
}

func (v *Bool) compare(ctx *evalctx.Context, b Value) (int, error) {
	return cmp.Compare(v.bit(), b.(*Bool).bit()), nil
}

func (v *Bool) plus(ctx *evalctx.Context) (Value, error) {
	return v, nil
}

func (v *Bool) neg(ctx *evalctx.Context) (Value, error) {
	return v.real().neg(ctx)
}

func (v *Bool) bitNot(ctx *evalctx.Context) (Value, error) {
	return &Bool{raw: !v.raw, hint: v.hint}, nil
}

func (v *Bool) sqrt(ctx *evalctx.Context) (Value, error) {
	return v.real().sqrt(ctx)
}

func (v *Bool) asDimless(ctx *evalctx.Context) (Value, error) {
	return v, nil
}

func (v *Bool) format(h format.Hint) Value {
	return &Bool{raw: v.raw, hint: h}
}
