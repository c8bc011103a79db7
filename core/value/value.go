// Package value provides calculator values: a numeric payload coupled
// with a unit and a format hint, and the arithmetic contract the
// evaluator drives for every operator node.
//
// Values are immutable. Every operation returns a new Value and leaves
// its operands untouched, so values, units and hints can be shared
// between concurrent evaluations. Binary operations first unify the
// operand kinds through the promotion table, then dispatch to the
// variant.
package value

import (
	"unitcalc/core/evalctx"
	"unitcalc/core/format"
	"unitcalc/core/unit"
)

// Value is a unit-carrying, format-aware computed quantity
type Value interface {
	Kind() Kind
	Unit() unit.Unit
	FormatHint() format.Hint
	Raw() any

	IsScalar() bool
	// IsInteger holds when the payload equals its truncation, with no tolerance
	IsInteger() bool
	Float64() float64
	// Int truncates toward zero and wraps to 32 bits
	Int() int32
	// Long truncates toward zero
	Long() int64

	// Render produces the display string, scaling by the unit
	Render(ctx *evalctx.Context) string
	String() string

	upConvert(ctx *evalctx.Context, to Kind) (Value, error)

	add(ctx *evalctx.Context, b Value) (Value, error)
	sub(ctx *evalctx.Context, b Value) (Value, error)
	mul(ctx *evalctx.Context, b Value) (Value, error)
	div(ctx *evalctx.Context, b Value) (Value, error)
	idiv(ctx *evalctx.Context, b Value) (Value, error)
	mod(ctx *evalctx.Context, b Value) (Value, error)
	bitAnd(ctx *evalctx.Context, b Value) (Value, error)
	bitOr(ctx *evalctx.Context, b Value) (Value, error)
	bitXor(ctx *evalctx.Context, b Value) (Value, error)
	logicShiftL(ctx *evalctx.Context, b Value) (Value, error)
	logicShiftR(ctx *evalctx.Context, b Value) (Value, error)
	arithShiftL(ctx *evalctx.Context, b Value) (Value, error)
	arithShiftR(ctx *evalctx.Context, b Value) (Value, error)
	compare(ctx *evalctx.Context, b Value) (int, error)

	plus(ctx *evalctx.Context) (Value, error)
	neg(ctx *evalctx.Context) (Value, error)
	bitNot(ctx *evalctx.Context) (Value, error)
	sqrt(ctx *evalctx.Context) (Value, error)
	asDimless(ctx *evalctx.Context) (Value, error)
	format(hint format.Hint) Value
}

type binaryOp func(Value, *evalctx.Context, Value) (Value, error)

func binary(ctx *evalctx.Context, a, b Value, op binaryOp) (Value, error) {
	a, b, err := unify(ctx, a, b)
	if err != nil {
		return nil, err
	}
	return op(a, ctx, b)
}

// Add requires dimensionally equal units and keeps the left unit
func Add(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.add)
}

// Sub requires dimensionally equal units and keeps the left unit
func Sub(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.sub)
}

// Mul multiplies payloads and composes units
func Mul(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.mul)
}

// Div divides payloads; the unit is left times inverse right
func Div(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.div)
}

// IDiv divides and truncates toward zero
func IDiv(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.idiv)
}

// Mod returns the floating remainder under the left unit. The right
// operand's unit is neither checked nor applied.
func Mod(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.mod)
}

// BitAnd works on 32-bit truncations; units are dropped
func BitAnd(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.bitAnd)
}

// BitOr works on 32-bit truncations; units are dropped
func BitOr(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.bitOr)
}

// BitXor works on 32-bit truncations; units are dropped
func BitXor(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.bitXor)
}

// LogicShiftL shifts left; shift counts use their low five bits
func LogicShiftL(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.logicShiftL)
}

// LogicShiftR shifts right filling with zeros
func LogicShiftR(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.logicShiftR)
}

// ArithShiftL shifts the low 31 bits left and keeps the sign bit
func ArithShiftL(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.arithShiftL)
}

// ArithShiftR shifts right replicating the sign bit
func ArithShiftR(ctx *evalctx.Context, a, b Value) (Value, error) {
	return binary(ctx, a, b, Value.arithShiftR)
}

// Compare orders two values, returning -1, 0 or +1. Real operands must
// be dimensionally equal.
func Compare(ctx *evalctx.Context, a, b Value) (int, error) {
	a, b, err := unify(ctx, a, b)
	if err != nil {
		return 0, err
	}
	return a.compare(ctx, b)
}

// Plus is the identity
func Plus(ctx *evalctx.Context, v Value) (Value, error) {
	return v.plus(ctx)
}

// Neg negates the payload, keeping unit and hint
func Neg(ctx *evalctx.Context, v Value) (Value, error) {
	return v.neg(ctx)
}

// BitNot complements the 32-bit truncation
func BitNot(ctx *evalctx.Context, v Value) (Value, error) {
	return v.bitNot(ctx)
}

// Sqrt takes the square root of payload and unit
func Sqrt(ctx *evalctx.Context, v Value) (Value, error) {
	return v.sqrt(ctx)
}

// AsDimless strips the unit, keeping payload and hint
func AsDimless(ctx *evalctx.Context, v Value) (Value, error) {
	return v.asDimless(ctx)
}

// Format replaces the format hint
func Format(v Value, hint format.Hint) Value {
	return v.format(hint)
}

// AsReal converts any value to the real variant
func AsReal(ctx *evalctx.Context, v Value) (*Real, error) {
	r, err := v.upConvert(ctx, KindReal)
	if err != nil {
		return nil, err
	}
	return r.(*Real), nil
}
