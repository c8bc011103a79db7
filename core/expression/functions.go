package expression

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclsyntax"

	"unitcalc/core/evalctx"
	"unitcalc/core/format"
	"unitcalc/core/value"
	"unitcalc/internal/errors"
)

// Function is a callable available in expressions
type Function struct {
	Name        string
	Description string
	MinArgs     int
	MaxArgs     int
	call        func(ctx *evalctx.Context, args []value.Value) (value.Value, error)
}

func binaryFunction(name, description string, op binaryFunc) *Function {
	return &Function{
		Name:        name,
		Description: description,
		MinArgs:     2,
		MaxArgs:     2,
		call: func(ctx *evalctx.Context, args []value.Value) (value.Value, error) {
			return op(ctx, args[0], args[1])
		},
	}
}

func unaryFunction(name, description string, op func(*evalctx.Context, value.Value) (value.Value, error)) *Function {
	return &Function{
		Name:        name,
		Description: description,
		MinArgs:     1,
		MaxArgs:     1,
		call: func(ctx *evalctx.Context, args []value.Value) (value.Value, error) {
			return op(ctx, args[0])
		},
	}
}

// formatFunction re-tags a value with a hint; an optional second
// argument sets the precision
func formatFunction(name string, hint format.Hint) *Function {
	return &Function{
		Name:        name,
		Description: fmt.Sprintf("render with %s notation", hint.Notation()),
		MinArgs:     1,
		MaxArgs:     2,
		call: func(ctx *evalctx.Context, args []value.Value) (value.Value, error) {
			h := hint
			if len(args) == 2 {
				p := args[1]
				if !p.IsScalar() || !p.IsInteger() || p.Long() < 0 {
					return nil, errors.Input("precision must be a non-negative integer")
				}
				h = h.WithPrecision(int32(p.Long()))
			}
			return value.Format(args[0], h), nil
		},
	}
}

var functions = map[string]*Function{}

func register(fns ...*Function) {
	for _, fn := range fns {
		functions[fn.Name] = fn
	}
}

func init() {
	register(
		binaryFunction("idiv", "integer division, truncated toward zero", value.IDiv),
		binaryFunction("mod", "remainder in the unit of the left operand", value.Mod),
		binaryFunction("band", "bitwise and of 32-bit integers", value.BitAnd),
		binaryFunction("bor", "bitwise or of 32-bit integers", value.BitOr),
		binaryFunction("bxor", "bitwise xor of 32-bit integers", value.BitXor),
		binaryFunction("shl", "logical shift left", value.LogicShiftL),
		binaryFunction("shr", "logical shift right", value.LogicShiftR),
		binaryFunction("sal", "arithmetic shift left, keeping the sign", value.ArithShiftL),
		binaryFunction("sar", "arithmetic shift right", value.ArithShiftR),
		unaryFunction("bnot", "bitwise complement, keeping the unit", value.BitNot),
		unaryFunction("sqrt", "square root", value.Sqrt),
		unaryFunction("dimless", "drop the unit, keeping the magnitude in base units", value.AsDimless),
		formatFunction("dec", format.Default),
		formatFunction("hex", format.Hex),
		formatFunction("bin", format.Binary),
		formatFunction("oct", format.Octal),
		formatFunction("exp", format.Exp),
		formatFunction("si", format.SI),
	)
}

// Functions lists the available functions sorted by name
func Functions() []Function {
	result := make([]Function, 0, len(functions))
	for _, fn := range functions {
		result = append(result, *fn)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func (w *walker) call(x *hclsyntax.FunctionCallExpr) (value.Value, error) {
	fn, ok := functions[x.Name]
	if !ok {
		return nil, errors.NotFound("function", x.Name)
	}
	if x.ExpandFinal {
		return nil, errors.NotSupported("argument expansion")
	}
	if len(x.Args) < fn.MinArgs || len(x.Args) > fn.MaxArgs {
		return nil, errors.Newf(errors.TypeInput, "%s takes %s, got %d", fn.Name, arity(fn), len(x.Args))
	}

	args := make([]value.Value, len(x.Args))
	for i, arg := range x.Args {
		v, err := w.eval(arg)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return fn.call(w.ctx, args)
}

func arity(fn *Function) string {
	if fn.MinArgs == fn.MaxArgs {
		if fn.MinArgs == 1 {
			return "1 argument"
		}
		return fmt.Sprintf("%d arguments", fn.MinArgs)
	}
	return fmt.Sprintf("%d to %d arguments", fn.MinArgs, fn.MaxArgs)
}
