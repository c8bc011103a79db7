// Package expression evaluates calculator expressions.
// Input is parsed with the HCL expression syntax and the resulting tree is
// walked node by node, driving the value arithmetic contract. Bare unit
// symbols are quantities of one unit: 3*km/h is three kilometers per hour.
package expression

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"unitcalc/core/catalog"
	"unitcalc/core/evalctx"
	"unitcalc/core/format"
	"unitcalc/core/unit"
	"unitcalc/core/value"
	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

// Scope supplies named values, such as the previous answer
type Scope map[string]value.Value

// Result is the outcome of one successful evaluation
type Result struct {
	Expression string
	Value      value.Value
	Text       string
}

// Evaluator evaluates expressions against a unit catalog
type Evaluator struct {
	catalog    *catalog.Catalog
	userScales map[string]float64
	hint       format.Hint
	maxWorkers int
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithUserScales overrides catalog unit scales in every evaluation
func WithUserScales(scales map[string]float64) Option {
	return func(e *Evaluator) {
		e.userScales = scales
	}
}

// WithFormat sets the hint attached to numeric literals
func WithFormat(hint format.Hint) Option {
	return func(e *Evaluator) {
		e.hint = hint
	}
}

// WithMaxWorkers bounds EvaluateAll concurrency
func WithMaxWorkers(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.maxWorkers = n
		}
	}
}

// New creates an evaluator
func New(cat *catalog.Catalog, opts ...Option) *Evaluator {
	e := &Evaluator{
		catalog:    cat,
		hint:       format.Default,
		maxWorkers: 4,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.checkUserScales()
	return e
}

// checkUserScales warns about overrides that no evaluation can apply
func (e *Evaluator) checkUserScales() {
	for symbol := range e.userScales {
		u, ok := e.catalog.Lookup(symbol)
		if !ok {
			logging.Warn("user scale names an unknown unit", zap.String("symbol", symbol))
			continue
		}
		if _, native := u.(*unit.Native); !native {
			logging.Warn("user scale ignored for derived unit", zap.String("symbol", symbol))
		}
	}
}

// Evaluate parses and evaluates one expression. Every call runs under a
// fresh evaluation context; a failure leaves no partial result.
func (e *Evaluator) Evaluate(ctx context.Context, input string, scope Scope) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input) == "" {
		return nil, errors.Input("empty expression")
	}

	expr, diags := hclsyntax.ParseExpression([]byte(input), "<input>", hcl.Pos{Line: 1, Column: 1, Byte: 0})
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid expression", diags)
	}

	ectx := evalctx.New(evalctx.WithUserScales(e.userScales))
	log := logging.With(zap.String("eval_id", ectx.ID().String()), zap.String("expression", input))

	w := &walker{ev: e, ctx: ectx, scope: scope}
	v, err := w.eval(expr)
	if err != nil {
		log.Debug("evaluation failed", zap.Error(err))
		return nil, err
	}

	text := v.Render(ectx)
	log.Debug("evaluated", zap.String("kind", v.Kind().String()), zap.String("result", text))
	return &Result{Expression: input, Value: v, Text: text}, nil
}

type walker struct {
	ev    *Evaluator
	ctx   *evalctx.Context
	scope Scope
}

func (w *walker) eval(expr hclsyntax.Expression) (value.Value, error) {
	switch x := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		return w.literal(x.Val)
	case *hclsyntax.TemplateExpr:
		return w.template(x)
	case *hclsyntax.ParenthesesExpr:
		return w.eval(x.Expression)
	case *hclsyntax.ScopeTraversalExpr:
		return w.symbol(x.Traversal)
	case *hclsyntax.UnaryOpExpr:
		return w.unary(x)
	case *hclsyntax.BinaryOpExpr:
		return w.binary(x)
	case *hclsyntax.FunctionCallExpr:
		return w.call(x)
	default:
		return nil, errors.NotSupported(fmt.Sprintf("%T", expr))
	}
}

func (w *walker) literal(v cty.Value) (value.Value, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, errors.Input("null is not a value")
	}
	switch {
	case v.Type().Equals(cty.Number):
		f, _ := v.AsBigFloat().Float64()
		return value.NewReal(f, w.ev.hint, unit.Dimless), nil
	case v.Type().Equals(cty.Bool):
		return value.NewBool(v.True()), nil
	case v.Type().Equals(cty.String):
		return value.NewStr(v.AsString()), nil
	default:
		return nil, errors.NotSupported(v.Type().FriendlyName() + " literal")
	}
}

func (w *walker) template(x *hclsyntax.TemplateExpr) (value.Value, error) {
	switch len(x.Parts) {
	case 0:
		return value.NewStr(""), nil
	case 1:
		if lit, ok := x.Parts[0].(*hclsyntax.LiteralValueExpr); ok {
			return w.literal(lit.Val)
		}
	}
	return nil, errors.NotSupported("string interpolation")
}

// symbol resolves scope names first, then unit symbols as one unit
func (w *walker) symbol(traversal hcl.Traversal) (value.Value, error) {
	if len(traversal) > 1 {
		return nil, errors.NotSupported("attribute access")
	}
	name := traversal.RootName()

	if v, ok := w.scope[name]; ok {
		return v, nil
	}
	if u, ok := w.ev.catalog.Lookup(name); ok {
		return value.NewReal(u.UnscaleValue(w.ctx, 1), w.ev.hint, u), nil
	}
	return nil, errors.NotFound("symbol", name)
}

func (w *walker) unary(x *hclsyntax.UnaryOpExpr) (value.Value, error) {
	v, err := w.eval(x.Val)
	if err != nil {
		return nil, err
	}
	switch x.Op {
	case hclsyntax.OpNegate:
		return value.Neg(w.ctx, v)
	case hclsyntax.OpLogicalNot:
		return value.BitNot(w.ctx, v)
	}
	return nil, errors.NotSupported("unary operator")
}

type binaryFunc func(*evalctx.Context, value.Value, value.Value) (value.Value, error)

var arithmetic = map[*hclsyntax.Operation]binaryFunc{
	hclsyntax.OpAdd:        value.Add,
	hclsyntax.OpSubtract:   value.Sub,
	hclsyntax.OpMultiply:   value.Mul,
	hclsyntax.OpDivide:     value.Div,
	hclsyntax.OpModulo:     value.Mod,
	hclsyntax.OpLogicalAnd: value.BitAnd,
	hclsyntax.OpLogicalOr:  value.BitOr,
}

var comparisons = map[*hclsyntax.Operation]func(int) bool{
	hclsyntax.OpEqual:              func(c int) bool { return c == 0 },
	hclsyntax.OpNotEqual:           func(c int) bool { return c != 0 },
	hclsyntax.OpLessThan:           func(c int) bool { return c < 0 },
	hclsyntax.OpLessThanOrEqual:    func(c int) bool { return c <= 0 },
	hclsyntax.OpGreaterThan:        func(c int) bool { return c > 0 },
	hclsyntax.OpGreaterThanOrEqual: func(c int) bool { return c >= 0 },
}

func (w *walker) binary(x *hclsyntax.BinaryOpExpr) (value.Value, error) {
	a, err := w.eval(x.LHS)
	if err != nil {
		return nil, err
	}
	b, err := w.eval(x.RHS)
	if err != nil {
		return nil, err
	}

	if op, ok := arithmetic[x.Op]; ok {
		return op(w.ctx, a, b)
	}
	if test, ok := comparisons[x.Op]; ok {
		c, err := value.Compare(w.ctx, a, b)
		if err != nil {
			return nil, err
		}
		return value.NewBool(test(c)), nil
	}
	return nil, errors.NotSupported("binary operator")
}
