package expression

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"unitcalc/core/catalog"
	"unitcalc/core/format"
	"unitcalc/core/value"
	"unitcalc/internal/errors"
	"unitcalc/internal/logging"
)

func newEvaluator(opts ...Option) *Evaluator {
	return New(catalog.Default(), opts...)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer", "42", "42"},
		{"precedence", "1 + 2 * 3", "7"},
		{"parentheses", "(1 + 2) * 3", "9"},
		{"negation", "-(2 - 5)", "3"},
		{"division", "1 / 4", "0.25"},
		{"modulo", "7 % 3", "1"},
		{"speed", "6*m / (3*s)", "2[m/s]"},
		{"area", "2*m * 3*m", "6[m^2]"},
		{"mixed scales", "1*km + 500*m", "1.5[km]"},
		{"left unit wins", "500*m + 1*km", "1500[m]"},
		{"customary", "1*mi > 5000*ft", "true"},
		{"hours", "90*min + 30*min", "120[min]"},
		{"newton", "2*N", "2[N]"},
		{"cancelling units", "(10*m) / (2*m)", "5"},
		{"comparison", "1*km > 500*m", "true"},
		{"equality", "2 == 2.0", "true"},
		{"logical and", "true && false", "false"},
		{"logical or", "false || true", "true"},
		{"not", "!true", "false"},
		{"bool promotes", "true + 1", "2"},
		{"string concat", `"k" + "m"`, `"km"`},
		{"string parses", `"2.5" * 2`, "5"},
		{"empty string", `""`, `""`},
		{"idiv truncates", "idiv(-7, 2)", "-3"},
		{"mod keeps left unit", "mod(7*m, 2)", "1[m]"},
		{"band", "band(12, 10)", "8"},
		{"bor", "bor(12, 10)", "14"},
		{"bxor", "bxor(12, 10)", "6"},
		{"bnot", "bnot(0)", "-1"},
		{"shl", "shl(1, 4)", "16"},
		{"shr", "shr(-1, 28)", "15"},
		{"sal keeps sign", "sal(-1, 1)", "-2"},
		{"sar", "sar(-16, 2)", "-4"},
		{"shift count masked", "shl(1, 33)", "2"},
		{"bitwise drops unit", "band(3*m, 1)", "1"},
		{"sqrt", "sqrt(16)", "4"},
		{"sqrt of area", "sqrt(16*m*m)", "4[m]"},
		{"dimless", "dimless(2*km)", "2000"},
		{"hex", "hex(255)", "0xff"},
		{"bin", "bin(5)", "0b101"},
		{"oct", "oct(64)", "0o100"},
		{"exp", "exp(1234.5, 2)", "1.23e+03"},
		{"si", "si(1500)", "1.5k"},
		{"dec precision", "dec(1/3, 2)", "0.33"},
		{"hint follows left operand", "hex(16) + 1", "0x11"},
		{"unit ignores hint", "hex(1*km)", "1[km]"},
	}

	e := newEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Evaluate(context.Background(), tt.input, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.input, res.Expression)
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errType errors.Type
	}{
		{"empty", "   ", errors.TypeInput},
		{"syntax", "1 +", errors.TypeParsing},
		{"unknown symbol", "3*furlong", errors.TypeNotFound},
		{"unknown function", "cbrt(8)", errors.TypeNotFound},
		{"arity", "idiv(1)", errors.TypeInput},
		{"bad precision", "dec(1, 0.5)", errors.TypeInput},
		{"dimension mismatch", "1*m + 1*s", errors.TypeDimensionMismatch},
		{"compare mismatch", "1*m < 1*kg", errors.TypeDimensionMismatch},
		{"dimensionless plus unit", "1 + 1*m", errors.TypeDimensionMismatch},
		{"odd sqrt", "sqrt(2*m)", errors.TypeNotImplemented},
		{"unparsable string", `"abc" * 2`, errors.TypeConversionFailed},
		{"interpolation", `"${1}x"`, errors.TypeNotSupported},
		{"attribute", "m.x", errors.TypeNotSupported},
		{"conditional", "true ? 1 : 2", errors.TypeNotSupported},
	}

	e := newEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Evaluate(context.Background(), tt.input, nil)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.IsType(err, tt.errType), "got %v", err)
		})
	}
}

func TestDimensionMismatchNamesBothUnits(t *testing.T) {
	_, err := newEvaluator().Evaluate(context.Background(), "2*N - 1*J", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[N]")
	assert.Contains(t, err.Error(), "[J]")
}

func TestScopeShadowsUnits(t *testing.T) {
	e := newEvaluator()
	scope := Scope{
		"ans": value.Number(4),
		"m":   value.Number(10),
	}

	res, err := e.Evaluate(context.Background(), "ans * 2", scope)
	require.NoError(t, err)
	assert.Equal(t, "8", res.Text)

	res, err = e.Evaluate(context.Background(), "m + 1", scope)
	require.NoError(t, err)
	assert.Equal(t, "11", res.Text)

	_, err = e.Evaluate(context.Background(), "ans", nil)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestAnswerChaining(t *testing.T) {
	e := newEvaluator()
	ctx := context.Background()

	first, err := e.Evaluate(ctx, "3*km", nil)
	require.NoError(t, err)

	second, err := e.Evaluate(ctx, "ans / (2*s)", Scope{"ans": first.Value})
	require.NoError(t, err)
	assert.Equal(t, "km/s", second.Value.Unit().String())
	assert.Equal(t, "1.5[km/s]", second.Text)
}

func TestUserScales(t *testing.T) {
	e := newEvaluator(WithUserScales(map[string]float64{"ft": 0.5}))

	res, err := e.Evaluate(context.Background(), "dimless(10*ft)", nil)
	require.NoError(t, err)
	assert.Equal(t, "5", res.Text)

	res, err = e.Evaluate(context.Background(), "4*ft", nil)
	require.NoError(t, err)
	assert.Equal(t, "4[ft]", res.Text)

	// units defined from ft follow the override
	res, err = e.Evaluate(context.Background(), "dimless(1*yd)", nil)
	require.NoError(t, err)
	assert.Equal(t, "1.5", res.Text)

	res, err = e.Evaluate(context.Background(), "dimless(1*mi)", nil)
	require.NoError(t, err)
	assert.Equal(t, "2640", res.Text)

	// other evaluators keep the catalog scale
	res, err = newEvaluator().Evaluate(context.Background(), "dimless(10*ft)", nil)
	require.NoError(t, err)
	assert.InDelta(t, 3.048, res.Value.Float64(), 1e-9)
}

func TestUnusableUserScalesAreReported(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	restore := logging.Replace(zap.New(core))
	defer restore()

	newEvaluator(WithUserScales(map[string]float64{"ft": 0.5, "furlong": 201, "N": 2}))

	unknown := logs.FilterMessage("user scale names an unknown unit").AllUntimed()
	require.Len(t, unknown, 1)
	assert.Equal(t, "furlong", unknown[0].ContextMap()["symbol"])

	derived := logs.FilterMessage("user scale ignored for derived unit").AllUntimed()
	require.Len(t, derived, 1)
	assert.Equal(t, "N", derived[0].ContextMap()["symbol"])
}

func TestWithFormat(t *testing.T) {
	e := newEvaluator(WithFormat(format.Hex))

	res, err := e.Evaluate(context.Background(), "200 + 55", nil)
	require.NoError(t, err)
	assert.Equal(t, "0xff", res.Text)
	assert.Equal(t, format.NotationHex, res.Value.FormatHint().Notation())

	res, err = e.Evaluate(context.Background(), "dec(255)", nil)
	require.NoError(t, err)
	assert.Equal(t, "255", res.Text)
}

func TestEvaluateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newEvaluator().Evaluate(ctx, "1 + 1", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFunctionsAreListed(t *testing.T) {
	fns := Functions()
	require.NotEmpty(t, fns)

	names := make([]string, len(fns))
	for i, fn := range fns {
		names[i] = fn.Name
		assert.NotEmpty(t, fn.Description, fn.Name)
		assert.LessOrEqual(t, fn.MinArgs, fn.MaxArgs, fn.Name)
	}
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "sqrt")
	assert.Contains(t, names, "hex")
}
