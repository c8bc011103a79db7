package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeConversionCarriesBothKinds(t *testing.T) {
	err := TypeConversion("bool", "string")

	require.True(t, err.Is(TypeConversionFailed))
	assert.Equal(t, "bool", err.Context["from"])
	assert.Equal(t, "string", err.Context["to"])
	assert.Equal(t, "[TYPE_CONVERSION] bool cannot be converted to string", err.Error())
}

func TestIsTypeFollowsWrappedErrors(t *testing.T) {
	inner := DimensionMismatch("m", "s")
	outer := fmt.Errorf("evaluating %q: %w", "1*m + 1*s", inner)

	assert.True(t, IsType(outer, TypeDimensionMismatch))
	assert.False(t, IsType(outer, TypeNotImplemented))
	assert.False(t, IsType(fmt.Errorf("plain"), TypeDimensionMismatch))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("unexpected token")
	err := Parsing("invalid expression", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unexpected token")
}
