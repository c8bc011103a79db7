package expression

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitcalc/internal/errors"
)

func TestEvaluateAllKeepsFailuresIndependent(t *testing.T) {
	e := newEvaluator(WithMaxWorkers(2))
	inputs := []string{
		"1*km + 500*m",
		"1*m + 1*s",
		"hex(255)",
		"1 +",
		"idiv(-7, 2)",
	}

	outcomes, err := e.EvaluateAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, outcomes, len(inputs))

	for i, o := range outcomes {
		assert.Equal(t, i, o.Index)
	}

	assert.False(t, outcomes[0].Failed())
	assert.Equal(t, "1.5[km]", outcomes[0].Result.Text)

	assert.True(t, outcomes[1].Failed())
	assert.True(t, errors.IsType(outcomes[1].Err, errors.TypeDimensionMismatch))
	assert.Nil(t, outcomes[1].Result)

	assert.Equal(t, "0xff", outcomes[2].Result.Text)

	assert.True(t, errors.IsType(outcomes[3].Err, errors.TypeParsing))

	assert.Equal(t, "-3", outcomes[4].Result.Text)
}

func TestEvaluateAllMatchesSequentialResults(t *testing.T) {
	e := newEvaluator(WithMaxWorkers(8))

	inputs := make([]string, 100)
	for i := range inputs {
		inputs[i] = fmt.Sprintf("%d*m / (2*s)", i*2)
	}

	outcomes, err := e.EvaluateAll(context.Background(), inputs)
	require.NoError(t, err)

	for i, o := range outcomes {
		require.NoError(t, o.Err)
		assert.Equal(t, fmt.Sprintf("%d[m/s]", i), o.Result.Text)
	}
}

func TestEvaluateAllEmpty(t *testing.T) {
	outcomes, err := newEvaluator().EvaluateAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestEvaluateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes, err := newEvaluator().EvaluateAll(ctx, []string{"1", "2"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, outcomes)
}
