package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitcalc/core/catalog"
	"unitcalc/internal/config"
)

func TestDefinition(t *testing.T) {
	c := catalog.Default()
	lookup := func(symbol string) string {
		u, ok := c.Lookup(symbol)
		require.True(t, ok, symbol)
		return definition(u)
	}

	assert.Equal(t, "base unit", lookup("m"))
	assert.Equal(t, "1000 m", lookup("km"))
	assert.Equal(t, "3600 s", lookup("h"))
	assert.Equal(t, "kg*m/s^2", lookup("N"))
	assert.Equal(t, "N*m", lookup("J"))
}

func TestNewEvaluatorRejectsUnknownNotation(t *testing.T) {
	cfg := config.Default()
	cfg.Format.Default = "roman"

	_, err := newEvaluator(cfg)
	assert.Error(t, err)

	cfg.Format.Default = "hex"
	ev, err := newEvaluator(cfg)
	require.NoError(t, err)
	assert.NotNil(t, ev)
}
