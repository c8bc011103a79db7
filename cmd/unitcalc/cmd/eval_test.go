package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitcalc/internal/config"
)

func evalWith(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	prev := config.Get()
	config.Set(cfg)
	t.Cleanup(func() { config.Set(prev) })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)

	err := runEval(cmd, args)
	return out.String(), err
}

func TestEvalWithoutTimeout(t *testing.T) {
	cfg := config.Default()
	cfg.Format.NoColor = true
	cfg.Eval.TimeoutMillis = 0

	out, err := evalWith(t, cfg, "1+1", "6*m / (3*s)")
	require.NoError(t, err)
	assert.Equal(t, "2\n2[m/s]\n", out)
}

func TestEvalReportsFailures(t *testing.T) {
	cfg := config.Default()
	cfg.Format.NoColor = true

	out, err := evalWith(t, cfg, "1*km + 500*m", "1*m + 1*s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 expressions failed")
	assert.Contains(t, out, "1.5[km]\n")
	assert.Contains(t, out, "✗ [DIMENSION_MISMATCH]")
}

func TestEvalJSONOutput(t *testing.T) {
	cfg := config.Default()
	cfg.Format.Default = "hex"

	outputFormat = "json"
	t.Cleanup(func() { outputFormat = "text" })

	out, err := evalWith(t, cfg, "255")
	require.NoError(t, err)

	var report struct {
		Results []struct {
			Result string `json:"result"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, "0xff", report.Results[0].Result)
}
