package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"unitcalc/core/history"
	"unitcalc/core/value"
	"unitcalc/internal/errors"
)

func TestResultColorsFailures(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)

	w.Result(history.Item{Expression: "1+1", Value: value.Number(2), Text: "2"})
	w.Result(history.Item{Expression: "1*m + 1*s", Err: errors.DimensionMismatch("m", "s")})

	out := buf.String()
	assert.Contains(t, out, "2\n")
	assert.Contains(t, out, Red+"✗ [DIMENSION_MISMATCH] dimension mismatch: [m] and [s]"+Reset)
}

func TestNoColor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	w.Error("bad %s", "input")
	w.Header("units")

	assert.Equal(t, "✗ bad input\n━━━ units ━━━\n", buf.String())
}

func TestHistoryOldestFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	h := history.New(0)
	h.Add(history.Item{Expression: "1", Text: "1"})
	h.Add(history.Item{Expression: "2%", Err: errors.Parsing("invalid expression", nil)})
	w.History(h.Items())

	assert.Equal(t, "  2  1 = 1\n  1  2% : [PARSING_ERROR] invalid expression\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("symbol", "unit")
	table.AddRow("km", "kilometer")
	table.AddRow("m")
	table.Render()

	assert.Equal(t,
		"symbol │ unit\n"+
			"───────┼──────────\n"+
			"km     │ kilometer\n"+
			"m      │\n",
		buf.String())
}
