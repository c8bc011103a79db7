// Package ui - Terminal output
// Colored results, history listings and tables for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"unitcalc/core/history"
)

// Colors for terminal output
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Red   = "\033[31m"
	Cyan  = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:     out,
		noColor: noColor,
	}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes formatted text with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("%s", w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println("%s", w.color(Red, "✗ "+msg))
}

// Result prints an evaluated item: the result alone, or the error in red
func (w *Writer) Result(item history.Item) {
	if item.Failed() {
		w.Error("%v", item.Err)
		return
	}
	w.Println("%s", item.Text)
}

// History prints items oldest first, numbering the newest as 1 like the
// recall order; failed items are red
func (w *Writer) History(items []history.Item) {
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		line := fmt.Sprintf("%3d  %s", i+1, item.String())
		if item.Failed() {
			line = w.color(Red, line)
		}
		w.Println("%s", line)
	}
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	format := ""
	for i, w := range t.widths {
		if i > 0 {
			format += " │ "
		}
		format += fmt.Sprintf("%%-%ds", w)
	}

	t.w.Println("%s", t.w.color(Bold, strings.TrimRight(fmt.Sprintf(format, cells(t.headers)...), " ")))

	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println("%s", sep)

	for _, row := range t.rows {
		t.w.Println("%s", strings.TrimRight(fmt.Sprintf(format, cells(row)...), " "))
	}
}

func cells(row []string) []interface{} {
	args := make([]interface{}, len(row))
	for i, cell := range row {
		args[i] = cell
	}
	return args
}
