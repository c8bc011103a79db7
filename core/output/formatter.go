// Package output provides output formatting interfaces.
// This package produces human and machine-readable evaluation reports.
package output

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"sort"

	"unitcalc/core/history"
	"unitcalc/core/ui"
	"unitcalc/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatText is one result per line, errors in red
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report contains the outcome of a batch evaluation
type Report struct {
	// Results are in input order
	Results []Record `json:"results"`

	// Failed counts failed expressions
	Failed int `json:"failed"`

	NoColor bool `json:"-"`
}

// Record is one evaluated expression
type Record struct {
	Expression string `json:"expression"`

	// Result is the rendered value
	Result string `json:"result,omitempty"`

	Kind string `json:"kind,omitempty"`

	Unit string `json:"unit,omitempty"`

	Value float64 `json:"value,omitempty"`

	Error *ErrorRecord `json:"error,omitempty"`
}

// ErrorRecord describes a failed evaluation
type ErrorRecord struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewReport builds a report from history items
func NewReport(items []history.Item) *Report {
	report := &Report{Results: make([]Record, 0, len(items))}
	for _, item := range items {
		record := Record{Expression: item.Expression}
		if item.Failed() {
			report.Failed++
			record.Error = errorRecord(item.Err)
		} else if item.Value != nil {
			record.Result = item.Text
			record.Kind = item.Value.Kind().String()
			record.Unit = item.Value.Unit().String()
			record.Value = item.Value.Float64()
		}
		report.Results = append(report.Results, record)
	}
	return report
}

func errorRecord(err error) *ErrorRecord {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return &ErrorRecord{Type: string(e.Type), Message: e.Error()}
	}
	return &ErrorRecord{Type: string(errors.TypeInternal), Message: err.Error()}
}

// TextFormatter prints results like the interactive prompt
type TextFormatter struct {
	// ShowExpression echoes each expression before its result
	ShowExpression bool
}

func (f TextFormatter) Format() Format { return FormatText }

func (f TextFormatter) Render(w io.Writer, report *Report) error {
	uw := ui.NewWriter(w, report.NoColor)
	for _, r := range report.Results {
		switch {
		case r.Error != nil && f.ShowExpression:
			uw.Error("%s : %s", r.Expression, r.Error.Message)
		case r.Error != nil:
			uw.Error("%s", r.Error.Message)
		case f.ShowExpression:
			uw.Println("%s = %s", r.Expression, r.Result)
		default:
			uw.Println("%s", r.Result)
		}
	}
	return nil
}

// JSONFormatter prints the report as indented JSON
type JSONFormatter struct{}

func (f JSONFormatter) Format() Format { return FormatJSON }

func (f JSONFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

var formatters = map[Format]Formatter{
	FormatText: TextFormatter{},
	FormatJSON: JSONFormatter{},
}

// GetFormatter returns the formatter registered for a format name
func GetFormatter(format Format) (Formatter, error) {
	f, ok := formatters[format]
	if !ok {
		return nil, errors.NotSupported(fmt.Sprintf("output format %q", format))
	}
	return f, nil
}

// Formats lists the registered format names
func Formats() []string {
	names := make([]string, 0, len(formatters))
	for f := range formatters {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}
