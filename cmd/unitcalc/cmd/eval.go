// Package cmd - eval command
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"unitcalc/core/history"
	"unitcalc/core/output"
	"unitcalc/internal/config"
	"unitcalc/internal/logging"
)

var (
	outputFormat   string
	showExpression bool
)

// evalCmd evaluates expressions given as arguments
var evalCmd = &cobra.Command{
	Use:   "eval EXPR...",
	Short: "Evaluate one or more expressions",
	Long: `Evaluate expressions concurrently and print one result per line, in order.

A failing expression prints its error and does not affect the others.

Examples:
  unitcalc eval "6*m / (3*s)"
  unitcalc eval --format hex "band(255, 12)" "shl(1, 4)"
  unitcalc eval -e "1*km + 500*m" "1*m + 1*s"
  unitcalc eval --output json "sqrt(16*m*m)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "output format (json, text)")
	evalCmd.Flags().BoolVarP(&showExpression, "expression", "e", false, "echo each expression before its result")
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	ev, err := newEvaluator(cfg)
	if err != nil {
		return err
	}

	formatter, err := output.GetFormatter(output.Format(outputFormat))
	if err != nil {
		return err
	}
	if text, ok := formatter.(output.TextFormatter); ok {
		text.ShowExpression = showExpression
		formatter = text
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Eval.TimeoutMillis > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Eval.TimeoutMillis)*time.Millisecond)
		defer cancel()
	}

	logging.Info("Evaluating expressions")
	outcomes, err := ev.EvaluateAll(ctx, args)
	if err != nil {
		return fmt.Errorf("evaluation aborted: %w", err)
	}

	items := make([]history.Item, len(outcomes))
	for i, o := range outcomes {
		items[i] = history.Item{Expression: args[o.Index], Err: o.Err}
		if o.Result != nil {
			items[i].Value = o.Result.Value
			items[i].Text = o.Result.Text
		}
	}

	report := output.NewReport(items)
	report.NoColor = cfg.Format.NoColor
	if err := formatter.Render(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", report.Failed, len(args))
	}
	return nil
}
