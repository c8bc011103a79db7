package expression

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"unitcalc/internal/logging"
)

// Outcome is the result of one expression in a batch
type Outcome struct {
	Index  int
	Result *Result
	Err    error
}

// Failed reports whether the expression failed
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// EvaluateAll evaluates independent expressions concurrently. Outcomes
// keep input order and a failure never affects its neighbours. Only
// context cancellation is returned as an error.
func (e *Evaluator) EvaluateAll(ctx context.Context, inputs []string) ([]Outcome, error) {
	outcomes := make([]Outcome, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxWorkers)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := e.Evaluate(gctx, input, nil)
			outcomes[i] = Outcome{Index: i, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Failed() {
			failed++
		}
	}
	logging.Debug("batch evaluated",
		zap.Int("expressions", len(inputs)),
		zap.Int("failed", failed),
		zap.Int("workers", e.maxWorkers))

	return outcomes, nil
}
