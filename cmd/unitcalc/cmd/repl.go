// Package cmd - repl command
package cmd

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"unitcalc/core/expression"
	"unitcalc/core/history"
	"unitcalc/core/ui"
	"unitcalc/internal/config"
	"unitcalc/internal/logging"
)

// replCmd reads expressions line by line
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Long: `Read expressions from standard input, one per line.

The previous result is available as ans. Lines starting with ':' are commands:
  :history   list previous expressions
  :clear     clear the history
  :quit      exit
A line of !! re-evaluates the previous input and !N the Nth previous one.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		ev, err := newEvaluator(cfg)
		if err != nil {
			return err
		}
		s := newSession(ev, newWriter(cmd, cfg), cfg.Eval.HistorySize)
		return s.run(cmd.Context(), cmd.InOrStdin(), "> ")
	},
}

type session struct {
	ev      *expression.Evaluator
	w       *ui.Writer
	history *history.History
	recall  *history.Recall
}

func newSession(ev *expression.Evaluator, w *ui.Writer, historySize int) *session {
	return &session{
		ev:      ev,
		w:       w,
		history: history.New(historySize),
		recall:  history.NewRecall(),
	}
}

func (s *session) run(ctx context.Context, in io.Reader, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		s.w.Print("%s", prompt)
		if !scanner.Scan() {
			s.w.Println("")
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return nil
		case line == ":history":
			s.w.History(s.history.Items())
			continue
		case line == ":clear":
			s.history.Clear()
			continue
		case strings.HasPrefix(line, ":"):
			s.w.Error("unknown command %s", line)
			continue
		case isRecall(line):
			recalled, ok := s.recallInput(line[1:])
			if !ok {
				s.w.Error("no such history entry: %s", line)
				continue
			}
			line = recalled
			s.w.Println("%s", line)
		}

		s.evaluate(ctx, line)
	}
}

// isRecall matches !! and !N; other lines starting with ! are expressions
func isRecall(line string) bool {
	if line == "!!" {
		return true
	}
	if len(line) < 2 || line[0] != '!' {
		return false
	}
	_, err := strconv.Atoi(line[1:])
	return err == nil
}

// recallInput walks the recall cursor back n entries, "!" meaning one
func (s *session) recallInput(arg string) (string, bool) {
	n := 1
	if arg != "!" {
		parsed, err := strconv.Atoi(arg)
		if err != nil || parsed < 1 {
			return "", false
		}
		n = parsed
	}

	text := ""
	for i := 0; i < n; i++ {
		var moved bool
		text, moved = s.recall.Up()
		if !moved {
			for s.recall.Index() > 0 {
				s.recall.Down()
			}
			return "", false
		}
	}
	return text, true
}

func (s *session) evaluate(ctx context.Context, line string) {
	s.recall.Submit(line)

	scope := expression.Scope{}
	if ans, ok := s.history.Answer(); ok {
		scope["ans"] = ans
	}

	item := history.Item{Expression: line}
	res, err := s.ev.Evaluate(ctx, line, scope)
	if err != nil {
		item.Err = err
		logging.Debug("repl evaluation failed", zap.String("expression", line), zap.Error(err))
	} else {
		item.Value = res.Value
		item.Text = res.Text
	}

	s.history.Add(item)
	s.w.Result(item)
}
