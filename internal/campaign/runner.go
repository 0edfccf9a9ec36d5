package campaign

import (
	"context"
	"errors"
	"fmt"
	"os"

	"dtr/internal/domain"
	"dtr/internal/execution"
	"dtr/internal/ui"
)

// ErrInvalidTarget indicates a target path that does not exist or is
// not a regular file.
var ErrInvalidTarget = errors.New("invalid target executable")

// Runner owns the two target executables, the comparator and the case
// generator, and drives campaigns of generated cases against both
// targets. A Runner is not safe for concurrent use.
type Runner struct {
	exec1      string
	exec2      string
	generator  domain.Generator
	comparator domain.Comparator
	executor   *execution.Executor
	progress   *ui.ProgressBar

	// Next case number. Shared by every sequence of this runner.
	cursor int
}

// New creates a Runner. Both target paths are validated eagerly so a
// bad path fails before any subprocess is spawned; nothing else is
// checked until cases are pulled. A nil generator defaults to GenEmpty
// and a nil comparator to CmpAll.
func New(exec1, exec2 string, gen domain.Generator, cmp domain.Comparator, exec *execution.Executor) (*Runner, error) {
	for i, path := range []string{exec1, exec2} {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: exec%d %q", ErrInvalidTarget, i+1, path)
		}
	}
	if gen == nil {
		gen = domain.GenEmpty
	}
	if cmp == nil {
		cmp = domain.CmpAll
	}
	if exec == nil {
		exec = execution.NewExecutor(0)
	}
	return &Runner{
		exec1:      exec1,
		exec2:      exec2,
		generator:  gen,
		comparator: cmp,
		executor:   exec,
		cursor:     1,
	}, nil
}

// SetProgress sets the progress bar updated per produced verdict.
func (r *Runner) SetProgress(progress *ui.ProgressBar) {
	r.progress = progress
}

// Outcome is the terminal result of a drive loop: either the campaign
// completed with an equivalence judgment, or it was cancelled before
// finishing. Equivalent and Divergence are meaningful only when
// Cancelled is false.
type Outcome struct {
	Cancelled  bool
	Equivalent bool
	CasesRun   int
	Divergence *domain.Verdict
}

// Run drives a sequence of limit cases (0 = unbounded) until
// exhaustion, the first divergence, or ctx cancellation, whichever
// comes first. Presentation options are validated up front; an invalid
// combination fails before any case runs. Cancellation is observed
// between cases only, so a case that has started runs to completion
// or to timeout first.
func (r *Runner) Run(ctx context.Context, limit int, opts Options) (Outcome, error) {
	if err := opts.Validate(); err != nil {
		return Outcome{}, err
	}

	seq := r.Sequence(limit)
	var equivalent, diverged int
	for {
		select {
		case <-ctx.Done():
			return Outcome{Cancelled: true, CasesRun: equivalent + diverged}, nil
		default:
		}

		v, ok, err := seq.Next()
		if err != nil {
			return Outcome{CasesRun: equivalent + diverged},
				fmt.Errorf("after %d case(s): %w", equivalent+diverged, err)
		}
		if !ok {
			break
		}

		if v.Equivalent {
			equivalent++
		} else {
			diverged++
		}
		if r.progress != nil {
			r.progress.Update(equivalent, diverged)
		}
		if !v.Equivalent {
			if r.progress != nil {
				r.progress.Finish()
			}
			return Outcome{CasesRun: equivalent + diverged, Divergence: &v}, nil
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}
	return Outcome{Equivalent: true, CasesRun: equivalent}, nil
}
