package campaign

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dtr/internal/domain"
	"dtr/internal/execution"
)

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// countingGenerator wraps a generator and counts calls.
func countingGenerator(calls *int) domain.Generator {
	return func() domain.Invocation {
		*calls++
		return domain.Invocation{}
	}
}

func TestNew_InvalidTarget(t *testing.T) {
	valid := writeScript(t, "ok.sh", "exit 0")

	tests := []struct {
		name  string
		exec1 string
		exec2 string
		want  string
	}{
		{"nonexistent first path", "/no/such/file", valid, "exec1"},
		{"nonexistent second path", valid, "/no/such/file", "exec2"},
		{"directory is not a target", t.TempDir(), valid, "exec1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			_, err := New(tt.exec1, tt.exec2, countingGenerator(&calls), nil, nil)
			if !errors.Is(err, ErrInvalidTarget) {
				t.Fatalf("expected ErrInvalidTarget, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should name the offending position, got %q", err)
			}
			if calls != 0 {
				t.Errorf("generator must not be called during construction, got %d calls", calls)
			}
		})
	}
}

func TestSequence_ProducesExactly(t *testing.T) {
	target := writeScript(t, "ok.sh", "exit 0")
	runner, err := New(target, target, nil, nil, execution.NewExecutor(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seq := runner.Sequence(5)
	for i := 1; i <= 5; i++ {
		v, ok, err := seq.Next()
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if !ok {
			t.Fatalf("case %d: sequence exhausted early", i)
		}
		if want := fmt.Sprintf("test_%d", i); v.Case.Name != want {
			t.Errorf("expected case name %q, got %q", want, v.Case.Name)
		}
		if !v.Equivalent {
			t.Errorf("case %d: identical targets should be equivalent", i)
		}
	}
	if _, ok, _ := seq.Next(); ok {
		t.Error("sequence should be exhausted after 5 verdicts")
	}
}

func TestSequence_SharedCursor(t *testing.T) {
	target := writeScript(t, "ok.sh", "exit 0")
	runner, err := New(target, target, nil, nil, execution.NewExecutor(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := runner.Sequence(2)
	second := runner.Sequence(2)

	v1, _, _ := first.Next()
	v2, _, _ := second.Next()
	if v1.Case.Name != "test_1" || v2.Case.Name != "test_2" {
		t.Errorf("sequences of one runner should interleave case numbers, got %q and %q",
			v1.Case.Name, v2.Case.Name)
	}
}

func TestRun_AllEquivalent(t *testing.T) {
	target := writeScript(t, "echo.sh", "cat")
	var calls int
	runner, err := New(target, target, countingGenerator(&calls), nil, execution.NewExecutor(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outcome, err := runner.Run(context.Background(), 10, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Cancelled {
		t.Error("outcome should not be cancelled")
	}
	if !outcome.Equivalent {
		t.Error("expected all cases equivalent")
	}
	if outcome.CasesRun != 10 {
		t.Errorf("expected 10 cases run, got %d", outcome.CasesRun)
	}
	if calls != 10 {
		t.Errorf("expected 10 generated inputs, got %d", calls)
	}
	if outcome.Divergence != nil {
		t.Error("no divergence expected")
	}
}

func TestRun_StopsAtFirstDivergence(t *testing.T) {
	zero := writeScript(t, "zero.sh", "exit 0")
	one := writeScript(t, "one.sh", "exit 1")
	var calls int
	cmp := domain.NewComparator(true, false, false)
	runner, err := New(zero, one, countingGenerator(&calls), cmp, execution.NewExecutor(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outcome, err := runner.Run(context.Background(), 5, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.Equivalent {
		t.Error("expected a divergence")
	}
	if outcome.CasesRun != 1 {
		t.Errorf("drive loop should stop after the first divergence, ran %d cases", outcome.CasesRun)
	}
	if calls != 1 {
		t.Errorf("no further inputs should be generated after a divergence, got %d", calls)
	}
	if outcome.Divergence == nil {
		t.Fatal("divergent verdict should be exposed")
	}
	if outcome.Divergence.First.Status != 0 || outcome.Divergence.Second.Status != 1 {
		t.Errorf("expected statuses 0 and 1, got %d and %d",
			outcome.Divergence.First.Status, outcome.Divergence.Second.Status)
	}
}

func TestRun_DivergenceIgnoredByComparator(t *testing.T) {
	zero := writeScript(t, "zero.sh", "exit 0")
	one := writeScript(t, "one.sh", "exit 1")
	// Statuses differ but only streams are compared.
	cmp := domain.NewComparator(false, true, true)
	runner, err := New(zero, one, nil, cmp, execution.NewExecutor(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outcome, err := runner.Run(context.Background(), 3, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.Equivalent || outcome.CasesRun != 3 {
		t.Errorf("expected 3 equivalent cases, got %+v", outcome)
	}
}

func TestRun_OptionValidation(t *testing.T) {
	target := writeScript(t, "ok.sh", "exit 0")

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"silent with verbose", Options{Silent: true, Verbose: true}, ErrOptionConflict},
		{"suppress-errors without silent", Options{SuppressErrors: true}, ErrOptionConflict},
		{"silent alone", Options{Silent: true}, ErrNotImplemented},
		{"verbose alone", Options{Verbose: true}, ErrNotImplemented},
		{"no-color alone", Options{NoColor: true}, ErrNotImplemented},
		{"silent with suppress-errors", Options{Silent: true, SuppressErrors: true}, ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			runner, err := New(target, target, countingGenerator(&calls), nil, execution.NewExecutor(0))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			_, err = runner.Run(context.Background(), 1, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if calls != 0 {
				t.Errorf("no case may run before option validation fails, got %d", calls)
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	target := writeScript(t, "ok.sh", "exit 0")
	var calls int
	runner, err := New(target, target, countingGenerator(&calls), nil, execution.NewExecutor(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := runner.Run(ctx, 0, Options{})
	if err != nil {
		t.Fatalf("cancellation is an outcome, not an error: %v", err)
	}
	if !outcome.Cancelled {
		t.Error("expected cancelled outcome")
	}
	if outcome.CasesRun != 0 || calls != 0 {
		t.Errorf("no cases should run under a cancelled context, got %d run / %d generated",
			outcome.CasesRun, calls)
	}
}

func TestRun_TimeoutPropagates(t *testing.T) {
	slow := writeScript(t, "slow.sh", "sleep 5")
	runner, err := New(slow, slow, nil, nil, execution.NewExecutor(100*time.Millisecond))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = runner.Run(context.Background(), 1, Options{})
	if !errors.Is(err, execution.ErrTimeout) {
		t.Fatalf("expected ErrTimeout to propagate out of the drive loop, got %v", err)
	}
}
