package campaign

import (
	"fmt"

	"dtr/internal/domain"
)

// Sequence is a lazy, pull-based stream of verdicts. Each Next call
// generates one invocation and runs it against both targets.
//
// Sequences are single-consumer: the case cursor lives on the Runner,
// so two sequences pulled from the same runner interleave case numbers
// instead of observing independent streams.
type Sequence struct {
	runner   *Runner
	limit    int
	produced int
}

// Sequence returns a fresh stream of verdicts. A limit of zero means
// the stream never exhausts on its own.
func (r *Runner) Sequence(limit int) *Sequence {
	return &Sequence{runner: r, limit: limit}
}

// Next produces the next verdict. ok is false once limit verdicts have
// been produced. Executor failures abort the stream; the cursor does
// not advance past a failed case.
func (s *Sequence) Next() (v domain.Verdict, ok bool, err error) {
	if s.limit > 0 && s.produced >= s.limit {
		return domain.Verdict{}, false, nil
	}

	r := s.runner
	c := domain.Case{
		Name:  fmt.Sprintf("test_%d", r.cursor),
		Input: r.generator(),
	}
	v, err = r.executor.RunCase(c, r.exec1, r.exec2, r.comparator)
	if err != nil {
		return domain.Verdict{}, false, err
	}
	r.cursor++
	s.produced++
	return v, true, nil
}
