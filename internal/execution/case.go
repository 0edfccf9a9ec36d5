package execution

import (
	"fmt"

	"dtr/internal/domain"
)

// RunCase runs the case against both targets, strictly sequentially,
// and applies the comparator to the pair of results. An executor
// failure on either target is fatal for the case; nothing is caught
// or downgraded here.
func (e *Executor) RunCase(c domain.Case, path1, path2 string, cmp domain.Comparator) (domain.Verdict, error) {
	r1, err := e.Execute(c.Input, path1)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%s: %w", c.Name, err)
	}
	r2, err := e.Execute(c.Input, path2)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("%s: %w", c.Name, err)
	}
	return domain.Verdict{
		Case:       c,
		Equivalent: cmp(r1, r2),
		First:      r1,
		Second:     r2,
	}, nil
}
