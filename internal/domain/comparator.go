package domain

// Comparator decides whether two execution results are equivalent.
// Comparators are pure: no side effects, no state between calls.
type Comparator func(a, b ExecutionResult) bool

// NewComparator builds a comparator over the selected fields. Divergence
// is declared as soon as any enabled field differs; with all three flags
// false every pair is equivalent.
func NewComparator(status, stdout, stderr bool) Comparator {
	return func(a, b ExecutionResult) bool {
		if status && a.Status != b.Status {
			return false
		}
		if stdout && a.Stdout != b.Stdout {
			return false
		}
		if stderr && a.Stderr != b.Stderr {
			return false
		}
		return true
	}
}

// CmpAll compares exit status, stdout and stderr.
var CmpAll = NewComparator(true, true, true)
