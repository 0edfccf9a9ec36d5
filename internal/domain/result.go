package domain

// ExecutionResult is the captured outcome of running one executable
// against one Invocation
type ExecutionResult struct {
	Status int    // Normalized exit status, always in 0-255
	Stdout string // Full captured standard output
	Stderr string // Full captured standard error
	Path   string // Path of the executable that produced this result
}

// Case pairs a generated invocation with a human-readable name.
// Cases are built fresh per iteration step and discarded after the
// verdict is produced.
type Case struct {
	Name  string
	Input Invocation
}

// Verdict is the equivalence judgment for one Case, carrying both
// execution results so the reporting layer can render a full diff
// without re-running anything.
type Verdict struct {
	Case       Case
	Equivalent bool
	First      ExecutionResult
	Second     ExecutionResult
}
