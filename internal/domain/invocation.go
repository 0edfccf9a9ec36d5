package domain

// Invocation is one generated test input: the text fed to the child's
// stdin plus the command-line arguments. Never mutated after creation.
type Invocation struct {
	Stdin string   // Text written to the child's standard input
	Args  []string // Command-line arguments, in order
}

// Generator produces a fresh Invocation on each call. Implementations
// may be stateful or randomized; callers must not assume two calls
// return the same input.
type Generator func() Invocation

// GenEmpty is the trivial generator: empty stdin, no arguments. Useful
// for smoke-testing the harness itself.
func GenEmpty() Invocation {
	return Invocation{}
}
