package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"dtr/internal/domain"
)

// Formatter renders campaign outcomes with ANSI colors. The success
// banner goes to stdout, the divergence report to stderr.
type Formatter struct {
	out io.Writer
	err io.Writer
}

// NewFormatter creates a new Formatter writing to stdout/stderr.
func NewFormatter() *Formatter {
	return &Formatter{out: os.Stdout, err: os.Stderr}
}

// PrintAllEquivalent prints the success banner.
func (f *Formatter) PrintAllEquivalent() {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprint(f.out, "\n\n***All tests passed***\n")
}

// PrintCancelled reports a user-aborted campaign.
func (f *Formatter) PrintCancelled(casesRun int) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprintf(f.err, "\n\nStopping after %d test(s)...\n", casesRun)
}

// PrintDivergence renders the full counterexample report: the number of
// cases attempted, the triggering input, and both captured results.
func (f *Formatter) PrintDivergence(casesRun int, v domain.Verdict) {
	w := f.err

	boldRed := color.New(color.FgRed, color.Bold)
	boldYellow := color.New(color.FgYellow, color.Bold)
	boldRed.Fprint(w, "\n\nFalsified after ")
	boldYellow.Fprintf(w, "%d ", casesRun)
	boldRed.Fprint(w, "test(s)!\n\n")

	header := color.New(color.FgGreen, color.Bold)
	header.Fprintln(w, "stdin:")
	fmt.Fprintf(w, "%q\n\n", v.Case.Input.Stdin)
	header.Fprintln(w, "args:")
	fmt.Fprintf(w, "%q\n\n", v.Case.Input.Args)

	for _, result := range []domain.ExecutionResult{v.First, v.Second} {
		f.printResult(w, result)
	}
}

func (f *Formatter) printResult(w io.Writer, result domain.ExecutionResult) {
	fmt.Fprint(w, "\n\n")
	color.New(color.FgBlue, color.Bold).Fprintf(w, "%s:\n\n", result.Path)

	color.New(color.FgMagenta, color.Bold).Fprint(w, "exit code: ")
	statusColor := color.New(color.FgGreen)
	if result.Status != 0 {
		statusColor = color.New(color.FgRed)
	}
	if name := domain.SignalName(result.Status); name != "" {
		statusColor.Fprintf(w, "%d(%s)", result.Status, name)
	} else {
		statusColor.Fprintf(w, "%d", result.Status)
	}
	fmt.Fprint(w, "\n\n")

	color.New(color.FgYellow, color.Bold).Fprintln(w, "stdout:")
	fmt.Fprintf(w, "%q\n\n", result.Stdout)
	color.New(color.FgRed, color.Bold).Fprintln(w, "stderr:")
	fmt.Fprintf(w, "%q\n\n", result.Stderr)
}
