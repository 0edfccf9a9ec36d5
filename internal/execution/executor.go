package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"dtr/internal/domain"
)

// ErrTimeout indicates a child process exceeded the wall-clock bound.
var ErrTimeout = errors.New("process timed out")

// Executor spawns one OS process per call and captures its observable
// behavior. No process reuse, no retries.
type Executor struct {
	timeout time.Duration
}

// NewExecutor creates an Executor with the given wall-clock timeout
// per subprocess.
func NewExecutor(timeout time.Duration) *Executor {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &Executor{timeout: timeout}
}

// Execute runs the executable at path against the invocation: stdin is
// fed from the invocation, stdout and stderr are captured in full, and
// the exit status is normalized into 0-255.
//
// Arguments are joined with single spaces and handed to the shell
// unescaped; arguments containing spaces or shell metacharacters are
// not quoted. Known limitation.
func (e *Executor) Execute(in domain.Invocation, path string) (domain.ExecutionResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	cmdline := path
	if len(in.Args) > 0 {
		cmdline += " " + strings.Join(in.Args, " ")
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", cmdline)
	// Don't block on inherited pipe ends after the child is killed.
	cmd.WaitDelay = e.timeout
	cmd.Stdin = strings.NewReader(in.Stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return domain.ExecutionResult{}, fmt.Errorf("%w: %s exceeded %s", ErrTimeout, path, e.timeout)
	}

	status := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return domain.ExecutionResult{}, fmt.Errorf("spawn %s: %w", path, err)
		}
		status = normalizeStatus(exitErr)
	}

	return domain.ExecutionResult{
		Status: status,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Path:   path,
	}, nil
}

// normalizeStatus maps process termination into the conventional exit
// status domain. A normal exit keeps its code verbatim; a signal death
// becomes 128 plus the signal number, so SIGSEGV reports as 139 and
// SIGILL as 132.
func normalizeStatus(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}
