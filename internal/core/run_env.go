package core

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ExecuteEnv is a RunEnv implementation that captures output for testing.
type ExecuteEnv struct {
	args     []string
	output   strings.Builder
	errors   strings.Builder
	exitCode int
	exited   bool
}

// NewExecuteEnv returns a RunEnv that captures output for testing.
func NewExecuteEnv(args []string) *ExecuteEnv {
	return &ExecuteEnv{args: args}
}

// Args returns the command line arguments.
func (e *ExecuteEnv) Args() []string {
	return e.args
}

// ErrOutput returns what was written to stderr.
func (e *ExecuteEnv) ErrOutput() string {
	return e.errors.String()
}

// Exit records the code instead of exiting.
func (e *ExecuteEnv) Exit(code int) {
	e.exitCode, e.exited = code, true
}

// ExitCode returns the code passed to Exit and whether Exit was called.
func (e *ExecuteEnv) ExitCode() (int, bool) {
	return e.exitCode, e.exited
}

// Output returns what was written to stdout.
func (e *ExecuteEnv) Output() string {
	return e.output.String()
}

// Stderr returns the captured stderr buffer.
func (e *ExecuteEnv) Stderr() io.Writer {
	return &e.errors
}

// Stdout returns the captured stdout buffer.
func (e *ExecuteEnv) Stdout() io.Writer {
	return &e.output
}

// SupportsSignals returns false for test environments.
func (e *ExecuteEnv) SupportsSignals() bool {
	return false
}

// ExitError represents a non-zero exit code from command execution.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// OsEnv is the RunEnv of a real process.
type OsEnv struct{}

// Args returns os.Args.
func (OsEnv) Args() []string {
	return os.Args
}

// Exit exits the process.
func (OsEnv) Exit(code int) {
	os.Exit(code)
}

// Stderr returns os.Stderr.
func (OsEnv) Stderr() io.Writer {
	return os.Stderr
}

// Stdout returns os.Stdout.
func (OsEnv) Stdout() io.Writer {
	return os.Stdout
}

// SupportsSignals returns true; interrupts cancel the command's context.
func (OsEnv) SupportsSignals() bool {
	return true
}

// RunEnv abstracts the runtime environment for testing.
type RunEnv interface {
	Args() []string
	Exit(code int)
	// Stdout receives help text and command output.
	Stdout() io.Writer
	// Stderr receives error reports.
	Stderr() io.Writer
	// SupportsSignals returns true if signal handling should be enabled.
	// Production implementations return true; test mocks return false.
	SupportsSignals() bool
}
