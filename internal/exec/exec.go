package exec

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	osexec "os/exec"
	"strings"
)

// IsExitError reports whether err wraps an *exec.ExitError.
func IsExitError(err error) bool {
	var exitErr *osexec.ExitError
	return errors.As(err, &exitErr)
}

// IsExitCode reports whether err wraps an *exec.ExitError with the given exit code.
func IsExitCode(err error, code int) bool {
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode() == code
	}
	return false
}

//go:generate moq -out exec_mock.go . Executor

// Executor abstracts command execution for testing.
type Executor interface {
	LookPath(name string) error
	Output(name string, args ...string) (string, error)
	Run(name string, args ...string) error
}

// Option configures a DefaultExecutor.
type Option func(*DefaultExecutor)

// WithLogger enables invocation echo: every command is logged with its
// full argument list and both output streams. Echoing never changes
// what Output and Run return.
func WithLogger(l *slog.Logger) Option {
	return func(e *DefaultExecutor) { e.logger = l }
}

var _ Executor = (*DefaultExecutor)(nil)

// DefaultExecutor implements Executor using os/exec.
// A process that launches but exits non-zero is reported as an error,
// with trimmed stderr prepended for context.
type DefaultExecutor struct {
	logger *slog.Logger
}

func NewDefaultExecutor(opts ...Option) *DefaultExecutor {
	e := &DefaultExecutor{}
	for _, o := range opts {
		o(e)
	}
	return e
}

func (e *DefaultExecutor) LookPath(name string) error {
	_, err := osexec.LookPath(name)
	if err != nil {
		return fmt.Errorf("command not found: %s", name)
	}
	return nil
}

func wrapExecError(err error, stderr string) error {
	errMsg := strings.TrimSpace(stderr)
	if errMsg != "" {
		return fmt.Errorf("%s: %w", errMsg, err)
	}
	return err
}

func (e *DefaultExecutor) Output(name string, args ...string) (string, error) {
	cmd := osexec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	e.echo(name, args, stdout.String(), stderr.String(), err)
	if err != nil {
		return "", wrapExecError(err, stderr.String())
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

func (e *DefaultExecutor) Run(name string, args ...string) error {
	cmd := osexec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	e.echo(name, args, stdout.String(), stderr.String(), err)
	if err != nil {
		return wrapExecError(err, stderr.String())
	}
	return nil
}

func (e *DefaultExecutor) echo(name string, args []string, stdout, stderr string, err error) {
	if e.logger == nil {
		return
	}
	e.logger.Debug("exec",
		"cmd", name,
		"args", args,
		"stdout", strings.TrimRight(stdout, "\n"),
		"stderr", strings.TrimRight(stderr, "\n"),
		"err", err,
	)
}
