package engine

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/yiblet/gf/internal/logging"
)

// DefaultFiles is the files argument used when the caller supplies
// none.
const DefaultFiles = "."

// SpawnError indicates the engine program could not be launched at
// all, e.g. it is not on PATH.
type SpawnError struct {
	Engine string
	Err    error
}

func (e *SpawnError) Error() string { return "Failed to execute command" }

func (e *SpawnError) Unwrap() error { return e.Err }

// ExitError carries a child's non-zero exit code so the caller can
// propagate it as this process's own. It is forwarding, not a failure
// of gf itself, and is never printed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// String renders the invocation for dump mode. The pattern is quoted
// so embedded special characters stay visible; the files argument is
// always included.
func (inv *Invocation) String(files string) string {
	var b strings.Builder
	b.WriteString(inv.Engine)
	b.WriteByte(' ')
	if inv.Flags != "" {
		b.WriteString(inv.Flags)
		b.WriteByte(' ')
	}
	b.WriteString(strconv.Quote(inv.Pattern))
	b.WriteByte(' ')
	b.WriteString(files)
	return b.String()
}

// Argv builds the engine's argument list: the flags split on
// whitespace, the pattern as one literal argument, and the files
// argument unless the input is piped (a piped engine reads stdin
// instead of searching a path).
func (inv *Invocation) Argv(files string, includeFiles bool) []string {
	args := strings.Fields(inv.Flags)
	args = append(args, inv.Pattern)
	if includeFiles {
		args = append(args, files)
	}
	return args
}

// Run executes the invocation as a child process. The child inherits
// this process's stdin, stdout, and stderr. A non-zero child exit is
// returned as *ExitError (1 when the child died to a signal); a child
// that could not be started at all is a *SpawnError.
func Run(inv *Invocation, files string, stdinIsPipe bool) error {
	argv := inv.Argv(files, !stdinIsPipe)

	logger := logging.GetLogger("engine")
	logger.Debug().
		Str("engine", inv.Engine).
		Strs("args", argv).
		Bool("stdin_is_pipe", stdinIsPipe).
		Msg("spawning engine")

	cmd := exec.Command(inv.Engine, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			code = 1
		}
		return &ExitError{Code: code}
	}

	return &SpawnError{Engine: inv.Engine, Err: err}
}

// StdinIsPipe reports whether standard input arrives from a pipe or
// redirection rather than a terminal.
func StdinIsPipe() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
