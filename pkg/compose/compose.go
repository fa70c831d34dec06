// Package compose knows how to invoke docker compose, either as the
// standalone docker-compose binary or as the docker CLI plugin.
package compose

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"dhctl/pkg/env"
)

// ExitCommandNotFound mirrors the shell's status for a missing executable.
const ExitCommandNotFound = 127

// Tool is a compose invocation: a binary plus any leading arguments.
type Tool struct {
	Binary string
	Prefix []string
}

// Standalone is the docker-compose v1 style binary.
func Standalone() Tool {
	return Tool{Binary: env.FlavourStandalone}
}

// Plugin is `docker compose`.
func Plugin() Tool {
	return Tool{Binary: env.FlavourPlugin, Prefix: []string{"compose"}}
}

// ForFlavour maps a flavour name to its Tool. Unknown names yield Standalone.
func ForFlavour(flavour string) Tool {
	if flavour == env.FlavourPlugin {
		return Plugin()
	}
	return Standalone()
}

// Detect picks the compose tool available on this machine. When neither
// flavour is installed it still returns Standalone alongside the error, so a
// caller can go on and let each invocation fail the way the shell would.
func Detect(pref string) (Tool, error) {
	flavour, err := env.CheckPrerequisites().Flavour(pref)
	if err != nil {
		return Standalone(), err
	}
	return ForFlavour(flavour), nil
}

// Command returns the executable and argv for running compose with args.
func (t Tool) Command(args ...string) (string, []string) {
	argv := make([]string, 0, len(t.Prefix)+len(args))
	argv = append(argv, t.Prefix...)
	argv = append(argv, args...)
	return t.Binary, argv
}

func (t Tool) String() string {
	return strings.Join(append([]string{t.Binary}, t.Prefix...), " ")
}

// ExecRunner runs commands as subprocesses with their output streamed
// straight to the terminal.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner attached to the process's stdout and stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes name with args in dir and reports the exit code the shell
// would have seen. The error is non-nil whenever the code is non-zero.
func (r *ExecRunner) Run(dir, name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...) // #nosec G204 -- name and args are built from validated config
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	return ExitCode(err), err
}

// ExitCode converts a command error into a shell-style exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal())
		}
		return exitErr.ExitCode()
	}
	if errors.Is(err, exec.ErrNotFound) {
		return ExitCommandNotFound
	}
	return 1
}

// Describe renders a command line for display.
func Describe(name string, args []string) string {
	return fmt.Sprintf("%s %s", name, strings.Join(args, " "))
}
