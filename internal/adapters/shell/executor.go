// Package shell runs job invocations as subprocesses attached to a pseudo-terminal.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Default terminal size given to jobs.
const (
	DefaultRows = 40
	DefaultCols = 120
)

// allowListedEnvVars are passed from the process environment to every job.
var allowListedEnvVars = []string{"HOME", "LANG", "PATH", "TERM", "TMPDIR", "USER"}

// Executor implements ports.Executor with creack/pty.
type Executor struct {
	environ func() []string
}

// NewExecutor creates a new Executor reading the process environment.
func NewExecutor() *Executor {
	return &Executor{environ: os.Environ}
}

// Execute runs the invocation on a pty and copies its combined output to stdout.
// stderr is unused because the terminal merges both streams.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation, stdout, _ io.Writer) error {
	name := inv.Executable()
	if name == "" {
		return zerr.Wrap(domain.ErrEmptyInvocation, "nothing to run")
	}

	env := resolveEnvironment(e.environ(), inv.Inherit, inv.Env)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, inv.Args[1:]...) //nolint:gosec // configured tool-chain command
	cmd.Args[0] = name
	cmd.Dir = inv.Dir
	cmd.Env = env

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: DefaultRows, Cols: DefaultCols})
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(errors.Join(domain.ErrCommandFailed, err), "failed to start pty"),
			"command", name), "exit_code", -1)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		_, _ = io.Copy(stdout, ptmx)
	}()

	waitErr := cmd.Wait()
	<-ioDone
	_ = ptmx.Close()

	if waitErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(errors.Join(domain.ErrCommandFailed, waitErr), "command failed"),
			"command", name), "exit_code", exitCode)
	}

	return nil
}

// resolveEnvironment keeps the allow-listed and inherited variables of sysEnv and
// applies the invocation overrides on top. The result is sorted.
func resolveEnvironment(sysEnv, inherit []string, overrides map[string]string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if slices.Contains(allowListedEnvVars, k) || slices.Contains(inherit, k) {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath resolves file against the PATH of the job environment rather than ours.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if v, ok := strings.CutPrefix(e, "PATH="); ok {
			path = v
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
