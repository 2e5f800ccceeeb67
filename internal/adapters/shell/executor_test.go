package shell_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/adapters/shell"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestExecutor_Execute_Output(t *testing.T) {
	t.Parallel()

	executor := shell.NewExecutor()

	var stdout bytes.Buffer
	err := executor.Execute(t.Context(), domain.Invocation{
		Args: []string{"sh", "-c", "echo line1; printf part1; sleep 0.1; echo part2; echo oops >&2"},
		Dir:  t.TempDir(),
	}, &stdout, io.Discard)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "line1")
	assert.Contains(t, out, "part1part2")
	assert.Contains(t, out, "oops", "stderr shares the terminal")
}

func TestExecutor_Execute_Environment(t *testing.T) {
	t.Parallel()

	executor := shell.NewExecutorWithEnv([]string{
		"PATH=" + os.Getenv("PATH"),
		"SECRET=hidden",
		"PYTHONPATH=/opt/lib",
	})

	var stdout bytes.Buffer
	err := executor.Execute(t.Context(), domain.Invocation{
		Args:    []string{"sh", "-c", `echo "intention=$INTENTION secret=$SECRET py=$PYTHONPATH"`},
		Env:     map[string]string{"INTENTION": "debug"},
		Inherit: []string{"PYTHONPATH"},
	}, &stdout, io.Discard)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "intention=debug secret= py=/opt/lib")
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	t.Parallel()

	err := shell.NewExecutor().Execute(t.Context(), domain.Invocation{
		Args: []string{"sh", "-c", "exit 3"},
	}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Equal(t, "sh", zErr.Metadata()["command"])
}

func TestExecutor_Execute_Errors(t *testing.T) {
	t.Parallel()

	executor := shell.NewExecutor()

	err := executor.Execute(t.Context(), domain.Invocation{}, io.Discard, io.Discard)
	assert.True(t, errors.Is(err, domain.ErrEmptyInvocation))

	err = executor.Execute(t.Context(), domain.Invocation{
		Args: []string{"pdctl-no-such-tool-xyz"},
	}, io.Discard, io.Discard)
	assert.True(t, errors.Is(err, domain.ErrCommandFailed))
}

func TestExecutor_Execute_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := shell.NewExecutor().Execute(ctx, domain.Invocation{
		Args: []string{"sleep", "5"},
	}, io.Discard, io.Discard)
	assert.Error(t, err)
}

func TestResolveEnvironment(t *testing.T) {
	t.Parallel()

	env := shell.ResolveEnvironment(
		[]string{"HOME=/home/dev", "PATH=/usr/bin", "EDITOR=vi", "CC=gcc", "malformed"},
		[]string{"CC"},
		map[string]string{"PATH": "/opt/bin", "PRODUCT": "/src"},
	)
	assert.Equal(t, []string{"CC=gcc", "HOME=/home/dev", "PATH=/opt/bin", "PRODUCT=/src"}, env)
}

func TestEditor_Command(t *testing.T) {
	t.Parallel()

	argv, err := shell.NewEditorWithEnv(map[string]string{"EDITOR": "code --wait"}).
		Command([]string{"a.c", "b.c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"code", "--wait", "a.c", "b.c"}, argv)

	argv, err = shell.NewEditorWithEnv(map[string]string{"EDITOR": "vi", "VISUAL": "emacs"}).Command(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"emacs"}, argv)

	_, err = shell.NewEditorWithEnv(nil).Command([]string{"a.c"})
	assert.True(t, errors.Is(err, domain.ErrEditorNotSet))
}
