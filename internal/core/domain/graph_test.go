package domain_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestProjectGraph_AddProject(t *testing.T) {
	t.Parallel()

	g := domain.NewProjectGraph()
	require.NoError(t, g.AddProject("http.core", nil))

	err := g.AddProject("http.core", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateProject))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "http.core", zErr.Metadata()["project"])
}

func TestProjectGraph_Validate_Cycle(t *testing.T) {
	t.Parallel()

	g := domain.NewProjectGraph()
	require.NoError(t, g.AddProject("a", []string{"b"}))
	require.NoError(t, g.AddProject("b", []string{"a"}))

	err := g.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCycleDetected))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "a -> b -> a", zErr.Metadata()["cycle"])
}

func TestProjectGraph_Validate_UnknownRequirement(t *testing.T) {
	t.Parallel()

	g := domain.NewProjectGraph()
	require.NoError(t, g.AddProject("a", []string{"missing"}))

	err := g.Validate()
	assert.True(t, errors.Is(err, domain.ErrUnknownRequirement))
}

func TestProjectGraph_Walk(t *testing.T) {
	t.Parallel()

	// app -> lib -> core, tool -> core
	g := domain.NewProjectGraph()
	require.NoError(t, g.AddProject("app", []string{"lib"}))
	require.NoError(t, g.AddProject("lib", []string{"core"}))
	require.NoError(t, g.AddProject("core", nil))
	require.NoError(t, g.AddProject("tool", []string{"core"}))
	require.NoError(t, g.Validate())

	order := slices.Collect(g.Walk())
	assert.Equal(t, []string{"core", "lib", "app", "tool"}, order)

	assert.Equal(t, []string{"lib", "tool"}, g.Dependents("core"))
	assert.Equal(t, []string{"core"}, g.Requires("lib"))
	assert.Equal(t, 4, g.Len())
}
