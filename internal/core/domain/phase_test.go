package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pdctl/internal/core/domain"
)

func TestCommandKind_Phases(t *testing.T) {
	t.Parallel()

	in := []domain.Intention{domain.IntentionOptimal, domain.IntentionDebug}

	assert.Equal(t, [][]domain.Intention{in}, domain.KindBuild.Phases(in))
	assert.Equal(t, [][]domain.Intention{
		{domain.IntentionOptimal},
		{domain.IntentionDebug},
	}, domain.KindTest.Phases(in))
	assert.Nil(t, domain.KindTest.Phases(nil))

	assert.Equal(t, "FPI", domain.KindAnalyze.Group())
	assert.Equal(t, "Fates", domain.KindTest.Group())
	assert.Equal(t, "delineated", domain.KindDelineate.Form())
	assert.Equal(t, "", domain.KindBuild.Form())
}

func TestPhaseContext_Environment(t *testing.T) {
	t.Parallel()

	base := domain.PhaseContext{
		Rebuild:     domain.RebuildRecreate,
		ProductRoot: "/src/product",
		ContextPath: "/src/product/.workspace/cc",
	}

	build := base
	build.Command = domain.KindBuild
	build = build.WithIntentions([]domain.Intention{domain.IntentionOptimal, domain.IntentionDebug})
	assert.Equal(t, map[string]string{
		"FPI_REBUILD": "2",
		"F_PRODUCT":   "/src/product/.workspace/cc",
		"PRODUCT":     "/src/product",
	}, build.Environment())
	assert.Equal(t, "optimal:debug", build.Label())
	assert.Equal(t, "FPI build", build.Title())

	test := base
	test.Command = domain.KindTest
	test = test.WithIntentions([]domain.Intention{domain.IntentionCoverage})
	assert.Equal(t, map[string]string{
		"INTENTION": "coverage",
		"F_PRODUCT": "/src/product",
		"PRODUCT":   "/src/product",
	}, test.Environment())
	assert.Equal(t, "Fates coverage", test.Title())
	assert.Equal(t, []string{"test", "coverage"}, test.Tags())
}

func TestPhaseContext_WithIntentionsCopies(t *testing.T) {
	t.Parallel()

	in := []domain.Intention{domain.IntentionDebug}
	p := domain.PhaseContext{}.WithIntentions(in)
	in[0] = domain.IntentionOptimal
	assert.Equal(t, "debug", p.Label())
}

func TestNewJobDescriptor(t *testing.T) {
	t.Parallel()

	dims := []string{"http.client", "http.client.test.test_io"}
	j := domain.NewJobDescriptor(domain.GroupTest, dims, domain.Invocation{Args: []string{"python3"}})
	assert.Equal(t, "http.client/http.client.test.test_io", j.CorrelationID)
	assert.Equal(t, "python3", j.Invocation.Executable())

	dims[0] = "changed"
	assert.Equal(t, "http.client", j.Dimensions[0])
	assert.Equal(t, "", domain.Invocation{}.Executable())
}
