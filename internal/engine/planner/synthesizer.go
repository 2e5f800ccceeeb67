package planner

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
)

const (
	// TestContainer is the project relative path holding test factors.
	TestContainer domain.FactorPath = "test"
	// TestPrefix marks test factors.
	TestPrefix = "test_"
	// PersistentMode is the construction mode handed to the build tool-chain.
	PersistentMode = "persistent"
)

// BuildSynthesizer plans one tool-chain invocation per project for build, delineate and
// analyze phases.
type BuildSynthesizer struct {
	Index    ports.ProjectIndex
	Phase    domain.PhaseContext
	Settings domain.BuildSettings
	// Args are appended verbatim to every invocation.
	Args []string
}

// Synthesize implements ports.Synthesizer.
func (s *BuildSynthesizer) Synthesize(item string) (iter.Seq[domain.JobDescriptor], error) {
	project, err := s.Index.Project(item)
	if err != nil {
		return nil, err
	}

	args := slices.Clone(s.Settings.Command)
	args = append(args,
		s.Phase.ContextPath,
		PersistentMode,
		s.Phase.CachePath,
		s.Phase.Command.Form()+"/"+s.Phase.Label(),
		s.Phase.ProductRoot,
		project.Factor.String(),
	)
	args = append(args, s.Args...)

	job := domain.NewJobDescriptor(s.Phase.Command.Group(), []string{project.Factor.String()}, domain.Invocation{
		Args:    args,
		Env:     mergeEnv(s.Settings.Env, s.Phase.Environment()),
		Dir:     s.Phase.ProductRoot,
		Inherit: s.Phase.Inherit,
	})

	return func(yield func(domain.JobDescriptor) bool) {
		yield(job)
	}, nil
}

// TestSynthesizer plans one test runner invocation per matching test factor of a project.
type TestSynthesizer struct {
	Index    ports.ProjectIndex
	Phase    domain.PhaseContext
	Settings domain.TestSettings
	// Keywords filter test factors by their project-relative path.
	Keywords []string
}

// Synthesize implements ports.Synthesizer. Jobs are produced lazily in factor path order.
func (s *TestSynthesizer) Synthesize(item string) (iter.Seq[domain.JobDescriptor], error) {
	project, err := s.Index.Project(item)
	if err != nil {
		return nil, err
	}

	env := mergeEnv(s.Settings.Env, s.Phase.Environment(), map[string]string{
		domain.EnvProject: project.Factor.String(),
	})

	return func(yield func(domain.JobDescriptor) bool) {
		for factor := range project.Select(TestContainer) {
			if !strings.HasPrefix(factor.Identifier(), TestPrefix) {
				continue
			}
			rel, _ := factor.Path.Relative(project.Factor)
			if !domain.MatchKeywords(s.Keywords, rel.String()) {
				continue
			}

			args := slices.Clone(s.Settings.Runner)
			if s.Settings.Debug {
				args = append(args, "-d")
			}
			args = append(args, s.Settings.Entry, project.Factor.String(), rel.String())

			job := domain.NewJobDescriptor(domain.GroupTest,
				[]string{project.Factor.String(), rel.String()},
				domain.Invocation{Args: args, Env: env, Dir: s.Phase.ProductRoot, Inherit: s.Phase.Inherit},
			)
			if !yield(job) {
				return
			}
		}
	}, nil
}

// mergeEnv layers the maps left to right; later maps win.
func mergeEnv(layers ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, l := range layers {
		maps.Copy(out, l)
	}
	return out
}
