package config

import "go.trai.ch/pdctl/internal/core/domain"

// Workfile represents the structure of the .workspace/workspace.yaml file.
type Workfile struct {
	Version     string         `yaml:"version"`
	Lanes       int            `yaml:"lanes,omitempty"`
	FailFast    bool           `yaml:"fail-fast,omitempty"`
	Intentions  []string       `yaml:"intentions,omitempty"`
	Contexts    []string       `yaml:"contexts,omitempty"`
	Build       BuildDTO       `yaml:"build"`
	Test        TestDTO        `yaml:"test"`
	Environment EnvironmentDTO `yaml:"environment,omitempty"`
}

// BuildDTO represents the build section.
type BuildDTO struct {
	Command []string          `yaml:"command,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`
}

// TestDTO represents the test section.
type TestDTO struct {
	Runner []string          `yaml:"runner,omitempty"`
	Entry  string            `yaml:"entry,omitempty"`
	Debug  *bool             `yaml:"debug,omitempty"`
	Env    map[string]string `yaml:"env,omitempty"`
}

// EnvironmentDTO represents the environment section.
type EnvironmentDTO struct {
	Inherit []string `yaml:"inherit,omitempty"`
}

func newWorkfile(cfg domain.WorkspaceConfig) Workfile {
	debug := cfg.Test.Debug
	return Workfile{
		Version:    cfg.Version,
		Lanes:      cfg.Lanes,
		FailFast:   cfg.FailFast,
		Intentions: names(cfg.Intentions),
		Contexts:   names(cfg.Contexts),
		Build:      BuildDTO{Command: cfg.Build.Command, Env: cfg.Build.Env},
		Test: TestDTO{
			Runner: cfg.Test.Runner,
			Entry:  cfg.Test.Entry,
			Debug:  &debug,
			Env:    cfg.Test.Env,
		},
		Environment: EnvironmentDTO{Inherit: cfg.Inherit},
	}
}

// config overlays the file's settings on the defaults.
func (w *Workfile) config() (domain.WorkspaceConfig, error) {
	cfg := domain.DefaultWorkspaceConfig()
	cfg.Version = w.Version
	cfg.FailFast = w.FailFast
	cfg.Inherit = w.Environment.Inherit

	if w.Lanes != 0 {
		cfg.Lanes = w.Lanes
	}
	if len(w.Intentions) > 0 {
		in, err := domain.ParseIntentions(w.Intentions)
		if err != nil {
			return cfg, err
		}
		cfg.Intentions = in
	}
	if len(w.Contexts) > 0 {
		in, err := domain.ParseIntentions(w.Contexts)
		if err != nil {
			return cfg, err
		}
		cfg.Contexts = in
	}

	if len(w.Build.Command) > 0 {
		cfg.Build.Command = w.Build.Command
	}
	cfg.Build.Env = w.Build.Env

	if len(w.Test.Runner) > 0 {
		cfg.Test.Runner = w.Test.Runner
	}
	if w.Test.Entry != "" {
		cfg.Test.Entry = w.Test.Entry
	}
	if w.Test.Debug != nil {
		cfg.Test.Debug = *w.Test.Debug
	}
	cfg.Test.Env = w.Test.Env

	return cfg, nil
}

func names(in []domain.Intention) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
