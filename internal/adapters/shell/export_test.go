package shell

// export_test.go exports private functions for white-box testing.
var ResolveEnvironment = resolveEnvironment

// NewExecutorWithEnv creates an executor over a fixed process environment.
func NewExecutorWithEnv(env []string) *Executor {
	return &Executor{environ: func() []string { return env }}
}

// NewEditorWithEnv creates an editor over a fixed variable lookup.
func NewEditorWithEnv(vars map[string]string) *Editor {
	return &Editor{getenv: func(k string) string { return vars[k] }}
}
