package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/adapters/config"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeWorkspace(t *testing.T, product, content string) string {
	t.Helper()
	route := filepath.Join(product, domain.WorkspaceDirName)
	require.NoError(t, os.MkdirAll(route, domain.DirPerm))
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(route, domain.ConfigFileName), []byte(content), domain.FilePerm))
	}
	return route
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return &config.Loader{Logger: log}, log
}

func TestLoader_DiscoverRoot(t *testing.T) {
	t.Parallel()

	product := t.TempDir()
	writeWorkspace(t, product, "version: 1.0.0\n")
	nested := filepath.Join(product, "http", "core")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	l, _ := newLoader(t)

	root, err := l.DiscoverRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, product, root)

	_, err = l.DiscoverRoot(t.TempDir())
	assert.True(t, errors.Is(err, domain.ErrWorkspaceNotFound))
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	product := t.TempDir()
	route := writeWorkspace(t, product, `version: 1.2.0
lanes: 8
fail-fast: true
intentions: [optimal, debug]
build:
  command: [factors-cc, --quiet]
  env:
    CC: clang
test:
  runner: [python3.12]
  debug: false
environment:
  inherit: [HOME, LANG]
`)

	l, _ := newLoader(t)
	ws, err := l.Load(filepath.Join(route, "cache"))
	require.NoError(t, err)

	assert.Equal(t, product, ws.Product)
	assert.Equal(t, route, ws.Route)

	cfg := ws.Config
	assert.Equal(t, 8, cfg.Lanes)
	assert.True(t, cfg.FailFast)
	assert.Equal(t, []domain.Intention{domain.IntentionOptimal, domain.IntentionDebug}, cfg.Intentions)
	assert.Equal(t, []string{"factors-cc", "--quiet"}, cfg.Build.Command)
	assert.Equal(t, map[string]string{"CC": "clang"}, cfg.Build.Env)
	assert.Equal(t, []string{"python3.12"}, cfg.Test.Runner)
	assert.Equal(t, domain.DefaultTestEntry, cfg.Test.Entry)
	assert.False(t, cfg.Test.Debug)
	assert.Equal(t, []string{"HOME", "LANG"}, cfg.Inherit)
	assert.Equal(t, domain.DefaultContexts(), cfg.Contexts)
}

func TestLoader_LoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	product := t.TempDir()
	writeWorkspace(t, product, "")

	l, log := newLoader(t)
	log.EXPECT().Warn("workspace.yaml not found, using defaults")

	ws, err := l.Load(product)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWorkspaceConfig(), ws.Config)
}

func TestLoader_LoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "bad yaml", content: "version: [", want: domain.ErrConfigParseFailed},
		{name: "bad version", content: "version: one\n", want: domain.ErrInvalidVersion},
		{name: "future version", content: "version: 2.0.0\n", want: domain.ErrUnsupportedVersion},
		{name: "bad lanes", content: "version: 1.0.0\nlanes: -2\n", want: domain.ErrInvalidLanes},
		{name: "bad intention", content: "version: 1.0.0\nintentions: [fast]\n", want: domain.ErrUnknownIntention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			product := t.TempDir()
			writeWorkspace(t, product, tt.content)

			l, _ := newLoader(t)
			_, err := l.Load(product)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoader_Overrides(t *testing.T) {
	product := t.TempDir()
	writeWorkspace(t, product, "version: 1.0.0\nlanes: 2\nintentions: [debug]\n")

	user := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(user, []byte("lanes: 6\nintentions: [coverage]\n"), domain.FilePerm))

	t.Setenv("PDCTL_INTENTIONS", "optimal,profile")
	t.Setenv("PDCTL_FAIL_FAST", "true")

	l, _ := newLoader(t)
	l.UserConfigFile = user

	ws, err := l.Load(product)
	require.NoError(t, err)
	assert.Equal(t, 6, ws.Config.Lanes, "user file beats workspace.yaml")
	assert.True(t, ws.Config.FailFast)
	assert.Equal(t, []domain.Intention{domain.IntentionOptimal, domain.IntentionProfile}, ws.Config.Intentions,
		"environment beats the user file")
}

func TestLoader_Init(t *testing.T) {
	t.Parallel()

	product := t.TempDir()
	l, _ := newLoader(t)

	cfg := domain.DefaultWorkspaceConfig()
	ws, err := l.Init(product, cfg)
	require.NoError(t, err)

	route := filepath.Join(product, domain.WorkspaceDirName)
	assert.Equal(t, route, ws.Route)
	for _, d := range domain.WorkspaceDirs {
		assert.DirExists(t, filepath.Join(route, d))
	}
	for _, in := range cfg.Contexts {
		assert.DirExists(t, domain.HostContextPath(route, in))
	}

	loaded, err := l.Load(product)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded.Config)

	_, err = l.Init(product, cfg)
	assert.True(t, errors.Is(err, domain.ErrWorkspaceExists))
}
