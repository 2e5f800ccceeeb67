package app_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/app"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.uber.org/mock/gomock"
)

func TestApp_Initialize(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.configLoader.EXPECT().Init(f.ws.Product, gomock.Any()).
		DoAndReturn(func(_ string, cfg domain.WorkspaceConfig) (*domain.Workspace, error) {
			assert.Equal(t, []domain.Intention{domain.IntentionOptimal, domain.IntentionCoverage}, cfg.Contexts)
			return f.ws, nil
		})
	f.logger.EXPECT().Info("Workspace context initialized at " + f.ws.Route + ".")

	err := f.app.Initialize(t.Context(), []domain.Intention{domain.IntentionCoverage, domain.IntentionOptimal})
	require.NoError(t, err)
}

func TestApp_Initialize_DefaultContexts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.configLoader.EXPECT().Init(f.ws.Product, gomock.Any()).
		DoAndReturn(func(_ string, cfg domain.WorkspaceConfig) (*domain.Workspace, error) {
			assert.Equal(t, domain.DefaultContexts(), cfg.Contexts)
			return f.ws, nil
		})
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.Initialize(t.Context(), nil))
}

func TestApp_Initialize_Exists(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.configLoader.EXPECT().Init(gomock.Any(), gomock.Any()).Return(nil, domain.ErrWorkspaceExists)
	f.logger.EXPECT().Warn("workspace already exists at " + f.ws.Route)

	require.NoError(t, f.app.Initialize(t.Context(), nil))
}

func TestApp_Initialize_Failure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	boom := errors.New("read-only")
	f.configLoader.EXPECT().Init(gomock.Any(), gomock.Any()).Return(nil, boom)

	require.ErrorIs(t, f.app.Initialize(t.Context(), nil), boom)
}

func TestApp_Update(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.hasher.EXPECT().Fingerprint(f.ws.Product, []string{domain.WorkspaceDirName}).Return("abc", nil)
	f.indexLoader.EXPECT().Store(f.ws.Route, gomock.Any()).
		DoAndReturn(func(_ string, s domain.IndexSnapshot) error {
			assert.Equal(t, "abc", s.Fingerprint)
			assert.Equal(t, fixedNow, s.Created)
			assert.Len(t, s.Projects, 2)
			return nil
		})
	f.logger.EXPECT().Info("Indexed 2 projects.")

	snapshot, err := f.app.Update(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "abc", snapshot.Fingerprint)
}

func TestApp_Status(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		snapshot *domain.IndexSnapshot
		want     app.IndexState
	}{
		{name: "missing", want: app.IndexMissing},
		{name: "fresh", snapshot: &domain.IndexSnapshot{Fingerprint: "abc"}, want: app.IndexFresh},
		{name: "stale", snapshot: &domain.IndexSnapshot{Fingerprint: "old"}, want: app.IndexStale},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.indexLoader.EXPECT().Snapshot(f.ws.Route).Return(tt.snapshot, nil)
			f.hasher.EXPECT().Fingerprint(gomock.Any(), gomock.Any()).Return("abc", nil).AnyTimes()
			f.vcs.EXPECT().Revision(f.ws.Product).Return(nil, nil)
			f.store.EXPECT().Latest(f.ws.Route).Return(nil, nil)

			report, err := f.app.Status(t.Context())
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Index)
			assert.Equal(t, 2, report.Projects)
			assert.Contains(t, f.stdout.String(), "index:     "+string(tt.want)+"\n")
			assert.Contains(t, f.stdout.String(), "revision:  none\n")
		})
	}
}

func TestApp_Status_RevisionAndLastRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.indexLoader.EXPECT().Snapshot(gomock.Any()).Return(nil, nil)
	f.vcs.EXPECT().Revision(gomock.Any()).Return(&ports.Revision{
		Branch: "main",
		Commit: "0123456789abcdef0123",
		Clean:  false,
	}, nil)
	f.store.EXPECT().Latest(gomock.Any()).Return(&domain.RunReport{
		Command:    domain.KindTest,
		Intentions: []domain.Intention{domain.IntentionDebug},
		Phases: []domain.PhaseSummary{{
			Title: "Fates debug",
			Jobs:  []domain.JobOutcome{{Status: domain.JobPassed}},
		}},
	}, nil)

	_, err := f.app.Status(t.Context())
	require.NoError(t, err)

	out := f.stdout.String()
	assert.Contains(t, out, "product:   "+f.ws.Product+"\n")
	assert.Contains(t, out, "projects:  2\n")
	assert.Contains(t, out, "revision:  main@0123456789ab (modified)\n")
	assert.Contains(t, out, "last run:  test debug: 1 phase: 1 job, 1 passed in 0s\n")
}

func TestApp_Status_RevisionFailureWarns(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.indexLoader.EXPECT().Snapshot(gomock.Any()).Return(nil, nil)
	f.vcs.EXPECT().Revision(gomock.Any()).Return(nil, domain.ErrRevisionReadFailed)
	f.logger.EXPECT().Warn(gomock.Any())
	f.store.EXPECT().Latest(gomock.Any()).Return(nil, nil)

	report, err := f.app.Status(t.Context())
	require.NoError(t, err)
	assert.Nil(t, report.Revision)
}

func TestApp_ProjectList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	require.NoError(t, f.app.ProjectList(t.Context()))
	assert.Equal(t, "http.core\nnet\n", f.stdout.String())
}

func TestApp_Sources(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		factors []string
		want    []string
	}{
		{
			name: "whole product",
			want: []string{
				"http/core/parser.c", "http/core/parser.h", "http/core/test/test_parse.py", "net/socket.c",
			},
		},
		{
			name:    "project",
			factors: []string{"net"},
			want:    []string{"net/socket.c"},
		},
		{
			name:    "factor",
			factors: []string{"http.core.parser", "http/core/parser"},
			want:    []string{"http/core/parser.c", "http/core/parser.h"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			require.NoError(t, f.app.Sources(t.Context(), tt.factors))

			var want string
			for _, w := range tt.want {
				want += filepath.FromSlash(w) + "\n"
			}
			assert.Equal(t, want, f.stdout.String())
		})
	}
}

func TestApp_Sources_UnknownFactor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	err := f.app.Sources(t.Context(), []string{"storage"})
	require.ErrorIs(t, err, domain.ErrFactorNotFound)
}

func TestApp_Edit(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.editor.EXPECT().Open(gomock.Any(), f.ws.Product, []string{filepath.FromSlash("net/socket.c")}).Return(nil)

	require.NoError(t, f.app.Edit(t.Context(), []string{"net"}))
}

func TestApp_Clear(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cache := domain.CachePath(f.ws.Route)
	require.NoError(t, os.MkdirAll(filepath.Join(cache, "objects"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(cache, "objects", "a.o"), []byte("obj"), domain.FilePerm))
	f.logger.EXPECT().Info("Cleared build cache.")

	require.NoError(t, f.app.Clear(t.Context()))

	entries, err := os.ReadDir(cache)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApp_Clean(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	captures := domain.CapturesPath(f.ws.Route)
	require.NoError(t, os.MkdirAll(captures, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(captures, "net.log"), []byte("log"), domain.FilePerm))
	f.store.EXPECT().Clear(f.ws.Route).Return(3, nil)
	f.logger.EXPECT().Info("Removed captures and 3 run reports.")

	require.NoError(t, f.app.Clean(t.Context()))

	entries, err := os.ReadDir(captures)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestApp_Clean_StoreFailure(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	boom := errors.New("permission denied")
	f.store.EXPECT().Clear(gomock.Any()).Return(0, boom)

	require.ErrorIs(t, f.app.Clean(t.Context()), boom)
}
