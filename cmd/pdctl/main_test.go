package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/adapters/index"
	"go.trai.ch/pdctl/internal/adapters/telemetry"
	"go.trai.ch/pdctl/internal/app"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports/mocks"
	"go.trai.ch/pdctl/internal/engine/planner"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	configLoader *mocks.MockConfigLoader
	indexLoader  *mocks.MockIndexLoader
	dispatcher   *mocks.MockDispatcher
	store        *mocks.MockReportStore
	logger       *mocks.MockLogger
	app          *app.App
	dir          string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		configLoader: mocks.NewMockConfigLoader(ctrl),
		indexLoader:  mocks.NewMockIndexLoader(ctrl),
		dispatcher:   mocks.NewMockDispatcher(ctrl),
		store:        mocks.NewMockReportStore(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
		dir:          t.TempDir(),
	}

	loop := planner.NewIntentionLoop(f.indexLoader, f.dispatcher, f.logger)
	f.app = app.New(
		f.configLoader, f.indexLoader, loop, telemetry.NewOTelTracer("test"), f.store,
		mocks.NewMockHasher(ctrl), mocks.NewMockVCS(ctrl), mocks.NewMockEditor(ctrl),
		mocks.NewMockWatcher(ctrl), f.logger,
	)
	return f
}

func (f *fixture) run(args ...string) int {
	return run(context.Background(), args, io.Discard, func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: f.app, Logger: f.logger}, func() {}, nil
	}, func(a *app.App) {
		a.WithWorkdir(f.dir).WithOutput(io.Discard, io.Discard)
	})
}

func (f *fixture) workspace(t *testing.T) {
	t.Helper()

	idx, err := index.New([]*domain.Project{{
		Identifier: "net",
		Factor:     "net",
		Factors:    []domain.Factor{{Path: "net.socket", Type: "c"}},
	}})
	require.NoError(t, err)

	ws := &domain.Workspace{
		Product: f.dir,
		Route:   filepath.Join(f.dir, domain.WorkspaceDirName),
		Config:  domain.DefaultWorkspaceConfig(),
	}
	f.configLoader.EXPECT().Load(f.dir).Return(ws, nil)
	f.indexLoader.EXPECT().Load(gomock.Any(), f.dir).Return(idx, nil)
}

func TestRun_Success(t *testing.T) {
	f := newFixture(t)
	f.workspace(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return("id", nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(domain.PhaseSummary{
		Title: "FPI build",
		Jobs:  []domain.JobOutcome{{CorrelationID: "net", Status: domain.JobPassed}},
	}, nil)

	assert.Equal(t, exitOK, f.run("--output-mode", "linear", "build", "net"))
}

func TestRun_JobsFailed(t *testing.T) {
	f := newFixture(t)
	f.workspace(t)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).Times(0)
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return("id", nil)
	f.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(domain.PhaseSummary{
		Title: "Fates debug",
		Jobs:  []domain.JobOutcome{{CorrelationID: "net/net.test.test_io", Status: domain.JobFailed, ExitCode: 1}},
	}, nil)

	assert.Equal(t, exitFailure, f.run("--output-mode", "linear", "test"))
}

func TestRun_CommandFailure(t *testing.T) {
	f := newFixture(t)
	f.configLoader.EXPECT().Load(f.dir).Return(nil, domain.ErrWorkspaceNotFound)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	})

	assert.Equal(t, exitFailure, f.run("status"))
}

func TestRun_NoCommand(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, exitNoCommand, f.run())
}

func TestRun_UnknownCommand(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().Error(gomock.Any())
	assert.Equal(t, exitUnknownCommand, f.run("deploy"))
}

func TestRun_Version(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, exitOK, f.run("version"))
}

func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"status"}, stderr, func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("graph broken")
	})

	assert.Equal(t, exitFailure, code)
	assert.Equal(t, "Error: graph broken\n", stderr.String())
}
