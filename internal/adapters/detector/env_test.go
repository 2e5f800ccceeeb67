package detector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/adapters/detector"
	"go.trai.ch/pdctl/internal/core/domain"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		isTTY bool
		ci    string
		want  detector.OutputMode
	}{
		{name: "terminal", isTTY: true, want: detector.ModeStatus},
		{name: "pipe", isTTY: false, want: detector.ModeLinear},
		{name: "ci true", isTTY: true, ci: "true", want: detector.ModeLinear},
		{name: "ci 1", isTTY: true, ci: "1", want: detector.ModeLinear},
		{name: "ci false", isTTY: true, ci: "false", want: detector.ModeStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestResolveMode(t *testing.T) {
	t.Parallel()

	for flag, want := range map[string]detector.OutputMode{
		"":       detector.ModeStatus,
		"auto":   detector.ModeStatus,
		"status": detector.ModeStatus,
		"tui":    detector.ModeStatus,
		"linear": detector.ModeLinear,
		"ci":     detector.ModeLinear,
	} {
		got, err := detector.ResolveMode(detector.ModeStatus, flag)
		require.NoError(t, err, flag)
		assert.Equal(t, want, got, flag)
	}

	got, err := detector.ResolveMode(detector.ModeLinear, "")
	require.NoError(t, err)
	assert.Equal(t, "linear", got.String())

	_, err = detector.ResolveMode(detector.ModeLinear, "fancy")
	assert.True(t, errors.Is(err, domain.ErrUsage))
}
