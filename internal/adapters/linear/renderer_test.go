package linear_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/adapters/linear"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRenderer_Phase(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)
	require.NoError(t, r.Start(t.Context()))

	r.OnPlanEmit([]string{"net", "http.core"}, nil, []string{"net"})
	r.OnTaskStart("p1", "", "FPI build", t0)

	r.OnTaskStart("j1", "p1", "net", t0)
	r.OnTaskLog("j1", []byte("compiling\nlink"))
	r.OnTaskLog("j1", []byte("ing"))
	r.OnTaskComplete("j1", t0.Add(1500*time.Millisecond), nil)

	r.OnTaskStart("j2", "p1", "http.core", t0)
	r.OnTaskComplete("j2", t0.Add(250*time.Millisecond), errors.New("exit status 2"))

	r.OnTaskComplete("p1", t0.Add(2*time.Second), nil)
	require.NoError(t, r.Stop())
	require.NoError(t, r.Wait())

	g := goldie.New(t)
	g.Assert(t, "phase_stderr", stderr.Bytes())
	g.Assert(t, "phase_stdout", stdout.Bytes())
}

func TestRenderer_PartialLines(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	r.OnTaskStart("p1", "", "Fates debug", t0)
	r.OnTaskStart("j1", "p1", "net/net.test.test_io", t0)

	r.OnTaskLog("j1", []byte("partial"))
	assert.NotContains(t, stdout.String(), "partial")

	r.OnTaskLog("j1", []byte(" line\r\n"))
	assert.Contains(t, stdout.String(), "partial line")
	assert.NotContains(t, stdout.String(), "\r")

	r.OnTaskLog("j1", []byte("unflushed"))
	require.NoError(t, r.Stop())
	assert.Contains(t, stdout.String(), "unflushed")
}

func TestRenderer_UnknownSpan(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	r.OnTaskLog("missing", []byte("dropped\n"))
	r.OnTaskComplete("missing", t0, nil)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderer_ConcurrentJobs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)
	r.OnTaskStart("p1", "", "FPI build", t0)

	ids := []string{"a", "b", "c", "d"}
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Go(func() {
			r.OnTaskStart(id, "p1", id, t0)
			for range 10 {
				r.OnTaskLog(id, []byte("line\n"))
			}
			r.OnTaskComplete(id, t0.Add(time.Second), nil)
		})
	}
	wg.Wait()

	assert.Equal(t, 40, bytes.Count(stdout.Bytes(), []byte("line\n")))
	assert.Equal(t, 4, bytes.Count(stderr.Bytes(), []byte("passed in 1s")))
}
