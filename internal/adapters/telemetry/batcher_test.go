package telemetry_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/adapters/telemetry"
)

type collector struct {
	mu     sync.Mutex
	chunks []string
}

func (c *collector) add(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chunks = append(c.chunks, string(data))
}

func (c *collector) get() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.chunks...)
}

func TestOutputBatcher_SizeLimitDeliversPartialLine(t *testing.T) {
	t.Parallel()

	c := &collector{}
	b := telemetry.NewOutputBatcher(5, time.Hour, c.add)
	defer func() { _ = b.Close() }()

	_, err := b.Write([]byte("123"))
	require.NoError(t, err)
	assert.Empty(t, c.get())

	_, err = b.Write([]byte("456"))
	require.NoError(t, err)
	assert.Equal(t, []string{"123456"}, c.get())
}

func TestOutputBatcher_TimedFlushKeepsPartialLine(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		c := &collector{}
		b := telemetry.NewOutputBatcher(1024, 50*time.Millisecond, c.add)

		_, err := b.Write([]byte("compiling net\nlinking"))
		require.NoError(t, err)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, []string{"compiling net\n"}, c.get())

		_, err = b.Write([]byte(" net\n"))
		require.NoError(t, err)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, []string{"compiling net\n", "linking net\n"}, c.get())

		require.NoError(t, b.Close())
	})
}

func TestOutputBatcher_FlushWithoutNewline(t *testing.T) {
	t.Parallel()

	c := &collector{}
	b := telemetry.NewOutputBatcher(0, time.Hour, c.add)

	_, err := b.Write([]byte("progress 40%"))
	require.NoError(t, err)
	b.Flush()
	assert.Empty(t, c.get())

	require.NoError(t, b.Close())
	assert.Equal(t, []string{"progress 40%"}, c.get())
}

func TestOutputBatcher_Close(t *testing.T) {
	t.Parallel()

	c := &collector{}
	b := telemetry.NewOutputBatcher(0, time.Hour, c.add)

	_, err := b.Write([]byte("tail\n"))
	require.NoError(t, err)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	assert.Equal(t, []string{"tail\n"}, c.get())

	_, err = b.Write([]byte("late\n"))
	assert.Error(t, err)
	b.Flush()
	assert.Equal(t, []string{"tail\n"}, c.get())
}
