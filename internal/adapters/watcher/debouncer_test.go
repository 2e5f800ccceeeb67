package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pdctl/internal/adapters/watcher"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) record(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_Coalesces(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("/src/product/net/socket.c")
		time.Sleep(60 * time.Millisecond)
		d.Add("/src/product/http/core/parser.c")
		d.Add("/src/product/net/socket.c")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.snapshot(), "window restarts on every change")

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, [][]string{{"/src/product/http/core/parser.c", "/src/product/net/socket.c"}}, rec.snapshot())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(time.Second, rec.record)

		d.Flush()
		assert.Empty(t, rec.snapshot())

		d.Add("a")
		d.Flush()
		assert.Equal(t, [][]string{{"a"}}, rec.snapshot())

		time.Sleep(2 * time.Second)
		synctest.Wait()
		assert.Len(t, rec.snapshot(), 1, "flushed paths are not delivered twice")
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		rec := &recorder{}
		d := watcher.NewDebouncer(100*time.Millisecond, rec.record)

		d.Add("a")
		d.Stop()
		time.Sleep(time.Second)
		synctest.Wait()
		assert.Empty(t, rec.snapshot())
	})
}
