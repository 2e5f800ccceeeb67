package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

// Batch limits for job output.
const (
	DefaultSizeLimit = 4096
	DefaultTimeLimit = 50 * time.Millisecond
)

var errBatcherClosed = errors.New("job output batcher is closed")

// OutputBatcher groups the output of one job into whole lines for a renderer.
//
// A timed flush delivers every complete line buffered so far and keeps a trailing partial
// line back until its newline arrives. The partial line is delivered anyway once the
// buffer reaches sizeLimit, and on Close.
type OutputBatcher struct {
	sizeLimit int
	timeLimit time.Duration
	emit      func([]byte)

	mu      sync.Mutex
	pending bytes.Buffer
	ticker  *time.Ticker
	stopCh  chan struct{}
	closed  bool
}

// NewOutputBatcher starts a batcher; non-positive limits select the defaults.
func NewOutputBatcher(sizeLimit int, timeLimit time.Duration, emit func([]byte)) *OutputBatcher {
	if sizeLimit <= 0 {
		sizeLimit = DefaultSizeLimit
	}
	if timeLimit <= 0 {
		timeLimit = DefaultTimeLimit
	}

	b := &OutputBatcher{
		sizeLimit: sizeLimit,
		timeLimit: timeLimit,
		emit:      emit,
		ticker:    time.NewTicker(timeLimit),
		stopCh:    make(chan struct{}),
	}
	go b.run()

	return b
}

// Write buffers job output. Reaching the size limit delivers the whole buffer at once.
func (b *OutputBatcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errBatcherClosed
	}

	n, _ := b.pending.Write(p)
	if b.pending.Len() >= b.sizeLimit {
		b.deliverLocked(b.pending.Len())
		b.ticker.Reset(b.timeLimit)
	}
	return n, nil
}

// Flush delivers the complete lines buffered so far.
func (b *OutputBatcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	if i := bytes.LastIndexByte(b.pending.Bytes(), '\n'); i >= 0 {
		b.deliverLocked(i + 1)
	}
}

// Close delivers everything left, including an unterminated last line. It is idempotent.
func (b *OutputBatcher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.stopCh)
	b.deliverLocked(b.pending.Len())
	return nil
}

func (b *OutputBatcher) run() {
	for {
		select {
		case <-b.ticker.C:
			b.Flush()
		case <-b.stopCh:
			b.ticker.Stop()
			return
		}
	}
}

// deliverLocked hands the first n buffered bytes to emit.
func (b *OutputBatcher) deliverLocked(n int) {
	if n == 0 {
		return
	}

	data := bytes.Clone(b.pending.Next(n))
	if b.pending.Len() == 0 {
		b.pending.Reset()
	}

	if b.emit != nil {
		b.emit(data)
	}
}
