// Package linear renders phases and jobs as prefixed lines for CI logs and pipes.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/pdctl/internal/ui/output"
	"go.trai.ch/pdctl/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by writing job output line by line, each line
// prefixed with the job's correlation id.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	out    *termenv.Output

	mu    sync.Mutex
	spans map[string]*spanState
	seen  int
}

type spanState struct {
	name   string
	phase  bool
	start  time.Time
	color  termenv.Color
	buffer bytes.Buffer
}

// NewRenderer creates a renderer writing job output to stdout and progress to stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		out:    output.NewWithProfile(stderr, output.ColorProfileANSI),
		spans:  make(map[string]*spanState),
	}
}

// Start is a no-op.
func (r *Renderer) Start(context.Context) error {
	return nil
}

// Stop flushes partial lines of unfinished jobs.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.spans {
		r.flushLocked(s)
	}
	return nil
}

// Wait is a no-op.
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit announces the number of items a phase will drain.
func (r *Renderer) OnPlanEmit(items []string, _ map[string][]string, targets []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg := fmt.Sprintf("Planning %d item(s)", len(items))
	if len(targets) > 0 {
		msg += ": " + strings.Join(targets, ", ")
	}
	_, _ = fmt.Fprintln(r.stderr, r.out.String(msg).Faint().String())
}

// OnTaskStart prints a header for phases and a start line for jobs.
func (r *Renderer) OnTaskStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &spanState{name: name, phase: parentID == "", start: startTime}
	r.spans[spanID] = s

	if s.phase {
		header := r.out.String(style.Running + " " + name).Bold().Foreground(r.out.Color(string(style.Accent)))
		_, _ = fmt.Fprintln(r.stderr, header.String())
		return
	}

	s.color = r.out.Color(string(style.LaneColor(r.seen)))
	r.seen++
	_, _ = fmt.Fprintf(r.stderr, "%s %s\n", r.prefix(s), r.out.String("started").Faint().String())
}

// OnTaskLog prints every complete line of job output; a partial line waits for more data.
func (r *Renderer) OnTaskLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.spans[spanID]
	if !ok {
		return
	}

	s.buffer.Write(data)
	for {
		i := bytes.IndexByte(s.buffer.Bytes(), '\n')
		if i < 0 {
			break
		}
		r.printLineLocked(s, s.buffer.Next(i+1))
	}
}

// OnTaskComplete prints the job's result and duration. Phase completion is silent.
func (r *Renderer) OnTaskComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.spans[spanID]
	if !ok {
		return
	}
	delete(r.spans, spanID)

	if s.phase {
		return
	}

	r.flushLocked(s)

	duration := endTime.Sub(s.start).Round(time.Millisecond)
	if err != nil {
		symbol := r.out.String(style.Cross).Foreground(r.out.Color(string(style.Red))).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s failed after %v: %v\n", r.prefix(s), symbol, duration, err)
		return
	}

	symbol := r.out.String(style.Check).Foreground(r.out.Color(string(style.Green))).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s passed in %v\n", r.prefix(s), symbol, duration)
}

func (r *Renderer) prefix(s *spanState) string {
	return r.out.String("[" + s.name + "]").Foreground(s.color).String()
}

func (r *Renderer) flushLocked(s *spanState) {
	if s.buffer.Len() > 0 {
		r.printLineLocked(s, s.buffer.Bytes())
		s.buffer.Reset()
	}
}

func (r *Renderer) printLineLocked(s *spanState, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", r.prefix(s), line)
}
