package status

import (
	"bytes"
	"strings"
)

const defaultTailLines = 500

// logTail keeps the most recent complete lines of a job's output.
type logTail struct {
	max     int
	lines   []string
	partial bytes.Buffer
}

func newLogTail(maxLines int) *logTail {
	if maxLines <= 0 {
		maxLines = defaultTailLines
	}
	return &logTail{max: maxLines}
}

func (t *logTail) Write(p []byte) (int, error) {
	t.partial.Write(p)
	for {
		i := bytes.IndexByte(t.partial.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := string(t.partial.Next(i + 1))
		t.push(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

func (t *logTail) push(line string) {
	t.lines = append(t.lines, line)
	if over := len(t.lines) - t.max; over > 0 {
		t.lines = append(t.lines[:0], t.lines[over:]...)
	}
}

// Lines returns the retained lines followed by any unterminated line.
func (t *logTail) Lines() []string {
	if t.partial.Len() == 0 {
		return t.lines
	}
	return append(t.lines[:len(t.lines):len(t.lines)], strings.TrimRight(t.partial.String(), "\r"))
}

// Last returns the most recent line, or "".
func (t *logTail) Last() string {
	lines := t.Lines()
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}
