package status_test

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/adapters/status"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func update(m *status.Model, msgs ...tea.Msg) *status.Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(*status.Model)
	}
	return m
}

func startedPhase() *status.Model {
	return update(status.NewModel().WithDisableTick(),
		tea.WindowSizeMsg{Width: 100, Height: 40},
		status.MsgPlan{Items: []string{"net", "http.core", "http.client"}},
		status.MsgSpanStart{SpanID: "p1", Name: "FPI build", StartTime: t0},
	)
}

func TestModel_Lanes(t *testing.T) {
	t.Parallel()

	m := update(startedPhase(),
		status.MsgSpanStart{SpanID: "a", ParentID: "p1", Name: "net", StartTime: t0},
		status.MsgSpanStart{SpanID: "b", ParentID: "p1", Name: "http.core", StartTime: t0},
	)
	assert.Equal(t, []string{"a", "b"}, m.Lanes)
	assert.Equal(t, 3, m.Planned)

	m = update(m, status.MsgSpanComplete{SpanID: "a", EndTime: t0.Add(time.Second)})
	assert.Equal(t, []string{"", "b"}, m.Lanes)
	assert.Equal(t, status.StatusPassed, m.SpanMap["a"].Status)

	m = update(m, status.MsgSpanStart{SpanID: "c", ParentID: "p1", Name: "http.client", StartTime: t0})
	assert.Equal(t, 0, m.SpanMap["c"].Lane, "lowest idle lane is reused")
	assert.Len(t, m.Lanes, 2)
}

func TestModel_PhaseHistory(t *testing.T) {
	t.Parallel()

	m := update(startedPhase(),
		status.MsgSpanStart{SpanID: "a", ParentID: "p1", Name: "net", StartTime: t0},
		status.MsgSpanStart{SpanID: "b", ParentID: "p1", Name: "http.core", StartTime: t0},
		status.MsgSpanComplete{SpanID: "a", EndTime: t0.Add(time.Second)},
		status.MsgSpanComplete{SpanID: "b", EndTime: t0.Add(time.Second), Err: errors.New("exit status 1")},
		status.MsgSpanComplete{SpanID: "p1", EndTime: t0.Add(2 * time.Second)},
		status.MsgSpanStart{SpanID: "p2", Name: "Fates debug", StartTime: t0},
	)

	require.Len(t, m.History, 1)
	assert.Equal(t, status.PhaseResult{Title: "FPI build", Passed: 1, Failed: 1}, m.History[0])
	assert.Equal(t, "Fates debug", m.Phase)
	assert.Empty(t, m.Jobs)
	assert.Empty(t, m.Lanes)
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	m := update(startedPhase(),
		status.MsgSpanStart{SpanID: "a", ParentID: "p1", Name: "net", StartTime: t0},
		status.MsgSpanStart{SpanID: "b", ParentID: "p1", Name: "http.core", StartTime: t0},
		status.MsgSpanStart{SpanID: "c", ParentID: "p1", Name: "http.client", StartTime: t0},
	)
	assert.Equal(t, 2, m.SelectedIdx, "selection follows the newest job")

	m = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, m.SelectedIdx)
	assert.False(t, m.FollowMode)

	m = update(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.SelectedIdx)

	m = update(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.SelectedIdx)

	m = update(m, status.MsgSpanComplete{SpanID: "c", EndTime: t0.Add(time.Second)}, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.FollowMode)
	assert.Equal(t, 1, m.SelectedIdx, "esc jumps to the newest running job")
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	m := startedPhase()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Logs(t *testing.T) {
	t.Parallel()

	m := update(startedPhase(),
		status.MsgSpanStart{SpanID: "a", ParentID: "p1", Name: "net", StartTime: t0},
		status.MsgSpanLog{SpanID: "a", Data: []byte("compiling socket.c\r\nlink")},
		status.MsgSpanLog{SpanID: "unknown", Data: []byte("dropped\n")},
	)

	view := m.View()
	assert.Contains(t, view, "compiling socket.c")
	assert.Contains(t, view, "LOGS: net (Following)")
	assert.NotContains(t, view, "dropped")
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Initializing...", status.NewModel().View())

	m := update(startedPhase(),
		status.MsgSpanStart{SpanID: "a", ParentID: "p1", Name: "net", StartTime: t0},
		status.MsgSpanStart{SpanID: "b", ParentID: "p1", Name: "http.core", StartTime: t0},
		status.MsgSpanComplete{SpanID: "a", EndTime: t0.Add(1500 * time.Millisecond)},
	)

	view := m.View()
	assert.Contains(t, view, "FPI build")
	assert.Contains(t, view, "1/2 jobs done, 3 planned items")
	assert.Contains(t, view, "lane 1 ○ idle")
	assert.Contains(t, view, "http.core")
	assert.Contains(t, view, "✓ net 1.5s")
}
