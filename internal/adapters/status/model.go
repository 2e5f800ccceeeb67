// Package status renders phases as an interactive lanes view for terminals.
package status

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minListHeight = 3
	chromeHeight  = 4
)

// JobStatus is the display state of a job.
type JobStatus string

const (
	// StatusRunning indicates the job occupies a lane.
	StatusRunning JobStatus = "Running"
	// StatusPassed indicates the job succeeded.
	StatusPassed JobStatus = "Passed"
	// StatusFailed indicates the job failed.
	StatusFailed JobStatus = "Failed"
)

// JobNode is a single job of the current phase.
type JobNode struct {
	SpanID string
	Name   string
	Lane   int
	Status JobStatus
	Start  time.Time
	End    time.Time
	Err    error
	Log    *logTail
}

// PhaseResult is a finished phase shown above the current one.
type PhaseResult struct {
	Title  string
	Passed int
	Failed int
	Err    error
}

// Model is the Bubble Tea model of the lanes view.
type Model struct {
	Phase      string
	Planned    int
	History    []PhaseResult
	Jobs       []*JobNode
	SpanMap    map[string]*JobNode
	Lanes      []string
	phases     map[string]string
	ListHeight int
	ListOffset int
	Width      int
	Height     int

	SelectedIdx int
	FollowMode  bool

	spinner     spinner.Model
	viewport    viewport.Model
	disableTick bool
}

// NewModel creates a model following the most recently started job.
func NewModel() *Model {
	return &Model{
		SpanMap:    make(map[string]*JobNode),
		phases:     make(map[string]string),
		FollowMode: true,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(jobRunningStyle)),
		viewport:   viewport.New(0, 0),
	}
}

// WithDisableTick stops the spinner animation.
func (m *Model) WithDisableTick() *Model {
	m.disableTick = true
	return m
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	if m.disableTick {
		return nil
	}
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message switch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()

	case spinner.TickMsg:
		if m.disableTick {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgPlan:
		m.Planned = len(msg.Items)

	case MsgSpanStart:
		if msg.ParentID == "" {
			m.startPhase(msg)
			break
		}
		m.startJob(msg)

	case MsgSpanLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			_, _ = node.Log.Write(msg.Data)
			if node == m.selected() {
				m.refreshLog()
			}
		}

	case MsgSpanComplete:
		if title, ok := m.phases[msg.SpanID]; ok {
			m.finishPhase(title, msg.Err)
			delete(m.phases, msg.SpanID)
			break
		}
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			m.finishJob(node, msg)
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "k", "up":
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
			m.FollowMode = false
			m.ensureVisible()
			m.refreshLog()
		}
	case "j", "down":
		if m.SelectedIdx < len(m.Jobs)-1 {
			m.SelectedIdx++
			m.FollowMode = false
			m.ensureVisible()
			m.refreshLog()
		}
	case "esc":
		m.FollowMode = true
		for i := len(m.Jobs) - 1; i >= 0; i-- {
			if m.Jobs[i].Status == StatusRunning {
				m.SelectedIdx = i
				break
			}
		}
		m.ensureVisible()
		m.refreshLog()
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) startPhase(msg MsgSpanStart) {
	m.phases[msg.SpanID] = msg.Name
	m.Phase = msg.Name
	m.Jobs = nil
	m.SpanMap = make(map[string]*JobNode)
	m.Lanes = nil
	m.SelectedIdx = 0
	m.ListOffset = 0
	m.refreshLog()
}

func (m *Model) finishPhase(title string, err error) {
	res := PhaseResult{Title: title, Err: err}
	for _, j := range m.Jobs {
		switch j.Status {
		case StatusPassed:
			res.Passed++
		case StatusFailed:
			res.Failed++
		case StatusRunning:
		}
	}
	m.History = append(m.History, res)
}

func (m *Model) startJob(msg MsgSpanStart) {
	node := &JobNode{
		SpanID: msg.SpanID,
		Name:   msg.Name,
		Lane:   m.acquireLane(msg.SpanID),
		Status: StatusRunning,
		Start:  msg.StartTime,
		Log:    newLogTail(0),
	}
	m.Jobs = append(m.Jobs, node)
	m.SpanMap[msg.SpanID] = node

	if m.FollowMode {
		m.SelectedIdx = len(m.Jobs) - 1
		m.ensureVisible()
		m.refreshLog()
	}
}

func (m *Model) finishJob(node *JobNode, msg MsgSpanComplete) {
	node.End = msg.EndTime
	node.Err = msg.Err
	node.Status = StatusPassed
	if msg.Err != nil {
		node.Status = StatusFailed
	}
	m.releaseLane(node)
}

// acquireLane places a job on the lowest idle lane, adding a lane when all are busy.
func (m *Model) acquireLane(spanID string) int {
	for i, id := range m.Lanes {
		if id == "" {
			m.Lanes[i] = spanID
			return i
		}
	}
	m.Lanes = append(m.Lanes, spanID)
	m.resize()
	return len(m.Lanes) - 1
}

func (m *Model) releaseLane(node *JobNode) {
	if node.Lane < len(m.Lanes) && m.Lanes[node.Lane] == node.SpanID {
		m.Lanes[node.Lane] = ""
	}
}

func (m *Model) selected() *JobNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Jobs) {
		return m.Jobs[m.SelectedIdx]
	}
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) refreshLog() {
	node := m.selected()
	if node == nil {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(strings.Join(node.Log.Lines(), "\n"))
	if m.FollowMode {
		m.viewport.GotoBottom()
	}
}

// resize splits the height left after the header and lanes between the job list and the log pane.
func (m *Model) resize() {
	if m.Height <= 0 {
		return
	}
	free := m.Height - chromeHeight - len(m.History) - max(len(m.Lanes), 1)
	m.ListHeight = max(free/3, minListHeight)
	m.viewport.Width = max(m.Width-1, 0)
	m.viewport.Height = max(free-m.ListHeight-1, 1)
	m.ensureVisible()
}
