package status

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pdctl/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.Width == 0 {
		return "Initializing..."
	}

	sections := make([]string, 0, 5)
	if len(m.History) > 0 {
		sections = append(sections, m.history())
	}
	sections = append(sections, m.header(), m.lanes(), m.jobList(), m.logPane())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) history() string {
	rows := make([]string, 0, len(m.History))
	for _, p := range m.History {
		if p.Failed > 0 || p.Err != nil {
			rows = append(rows, jobFailedStyle.Render(fmt.Sprintf("%s %s  %d passed, %d failed", style.Cross, p.Title, p.Passed, p.Failed)))
			continue
		}
		rows = append(rows, jobPassedStyle.Render(fmt.Sprintf("%s %s  %d passed", style.Check, p.Title, p.Passed)))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) header() string {
	title := m.Phase
	if title == "" {
		title = "Waiting..."
	}

	var done, failed int
	for _, j := range m.Jobs {
		switch j.Status {
		case StatusPassed:
			done++
		case StatusFailed:
			done++
			failed++
		case StatusRunning:
		}
	}

	ts := titleStyle
	if failed > 0 {
		ts = failureTitleStyle
	}
	progress := fmt.Sprintf(" %d/%d jobs done, %d planned items", done, len(m.Jobs), m.Planned)
	return ts.Render(title) + idleStyle.Render(progress)
}

func (m *Model) lanes() string {
	if len(m.Lanes) == 0 {
		return idleStyle.Render(fmt.Sprintf("lane 1 %s idle", style.Idle))
	}

	rows := make([]string, len(m.Lanes))
	for i, spanID := range m.Lanes {
		label := fmt.Sprintf("lane %d ", i+1)
		node, ok := m.SpanMap[spanID]
		if spanID == "" || !ok {
			rows[i] = idleStyle.Render(label + style.Idle + " idle")
			continue
		}
		name := lipgloss.NewStyle().Foreground(style.LaneColor(i)).Render(node.Name)
		line := label + m.spinner.View() + " " + name
		if last := node.Log.Last(); last != "" {
			line += " " + idleStyle.Render(truncate(last, m.Width-lipgloss.Width(line)-1))
		}
		rows[i] = line
	}
	return strings.Join(rows, "\n")
}

func (m *Model) jobList() string {
	var s strings.Builder

	start := min(m.ListOffset, len(m.Jobs))
	end := min(m.ListOffset+m.ListHeight, len(m.Jobs))

	for i := start; i < end; i++ {
		s.WriteString("\n" + m.jobRow(i, m.Jobs[i]))
	}
	return s.String()
}

func (m *Model) jobRow(index int, job *JobNode) string {
	cursor := "  "
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
	}

	switch job.Status {
	case StatusPassed:
		return cursor + jobPassedStyle.Render(fmt.Sprintf("%s %s %s", style.Check, job.Name, elapsed(job)))
	case StatusFailed:
		return cursor + jobFailedStyle.Render(fmt.Sprintf("%s %s %s", style.Cross, job.Name, elapsed(job)))
	default:
		return cursor + jobRunningStyle.Render(fmt.Sprintf("%s %s", style.Running, job.Name))
	}
}

func (m *Model) logPane() string {
	node := m.selected()
	if node == nil {
		return titleStyle.Render("LOGS (Waiting...)")
	}

	mode := " (Manual)"
	if m.FollowMode {
		mode = " (Following)"
	}
	header := titleStyle.Render("LOGS: " + node.Name + mode)
	return lipgloss.JoinVertical(lipgloss.Left, header, logStyle.Render(m.viewport.View()))
}

func elapsed(job *JobNode) string {
	if job.End.IsZero() || job.Start.IsZero() {
		return ""
	}
	return job.End.Sub(job.Start).Round(time.Millisecond).String()
}

func truncate(s string, width int) string {
	if width <= 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
