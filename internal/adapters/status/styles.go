package status

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pdctl/internal/ui/style"
)

var (
	jobRunningStyle = lipgloss.NewStyle().
			Foreground(style.Accent).
			Bold(true)

	jobPassedStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	jobFailedStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	idleStyle = lipgloss.NewStyle().
			Foreground(style.Muted)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Accent).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Accent).
			Foreground(style.Paper)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.Paper)

	logStyle = lipgloss.NewStyle().
			PaddingLeft(1)
)
