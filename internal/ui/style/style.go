// Package style provides the colors and icons shared by pdctl's renderers and logger.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#0EA5E9")
	Muted  = lipgloss.Color("#64748B")
	Ink    = lipgloss.Color("#0F172A")
	Paper  = lipgloss.Color("#F8FAFC")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Skip    = "-"
	Running = "●"
	Idle    = "○"
	Arrow   = "→"
)

// LaneColors cycles through distinct colors for job prefixes.
var LaneColors = []lipgloss.Color{
	lipgloss.Color("#0EA5E9"),
	lipgloss.Color("#A855F7"),
	lipgloss.Color("#F59E0B"),
	lipgloss.Color("#10B981"),
	lipgloss.Color("#EC4899"),
	lipgloss.Color("#6366F1"),
}

// LaneColor returns the color for the n-th lane or job.
func LaneColor(n int) lipgloss.Color {
	if n < 0 {
		n = -n
	}
	return LaneColors[n%len(LaneColors)]
}
