package monitor

import "github.com/charmbracelet/lipgloss"

type styles struct {
	greeting lipgloss.Style
	result   lipgloss.Style
	status   lipgloss.Style
	log      lipgloss.Style
	err      lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		greeting: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
		result:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		status:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		log:      lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(5)),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}
