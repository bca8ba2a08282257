package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// One driver cadence for both physics and repaint; the field's own publish
// throttle decides how often a fresh snapshot actually appears.
const tickRate = time.Second / 30

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
