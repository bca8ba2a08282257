package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/driftwall/internal/backdrop"
	"github.com/olivier-w/driftwall/internal/canvas"
	"github.com/olivier-w/driftwall/internal/sim"
)

// dotScale maps simulation pixels to braille dots, so bubbles sized for a
// web-page container come out a sensible handful of cells wide.
const dotScale = 4.0

// backdropDim keeps the wave colors subtle; full-range channels wash out the
// bubbles entirely.
const backdropDim = 0.22

// Model is the bubbletea model for the bubble wall.
type Model struct {
	field      *sim.Field
	canvas     *canvas.Canvas
	capability backdrop.Capability
	meter      progress.Model
	springs    colorSprings

	bg       canvas.RGB
	width    int
	height   int
	maxCount int
	showInfo bool
	quitting bool
}

// New builds the model; the field starts unsized and spawns nothing until
// the first WindowSizeMsg measures the terminal.
func New(cfg sim.Config) Model {
	max := cfg.MaxBubbles
	if max <= 0 {
		max = sim.MaxBubbles
	}
	return Model{
		field:      sim.New(0, 0, cfg),
		canvas:     canvas.New(1, 1),
		capability: backdrop.Probe(),
		meter:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		springs:    newColorSprings(30, 4.0, 0.9),
		maxCount:   max,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("driftwall"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			m.field.Close()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		if msg.String() == "i" {
			m.showInfo = !m.showInfo
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		rows := msg.Height - 1 // bottom row is the status line
		if rows < 1 {
			rows = 1
		}
		m.canvas.Resize(msg.Width, rows)
		w, h := m.canvas.DotBounds()
		m.field.Resize(float64(w)*dotScale, float64(h)*dotScale)
		m.meter.Width = 20
		return m, nil

	case tickMsg:
		m.field.Frame()
		r, g, b := backdrop.At(time.Time(msg))
		eased := m.springs.step([3]float64{r, g, b})
		m.bg = canvas.RGB{
			R: uint8(clamp01(eased[0]) * backdropDim * 255),
			G: uint8(clamp01(eased[1]) * backdropDim * 255),
			B: uint8(clamp01(eased[2]) * backdropDim * 255),
		}
		return m, tickCmd()
	}

	return m, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear(m.bg)
	if m.capability.Enabled {
		for _, s := range m.field.Snapshots() {
			m.drawBubble(s)
		}
	}

	return m.canvas.Render() + "\n" + m.statusLine()
}

var white = canvas.RGB{R: 255, G: 255, B: 255}

func (m Model) drawBubble(s sim.Snapshot) {
	col, ok := canvas.ParseHex(s.Color)
	if !ok {
		col = white
	}
	if s.Fading {
		// Fading bubbles flare a little brighter as they dissolve.
		col = canvas.Lerp(col, white, 0.35)
	}
	x := s.X / dotScale
	y := s.Y / dotScale
	r := s.Size / 2 / dotScale

	// Soft halo first, then the body over it.
	m.canvas.FillCircle(x, y, r*1.18, col, s.Opacity*0.25)
	m.canvas.FillCircle(x, y, r, col, s.Opacity)
}

func (m Model) statusLine() string {
	count := m.field.Count()
	left := statusStyle.Render(fmt.Sprintf(" driftwall  %d/%d ", count, m.maxCount))
	bar := m.meter.ViewAs(float64(count) / float64(m.maxCount))

	var right string
	if m.showInfo {
		right = badgeText(m.capability)
	} else {
		right = helpStyle.Render(helpText())
	}

	line := left + bar + "  " + right
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

func badgeText(cap backdrop.Capability) string {
	if !cap.Enabled {
		return badgeOffStyle.Render("color off — " + cap.Version)
	}
	parts := []string{cap.Version, cap.Renderer}
	if cap.Vendor != "Unknown" {
		parts = append(parts, cap.Vendor)
	}
	return badgeStyle.Render(strings.Join(parts, " · "))
}
