// Package backdrop computes the slowly shifting clear color behind the
// bubble wall and reports what the terminal can do with it.
package backdrop

import (
	"math"
	"os"
	"strings"
	"time"
)

// Wave frequencies (rad/s) and phase offsets for the three channels. The
// incommensurate frequencies keep the cycle from visibly repeating.
const (
	freqR, freqG, freqB    = 0.7, 1.1, 1.3
	phaseR, phaseG, phaseB = 0.0, 2.0, 4.0
)

// At returns the backdrop color for a wall-clock instant, each channel in
// [0, 1].
func At(t time.Time) (r, g, b float64) {
	s := float64(t.UnixNano()) / float64(time.Second)
	r = (math.Sin(s*freqR+phaseR) + 1) / 2
	g = (math.Sin(s*freqG+phaseG) + 1) / 2
	b = (math.Sin(s*freqB+phaseB) + 1) / 2
	return r, g, b
}

// Capability describes the rendering surface. A surface that cannot color is
// reported, not failed: the wall degrades to an informational badge.
type Capability struct {
	Version  string
	Vendor   string
	Renderer string
	Enabled  bool
}

// Probe inspects the terminal environment. Fields that cannot be determined
// read "Unknown"; a disabled surface reports Version "N/A".
func Probe() Capability {
	cap := Capability{
		Version:  "Unknown",
		Vendor:   "Unknown",
		Renderer: "Unknown",
	}

	term := strings.ToLower(os.Getenv("TERM"))
	colorTerm := strings.ToLower(os.Getenv("COLORTERM"))

	if _, disabled := os.LookupEnv("NO_COLOR"); disabled || term == "" || term == "dumb" {
		cap.Version = "N/A"
		return cap
	}

	cap.Enabled = true
	cap.Renderer = os.Getenv("TERM")
	if program := os.Getenv("TERM_PROGRAM"); program != "" {
		cap.Vendor = program
	}
	switch {
	case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
		cap.Version = "truecolor"
	case strings.Contains(term, "256color"):
		cap.Version = "256color"
	default:
		cap.Version = "ansi"
	}
	return cap
}
