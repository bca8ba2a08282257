package canvas

import (
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
)

// Profile is the color depth the terminal accepts.
type Profile uint8

const (
	ProfileNone Profile = iota
	ProfileANSI16
	ProfileANSI256
	ProfileTrueColor
)

// RGB is a terminal color. Channels are premultiplied nowhere; blending is
// explicit via Lerp.
type RGB struct {
	R, G, B uint8
}

// ParseHex reads "#RRGGBB". The bool is false for anything else.
func ParseHex(s string) (RGB, bool) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, false
	}
	var c RGB
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, false
	}
	return c, true
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

// Lerp blends a toward b by t in [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

var (
	profileOnce   sync.Once
	cachedProfile Profile
	seqCache      sync.Map
)

// DetectProfile probes the environment once and caches the answer.
func DetectProfile() Profile {
	profileOnce.Do(func() {
		_, noColor := os.LookupEnv("NO_COLOR")
		cachedProfile = classifyProfile(os.Getenv("TERM"), os.Getenv("COLORTERM"), noColor)
	})
	return cachedProfile
}

func classifyProfile(term, colorTerm string, noColor bool) Profile {
	if noColor {
		return ProfileNone
	}
	term = strings.ToLower(term)
	colorTerm = strings.ToLower(colorTerm)
	switch {
	case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
		return ProfileTrueColor
	case strings.Contains(term, "256color"):
		return ProfileANSI256
	case term == "", term == "dumb":
		return ProfileNone
	default:
		return ProfileANSI16
	}
}

// ansiState tracks the last emitted foreground and background so runs of
// same-colored cells cost nothing.
type ansiState struct {
	profile Profile
	fg      uint32
	bg      uint32
}

const colorUnset = ^uint32(0)

func newANSIState(p Profile) ansiState {
	return ansiState{profile: p, fg: colorUnset, bg: colorUnset}
}

func colorKey(c RGB) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (s *ansiState) setFG(sb *strings.Builder, c RGB) {
	if s.profile == ProfileNone {
		return
	}
	key := colorKey(c)
	if key == s.fg {
		return
	}
	sb.WriteString(colorSequence(s.profile, c, false))
	s.fg = key
}

func (s *ansiState) setBG(sb *strings.Builder, c RGB) {
	if s.profile == ProfileNone {
		return
	}
	key := colorKey(c)
	if key == s.bg {
		return
	}
	sb.WriteString(colorSequence(s.profile, c, true))
	s.bg = key
}

func (s *ansiState) reset(sb *strings.Builder) {
	if s.profile == ProfileNone {
		return
	}
	if s.fg != colorUnset || s.bg != colorUnset {
		sb.WriteString("\x1b[0m")
		s.fg = colorUnset
		s.bg = colorUnset
	}
}

var ansi16Palette = []RGB{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 49, B: 49},
	{R: 13, G: 188, B: 121},
	{R: 229, G: 229, B: 16},
	{R: 36, G: 114, B: 200},
	{R: 188, G: 63, B: 188},
	{R: 17, G: 168, B: 205},
	{R: 229, G: 229, B: 229},
}

func colorSequence(profile Profile, c RGB, background bool) string {
	layer := uint32(0)
	if background {
		layer = 1
	}
	key := uint64(profile)<<33 | uint64(layer)<<32 | uint64(colorKey(c))
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	base := 38
	if background {
		base = 48
	}
	var seq string
	switch profile {
	case ProfileTrueColor:
		seq = fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", base, c.R, c.G, c.B)
	case ProfileANSI256:
		r := int(c.R) * 5 / 255
		g := int(c.G) * 5 / 255
		b := int(c.B) * 5 / 255
		idx := 16 + 36*r + 6*g + b
		seq = fmt.Sprintf("\x1b[%d;5;%dm", base, idx)
	case ProfileANSI16:
		best := 0
		bestDist := math.MaxFloat64
		for i, p := range ansi16Palette {
			dr := float64(c.R) - float64(p.R)
			dg := float64(c.G) - float64(p.G)
			db := float64(c.B) - float64(p.B)
			d := dr*dr + dg*dg + db*db
			if d < bestDist {
				bestDist = d
				best = i
			}
		}
		offset := 30
		if background {
			offset = 40
		}
		seq = fmt.Sprintf("\x1b[%dm", offset+best)
	default:
		seq = ""
	}

	seqCache.Store(key, seq)
	return seq
}
