package server

import "github.com/olivier-w/driftwall/internal/sim"

type welcome struct {
	Type   string  `json:"type"`
	TickHz int     `json:"tickHz"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

type frameMsg struct {
	Type    string       `json:"type"`
	Tick    int          `json:"tick"`
	Bubbles []bubbleWire `json:"bubbles"`
}

type bubbleWire struct {
	ID      uint64  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Size    float64 `json:"size"`
	Opacity float64 `json:"opacity"`
	Color   string  `json:"color"`
	Name    string  `json:"name"`
	Desc    string  `json:"desc"`
	Fading  bool    `json:"fading,omitempty"`
}

func frameFromSnapshots(tick int, snaps []sim.Snapshot) frameMsg {
	bubbles := make([]bubbleWire, len(snaps))
	for i, s := range snaps {
		bubbles[i] = bubbleWire{
			ID:      s.ID,
			X:       s.X,
			Y:       s.Y,
			Size:    s.Size,
			Opacity: s.Opacity,
			Color:   s.Color,
			Name:    s.Name,
			Desc:    s.Desc,
			Fading:  s.Fading,
		}
	}
	return frameMsg{Type: "frame", Tick: tick, Bubbles: bubbles}
}
