package sim

import "time"

// Bubble is one floating element of the wall. Records are recycled through
// the Pool, so every field is reset on spawn.
type Bubble struct {
	ID      uint64
	X, Y    float64 // center position, pixels, y grows downward
	VX, VY  float64 // pixels per frame
	Size    float64 // diameter; only shrinks, and only while fading
	Opacity float64
	Color   string // palette hex
	Name    string
	Desc    string
	Fading  bool // terminal phase, never cleared once set

	lastMoveTime time.Time // last time the bubble covered real ground
	lastX, lastY float64
}

// Snapshot is the read-only view handed to renderers.
type Snapshot struct {
	ID      uint64
	X, Y    float64
	Size    float64
	Opacity float64
	Color   string
	Name    string
	Desc    string
	Fading  bool
}

func (b *Bubble) snapshot() Snapshot {
	return Snapshot{
		ID:      b.ID,
		X:       b.X,
		Y:       b.Y,
		Size:    b.Size,
		Opacity: b.Opacity,
		Color:   b.Color,
		Name:    b.Name,
		Desc:    b.Desc,
		Fading:  b.Fading,
	}
}

var palette = []string{
	"#7FD4F5",
	"#9FE8C8",
	"#C3B8F0",
	"#F5C3D9",
	"#F7E3A1",
	"#A8D8F0",
	"#D4F0B8",
	"#F0C8A8",
	"#B8E8E8",
	"#E8B8D8",
}

var names = []string{
	"Aurora", "Nimbus", "Cirrus", "Lagoon",
	"Pearl", "Tide", "Mist", "Glimmer",
	"Briny", "Floe", "Eddy", "Swell",
	"Kelp", "Coral", "Drift", "Plume",
	"Spray", "Froth", "Shoal", "Ripple",
	"Haze", "Dew", "Brook", "Crest",
	"Spume", "Wisp", "Gale", "Squall",
	"Moray", "Abyss", "Reef", "Current",
}

var descriptions = []string{
	"drifting with the current",
	"rising from the deep",
	"chasing the surface light",
	"carried on a warm updraft",
	"looking for company",
	"fresh off the seabed",
	"all shimmer, no hurry",
	"half air, half daydream",
	"slipping between the others",
	"on its way somewhere bright",
	"too light to sink",
	"holding its breath",
	"catching stray sunbeams",
	"wobbling along happily",
	"late to the surface party",
	"newly escaped from a wave",
	"going where the water goes",
	"quietly reflective",
	"a little iridescent today",
	"bumping into everything",
	"practicing its escape",
	"keeping a low profile",
	"full of borrowed air",
	"almost at the top",
}
