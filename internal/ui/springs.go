package ui

import "github.com/charmbracelet/harmonica"

// colorSprings eases the backdrop channels toward their wave targets so the
// wall never visibly snaps between tick colors.
type colorSprings struct {
	spring harmonica.Spring
	pos    [3]float64
	vel    [3]float64
}

func newColorSprings(fps int, frequency, damping float64) colorSprings {
	return colorSprings{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (s *colorSprings) step(targets [3]float64) [3]float64 {
	for i, target := range targets {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], target)
	}
	return s.pos
}
