package sim

// nearby returns candidates within an axis-aligned box of radius size*2
// around b, excluding b itself. This is a pre-filter: callers still run the
// exact distance test. A linear scan beats a grid at this population.
func nearby(b *Bubble, all []*Bubble) []*Bubble {
	radius := b.Size * 2
	var out []*Bubble
	for _, o := range all {
		if o == b {
			continue
		}
		dx := o.X - b.X
		if dx < 0 {
			dx = -dx
		}
		if dx >= radius {
			continue
		}
		dy := o.Y - b.Y
		if dy < 0 {
			dy = -dy
		}
		if dy >= radius {
			continue
		}
		out = append(out, o)
	}
	return out
}
