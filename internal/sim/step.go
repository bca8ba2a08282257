package sim

import (
	"math"
	"time"
)

// step advances one bubble by one frame against the frame's membership
// snapshot. It returns false when the bubble is done and should go back to
// the pool.
func (f *Field) step(b *Bubble, all []*Bubble, now time.Time) bool {
	if b.Fading {
		return f.stepFading(b)
	}

	prevVX, prevVY := b.VX, b.VY

	b.X += b.VX
	b.Y += b.VY

	// A container shrink can strand a bubble far out of frame; cull it here,
	// before the ceiling clamp pulls it back into view.
	if b.Y < cullAbove {
		return false
	}

	half := b.Size / 2
	if b.X <= half {
		b.X = half
		b.VX = math.Abs(b.VX) * wallDamping
	} else if b.X >= f.width-half {
		b.X = f.width - half
		b.VX = -math.Abs(b.VX) * wallDamping
	}

	// Reaching the ceiling starts the fade; the bubble sinks slightly while
	// it dissolves and never returns to the active phase.
	if b.Y <= half {
		b.Y = half
		b.VY = ceilingSink
		b.Fading = true
		return true
	}

	collided := false
	for _, o := range nearby(b, all) {
		dx := b.X - o.X
		dy := b.Y - o.Y
		distSq := dx*dx + dy*dy
		minDist := (b.Size + o.Size) / 2
		if distSq >= minDist*minDist {
			continue
		}
		collided = true
		if distSq == 0 {
			// Exactly coincident centers have no connecting vector to push
			// along; the anti-stall jitter separates them next frame.
			continue
		}
		dist := math.Sqrt(distSq)
		push := (minDist - dist + collisionEpsilon) / 2
		nx, ny := dx/dist, dy/dist
		b.X += nx * push
		b.Y += ny * push
		o.X -= nx * push
		o.Y -= ny * push
		b.VX *= collisionDamping
		b.VY *= collisionDamping
		o.VX *= collisionDamping
		o.VY *= collisionDamping
	}

	// Anti-stall: collisions and near-zero vertical speed both threaten the
	// upward drift, so jitter occasionally and floor vy.
	if collided || math.Abs(b.VY) < stallSpeed {
		if f.rng.Float64() < jitterChance {
			b.VX += (f.rng.Float64()*2 - 1) * jitterMag
			b.VY += (f.rng.Float64()*2 - 1) * jitterMag
		}
		if b.VY > riseFloor {
			b.VY = riseFloor
		}
	}

	if b.Size < cullSize {
		return false
	}

	b.VX = prevVX*velocityKeep + b.VX*(1-velocityKeep)
	b.VY = prevVY*velocityKeep + b.VY*(1-velocityKeep)

	// Boost-if-stuck, applied after smoothing so the kick lands at full
	// strength instead of being averaged away.
	dx := b.X - b.lastX
	dy := b.Y - b.lastY
	moved := math.Sqrt(dx*dx + dy*dy)
	if now.Sub(b.lastMoveTime) > stuckAfter && moved < stuckRadius {
		b.VY = boostRise
		b.VX += (f.rng.Float64()*2 - 1) * boostJitter
		b.lastMoveTime = now
	} else if moved >= stuckRadius {
		b.lastMoveTime = now
		b.lastX, b.lastY = b.X, b.Y
	}

	return true
}

func (f *Field) stepFading(b *Bubble) bool {
	b.Opacity *= fadeOpacityKeep
	b.Size *= fadeSizeKeep
	b.X += b.VX
	b.Y += b.VY
	return b.Opacity >= fadeMinOpacity && b.Size >= fadeMinSize
}
