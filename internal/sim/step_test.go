package sim

import (
	"math"
	"testing"
	"time"
)

func almost(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestSpawnedBubbleDriftsUpward(t *testing.T) {
	// Scripted draws: x=0.2*500=100, vx=0, vy=-0.5, size=70, opacity=0.8.
	f, clock := testField(500, 400, []float64{0.2, 0.5, 0.125, 0.5, 0.5})

	b := f.Spawn()
	if b == nil {
		t.Fatal("expected a spawned bubble")
	}
	if !almost(b.X, 100) || !almost(b.Y, 450) {
		t.Fatalf("spawn position = (%f, %f), want (100, 450)", b.X, b.Y)
	}
	if !almost(b.VY, -0.5) {
		t.Fatalf("spawn vy = %f, want -0.5", b.VY)
	}

	if !f.step(b, f.bubbles, clock.t) {
		t.Fatal("lone bubble should survive a step")
	}
	if !almost(b.X, 100) {
		t.Fatalf("x after step = %f, want 100 (vx was 0)", b.X)
	}
	if !almost(b.Y, 449.5) {
		t.Fatalf("y after step = %f, want 449.5", b.Y)
	}
	if b.Fading {
		t.Fatal("bubble far from the ceiling must not fade")
	}
}

func TestStepClampsToWalls(t *testing.T) {
	f, clock := testField(500, 400, []float64{0.9})

	left := &Bubble{X: 5, Y: 200, Size: 40, VX: -1, VY: -0.5}
	if !f.step(left, []*Bubble{left}, clock.t) {
		t.Fatal("bounced bubble should survive")
	}
	if !almost(left.X, 20) {
		t.Fatalf("left clamp x = %f, want size/2 = 20", left.X)
	}

	right := &Bubble{X: 495, Y: 200, Size: 40, VX: 1, VY: -0.5}
	f.step(right, []*Bubble{right}, clock.t)
	if !almost(right.X, 480) {
		t.Fatalf("right clamp x = %f, want width-size/2 = 480", right.X)
	}

	for _, b := range []*Bubble{left, right} {
		if b.X < b.Size/2 || b.X > 500-b.Size/2 {
			t.Fatalf("x = %f escaped [%f, %f]", b.X, b.Size/2, 500-b.Size/2)
		}
	}
}

func TestCeilingStartsFadeExactlyOnce(t *testing.T) {
	f, clock := testField(500, 400, nil)

	b := &Bubble{X: 100, Y: 20.5, Size: 40, VY: -1}
	if !f.step(b, []*Bubble{b}, clock.t) {
		t.Fatal("bubble should survive the ceiling transition")
	}
	if !b.Fading {
		t.Fatal("reaching y <= size/2 must start the fade")
	}
	if !almost(b.Y, 20) {
		t.Fatalf("ceiling clamp y = %f, want 20", b.Y)
	}
	if !almost(b.VY, -0.1) {
		t.Fatalf("ceiling vy = %f, want -0.1", b.VY)
	}

	// One-way: further steps keep fading no matter what.
	f.step(b, []*Bubble{b}, clock.t)
	if !b.Fading {
		t.Fatal("fade flag reverted")
	}
}

func TestFadingShrinksMonotonicallyUntilRemoved(t *testing.T) {
	f, clock := testField(500, 400, nil)

	b := &Bubble{X: 100, Y: 50, Size: 40, Opacity: 0.8, Fading: true, VY: -0.1}
	prevOpacity, prevSize := b.Opacity, b.Size
	for i := 0; i < 500; i++ {
		alive := f.step(b, []*Bubble{b}, clock.t)
		if !alive {
			if b.Opacity >= fadeMinOpacity && b.Size >= fadeMinSize {
				t.Fatalf("removed while above thresholds: opacity=%f size=%f", b.Opacity, b.Size)
			}
			return
		}
		if b.Opacity >= prevOpacity || b.Size >= prevSize {
			t.Fatalf("fade not strictly decreasing at step %d", i)
		}
		prevOpacity, prevSize = b.Opacity, b.Size
	}
	t.Fatal("fading bubble never removed")
}

func TestFadingRemovalThresholds(t *testing.T) {
	f, clock := testField(500, 400, nil)

	dim := &Bubble{X: 100, Y: 50, Size: 50, Opacity: 0.052, Fading: true}
	if f.step(dim, []*Bubble{dim}, clock.t) {
		t.Fatalf("opacity %f should remove the bubble", dim.Opacity)
	}

	tiny := &Bubble{X: 100, Y: 50, Size: 10.1, Opacity: 0.8, Fading: true}
	if f.step(tiny, []*Bubble{tiny}, clock.t) {
		t.Fatalf("size %f should remove the bubble", tiny.Size)
	}

	fine := &Bubble{X: 100, Y: 50, Size: 50, Opacity: 0.5, Fading: true}
	if !f.step(fine, []*Bubble{fine}, clock.t) {
		t.Fatal("healthy fader removed early")
	}
}

func TestActiveCullRules(t *testing.T) {
	f, clock := testField(500, 400, nil)

	shrunk := &Bubble{X: 100, Y: 200, Size: 25, Opacity: 0.8, VY: -0.5}
	if f.step(shrunk, []*Bubble{shrunk}, clock.t) {
		t.Fatal("active below the size threshold must be culled")
	}

	gone := &Bubble{X: 100, Y: -150, Size: 50, Opacity: 0.8, VY: -0.5}
	if f.step(gone, []*Bubble{gone}, clock.t) {
		t.Fatal("active far out of frame must be culled")
	}

	// Fading bubbles are exempt from the active cull.
	fader := &Bubble{X: 100, Y: 200, Size: 25, Opacity: 0.8, Fading: true}
	if !f.step(fader, []*Bubble{fader}, clock.t) {
		t.Fatal("fading bubble culled by the active rule")
	}
}

func TestOverlappingBubblesPushApart(t *testing.T) {
	f, clock := testField(500, 600, []float64{0.9})

	b1 := &Bubble{ID: 1, X: 100, Y: 300, Size: 100, VX: 0.2, VY: -1, Opacity: 0.8}
	b2 := &Bubble{ID: 2, X: 150, Y: 300, Size: 100, VX: -0.2, VY: -1, Opacity: 0.8}
	b1.lastX, b1.lastY = b1.X, b1.Y
	b1.lastMoveTime = clock.t
	all := []*Bubble{b1, b2}

	if !f.step(b1, all, clock.t) {
		t.Fatal("colliding bubble should survive")
	}

	dist := math.Hypot(b1.X-b2.X, b1.Y-b2.Y)
	if dist < 100 {
		t.Fatalf("post-push distance = %f, want >= combined half-size 100", dist)
	}

	// The passive party is damped by exactly 0.98; the stepped one blends
	// the damped value through velocity smoothing.
	if !almost(b2.VX, -0.2*collisionDamping) || !almost(b2.VY, -1*collisionDamping) {
		t.Fatalf("neighbor velocity = (%f, %f), want 0.98 damping", b2.VX, b2.VY)
	}
	wantVX := 0.2*velocityKeep + 0.2*collisionDamping*(1-velocityKeep)
	wantVY := -1*velocityKeep + -1*collisionDamping*(1-velocityKeep)
	if !almost(b1.VX, wantVX) || !almost(b1.VY, wantVY) {
		t.Fatalf("stepped velocity = (%f, %f), want (%f, %f)", b1.VX, b1.VY, wantVX, wantVY)
	}
}

func TestCoincidentCentersSkipPush(t *testing.T) {
	f, clock := testField(500, 600, []float64{0.9})

	b1 := &Bubble{ID: 1, X: 100, Y: 300, Size: 50, Opacity: 0.8}
	b2 := &Bubble{ID: 2, X: 100, Y: 300, Size: 50, Opacity: 0.8}
	b1.lastMoveTime = clock.t
	all := []*Bubble{b1, b2}

	if !f.step(b1, all, clock.t) {
		t.Fatal("coincident bubble should survive")
	}
	if math.IsNaN(b1.X) || math.IsNaN(b1.VX) {
		t.Fatal("zero-distance collision produced NaN")
	}
}

func TestStuckBubbleGetsBoosted(t *testing.T) {
	f, clock := testField(500, 400, []float64{0.9, 0.5})

	b := &Bubble{X: 200, Y: 200, Size: 40, Opacity: 0.8}
	b.lastMoveTime = clock.t.Add(-4 * time.Second)
	b.lastX, b.lastY = b.X, b.Y

	if !f.step(b, []*Bubble{b}, clock.t) {
		t.Fatal("stuck bubble should survive")
	}
	if !almost(b.VY, boostRise) {
		t.Fatalf("vy after boost = %f, want %f", b.VY, boostRise)
	}
}

func TestStalledBubbleKeepsRising(t *testing.T) {
	f, clock := testField(500, 400, []float64{0.9})

	b := &Bubble{X: 200, Y: 200, Size: 40, Opacity: 0.8, VY: 0}
	b.lastMoveTime = clock.t
	b.lastX, b.lastY = b.X, b.Y

	f.step(b, []*Bubble{b}, clock.t)
	if b.VY >= 0 {
		t.Fatalf("vy after anti-stall = %f, want upward drift", b.VY)
	}
}
