package sim

import "time"

// scriptRand plays back fixed sequences so scenarios are exact. Sequences
// cycle; an empty sequence yields a neutral midpoint.
type scriptRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testField(width, height float64, floats []float64) (*Field, *fakeClock) {
	f := New(width, height, Config{})
	clock := &fakeClock{t: time.Unix(1000, 0)}
	f.now = func() time.Time { return clock.t }
	f.rng = &scriptRand{floats: floats}
	return f, clock
}
