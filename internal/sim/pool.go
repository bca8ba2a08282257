package sim

// Pool recycles retired bubble records. It is a bounded LIFO free list:
// releases beyond the cap are dropped for the collector. The active counter
// tracks every Acquire, including the ones that came back empty and made the
// caller allocate fresh.
type Pool struct {
	free   []*Bubble
	cap    int
	active int
}

// NewPool returns a pool retaining at most max records; max <= 0 uses the
// default cap.
func NewPool(max int) *Pool {
	if max <= 0 {
		max = PoolCap
	}
	return &Pool{cap: max}
}

// Acquire pops the most recently released record. The second return is false
// when the free list is empty and the caller must allocate.
func (p *Pool) Acquire() (*Bubble, bool) {
	p.active++
	if len(p.free) == 0 {
		return nil, false
	}
	b := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	return b, true
}

// Release retires a record. It is kept for reuse only while the free list is
// under the cap.
func (p *Pool) Release(b *Bubble) {
	if p.active > 0 {
		p.active--
	}
	if len(p.free) < p.cap {
		p.free = append(p.free, b)
	}
}

// ActiveCount reports acquires minus releases, floored at zero.
func (p *Pool) ActiveCount() int {
	return p.active
}
