package sim

import "testing"

func TestPoolActiveCountTracksAcquiresMinusReleases(t *testing.T) {
	p := NewPool(10)
	var got []*Bubble
	for i := 0; i < 5; i++ {
		b, ok := p.Acquire()
		if ok {
			t.Fatal("expected empty pool to report no record")
		}
		if b != nil {
			t.Fatal("expected nil record from empty pool")
		}
		got = append(got, &Bubble{})
	}
	if p.ActiveCount() != 5 {
		t.Fatalf("active after 5 acquires = %d, want 5", p.ActiveCount())
	}
	p.Release(got[0])
	p.Release(got[1])
	if p.ActiveCount() != 3 {
		t.Fatalf("active after 2 releases = %d, want 3", p.ActiveCount())
	}
}

func TestPoolActiveCountFloorsAtZero(t *testing.T) {
	p := NewPool(10)
	p.Release(&Bubble{})
	p.Release(&Bubble{})
	if p.ActiveCount() != 0 {
		t.Fatalf("active after releases without acquires = %d, want 0", p.ActiveCount())
	}
}

func TestPoolReturnsMostRecentlyReleased(t *testing.T) {
	p := NewPool(10)
	first := &Bubble{ID: 1}
	second := &Bubble{ID: 2}
	p.Release(first)
	p.Release(second)

	b, ok := p.Acquire()
	if !ok || b != second {
		t.Fatalf("expected LIFO reuse of record 2, got %+v ok=%v", b, ok)
	}
	b, ok = p.Acquire()
	if !ok || b != first {
		t.Fatalf("expected record 1 next, got %+v ok=%v", b, ok)
	}
}

func TestPoolDiscardsReleasesBeyondCap(t *testing.T) {
	p := NewPool(3)
	for i := 0; i < 8; i++ {
		p.Release(&Bubble{ID: uint64(i)})
	}
	if len(p.free) != 3 {
		t.Fatalf("free list holds %d records, want cap 3", len(p.free))
	}
	for i := 0; i < 3; i++ {
		if _, ok := p.Acquire(); !ok {
			t.Fatalf("expected pooled record on acquire %d", i)
		}
	}
	if _, ok := p.Acquire(); ok {
		t.Fatal("expected pool exhausted after cap acquires")
	}
}
