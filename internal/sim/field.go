package sim

import "time"

// Config tunes a Field. The zero value uses the defaults from tuning.go.
type Config struct {
	SpawnEvery   time.Duration
	PublishEvery time.Duration
	MaxBubbles   int
}

func (c Config) withDefaults() Config {
	if c.SpawnEvery <= 0 {
		c.SpawnEvery = SpawnInterval
	}
	if c.PublishEvery <= 0 {
		c.PublishEvery = PublishInterval
	}
	if c.MaxBubbles <= 0 {
		c.MaxBubbles = MaxBubbles
	}
	return c
}

// Field owns the active bubble set and drives it one frame at a time. It is
// single-owner state: one goroutine calls Frame, Resize and Close, and the
// spawn cadence rides the same frame driver, so nothing here locks.
type Field struct {
	width  float64
	height float64
	cfg    Config

	bubbles []*Bubble
	pool    *Pool
	nextID  uint64

	rng randSource
	now func() time.Time

	tick        int
	lastSpawn   time.Time
	lastPublish time.Time
	published   []Snapshot
	generation  int
}

// New returns a field for a container of the given pixel dimensions.
func New(width, height float64, cfg Config) *Field {
	return &Field{
		width:  width,
		height: height,
		cfg:    cfg.withDefaults(),
		pool:   NewPool(PoolCap),
		rng:    defaultRand(),
		now:    time.Now,
	}
}

// Resize re-measures the container. Called freely between frames; existing
// bubbles adapt through the wall and cull rules on the next step.
func (f *Field) Resize(width, height float64) {
	f.width = width
	f.height = height
}

// Frame advances the simulation one tick: every bubble steps against the
// pre-frame membership snapshot, the fallen go back to the pool, the spawn
// cadence runs, and a fresh snapshot is published if the throttle allows.
func (f *Field) Frame() {
	now := f.now()
	f.tick++

	all := f.bubbles
	survivors := make([]*Bubble, 0, len(all))
	for _, b := range all {
		if f.step(b, all, now) {
			survivors = append(survivors, b)
		} else {
			f.pool.Release(b)
		}
	}
	f.bubbles = survivors

	if now.Sub(f.lastSpawn) >= f.cfg.SpawnEvery {
		f.lastSpawn = now
		f.Spawn()
	}

	if now.Sub(f.lastPublish) >= f.cfg.PublishEvery {
		f.lastPublish = now
		f.publish()
	}
}

// Spawn adds one bubble just below the bottom edge. It is a no-op while the
// container width is unknown (avoids NaN positions) or the field is full.
func (f *Field) Spawn() *Bubble {
	if f.width <= 0 || len(f.bubbles) >= f.cfg.MaxBubbles {
		return nil
	}
	b, ok := f.pool.Acquire()
	if !ok {
		f.nextID++
		b = &Bubble{ID: f.nextID}
	}
	now := f.now()
	b.X = f.rng.Float64() * f.width
	b.Y = f.height + spawnDepth
	b.VX = (f.rng.Float64()*2 - 1) * driftRange
	b.VY = -(minRise + f.rng.Float64()*(maxRise-minRise))
	b.Size = minSize + f.rng.Float64()*(maxSize-minSize)
	b.Opacity = minOpacity + f.rng.Float64()*(maxOpacity-minOpacity)
	b.Color = palette[f.rng.IntN(len(palette))]
	b.Name = names[f.rng.IntN(len(names))]
	b.Desc = descriptions[f.rng.IntN(len(descriptions))]
	b.Fading = false
	b.lastMoveTime = now
	b.lastX, b.lastY = b.X, b.Y
	f.bubbles = append(f.bubbles, b)
	return b
}

func (f *Field) publish() {
	snap := make([]Snapshot, len(f.bubbles))
	for i, b := range f.bubbles {
		snap[i] = b.snapshot()
	}
	f.published = snap
	f.generation++
}

// Generation counts publishes. Consumers that forward snapshots elsewhere
// use it to tell a fresh publish from a throttled frame.
func (f *Field) Generation() int {
	return f.generation
}

// Snapshots returns the last published view of the field. The slice is
// replaced, never mutated, so callers may hold it across frames.
func (f *Field) Snapshots() []Snapshot {
	return f.published
}

// Count reports the active bubble population.
func (f *Field) Count() int {
	return len(f.bubbles)
}

// Tick reports how many frames have run.
func (f *Field) Tick() int {
	return f.tick
}

// Size reports the current container dimensions.
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Close releases every active bubble back to the pool and clears the
// published snapshot. The frame driver must not be called afterwards.
func (f *Field) Close() {
	for _, b := range f.bubbles {
		f.pool.Release(b)
	}
	f.bubbles = nil
	f.published = nil
}
