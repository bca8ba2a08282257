package sim

import "time"

const (
	MaxBubbles      = 60                     // hard ceiling on the active set
	SpawnInterval   = 800 * time.Millisecond // one spawn attempt per period
	PublishInterval = 16 * time.Millisecond  // snapshot throttle
	PoolCap         = 100                    // retired records kept for reuse

	spawnDepth = 50.0 // spawn this far below the bottom edge
	minSize    = 40.0
	maxSize    = 100.0
	minRise    = 0.4 // upward speed range at spawn
	maxRise    = 1.2
	driftRange = 0.4 // |vx| at spawn
	minOpacity = 0.6
	maxOpacity = 1.0

	wallDamping = 0.8  // horizontal bounce keeps this fraction
	ceilingSink = -0.1 // vy when the ceiling starts the fade

	fadeOpacityKeep = 0.95 // per-frame while fading
	fadeSizeKeep    = 0.98
	fadeMinOpacity  = 0.05
	fadeMinSize     = 10.0

	cullSize  = 30.0   // actives below this have shrunk away
	cullAbove = -100.0 // actives past this are out of frame

	collisionEpsilon = 2.0 // extra separation after push-apart
	collisionDamping = 0.98

	jitterChance = 0.1
	jitterMag    = 0.05
	riseFloor    = -0.2 // guaranteed net upward drift when stalled
	stallSpeed   = 0.1

	stuckAfter   = 3 * time.Second
	stuckRadius  = 10.0 // displacement below this counts as stuck
	boostRise    = -0.8
	boostJitter  = 0.25
	velocityKeep = 0.9 // smoothing: this much previous, rest new
)
