package ai

import (
	"math/rand"

	"github.com/jakecoffman/cp"
)

// Context is the mutable per-agent record shared by the Machine and its
// active state. It is owned by exactly one Machine and only touched by the
// state executing during that machine's Tick, so it carries no locks. The
// body, weapon, and target are references into the surrounding simulation,
// never owned here.
type Context struct {
	Body   *cp.Body
	Weapon Weapon
	Config Config
	Target Target

	SpawnPos    cp.Vector
	PatrolPoint cp.Vector

	// Clock accumulates elapsed simulation time across ticks. The fire-rate
	// window and the idle timer are measured against it, not wall time.
	Clock       float64
	StateTimer  float64
	LastFiredAt float64

	// StrafeSign is +1 or -1 and picks the orbit direction around a target.
	StrafeSign float64

	HealthPercent float64
	IsAlive       bool

	Rand *rand.Rand
}

func (c *Context) Position() cp.Vector {
	if c == nil || c.Body == nil {
		return cp.Vector{}
	}
	return c.Body.Position()
}

// TargetPosition resolves the weak target reference. ok is false when no
// target is set or the target has despawned.
func (c *Context) TargetPosition() (cp.Vector, bool) {
	if c == nil || c.Target == nil {
		return cp.Vector{}, false
	}
	return c.Target.Position()
}
