package ai

import (
	"math"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
)

// Machine owns one agent's Context and drives the enter/execute/exit
// protocol of its active state. Every public method is a safe no-op until
// Initialize has run, and again after the agent dies, so the surrounding
// tick loop never has to guard its calls.
type Machine struct {
	ctx         *Context
	current     State
	initialized bool
	stateName   string
	rng         *rand.Rand
}

// NewMachine creates an uninitialized machine. rng seeds patrol-point
// sampling and strafe-sign flips; pass a seeded source for deterministic
// behavior, or nil to use a time-seeded one.
func NewMachine(rng *rand.Rand) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Machine{rng: rng}
}

// Initialize builds the Context and installs Patrol as the initial state.
// body must be non-nil; otherwise the machine stays uninitialized.
func (m *Machine) Initialize(body *cp.Body, weapon Weapon, cfg Config, target Target, spawnPos cp.Vector) {
	if m == nil || body == nil {
		return
	}
	m.ctx = &Context{
		Body:          body,
		Weapon:        weapon,
		Config:        cfg,
		Target:        target,
		SpawnPos:      spawnPos,
		LastFiredAt:   math.Inf(-1),
		StrafeSign:    m.randomStrafeSign(),
		HealthPercent: 1,
		IsAlive:       true,
		Rand:          m.rng,
	}
	m.initialized = true
	m.current = nil
	m.transitionTo(NewPatrol())
}

// Tick advances the active state by one simulation step. At most one
// transition happens per call.
func (m *Machine) Tick(dt float64) {
	if m == nil || !m.initialized || m.current == nil || m.ctx == nil || !m.ctx.IsAlive {
		return
	}
	m.ctx.Clock += dt
	if next := m.current.Execute(m.ctx, dt); next != nil {
		m.transitionTo(next)
	}
	m.stateName = m.current.Name()
}

// UpdateHealth pushes the latest vitality data from the owning entity.
func (m *Machine) UpdateHealth(healthPercent float64, isAlive bool) {
	if m == nil || !m.initialized || m.ctx == nil {
		return
	}
	m.ctx.HealthPercent = healthPercent
	m.ctx.IsAlive = isAlive
}

// SetTarget replaces the pursued target reference. nil clears it.
func (m *Machine) SetTarget(target Target) {
	if m == nil || !m.initialized || m.ctx == nil {
		return
	}
	m.ctx.Target = target
}

// Reconfigure swaps the tuning snapshot and firing capability. The config is
// otherwise immutable for the agent's lifetime; this is the external path for
// callers that hand a recycled agent a new loadout. A nil weapon disarms.
func (m *Machine) Reconfigure(cfg Config, weapon Weapon) {
	if m == nil || !m.initialized || m.ctx == nil {
		return
	}
	m.ctx.Config = cfg
	m.ctx.Weapon = weapon
}

// ResetForReuse prepares the machine for an agent re-entering circulation
// from a reuse pool: spawn moves to the current position, vitality resets to
// full, the strafe sign is re-randomized, and Patrol is reinstalled.
func (m *Machine) ResetForReuse() {
	if m == nil || !m.initialized || m.ctx == nil {
		return
	}
	m.ctx.SpawnPos = m.ctx.Position()
	m.ctx.HealthPercent = 1
	m.ctx.IsAlive = true
	m.ctx.StrafeSign = m.randomStrafeSign()
	m.ctx.LastFiredAt = math.Inf(-1)
	m.transitionTo(NewPatrol())
}

// StateName reports the active state's name for diagnostics.
func (m *Machine) StateName() string {
	if m == nil {
		return ""
	}
	return m.stateName
}

func (m *Machine) Initialized() bool {
	return m != nil && m.initialized
}

// transitionTo swaps the active state, running Exit then Enter. Nothing can
// observe the machine between the two calls within the single-threaded tick.
func (m *Machine) transitionTo(next State) {
	if next == nil {
		return
	}
	if m.current != nil {
		m.current.Exit(m.ctx)
	}
	m.current = next
	m.current.Enter(m.ctx)
	m.stateName = m.current.Name()
}

func (m *Machine) randomStrafeSign() float64 {
	if m.rng != nil && m.rng.Float64() < 0.5 {
		return -1
	}
	return 1
}
