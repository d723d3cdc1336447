package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/akinalpfdn/SpaceCombatPOC-sub001/ai"
)

// ID identifies an agent inside a World's registry. A stale ID resolves to
// nothing, which is what makes registry-backed targets safe to hold.
type ID int

// Agent ties one hostile entity's physics body, vitality, and AI machine
// together. Health and alive are owned here and pushed into the machine on
// every step; the machine never mutates them.
type Agent struct {
	id      ID
	body    *cp.Body
	shape   *cp.Shape
	machine *ai.Machine
	weapon  ai.Weapon

	health    float64
	alive     bool
	active    bool
	lastState string
}

func (a *Agent) ID() ID { return a.id }

func (a *Agent) Body() *cp.Body { return a.body }

func (a *Agent) Machine() *ai.Machine { return a.machine }

func (a *Agent) Alive() bool { return a != nil && a.alive }

func (a *Agent) Health() float64 {
	if a == nil {
		return 0
	}
	return a.health
}

// ApplyDamage reduces the agent's health fraction, flipping alive off at
// zero. The AI machine sees the change on the next world step.
func (a *Agent) ApplyDamage(frac float64) {
	if a == nil || !a.alive {
		return
	}
	a.health -= frac
	if a.health <= 0 {
		a.health = 0
		a.alive = false
	}
}

// SetTarget points the agent's AI at another registry entry. A zero id
// clears the target.
func (a *Agent) SetTarget(w *World, id ID) {
	if a == nil || a.machine == nil {
		return
	}
	if w == nil || id == 0 {
		a.machine.SetTarget(nil)
		return
	}
	a.machine.SetTarget(w.Target(id))
}
