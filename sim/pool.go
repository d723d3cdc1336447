package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/akinalpfdn/SpaceCombatPOC-sub001/ai"
)

// Pool recycles agents instead of rebuilding bodies and machines on every
// spawn. Released agents stay registered but inactive; Acquire revives one
// at a new position through the machine's reuse reset.
type Pool struct {
	world *World
	free  []*Agent
}

func NewPool(world *World) *Pool {
	return &Pool{world: world}
}

// Release parks an agent for reuse. It stops ticking and stops resolving as
// a target immediately.
func (p *Pool) Release(agent *Agent) {
	if p == nil || agent == nil || !agent.active {
		return
	}
	agent.active = false
	agent.alive = false
	if agent.body != nil {
		agent.body.SetVelocity(0, 0)
	}
	p.free = append(p.free, agent)
	if p.world != nil {
		p.world.logger.Debug("agent released to pool", "id", agent.id)
	}
}

// Acquire returns an agent ready at pos with the requested loadout: a
// recycled one when available, otherwise a fresh spawn. The position must be
// set before the reuse reset so the machine captures it as the new spawn
// point, and the config/weapon are reapplied so a recycled agent never keeps
// its previous tuning or cannon.
func (p *Pool) Acquire(cfg ai.Config, pos cp.Vector, weapon ai.Weapon) *Agent {
	if p == nil || p.world == nil {
		return nil
	}
	if n := len(p.free); n > 0 {
		agent := p.free[n-1]
		p.free = p.free[:n-1]
		if agent.body != nil {
			agent.body.SetPosition(pos)
			agent.body.SetVelocity(0, 0)
		}
		agent.health = 1
		agent.alive = true
		agent.active = true
		agent.weapon = weapon
		agent.machine.SetTarget(nil)
		agent.machine.Reconfigure(cfg, weapon)
		agent.machine.ResetForReuse()
		agent.lastState = agent.machine.StateName()
		p.world.logger.Debug("agent reused from pool", "id", agent.id, "x", pos.X, "y", pos.Y)
		return agent
	}
	return p.world.Spawn(cfg, pos, weapon)
}

// FreeCount reports how many parked agents the pool holds.
func (p *Pool) FreeCount() int {
	if p == nil {
		return 0
	}
	return len(p.free)
}
