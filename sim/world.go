package sim

import (
	"io"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/akinalpfdn/SpaceCombatPOC-sub001/ai"
)

const (
	agentMass   = 1.0
	agentRadius = 12.0
)

// World owns the Chipmunk space and the live agent registry. Agents never
// write positions directly; they request velocity and angle changes and the
// space integrates them on Step.
type World struct {
	space  *cp.Space
	agents map[ID]*Agent
	nextID ID
	rng    *rand.Rand
	logger *log.Logger
	clock  float64
}

// NewWorld creates an empty top-down world. seed drives every agent's
// patrol sampling and strafe flips, so a fixed seed replays identically.
// logger may be nil to discard output.
func NewWorld(seed int64, logger *log.Logger) *World {
	space := cp.NewSpace()
	space.Iterations = 10
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		space:  space,
		agents: make(map[ID]*Agent),
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Clock returns accumulated simulation time.
func (w *World) Clock() float64 {
	if w == nil {
		return 0
	}
	return w.clock
}

// Spawn creates a dynamic body for a new agent and initializes its AI
// machine with Patrol active. weapon may be nil for an unarmed agent.
func (w *World) Spawn(cfg ai.Config, pos cp.Vector, weapon ai.Weapon) *Agent {
	if w == nil || w.space == nil {
		return nil
	}
	body := cp.NewBody(agentMass, cp.MomentForCircle(agentMass, 0, agentRadius, cp.Vector{}))
	body.SetPosition(pos)
	w.space.AddBody(body)
	shape := w.space.AddShape(cp.NewCircle(body, agentRadius, cp.Vector{}))

	w.nextID++
	agent := &Agent{
		id:      w.nextID,
		body:    body,
		shape:   shape,
		machine: ai.NewMachine(rand.New(rand.NewSource(w.rng.Int63()))),
		weapon:  weapon,
		health:  1,
		alive:   true,
		active:  true,
	}
	agent.machine.Initialize(body, weapon, cfg, nil, pos)
	agent.lastState = agent.machine.StateName()
	w.agents[agent.id] = agent

	w.logger.Debug("agent spawned", "id", agent.id, "x", pos.X, "y", pos.Y)
	return agent
}

// Despawn removes an agent's body and registry entry. Targets holding its ID
// go stale and resolve to nothing from the next lookup on.
func (w *World) Despawn(id ID) {
	if w == nil {
		return
	}
	agent, ok := w.agents[id]
	if !ok {
		return
	}
	if agent.shape != nil {
		w.space.RemoveShape(agent.shape)
	}
	if agent.body != nil {
		w.space.RemoveBody(agent.body)
	}
	delete(w.agents, id)
	w.logger.Debug("agent despawned", "id", id)
}

// Agent looks up a live registry entry.
func (w *World) Agent(id ID) (*Agent, bool) {
	if w == nil {
		return nil, false
	}
	agent, ok := w.agents[id]
	return agent, ok
}

// Target returns a weak reference to the given agent. The reference resolves
// the registry on every lookup, so it reports gone once the agent despawns,
// deactivates, or dies.
func (w *World) Target(id ID) ai.Target {
	return &registryTarget{world: w, id: id}
}

// Step advances the simulation by one tick: push vitality into every active
// machine, tick it, then integrate the physics space. State-name changes are
// logged as they happen.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.clock += dt

	for _, id := range w.sortedIDs() {
		agent := w.agents[id]
		if agent == nil || !agent.active {
			continue
		}
		agent.machine.UpdateHealth(agent.health, agent.alive)
		agent.machine.Tick(dt)
		if name := agent.machine.StateName(); name != agent.lastState {
			w.logger.Info("state change", "agent", agent.id, "from", agent.lastState, "to", name)
			agent.lastState = name
		}
	}

	w.space.Step(dt)
}

func (w *World) sortedIDs() []ID {
	ids := make([]ID, 0, len(w.agents))
	for id := range w.agents {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type registryTarget struct {
	world *World
	id    ID
}

func (t *registryTarget) Position() (cp.Vector, bool) {
	if t == nil || t.world == nil {
		return cp.Vector{}, false
	}
	agent, ok := t.world.agents[t.id]
	if !ok || !agent.active || !agent.alive || agent.body == nil {
		return cp.Vector{}, false
	}
	return agent.body.Position(), true
}
