package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/akinalpfdn/SpaceCombatPOC-sub001/ai"
	"github.com/akinalpfdn/SpaceCombatPOC-sub001/prefabs"
	"github.com/akinalpfdn/SpaceCombatPOC-sub001/sim"
)

func main() {
	var (
		agentName = flag.String("agent", "fighter", "agent prefab to spawn")
		ticks     = flag.Int("ticks", 600, "simulation ticks to run")
		dt        = flag.Float64("dt", 1.0/60.0, "seconds per tick")
		seed      = flag.Int64("seed", 1, "world random seed")
		watch     = flag.Bool("watch", false, "watch prefabs/agents for spec edits")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})

	spec, err := prefabs.LoadAgentSpec(*agentName)
	if err != nil {
		logger.Fatal("load agent spec", "agent", *agentName, "error", err)
	}
	cfg := ai.ConfigFromSpec(spec)

	if *watch {
		watcher, err := prefabs.NewWatcher("prefabs/agents")
		if err != nil {
			logger.Warn("prefab watch unavailable", "error", err)
		} else {
			defer watcher.Close()
			go func() {
				for path := range watcher.Events {
					if reloaded, err := prefabs.LoadAgentSpec(*agentName); err == nil {
						mod, _ := prefabs.ModTime("agents/" + *agentName + ".yaml")
						logger.Info("agent spec reloaded",
							"path", path,
							"move_speed", reloaded.MoveSpeed,
							"modified", mod,
						)
					}
				}
			}()
		}
	}

	world := sim.NewWorld(*seed, logger)
	pool := sim.NewPool(world)

	// Unarmed wanderer for the hostiles to hunt.
	prey := world.Spawn(cfg, cp.Vector{X: 400, Y: 0}, nil)

	hostiles := make([]*sim.Agent, 0, 3)
	for i := 0; i < 3; i++ {
		cannon := sim.NewCannon(0.4, func(dir cp.Vector) {
			logger.Debug("shot fired", "dir_x", dir.X, "dir_y", dir.Y)
		})
		agent := pool.Acquire(cfg, cp.Vector{X: float64(i) * 60, Y: float64(i) * -40}, cannon)
		agent.SetTarget(world, prey.ID())
		hostiles = append(hostiles, agent)
	}

	for i := 0; i < *ticks; i++ {
		switch i {
		case *ticks / 3:
			// Push one hostile under its flee threshold.
			hostiles[0].ApplyDamage(0.9)
		case *ticks / 2:
			// Target vanishes mid-pursuit; everyone falls back to patrol.
			world.Despawn(prey.ID())
		case 2 * *ticks / 3:
			pool.Release(hostiles[1])
			hostiles[1] = pool.Acquire(cfg, cp.Vector{X: -200, Y: 150}, nil)
		}
		world.Step(*dt)
	}

	for _, agent := range hostiles {
		logger.Info("final state",
			"agent", agent.ID(),
			"state", agent.Machine().StateName(),
			"health", agent.Health(),
		)
	}
}
