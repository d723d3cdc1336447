package ai

import "github.com/akinalpfdn/SpaceCombatPOC-sub001/prefabs"

// Config is the immutable tuning snapshot for one agent. It is captured at
// Initialize and only replaced wholesale by an external reconfiguration.
type Config struct {
	MoveSpeed           float64
	TurnRate            float64
	DetectionRange      float64
	AttackRange         float64
	PatrolRadius        float64
	IdleTime            float64
	FleeHealthThreshold float64
	CanFlee             bool
	FireRateMultiplier  float64
}

func ConfigFromSpec(spec *prefabs.AgentSpec) Config {
	if spec == nil {
		return Config{}
	}
	return Config{
		MoveSpeed:           spec.MoveSpeed,
		TurnRate:            spec.TurnRate,
		DetectionRange:      spec.DetectionRange,
		AttackRange:         spec.AttackRange,
		PatrolRadius:        spec.PatrolRadius,
		IdleTime:            spec.IdleTime,
		FleeHealthThreshold: spec.FleeHealthThreshold,
		CanFlee:             spec.CanFlee,
		FireRateMultiplier:  spec.FireRate,
	}
}
