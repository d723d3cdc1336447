package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// AgentSpec is the tuning snapshot for one hostile agent archetype.
type AgentSpec struct {
	Name                string  `yaml:"name"`
	MoveSpeed           float64 `yaml:"move_speed"`
	TurnRate            float64 `yaml:"turn_rate"`
	DetectionRange      float64 `yaml:"detection_range"`
	AttackRange         float64 `yaml:"attack_range"`
	PatrolRadius        float64 `yaml:"patrol_radius"`
	IdleTime            float64 `yaml:"idle_time"`
	FleeHealthThreshold float64 `yaml:"flee_health_threshold"`
	CanFlee             bool    `yaml:"can_flee"`
	FireRate            float64 `yaml:"fire_rate"`
}

func LoadAgentSpec(name string) (*AgentSpec, error) {
	filename := fmt.Sprintf("agents/%s.yaml", name)
	spec, err := LoadSpec[AgentSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

// applyDefaults guards against zeroed tuning values so the AI core never has
// to validate its own configuration.
func (s *AgentSpec) applyDefaults() {
	if s.MoveSpeed <= 0 {
		s.MoveSpeed = 100
	}
	if s.TurnRate <= 0 {
		s.TurnRate = 4
	}
	if s.DetectionRange <= 0 {
		s.DetectionRange = 300
	}
	if s.AttackRange <= 0 {
		s.AttackRange = 120
	}
	if s.PatrolRadius <= 0 {
		s.PatrolRadius = 150
	}
	if s.IdleTime <= 0 {
		s.IdleTime = 2
	}
	if s.FireRate <= 0.05 {
		s.FireRate = 0.05
	}
}
