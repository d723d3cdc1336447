package ai

import "github.com/jakecoffman/cp"

// Target is a weak back-reference to the entity an agent is pursuing. The
// referenced entity may despawn at any tick, so every lookup re-checks
// validity; implementations must never keep the entity alive themselves.
type Target interface {
	// Position reports the target's current position. ok is false when the
	// target has despawned or is otherwise gone.
	Position() (cp.Vector, bool)
}

// Weapon is the agent's firing capability. The projectile and damage
// pipeline behind it lives outside this package; the Attack state only aims
// and pulls the trigger.
type Weapon interface {
	// FireInterval is the weapon's base seconds-between-shots.
	FireInterval() float64
	// SetAim points the weapon along a normalized direction.
	SetAim(dir cp.Vector)
	// TryFire requests a shot. It reports whether a shot was actually fired.
	TryFire() bool
}
