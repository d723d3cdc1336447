package ai

// State is one behavior variant of the agent's finite-state machine. A state
// object is constructed fresh on every transition and carries no data of its
// own; everything it reads or mutates lives on the Context.
type State interface {
	Name() string
	Enter(ctx *Context)
	// Execute advances the state by one tick and returns the next state to
	// enter, or nil to remain.
	Execute(ctx *Context, dt float64) State
	Exit(ctx *Context)
}

// Hysteresis bands: entering a state and leaving it use different distance
// thresholds so an agent sitting at a boundary does not flap between states.
const (
	// chaseGiveUpFactor widens the detection range while already chasing.
	chaseGiveUpFactor = 1.5
	// attackBreakFactor widens the attack range while already attacking.
	attackBreakFactor = 1.3
	// fleeEscapeFactor is how far past detection range a fleeing agent runs
	// before settling back into patrol.
	fleeEscapeFactor = 2.0
	// optimalAttackFactor places the orbit distance inside the attack range.
	optimalAttackFactor = 0.75
	// patrolReachDistance is how close counts as arriving at a patrol point.
	patrolReachDistance = 1.0
)
