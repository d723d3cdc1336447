package ai

// FleeState runs directly away from the target until it has opened enough
// distance or recovered enough health to resume patrolling.
type FleeState struct{}

func NewFlee() *FleeState { return &FleeState{} }

func (s *FleeState) Name() string { return "flee" }

func (s *FleeState) Enter(ctx *Context) {}

func (s *FleeState) Execute(ctx *Context, dt float64) State {
	if ctx == nil {
		return nil
	}
	tp, ok := ctx.TargetPosition()
	if !ok {
		return NewPatrol()
	}
	dist := ctx.Position().Distance(tp)
	if dist > ctx.Config.DetectionRange*fleeEscapeFactor ||
		ctx.HealthPercent > ctx.Config.FleeHealthThreshold {
		return NewPatrol()
	}
	FleeFrom(ctx, tp, dt)
	return nil
}

func (s *FleeState) Exit(ctx *Context) {}
