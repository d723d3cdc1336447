package ai

// PatrolState walks toward a randomly chosen point near the spawn position,
// then settles into Idle on arrival. It is the machine's initial state and
// the fallback whenever a pursued target vanishes.
type PatrolState struct{}

func NewPatrol() *PatrolState { return &PatrolState{} }

func (s *PatrolState) Name() string { return "patrol" }

func (s *PatrolState) Enter(ctx *Context) {
	if ctx == nil {
		return
	}
	ctx.PatrolPoint = RandomPatrolPoint(ctx)
}

func (s *PatrolState) Execute(ctx *Context, dt float64) State {
	if ctx == nil {
		return nil
	}
	if InRange(ctx, ctx.Config.DetectionRange) {
		return NewChase()
	}
	Seek(ctx, ctx.PatrolPoint, dt)
	if ctx.Position().Distance(ctx.PatrolPoint) <= patrolReachDistance {
		return NewIdle()
	}
	return nil
}

func (s *PatrolState) Exit(ctx *Context) {}
