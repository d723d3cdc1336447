package ai

// IdleState waits in place for the configured idle duration, watching for a
// target to wander into detection range.
type IdleState struct{}

func NewIdle() *IdleState { return &IdleState{} }

func (s *IdleState) Name() string { return "idle" }

func (s *IdleState) Enter(ctx *Context) {
	if ctx == nil {
		return
	}
	ctx.StateTimer = ctx.Config.IdleTime
}

func (s *IdleState) Execute(ctx *Context, dt float64) State {
	if ctx == nil {
		return nil
	}
	if InRange(ctx, ctx.Config.DetectionRange) {
		return NewChase()
	}
	Halt(ctx, dt)
	ctx.StateTimer -= dt
	if ctx.StateTimer <= 0 {
		return NewPatrol()
	}
	return nil
}

func (s *IdleState) Exit(ctx *Context) {}
