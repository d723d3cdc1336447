package ai

// ChaseState runs the target down until it is close enough to attack, giving
// up once the target slips well past detection range.
type ChaseState struct{}

func NewChase() *ChaseState { return &ChaseState{} }

func (s *ChaseState) Name() string { return "chase" }

func (s *ChaseState) Enter(ctx *Context) {}

func (s *ChaseState) Execute(ctx *Context, dt float64) State {
	if ctx == nil {
		return nil
	}
	tp, ok := ctx.TargetPosition()
	if !ok {
		return NewPatrol()
	}
	if ctx.Config.CanFlee && ctx.HealthPercent <= ctx.Config.FleeHealthThreshold {
		return NewFlee()
	}
	dist := ctx.Position().Distance(tp)
	if dist > ctx.Config.DetectionRange*chaseGiveUpFactor {
		return NewPatrol()
	}
	if dist <= ctx.Config.AttackRange {
		return NewAttack()
	}
	Seek(ctx, tp, dt)
	return nil
}

func (s *ChaseState) Exit(ctx *Context) {}
