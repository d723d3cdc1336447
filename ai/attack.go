package ai

import "github.com/jakecoffman/cp"

// AttackState orbits the target just inside attack range and fires whenever
// the rate-limit window has elapsed.
type AttackState struct{}

func NewAttack() *AttackState { return &AttackState{} }

func (s *AttackState) Name() string { return "attack" }

func (s *AttackState) Enter(ctx *Context) {}

func (s *AttackState) Execute(ctx *Context, dt float64) State {
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
	if dist > ctx.Config.AttackRange*attackBreakFactor {
		return NewChase()
	}

	optimal := ctx.Config.AttackRange * optimalAttackFactor
	Orbit(ctx, tp, optimal, dt)
	s.tryFire(ctx, tp)
	return nil
}

func (s *AttackState) Exit(ctx *Context) {}

// tryFire aims and pulls the trigger if the cooldown window has elapsed.
// The fire timestamp advances only when the weapon actually fired.
func (s *AttackState) tryFire(ctx *Context, targetPos cp.Vector) {
	if ctx.Weapon == nil {
		return
	}
	interval := ctx.Weapon.FireInterval() * ctx.Config.FireRateMultiplier
	if ctx.Clock-ctx.LastFiredAt < interval {
		return
	}
	ctx.Weapon.SetAim(direction(ctx.Position(), targetPos))
	if ctx.Weapon.TryFire() {
		ctx.LastFiredAt = ctx.Clock
	}
}
