package ai

import (
	"math"

	"github.com/akinalpfdn/SpaceCombatPOC-sub001/common"
	"github.com/jakecoffman/cp"
)

const (
	// velocitySmoothing is the exponential smoothing constant for velocity
	// changes; the blend factor per tick is velocitySmoothing*dt, capped at 1.
	velocitySmoothing = 5.0

	// strafeFlipChance is the per-tick probability that an orbiting agent
	// reverses its strafe direction.
	strafeFlipChance = 0.005

	orbitInnerBand = 0.8
	orbitOuterBand = 1.2
)

// Seek steers the body toward point p at the configured move speed and turns
// to face it. Velocity changes are smoothed, never snapped.
func Seek(ctx *Context, p cp.Vector, dt float64) {
	if ctx == nil || ctx.Body == nil {
		return
	}
	dir := direction(ctx.Position(), p)
	applySmoothedVelocity(ctx, dir.Mult(ctx.Config.MoveSpeed), dt)
	TurnToward(ctx, p, dt)
}

// FleeFrom steers the body directly away from point p. Orientation is left
// to the caller.
func FleeFrom(ctx *Context, p cp.Vector, dt float64) {
	if ctx == nil || ctx.Body == nil {
		return
	}
	dir := direction(p, ctx.Position())
	applySmoothedVelocity(ctx, dir.Mult(ctx.Config.MoveSpeed), dt)
}

// Orbit strafes around point p trying to hold the desired distance. The
// strafe direction occasionally flips so the orbit does not look scripted.
// The body always turns to face p regardless of the distance band.
func Orbit(ctx *Context, p cp.Vector, desired float64, dt float64) {
	if ctx == nil || ctx.Body == nil {
		return
	}
	TurnToward(ctx, p, dt)

	pos := ctx.Position()
	toTarget := p.Sub(pos)
	dist := toTarget.Length()
	if dist <= 1e-9 {
		return
	}
	approach := toTarget.Mult(1 / dist)

	if ctx.StrafeSign == 0 {
		ctx.StrafeSign = 1
	}
	if ctx.Rand != nil && ctx.Rand.Float64() < strafeFlipChance {
		ctx.StrafeSign = -ctx.StrafeSign
	}
	strafe := approach.Perp().Mult(ctx.StrafeSign)

	var want cp.Vector
	speed := ctx.Config.MoveSpeed
	switch {
	case dist < orbitInnerBand*desired:
		retreat := approach.Neg()
		want = normalized(retreat.Mult(0.7).Add(strafe.Mult(0.3))).Mult(speed * 0.8)
	case dist > orbitOuterBand*desired:
		want = normalized(approach.Mult(0.7).Add(strafe.Mult(0.3))).Mult(speed * 0.6)
	default:
		want = strafe.Mult(speed * 0.5)
	}
	applySmoothedVelocity(ctx, want, dt)
}

// Halt smoothly bleeds velocity off toward rest.
func Halt(ctx *Context, dt float64) {
	if ctx == nil || ctx.Body == nil {
		return
	}
	applySmoothedVelocity(ctx, cp.Vector{}, dt)
}

// TurnToward rotates the body toward point p, bounded by the configured turn
// rate per second. It never snaps the heading.
func TurnToward(ctx *Context, p cp.Vector, dt float64) {
	if ctx == nil || ctx.Body == nil {
		return
	}
	to := p.Sub(ctx.Position())
	if to.LengthSq() <= 1e-12 {
		return
	}
	targetAngle := math.Atan2(to.Y, to.X)
	current := ctx.Body.Angle()
	diff := common.WrapAngle(targetAngle - current)
	maxStep := ctx.Config.TurnRate * dt
	step := common.Clamp(diff, -maxStep, maxStep)
	ctx.Body.SetAngle(current + step)
}

// InRange reports whether the target is within radius r. Absent targets are
// never in range.
func InRange(ctx *Context, r float64) bool {
	return TargetDistance(ctx) <= r
}

// TargetDistance returns the distance to the target, or MaxFloat64 when the
// target is gone so that range comparisons naturally fail outward.
func TargetDistance(ctx *Context) float64 {
	if ctx == nil || ctx.Body == nil {
		return math.MaxFloat64
	}
	tp, ok := ctx.TargetPosition()
	if !ok {
		return math.MaxFloat64
	}
	return ctx.Position().Distance(tp)
}

// RandomPatrolPoint samples a point uniformly inside the patrol disk around
// the spawn position.
func RandomPatrolPoint(ctx *Context) cp.Vector {
	if ctx == nil {
		return cp.Vector{}
	}
	radius := ctx.Config.PatrolRadius
	if ctx.Rand == nil || radius <= 0 {
		return ctx.SpawnPos
	}
	r := radius * math.Sqrt(ctx.Rand.Float64())
	a := ctx.Rand.Float64() * 2 * math.Pi
	return ctx.SpawnPos.Add(cp.Vector{X: r * math.Cos(a), Y: r * math.Sin(a)})
}

func applySmoothedVelocity(ctx *Context, want cp.Vector, dt float64) {
	t := math.Min(1, velocitySmoothing*dt)
	current := ctx.Body.Velocity()
	ctx.Body.SetVelocityVector(cp.Vector{
		X: common.Lerp(current.X, want.X, t),
		Y: common.Lerp(current.Y, want.Y, t),
	})
}

func direction(from, to cp.Vector) cp.Vector {
	return normalized(to.Sub(from))
}

func normalized(v cp.Vector) cp.Vector {
	length := v.Length()
	if length <= 1e-9 {
		return cp.Vector{}
	}
	return v.Mult(1 / length)
}
