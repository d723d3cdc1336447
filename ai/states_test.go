package ai

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestStateTransitionTable(t *testing.T) {
	cases := []struct {
		name  string
		state State
		setup func(ctx *Context)
		want  string // "" = remain
	}{
		{
			name:  "idle_detects_target",
			state: NewIdle(),
			setup: func(ctx *Context) {
				ctx.StateTimer = 5
				ctx.Target = &stubTarget{pos: cp.Vector{X: 5}}
			},
			want: "chase",
		},
		{
			name:  "idle_timer_expires",
			state: NewIdle(),
			setup: func(ctx *Context) { ctx.StateTimer = 0.05 },
			want:  "patrol",
		},
		{
			name:  "idle_remains",
			state: NewIdle(),
			setup: func(ctx *Context) { ctx.StateTimer = 5 },
			want:  "",
		},
		{
			name:  "patrol_detects_target",
			state: NewPatrol(),
			setup: func(ctx *Context) {
				ctx.PatrolPoint = cp.Vector{X: 50}
				ctx.Target = &stubTarget{pos: cp.Vector{X: 10}}
			},
			want: "chase",
		},
		{
			name:  "patrol_reaches_point",
			state: NewPatrol(),
			setup: func(ctx *Context) { ctx.PatrolPoint = cp.Vector{X: 0.5} },
			want:  "idle",
		},
		{
			name:  "patrol_remains",
			state: NewPatrol(),
			setup: func(ctx *Context) { ctx.PatrolPoint = cp.Vector{X: 50} },
			want:  "",
		},
		{
			name:  "chase_lost_target",
			state: NewChase(),
			setup: func(ctx *Context) { ctx.Target = &stubTarget{gone: true} },
			want:  "patrol",
		},
		{
			name:  "chase_gives_up_beyond_band",
			state: NewChase(),
			setup: func(ctx *Context) { ctx.Target = &stubTarget{pos: cp.Vector{X: 19}} }, // > 12*1.5
			want:  "patrol",
		},
		{
			name:  "chase_closes_to_attack",
			state: NewChase(),
			setup: func(ctx *Context) { ctx.Target = &stubTarget{pos: cp.Vector{X: 8}} },
			want:  "attack",
		},
		{
			name:  "chase_flees_at_low_health",
			state: NewChase(),
			setup: func(ctx *Context) {
				ctx.Target = &stubTarget{pos: cp.Vector{X: 10}}
				ctx.HealthPercent = 0.1
			},
			want: "flee",
		},
		{
			name:  "chase_cannot_flee_when_disabled",
			state: NewChase(),
			setup: func(ctx *Context) {
				ctx.Config.CanFlee = false
				ctx.Target = &stubTarget{pos: cp.Vector{X: 10}}
				ctx.HealthPercent = 0.1
			},
			want: "",
		},
		{
			name:  "attack_lost_target",
			state: NewAttack(),
			setup: func(ctx *Context) { ctx.Target = &stubTarget{gone: true} },
			want:  "patrol",
		},
		{
			name:  "attack_breaks_beyond_band",
			state: NewAttack(),
			setup: func(ctx *Context) { ctx.Target = &stubTarget{pos: cp.Vector{X: 10.5}} }, // > 8*1.3
			want:  "chase",
		},
		{
			name:  "attack_holds_inside_band",
			state: NewAttack(),
			setup: func(ctx *Context) { ctx.Target = &stubTarget{pos: cp.Vector{X: 10}} }, // <= 10.4
			want:  "",
		},
		{
			name:  "attack_flees_at_low_health",
			state: NewAttack(),
			setup: func(ctx *Context) {
				ctx.Target = &stubTarget{pos: cp.Vector{X: 6}}
				ctx.HealthPercent = 0.2
			},
			want: "flee",
		},
		{
			name:  "attack_cannot_flee_when_disabled",
			state: NewAttack(),
			setup: func(ctx *Context) {
				ctx.Config.CanFlee = false
				ctx.Target = &stubTarget{pos: cp.Vector{X: 6}}
				ctx.HealthPercent = 0.1
			},
			want: "",
		},
		{
			name:  "flee_lost_target",
			state: NewFlee(),
			setup: func(ctx *Context) { ctx.Target = &stubTarget{gone: true} },
			want:  "patrol",
		},
		{
			name:  "flee_escapes_far_enough",
			state: NewFlee(),
			setup: func(ctx *Context) {
				ctx.Target = &stubTarget{pos: cp.Vector{X: 25}} // > 12*2
				ctx.HealthPercent = 0.1
			},
			want: "patrol",
		},
		{
			name:  "flee_recovers_health",
			state: NewFlee(),
			setup: func(ctx *Context) {
				ctx.Target = &stubTarget{pos: cp.Vector{X: 10}}
				ctx.HealthPercent = 0.9
			},
			want: "patrol",
		},
		{
			name:  "flee_keeps_running",
			state: NewFlee(),
			setup: func(ctx *Context) {
				ctx.Target = &stubTarget{pos: cp.Vector{X: 10}}
				ctx.HealthPercent = 0.1
			},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newTestContext(testConfig(), cp.Vector{})
			tc.setup(ctx)
			next := tc.state.Execute(ctx, 0.1)
			if tc.want == "" {
				if next != nil {
					t.Fatalf("expected to remain in %s, got %s", tc.state.Name(), next.Name())
				}
				return
			}
			if next == nil {
				t.Fatalf("expected transition to %s, got remain", tc.want)
			}
			if next.Name() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, next.Name())
			}
			if next.Name() == tc.state.Name() {
				t.Fatalf("state %s returned itself", tc.state.Name())
			}
		})
	}
}

func TestIdleEnterSeedsTimer(t *testing.T) {
	ctx := newTestContext(testConfig(), cp.Vector{})
	ctx.StateTimer = -3
	NewIdle().Enter(ctx)
	if ctx.StateTimer != ctx.Config.IdleTime {
		t.Fatalf("expected timer %v, got %v", ctx.Config.IdleTime, ctx.StateTimer)
	}
}

func TestPatrolEnterPicksPointInsideRadius(t *testing.T) {
	cfg := testConfig()
	spawn := cp.Vector{X: 100, Y: -40}
	ctx := newTestContext(cfg, spawn)
	ctx.SpawnPos = spawn
	for i := 0; i < 50; i++ {
		NewPatrol().Enter(ctx)
		if d := ctx.PatrolPoint.Distance(spawn); d > cfg.PatrolRadius+1e-9 {
			t.Fatalf("patrol point %v outside radius %v (distance %v)", ctx.PatrolPoint, cfg.PatrolRadius, d)
		}
	}
}

func TestAttackFireProtocol(t *testing.T) {
	t.Run("fires_after_window_and_records_timestamp", func(t *testing.T) {
		ctx := newTestContext(testConfig(), cp.Vector{})
		weapon := &stubWeapon{interval: 0.5}
		ctx.Weapon = weapon
		ctx.Target = &stubTarget{pos: cp.Vector{X: 6}}
		ctx.Clock = 10

		attack := NewAttack()
		if next := attack.Execute(ctx, 0.1); next != nil {
			t.Fatalf("expected to remain attacking, got %s", next.Name())
		}
		if weapon.fired != 1 {
			t.Fatalf("expected one shot, got %d", weapon.fired)
		}
		if ctx.LastFiredAt != 10 {
			t.Fatalf("expected fire timestamp 10, got %v", ctx.LastFiredAt)
		}
		if weapon.aimed == 0 || math.Abs(weapon.aim.Length()-1) > 1e-9 {
			t.Fatalf("expected normalized aim before firing, got %v", weapon.aim)
		}
		if weapon.aim.X <= 0 {
			t.Fatalf("aim should point toward the target, got %v", weapon.aim)
		}
	})

	t.Run("respects_rate_window", func(t *testing.T) {
		ctx := newTestContext(testConfig(), cp.Vector{})
		weapon := &stubWeapon{interval: 0.5}
		ctx.Weapon = weapon
		ctx.Target = &stubTarget{pos: cp.Vector{X: 6}}
		ctx.Clock = 10

		attack := NewAttack()
		attack.Execute(ctx, 0.1)
		ctx.Clock = 10.3 // inside 0.5s window
		attack.Execute(ctx, 0.1)
		if weapon.fired != 1 {
			t.Fatalf("expected rate limit to hold, got %d shots", weapon.fired)
		}
		ctx.Clock = 10.6
		attack.Execute(ctx, 0.1)
		if weapon.fired != 2 {
			t.Fatalf("expected second shot after window, got %d", weapon.fired)
		}
	})

	t.Run("failed_fire_keeps_timestamp", func(t *testing.T) {
		ctx := newTestContext(testConfig(), cp.Vector{})
		weapon := &stubWeapon{interval: 0.5, refuse: true}
		ctx.Weapon = weapon
		ctx.Target = &stubTarget{pos: cp.Vector{X: 6}}
		ctx.Clock = 10

		NewAttack().Execute(ctx, 0.1)
		if !math.IsInf(ctx.LastFiredAt, -1) {
			t.Fatalf("timestamp must not advance on a refused shot, got %v", ctx.LastFiredAt)
		}
		if weapon.aimed != 1 {
			t.Fatalf("aim should still be set before the attempt")
		}
	})

	t.Run("rate_multiplier_scales_window", func(t *testing.T) {
		cfg := testConfig()
		cfg.FireRateMultiplier = 2
		ctx := newTestContext(cfg, cp.Vector{})
		weapon := &stubWeapon{interval: 0.5}
		ctx.Weapon = weapon
		ctx.Target = &stubTarget{pos: cp.Vector{X: 6}}
		ctx.Clock = 10

		attack := NewAttack()
		attack.Execute(ctx, 0.1)
		ctx.Clock = 10.6 // past base interval but inside 1.0s scaled window
		attack.Execute(ctx, 0.1)
		if weapon.fired != 1 {
			t.Fatalf("expected scaled window to hold, got %d shots", weapon.fired)
		}
		ctx.Clock = 11.1
		attack.Execute(ctx, 0.1)
		if weapon.fired != 2 {
			t.Fatalf("expected shot after scaled window, got %d", weapon.fired)
		}
	})

	t.Run("missing_weapon_is_skipped", func(t *testing.T) {
		ctx := newTestContext(testConfig(), cp.Vector{})
		ctx.Target = &stubTarget{pos: cp.Vector{X: 6}}
		if next := NewAttack().Execute(ctx, 0.1); next != nil {
			t.Fatalf("unarmed attack should still orbit, got transition to %s", next.Name())
		}
	})
}
