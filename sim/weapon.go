package sim

import "github.com/jakecoffman/cp"

// Cannon is a basic firing capability. The projectile pipeline lives behind
// the onFire hook; the cannon itself only tracks aim and shot count.
type Cannon struct {
	interval float64
	aim      cp.Vector
	shots    int
	onFire   func(dir cp.Vector)
}

// NewCannon creates a cannon with the given base seconds-between-shots.
// onFire may be nil.
func NewCannon(interval float64, onFire func(dir cp.Vector)) *Cannon {
	if interval <= 0 {
		interval = 0.5
	}
	return &Cannon{interval: interval, onFire: onFire}
}

func (c *Cannon) FireInterval() float64 { return c.interval }

func (c *Cannon) SetAim(dir cp.Vector) { c.aim = dir }

func (c *Cannon) Aim() cp.Vector { return c.aim }

func (c *Cannon) TryFire() bool {
	c.shots++
	if c.onFire != nil {
		c.onFire(c.aim)
	}
	return true
}

func (c *Cannon) Shots() int { return c.shots }
