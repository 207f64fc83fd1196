// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"math"
	"time"

	"gioui.org/retained/geom"
)

// Decay parameters of kinetic scrolling.
type Decay struct {
	// Mul is the fraction of velocity kept after one second.
	Mul float32
	// Sub is the velocity lost per second, in pixels per second.
	Sub float32
}

// Kinetic animates scrolling that continues after a press ends.
type Kinetic struct {
	vel  geom.Vec2
	rest geom.Vec2
	last time.Time
}

// Start adds vel to the scrolling velocity. It reports whether the
// animation is running, and so needs a frame timer.
func (k *Kinetic) Start(now time.Time, vel geom.Vec2) bool {
	k.vel = k.vel.Add(vel)
	k.last = now
	if linf(k.vel) < 1 {
		k.Stop()
		return false
	}
	return true
}

// Active reports whether scrolling is in motion.
func (k *Kinetic) Active() bool {
	return k.vel != geom.Vec2{}
}

// Stop halts scrolling.
func (k *Kinetic) Stop() {
	k.vel, k.rest = geom.Vec2{}, geom.Vec2{}
}

// Step advances the animation to now, returning the whole pixels to
// scroll by. It reports false once the motion has stopped.
func (k *Kinetic) Step(now time.Time, d Decay) (geom.Offset, bool) {
	dt := float32(now.Sub(k.last).Seconds())
	k.last = now
	if dt < 0 {
		dt = 0
	}
	v := k.vel.Mul(float32(math.Pow(float64(d.Mul), float64(dt))))
	sub := d.Sub * dt
	k.vel = geom.Vec2{X: reduce(v.X, sub), Y: reduce(v.Y, sub)}
	if linf(k.vel) < 1 {
		k.Stop()
		return geom.Offset{}, false
	}
	p := k.vel.Mul(dt).Add(k.rest)
	off := geom.Offset{X: int(p.X), Y: int(p.Y)}
	k.rest = p.Sub(geom.Vec2{X: float32(off.X), Y: float32(off.Y)})
	return off, true
}

// reduce moves v towards zero by at most sub.
func reduce(v, sub float32) float32 {
	switch {
	case v > sub:
		return v - sub
	case v < -sub:
		return v + sub
	}
	return 0
}

func linf(v geom.Vec2) float32 {
	return max(float32(math.Abs(float64(v.X))), float32(math.Abs(float64(v.Y))))
}
