// SPDX-License-Identifier: Unlicense OR MIT

// Package fling estimates the velocity of press movements and
// animates kinetic scrolling from it.
package fling

import (
	"time"

	"gioui.org/retained/geom"
)

// numSamples is the capacity of the sample ring.
const numSamples = 8

// WindowPerHz is the averaging window of velocity estimates times the
// display refresh rate. At 60 Hz the window is 3.5 frames long.
const WindowPerHz = 3500 * time.Millisecond

// Window returns the averaging window for a display refreshing at hz.
func Window(hz float32) time.Duration {
	if hz <= 0 {
		hz = 60
	}
	return time.Duration(float32(WindowPerHz) / hz)
}

type sample struct {
	t     time.Time
	delta geom.Vec2
}

// Velocity estimates the velocity of a press from its recent
// movements.
type Velocity struct {
	samples [numSamples]sample
	// next is the index of the next sample to write.
	next  int
	count int
}

// Reset clears all samples.
func (v *Velocity) Reset() {
	*v = Velocity{}
}

// Add records a movement by delta at time t. Zero movements are
// ignored.
func (v *Velocity) Add(t time.Time, delta geom.Vec2) {
	if delta == (geom.Vec2{}) {
		return
	}
	v.samples[v.next] = sample{t: t, delta: delta}
	v.next = (v.next + 1) % numSamples
	v.count = min(v.count+1, numSamples)
}

// Last returns the time of the latest movement.
func (v *Velocity) Last() (time.Time, bool) {
	if v.count == 0 {
		return time.Time{}, false
	}
	return v.samples[(v.next+numSamples-1)%numSamples].t, true
}

// Estimate returns the velocity in pixels per second, averaging the
// movements within window before now. When the ring holds less
// history than the window, the window shrinks to the history held.
func (v *Velocity) Estimate(now time.Time, window time.Duration) geom.Vec2 {
	if window <= 0 || v.count == 0 {
		return geom.Vec2{}
	}
	start := now.Add(-window)
	span := window
	var sum geom.Vec2
	for k := 1; k <= v.count; k++ {
		s := v.samples[(v.next+numSamples-k)%numSamples]
		if !s.t.After(start) {
			break
		}
		if k == numSamples {
			// The oldest sample's movement began at an unknown time;
			// it only bounds the window.
			span = now.Sub(s.t)
			break
		}
		sum = sum.Add(s.delta)
	}
	if span <= 0 {
		return geom.Vec2{}
	}
	return sum.Mul(float32(time.Second) / float32(span))
}
