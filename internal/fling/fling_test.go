// SPDX-License-Identifier: Unlicense OR MIT

package fling

import (
	"testing"
	"time"

	"gioui.org/retained/geom"
)

func approx(a, b geom.Vec2) bool {
	return a.Sub(b).Len() < 1e-2
}

func TestWindow(t *testing.T) {
	if got, want := Window(50), 70*time.Millisecond; got != want {
		t.Errorf("Window(50) = %v, want %v", got, want)
	}
	if Window(0) != Window(60) {
		t.Error("zero refresh rate not defaulted")
	}
}

func TestVelocity(t *testing.T) {
	var v Velocity
	t0 := time.Unix(0, 0)
	ms := func(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }
	// 10px every 10ms is 1000px/s.
	for i := 1; i <= 5; i++ {
		v.Add(ms(10*i), geom.Vec2{X: 10})
	}
	v.Add(ms(55), geom.Vec2{})
	got := v.Estimate(ms(50), 40*time.Millisecond)
	// The sample at 10 is not after the window start.
	if want := (geom.Vec2{X: 1000}); !approx(got, want) {
		t.Errorf("Estimate = %v, want %v", got, want)
	}
	if last, _ := v.Last(); !last.Equal(ms(50)) {
		t.Errorf("zero delta recorded at %v", last)
	}
}

func TestVelocityFullRing(t *testing.T) {
	var v Velocity
	t0 := time.Unix(0, 0)
	for i := 1; i <= 12; i++ {
		v.Add(t0.Add(time.Duration(i)*time.Millisecond), geom.Vec2{Y: 1})
	}
	// The ring holds samples 5 to 12. Sample 5 bounds a 7ms span
	// holding 7 moves of 1px.
	got := v.Estimate(t0.Add(12*time.Millisecond), time.Second)
	if want := (geom.Vec2{Y: 1000}); !approx(got, want) {
		t.Errorf("Estimate = %v, want %v", got, want)
	}
	v.Reset()
	if got := v.Estimate(t0, time.Second); got != (geom.Vec2{}) {
		t.Errorf("Estimate after Reset = %v", got)
	}
}

func TestKinetic(t *testing.T) {
	var k Kinetic
	t0 := time.Unix(0, 0)
	if k.Start(t0, geom.Vec2{X: 0.5}) {
		t.Fatal("slow fling started")
	}
	if !k.Start(t0, geom.Vec2{X: 1000}) {
		t.Fatal("fling not started")
	}
	d := Decay{Mul: 0.625, Sub: 200}
	total := 0
	now := t0
	for i := 0; i < 1000; i++ {
		now = now.Add(16 * time.Millisecond)
		off, ok := k.Step(now, d)
		if off.X < 0 || off.Y != 0 {
			t.Fatalf("step %d moved %v", i, off)
		}
		total += off.X
		if !ok {
			break
		}
	}
	if k.Active() {
		t.Fatal("fling never stopped")
	}
	if total <= 0 || total >= 2000 {
		t.Errorf("fling moved %d px", total)
	}
}
