// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"testing"
	"time"

	"gioui.org/retained/geom"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
)

// grabOnPress makes n grab presses with mode and collects its press
// events.
func grabOnPress(n *node, mode pointer.GrabMode, events *[]event.Event) {
	n.onEvent = func(cx *Cx, ev event.Event) event.IsUsed {
		switch e := ev.(type) {
		case pointer.PressStart:
			cx.RequestGrab(n.Id(), e, mode)
		case pointer.PressMove, pointer.PressEnd, pointer.Pan:
		default:
			return event.Unused
		}
		if events != nil {
			*events = append(*events, ev)
		}
		return event.Used
	}
}

func TestHover(t *testing.T) {
	tr := newTree()
	tr.s.CursorMoved(tr.root, pt(20, 20))
	if !tr.s.IsHovered(tr.a0.Id()) {
		t.Fatal("a0 not hovered")
	}
	if st, ok := tr.s.HoverStart(tr.a0.Id()); !ok || !st.Equal(tr.clock.now()) {
		t.Errorf("HoverStart = %v, %v", st, ok)
	}
	tr.clock.advance(time.Second)
	tr.s.CursorMoved(tr.root, pt(25, 20))
	if st, _ := tr.s.HoverStart(tr.a0.Id()); st.Equal(tr.clock.now()) {
		t.Error("hover restarted without leaving the widget")
	}
	tr.s.CursorMoved(tr.root, pt(150, 50))
	if tr.s.IsHovered(tr.a0.Id()) || !tr.s.IsHovered(tr.b.Id()) {
		t.Error("hover did not move to b")
	}
	expectLog(t, tr, "a0 CursorMove", "a0 CursorMove", "b CursorMove")
	tr.s.CursorLeft(tr.root)
	if id, ok := tr.s.Hover(); ok {
		t.Errorf("%v hovered after the cursor left", id)
	}
}

func TestGrabMove(t *testing.T) {
	tr := newTree()
	var events []event.Event
	grabOnPress(tr.a0, pointer.GrabMove, &events)
	tr.s.CursorMoved(tr.root, pt(20, 20))
	tr.s.MouseButton(tr.root, pointer.ButtonPrimary, true)
	if !tr.s.IsGrabbed(tr.a0.Id()) {
		t.Fatal("grab not taken")
	}
	tr.do(func(cx *Cx) {
		press := pointer.PressStart{Source: pointer.MouseSource(pointer.ButtonPrimary, 2)}
		if cx.RequestGrab(tr.b.Id(), press, pointer.GrabMove) {
			t.Error("second grab of the same button succeeded")
		}
	})
	tr.s.CursorMoved(tr.root, pt(150, 50))
	tr.s.MouseButton(tr.root, pointer.ButtonPrimary, false)
	tr.s.CursorMoved(tr.root, pt(160, 50))
	expectLog(t, tr, "a0 CursorMove", "a0 PressStart", "a0 PressMove", "a0 PressEnd", "b CursorMove")

	if len(events) != 3 {
		t.Fatalf("got %d press events, want 3", len(events))
	}
	move := events[1].(pointer.PressMove)
	want := pointer.PressMove{
		Source:  pointer.MouseSource(pointer.ButtonPrimary, 1),
		Id:      tr.b.Id(),
		Coord:   pt(150, 50),
		Delta:   geom.Offset{X: 130, Y: 30},
		Grabbed: true,
	}
	if move != want {
		t.Errorf("PressMove = %+v, want %+v", move, want)
	}
	end := events[2].(pointer.PressEnd)
	if !end.Success || end.Id != tr.b.Id() {
		t.Errorf("PressEnd = %+v", end)
	}
	if tr.s.IsGrabbed(tr.a0.Id()) {
		t.Error("grab held after release")
	}
}

func TestGrabClickDepress(t *testing.T) {
	tr := newTree()
	grabOnPress(tr.a0, pointer.GrabClick, nil)
	tr.s.CursorMoved(tr.root, pt(20, 20))
	tr.s.MouseButton(tr.root, pointer.ButtonPrimary, true)
	steps := []struct {
		c    geom.Coord
		want bool
	}{
		{pt(21, 20), true},
		{pt(150, 50), false},
		{pt(15, 15), true},
	}
	for _, st := range steps {
		tr.s.CursorMoved(tr.root, st.c)
		if got := tr.s.IsDepressed(tr.a0.Id()); got != st.want {
			t.Errorf("at %v: IsDepressed = %v, want %v", st.c, got, st.want)
		}
	}
	tr.s.MouseButton(tr.root, pointer.ButtonPrimary, false)
	if tr.s.IsDepressed(tr.a0.Id()) {
		t.Error("depressed after release")
	}
	expectLog(t, tr, "a0 CursorMove", "a0 PressStart", "a0 PressEnd")
}

func TestTouchGrabs(t *testing.T) {
	tr := newTree()
	var aEvents, bEvents []event.Event
	grabOnPress(tr.a0, pointer.GrabMove, &aEvents)
	grabOnPress(tr.b, pointer.GrabMove, &bEvents)
	tr.s.Touch(tr.root, 1, pointer.Begin, pt(20, 20))
	tr.s.Touch(tr.root, 2, pointer.Begin, pt(150, 50))
	tr.s.Touch(tr.root, 1, pointer.Move, pt(25, 20))
	tr.s.Touch(tr.root, 2, pointer.Move, pt(160, 50))
	tr.s.Touch(tr.root, 2, pointer.End, pt(160, 50))
	tr.s.Touch(tr.root, 1, pointer.Cancel, pt(25, 20))
	expectLog(t, tr,
		"a0 PressStart", "b PressStart",
		"a0 PressMove", "b PressMove",
		"b PressEnd", "a0 PressEnd")
	if end := aEvents[2].(pointer.PressEnd); end.Success {
		t.Error("cancelled touch ended with success")
	}
	if end := bEvents[2].(pointer.PressEnd); !end.Success {
		t.Error("lifted touch ended without success")
	}
}

func TestReleaseGrab(t *testing.T) {
	tr := newTree()
	var events []event.Event
	grabOnPress(tr.a0, pointer.GrabMove, &events)
	tr.s.Touch(tr.root, 1, pointer.Begin, pt(20, 20))
	tr.do(func(cx *Cx) { cx.ReleaseGrab(tr.a0.Id()) })
	expectLog(t, tr, "a0 PressStart", "a0 PressEnd")
	if tr.s.IsGrabbed(tr.a0.Id()) {
		t.Error("grab held after ReleaseGrab")
	}
	tr.s.Touch(tr.root, 1, pointer.Move, pt(30, 20))
	expectLog(t, tr)
}

func TestPan(t *testing.T) {
	tr := newTree()
	var events []event.Event
	grabOnPress(tr.b, pointer.GrabPanScale, &events)
	tr.s.Touch(tr.root, 1, pointer.Begin, pt(110, 10))
	tr.s.Touch(tr.root, 2, pointer.Begin, pt(130, 10))
	tr.s.Touch(tr.root, 2, pointer.Move, pt(150, 10))
	tr.s.Update(tr.root)
	expectLog(t, tr, "b PressStart", "b PressStart", "b Pan")
	pan := events[2].(pointer.Pan)
	if !approx(pan.Alpha.X, 2) || !approx(pan.Alpha.Y, 0) {
		t.Errorf("Pan alpha = %v, want (2, 0)", pan.Alpha)
	}
	if !approx(pan.Delta.X, -110) || !approx(pan.Delta.Y, -10) {
		t.Errorf("Pan delta = %v, want (-110, -10)", pan.Delta)
	}
	// Without movement, no Pan is sent.
	tr.s.Update(tr.root)
	expectLog(t, tr)
}

func TestPanTransform(t *testing.T) {
	two := func(mode pointer.GrabMode) *panGrab {
		return &panGrab{mode: mode, n: 2, points: [2]panPoint{
			{start: geom.Vec2{X: 0, Y: 0}, cur: geom.Vec2{X: 0, Y: 0}},
			{start: geom.Vec2{X: 10, Y: 0}, cur: geom.Vec2{X: 0, Y: 20}},
		}}
	}
	tests := []struct {
		mode  pointer.GrabMode
		alpha geom.Vec2
	}{
		{pointer.GrabPanFull, geom.Vec2{X: 0, Y: 2}},
		{pointer.GrabPanScale, geom.Vec2{X: 2, Y: 0}},
		{pointer.GrabPanRotate, geom.Vec2{X: 0, Y: 1}},
		{pointer.GrabPanOnly, geom.Vec2{X: 1, Y: 0}},
	}
	for _, tc := range tests {
		got := two(tc.mode).transform().Alpha
		if !approx(got.X, tc.alpha.X) || !approx(got.Y, tc.alpha.Y) {
			t.Errorf("%v: alpha = %v, want %v", tc.mode, got, tc.alpha)
		}
	}
}

func TestPressVelocity(t *testing.T) {
	tr := newTree()
	grabOnPress(tr.a0, pointer.GrabMove, nil)
	tr.s.CursorMoved(tr.root, pt(20, 20))
	tr.s.MouseButton(tr.root, pointer.ButtonPrimary, true)
	for i := 1; i <= 5; i++ {
		tr.clock.advance(10 * time.Millisecond)
		tr.s.CursorMoved(tr.root, pt(20+10*i, 20))
	}
	source := pointer.MouseSource(pointer.ButtonPrimary, 1)
	var v geom.Vec2
	var ok bool
	tr.do(func(cx *Cx) { v, ok = cx.PressVelocity(source) })
	// 50 pixels within a window of 3500ms/60.
	if want := float32(50 * 60.0 / 3.5); !ok || !approx(v.X, want) || v.Y != 0 {
		t.Errorf("velocity = %v, %v; want (%v, 0)", v, ok, want)
	}
	tr.clock.advance(60 * time.Millisecond)
	tr.do(func(cx *Cx) { v, ok = cx.PressVelocity(source) })
	if !ok || v != (geom.Vec2{}) {
		t.Errorf("velocity after the kinetic timeout = %v, %v", v, ok)
	}
}

func TestDoubleClick(t *testing.T) {
	tr := newTree()
	var reps []int
	tr.a0.onEvent = func(cx *Cx, ev event.Event) event.IsUsed {
		if e, ok := pressStart(ev); ok {
			reps = append(reps, e.Source.Repetitions())
		}
		return event.Used
	}
	tr.click(pt(20, 20))
	tr.clock.advance(200 * time.Millisecond)
	tr.click(pt(20, 20))
	tr.clock.advance(2 * time.Second)
	tr.click(pt(20, 20))
	if len(reps) != 3 || reps[0] != 1 || reps[1] != 2 || reps[2] != 1 {
		t.Errorf("repetitions = %v, want [1 2 1]", reps)
	}
}

func TestFocusLost(t *testing.T) {
	tr := newTree()
	var events []event.Event
	grabOnPress(tr.a0, pointer.GrabMove, &events)
	tr.s.CursorMoved(tr.root, pt(20, 20))
	tr.s.MouseButton(tr.root, pointer.ButtonPrimary, true)
	tr.s.FocusLost(tr.root)
	if tr.s.IsGrabbed(tr.a0.Id()) {
		t.Error("grab held after focus loss")
	}
	if end, ok := events[len(events)-1].(pointer.PressEnd); !ok || end.Success {
		t.Errorf("last event %#v, want cancelled PressEnd", events[len(events)-1])
	}
	if _, ok := tr.s.Hover(); ok {
		t.Error("hover kept after focus loss")
	}
}

// releaseOnEnd makes n release other's grab when its own press ends.
func releaseOnEnd(n, other *node) {
	grab := n.onEvent
	n.onEvent = func(cx *Cx, ev event.Event) event.IsUsed {
		if _, ok := ev.(pointer.PressEnd); ok {
			cx.ReleaseGrab(other.Id())
		}
		return grab(cx, ev)
	}
}

func TestFocusLostReleaseInHandler(t *testing.T) {
	tr := newTree()
	grabOnPress(tr.a0, pointer.GrabMove, nil)
	grabOnPress(tr.b, pointer.GrabMove, nil)
	releaseOnEnd(tr.b, tr.a0)
	tr.s.Touch(tr.root, 1, pointer.Begin, pt(20, 20))
	tr.s.Touch(tr.root, 2, pointer.Begin, pt(150, 50))
	tr.takeLog()

	tr.s.FocusLost(tr.root)
	if tr.s.IsGrabbed(tr.a0.Id()) || tr.s.IsGrabbed(tr.b.Id()) {
		t.Error("grab held after focus loss")
	}
	expectLog(t, tr, "b PressEnd", "a0 PressEnd")
}

func TestButtonReleaseInHandler(t *testing.T) {
	tr := newTree()
	grabOnPress(tr.a0, pointer.GrabMove, nil)
	grabOnPress(tr.b, pointer.GrabMove, nil)
	releaseOnEnd(tr.a0, tr.b)
	tr.s.Touch(tr.root, 1, pointer.Begin, pt(150, 50))
	tr.s.CursorMoved(tr.root, pt(20, 20))
	tr.s.MouseButton(tr.root, pointer.ButtonPrimary, true)
	tr.takeLog()

	tr.s.MouseButton(tr.root, pointer.ButtonPrimary, false)
	if tr.s.IsGrabbed(tr.a0.Id()) || tr.s.IsGrabbed(tr.b.Id()) {
		t.Error("grab held after release")
	}
	expectLog(t, tr, "a0 PressEnd", "b PressEnd")
}
