// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common press gestures on top of the press
events and grabs of package router.

A widget feeds each event it receives to its gestures from its
HandleEvent method and reports the event used when the gesture
consumed it:

	func (b *Button) HandleEvent(cx *router.Cx, ev event.Event) event.IsUsed {
		e, ok := b.click.Update(cx, b.Id(), ev)
		if ok && e.Kind == gesture.KindClick {
			cx.Push(b.msg)
		}
		return event.IsUsed(ok)
	}
*/
package gesture

import (
	"math"
	"time"

	"gioui.org/retained/geom"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/io/router"
	"gioui.org/retained/unit"
	"gioui.org/retained/widget"
)

// Click detects clicks of the primary button or a touch.
type Click struct {
	pressed   bool
	source    pointer.PressSource
	modifiers key.Modifiers
}

// ClickEvent is a stage of a click.
type ClickEvent struct {
	Kind   ClickKind
	Source pointer.PressSource
	Coord  geom.Coord
	// Modifiers are the modifiers active at the press.
	Modifiers key.Modifiers
	// NumClicks counts the clicks in quick succession, 1 for a
	// single click.
	NumClicks int
}

// ClickKind is the stage of a click.
type ClickKind uint8

const (
	// KindPress is reported when the press starts.
	KindPress ClickKind = iota
	// KindClick is reported when the press ends over the widget.
	KindClick
	// KindCancel is reported when the press ends elsewhere or is
	// cancelled.
	KindCancel
)

// Drag detects presses moving content, such as the thumb of a slider
// or the body of a scroll region.
type Drag struct {
	// Metric converts the drag threshold to pixels. The zero value
	// uses one pixel per dp.
	Metric unit.Metric

	pressed  bool
	dragging bool
	source   pointer.PressSource
	start    geom.Coord
	last     geom.Coord
	lastMove time.Time
	vel      geom.Vec2
}

// DragEvent is a stage of a drag.
type DragEvent struct {
	Kind   DragKind
	Source pointer.PressSource
	Coord  geom.Coord
	// Delta is the movement since the previous event.
	Delta geom.Offset
	// Velocity is the release velocity in pixels per second,
	// set for DragEnd.
	Velocity geom.Vec2
}

// DragKind is the stage of a drag.
type DragKind uint8

const (
	// DragPress is reported when the press starts.
	DragPress DragKind = iota
	// DragStart is reported when the press first moves beyond the
	// pan threshold. Its Delta covers the movement so far.
	DragStart
	DragMove
	// DragEnd is reported when the press ends. A press that never
	// moved beyond the threshold ends with DragEnd too.
	DragEnd
)

// Pressed reports whether a press is in progress.
func (c *Click) Pressed() bool {
	return c.pressed
}

// Update handles ev for the widget id. It reports whether ev belongs
// to the gesture, and the resulting click stage.
func (c *Click) Update(cx *router.Cx, id widget.Id, ev event.Event) (ClickEvent, bool) {
	switch e := ev.(type) {
	case pointer.PressStart:
		if c.pressed || !e.Source.IsPrimary() {
			break
		}
		if !cx.RequestGrab(id, e, pointer.GrabClick) {
			break
		}
		cx.RequestPressFocus(id, e.Source)
		c.pressed = true
		c.source = e.Source
		c.modifiers = e.Modifiers
		return ClickEvent{
			Kind:      KindPress,
			Source:    e.Source,
			Coord:     e.Coord,
			Modifiers: e.Modifiers,
			NumClicks: e.Source.Repetitions(),
		}, true
	case pointer.PressEnd:
		if !c.pressed || !c.source.Same(e.Source) {
			break
		}
		c.pressed = false
		ce := ClickEvent{
			Kind:      KindCancel,
			Source:    c.source,
			Coord:     e.Coord,
			Modifiers: c.modifiers,
			NumClicks: c.source.Repetitions(),
		}
		if e.Success && id.IsAncestorOf(e.Id) {
			ce.Kind = KindClick
		}
		return ce, true
	}
	return ClickEvent{}, false
}

// Dragging reports whether the press has moved beyond the threshold.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Pressed reports whether a press is in progress.
func (d *Drag) Pressed() bool {
	return d.pressed
}

// Update handles ev for the widget id. It reports whether ev belongs
// to the gesture, and the resulting drag stage. A PressMove below the
// threshold is used without reporting a stage; its Kind is DragPress.
func (d *Drag) Update(cx *router.Cx, id widget.Id, ev event.Event) (DragEvent, bool) {
	switch e := ev.(type) {
	case pointer.PressStart:
		if d.pressed || !e.Source.IsPrimary() {
			break
		}
		if !cx.RequestGrab(id, e, pointer.GrabMove) {
			break
		}
		d.pressed = true
		d.dragging = false
		d.source = e.Source
		d.start, d.last = e.Coord, e.Coord
		d.vel = geom.Vec2{}
		return DragEvent{Kind: DragPress, Source: e.Source, Coord: e.Coord}, true
	case pointer.PressMove:
		if !d.pressed || !e.Grabbed || !d.source.Same(e.Source) {
			break
		}
		d.vel, _ = cx.PressVelocity(d.source)
		d.lastMove = cx.Now()
		if !d.dragging {
			thresh := float64(d.Metric.Dp(unit.Dp(cx.Config().Event.PanDistThresh)))
			if length(e.Coord.Sub(d.start)) < thresh {
				return DragEvent{Kind: DragPress, Source: d.source, Coord: e.Coord}, true
			}
			d.dragging = true
			delta := e.Coord.Sub(d.last)
			d.last = e.Coord
			return DragEvent{Kind: DragStart, Source: d.source, Coord: e.Coord, Delta: delta}, true
		}
		delta := e.Coord.Sub(d.last)
		d.last = e.Coord
		return DragEvent{Kind: DragMove, Source: d.source, Coord: e.Coord, Delta: delta}, true
	case pointer.PressEnd:
		if !d.pressed || !d.source.Same(e.Source) {
			break
		}
		de := DragEvent{Kind: DragEnd, Source: d.source, Coord: e.Coord}
		if d.dragging && e.Success && cx.Now().Sub(d.lastMove) <= cx.Config().Event.KineticTimeout() {
			de.Velocity = d.vel
		}
		d.pressed = false
		d.dragging = false
		return de, true
	}
	return DragEvent{}, false
}

func length(o geom.Offset) float64 {
	return math.Hypot(float64(o.X), float64(o.Y))
}

func (k ClickKind) String() string {
	switch k {
	case KindPress:
		return "KindPress"
	case KindClick:
		return "KindClick"
	case KindCancel:
		return "KindCancel"
	default:
		panic("invalid ClickKind")
	}
}

func (k DragKind) String() string {
	switch k {
	case DragPress:
		return "DragPress"
	case DragStart:
		return "DragStart"
	case DragMove:
		return "DragMove"
	case DragEnd:
		return "DragEnd"
	default:
		panic("invalid DragKind")
	}
}
