// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"gioui.org/retained/draw"
	"gioui.org/retained/geom"
	"gioui.org/retained/gesture"
	"gioui.org/retained/internal/fling"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/io/router"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/widget"
)

// kineticTimer drives kinetic scrolling, once per frame.
var kineticTimer = event.NewTimerHandle(1, true)

// ScrollRegion shows a view into a child larger than itself. The view
// moves with the mouse wheel, paging commands and drags, continuing
// kinetically after a fling.
type ScrollRegion struct {
	widget.Core

	child     widget.Widget
	offset    geom.Offset
	maxOffset geom.Offset
	ideal     geom.Size
	lineH     int
	bar       int

	drag    gesture.Drag
	kinetic fling.Kinetic
}

// NewScrollRegion returns a region scrolling child.
func NewScrollRegion(child widget.Widget) *ScrollRegion {
	return &ScrollRegion{child: child}
}

// Offset returns the scroll position.
func (s *ScrollRegion) Offset() geom.Offset { return s.offset }

// MaxOffset returns the largest scroll position.
func (s *ScrollRegion) MaxOffset() geom.Offset { return s.maxOffset }

// Translation implements widget.Translator.
func (s *ScrollRegion) Translation() geom.Offset { return s.offset }

func (s *ScrollRegion) NumChildren() int { return 1 }

func (s *ScrollRegion) Child(i int) widget.Tile {
	if i == 0 {
		return s.child
	}
	return nil
}

// SizeRules lets the region shrink to a few lines while asking for the
// child's ideal size.
func (s *ScrollRegion) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	r := widget.SizeRules(s.child, sz, axis)
	if axis.Axis == layout.Horizontal {
		s.ideal.W = r.Ideal
	} else {
		s.ideal.H = r.Ideal
	}
	lo := min(r.Min, 3*sz.LineHeight())
	return layout.NewRules(lo, max(r.Ideal, lo), r.Margins, max(r.Stretch, layout.StretchHigh))
}

func (s *ScrollRegion) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	s.StoreRect(r)
	s.lineH = sz.LineHeight()
	s.bar = sz.ScrollBarSize().W
	content := geom.Rect{Pos: r.Pos, Size: s.ideal.Max(r.Size)}
	widget.SetRect(s.child, sz, content, hints)
	s.maxOffset = geom.Offset{X: content.Size.W - r.Size.W, Y: content.Size.H - r.Size.H}
	s.offset = s.clamp(s.offset)
}

func (s *ScrollRegion) clamp(o geom.Offset) geom.Offset {
	return geom.Offset{
		X: min(max(o.X, 0), s.maxOffset.X),
		Y: min(max(o.Y, 0), s.maxOffset.Y),
	}
}

func (s *ScrollRegion) Draw(cx *widget.DrawCx) {
	r := s.Rect()
	cx.WithPass(r, s.offset.Neg(), draw.PassClip, func(cx *widget.DrawCx) {
		widget.Draw(s.child, cx)
	})
	if s.maxOffset.Y > 0 {
		h := max(r.Size.H*r.Size.H/(r.Size.H+s.maxOffset.Y), 3*s.bar)
		y := r.Pos.Y + (r.Size.H-h)*s.offset.Y/s.maxOffset.Y
		handle := geom.R(r.Pos.X+r.Size.W-s.bar, y, s.bar, h)
		cx.Backend().Rect(cx.Pass(), handle, cx.Theme().Palette.Frame)
	}
}

// ScrollBy moves the view by d, clamped to the content. It reports
// whether the view moved.
func (s *ScrollRegion) ScrollBy(cx *router.Cx, d geom.Offset) bool {
	o := s.clamp(s.offset.Add(d))
	if o == s.offset {
		return false
	}
	s.offset = o
	cx.Action(router.Redraw | router.RegionMoved)
	return true
}

func (s *ScrollRegion) HandleEvent(cx *router.Cx, ev event.Event) event.IsUsed {
	return s.handle(cx, ev)
}

// HandleUnused scrolls for input the region's descendants ignored.
func (s *ScrollRegion) HandleUnused(cx *router.Cx, index int, ev event.Event) event.IsUsed {
	if e, ok := ev.(pointer.PressStart); ok {
		// Back from the child's coordinates to the region's.
		e.Coord = e.Coord.Add(s.offset.Neg())
		ev = e
	}
	return s.handle(cx, ev)
}

func (s *ScrollRegion) handle(cx *router.Cx, ev event.Event) event.IsUsed {
	switch e := ev.(type) {
	case pointer.Scroll:
		em := cx.Config().Event.ScrollDistEm * float32(s.lineH)
		d := e.Delta.Pixels.Add(e.Delta.Lines.Mul(em).Round())
		s.kinetic.Stop()
		return event.IsUsed(s.ScrollBy(cx, d))
	case key.Command:
		return s.command(cx, e)
	case event.Timer:
		if e.Handle != kineticTimer || !s.kinetic.Active() {
			return event.Unused
		}
		cfg := &cx.Config().Event
		d, ok := s.kinetic.Step(cx.Now(), fling.Decay{Mul: cfg.KineticDecayMul, Sub: cfg.KineticDecaySub})
		if ok && s.ScrollBy(cx, d) {
			cx.RequestFrameTimer(s.Id(), kineticTimer)
		} else {
			s.kinetic.Stop()
		}
		return event.Used
	case pointer.PressStart:
		if e.Source.IsMouse() {
			alt := e.Modifiers.Contain(key.ModAlt)
			ctrl := e.Modifiers.Contain(key.ModCtrl)
			if !cx.Config().Event.MousePan.Active(alt, ctrl) {
				return event.Unused
			}
		}
	}
	de, ok := s.drag.Update(cx, s.Id(), ev)
	if !ok {
		return event.Unused
	}
	switch de.Kind {
	case gesture.DragPress:
		s.kinetic.Stop()
	case gesture.DragStart, gesture.DragMove:
		s.ScrollBy(cx, de.Delta.Neg())
	case gesture.DragEnd:
		if s.kinetic.Start(cx.Now(), de.Velocity.Mul(-1)) {
			cx.RequestFrameTimer(s.Id(), kineticTimer)
		}
	}
	return event.Used
}

func (s *ScrollRegion) command(cx *router.Cx, cmd key.Command) event.IsUsed {
	page := max(s.Rect().Size.H-s.lineH, s.lineH)
	var d geom.Offset
	switch cmd {
	case key.PageUp:
		d.Y = -page
	case key.PageDown:
		d.Y = page
	case key.Home:
		d = s.offset.Neg()
	case key.End:
		d = s.maxOffset.Sub(s.offset)
	default:
		return event.Unused
	}
	return event.IsUsed(s.ScrollBy(cx, d))
}

func (s *ScrollRegion) Describe() semantic.Desc {
	return semantic.Desc{Role: semantic.ScrollRegion, Gestures: semantic.ScrollGesture}
}
