// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"time"

	"gioui.org/retained/draw"
	"gioui.org/retained/geom"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
)

// InputState is the view of the event state needed to draw widgets
// in their input states.
type InputState interface {
	IsHovered(id Id) bool
	IsDepressed(id Id) bool
	HasNavFocus(id Id) bool
	HasSelFocus(id Id) bool
	IsDisabled(id Id) bool
	// HoverStart returns when id became hovered.
	HoverStart(id Id) (time.Time, bool)
}

// DrawCx is the context of a draw traversal. It pairs a draw backend
// and its current pass with the theme and input state.
type DrawCx struct {
	d     draw.Draw
	pass  draw.PassId
	theme *theme.Theme
	input InputState
	now   time.Time
}

// NewDrawCx returns a context drawing into the root pass of d.
func NewDrawCx(d draw.Draw, th *theme.Theme, input InputState, now time.Time) *DrawCx {
	return &DrawCx{d: d, theme: th, input: input, now: now}
}

// Backend returns the draw backend.
func (cx *DrawCx) Backend() draw.Draw { return cx.d }

// Pass returns the current pass.
func (cx *DrawCx) Pass() draw.PassId { return cx.pass }

// Theme returns the theme.
func (cx *DrawCx) Theme() *theme.Theme { return cx.theme }

// State returns the input state flags of id.
func (cx *DrawCx) State(id Id) theme.State {
	var s theme.State
	in := cx.input
	if in == nil {
		return s
	}
	if in.IsHovered(id) {
		s |= theme.Hover
	}
	if in.IsDepressed(id) {
		s |= theme.Depress
	}
	if in.HasNavFocus(id) {
		s |= theme.NavFocus
	}
	if in.HasSelFocus(id) {
		s |= theme.SelFocus
	}
	if in.IsDisabled(id) {
		s |= theme.Disabled
	}
	return s
}

// hover returns the progress of id's hover transition.
func (cx *DrawCx) hover(id Id) float32 {
	if cx.input == nil {
		return 0
	}
	start, ok := cx.input.HoverStart(id)
	if !ok {
		return 0
	}
	return cx.theme.HoverBlend(cx.now.Sub(start))
}

// Animating reports whether id is in a hover transition and needs
// redrawing next frame.
func (cx *DrawCx) Animating(id Id) bool {
	if cx.input == nil {
		return false
	}
	start, ok := cx.input.HoverStart(id)
	return ok && cx.now.Sub(start) < cx.theme.Transition()
}

// WithPass draws into a new pass clipped to r, with content offset by
// offset, by calling fn with a context for the pass.
func (cx *DrawCx) WithPass(r geom.Rect, offset geom.Offset, kind draw.PassType, fn func(cx *DrawCx)) {
	sub := *cx
	sub.pass = cx.d.NewPass(cx.pass, r, offset, kind)
	fn(&sub)
}

// Visible reports whether any of r lies within the current clip.
func (cx *DrawCx) Visible(r geom.Rect) bool {
	return !cx.d.ClipRect(cx.pass).Intersect(r).Empty()
}

// Background fills r with the background colour.
func (cx *DrawCx) Background(r geom.Rect) {
	cx.theme.Background(cx.d, cx.pass, r)
}

// PopupBackground draws the background and border of a pop-up.
func (cx *DrawCx) PopupBackground(r geom.Rect) {
	cx.theme.PopupBackground(cx.d, cx.pass, r)
}

// Frame draws a frame around r in the input state of id.
func (cx *DrawCx) Frame(id Id, r geom.Rect) {
	cx.theme.Frame(cx.d, cx.pass, r, cx.State(id), cx.hover(id))
}

// Button draws a button face over r in the input state of id.
func (cx *DrawCx) Button(id Id, r geom.Rect) {
	st := cx.State(id)
	cx.theme.Button(cx.d, cx.pass, r, st, cx.hover(id))
	if st&theme.NavFocus != 0 {
		cx.theme.NavBox(cx.d, cx.pass, r)
	}
}

// MenuEntry draws the highlight of a menu entry.
func (cx *DrawCx) MenuEntry(id Id, r geom.Rect) {
	cx.theme.MenuEntry(cx.d, cx.pass, r, cx.State(id), cx.hover(id))
}

// NavFocus outlines r if id has navigation focus.
func (cx *DrawCx) NavFocus(id Id, r geom.Rect) {
	if cx.State(id)&theme.NavFocus != 0 {
		cx.theme.NavBox(cx.d, cx.pass, r)
	}
}

// Text draws text within r in the input state of id.
func (cx *DrawCx) Text(id Id, r geom.Rect, text string, align layout.CompleteAlignment, wrap bool) {
	cx.theme.Text(cx.d, cx.pass, r, text, cx.State(id), align, wrap, false)
}

// Image draws the image id scaled to r.
func (cx *DrawCx) Image(img draw.ImageId, r geom.Rect) {
	cx.d.Image(cx.pass, img, r)
}
