// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"gioui.org/retained/geom"
	"gioui.org/retained/gesture"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/io/router"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/widget"
)

// Button is a push button with a text label. A click, or the Activate
// or Enter command while it has navigation focus, pushes the button's
// message.
type Button struct {
	widget.Core

	label  *Label
	msg    any
	click  gesture.Click
	clicks []Click
	ideal  geom.Size
}

// Click represents a click.
type Click struct {
	Modifiers key.Modifiers
	NumClicks int
}

// NewButton returns a button showing text. msg, if not nil, is pushed
// when the button is activated.
func NewButton(text string, msg any) *Button {
	return &Button{label: NewLabel(text), msg: msg}
}

// Label returns the button's label.
func (b *Button) Label() *Label { return b.label }

// Clicked reports whether there are pending clicks. If so, Clicked
// removes the earliest click.
func (b *Button) Clicked() bool {
	if len(b.clicks) == 0 {
		return false
	}
	n := copy(b.clicks, b.clicks[1:])
	b.clicks = b.clicks[:n]
	return true
}

// Clicks returns and clears the clicks since the last call to Clicks.
func (b *Button) Clicks() []Click {
	clicks := b.clicks
	b.clicks = nil
	return clicks
}

func (b *Button) NumChildren() int { return 1 }

func (b *Button) Child(i int) widget.Tile {
	if i == 0 {
		return b.label
	}
	return nil
}

func (b *Button) Navigable() bool { return true }

func (b *Button) Cursor() pointer.Cursor { return pointer.CursorPointer }

// Probe makes the whole button, label included, the target of
// presses.
func (b *Button) Probe(c geom.Coord) (widget.Id, bool) {
	return b.Id(), true
}

func (b *Button) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	return keepIdeal(&b.ideal, axis, framed(sz, b.label, axis))
}

// SetRect centers the button at its ideal size unless a hint says
// otherwise.
func (b *Button) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	r = hints.Complete(layout.AlignCenter, layout.AlignCenter).Aligned(b.ideal, r)
	b.StoreRect(r)
	widget.SetRect(b.label, sz, r.Shrink(framePad(sz)), layout.Center)
}

func (b *Button) Draw(cx *widget.DrawCx) {
	cx.Button(b.Id(), b.Rect())
	widget.Draw(b.label, cx)
}

func (b *Button) HandleEvent(cx *router.Cx, ev event.Event) event.IsUsed {
	if cmd, ok := ev.(key.Command); ok {
		switch cmd {
		case key.Activate, key.Enter:
			b.activate(cx, Click{NumClicks: 1})
			return event.Used
		}
		return event.Unused
	}
	e, ok := b.click.Update(cx, b.Id(), ev)
	if ok && e.Kind == gesture.KindClick {
		b.activate(cx, Click{Modifiers: e.Modifiers, NumClicks: e.NumClicks})
	}
	return event.IsUsed(ok)
}

func (b *Button) activate(cx *router.Cx, c Click) {
	b.clicks = append(b.clicks, c)
	if b.msg != nil {
		cx.Push(b.msg)
	}
	cx.Redraw()
}

func (b *Button) Describe() semantic.Desc {
	return semantic.Desc{Role: semantic.Button, Label: b.label.Text(), Gestures: semantic.ClickGesture}
}

// keepIdeal records the ideal size of rules along axis in ideal and
// returns rules.
func keepIdeal(ideal *geom.Size, axis layout.AxisInfo, rules layout.SizeRules) layout.SizeRules {
	if axis.IsVertical() {
		ideal.H = rules.Ideal
	} else {
		ideal.W = rules.Ideal
	}
	return rules
}

// framePad returns the distance from the edge of a frame to its
// content.
func framePad(sz theme.SizeCx) int {
	return sz.FrameRules(layout.HorizontalInfo()).Min / 2
}

// framed returns the rules of content inside a frame. The width fixed
// for the vertical axis is reduced by the frame.
func framed(sz theme.SizeCx, content widget.Widget, axis layout.AxisInfo) layout.SizeRules {
	frame := sz.FrameRules(axis)
	if w, ok := axis.Other(); ok {
		axis = axis.WithFixed(max(w-2*framePad(sz), 0))
	}
	return widget.SizeRules(content, sz, axis).SurroundedBy(frame, false)
}
