// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"gioui.org/retained/geom"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/router"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/widget"
)

// Popup shows its content above the window, next to the widget that
// opened it. A popup is a child of the widget that owns it but is
// hidden, and not laid out by its owner, until opened. The window
// places and draws open pop-ups.
type Popup struct {
	widget.Core

	content widget.Widget
	dir     layout.Direction
	open    bool
}

// NewPopup returns a closed pop-up showing content on side dir of its
// parent.
func NewPopup(dir layout.Direction, content widget.Widget) *Popup {
	return &Popup{content: content, dir: dir}
}

// Content returns the widget shown.
func (p *Popup) Content() widget.Widget { return p.content }

// IsOpen reports whether the pop-up is shown.
func (p *Popup) IsOpen() bool { return p.open }

// Hidden reports whether the pop-up is closed.
func (p *Popup) Hidden() bool { return !p.open }

// Open shows the pop-up anchored to parent.
func (p *Popup) Open(cx *router.Cx, parent widget.Id) {
	if p.open {
		return
	}
	p.open = true
	cx.AddPopup(router.Popup{Id: p.Id(), Parent: parent, Direction: p.dir})
}

// Close closes the pop-up and any opened above it.
func (p *Popup) Close(cx *router.Cx, restoreFocus bool) {
	cx.ClosePopup(p.Id(), restoreFocus)
}

// HandleClosed updates the pop-up for ev, received by its parent. It
// reports whether ev concerns p.
func (p *Popup) HandleClosed(ev event.PopupClosed) bool {
	if ev.Popup != p.Id() {
		return false
	}
	p.open = false
	return true
}

func (p *Popup) NumChildren() int { return 1 }

func (p *Popup) Child(i int) widget.Tile {
	if i == 0 {
		return p.content
	}
	return nil
}

func (p *Popup) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	return framed(sz, p.content, axis)
}

func (p *Popup) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	p.StoreRect(r)
	widget.SetRect(p.content, sz, r.Shrink(framePad(sz)), layout.AlignHints{})
}

func (p *Popup) Draw(cx *widget.DrawCx) {
	cx.PopupBackground(p.Rect())
	widget.Draw(p.content, cx)
}

