// SPDX-License-Identifier: Unlicense OR MIT

package window

import (
	"gioui.org/retained/geom"
	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/router"
	"gioui.org/retained/layout"
	"gioui.org/retained/widget"
)

// placePopups lays out every open pop-up next to its parent.
func (w *Window) placePopups() {
	sz := w.theme.SizeCx()
	for _, p := range w.state.Popups() {
		pw, ok := w.popupWidget(p.Id)
		if !ok {
			continue
		}
		parent, ok := widget.Find(w.root, p.Parent)
		if !ok {
			log.Warn("window: pop-up parent missing", "popup", p.Id, "parent", p.Parent)
			continue
		}
		anchor := parent.Rect().Add(widget.Translation(w.root, p.Parent).Neg())
		h := widget.SizeRules(pw, sz, layout.HorizontalInfo())
		width := min(h.Ideal, w.size.W)
		v := widget.SizeRules(pw, sz, layout.VerticalInfo(width))
		size := geom.Size{W: width, H: min(v.Ideal, w.size.H)}
		r := placePopup(p, anchor, size, w.size)
		// Back to the pop-up's own coordinates.
		r = r.Add(widget.Translation(w.root, p.Id))
		widget.SetRect(pw, sz, r, layout.AlignHints{})
	}
}

func (w *Window) popupWidget(id widget.Id) (widget.Widget, bool) {
	t, ok := widget.Find(w.root, id)
	if !ok {
		return nil, false
	}
	pw, ok := t.(widget.Widget)
	return pw, ok
}

// placePopup returns the window rectangle of a pop-up of the given
// size opening on side p.Direction of anchor. A pop-up not fitting on
// that side opens on the opposite side if it fits there, and is then
// moved into the window.
func placePopup(p router.Popup, anchor geom.Rect, size, window geom.Size) geom.Rect {
	r := geom.Rect{Size: size}
	a := anchor
	switch p.Direction {
	case layout.Down, layout.Up:
		r.Pos.X = a.Pos.X
		below, above := a.Max().Y, a.Pos.Y-size.H
		fitsBelow, fitsAbove := below+size.H <= window.H, above >= 0
		if p.Direction == layout.Down && (fitsBelow || !fitsAbove) || p.Direction == layout.Up && !fitsAbove && fitsBelow {
			r.Pos.Y = below
		} else {
			r.Pos.Y = above
		}
	case layout.Right, layout.Left:
		r.Pos.Y = a.Pos.Y
		right, left := a.Max().X, a.Pos.X-size.W
		fitsRight, fitsLeft := right+size.W <= window.W, left >= 0
		if p.Direction == layout.Right && (fitsRight || !fitsLeft) || p.Direction == layout.Left && !fitsLeft && fitsRight {
			r.Pos.X = right
		} else {
			r.Pos.X = left
		}
	}
	r.Pos.X = max(min(r.Pos.X, window.W-size.W), 0)
	r.Pos.Y = max(min(r.Pos.Y, window.H-size.H), 0)
	return r
}
