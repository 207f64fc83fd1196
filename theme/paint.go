// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"image/color"
	"strings"

	"gioui.org/retained/draw"
	"gioui.org/retained/geom"
	"gioui.org/retained/layout"
)

// Background fills r with the window background.
func (t *Theme) Background(d draw.Draw, pass draw.PassId, r geom.Rect) {
	d.Rect(pass, r, t.Palette.Background)
}

// PopupBackground fills r with the pop-up background and frames it.
func (t *Theme) PopupBackground(d draw.Draw, pass draw.PassId, r geom.Rect) {
	d.Rect(pass, r, t.Palette.Popup)
	d.Frame(pass, r, r.Shrink(t.dims.frame), t.Palette.Frame)
}

func (t *Theme) frameColor(st State, hover float32) color.NRGBA {
	switch {
	case st&Disabled != 0:
		return t.Palette.TextDisabled
	case st&NavFocus != 0:
		return t.Palette.Focus
	case st&Hover != 0:
		return mix(t.Palette.Frame, t.Palette.Accent, hover)
	}
	return t.Palette.Frame
}

// Frame draws the border of r.
func (t *Theme) Frame(d draw.Draw, pass draw.PassId, r geom.Rect, st State, hover float32) {
	d.Frame(pass, r, r.Shrink(t.dims.frame), t.frameColor(st, hover))
}

// Button draws the face and border of a button filling r.
func (t *Theme) Button(d draw.Draw, pass draw.PassId, r geom.Rect, st State, hover float32) {
	fill := t.Palette.Surface
	switch {
	case st&Disabled != 0:
	case st&Depress != 0:
		fill = t.Palette.Accent
	case st&Hover != 0:
		fill = mix(t.Palette.Surface, t.Palette.Hover, hover)
	}
	inner := r.Shrink(t.dims.frame)
	d.Rect(pass, inner, fill)
	d.Frame(pass, r, inner, t.frameColor(st, hover))
}

// MenuEntry draws the highlight of a menu entry.
func (t *Theme) MenuEntry(d draw.Draw, pass draw.PassId, r geom.Rect, st State, hover float32) {
	switch {
	case st&(Depress|NavFocus) != 0:
		d.Rect(pass, r, t.Palette.Accent)
	case st&Hover != 0:
		d.Rect(pass, r, mix(t.Palette.Popup, t.Palette.Hover, hover))
	}
}

// NavBox outlines r to show navigation focus.
func (t *Theme) NavBox(d draw.Draw, pass draw.PassId, r geom.Rect) {
	w := max(t.dims.frame/2, 1)
	d.Frame(pass, r, r.Shrink(w), t.Palette.Focus)
}

// Text draws text aligned within r. Wrapped text breaks at the width
// of r.
func (t *Theme) Text(d draw.Draw, pass draw.PassId, r geom.Rect, text string, st State, align layout.CompleteAlignment, wrap, mono bool) {
	var lines []string
	if wrap {
		lines = wrapLines(t, text, r.Size.W, mono)
	} else {
		lines = strings.Split(text, "\n")
	}
	c := t.Palette.Text
	if st&Disabled != 0 {
		c = t.Palette.TextDisabled
	}
	lh := t.dims.lineHeight
	y := r.Pos.Y + align.Offset(layout.Vertical, r.Size.H, len(lines)*lh)
	for _, line := range lines {
		w := textWidth(t, line, mono)
		x := r.Pos.X + align.Offset(layout.Horizontal, r.Size.W, w)
		d.Text(pass, geom.Pt(x, y), line, t.Face(mono), c)
		y += lh
	}
}
