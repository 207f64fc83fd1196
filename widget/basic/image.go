// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"gioui.org/retained/draw"
	"gioui.org/retained/geom"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/unit"
	"gioui.org/retained/widget"
)

// Image shows an image of the window's image cache at a fixed size.
type Image struct {
	widget.Core

	img   draw.ImageId
	w, h  unit.Dp
	label string
	shown geom.Rect
}

// NewImage returns a widget showing img at size w by h, described by
// label.
func NewImage(img draw.ImageId, w, h unit.Dp, label string) *Image {
	return &Image{img: img, w: w, h: h, label: label}
}

func (m *Image) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	v := m.w
	if axis.IsVertical() {
		v = m.h
	}
	return layout.Fixed(sz.Dp(v), sz.Margins().Extract(axis.Axis))
}

func (m *Image) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	m.StoreRect(r)
	ideal := geom.Size{W: sz.Dp(m.w), H: sz.Dp(m.h)}
	m.shown = hints.Complete(layout.AlignCenter, layout.AlignCenter).Aligned(ideal, r)
}

func (m *Image) Draw(cx *widget.DrawCx) {
	cx.Image(m.img, m.shown)
}

func (m *Image) Describe() semantic.Desc {
	return semantic.Desc{Role: semantic.Image, Label: m.label}
}
