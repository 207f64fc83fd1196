// SPDX-License-Identifier: Unlicense OR MIT

/*
Package draw defines the interface between widgets and a drawing
backend.

Drawing is organised in passes. The window draws into the root pass;
a widget whose content escapes its parent's clip rectangle, such as a
scroll region or a pop-up, opens a new pass with NewPass and draws its
children into it. Clip passes are clipped to their rectangle and
drawn in order with their parent; overlay passes are drawn after every
clip pass, on top of the window.
*/
package draw

import (
	"image/color"

	"golang.org/x/image/font"

	"gioui.org/retained/geom"
)

// PassId identifies a draw pass. The zero value is the root pass of
// the window.
type PassId uint32

// PassType is the kind of a pass.
type PassType uint8

const (
	// PassClip clips drawing to the pass rectangle.
	PassClip PassType = iota
	// PassOverlay draws above every clip pass.
	PassOverlay
)

// Draw is a drawing backend. Coordinates are in the coordinate space
// of the pass: the parent's space translated by the pass offset.
type Draw interface {
	// NewPass opens a pass under parent. rect is the pass rectangle in
	// the parent's coordinate space and offset translates everything
	// drawn into the pass.
	NewPass(parent PassId, rect geom.Rect, offset geom.Offset, kind PassType) PassId
	// ClipRect returns the rectangle of pass in its own coordinates.
	ClipRect(pass PassId) geom.Rect
	// Rect fills r.
	Rect(pass PassId, r geom.Rect, c color.NRGBA)
	// Frame fills the area of outer outside inner.
	Frame(pass PassId, outer, inner geom.Rect, c color.NRGBA)
	// Text draws a single line of text with its top-left corner at pos.
	Text(pass PassId, pos geom.Coord, text string, face font.Face, c color.NRGBA)
	// Image draws the image id scaled to r.
	Image(pass PassId, id ImageId, r geom.Rect)
}

func (t PassType) String() string {
	switch t {
	case PassClip:
		return "Clip"
	case PassOverlay:
		return "Overlay"
	default:
		panic("unreachable")
	}
}
