// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "gioui.org/retained/geom"

// AlignHints are the alignments a parent suggests to a child. An
// AlignDefault component is no hint.
type AlignHints struct {
	Horiz, Vert Align
}

// CompleteAlignment is an alignment with every component resolved.
type CompleteAlignment struct {
	Horiz, Vert Align
}

// Center is the hint to center on both axes.
var Center = AlignHints{Horiz: AlignCenter, Vert: AlignCenter}

// Extract returns the hint for axis a.
func (h AlignHints) Extract(a Axis) Align {
	if a == Horizontal {
		return h.Horiz
	}
	return h.Vert
}

// Combine returns h with missing components taken from h2.
func (h AlignHints) Combine(h2 AlignHints) AlignHints {
	if h.Horiz == AlignDefault {
		h.Horiz = h2.Horiz
	}
	if h.Vert == AlignDefault {
		h.Vert = h2.Vert
	}
	return h
}

// Complete resolves h with the widget's own defaults horiz and vert.
// Components still unresolved become AlignTL.
func (h AlignHints) Complete(horiz, vert Align) CompleteAlignment {
	h = h.Combine(AlignHints{Horiz: horiz, Vert: vert})
	c := CompleteAlignment{Horiz: h.Horiz, Vert: h.Vert}
	if c.Horiz == AlignDefault {
		c.Horiz = AlignTL
	}
	if c.Vert == AlignDefault {
		c.Vert = AlignTL
	}
	return c
}

// Aligned returns the rectangle of at most size ideal placed within r.
// Stretch alignment returns r unchanged, as does a rectangle no larger
// than ideal.
func (c CompleteAlignment) Aligned(ideal geom.Size, r geom.Rect) geom.Rect {
	r.Pos.X, r.Size.W = alignAxis(c.Horiz, r.Pos.X, r.Size.W, ideal.W)
	r.Pos.Y, r.Size.H = alignAxis(c.Vert, r.Pos.Y, r.Size.H, ideal.H)
	return r
}

// Offset returns the offset of content of length size placed in
// space along axis a.
func (c CompleteAlignment) Offset(a Axis, space, size int) int {
	al := c.Horiz
	if a == Vertical {
		al = c.Vert
	}
	pos, _ := alignAxis(al, 0, space, size)
	return pos
}

func alignAxis(a Align, pos, size, ideal int) (int, int) {
	extra := size - ideal
	if extra <= 0 {
		return pos, size
	}
	switch a {
	case AlignDefault, AlignTL:
		return pos, ideal
	case AlignCenter:
		return pos + extra/2, ideal
	case AlignBR:
		return pos + extra, ideal
	default:
		return pos, size
	}
}
