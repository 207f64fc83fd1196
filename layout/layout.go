// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"gioui.org/retained/geom"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Direction is the order in which a row places its children.
type Direction uint8

// Align is the alignment of a widget within a rectangle larger than
// its ideal size.
type Align uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	Right Direction = iota
	Down
	Left
	Up
)

const (
	// AlignDefault defers to the next alignment in the hint chain.
	// A complete alignment resolves it to AlignTL.
	AlignDefault Align = iota
	// AlignTL aligns to the top or left edge.
	AlignTL
	// AlignCenter centers within the available space.
	AlignCenter
	// AlignBR aligns to the bottom or right edge.
	AlignBR
	// AlignStretch keeps the full rectangle.
	AlignStretch
)

// AxisInfo describes the axis being sized, and optionally the size
// already fixed for the other axis. The vertical rules of wrapping
// text depend on the width they are given.
type AxisInfo struct {
	Axis Axis
	// Fixed is the size of the other axis, valid if HasFixed.
	Fixed    int
	HasFixed bool
}

// Margins are the margins before and after a widget along one axis.
type Margins struct {
	Pre, Post uint16
}

// BoxMargins are Margins for both axes.
type BoxMargins struct {
	Horiz, Vert Margins
}

// Sum returns the total of both margins.
func (m Margins) Sum() int {
	return int(m.Pre) + int(m.Post)
}

// Max returns the larger of m and m2 on each side.
func (m Margins) Max(m2 Margins) Margins {
	return Margins{Pre: max(m.Pre, m2.Pre), Post: max(m.Post, m2.Post)}
}

// UniformMargins returns BoxMargins of m on every side.
func UniformMargins(m uint16) BoxMargins {
	return BoxMargins{Horiz: Margins{m, m}, Vert: Margins{m, m}}
}

// Extract returns the margins along axis a.
func (m BoxMargins) Extract(a Axis) Margins {
	if a == Horizontal {
		return m.Horiz
	}
	return m.Vert
}

// Pad returns s extended by the margins.
func (m BoxMargins) Pad(s geom.Size) geom.Size {
	return geom.Size{W: s.W + m.Horiz.Sum(), H: s.H + m.Vert.Sum()}
}

// Inset returns r with the margins removed.
func (m BoxMargins) Inset(r geom.Rect) geom.Rect {
	r.Pos.X += int(m.Horiz.Pre)
	r.Pos.Y += int(m.Vert.Pre)
	r.Size = r.Size.Sub(geom.Size{W: m.Horiz.Sum(), H: m.Vert.Sum()})
	return r
}

// Other returns the other axis.
func (a Axis) Other() Axis {
	return 1 - a
}

// Main returns the size of s along the axis.
func (a Axis) Main(s geom.Size) int {
	if a == Horizontal {
		return s.W
	}
	return s.H
}

// Cross returns the size of s across the axis.
func (a Axis) Cross(s geom.Size) int {
	if a == Horizontal {
		return s.H
	}
	return s.W
}

// Size returns the Size with main along the axis and cross across it.
func (a Axis) Size(main, cross int) geom.Size {
	if a == Horizontal {
		return geom.Size{W: main, H: cross}
	}
	return geom.Size{W: cross, H: main}
}

// Coord returns the position of c along the axis.
func (a Axis) Coord(c geom.Coord) int {
	if a == Horizontal {
		return c.X
	}
	return c.Y
}

// setCoord returns c with its main position replaced by v.
func (a Axis) setCoord(c geom.Coord, v int) geom.Coord {
	if a == Horizontal {
		c.X = v
	} else {
		c.Y = v
	}
	return c
}

// setSize returns s with its main size replaced by v.
func (a Axis) setSize(s geom.Size, v int) geom.Size {
	if a == Horizontal {
		s.W = v
	} else {
		s.H = v
	}
	return s
}

// Axis returns the axis along which d places children.
func (d Direction) Axis() Axis {
	if d == Down || d == Up {
		return Vertical
	}
	return Horizontal
}

// Reversed reports whether d places children right-to-left or
// bottom-to-top.
func (d Direction) Reversed() bool {
	return d == Left || d == Up
}

// HorizontalInfo returns an AxisInfo for sizing the horizontal axis.
func HorizontalInfo() AxisInfo {
	return AxisInfo{Axis: Horizontal}
}

// VerticalInfo returns an AxisInfo for sizing the vertical axis at
// the given width.
func VerticalInfo(width int) AxisInfo {
	return AxisInfo{Axis: Vertical, Fixed: width, HasFixed: true}
}

// IsVertical reports whether the vertical axis is being sized.
func (a AxisInfo) IsVertical() bool {
	return a.Axis == Vertical
}

// Other returns the fixed size of the other axis, if any.
func (a AxisInfo) Other() (int, bool) {
	return a.Fixed, a.HasFixed
}

// WithFixed returns a with the other axis fixed to size.
func (a AxisInfo) WithFixed(size int) AxisInfo {
	a.Fixed = size
	a.HasFixed = true
	return a
}

// Flipped returns the info for sizing the other axis, with nothing
// fixed.
func (a AxisInfo) Flipped() AxisInfo {
	return AxisInfo{Axis: a.Axis.Other()}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Up:
		return "Up"
	default:
		panic("unreachable")
	}
}

func (a Align) String() string {
	switch a {
	case AlignDefault:
		return "Default"
	case AlignTL:
		return "TL"
	case AlignCenter:
		return "Center"
	case AlignBR:
		return "BR"
	case AlignStretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

func (a AxisInfo) String() string {
	if a.HasFixed {
		return fmt.Sprintf("%v(other=%d)", a.Axis, a.Fixed)
	}
	return a.Axis.String()
}
