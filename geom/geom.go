// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom implements the value types used for layout and input:
integer coordinates, sizes, offsets and rectangles, plus a float32
vector for sub-pixel motion.

The coordinate space has the origin in the top left corner with the
axes extending right and down. Every Rect is relative to the
coordinate space of the widget's parent.
*/
package geom

import (
	"fmt"
	"math"
)

// Coord is a position in pixels.
type Coord struct {
	X, Y int
}

// Offset is the difference between two Coords.
type Offset struct {
	X, Y int
}

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

// Rect is an axis-aligned rectangle. It contains the points (X, Y)
// where Pos.X <= X < Pos.X+Size.W and Pos.Y <= Y < Pos.Y+Size.H.
type Rect struct {
	Pos  Coord
	Size Size
}

// Vec2 is a two dimensional float32 vector.
type Vec2 struct {
	X, Y float32
}

// Pt is shorthand for Coord{X: x, Y: y}.
func Pt(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// R returns the rectangle at (x, y) with size (w, h).
func R(x, y, w, h int) Rect {
	return Rect{Pos: Coord{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Add returns c translated by o.
func (c Coord) Add(o Offset) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the offset from c2 to c.
func (c Coord) Sub(c2 Coord) Offset {
	return Offset{X: c.X - c2.X, Y: c.Y - c2.Y}
}

// Vec2 converts c to float.
func (c Coord) Vec2() Vec2 {
	return Vec2{X: float32(c.X), Y: float32(c.Y)}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns o+o2.
func (o Offset) Add(o2 Offset) Offset {
	return Offset{X: o.X + o2.X, Y: o.Y + o2.Y}
}

// Sub returns o-o2.
func (o Offset) Sub(o2 Offset) Offset {
	return Offset{X: o.X - o2.X, Y: o.Y - o2.Y}
}

// Neg returns -o.
func (o Offset) Neg() Offset {
	return Offset{X: -o.X, Y: -o.Y}
}

// Vec2 converts o to float.
func (o Offset) Vec2() Vec2 {
	return Vec2{X: float32(o.X), Y: float32(o.Y)}
}

func (o Offset) String() string {
	return fmt.Sprintf("(%+d,%+d)", o.X, o.Y)
}

// Add returns s+s2.
func (s Size) Add(s2 Size) Size {
	return Size{W: s.W + s2.W, H: s.H + s2.H}
}

// Sub returns s-s2, clamped to zero.
func (s Size) Sub(s2 Size) Size {
	return Size{W: max(s.W-s2.W, 0), H: max(s.H-s2.H, 0)}
}

// Max returns the componentwise maximum of s and s2.
func (s Size) Max(s2 Size) Size {
	return Size{W: max(s.W, s2.W), H: max(s.H, s2.H)}
}

// Min returns the componentwise minimum of s and s2.
func (s Size) Min(s2 Size) Size {
	return Size{W: min(s.W, s2.W), H: min(s.H, s2.H)}
}

// Empty reports whether s has no area.
func (s Size) Empty() bool {
	return s.W <= 0 || s.H <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Max returns the bottom-right corner of r, exclusive.
func (r Rect) Max() Coord {
	return Coord{X: r.Pos.X + r.Size.W, Y: r.Pos.Y + r.Size.H}
}

// Contains reports whether c lies within r.
func (r Rect) Contains(c Coord) bool {
	return r.Pos.X <= c.X && c.X < r.Pos.X+r.Size.W &&
		r.Pos.Y <= c.Y && c.Y < r.Pos.Y+r.Size.H
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Size.Empty()
}

// Add returns r translated by o.
func (r Rect) Add(o Offset) Rect {
	r.Pos = r.Pos.Add(o)
	return r
}

// Shrink returns r with n pixels removed from every edge.
func (r Rect) Shrink(n int) Rect {
	n = min(n, r.Size.W/2, r.Size.H/2)
	return Rect{
		Pos:  Coord{X: r.Pos.X + n, Y: r.Pos.Y + n},
		Size: Size{W: r.Size.W - 2*n, H: r.Size.H - 2*n},
	}
}

// Expand returns r with n pixels added to every edge.
func (r Rect) Expand(n int) Rect {
	return Rect{
		Pos:  Coord{X: r.Pos.X - n, Y: r.Pos.Y - n},
		Size: Size{W: r.Size.W + 2*n, H: r.Size.H + 2*n},
	}
}

// Intersect returns the largest rectangle contained by both r and s.
// The result is empty at r's position when they don't overlap.
func (r Rect) Intersect(s Rect) Rect {
	p0 := Coord{X: max(r.Pos.X, s.Pos.X), Y: max(r.Pos.Y, s.Pos.Y)}
	rm, sm := r.Max(), s.Max()
	p1 := Coord{X: min(rm.X, sm.X), Y: min(rm.Y, sm.Y)}
	if p1.X <= p0.X || p1.Y <= p0.Y {
		return Rect{Pos: r.Pos}
	}
	return Rect{Pos: p0, Size: Size{W: p1.X - p0.X, H: p1.Y - p0.Y}}
}

// Union returns the smallest rectangle containing both r and s.
// Empty rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	p0 := Coord{X: min(r.Pos.X, s.Pos.X), Y: min(r.Pos.Y, s.Pos.Y)}
	rm, sm := r.Max(), s.Max()
	p1 := Coord{X: max(rm.X, sm.X), Y: max(rm.Y, sm.Y)}
	return Rect{Pos: p0, Size: Size{W: p1.X - p0.X, H: p1.Y - p0.Y}}
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Pos, r.Size)
}

// Add returns v+v2.
func (v Vec2) Add(v2 Vec2) Vec2 {
	return Vec2{X: v.X + v2.X, Y: v.Y + v2.Y}
}

// Sub returns v-v2.
func (v Vec2) Sub(v2 Vec2) Vec2 {
	return Vec2{X: v.X - v2.X, Y: v.Y - v2.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Round returns v rounded to the nearest Offset.
func (v Vec2) Round() Offset {
	return Offset{
		X: int(math.Round(float64(v.X))),
		Y: int(math.Round(float64(v.Y))),
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}
