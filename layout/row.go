// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"sort"

	"gioui.org/retained/geom"
)

// RowStorage keeps the rules of a row's children between the sizing
// and placement phases. A row widget owns one and passes it to its
// RowSolver and RowSetter.
type RowStorage struct {
	rules  []SizeRules
	widths []int
}

func (s *RowStorage) resize(n int) {
	if cap(s.rules) < n {
		s.rules = make([]SizeRules, n)
		s.widths = make([]int, n)
	}
	s.rules = s.rules[:n]
	s.widths = s.widths[:n]
}

// Rules returns the rules stored for child i along the row's axis.
func (s *RowStorage) Rules(i int) SizeRules {
	return s.rules[i]
}

// Widths returns the widths of the last placement.
func (s *RowStorage) Widths() []int {
	return s.widths
}

// RowSolver computes the rules of a row from those of its children.
//
// Along the row's axis the children's rules are appended in visual
// order; across it they are combined with Max.
type RowSolver struct {
	axis    AxisInfo
	dir     Direction
	along   bool
	storage *RowStorage
	cross   SizeRules
	n       int
}

// NewRowSolver prepares to size a row of n children. When sizing the
// cross axis with the row's length fixed, each child receives its
// own width from the horizontal rules previously stored.
func NewRowSolver(axis AxisInfo, dir Direction, n int, storage *RowStorage) *RowSolver {
	s := &RowSolver{
		axis:    axis,
		dir:     dir,
		along:   axis.Axis == dir.Axis(),
		storage: storage,
		n:       n,
	}
	if s.along {
		storage.resize(n)
	} else if len(storage.rules) == n && axis.HasFixed {
		solveRow(storage.widths, storage.rules, dir, axis.Fixed)
	}
	return s
}

// ForChild records the rules of child i, computed by rules from the
// AxisInfo it is given. Along the row's axis every child receives the
// row's fixed cross size, if any.
func (s *RowSolver) ForChild(i int, rules func(AxisInfo) SizeRules) {
	axis := s.axis
	if !s.along {
		if s.axis.HasFixed && len(s.storage.widths) == s.n {
			axis = axis.WithFixed(s.storage.widths[i])
		}
		s.cross = s.cross.Max(rules(axis))
		return
	}
	s.storage.rules[i] = rules(axis)
}

// Finish returns the rules of the whole row.
func (s *RowSolver) Finish() SizeRules {
	if !s.along {
		return s.cross
	}
	return sumVisual(s.storage.rules, s.dir)
}

// sumVisual appends rules in the order they appear on screen.
func sumVisual(rules []SizeRules, dir Direction) SizeRules {
	if !dir.Reversed() {
		return Sum(rules)
	}
	total := EmptyRules
	for i := len(rules) - 1; i >= 0; i-- {
		if i == len(rules)-1 {
			total = rules[i]
		} else {
			total = total.Appended(rules[i])
		}
	}
	return total
}

// visualGap returns the margin reserved between child i and the
// child following it on screen.
func visualGap(rules []SizeRules, dir Direction, i int) int {
	if dir.Reversed() {
		return int(max(rules[i].Margins.Post, rules[i-1].Margins.Pre))
	}
	return int(max(rules[i].Margins.Post, rules[i+1].Margins.Pre))
}

// solveRow solves the widths of a row of the given total length,
// returning the length actually used.
func solveRow(widths []int, rules []SizeRules, dir Direction, length int) int {
	total := sumVisual(rules, dir)
	inter := 0
	for i := range rules {
		if (dir.Reversed() && i > 0) || (!dir.Reversed() && i < len(rules)-1) {
			inter += visualGap(rules, dir, i)
		}
	}
	if total.Stretch == StretchNone && length > total.Ideal {
		length = total.Ideal
	}
	SolveSeq(widths, rules, length-inter)
	return length
}

// RowSetter assigns rectangles to the children of a row.
type RowSetter struct {
	axis    Axis
	rect    geom.Rect
	offsets []int
	widths  []int
}

// NewRowSetter solves the row's children within rect. A row which
// cannot stretch and is given more space than its ideal is placed
// according to the alignment hint for its axis.
func NewRowSetter(rect geom.Rect, dir Direction, hints AlignHints, storage *RowStorage) *RowSetter {
	axis := dir.Axis()
	rules := storage.rules
	n := len(rules)
	length := axis.Main(rect.Size)
	used := solveRow(storage.widths, rules, dir, length)
	align := hints.Complete(AlignDefault, AlignDefault)
	start := axis.Coord(rect.Pos) + align.Offset(axis, length, used)

	s := &RowSetter{
		axis:    axis,
		rect:    rect,
		offsets: make([]int, n),
		widths:  storage.widths,
	}
	pos := start
	for k := 0; k < n; k++ {
		i := k
		if dir.Reversed() {
			i = n - 1 - k
		}
		s.offsets[i] = pos
		pos += storage.widths[i]
		if k < n-1 {
			pos += visualGap(rules, dir, i)
		}
	}
	return s
}

// ChildRect returns the rectangle of child i.
func (s *RowSetter) ChildRect(i int) geom.Rect {
	r := s.rect
	r.Pos = s.axis.setCoord(r.Pos, s.offsets[i])
	r.Size = s.axis.setSize(r.Size, s.widths[i])
	return r
}

// RowFind returns the index of the child of a row containing c, using
// binary search over the children's rectangles. rect returns the
// rectangle of child i.
func RowFind(n int, dir Direction, rect func(i int) geom.Rect, c geom.Coord) (int, bool) {
	axis := dir.Axis()
	v := axis.Coord(c)
	// Index of the first child, in screen order, ending after v.
	k := sort.Search(n, func(k int) bool {
		i := k
		if dir.Reversed() {
			i = n - 1 - k
		}
		r := rect(i)
		return axis.Coord(r.Pos)+axis.Main(r.Size) > v
	})
	if k == n {
		return 0, false
	}
	i := k
	if dir.Reversed() {
		i = n - 1 - k
	}
	if !rect(i).Contains(c) {
		return 0, false
	}
	return i, true
}
