// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"golang.org/x/exp/slices"

	"gioui.org/retained/geom"
)

// Weights used to pick the tracks which receive the stretch of a
// spanning cell: tracks with cells of their own are preferred, then
// tracks covered by many spans.
const (
	baseWeight = 100
	spanWeight = 10
)

// GridDimensions are the number of columns and rows of a grid and
// the number of cells spanning more than one of them.
type GridDimensions struct {
	Cols, ColSpans int
	Rows, RowSpans int
}

// GridChildInfo locates a cell: it covers columns [Col, ColEnd) and
// rows [Row, RowEnd).
type GridChildInfo struct {
	Col, ColEnd int
	Row, RowEnd int
}

// Cell returns the info of the single cell at (col, row).
func Cell(col, row int) GridChildInfo {
	return GridChildInfo{Col: col, ColEnd: col + 1, Row: row, RowEnd: row + 1}
}

// span returns the track range of the cell along axis a.
func (c GridChildInfo) span(a Axis) (int, int) {
	if a == Horizontal {
		return c.Col, c.ColEnd
	}
	return c.Row, c.RowEnd
}

// GridStorage keeps the rules and sizes of a grid's tracks between the
// sizing and placement phases.
type GridStorage struct {
	widthRules, heightRules []SizeRules
	widths, heights         []int
}

func (s *GridStorage) tracks(a Axis) *[]SizeRules {
	if a == Horizontal {
		return &s.widthRules
	}
	return &s.heightRules
}

func (s *GridStorage) sizes(a Axis) *[]int {
	if a == Horizontal {
		return &s.widths
	}
	return &s.heights
}

// Widths returns the column widths of the last placement.
func (s *GridStorage) Widths() []int { return s.widths }

// Heights returns the row heights of the last placement.
func (s *GridStorage) Heights() []int { return s.heights }

type spanRules struct {
	begin, end int
	rules      SizeRules
}

// GridSolver computes the rules of a grid along one axis.
type GridSolver struct {
	axis    AxisInfo
	dim     GridDimensions
	storage *GridStorage
	spans   []spanRules
	own     []bool
}

// NewGridSolver prepares to size a grid. When sizing the vertical axis
// with the width fixed, each cell receives the width of its columns
// solved from the stored column rules.
func NewGridSolver(axis AxisInfo, dim GridDimensions, storage *GridStorage) *GridSolver {
	n := dim.Cols
	if axis.Axis == Vertical {
		n = dim.Rows
	}
	rules := storage.tracks(axis.Axis)
	*rules = resize(*rules, n)
	for i := range *rules {
		(*rules)[i] = EmptyRules
	}
	sizes := storage.sizes(axis.Axis)
	*sizes = resizeInts(*sizes, n)
	if axis.Axis == Vertical && axis.HasFixed && len(storage.widthRules) == dim.Cols {
		storage.widths = resizeInts(storage.widths, dim.Cols)
		solveTracks(storage.widths, storage.widthRules, axis.Fixed)
	}
	return &GridSolver{
		axis:    axis,
		dim:     dim,
		storage: storage,
		spans:   make([]spanRules, 0, max(dim.ColSpans, dim.RowSpans)),
		own:     make([]bool, n),
	}
}

// ForChild records the rules of the cell at info.
func (s *GridSolver) ForChild(info GridChildInfo, rules func(AxisInfo) SizeRules) {
	axis := s.axis
	if axis.Axis == Vertical && axis.HasFixed && len(s.storage.widths) == s.dim.Cols {
		w := 0
		for c := info.Col; c < info.ColEnd; c++ {
			w += s.storage.widths[c]
		}
		axis = axis.WithFixed(w)
	} else {
		axis.HasFixed = false
	}
	r := rules(axis)
	begin, end := info.span(s.axis.Axis)
	tracks := *s.storage.tracks(s.axis.Axis)
	if end-begin <= 1 {
		tracks[begin] = tracks[begin].Max(r)
		s.own[begin] = true
		return
	}
	s.spans = append(s.spans, spanRules{begin: begin, end: end, rules: r})
}

// Finish distributes the spanning cells over their tracks and returns
// the rules of the whole grid.
func (s *GridSolver) Finish() SizeRules {
	tracks := *s.storage.tracks(s.axis.Axis)
	// Cells spanning the same tracks are combined first. Shorter spans
	// are distributed before the longer spans covering them.
	slices.SortFunc(s.spans, func(a, b spanRules) int {
		if la, lb := a.end-a.begin, b.end-b.begin; la != lb {
			return la - lb
		}
		if a.begin != b.begin {
			return a.begin - b.begin
		}
		return a.end - b.end
	})
	merged := s.spans[:0]
	for _, sp := range s.spans {
		if k := len(merged) - 1; k >= 0 && merged[k].begin == sp.begin && merged[k].end == sp.end {
			merged[k].rules = merged[k].rules.Max(sp.rules)
			continue
		}
		merged = append(merged, sp)
	}

	scores := make([]int, len(tracks))
	for i := range scores {
		if s.own[i] {
			scores[i] = baseWeight
		}
	}
	for _, sp := range merged {
		for i := sp.begin; i < sp.end; i++ {
			scores[i] += spanWeight
		}
	}
	for _, sp := range merged {
		sp.rules.DistributeStretchOverBy(tracks[sp.begin:sp.end], scores[sp.begin:sp.end])
		sp.rules.DistributeSpanOver(tracks[sp.begin:sp.end])
	}
	return Sum(tracks)
}

// solveTracks solves the sizes of tracks within length, returning the
// length used.
func solveTracks(sizes []int, rules []SizeRules, length int) int {
	total := Sum(rules)
	if total.Stretch == StretchNone && length > total.Ideal {
		length = total.Ideal
	}
	SolveSeq(sizes, rules, length-interiorMargins(rules))
	return length
}

// GridSetter assigns rectangles to the cells of a grid.
type GridSetter struct {
	colPos, rowPos []int
	widths         []int
	heights        []int
}

// NewGridSetter solves the grid's tracks within rect. If the grid
// cannot stretch along an axis and has excess space, it is placed by
// the alignment hint for that axis.
func NewGridSetter(rect geom.Rect, dim GridDimensions, hints AlignHints, storage *GridStorage) *GridSetter {
	align := hints.Complete(AlignDefault, AlignDefault)
	s := &GridSetter{}
	storage.widths = resizeInts(storage.widths, dim.Cols)
	storage.heights = resizeInts(storage.heights, dim.Rows)
	s.colPos = placeTracks(storage.widths, storage.widthRules, rect.Pos.X, rect.Size.W, Horizontal, align)
	s.rowPos = placeTracks(storage.heights, storage.heightRules, rect.Pos.Y, rect.Size.H, Vertical, align)
	s.widths = storage.widths
	s.heights = storage.heights
	return s
}

func placeTracks(sizes []int, rules []SizeRules, start, length int, a Axis, align CompleteAlignment) []int {
	pos := make([]int, len(sizes))
	if len(rules) != len(sizes) {
		return pos
	}
	used := solveTracks(sizes, rules, length)
	p := start + align.Offset(a, length, used)
	for i := range sizes {
		pos[i] = p
		p += sizes[i]
		if i+1 < len(rules) {
			p += int(max(rules[i].Margins.Post, rules[i+1].Margins.Pre))
		}
	}
	return pos
}

// ChildRect returns the union of the tracks covered by info.
func (s *GridSetter) ChildRect(info GridChildInfo) geom.Rect {
	x0 := s.colPos[info.Col]
	x1 := s.colPos[info.ColEnd-1] + s.widths[info.ColEnd-1]
	y0 := s.rowPos[info.Row]
	y1 := s.rowPos[info.RowEnd-1] + s.heights[info.RowEnd-1]
	return geom.R(x0, y0, x1-x0, y1-y0)
}

func resize(s []SizeRules, n int) []SizeRules {
	if cap(s) < n {
		return make([]SizeRules, n)
	}
	return s[:n]
}

func resizeInts(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	return s[:n]
}
