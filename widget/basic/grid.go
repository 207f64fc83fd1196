// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"gioui.org/retained/geom"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/widget"
)

// GridCell is a child of a Grid and the tracks it covers.
type GridCell struct {
	Info   layout.GridChildInfo
	Widget widget.Widget
}

// Grid lays out its children in columns and rows. Cells may span
// several tracks.
type Grid struct {
	widget.Core

	dim     layout.GridDimensions
	cells   []GridCell
	storage layout.GridStorage
}

// NewGrid returns a grid of cells. The grid's dimensions are those
// needed to hold every cell.
func NewGrid(cells ...GridCell) *Grid {
	var dim layout.GridDimensions
	for _, c := range cells {
		i := c.Info
		if i.ColEnd <= i.Col || i.RowEnd <= i.Row {
			panic("basic: empty grid cell")
		}
		dim.Cols = max(dim.Cols, i.ColEnd)
		dim.Rows = max(dim.Rows, i.RowEnd)
		if i.ColEnd-i.Col > 1 {
			dim.ColSpans++
		}
		if i.RowEnd-i.Row > 1 {
			dim.RowSpans++
		}
	}
	return &Grid{dim: dim, cells: cells}
}

// Dimensions returns the track counts of the grid.
func (g *Grid) Dimensions() layout.GridDimensions { return g.dim }

func (g *Grid) NumChildren() int { return len(g.cells) }

func (g *Grid) Child(i int) widget.Tile {
	if i < 0 || i >= len(g.cells) {
		return nil
	}
	return g.cells[i].Widget
}

func (g *Grid) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	s := layout.NewGridSolver(axis, g.dim, &g.storage)
	for _, c := range g.cells {
		s.ForChild(c.Info, func(axis layout.AxisInfo) layout.SizeRules {
			return widget.SizeRules(c.Widget, sz, axis)
		})
	}
	return s.Finish()
}

func (g *Grid) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	g.StoreRect(r)
	s := layout.NewGridSetter(r, g.dim, hints, &g.storage)
	for _, c := range g.cells {
		widget.SetRect(c.Widget, sz, s.ChildRect(c.Info), hints)
	}
}

func (g *Grid) Draw(cx *widget.DrawCx) {
	for _, c := range g.cells {
		if cx.Visible(c.Widget.Rect()) {
			widget.Draw(c.Widget, cx)
		}
	}
}

func (g *Grid) Describe() semantic.Desc {
	return semantic.Desc{Role: semantic.Grid}
}
