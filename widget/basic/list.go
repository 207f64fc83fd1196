// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"gioui.org/retained/geom"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/widget"
)

// List lays out its children in a row or column, in the order of its
// direction.
type List struct {
	widget.Core

	dir      layout.Direction
	children []widget.Widget
	storage  layout.RowStorage
}

// NewList returns a list of children placed in direction dir.
func NewList(dir layout.Direction, children ...widget.Widget) *List {
	return &List{dir: dir, children: children}
}

// Direction returns the direction of the list.
func (l *List) Direction() layout.Direction { return l.dir }

// Append adds w to the end of the list. The list must be configured
// again before its next layout.
func (l *List) Append(w widget.Widget) {
	l.children = append(l.children, w)
}

func (l *List) NumChildren() int { return len(l.children) }

func (l *List) Child(i int) widget.Tile {
	if i < 0 || i >= len(l.children) {
		return nil
	}
	return l.children[i]
}

func (l *List) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	s := layout.NewRowSolver(axis, l.dir, len(l.children), &l.storage)
	for i, c := range l.children {
		s.ForChild(i, func(axis layout.AxisInfo) layout.SizeRules {
			return widget.SizeRules(c, sz, axis)
		})
	}
	return s.Finish()
}

func (l *List) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	l.StoreRect(r)
	s := layout.NewRowSetter(r, l.dir, hints, &l.storage)
	for i, c := range l.children {
		widget.SetRect(c, sz, s.ChildRect(i), hints)
	}
}

func (l *List) Draw(cx *widget.DrawCx) {
	for _, c := range l.children {
		if cx.Visible(c.Rect()) {
			widget.Draw(c, cx)
		}
	}
}

// Probe finds the child under c by binary search.
func (l *List) Probe(c geom.Coord) (widget.Id, bool) {
	rect := func(i int) geom.Rect { return l.children[i].Rect() }
	if i, ok := layout.RowFind(len(l.children), l.dir, rect, c); ok {
		if id, ok := widget.FindID(l.children[i], c); ok {
			return id, true
		}
	}
	return l.Id(), true
}

func (l *List) Describe() semantic.Desc {
	return semantic.Desc{Role: semantic.List}
}
