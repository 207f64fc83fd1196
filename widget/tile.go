// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"gioui.org/retained/geom"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
)

// Tile is the read-only view of a widget in the tree.
type Tile interface {
	// Id returns the widget's id, invalid before configuration.
	Id() Id
	// Rect returns the rectangle assigned by the last SetRect.
	Rect() geom.Rect
	// NumChildren returns the number of children.
	NumChildren() int
	// Child returns child i, or nil if there is none.
	Child(i int) Tile
	// WidgetCore returns the widget's embedded Core.
	WidgetCore() *Core
}

// Layout is the sizing and drawing capability of a widget.
type Layout interface {
	SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules
	SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints)
	Draw(cx *DrawCx)
}

// Widget is a Tile that can be laid out.
type Widget interface {
	Tile
	Layout
}

// Prober overrides the default hit test of a widget, for example to
// make a container's background ignore the pointer. Probe is called
// only for coordinates within the widget's Rect.
type Prober interface {
	Probe(c geom.Coord) (Id, bool)
}

// Translator is implemented by widgets whose children are drawn at an
// offset from their rectangles, such as scroll regions.
type Translator interface {
	// Translation returns the offset from the widget's coordinates to
	// its children's coordinates.
	Translation() geom.Offset
}

// Find returns the descendant of root with the given id.
func Find(root Tile, id Id) (Tile, bool) {
	w := root
	for w != nil {
		wid := w.Id()
		if wid == id {
			return w, true
		}
		key, ok := id.NextKeyAfter(wid)
		if !ok {
			return nil, false
		}
		w = ChildByKey(w, key)
	}
	return nil, false
}

// ChildByKey returns the child of w with the given key. Children are
// keyed by their index unless their ids say otherwise.
func ChildByKey(w Tile, key int) Tile {
	parent := w.Id()
	if c := w.Child(key); c != nil {
		if k, ok := c.Id().NextKeyAfter(parent); ok && k == key {
			return c
		}
	}
	for i, n := 0, w.NumChildren(); i < n; i++ {
		c := w.Child(i)
		if c == nil {
			continue
		}
		if k, ok := c.Id().NextKeyAfter(parent); ok && k == key {
			return c
		}
	}
	return nil
}

// ChildIndex returns the index of the child of w whose subtree holds
// id.
func ChildIndex(w Tile, id Id) (int, bool) {
	key, ok := id.NextKeyAfter(w.Id())
	if !ok {
		return 0, false
	}
	if c := w.Child(key); c != nil && c.Id().IsAncestorOf(id) {
		return key, true
	}
	for i, n := 0, w.NumChildren(); i < n; i++ {
		if c := w.Child(i); c != nil && c.Id().IsAncestorOf(id) {
			return i, true
		}
	}
	return 0, false
}

// FindID returns the id of the most specific widget under c, which is
// w itself when none of its children contains c. Later children are
// tested first, since they are drawn on top.
func FindID(w Tile, c geom.Coord) (Id, bool) {
	if !w.Id().IsValid() || IsHidden(w) || !w.Rect().Contains(c) {
		return "", false
	}
	if p, ok := w.(Prober); ok {
		return p.Probe(c)
	}
	return probeChildren(w, c)
}

// probeChildren is the default hit test: the deepest child under c,
// or w.
func probeChildren(w Tile, c geom.Coord) (Id, bool) {
	cc := c
	if t, ok := w.(Translator); ok {
		cc = c.Add(t.Translation())
	}
	for i := w.NumChildren() - 1; i >= 0; i-- {
		if child := w.Child(i); child != nil {
			if id, ok := FindID(child, cc); ok {
				return id, true
			}
		}
	}
	return w.Id(), true
}

// ProbeChildren is the default hit test, for Prober implementations
// that only change behaviour in part of their area.
func ProbeChildren(w Tile, c geom.Coord) (Id, bool) {
	return probeChildren(w, c)
}

// Hider is implemented by widgets that are part of the tree while not
// shown, such as closed pop-ups. A hidden widget and its descendants
// are not hit, drawn or navigated to.
type Hider interface {
	Hidden() bool
}

// IsHidden reports whether w implements Hider and is hidden.
func IsHidden(w Tile) bool {
	h, ok := w.(Hider)
	return ok && h.Hidden()
}

// Walk calls fn for w and its configured descendants in id order,
// skipping the subtree of any widget for which fn returns false.
func Walk(w Tile, fn func(t Tile) bool) {
	if !w.Id().IsValid() || !fn(w) {
		return
	}
	for i, n := 0, w.NumChildren(); i < n; i++ {
		if c := w.Child(i); c != nil {
			Walk(c, fn)
		}
	}
}

// Translation returns the offset applied to the coordinates of the
// widget with the given id by the scroll regions among its ancestors.
func Translation(root Tile, id Id) geom.Offset {
	var off geom.Offset
	w := root
	for w != nil && w.Id() != id {
		if t, ok := w.(Translator); ok {
			off = off.Add(t.Translation())
		}
		i, ok := ChildIndex(w, id)
		if !ok {
			break
		}
		w = w.Child(i)
	}
	return off
}
