// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"gioui.org/retained/geom"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
)

// Core holds the state every widget has. Embedding a Core provides the
// Tile methods of a widget without children.
type Core struct {
	id     Id
	rect   geom.Rect
	status status
}

// status is a widget's position in its lifecycle.
type status uint8

const (
	unconfigured status = iota
	configured
	sizedHoriz
	sizedVert
	placed
)

func (c *Core) Id() Id { return c.id }

func (c *Core) Rect() geom.Rect { return c.rect }

func (c *Core) NumChildren() int { return 0 }

func (c *Core) Child(i int) Tile { return nil }

func (c *Core) WidgetCore() *Core { return c }

// StoreRect records r as the widget's rectangle. SetRect
// implementations call it before placing any children.
func (c *Core) StoreRect(r geom.Rect) {
	c.rect = r
}

// IsConfigured reports whether the widget has been configured.
func (c *Core) IsConfigured() bool {
	return c.status >= configured
}

// Configure assigns w its id and marks it ready for layout. It is
// called by the configure pass before any of w's children.
func Configure(w Tile, id Id) {
	if !id.IsValid() {
		panic("widget: configure with invalid id")
	}
	c := w.WidgetCore()
	if c.id != id {
		c.rect = geom.Rect{}
	}
	c.id = id
	c.status = configured
}

// Unconfigure returns w to the unconfigured state, as for a widget
// removed from the tree.
func Unconfigure(w Tile) {
	c := w.WidgetCore()
	c.id = ""
	c.status = unconfigured
}

// SizeRules returns w's rules along axis. The horizontal axis may be
// sized at any time after configuration and restarts the layout
// sequence. The vertical axis requires the horizontal one first.
func SizeRules(w Widget, sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	c := w.WidgetCore()
	switch {
	case c.status < configured:
		panic(fmt.Sprintf("widget: SizeRules on unconfigured %T", w))
	case axis.Axis == layout.Vertical && c.status < sizedHoriz:
		panic(fmt.Sprintf("widget: vertical SizeRules before horizontal on %v", c.id))
	}
	rules := w.SizeRules(sz, axis)
	if axis.Axis == layout.Horizontal {
		c.status = sizedHoriz
	} else {
		c.status = sizedVert
	}
	return rules
}

// SetRect places w within r. Both axes must have been sized.
func SetRect(w Widget, sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	c := w.WidgetCore()
	if c.status < sizedVert {
		panic(fmt.Sprintf("widget: SetRect before SizeRules on %v", c.id))
	}
	w.SetRect(sz, r, hints)
	c.status = placed
}

// Draw draws w, which must have been placed.
func Draw(w Widget, cx *DrawCx) {
	c := w.WidgetCore()
	if c.status < placed {
		panic(fmt.Sprintf("widget: Draw before SetRect on %v", c.id))
	}
	w.Draw(cx)
}

// Resize runs the full layout sequence on w: horizontal and vertical
// rules, then SetRect on r. It returns the rules of both axes.
func Resize(w Widget, sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) (layout.SizeRules, layout.SizeRules) {
	h := SizeRules(w, sz, layout.HorizontalInfo())
	v := SizeRules(w, sz, layout.VerticalInfo(r.Size.W))
	SetRect(w, sz, r, hints)
	return h, v
}
