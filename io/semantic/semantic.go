// SPDX-License-Identifier: Unlicense OR MIT

// Package semantic exports the widget tree for accessibility tools.
//
// Widgets describe themselves by implementing Describer. Tree walks
// the configured widgets and builds a tree of the described ones;
// children of an undescribed widget are claimed by the nearest
// described ancestor.
package semantic

import (
	"fmt"

	"gioui.org/retained/geom"
	"gioui.org/retained/widget"
)

// Role is the kind of a user interface component.
type Role uint8

const (
	Unknown Role = iota
	Window
	Label
	Button
	MenuButton
	Menu
	MenuItem
	List
	Grid
	ScrollRegion
	Image
)

// Gestures is a bit-set of gestures a component supports.
type Gestures uint8

const (
	ClickGesture Gestures = 1 << iota
	ScrollGesture
)

// Desc describes a component.
type Desc struct {
	Role        Role
	Label       string
	Description string
	// LabelledBy is the widget holding the label of the component,
	// if not the component itself.
	LabelledBy widget.Id
	Gestures   Gestures
}

// Describer is implemented by widgets exported to accessibility tools.
type Describer interface {
	Describe() Desc
}

// InputState is the input state needed to export component state.
type InputState interface {
	IsDisabled(id widget.Id) bool
	HasNavFocus(id widget.Id) bool
	HasSelFocus(id widget.Id) bool
}

// Node is a described component.
type Node struct {
	Id widget.Id
	Desc
	// Bounds is the component's rectangle in window coordinates.
	Bounds   geom.Rect
	Disabled bool
	Focused  bool
	Selected bool
	Children []Node
}

// Tree returns the described components under root. Unconfigured and
// hidden widgets are skipped along with their descendants. st may be
// nil.
func Tree(root widget.Tile, st InputState) []Node {
	return appendNodes(nil, root, geom.Offset{}, st)
}

// appendNodes appends the nodes of w, or the nodes of its described
// descendants if w is not described. off is the translation from
// window coordinates to w's parent's coordinates.
func appendNodes(nodes []Node, w widget.Tile, off geom.Offset, st InputState) []Node {
	if !w.Id().IsValid() || widget.IsHidden(w) {
		return nodes
	}
	coff := off
	if t, ok := w.(widget.Translator); ok {
		coff = coff.Add(t.Translation())
	}
	var children []Node
	for i, n := 0, w.NumChildren(); i < n; i++ {
		if c := w.Child(i); c != nil {
			children = appendNodes(children, c, coff, st)
		}
	}
	d, ok := w.(Describer)
	if !ok {
		return append(nodes, children...)
	}
	r := w.Rect()
	r.Pos = r.Pos.Add(off.Neg())
	n := Node{
		Id:       w.Id(),
		Desc:     d.Describe(),
		Bounds:   r,
		Children: children,
	}
	if st != nil {
		id := w.Id()
		n.Disabled = st.IsDisabled(id)
		n.Focused = st.HasNavFocus(id)
		n.Selected = st.HasSelFocus(id)
	}
	return append(nodes, n)
}

// Find returns the node with the given id in nodes or their children.
func Find(nodes []Node, id widget.Id) (Node, bool) {
	for _, n := range nodes {
		if n.Id == id {
			return n, true
		}
		if n.Id.IsAncestorOf(id) {
			if c, ok := Find(n.Children, id); ok {
				return c, true
			}
		}
	}
	return Node{}, false
}

// LabelOf returns the label of n, following LabelledBy within nodes.
func LabelOf(nodes []Node, n Node) string {
	if n.Label != "" || !n.LabelledBy.IsValid() {
		return n.Label
	}
	if l, ok := Find(nodes, n.LabelledBy); ok {
		return l.Label
	}
	return ""
}

func (r Role) String() string {
	switch r {
	case Unknown:
		return "Unknown"
	case Window:
		return "Window"
	case Label:
		return "Label"
	case Button:
		return "Button"
	case MenuButton:
		return "MenuButton"
	case Menu:
		return "Menu"
	case MenuItem:
		return "MenuItem"
	case List:
		return "List"
	case Grid:
		return "Grid"
	case ScrollRegion:
		return "ScrollRegion"
	case Image:
		return "Image"
	default:
		panic("invalid Role")
	}
}

func (n Node) String() string {
	return fmt.Sprintf("%v %v %q %v", n.Id, n.Role, n.Label, n.Bounds)
}
