// SPDX-License-Identifier: Unlicense OR MIT

package semantic_test

import (
	"testing"

	"gioui.org/retained/geom"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/widget"
)

type tile struct {
	widget.Core
	kids   []widget.Tile
	offset geom.Offset
	hidden bool
}

func (t *tile) NumChildren() int { return len(t.kids) }

func (t *tile) Child(i int) widget.Tile {
	if i < 0 || i >= len(t.kids) {
		return nil
	}
	return t.kids[i]
}

func (t *tile) Translation() geom.Offset { return t.offset }

func (t *tile) Hidden() bool { return t.hidden }

type described struct {
	*tile
	desc semantic.Desc
}

func (d *described) Describe() semantic.Desc { return d.desc }

func describe(role semantic.Role, label string, kids ...widget.Tile) *described {
	return &described{tile: &tile{kids: kids}, desc: semantic.Desc{Role: role, Label: label}}
}

type state struct {
	focus widget.Id
}

func (s state) IsDisabled(id widget.Id) bool  { return false }
func (s state) HasNavFocus(id widget.Id) bool { return id == s.focus }
func (s state) HasSelFocus(id widget.Id) bool { return false }

func place(w widget.Tile, id widget.Id, r geom.Rect) {
	widget.Configure(w, id)
	w.WidgetCore().StoreRect(r)
}

func TestTree(t *testing.T) {
	label := describe(semantic.Label, "Name")
	button := describe(semantic.Button, "")
	button.desc.Gestures = semantic.ClickGesture
	// The scroll region is not described; the window claims its
	// children.
	scroll := &tile{kids: []widget.Tile{label, button}, offset: geom.Offset{Y: 40}}
	menu := describe(semantic.Menu, "")
	menu.hidden = true
	image := describe(semantic.Image, "")
	win := describe(semantic.Window, "Gallery", scroll, menu, image)

	place(win, widget.Root, geom.R(0, 0, 200, 200))
	place(scroll, widget.Root.MakeChild(0), geom.R(0, 0, 200, 100))
	place(label, widget.Root.MakeChild(0).MakeChild(0), geom.R(0, 50, 100, 20))
	place(button, widget.Root.MakeChild(0).MakeChild(1), geom.R(100, 50, 100, 20))
	place(menu, widget.Root.MakeChild(1), geom.R(0, 100, 50, 50))
	button.desc.LabelledBy = label.Id()

	nodes := semantic.Tree(win, state{focus: button.Id()})
	if len(nodes) != 1 || nodes[0].Role != semantic.Window {
		t.Fatalf("roots = %v", nodes)
	}
	children := nodes[0].Children
	if len(children) != 2 {
		t.Fatalf("window children = %v", children)
	}
	l, b := children[0], children[1]
	if l.Role != semantic.Label || l.Bounds != geom.R(0, 10, 100, 20) {
		t.Errorf("label node %v", l)
	}
	if !b.Focused || b.Gestures != semantic.ClickGesture {
		t.Errorf("button node %+v", b)
	}
	if got := semantic.LabelOf(nodes, b); got != "Name" {
		t.Errorf("button label %q, want %q", got, "Name")
	}
	if n, ok := semantic.Find(nodes, button.Id()); !ok || n.Id != button.Id() {
		t.Errorf("Find(button) = %v, %v", n, ok)
	}
	if _, ok := semantic.Find(nodes, menu.Id()); ok {
		t.Error("hidden widget exported")
	}
}

func TestRoleString(t *testing.T) {
	if got := semantic.MenuItem.String(); got != "MenuItem" {
		t.Errorf("MenuItem.String() = %q", got)
	}
}
