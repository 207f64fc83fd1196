// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"gioui.org/retained/geom"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
)

type node struct {
	Core
	children []*node
	size     int
	offset   geom.Offset
}

func (n *node) NumChildren() int { return len(n.children) }

func (n *node) Child(i int) Tile {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *node) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	return layout.Fixed(n.size, layout.Margins{})
}

func (n *node) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	n.StoreRect(r)
}

func (n *node) Draw(cx *DrawCx) {}

func (n *node) Translation() geom.Offset { return n.offset }

func configureTree(w Tile, id Id) {
	Configure(w, id)
	for i := 0; i < w.NumChildren(); i++ {
		configureTree(w.Child(i), id.MakeChild(i))
	}
}

// testTree returns a root covering (0,0)-(100,100) with two children
// side by side, the second holding a nested child.
func testTree() *node {
	leaf := &node{}
	root := &node{children: []*node{{}, {children: []*node{leaf}}}}
	configureTree(root, Root)
	root.StoreRect(geom.R(0, 0, 100, 100))
	root.children[0].StoreRect(geom.R(0, 0, 50, 100))
	root.children[1].StoreRect(geom.R(50, 0, 50, 100))
	leaf.StoreRect(geom.R(60, 10, 20, 20))
	return root
}

func TestFindID(t *testing.T) {
	root := testTree()
	tests := []struct {
		c    geom.Coord
		want Id
		ok   bool
	}{
		{geom.Pt(10, 10), Root.MakeChild(0), true},
		{geom.Pt(55, 50), Root.MakeChild(1), true},
		{geom.Pt(65, 15), Root.MakeChild(1).MakeChild(0), true},
		{geom.Pt(150, 15), "", false},
	}
	for _, tc := range tests {
		id, ok := FindID(root, tc.c)
		if id != tc.want || ok != tc.ok {
			t.Errorf("FindID(%v) = %v, %v; want %v, %v", tc.c, id, ok, tc.want, tc.ok)
		}
	}
}

func TestFindIDTranslated(t *testing.T) {
	root := testTree()
	leaf := Root.MakeChild(1).MakeChild(0)
	root.children[1].children[0].StoreRect(geom.R(60, 60, 20, 20))
	if id, _ := FindID(root, geom.Pt(65, 15)); id != Root.MakeChild(1) {
		t.Errorf("FindID before scrolling = %v", id)
	}
	// Scrolled by 50: the leaf at (60,60) shows at (60,10).
	root.children[1].offset = geom.Offset{Y: 50}
	if id, _ := FindID(root, geom.Pt(65, 15)); id != leaf {
		t.Errorf("FindID on scrolled leaf = %v", id)
	}
	if off := Translation(root, leaf); off != (geom.Offset{Y: 50}) {
		t.Errorf("Translation = %v", off)
	}
}

func TestFind(t *testing.T) {
	root := testTree()
	leaf := Root.MakeChild(1).MakeChild(0)
	w, ok := Find(root, leaf)
	if !ok || w != root.children[1].children[0] {
		t.Errorf("Find(%v) = %v, %v", leaf, w, ok)
	}
	if _, ok := Find(root, Root.MakeChild(2)); ok {
		t.Error("found missing child")
	}
	if i, ok := ChildIndex(root, leaf); !ok || i != 1 {
		t.Errorf("ChildIndex = %d, %v", i, ok)
	}
}

func TestWalkOrder(t *testing.T) {
	root := testTree()
	var ids []Id
	Walk(root, func(t Tile) bool {
		ids = append(ids, t.Id())
		return true
	})
	if len(ids) != 4 {
		t.Fatalf("walked %d widgets", len(ids))
	}
	for i := 1; i < len(ids); i++ {
		if !ids[i-1].Less(ids[i]) {
			t.Errorf("walk order: %v before %v", ids[i-1], ids[i])
		}
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: no panic", name)
		}
	}()
	fn()
}

func TestLifecycle(t *testing.T) {
	var sz theme.SizeCx
	n := &node{size: 10}
	expectPanic(t, "unconfigured", func() { SizeRules(n, sz, layout.HorizontalInfo()) })
	Configure(n, Root)
	expectPanic(t, "vertical first", func() { SizeRules(n, sz, layout.VerticalInfo(10)) })
	SizeRules(n, sz, layout.HorizontalInfo())
	expectPanic(t, "set before vertical", func() { SetRect(n, sz, geom.R(0, 0, 10, 10), layout.AlignHints{}) })
	expectPanic(t, "draw before set", func() { Draw(n, nil) })
	SizeRules(n, sz, layout.VerticalInfo(10))
	SetRect(n, sz, geom.R(0, 0, 10, 10), layout.AlignHints{})
	Draw(n, nil)

	// Sizing restarts from the horizontal axis.
	SizeRules(n, sz, layout.HorizontalInfo())
	expectPanic(t, "draw after restart", func() { Draw(n, nil) })
	h, v := Resize(n, sz, geom.R(0, 0, 10, 10), layout.AlignHints{})
	if h.Min != 10 || v.Min != 10 {
		t.Errorf("Resize rules %v, %v", h, v)
	}
	Draw(n, nil)
}

type hiddenNode struct {
	node
	hidden bool
}

func (n *hiddenNode) Hidden() bool { return n.hidden }

func TestFindIDHidden(t *testing.T) {
	h := &hiddenNode{hidden: true}
	root := &node{}
	configureTree(root, Root)
	Configure(h, Root.MakeChild(0))
	root.StoreRect(geom.R(0, 0, 100, 100))
	h.StoreRect(geom.R(0, 0, 50, 50))
	if id, _ := FindID(h, geom.Pt(10, 10)); id != "" {
		t.Errorf("hidden widget hit as %v", id)
	}
	h.hidden = false
	if id, _ := FindID(h, geom.Pt(10, 10)); id != Root.MakeChild(0) {
		t.Errorf("shown widget hit as %v", id)
	}
}
