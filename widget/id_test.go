// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"
)

func TestIdString(t *testing.T) {
	tests := []struct {
		id   Id
		want string
	}{
		{"", "#INVALID"},
		{Root, "#"},
		{Root.MakeChild(0), "#0"},
		{Root.MakeChild(0).MakeChild(3).MakeChild(1), "#0.3.1"},
		{Root.MakeChild(255).MakeChild(256), "#255.256"},
		{Root.MakeChild(70000), "#70000"},
	}
	for _, tc := range tests {
		if got := tc.id.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestIdParent(t *testing.T) {
	a := Root.MakeChild(2)
	b := a.MakeChild(1000)
	if p, ok := b.Parent(); !ok || p != a {
		t.Errorf("%v.Parent() = %v, %v", b, p, ok)
	}
	if p, ok := a.Parent(); !ok || p != Root {
		t.Errorf("%v.Parent() = %v, %v", a, p, ok)
	}
	if _, ok := Root.Parent(); ok {
		t.Error("root has a parent")
	}
	if k, ok := b.Key(); !ok || k != 1000 {
		t.Errorf("%v.Key() = %d, %v", b, k, ok)
	}
	if d := b.Depth(); d != 2 {
		t.Errorf("%v.Depth() = %d", b, d)
	}
}

func TestIdNextKeyAfter(t *testing.T) {
	a := Root.MakeChild(5)
	b := a.MakeChild(300).MakeChild(7)
	if k, ok := b.NextKeyAfter(Root); !ok || k != 5 {
		t.Errorf("NextKeyAfter(root) = %d, %v", k, ok)
	}
	if k, ok := b.NextKeyAfter(a); !ok || k != 300 {
		t.Errorf("NextKeyAfter(a) = %d, %v", k, ok)
	}
	if _, ok := a.NextKeyAfter(a); ok {
		t.Error("NextKeyAfter(self) succeeded")
	}
	if _, ok := a.NextKeyAfter(Root.MakeChild(6)); ok {
		t.Error("NextKeyAfter(non-ancestor) succeeded")
	}
	if _, ok := Root.MakeChild(1).NextKeyAfter(""); ok {
		t.Error("NextKeyAfter(invalid) succeeded")
	}
}

func TestIdAncestor(t *testing.T) {
	a := Root.MakeChild(1)
	b := a.MakeChild(1)
	// The encoding of key 1 must not look like a prefix of key 256.
	c := Root.MakeChild(256)
	tests := []struct {
		x, y Id
		want bool
	}{
		{Root, b, true},
		{a, b, true},
		{b, b, true},
		{b, a, false},
		{a, c, false},
		{c, a, false},
		{"", a, false},
	}
	for _, tc := range tests {
		if got := tc.x.IsAncestorOf(tc.y); got != tc.want {
			t.Errorf("%v.IsAncestorOf(%v) = %v", tc.x, tc.y, got)
		}
	}
}

// TestIdOrder checks the order of ids against the order of paths
// compared key by key, over a tree with multi-byte keys.
func TestIdOrder(t *testing.T) {
	keys := []int{0, 1, 2, 255, 256, 300, 65535, 65536}
	type entry struct {
		id   Id
		path []int
	}
	var all []entry
	var build func(id Id, path []int, depth int)
	build = func(id Id, path []int, depth int) {
		all = append(all, entry{id, path})
		if depth == 3 {
			return
		}
		for _, k := range keys {
			p := append(append([]int(nil), path...), k)
			build(id.MakeChild(k), p, depth+1)
		}
	}
	build(Root, nil, 0)
	cmpPath := func(a, b []int) int {
		for i := 0; i < len(a) && i < len(b); i++ {
			if a[i] != b[i] {
				if a[i] < b[i] {
					return -1
				}
				return 1
			}
		}
		return len(a) - len(b)
	}
	sign := func(v int) int {
		switch {
		case v < 0:
			return -1
		case v > 0:
			return 1
		}
		return 0
	}
	for _, x := range all {
		for _, y := range all {
			if got, want := x.id.Compare(y.id), sign(cmpPath(x.path, y.path)); got != want {
				t.Fatalf("Compare(%v, %v) = %d, want %d", x.id, y.id, got, want)
			}
		}
	}
}

func TestMakeChildPanics(t *testing.T) {
	for _, fn := range []func(){
		func() { Root.MakeChild(-1) },
		func() { Id("").MakeChild(0) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("no panic")
				}
			}()
			fn()
		}()
	}
}
