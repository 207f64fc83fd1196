// SPDX-License-Identifier: Unlicense OR MIT

package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := R(10, 20, 30, 40)
	for _, tc := range []struct {
		c    Coord
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(39, 59), true},
		{Pt(40, 20), false},
		{Pt(10, 60), false},
		{Pt(9, 30), false},
	} {
		if got := r.Contains(tc.c); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tc.c, got, tc.want)
		}
	}
}

func TestRectIntersectUnion(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(5, 5, 10, 10)
	if got, want := a.Intersect(b), R(5, 5, 5, 5); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	if got, want := a.Union(b), R(0, 0, 15, 15); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
	if got := a.Intersect(R(20, 20, 5, 5)); !got.Empty() {
		t.Errorf("disjoint Intersect = %v, want empty", got)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %v, want %v", got, b)
	}
}

func TestShrink(t *testing.T) {
	if got, want := R(0, 0, 10, 4).Shrink(3), R(2, 2, 6, 0); got != want {
		t.Errorf("Shrink = %v, want %v", got, want)
	}
}
