// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"testing"
	"time"

	"gioui.org/retained/config"
	"gioui.org/retained/layout"
)

func newTheme(t *testing.T) *Theme {
	t.Helper()
	th, err := New(config.Default().Theme)
	if err != nil {
		t.Fatal(err)
	}
	return th
}

func TestTextRules(t *testing.T) {
	sz := newTheme(t).SizeCx()
	h := sz.TextRules("hello world", layout.HorizontalInfo(), false, false)
	if h.Min != h.Ideal || h.Min <= 0 {
		t.Errorf("unwrapped rules = %v", h)
	}
	w := sz.TextRules("hello world", layout.HorizontalInfo(), true, false)
	if w.Ideal != h.Ideal || w.Min >= w.Ideal || w.Stretch != layout.StretchLow {
		t.Errorf("wrapped rules = %v", w)
	}
	one := sz.TextRules("hello world", layout.VerticalInfo(h.Ideal), true, false)
	two := sz.TextRules("hello world", layout.VerticalInfo(w.Min), true, false)
	if one.Min != sz.LineHeight() || two.Min != 2*sz.LineHeight() {
		t.Errorf("vertical rules %v and %v, line height %d", one, two, sz.LineHeight())
	}
}

func TestWrapLines(t *testing.T) {
	sz := newTheme(t).SizeCx()
	width := sz.TextWidth("aaa bbb", false)
	got := sz.WrapLines("aaa bbb ccc\n\nddd", width, false)
	want := []string{"aaa bbb", "ccc", "", "ddd"}
	if len(got) != len(want) {
		t.Fatalf("WrapLines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMonoWideRunes(t *testing.T) {
	sz := newTheme(t).SizeCx()
	narrow := sz.TextWidth("ab", true)
	wide := sz.TextWidth("日本", true)
	if wide != 2*narrow {
		t.Errorf("wide runes measure %d, want %d", wide, 2*narrow)
	}
}

func TestScaleFactor(t *testing.T) {
	th := newTheme(t)
	before := th.SizeCx().LineHeight()
	if err := th.SetScaleFactor(2); err != nil {
		t.Fatal(err)
	}
	if after := th.SizeCx().LineHeight(); after < 2*before-2 {
		t.Errorf("line height %d at scale 2, was %d", after, before)
	}
	if th.SizeCx().Dp(10) != 20 {
		t.Errorf("Dp(10) = %d at scale 2", th.SizeCx().Dp(10))
	}
	if err := th.SetScaleFactor(0); err == nil {
		t.Error("zero scale factor accepted")
	}
}

func TestHoverBlend(t *testing.T) {
	th := newTheme(t)
	d := th.Transition()
	if got := th.HoverBlend(d / 2); got < 0.49 || got > 0.51 {
		t.Errorf("HoverBlend(half) = %v", got)
	}
	if th.HoverBlend(time.Hour) != 1 || th.HoverBlend(0) != 0 {
		t.Error("HoverBlend not clamped")
	}
}
