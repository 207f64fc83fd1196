// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math/rand"
	"testing"
)

func randRules(r *rand.Rand) SizeRules {
	min := r.Intn(100)
	return SizeRules{
		Min:     min,
		Ideal:   min + r.Intn(100),
		Margins: Margins{Pre: uint16(r.Intn(8)), Post: uint16(r.Intn(8))},
		Stretch: Stretch(r.Intn(4)),
	}
}

func TestSumMaxLaws(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a, b := randRules(r), randRules(r)
		s := a.Add(b)
		if s.Min != a.Min+b.Min || s.Ideal != a.Ideal+b.Ideal {
			t.Fatalf("%v + %v = %v", a, b, s)
		}
		if s.Stretch != max(a.Stretch, b.Stretch) {
			t.Fatalf("%v + %v: stretch %v", a, b, s.Stretch)
		}
		if s.Margins != (Margins{Pre: a.Margins.Pre, Post: b.Margins.Post}) {
			t.Fatalf("%v + %v: margins %v", a, b, s.Margins)
		}
		m := a.Max(b)
		if m.Min != max(a.Min, b.Min) || m.Ideal != max(a.Ideal, b.Ideal) {
			t.Fatalf("%v max %v = %v", a, b, m)
		}
		if m.Stretch != max(a.Stretch, b.Stretch) {
			t.Fatalf("%v max %v: stretch %v", a, b, m.Stretch)
		}
		if m.Min > m.Ideal || s.Min > s.Ideal {
			t.Fatalf("min exceeds ideal: %v, %v", s, m)
		}
	}
}

func TestAppended(t *testing.T) {
	a := NewRules(10, 20, Margins{Pre: 1, Post: 4}, StretchNone)
	b := NewRules(5, 5, Margins{Pre: 6, Post: 2}, StretchLow)
	got := a.Appended(b)
	want := SizeRules{Min: 21, Ideal: 31, Margins: Margins{Pre: 1, Post: 2}, Stretch: StretchLow}
	if got != want {
		t.Errorf("Appended = %v, want %v", got, want)
	}
	if got := Sum([]SizeRules{a, b}); got != want {
		t.Errorf("Sum = %v, want %v", got, want)
	}
	if got := MinSum([]SizeRules{a, b}); got.Min != 21 || got.Ideal != 21 {
		t.Errorf("MinSum = %v", got)
	}
}

func TestNewRulesClampsIdeal(t *testing.T) {
	r := NewRules(10, 3, Margins{}, StretchNone)
	if r.Ideal != 10 {
		t.Errorf("ideal = %d, want 10", r.Ideal)
	}
	if r.MaxSize() != 10 {
		t.Errorf("MaxSize = %d, want 10", r.MaxSize())
	}
}

func TestSurroundedBy(t *testing.T) {
	content := NewRules(10, 20, Margins{Pre: 2, Post: 3}, StretchHigh)
	frame := NewRules(4, 4, Margins{Pre: 1, Post: 1}, StretchNone)
	if got, want := content.SurroundedBy(frame, true), (SizeRules{Min: 19, Ideal: 29, Margins: Margins{1, 1}, Stretch: StretchHigh}); got != want {
		t.Errorf("inner: got %v, want %v", got, want)
	}
	if got, want := content.SurroundedBy(frame, false), (SizeRules{Min: 14, Ideal: 24, Margins: Margins{2, 3}, Stretch: StretchHigh}); got != want {
		t.Errorf("outer: got %v, want %v", got, want)
	}
}

func TestMultiplyWithMargin(t *testing.T) {
	r := NewRules(10, 12, Margins{Pre: 1, Post: 1}, StretchNone)
	got := r.MultiplyWithMargin(2, 5)
	if got.Min != 22 || got.Ideal != 68 {
		t.Errorf("MultiplyWithMargin = %v", got)
	}
}

func TestDistributeSpanOver(t *testing.T) {
	tracks := []SizeRules{Fixed(10, Margins{}), Fixed(10, Margins{})}
	span := NewRules(51, 60, Margins{Pre: 3}, StretchLow)
	span.DistributeSpanOver(tracks)
	if tracks[0].Min+tracks[1].Min != 51 {
		t.Errorf("mins %d+%d, want 51", tracks[0].Min, tracks[1].Min)
	}
	if tracks[0].Ideal+tracks[1].Ideal != 60 {
		t.Errorf("ideals %d+%d, want 60", tracks[0].Ideal, tracks[1].Ideal)
	}
	if tracks[0].Min != 26 {
		t.Errorf("remainder not given to first track: %v", tracks)
	}
	if tracks[0].Margins.Pre != 3 {
		t.Errorf("outer margin not raised: %v", tracks[0])
	}
	for _, tr := range tracks {
		if tr.Stretch != StretchLow {
			t.Errorf("stretch not raised: %v", tr)
		}
	}
}

func TestDistributeStretchOverBy(t *testing.T) {
	rules := []SizeRules{Empty(StretchNone), Empty(StretchNone), Empty(StretchNone)}
	Empty(StretchHigh).DistributeStretchOverBy(rules, []int{10, 110, 110})
	want := []Stretch{StretchNone, StretchHigh, StretchHigh}
	for i, r := range rules {
		if r.Stretch != want[i] {
			t.Errorf("rules[%d].Stretch = %v, want %v", i, r.Stretch, want[i])
		}
	}
}
