// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"gioui.org/retained/geom"
)

// Stretch is the priority of a widget for space beyond its minimum.
// Higher priorities are served first.
type Stretch uint8

const (
	// StretchNone never grows past the ideal size.
	StretchNone Stretch = iota
	StretchLow
	StretchHigh
	// StretchMaximize takes as much space as possible.
	StretchMaximize
)

// SizeRules are the size requirements of a widget along one axis.
//
// Ideal must not be less than Min; NewRules enforces that.
type SizeRules struct {
	Min     int
	Ideal   int
	Margins Margins
	Stretch Stretch
}

// EmptyRules is the identity of Appended.
var EmptyRules SizeRules

// NewRules returns rules with ideal raised to min if necessary.
func NewRules(min, ideal int, margins Margins, stretch Stretch) SizeRules {
	min = max(min, 0)
	return SizeRules{Min: min, Ideal: max(ideal, min), Margins: margins, Stretch: stretch}
}

// Fixed returns rules for exactly size pixels.
func Fixed(size int, margins Margins) SizeRules {
	size = max(size, 0)
	return SizeRules{Min: size, Ideal: size, Margins: margins}
}

// Empty returns rules of zero size with the given stretch.
func Empty(stretch Stretch) SizeRules {
	return SizeRules{Stretch: stretch}
}

// Extract returns fixed rules for the size of s along axis a.
func Extract(a Axis, s geom.Size, margins BoxMargins) SizeRules {
	return Fixed(a.Main(s), margins.Extract(a))
}

// MaxSize returns the largest size the rules may grow to without
// stretching: the ideal size, or unbounded if the rules stretch.
func (r SizeRules) MaxSize() int {
	if r.Stretch == StretchNone {
		return r.Ideal
	}
	return math.MaxInt
}

// WithStretch returns r with stretch s.
func (r SizeRules) WithStretch(s Stretch) SizeRules {
	r.Stretch = s
	return r
}

// WithMargins returns r with margins raised to at least m.
func (r SizeRules) WithMargins(m Margins) SizeRules {
	r.Margins = r.Margins.Max(m)
	return r
}

// Add returns the rules of a followed by b with no space between
// them. Sizes add up, the stretch is the larger of the two and the
// margins are the outer edges of the pair.
func (r SizeRules) Add(b SizeRules) SizeRules {
	return SizeRules{
		Min:     r.Min + b.Min,
		Ideal:   r.Ideal + b.Ideal,
		Margins: Margins{Pre: r.Margins.Pre, Post: b.Margins.Post},
		Stretch: max(r.Stretch, b.Stretch),
	}
}

// Appended returns the rules of r followed by b, reserving the larger
// of the adjoining margins between them. Order matters.
func (r SizeRules) Appended(b SizeRules) SizeRules {
	c := int(max(r.Margins.Post, b.Margins.Pre))
	return SizeRules{
		Min:     r.Min + b.Min + c,
		Ideal:   r.Ideal + b.Ideal + c,
		Margins: Margins{Pre: r.Margins.Pre, Post: b.Margins.Post},
		Stretch: max(r.Stretch, b.Stretch),
	}
}

// Max returns the rules satisfying both r and b when laid over each
// other: the componentwise maximum.
func (r SizeRules) Max(b SizeRules) SizeRules {
	return SizeRules{
		Min:     max(r.Min, b.Min),
		Ideal:   max(r.Ideal, b.Ideal),
		Margins: r.Margins.Max(b.Margins),
		Stretch: max(r.Stretch, b.Stretch),
	}
}

// SurroundedBy returns r placed inside frame. With inner margins the
// space for r's margins is reserved inside the frame, otherwise they
// merge with the frame's.
func (r SizeRules) SurroundedBy(frame SizeRules, inner bool) SizeRules {
	c, m := 0, frame.Margins
	if inner {
		c = r.Margins.Sum()
	} else {
		m = r.Margins.Max(frame.Margins)
	}
	return SizeRules{
		Min:     r.Min + frame.Min + c,
		Ideal:   r.Ideal + frame.Ideal + c,
		Margins: m,
		Stretch: max(r.Stretch, frame.Stretch),
	}
}

// MultiplyWithMargin scales r to n repetitions of itself separated by
// its own margins: minFactor repetitions for the minimum and
// idealFactor for the ideal.
func (r SizeRules) MultiplyWithMargin(minFactor, idealFactor int) SizeRules {
	if minFactor <= 0 || idealFactor <= 0 {
		panic("layout: non-positive factor")
	}
	m := r.Margins.Sum()
	r.Min = minFactor*r.Min + (minFactor-1)*m
	r.Ideal = max(idealFactor*r.Ideal+(idealFactor-1)*m, r.Min)
	return r
}

// SubAdd returns r-x+y, joining two overlapping spans by removing
// their common part x. Sizes are clamped to zero.
func (r SizeRules) SubAdd(x, y SizeRules) SizeRules {
	r.Min = max(r.Min-x.Min+y.Min, 0)
	r.Ideal = max(r.Ideal-x.Ideal+y.Ideal, r.Min)
	r.Margins.Post = y.Margins.Post
	r.Stretch = max(r.Stretch, y.Stretch)
	return r
}

// Sum returns the rules of rules placed in sequence, joined with
// Appended.
func Sum(rules []SizeRules) SizeRules {
	if len(rules) == 0 {
		return EmptyRules
	}
	total := rules[0]
	for _, r := range rules[1:] {
		total = total.Appended(r)
	}
	return total
}

// MinSum is Sum for the minimum only; the ideal equals the minimum.
func MinSum(rules []SizeRules) SizeRules {
	if len(rules) == 0 {
		return EmptyRules
	}
	total := rules[0]
	for _, r := range rules[1:] {
		total.Min += int(max(total.Margins.Post, r.Margins.Pre)) + r.Min
		total.Margins.Post = r.Margins.Post
	}
	total.Ideal = total.Min
	return total
}

// interiorMargins returns the space reserved between rules placed in
// sequence.
func interiorMargins(rules []SizeRules) int {
	sum := 0
	for i := 1; i < len(rules); i++ {
		sum += int(max(rules[i-1].Margins.Post, rules[i].Margins.Pre))
	}
	return sum
}

// DistributeStretchOverBy ensures at least one of rules stretches as
// much as r, raising the entries with the highest score.
func (r SizeRules) DistributeStretchOverBy(rules []SizeRules, scores []int) {
	if len(rules) != len(scores) {
		panic("layout: rules and scores differ in length")
	}
	highest := math.MinInt
	for i := range rules {
		if rules[i].Stretch >= r.Stretch {
			return
		}
		highest = max(highest, scores[i])
	}
	for i := range rules {
		if scores[i] == highest {
			rules[i].Stretch = r.Stretch
		}
	}
}

// DistributeSpanOver grows rules so that together they satisfy r,
// the rules of a cell spanning all of them. The outer margins are
// raised to r's and any shortfall is shared by the most stretchy
// entries, with the remainder going to the first of them.
func (r SizeRules) DistributeSpanOver(rules []SizeRules) {
	n := len(rules)
	if n == 0 {
		panic("layout: empty span")
	}
	sum := Sum(rules)
	rules[0].Margins.Pre = max(rules[0].Margins.Pre, r.Margins.Pre)
	rules[n-1].Margins.Post = max(rules[n-1].Margins.Post, r.Margins.Post)

	excessMin := max(r.Min-sum.Min, 0)
	excessIdeal := max(r.Ideal-sum.Ideal, 0)
	if excessMin == 0 && excessIdeal == 0 {
		return
	}
	count := 0
	for _, t := range rules {
		if t.Stretch == sum.Stretch {
			count++
		}
	}
	minPer, idealPer := excessMin/count, excessIdeal/count
	extraMin, extraIdeal := excessMin-count*minPer, excessIdeal-count*idealPer
	for i := range rules {
		t := &rules[i]
		if t.Stretch != sum.Stretch {
			continue
		}
		t.Min += minPer
		t.Ideal += idealPer
		if extraMin > 0 {
			t.Min++
			extraMin--
		}
		if extraIdeal > 0 {
			t.Ideal++
			extraIdeal--
		}
		t.Ideal = max(t.Ideal, t.Min)
		if sum.Stretch < r.Stretch {
			t.Stretch = r.Stretch
		}
	}
}

func (s Stretch) String() string {
	switch s {
	case StretchNone:
		return "None"
	case StretchLow:
		return "Low"
	case StretchHigh:
		return "High"
	case StretchMaximize:
		return "Maximize"
	default:
		panic("unreachable")
	}
}

func (r SizeRules) String() string {
	return fmt.Sprintf("SizeRules{%d..%d, m=(%d,%d), %v}",
		r.Min, r.Ideal, r.Margins.Pre, r.Margins.Post, r.Stretch)
}
