// SPDX-License-Identifier: Unlicense OR MIT

package layout

// SolveSeq assigns each of rules a width, storing the result in out.
// The widths sum to target, which must exclude the margins between
// entries. len(out) must equal len(rules).
//
// Every entry first receives its minimum. The remaining space brings
// entries up to their ideal sizes, serving stretch tiers from
// StretchMaximize down to StretchNone; a tier is saturated before
// the next one receives anything, and space within a tier is shared
// in proportion to each entry's ideal-min range. Space beyond every
// ideal is shared evenly by the entries of the highest stretch tier
// present, so a StretchNone entry only exceeds its ideal when no
// entry stretches.
//
// A target below the sum of minimums is a degenerate case: the
// shortfall is taken from the widest entries first.
func SolveSeq(out []int, rules []SizeRules, target int) {
	if len(out) != len(rules) {
		panic("layout: SolveSeq: output and rules differ in length")
	}
	if len(rules) == 0 {
		return
	}
	target = max(target, 0)
	sumMin, sumIdeal := 0, 0
	for i, r := range rules {
		out[i] = max(r.Min, 0)
		sumMin += out[i]
		sumIdeal += max(r.Ideal, out[i])
	}
	switch {
	case target <= sumMin:
		shrink(out, sumMin-target)
	case target < sumIdeal:
		fillTiers(out, rules, target-sumMin)
	default:
		for i, r := range rules {
			out[i] = max(r.Ideal, out[i])
		}
		shareExcess(out, rules, target-sumIdeal)
	}
}

// fillTiers grows out towards the ideal sizes by slack, which must be
// less than the total ideal-min range.
func fillTiers(out []int, rules []SizeRules, slack int) {
	for tier := StretchMaximize; ; tier-- {
		need := 0
		for i, r := range rules {
			if r.Stretch == tier {
				need += r.Ideal - out[i]
			}
		}
		if need <= slack {
			for i, r := range rules {
				if r.Stretch == tier && r.Ideal > out[i] {
					out[i] = r.Ideal
				}
			}
			slack -= need
		} else {
			shareByRange(out, rules, tier, slack)
			return
		}
		if tier == StretchNone || slack == 0 {
			return
		}
	}
}

// shareByRange distributes slack over the entries of tier in
// proportion to their ideal-min range. Rounding uses the largest
// remainder method, ties going to the earlier entry.
func shareByRange(out []int, rules []SizeRules, tier Stretch, slack int) {
	total := int64(0)
	for i, r := range rules {
		if r.Stretch == tier {
			total += int64(r.Ideal - out[i])
		}
	}
	if total == 0 {
		return
	}
	type remainder struct {
		index int
		rem   int64
	}
	var rems []remainder
	given := 0
	for i, r := range rules {
		if r.Stretch != tier {
			continue
		}
		span := int64(r.Ideal - out[i])
		if span <= 0 {
			continue
		}
		q := int64(slack) * span
		share := int(q / total)
		out[i] += share
		given += share
		rems = append(rems, remainder{index: i, rem: q % total})
	}
	for left := slack - given; left > 0; left-- {
		best := 0
		for j := range rems {
			if rems[j].rem > rems[best].rem {
				best = j
			}
		}
		out[rems[best].index]++
		rems[best].rem = -1
	}
}

// shareExcess distributes excess evenly over the entries in the
// highest stretch tier present. Leftover pixels go to the last of
// them.
func shareExcess(out []int, rules []SizeRules, excess int) {
	if excess == 0 {
		return
	}
	top := StretchNone
	for _, r := range rules {
		top = max(top, r.Stretch)
	}
	count := 0
	for _, r := range rules {
		if r.Stretch == top {
			count++
		}
	}
	per, extra := excess/count, excess%count
	seen := 0
	for i, r := range rules {
		if r.Stretch != top {
			continue
		}
		out[i] += per
		if seen >= count-extra {
			out[i]++
		}
		seen++
	}
}

// shrink removes deficit from out, levelling the widest entries down
// first.
func shrink(out []int, deficit int) {
	for deficit > 0 {
		widest, count, next := 0, 0, 0
		for _, w := range out {
			switch {
			case w > widest:
				next = widest
				widest, count = w, 1
			case w == widest:
				count++
			case w > next:
				next = w
			}
		}
		if widest == 0 {
			return
		}
		if step := widest - next; step*count <= deficit {
			for i, w := range out {
				if w == widest {
					out[i] = next
				}
			}
			deficit -= step * count
			continue
		}
		per, extra := deficit/count, deficit%count
		for i, w := range out {
			if w != widest {
				continue
			}
			out[i] -= per
			if extra > 0 {
				out[i]--
				extra--
			}
		}
		return
	}
}
