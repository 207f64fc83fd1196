// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Pixels, or px, are display dependent. Widgets declare their sizes in dp
or sp and convert them with the Metric of the window they are shown in;
only derived values are kept in pixels.
*/
package unit

import (
	"fmt"
	"math"
)

// Dp represents device independent pixels.
type Dp float32

// Sp represents scaled pixels.
type Sp float32

// Metric converts Dp and Sp to device pixels. A window updates its
// Metric when the scale factor changes.
type Metric struct {
	// PxPerDp is the device pixels per dp.
	PxPerDp float32
	// PxPerSp is the device pixels per sp.
	PxPerSp float32
}

// Scaled returns the Metric for scale factor s, with text scaled by
// textScale on top of it.
func Scaled(s, textScale float32) Metric {
	if textScale == 0 {
		textScale = 1
	}
	return Metric{PxPerDp: s, PxPerSp: s * textScale}
}

// Dp converts v to pixels, rounded to the nearest integer.
func (m Metric) Dp(v Dp) int {
	return int(math.Round(float64(nonZero(m.PxPerDp)) * float64(v)))
}

// Sp converts v to pixels, rounded to the nearest integer.
func (m Metric) Sp(v Sp) int {
	return int(math.Round(float64(nonZero(m.PxPerSp)) * float64(v)))
}

// DpToSp converts v dp to sp.
func (m Metric) DpToSp(v Dp) Sp {
	return Sp(float32(v) * nonZero(m.PxPerDp) / nonZero(m.PxPerSp))
}

// SpToDp converts v sp to dp.
func (m Metric) SpToDp(v Sp) Dp {
	return Dp(float32(v) * nonZero(m.PxPerSp) / nonZero(m.PxPerDp))
}

// PxToDp converts v px to dp.
func (m Metric) PxToDp(v int) Dp {
	return Dp(float32(v) / nonZero(m.PxPerDp))
}

// U16 converts v to pixels clamped into the range of a layout margin.
func (m Metric) U16(v Dp) uint16 {
	return uint16(min(max(m.Dp(v), 0), math.MaxUint16))
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

func (v Sp) String() string {
	return fmt.Sprintf("%gsp", float32(v))
}

func nonZero(v float32) float32 {
	if v == 0 {
		return 1
	}
	return v
}
