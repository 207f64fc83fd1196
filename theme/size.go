// SPDX-License-Identifier: Unlicense OR MIT

package theme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"

	"gioui.org/retained/geom"
	"gioui.org/retained/layout"
	"gioui.org/retained/unit"
)

// SizeCx answers size queries during the layout passes.
type SizeCx struct {
	t *Theme
}

// Theme returns the theme behind s.
func (s SizeCx) Theme() *Theme {
	return s.t
}

// ScaleFactor returns the window scale factor.
func (s SizeCx) ScaleFactor() float32 {
	return s.t.ScaleFactor()
}

// Metric returns the unit conversion at the current scale.
func (s SizeCx) Metric() unit.Metric {
	return s.t.metric
}

// Dp converts v to pixels.
func (s SizeCx) Dp(v unit.Dp) int {
	return s.t.metric.Dp(v)
}

// Margins returns the margins kept around widgets.
func (s SizeCx) Margins() layout.BoxMargins {
	return layout.UniformMargins(s.t.dims.margin)
}

// InnerMargins returns the margins kept between a frame and its
// content.
func (s SizeCx) InnerMargins() layout.BoxMargins {
	return layout.UniformMargins(s.t.dims.inner)
}

// FrameWidth returns the width of a frame border.
func (s SizeCx) FrameWidth() int {
	return s.t.dims.frame
}

// FrameRules returns the rules of the two borders of a frame along
// an axis, with the widget margins outside.
func (s SizeCx) FrameRules(axis layout.AxisInfo) layout.SizeRules {
	w := 2 * (s.t.dims.frame + int(s.t.dims.inner))
	return layout.Fixed(w, s.Margins().Extract(axis.Axis))
}

// CheckBoxSize returns the size of a check box.
func (s SizeCx) CheckBoxSize() geom.Size {
	return geom.Size{W: s.t.dims.checkBox, H: s.t.dims.checkBox}
}

// ScrollBarSize returns the width of a scroll bar and the minimum
// length of its handle.
func (s SizeCx) ScrollBarSize() geom.Size {
	return geom.Size{W: s.t.dims.scrollBar, H: 3 * s.t.dims.scrollBar}
}

// MenuPadding returns the padding around menu entries.
func (s SizeCx) MenuPadding() int {
	return s.t.dims.menuPad
}

// LineHeight returns the height of a line of text.
func (s SizeCx) LineHeight() int {
	return s.t.dims.lineHeight
}

// TextWidth returns the advance of a single line of text.
func (s SizeCx) TextWidth(text string, mono bool) int {
	return textWidth(s.t, text, mono)
}

func textWidth(t *Theme, text string, mono bool) int {
	if mono {
		// Wide glyphs take two cells of a monospace grid.
		return runewidth.StringWidth(text) * t.dims.monoCell
	}
	return font.MeasureString(t.face, text).Ceil()
}

// TextRules returns the rules of text. Wrapped text may shrink
// horizontally down to its longest word and grows vertically with
// the number of lines at the fixed width.
func (s SizeCx) TextRules(text string, axis layout.AxisInfo, wrap, mono bool) layout.SizeRules {
	margins := s.Margins().Extract(axis.Axis)
	if axis.Axis == layout.Horizontal {
		ideal := 0
		for _, line := range strings.Split(text, "\n") {
			ideal = max(ideal, s.TextWidth(line, mono))
		}
		min := ideal
		if wrap {
			min = 0
			for _, w := range strings.FieldsFunc(text, unicode.IsSpace) {
				min = max(min, s.TextWidth(w, mono))
			}
		}
		stretch := layout.StretchNone
		if wrap {
			stretch = layout.StretchLow
		}
		return layout.NewRules(min, ideal, margins, stretch)
	}
	lines := strings.Count(text, "\n") + 1
	if width, ok := axis.Other(); ok && wrap {
		lines = len(s.WrapLines(text, width, mono))
	}
	return layout.Fixed(lines*s.LineHeight(), margins)
}

// WrapLines breaks text into lines no wider than width, breaking at
// spaces. Words wider than width get a line of their own.
func (s SizeCx) WrapLines(text string, width int, mono bool) []string {
	return wrapLines(s.t, text, width, mono)
}

func wrapLines(t *Theme, text string, width int, mono bool) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if textWidth(t, line+" "+w, mono) <= width {
				line += " " + w
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}
