// SPDX-License-Identifier: Unlicense OR MIT

/*
Package basic implements a small set of widgets: text labels, push
buttons, lists and grids of widgets, pop-ups, menus and scroll
regions.

Widgets report activation to their ancestors by pushing the message
they were created with; an ancestor implementing
router.MessageHandler pops it with router.TryPop.
*/
package basic

import (
	"gioui.org/retained/geom"
	"gioui.org/retained/io/router"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/widget"
)

// Label is a widget displaying text.
type Label struct {
	widget.Core
	// Wrap breaks the text to the width of the label.
	Wrap bool

	text  string
	align layout.CompleteAlignment
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// Text returns the text shown.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text shown and requests a new layout.
func (l *Label) SetText(cx *router.Cx, text string) {
	if text == l.text {
		return
	}
	l.text = text
	cx.Resize()
}

func (l *Label) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	return sz.TextRules(l.text, axis, l.Wrap, false)
}

func (l *Label) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	l.StoreRect(r)
	l.align = hints.Complete(layout.AlignTL, layout.AlignCenter)
}

func (l *Label) Draw(cx *widget.DrawCx) {
	cx.Text(l.Id(), l.Rect(), l.text, l.align, l.Wrap)
}

func (l *Label) Describe() semantic.Desc {
	return semantic.Desc{Role: semantic.Label, Label: l.text}
}
