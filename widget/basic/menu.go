// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"gioui.org/retained/geom"
	"gioui.org/retained/gesture"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/io/router"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/widget"
)

// menuDelay is the timer opening a sub-menu on hover.
var menuDelay = event.NewTimerHandle(0, true)

// MenuEntry is an entry of a menu. Activating it pushes its message,
// which closes the menu on its way to the menu's ancestors.
type MenuEntry struct {
	widget.Core

	label *Label
	msg   any
	click gesture.Click
	ideal geom.Size
}

// NewMenuEntry returns an entry showing text and pushing msg.
func NewMenuEntry(text string, msg any) *MenuEntry {
	return &MenuEntry{label: NewLabel(text), msg: msg}
}

func (e *MenuEntry) NumChildren() int { return 1 }

func (e *MenuEntry) Child(i int) widget.Tile {
	if i == 0 {
		return e.label
	}
	return nil
}

func (e *MenuEntry) Navigable() bool { return true }

func (e *MenuEntry) Probe(c geom.Coord) (widget.Id, bool) {
	return e.Id(), true
}

func (e *MenuEntry) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	return keepIdeal(&e.ideal, axis, padded(sz, e.label, axis))
}

// SetRect fills the width of the menu by default.
func (e *MenuEntry) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	r = hints.Complete(layout.AlignStretch, layout.AlignCenter).Aligned(e.ideal, r)
	e.StoreRect(r)
	widget.SetRect(e.label, sz, r.Shrink(sz.MenuPadding()), layout.AlignHints{Vert: layout.AlignCenter})
}

func (e *MenuEntry) Draw(cx *widget.DrawCx) {
	cx.MenuEntry(e.Id(), e.Rect())
	widget.Draw(e.label, cx)
}

func (e *MenuEntry) HandleEvent(cx *router.Cx, ev event.Event) event.IsUsed {
	if cmd, ok := ev.(key.Command); ok {
		if cmd == key.Activate || cmd == key.Enter {
			e.activate(cx)
			return event.Used
		}
		return event.Unused
	}
	ce, ok := e.click.Update(cx, e.Id(), ev)
	if ok && ce.Kind == gesture.KindClick {
		e.activate(cx)
	}
	return event.IsUsed(ok)
}

func (e *MenuEntry) activate(cx *router.Cx) {
	if e.msg != nil {
		cx.Push(e.msg)
	}
}

func (e *MenuEntry) Describe() semantic.Desc {
	return semantic.Desc{Role: semantic.MenuItem, Label: e.label.Text(), Gestures: semantic.ClickGesture}
}

// MenuButton opens a menu of entries in a pop-up. Entries are usually
// MenuEntry widgets; a MenuButton among them is a sub-menu, which
// opens to the side and also opens when hovered for the menu delay.
type MenuButton struct {
	widget.Core

	label   *Label
	list    *List
	popup   *Popup
	submenu bool
	ideal   geom.Size
}

// NewMenuButton returns a button showing text which opens a menu of
// entries.
func NewMenuButton(text string, entries ...widget.Widget) *MenuButton {
	list := NewList(layout.Down, entries...)
	for _, e := range entries {
		if sub, ok := e.(*MenuButton); ok {
			sub.submenu = true
			sub.popup.dir = layout.Right
		}
	}
	return &MenuButton{
		label: NewLabel(text),
		list:  list,
		popup: NewPopup(layout.Down, list),
	}
}

// Popup returns the pop-up holding the menu.
func (m *MenuButton) Popup() *Popup { return m.popup }

// Entries returns the list of entries.
func (m *MenuButton) Entries() *List { return m.list }

func (m *MenuButton) NumChildren() int { return 2 }

func (m *MenuButton) Child(i int) widget.Tile {
	switch i {
	case 0:
		return m.label
	case 1:
		return m.popup
	}
	return nil
}

func (m *MenuButton) Navigable() bool { return true }

func (m *MenuButton) Cursor() pointer.Cursor { return pointer.CursorPointer }

func (m *MenuButton) Probe(c geom.Coord) (widget.Id, bool) {
	return m.Id(), true
}

func (m *MenuButton) SizeRules(sz theme.SizeCx, axis layout.AxisInfo) layout.SizeRules {
	if m.submenu {
		return keepIdeal(&m.ideal, axis, padded(sz, m.label, axis))
	}
	return keepIdeal(&m.ideal, axis, framed(sz, m.label, axis))
}

// SetRect places the button like a Button, or like a MenuEntry when
// it is a sub-menu. The pop-up is placed by the window when open.
func (m *MenuButton) SetRect(sz theme.SizeCx, r geom.Rect, hints layout.AlignHints) {
	if m.submenu {
		r = hints.Complete(layout.AlignStretch, layout.AlignCenter).Aligned(m.ideal, r)
	} else {
		r = hints.Complete(layout.AlignCenter, layout.AlignCenter).Aligned(m.ideal, r)
	}
	m.StoreRect(r)
	if m.submenu {
		widget.SetRect(m.label, sz, r.Shrink(sz.MenuPadding()), layout.AlignHints{Vert: layout.AlignCenter})
		return
	}
	widget.SetRect(m.label, sz, r.Shrink(framePad(sz)), layout.Center)
}

func (m *MenuButton) Draw(cx *widget.DrawCx) {
	if m.submenu {
		cx.MenuEntry(m.Id(), m.Rect())
	} else {
		cx.Button(m.Id(), m.Rect())
	}
	widget.Draw(m.label, cx)
}

func (m *MenuButton) HandleEvent(cx *router.Cx, ev event.Event) event.IsUsed {
	switch e := ev.(type) {
	case pointer.PressStart:
		// While the menu is open, presses elsewhere arrive here
		// first. Leaving them unused closes the menu.
		if !e.Source.IsPrimary() || e.Id != m.Id() {
			return event.Unused
		}
		if m.popup.IsOpen() {
			m.popup.Close(cx, false)
		} else {
			m.open(cx, false)
		}
		return event.Used
	case pointer.PressMove:
		// Cursor moves while the menu is open. Moving over another
		// entry of the parent menu closes a sub-menu.
		if m.submenu && !e.Grabbed && m.popup.IsOpen() && e.Id.IsValid() {
			parent, _ := m.Id().Parent()
			if parent.IsAncestorOf(e.Id) && !m.Id().IsAncestorOf(e.Id) {
				m.popup.Close(cx, false)
			}
		}
		return event.Unused
	case event.MouseHover:
		if m.submenu && e.Hovered && !m.popup.IsOpen() {
			cx.RequestTimer(m.Id(), menuDelay, cx.Config().Event.MenuDelay())
		}
		return event.Used
	case event.Timer:
		if e.Handle == menuDelay && !m.popup.IsOpen() && cx.State().IsHovered(m.Id()) {
			m.open(cx, false)
		}
		return event.Used
	case event.PopupClosed:
		if m.popup.HandleClosed(e) {
			cx.Redraw()
			return event.Used
		}
	case key.Command:
		return m.command(cx, e)
	}
	return event.Unused
}

func (m *MenuButton) command(cx *router.Cx, cmd key.Command) event.IsUsed {
	open := m.popup.IsOpen()
	switch cmd {
	case key.Activate, key.Enter:
		if open {
			m.popup.Close(cx, true)
		} else {
			m.open(cx, true)
		}
		return event.Used
	case key.Up, key.Down:
		if open {
			cx.NextNavFocus("", cmd == key.Up, true)
			return event.Used
		}
		if cmd == key.Down && !m.submenu {
			m.open(cx, true)
			return event.Used
		}
	case key.Right:
		if m.submenu && !open {
			m.open(cx, true)
			return event.Used
		}
	case key.Left:
		if m.submenu && open {
			m.popup.Close(cx, true)
			return event.Used
		}
	}
	return event.Unused
}

// open shows the menu. Opening from the keyboard focuses the first
// entry.
func (m *MenuButton) open(cx *router.Cx, byKey bool) {
	m.popup.Open(cx, m.Id())
	if byKey {
		cx.NextNavFocus(m.popup.Id(), false, true)
	}
}

// HandleMessages closes the menu when an entry was activated.
func (m *MenuButton) HandleMessages(cx *router.Cx) {
	if i, ok := cx.LastChild(); ok && i == 1 && m.popup.IsOpen() {
		m.popup.Close(cx, true)
	}
}

func (m *MenuButton) Describe() semantic.Desc {
	return semantic.Desc{Role: semantic.MenuButton, Label: m.label.Text(), Gestures: semantic.ClickGesture}
}

// padded returns the rules of content surrounded by the menu padding.
func padded(sz theme.SizeCx, content widget.Widget, axis layout.AxisInfo) layout.SizeRules {
	pad := sz.MenuPadding()
	if w, ok := axis.Other(); ok {
		axis = axis.WithFixed(max(w-2*pad, 0))
	}
	frame := layout.Fixed(2*pad, layout.Margins{})
	return widget.SizeRules(content, sz, axis).SurroundedBy(frame, false)
}
