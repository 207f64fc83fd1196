// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/key"
	"gioui.org/retained/widget"
)

// SetModifiers records the modifiers reported with the next presses.
func (s *State) SetModifiers(m key.Modifiers) {
	s.modifiers = m
}

// Key handles a key event. The widget with character focus sees it
// first. A key bound to a command is then offered as a key.Command to
// the character focus, the navigation focus, the parent of the top
// pop-up and the selection focus, in that order. An unused Tab moves
// navigation focus and an unused Escape closes the top pop-up.
func (s *State) Key(root widget.Tile, e key.Event) {
	s.enter()
	defer s.leave(root)
	s.modifiers = e.Modifiers
	if s.charFocus.IsValid() && bool(s.send(root, s.charFocus, e)) {
		return
	}
	cmd, ok := s.shortcuts.Get(e)
	if !ok {
		return
	}
	log.Trace("router: command", "command", cmd)
	if s.sendCommand(root, cmd) {
		return
	}
	switch cmd {
	case key.Tab:
		s.applyNavRequest(root, &navRequest{next: true, reverse: e.Modifiers.Contain(key.ModShift), key: true})
	case key.Escape:
		if n := len(s.popups); n > 0 {
			s.closePopups(n-1, true)
		}
	}
}

func (s *State) sendCommand(root widget.Tile, cmd key.Command) event.IsUsed {
	var parent widget.Id
	if n := len(s.popups); n > 0 {
		parent = s.popups[n-1].Parent
	}
	targets := [...]widget.Id{s.charFocus, s.navFocus, parent, s.selFocus}
	for i, id := range targets {
		if !id.IsValid() || seen(targets[:i], id) {
			continue
		}
		if s.send(root, id, cmd) {
			return event.Used
		}
	}
	return event.Unused
}

func seen(ids []widget.Id, id widget.Id) bool {
	for _, o := range ids {
		if o == id {
			return true
		}
	}
	return false
}

// Text delivers text input to the widget with character focus.
func (s *State) Text(root widget.Tile, text string) {
	s.enter()
	defer s.leave(root)
	if !s.charFocus.IsValid() {
		log.Trace("router: text without char focus")
		return
	}
	s.send(root, s.charFocus, key.Text{Text: text})
}
