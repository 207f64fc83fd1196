// SPDX-License-Identifier: Unlicense OR MIT

// Package key implements key and text events and the commands they
// map to.
package key

import (
	"strings"
)

// An Event is generated when a key is pressed or released. Text input
// arrives as separate Text events.
type Event struct {
	Name      Name
	Modifiers Modifiers
	State     State
}

// Text is text typed by the user or an input method. It is delivered
// to the widget with character focus.
type Text struct {
	Text string
}

// State is the state of a key during an event.
type State uint8

const (
	Press State = iota
	Release
)

// Modifiers is a set of modifier keys held during an event.
type Modifiers uint32

const (
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the cmd key of Apple keyboards.
	ModCommand
	ModShift
	// ModAlt is also the option key of Apple keyboards.
	ModAlt
	ModSuper
)

// Name identifies a key. Letters use their upper case form; the shell
// applies shift before naming the key, so shift-1 is "!" on a US
// layout.
type Name string

const (
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEnter          Name = "⌤"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameSuper          Name = "Super"
	NameCommand        Name = "⌘"
	NameF1             Name = "F1"
	NameF2             Name = "F2"
)

// Contain reports whether every modifier of m2 is held in m.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

func (Event) ImplementsEvent() {}
func (Text) ImplementsEvent()  {}

func (m Modifiers) String() string {
	var strs []string
	if m.Contain(ModCtrl) {
		strs = append(strs, string(NameCtrl))
	}
	if m.Contain(ModCommand) {
		strs = append(strs, string(NameCommand))
	}
	if m.Contain(ModShift) {
		strs = append(strs, string(NameShift))
	}
	if m.Contain(ModAlt) {
		strs = append(strs, string(NameAlt))
	}
	if m.Contain(ModSuper) {
		strs = append(strs, string(NameSuper))
	}
	return strings.Join(strs, "-")
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}
