// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements mouse and touch press events, the
// sources that generate them and the grab modes of press gestures.
package pointer

import (
	"fmt"
	"strings"

	"gioui.org/retained/geom"
	"gioui.org/retained/io/key"
	"gioui.org/retained/widget"
)

// PressStart is sent to the widget under a new press.
type PressStart struct {
	Source PressSource
	// Id is the widget under the press.
	Id    widget.Id
	Coord geom.Coord
	// Modifiers is the set of active modifiers when the press started.
	Modifiers key.Modifiers
}

// PressMove is sent to the owner of a grab when its press moves. While
// a pop-up is open, cursor moves without a press are also sent to the
// pop-up's parent as PressMove events with Grabbed unset.
type PressMove struct {
	Source PressSource
	// Id is the widget now under the press.
	Id    widget.Id
	Coord geom.Coord
	Delta geom.Offset
	// Grabbed is set when the event belongs to a grab.
	Grabbed bool
}

// PressEnd is sent to the owner of a grab when its press ends.
type PressEnd struct {
	Source PressSource
	// Id is the widget under the press when it ended.
	Id    widget.Id
	Coord geom.Coord
	// Success is set when the press ended normally, not cancelled.
	Success bool
}

// CursorMove is sent to the hovered widget when the cursor moves and
// no grab is active.
type CursorMove struct {
	Coord geom.Coord
}

// Scroll is a mouse wheel or touchpad scroll.
type Scroll struct {
	Delta ScrollDelta
}

// ScrollDelta is a scroll amount in lines or pixels. Positive values
// scroll content up and left.
type ScrollDelta struct {
	Lines  geom.Vec2
	Pixels geom.Offset
}

// Pan is sent once per frame to the owner of a pan grab that moved.
// A point p of the grabbed content maps to Alpha*p + Delta, where
// Alpha is a complex number (X real, Y imaginary) combining rotation
// and scaling.
type Pan struct {
	Alpha geom.Vec2
	Delta geom.Vec2
}

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
	ButtonBack
	ButtonForward
)

// Source of an event.
type Source uint8

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

// PressSource identifies what caused a press: a mouse button, with
// the number of clicks in quick succession, or a touch point.
type PressSource struct {
	kind        Source
	button      Buttons
	repetitions uint32
	touch       uint64
}

// MouseSource returns the source of a press of button. repetitions
// counts consecutive clicks, 1 for a single click.
func MouseSource(button Buttons, repetitions int) PressSource {
	return PressSource{kind: Mouse, button: button, repetitions: uint32(max(repetitions, 1))}
}

// TouchSource returns the source of the touch point with the given id.
func TouchSource(id uint64) PressSource {
	return PressSource{kind: Touch, touch: id}
}

// Kind returns whether the press is from a mouse or a touch.
func (s PressSource) Kind() Source { return s.kind }

// IsMouse reports whether s is a mouse button.
func (s PressSource) IsMouse() bool { return s.kind == Mouse }

// IsTouch reports whether s is a touch point.
func (s PressSource) IsTouch() bool { return s.kind == Touch }

// Button returns the mouse button of s.
func (s PressSource) Button() (Buttons, bool) {
	return s.button, s.kind == Mouse
}

// TouchID returns the touch id of s.
func (s PressSource) TouchID() (uint64, bool) {
	return s.touch, s.kind == Touch
}

// Repetitions returns the click count of a mouse press, 1 for a touch.
func (s PressSource) Repetitions() int {
	if s.kind == Touch {
		return 1
	}
	return int(s.repetitions)
}

// IsPrimary reports whether s is the primary mouse button or a touch.
func (s PressSource) IsPrimary() bool {
	return s.kind == Touch || s.button == ButtonPrimary
}

// IsSecondary reports whether s is the secondary mouse button.
func (s PressSource) IsSecondary() bool {
	return s.kind == Mouse && s.button == ButtonSecondary
}

// IsTertiary reports whether s is the middle mouse button.
func (s PressSource) IsTertiary() bool {
	return s.kind == Mouse && s.button == ButtonTertiary
}

// Same reports whether s and o are the same button or touch point,
// ignoring the click count.
func (s PressSource) Same(o PressSource) bool {
	s.repetitions, o.repetitions = 0, 0
	return s == o
}

// GrabMode is how the owner of a grab receives the movement of a
// press.
type GrabMode uint8

const (
	// GrabClick delivers only the PressEnd.
	GrabClick GrabMode = iota
	// GrabMove delivers PressMove and PressEnd events.
	GrabMove
	// GrabPanFull delivers Pan events combining translation,
	// rotation and scaling of up to two touch points.
	GrabPanFull
	// GrabPanScale is GrabPanFull without rotation.
	GrabPanScale
	// GrabPanRotate is GrabPanFull without scaling.
	GrabPanRotate
	// GrabPanOnly delivers translation only.
	GrabPanOnly
)

// IsPan reports whether m delivers Pan events.
func (m GrabMode) IsPan() bool {
	return m >= GrabPanFull
}

// Cursor is a cursor shape, named as in CSS.
type Cursor byte

const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorNone hides the cursor.
	CursorNone
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorPointer is for a link.
	// Usually displayed as a pointing hand.
	CursorPointer
	// CursorGrab is for content that can be grabbed (dragged to be moved).
	// Usually displayed as an open hand.
	CursorGrab
	// CursorGrabbing is for content that is being grabbed (dragged to be moved).
	// Usually displayed as a closed hand.
	CursorGrabbing
	// CursorNotAllowed is shown when the request action cannot be carried out.
	// Usually displayed as a circle with a line through.
	CursorNotAllowed
)

func (PressStart) ImplementsEvent() {}
func (PressMove) ImplementsEvent()  {}
func (PressEnd) ImplementsEvent()   {}
func (CursorMove) ImplementsEvent() {}
func (Scroll) ImplementsEvent()     {}
func (Pan) ImplementsEvent()        {}

func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	if b.Contain(ButtonBack) {
		strs = append(strs, "ButtonBack")
	}
	if b.Contain(ButtonForward) {
		strs = append(strs, "ButtonForward")
	}
	return strings.Join(strs, "|")
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}

func (s PressSource) String() string {
	if s.kind == Touch {
		return fmt.Sprintf("Touch(%d)", s.touch)
	}
	return fmt.Sprintf("Mouse(%v, %d)", s.button, s.repetitions)
}

func (m GrabMode) String() string {
	switch m {
	case GrabClick:
		return "Click"
	case GrabMove:
		return "Move"
	case GrabPanFull:
		return "PanFull"
	case GrabPanScale:
		return "PanScale"
	case GrabPanRotate:
		return "PanRotate"
	case GrabPanOnly:
		return "PanOnly"
	default:
		panic("unknown grab mode")
	}
}

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorNone:
		return "None"
	case CursorText:
		return "Text"
	case CursorPointer:
		return "Pointer"
	case CursorGrab:
		return "Grab"
	case CursorGrabbing:
		return "Grabbing"
	case CursorNotAllowed:
		return "NotAllowed"
	default:
		panic("unknown cursor")
	}
}

// Phase is the stage of a touch point reported by the platform.
type Phase uint8

const (
	// Begin is a new touch point.
	Begin Phase = iota
	// Move is a movement of an existing touch point.
	Move
	// End is a touch point lifted.
	End
	// Cancel is a touch point the platform took over.
	Cancel
)

func (p Phase) String() string {
	switch p {
	case Begin:
		return "Begin"
	case Move:
		return "Move"
	case End:
		return "End"
	case Cancel:
		return "Cancel"
	default:
		panic("unknown phase")
	}
}
