// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the events common to all widgets and the
// result type of event handlers.
package event

import (
	"fmt"

	"gioui.org/retained/widget"
)

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// IsUsed is the result of handling an event.
type IsUsed bool

const (
	Unused IsUsed = false
	Used   IsUsed = true
)

// Or returns Used if either of u and v is.
func (u IsUsed) Or(v IsUsed) IsUsed {
	return u || v
}

// Timer is sent to a widget when a timer it requested expires.
type Timer struct {
	Handle TimerHandle
}

// NavFocus is sent to a widget receiving navigation focus. Key is set
// when the focus moved because of keyboard navigation, in which case
// the widget should scroll itself into view.
type NavFocus struct {
	Key bool
}

// LostNavFocus is sent to the widget losing navigation focus.
type LostNavFocus struct{}

// SelFocus is sent to a widget receiving selection focus.
type SelFocus struct{}

// LostSelFocus is sent to the widget losing selection focus.
type LostSelFocus struct{}

// CharFocus is sent to a widget receiving character focus, the
// target of text input.
type CharFocus struct{}

// LostCharFocus is sent to the widget losing character focus.
type LostCharFocus struct{}

// MouseHover is sent when the pointer enters or leaves a widget.
type MouseHover struct {
	Hovered bool
}

// PopupClosed is sent to the parent of a pop-up after it closed.
type PopupClosed struct {
	Popup widget.Id
}

// TimerHandle identifies a timer of a widget. It also carries the
// policy used when a timer with the same handle is requested while
// one is pending: keep the earliest or the latest expiry.
//
// A negative value encodes the earliest policy.
type TimerHandle int64

// NewTimerHandle returns the handle for code with the given policy.
// It panics if code is negative.
func NewTimerHandle(code int64, earliest bool) TimerHandle {
	if code < 0 {
		panic("event: negative timer code")
	}
	if earliest {
		return TimerHandle(-code - 1)
	}
	return TimerHandle(code)
}

// Earliest reports whether duplicate requests keep the earliest time.
func (h TimerHandle) Earliest() bool {
	return h < 0
}

// Code returns the code h was created with.
func (h TimerHandle) Code() int64 {
	if h < 0 {
		return int64(-h - 1)
	}
	return int64(h)
}

func (h TimerHandle) String() string {
	policy := "latest"
	if h.Earliest() {
		policy = "earliest"
	}
	return fmt.Sprintf("TimerHandle(%d, %s)", h.Code(), policy)
}

func (u IsUsed) String() string {
	if u {
		return "Used"
	}
	return "Unused"
}

func (Timer) ImplementsEvent()         {}
func (NavFocus) ImplementsEvent()      {}
func (LostNavFocus) ImplementsEvent()  {}
func (SelFocus) ImplementsEvent()      {}
func (LostSelFocus) ImplementsEvent()  {}
func (CharFocus) ImplementsEvent()     {}
func (LostCharFocus) ImplementsEvent() {}
func (MouseHover) ImplementsEvent()    {}
func (PopupClosed) ImplementsEvent()   {}
