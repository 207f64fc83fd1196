// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"fmt"
	"time"

	"gioui.org/retained/config"
	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget"
)

// Cx is the context of a single dispatch. Handlers use it to pass
// messages to their ancestors and to request changes of the input
// state.
type Cx struct {
	s    *State
	root widget.Tile
	msgs []any
	// lastChild is the child index messages arrived through, or -1.
	lastChild int
}

// PressFocus is a message pushed by a widget that cannot take
// navigation focus itself, asking the nearest navigable ancestor to
// take focus for a press.
type PressFocus struct {
	Source pointer.PressSource
}

func (s *State) newCx(root widget.Tile) *Cx {
	return &Cx{s: s, root: root, lastChild: -1}
}

// finish drops messages no ancestor handled.
func (cx *Cx) finish() {
	if n := len(cx.msgs); n > 0 {
		log.Warn("router: unhandled messages", "count", n, "top", fmt.Sprintf("%T", cx.msgs[n-1]))
		cx.msgs = nil
	}
}

// State returns the window's input state.
func (cx *Cx) State() *State { return cx.s }

// Config returns the settings in use.
func (cx *Cx) Config() *config.Config { return cx.s.cfg }

// Now returns the current time.
func (cx *Cx) Now() time.Time { return cx.s.Now() }

// Root returns the root of the tree being dispatched to.
func (cx *Cx) Root() widget.Tile { return cx.root }

// Push pushes msg for the ancestors of the current widget.
func (cx *Cx) Push(msg any) {
	cx.msgs = append(cx.msgs, msg)
}

// HasMessages reports whether messages are pending.
func (cx *Cx) HasMessages() bool {
	return len(cx.msgs) > 0
}

// LastChild returns the index of the child the pending messages came
// through. It reports false while a widget handles messages it
// replayed to itself.
func (cx *Cx) LastChild() (int, bool) {
	return cx.lastChild, cx.lastChild >= 0
}

// TryPop pops the top message if it has type M.
func TryPop[M any](cx *Cx) (M, bool) {
	m, ok := TryPeek[M](cx)
	if ok {
		cx.msgs = cx.msgs[:len(cx.msgs)-1]
	}
	return m, ok
}

// TryPeek returns the top message if it has type M.
func TryPeek[M any](cx *Cx) (M, bool) {
	var zero M
	n := len(cx.msgs)
	if n == 0 {
		return zero, false
	}
	m, ok := cx.msgs[n-1].(M)
	if !ok {
		return zero, false
	}
	return m, true
}

// Redraw requests a new frame.
func (cx *Cx) Redraw() {
	cx.s.action |= Redraw
}

// Resize requests a new layout.
func (cx *Cx) Resize() {
	cx.s.action |= Resize
}

// Action adds a to the actions returned to the window.
func (cx *Cx) Action(a Action) {
	cx.s.action |= a
}

// SetDisabled disables or enables the subtree of id. Disabled
// widgets receive no input events.
func (cx *Cx) SetDisabled(id widget.Id, disabled bool) {
	cx.s.setDisabled(id, disabled)
}

// IsDisabled reports whether id is disabled.
func (cx *Cx) IsDisabled(id widget.Id) bool {
	return cx.s.IsDisabled(id)
}

// Post delivers ev to id after the current dispatch completes.
func (cx *Cx) Post(id widget.Id, ev event.Event) {
	cx.s.post(id, ev)
}
