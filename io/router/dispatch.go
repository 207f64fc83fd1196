// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"fmt"

	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget"
)

// EventHandler is implemented by widgets receiving events.
type EventHandler interface {
	HandleEvent(cx *Cx, ev event.Event) event.IsUsed
}

// UnusedHandler is implemented by widgets reacting to events their
// descendants did not use. index is the child on the path to the
// target.
type UnusedHandler interface {
	HandleUnused(cx *Cx, index int, ev event.Event) event.IsUsed
}

// MessageHandler is implemented by widgets receiving messages from
// their descendants. HandleMessages is called while messages are
// pending; Cx.LastChild is the child they came through.
type MessageHandler interface {
	HandleMessages(cx *Cx)
}

// EventStealer is implemented by widgets intercepting events addressed
// to their descendants. A stolen event is not delivered to id.
type EventStealer interface {
	StealEvent(cx *Cx, id widget.Id, ev event.Event) event.IsUsed
}

// Navigable is implemented by widgets that take navigation focus.
type Navigable interface {
	Navigable() bool
}

// Cursorer is implemented by widgets requesting a cursor shape while
// hovered.
type Cursorer interface {
	Cursor() pointer.Cursor
}

// Send delivers ev to the widget with the given id in the tree under
// root. It returns Unused if the widget does not exist.
func (s *State) Send(root widget.Tile, id widget.Id, ev event.Event) event.IsUsed {
	s.enter()
	defer s.leave(root)
	return s.send(root, id, ev)
}

// Replay delivers msg as if pushed by the widget with the given id:
// that widget, then each of its ancestors, gets HandleMessages while
// the message is pending.
func (s *State) Replay(root widget.Tile, id widget.Id, msg any) {
	s.enter()
	defer s.leave(root)
	s.replay(root, id, msg)
}

func (s *State) replay(root widget.Tile, id widget.Id, msg any) {
	cx := s.newCx(root)
	cx.Push(msg)
	log.Trace("router: replay", "id", id, "msg", fmt.Sprintf("%T", msg))
	if !cx.replay(root, id) {
		log.Warn("router: replay to unknown widget", "id", id)
	}
	cx.finish()
}

// send is Send without delivery of queued events.
func (s *State) send(root widget.Tile, id widget.Id, ev event.Event) event.IsUsed {
	if !passWhenDisabled(ev) && s.IsDisabled(id) {
		log.Trace("router: target disabled", "id", id, "event", fmt.Sprintf("%T", ev))
		return event.Unused
	}
	log.Trace("router: send", "id", id, "event", fmt.Sprintf("%T", ev))
	// Ancestors may steal events, so the target must exist before
	// the walk starts.
	if _, ok := widget.Find(root, id); !ok {
		log.Warn("router: no widget with id", "id", id, "event", fmt.Sprintf("%T", ev))
		return event.Unused
	}
	cx := s.newCx(root)
	used, found := cx.sendTo(root, id, ev)
	if !found {
		log.Warn("router: no widget with id", "id", id, "event", fmt.Sprintf("%T", ev))
		return event.Unused
	}
	cx.finish()
	return used
}

// sendTo walks from w to id. It reports whether id was found.
func (cx *Cx) sendTo(w widget.Tile, id widget.Id, ev event.Event) (event.IsUsed, bool) {
	if w.Id() == id {
		if h, ok := w.(EventHandler); ok {
			return h.HandleEvent(cx, ev), true
		}
		return event.Unused, true
	}
	index, ok := widget.ChildIndex(w, id)
	if !ok {
		return event.Unused, false
	}
	if st, ok := w.(EventStealer); ok {
		if st.StealEvent(cx, id, ev) {
			cx.unwind(w, index)
			return event.Used, true
		}
	}
	child := w.Child(index)
	if t, ok := w.(widget.Translator); ok {
		ev = translate(ev, t.Translation())
	}
	used, found := cx.sendTo(child, id, ev)
	if !found {
		return event.Unused, false
	}
	if !used {
		if h, ok := w.(UnusedHandler); ok {
			used = h.HandleUnused(cx, index, ev)
		}
	}
	cx.unwind(w, index)
	return used, true
}

// replay walks from w to id and unwinds with messages pending.
func (cx *Cx) replay(w widget.Tile, id widget.Id) bool {
	if w.Id() == id {
		if h, ok := w.(MessageHandler); ok && cx.HasMessages() {
			cx.lastChild = -1
			h.HandleMessages(cx)
		}
		return true
	}
	index, ok := widget.ChildIndex(w, id)
	if !ok || !cx.replay(w.Child(index), id) {
		return false
	}
	cx.unwind(w, index)
	return true
}

// unwind gives w a chance at the pending messages left by child index.
func (cx *Cx) unwind(w widget.Tile, index int) {
	if !cx.HasMessages() {
		return
	}
	cx.lastChild = index
	if _, ok := TryPeek[PressFocus](cx); ok && cx.s.isNavigable(w) {
		pf, _ := TryPop[PressFocus](cx)
		cx.RequestPressFocus(w.Id(), pf.Source)
	}
	if h, ok := w.(MessageHandler); ok && cx.HasMessages() {
		h.HandleMessages(cx)
	}
}

// passWhenDisabled reports whether ev reaches disabled widgets. Input
// events do not.
func passWhenDisabled(ev event.Event) bool {
	switch ev.(type) {
	case pointer.PressStart, pointer.PressMove, pointer.CursorMove, pointer.Scroll, pointer.Pan,
		key.Event, key.Text, key.Command:
		return false
	}
	return true
}
