// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"golang.org/x/exp/slices"

	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget"
)

// Configurer is implemented by widgets that build or update their
// children when configured. Configure is called once the widget has
// its id and before its children are configured.
type Configurer interface {
	Configure(cx *Cx)
}

// Configure assigns ids to the whole tree under root: the root gets
// widget.Root and every child extends its parent's id by its index.
// State referring to widgets no longer in the tree is dropped.
func (s *State) Configure(root widget.Tile) {
	s.enter()
	defer s.leave(root)
	cx := s.newCx(root)
	s.configure(cx, root, widget.Root)
	cx.finish()
	s.prune(root)
	s.action |= Resize
}

// Reconfigure configures the subtree of id again after a structural
// change, such as children added or removed.
func (s *State) Reconfigure(root widget.Tile, id widget.Id) {
	s.enter()
	defer s.leave(root)
	w, ok := widget.Find(root, id)
	if !ok {
		log.Warn("router: reconfigure of unknown widget", "id", id)
		return
	}
	cx := s.newCx(root)
	s.configure(cx, w, id)
	cx.finish()
	s.prune(root)
	s.action |= Resize
}

func (s *State) configure(cx *Cx, w widget.Tile, id widget.Id) {
	widget.Configure(w, id)
	if c, ok := w.(Configurer); ok {
		c.Configure(cx)
	}
	for i, n := 0, w.NumChildren(); i < n; i++ {
		if c := w.Child(i); c != nil {
			s.configure(cx, c, id.MakeChild(i))
		}
	}
}

// prune drops the hover, focus, grabs, pop-ups, timers and queued
// events of widgets not in the tree under root.
func (s *State) prune(root widget.Tile) {
	exists := func(id widget.Id) bool {
		_, ok := widget.Find(root, id)
		return ok
	}
	gone := func(id widget.Id) bool {
		return id.IsValid() && !exists(id)
	}
	if gone(s.hover) {
		s.hover = ""
		s.cursor = pointer.CursorDefault
	}
	if gone(s.navFocus) {
		log.Debug("router: nav focus removed", "id", s.navFocus)
		s.navFocus = ""
	}
	if gone(s.selFocus) {
		s.selFocus = ""
	}
	if gone(s.charFocus) {
		s.charFocus = ""
	}
	s.grabs = slices.DeleteFunc(s.grabs, func(g *grab) bool {
		return !exists(g.id)
	})
	s.pans = slices.DeleteFunc(s.pans, func(p *panGrab) bool {
		return !exists(p.id)
	})
	s.popups = slices.DeleteFunc(s.popups, func(p popupState) bool {
		if !exists(p.Id) || !exists(p.Parent) {
			log.Debug("router: popup removed", "id", p.Id)
			return true
		}
		return false
	})
	s.disabled = slices.DeleteFunc(s.disabled, func(id widget.Id) bool {
		return !exists(id)
	})
	s.pruneTimers(exists)
	s.futures = slices.DeleteFunc(s.futures, func(f pendingFuture) bool {
		return !exists(f.id)
	})
	s.pending = slices.DeleteFunc(s.pending, func(p pendingEvent) bool {
		return !exists(p.id)
	})
}
