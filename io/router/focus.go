// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget"
)

// navRequest is a pending change of navigation focus.
type navRequest struct {
	// target is the new focus when next is unset. With next set,
	// target replaces the current focus as the search start.
	target  widget.Id
	next    bool
	reverse bool
	key     bool
}

// SetNavFocus gives id navigation focus once the current dispatch
// completes. key is set for changes caused by keyboard navigation.
func (cx *Cx) SetNavFocus(id widget.Id, key bool) {
	cx.s.navReq = &navRequest{target: id, key: key}
}

// ClearNavFocus removes navigation focus.
func (cx *Cx) ClearNavFocus() {
	cx.s.navReq = &navRequest{}
}

// NextNavFocus moves navigation focus to the next navigable widget
// after from, or after the current focus if from is invalid. reverse
// moves backwards.
func (cx *Cx) NextNavFocus(from widget.Id, reverse, key bool) {
	cx.s.navReq = &navRequest{target: from, next: true, reverse: reverse, key: key}
}

// RequestPressFocus gives id navigation focus for a press from
// source, if the settings enable focus by that kind of press.
func (cx *Cx) RequestPressFocus(id widget.Id, source pointer.PressSource) {
	cfg := &cx.s.cfg.Event
	if source.IsMouse() && !cfg.MouseNavFocus || source.IsTouch() && !cfg.TouchNavFocus {
		return
	}
	cx.SetNavFocus(id, false)
}

// RequestSelFocus gives id selection focus. Character focus, if held
// by another widget, is lost.
func (cx *Cx) RequestSelFocus(id widget.Id) {
	s := cx.s
	if s.selFocus == id {
		return
	}
	if s.charFocus.IsValid() && s.charFocus != id {
		s.post(s.charFocus, event.LostCharFocus{})
		s.charFocus = ""
	}
	if s.selFocus.IsValid() {
		s.post(s.selFocus, event.LostSelFocus{})
	}
	s.selFocus = id
	s.post(id, event.SelFocus{})
	s.action |= Redraw
	log.Debug("router: sel focus", "id", id)
}

// RequestCharFocus gives id character focus and selection focus.
func (cx *Cx) RequestCharFocus(id widget.Id) {
	cx.RequestSelFocus(id)
	s := cx.s
	if s.charFocus == id {
		return
	}
	s.charFocus = id
	s.post(id, event.CharFocus{})
	log.Debug("router: char focus", "id", id)
}

// ClearSelFocus removes selection and character focus.
func (cx *Cx) ClearSelFocus() {
	s := cx.s
	if s.charFocus.IsValid() {
		s.post(s.charFocus, event.LostCharFocus{})
		s.charFocus = ""
	}
	if s.selFocus.IsValid() {
		s.post(s.selFocus, event.LostSelFocus{})
		s.selFocus = ""
		s.action |= Redraw
	}
}

// NextNavFocus moves navigation focus immediately, as for the Tab
// key. It reports whether any widget has focus afterwards.
func (s *State) NextNavFocus(root widget.Tile, reverse bool) bool {
	s.enter()
	defer s.leave(root)
	s.applyNavRequest(root, &navRequest{next: true, reverse: reverse, key: true})
	return s.navFocus.IsValid()
}

func (s *State) applyNavRequest(root widget.Tile, req *navRequest) {
	target := req.target
	if req.next {
		from := target
		if !from.IsValid() {
			from = s.navFocus
		}
		target = s.nextNavigable(root, from, req.reverse)
	}
	s.setNavFocus(root, target, req.key)
}

func (s *State) setNavFocus(root widget.Tile, id widget.Id, key bool) {
	if id == s.navFocus {
		return
	}
	old := s.navFocus
	s.navFocus = id
	log.Debug("router: nav focus", "id", id, "key", key)
	s.action |= Redraw
	if old.IsValid() {
		s.send(root, old, event.LostNavFocus{})
	}
	if id.IsValid() {
		s.send(root, id, event.NavFocus{Key: key})
	}
}

// nextNavigable returns the navigable widget following from in id
// order, wrapping around. Only widgets in the top pop-up are
// candidates while one is open.
func (s *State) nextNavigable(root widget.Tile, from widget.Id, reverse bool) widget.Id {
	scope := root
	if n := len(s.popups); n > 0 {
		if w, ok := widget.Find(root, s.popups[n-1].Id); ok {
			scope = w
		}
	}
	var order []widget.Id
	widget.Walk(scope, func(t widget.Tile) bool {
		if widget.IsHidden(t) || s.IsDisabled(t.Id()) {
			return false
		}
		if s.isNavigable(t) {
			order = append(order, t.Id())
		}
		return true
	})
	if len(order) == 0 {
		return ""
	}
	if !from.IsValid() {
		if reverse {
			return order[len(order)-1]
		}
		return order[0]
	}
	if reverse {
		for i := len(order) - 1; i >= 0; i-- {
			if order[i] < from {
				return order[i]
			}
		}
		return order[len(order)-1]
	}
	for _, id := range order {
		if id > from {
			return id
		}
	}
	return order[0]
}

func (s *State) isNavigable(t widget.Tile) bool {
	n, ok := t.(Navigable)
	return ok && n.Navigable() && !s.IsDisabled(t.Id())
}
