// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"gioui.org/retained/geom"
	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/layout"
	"gioui.org/retained/widget"
)

// Popup describes an open pop-up: the widget shown, the widget it is
// anchored to and the side of the parent it opens on.
type Popup struct {
	Id        widget.Id
	Parent    widget.Id
	Direction layout.Direction
}

type popupState struct {
	Popup
	// restore is the navigation focus when the pop-up opened.
	restore widget.Id
}

// AddPopup opens p on top of any open pop-ups. Navigation focus is
// cleared and restored when p closes. Adding an open pop-up again
// does nothing.
func (cx *Cx) AddPopup(p Popup) {
	s := cx.s
	for _, q := range s.popups {
		if q.Id == p.Id {
			return
		}
	}
	s.popups = append(s.popups, popupState{Popup: p, restore: s.navFocus})
	cx.ClearNavFocus()
	s.action |= Redraw | RegionMoved
	log.Debug("router: add popup", "id", p.Id, "parent", p.Parent, "direction", p.Direction)
}

// ClosePopup closes the pop-up id and all pop-ups above it. With
// restoreFocus set, navigation focus returns to where it was when id
// opened.
func (cx *Cx) ClosePopup(id widget.Id, restoreFocus bool) {
	for i, p := range cx.s.popups {
		if p.Id == id {
			cx.s.closePopups(i, restoreFocus)
			return
		}
	}
}

// Popups returns the open pop-ups, bottom first.
func (s *State) Popups() []Popup {
	ps := make([]Popup, len(s.popups))
	for i, p := range s.popups {
		ps[i] = p.Popup
	}
	return ps
}

// IsPopupOpen reports whether the pop-up id is open.
func (s *State) IsPopupOpen(id widget.Id) bool {
	for _, p := range s.popups {
		if p.Id == id {
			return true
		}
	}
	return false
}

// ClosePopups closes every pop-up, as when the window loses focus.
func (s *State) ClosePopups(root widget.Tile) {
	s.enter()
	defer s.leave(root)
	if len(s.popups) > 0 {
		s.closePopups(0, false)
	}
}

// closePopups closes the pop-ups from index i up, innermost first.
func (s *State) closePopups(i int, restoreFocus bool) {
	for n := len(s.popups); n > i; n-- {
		p := s.popups[n-1]
		s.popups = s.popups[:n-1]
		log.Debug("router: close popup", "id", p.Id)
		if s.hover.IsValid() && p.Id.IsAncestorOf(s.hover) {
			s.hover = ""
		}
		if p.Id.IsAncestorOf(s.navFocus) {
			s.navReq = &navRequest{}
		}
		if restoreFocus && p.restore.IsValid() {
			s.navReq = &navRequest{target: p.restore}
		}
		s.post(p.Parent, event.PopupClosed{Popup: p.Id})
	}
	s.action |= Redraw | RegionMoved
}

// sendPopupFirst delivers a press, with hit the widget under it. The
// top pop-up has priority: the event goes to hit if inside the
// pop-up, or else to the pop-up's parent. When that leaves the event
// unused the pop-up closes and the next one is tried. Finally the
// event goes to the widget under it, hit-tested again.
func (s *State) sendPopupFirst(root widget.Tile, hit widget.Id, ev event.Event) event.IsUsed {
	for n := len(s.popups); n > 0; n = len(s.popups) {
		top := s.popups[n-1]
		target := top.Parent
		if hit.IsValid() && top.Id.IsAncestorOf(hit) {
			target = hit
		}
		if s.send(root, target, ev) {
			return event.Used
		}
		if len(s.popups) == n && s.popups[n-1].Id == top.Id {
			s.closePopups(n-1, false)
		}
		if c, ok := coordOf(ev); ok {
			hit, _ = s.HitTest(root, c)
			ev = withHit(ev, hit)
		}
	}
	if !hit.IsValid() {
		return event.Unused
	}
	return s.send(root, hit, ev)
}

// HitTest returns the widget under the window coordinate c, looking
// at open pop-ups first, topmost first.
func (s *State) HitTest(root widget.Tile, c geom.Coord) (widget.Id, bool) {
	for i := len(s.popups) - 1; i >= 0; i-- {
		w, ok := widget.Find(root, s.popups[i].Id)
		if !ok {
			continue
		}
		cc := c.Add(widget.Translation(root, w.Id()))
		if id, ok := widget.FindID(w, cc); ok {
			return id, true
		}
	}
	return widget.FindID(root, c)
}

// withHit returns ev with the widget under the press replaced by id.
func withHit(ev event.Event, id widget.Id) event.Event {
	switch e := ev.(type) {
	case pointer.PressStart:
		e.Id = id
		return e
	case pointer.PressMove:
		e.Id = id
		return e
	case pointer.PressEnd:
		e.Id = id
		return e
	}
	return ev
}

func coordOf(ev event.Event) (geom.Coord, bool) {
	switch e := ev.(type) {
	case pointer.PressStart:
		return e.Coord, true
	case pointer.PressMove:
		return e.Coord, true
	case pointer.PressEnd:
		return e.Coord, true
	case pointer.CursorMove:
		return e.Coord, true
	}
	return geom.Coord{}, false
}
