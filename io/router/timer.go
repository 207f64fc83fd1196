// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/event"
	"gioui.org/retained/widget"
)

type timerEntry struct {
	t      time.Time
	id     widget.Id
	handle event.TimerHandle
}

type frameTimer struct {
	id     widget.Id
	handle event.TimerHandle
}

// RequestTimer schedules an event.Timer with handle for id after
// delay. A pending timer with the same id and handle is moved only if
// the new time is earlier, or later, as the handle's policy says.
func (cx *Cx) RequestTimer(id widget.Id, handle event.TimerHandle, delay time.Duration) {
	cx.s.requestTimer(id, handle, cx.s.Now().Add(delay))
}

// RequestFrameTimer schedules an event.Timer with handle for id on
// the next frame.
func (cx *Cx) RequestFrameTimer(id widget.Id, handle event.TimerHandle) {
	cx.s.frameTimers[frameTimer{id: id, handle: handle}] = struct{}{}
	cx.s.action |= Redraw
}

func (s *State) requestTimer(id widget.Id, handle event.TimerHandle, t time.Time) {
	for i, e := range s.timers {
		if e.id != id || e.handle != handle {
			continue
		}
		if handle.Earliest() && !t.Before(e.t) || !handle.Earliest() && !t.After(e.t) {
			return
		}
		s.timers = slices.Delete(s.timers, i, i+1)
		break
	}
	// Insert after entries firing later and before entries firing at
	// the same time or earlier, so that equal times fire in request
	// order.
	i, _ := slices.BinarySearchFunc(s.timers, t, func(e timerEntry, t time.Time) int {
		if e.t.After(t) {
			return -1
		}
		return 1
	})
	s.timers = slices.Insert(s.timers, i, timerEntry{t: t, id: id, handle: handle})
	log.Debug("router: timer", "id", id, "handle", handle, "at", t)
}

// NextTimer returns the time of the next timer to fire.
func (s *State) NextTimer() (time.Time, bool) {
	if len(s.timers) == 0 {
		return time.Time{}, false
	}
	return s.timers[len(s.timers)-1].t, true
}

// HasFrameTimers reports whether frame timers are pending.
func (s *State) HasFrameTimers() bool {
	return len(s.frameTimers) > 0
}

// PendingTimer returns the scheduled time of the timer of id with
// handle.
func (s *State) PendingTimer(id widget.Id, handle event.TimerHandle) (time.Time, bool) {
	for _, e := range s.timers {
		if e.id == id && e.handle == handle {
			return e.t, true
		}
	}
	return time.Time{}, false
}

// UpdateTimers fires the timers due by now, earliest first.
func (s *State) UpdateTimers(root widget.Tile) {
	s.enter()
	defer s.leave(root)
	s.fireTimers(root)
}

func (s *State) fireTimers(root widget.Tile) {
	now := s.Now()
	for n := len(s.timers); n > 0; n = len(s.timers) {
		e := s.timers[n-1]
		if e.t.After(now) {
			return
		}
		s.timers = s.timers[:n-1]
		s.send(root, e.id, event.Timer{Handle: e.handle})
	}
}

// fireFrameTimers fires the frame timers pending at the start of the
// call. Timers requested while firing wait for the next frame.
func (s *State) fireFrameTimers(root widget.Tile) {
	if len(s.frameTimers) == 0 {
		return
	}
	due := maps.Keys(s.frameTimers)
	maps.Clear(s.frameTimers)
	slices.SortFunc(due, func(a, b frameTimer) int {
		if c := a.id.Compare(b.id); c != 0 {
			return c
		}
		switch {
		case a.handle < b.handle:
			return -1
		case a.handle > b.handle:
			return 1
		}
		return 0
	})
	for _, f := range due {
		s.send(root, f.id, event.Timer{Handle: f.handle})
	}
}

// pruneTimers drops the timers of widgets not in the tree.
func (s *State) pruneTimers(exists func(widget.Id) bool) {
	s.timers = slices.DeleteFunc(s.timers, func(e timerEntry) bool {
		return !exists(e.id)
	})
	maps.DeleteFunc(s.frameTimers, func(f frameTimer, _ struct{}) bool {
		return !exists(f.id)
	})
}
