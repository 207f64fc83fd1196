// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"time"

	"golang.org/x/exp/slices"

	"gioui.org/retained/config"
	"gioui.org/retained/geom"
	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget"
)

// State is the input state of a window.
type State struct {
	// Now returns the current time. Tests replace it to control
	// timers and velocity estimates.
	Now func() time.Time
	// RefreshRate is the display refresh rate in Hz, used to size the
	// window of velocity estimates.
	RefreshRate float32

	cfg       *config.Config
	shortcuts *key.Shortcuts
	executor  Executor
	action    Action

	hover      widget.Id
	hoverStart time.Time
	cursor     pointer.Cursor
	lastCoord  geom.Coord
	modifiers  key.Modifiers
	lastClick  click

	grabs []*grab
	pans  []*panGrab

	navFocus  widget.Id
	selFocus  widget.Id
	charFocus widget.Id
	navReq    *navRequest

	popups   []popupState
	disabled []widget.Id

	// timers is sorted latest first, so the next timer to fire is
	// the last.
	timers      []timerEntry
	frameTimers map[frameTimer]struct{}
	futures     []pendingFuture

	// pending are events to deliver once the current dispatch
	// completes.
	pending []pendingEvent
	// depth counts nested top-level calls from handlers.
	depth int
}

// click tracks consecutive clicks of a mouse button.
type click struct {
	button pointer.Buttons
	t      time.Time
	coord  geom.Coord
	count  int
}

type pendingEvent struct {
	id widget.Id
	ev event.Event
}

// New returns the state of a window reading its settings from cfg.
// A nil cfg uses the defaults.
func New(cfg *config.Config) *State {
	if cfg == nil {
		cfg = config.Default()
	}
	return &State{
		Now:         time.Now,
		RefreshRate: 60,
		cfg:         cfg,
		shortcuts:   key.DefaultShortcuts(),
		executor:    InlineExecutor{},
		lastCoord:   geom.Pt(-1, -1),
		frameTimers: make(map[frameTimer]struct{}),
	}
}

// Config returns the settings in use.
func (s *State) Config() *config.Config {
	return s.cfg
}

// SetConfig replaces the settings.
func (s *State) SetConfig(cfg *config.Config) {
	s.cfg = cfg
	s.action |= EventConfig
}

// Shortcuts returns the key bindings, which may be modified.
func (s *State) Shortcuts() *key.Shortcuts {
	return s.shortcuts
}

// SetExecutor sets the executor of spawned tasks.
func (s *State) SetExecutor(e Executor) {
	s.executor = e
}

// TakeAction returns and clears the accumulated actions.
func (s *State) TakeAction() Action {
	a := s.action
	s.action = 0
	return a
}

// Redraw requests a new frame.
func (s *State) Redraw() {
	s.action |= Redraw
}

// Hover returns the widget under the pointer.
func (s *State) Hover() (widget.Id, bool) {
	return s.hover, s.hover.IsValid()
}

// Cursor returns the cursor shape requested by the hovered widget.
func (s *State) Cursor() pointer.Cursor {
	for _, g := range s.grabs {
		if g.source.IsMouse() && g.mode == pointer.GrabMove {
			return pointer.CursorGrabbing
		}
	}
	return s.cursor
}

// IsHovered reports whether id is under the pointer.
func (s *State) IsHovered(id widget.Id) bool {
	return id.IsValid() && s.hover == id
}

// HoverStart returns when id became hovered.
func (s *State) HoverStart(id widget.Id) (time.Time, bool) {
	if !s.IsHovered(id) {
		return time.Time{}, false
	}
	return s.hoverStart, true
}

// IsDepressed reports whether id is shown pressed: it holds a press
// which is over it, or it is the parent of an open pop-up.
func (s *State) IsDepressed(id widget.Id) bool {
	if !id.IsValid() {
		return false
	}
	for _, g := range s.grabs {
		if g.depress == id {
			return true
		}
	}
	for _, p := range s.popups {
		if p.Parent == id {
			return true
		}
	}
	return false
}

// HasNavFocus reports whether id has navigation focus.
func (s *State) HasNavFocus(id widget.Id) bool {
	return id.IsValid() && s.navFocus == id
}

// HasSelFocus reports whether id has selection focus.
func (s *State) HasSelFocus(id widget.Id) bool {
	return id.IsValid() && s.selFocus == id
}

// HasCharFocus reports whether id receives text input.
func (s *State) HasCharFocus(id widget.Id) bool {
	return id.IsValid() && s.charFocus == id
}

// NavFocus returns the widget with navigation focus.
func (s *State) NavFocus() (widget.Id, bool) {
	return s.navFocus, s.navFocus.IsValid()
}

// SelFocus returns the widget with selection focus.
func (s *State) SelFocus() (widget.Id, bool) {
	return s.selFocus, s.selFocus.IsValid()
}

// IsDisabled reports whether id or one of its ancestors is disabled.
func (s *State) IsDisabled(id widget.Id) bool {
	for _, d := range s.disabled {
		if d.IsAncestorOf(id) {
			return true
		}
	}
	return false
}

// setDisabled marks the subtree of id as disabled or enabled.
func (s *State) setDisabled(id widget.Id, disabled bool) {
	i, found := slices.BinarySearchFunc(s.disabled, id, widget.Id.Compare)
	switch {
	case disabled && !found:
		s.disabled = slices.Insert(s.disabled, i, id)
	case !disabled && found:
		s.disabled = slices.Delete(s.disabled, i, i+1)
	default:
		return
	}
	log.Debug("router: set disabled", "id", id, "disabled", disabled)
	s.action |= Redraw
}

// post queues ev for delivery to id after the current dispatch.
func (s *State) post(id widget.Id, ev event.Event) {
	if id.IsValid() {
		s.pending = append(s.pending, pendingEvent{id: id, ev: ev})
	}
}

// enter and leave bracket the public entry points. Queued events and
// focus changes are delivered when the outermost call returns.
func (s *State) enter() {
	s.depth++
}

func (s *State) leave(root widget.Tile) {
	if s.depth > 1 {
		s.depth--
		return
	}
	s.flush(root)
	s.depth--
}

func (s *State) flush(root widget.Tile) {
	for {
		if req := s.navReq; req != nil {
			s.navReq = nil
			s.applyNavRequest(root, req)
			continue
		}
		if len(s.pending) == 0 {
			return
		}
		p := s.pending[0]
		s.pending = s.pending[1:]
		s.send(root, p.id, p.ev)
	}
}
