// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"math"
	"time"

	"golang.org/x/exp/slices"

	"gioui.org/retained/geom"
	"gioui.org/retained/internal/fling"
	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget"
)

// grab routes the movement and release of one press to its owner.
type grab struct {
	id     widget.Id
	source pointer.PressSource
	mode   pointer.GrabMode
	start  geom.Coord
	last   geom.Coord
	// depress is the widget drawn pressed: the owner while a click
	// grab is over it.
	depress widget.Id
	vel     fling.Velocity
}

// panGrab combines up to two presses of a pan grab.
type panGrab struct {
	id     widget.Id
	mode   pointer.GrabMode
	n      int
	points [2]panPoint
	moved  bool
}

type panPoint struct {
	source     pointer.PressSource
	start, cur geom.Vec2
}

// RequestGrab routes the movement and release of press to id. It
// reports false if the press source is already grabbed. A touch press
// joins an existing pan grab of id holding one point.
func (cx *Cx) RequestGrab(id widget.Id, press pointer.PressStart, mode pointer.GrabMode) bool {
	s := cx.s
	if s.findGrab(press.Source) >= 0 {
		log.Debug("router: grab refused", "id", id, "source", press.Source)
		return false
	}
	g := &grab{id: id, source: press.Source, mode: mode, start: press.Coord, last: press.Coord}
	if mode == pointer.GrabClick {
		g.depress = id
	}
	s.grabs = append(s.grabs, g)
	if mode.IsPan() {
		s.addPanPoint(id, mode, press)
	}
	s.action |= Redraw
	log.Debug("router: grab", "id", id, "source", press.Source, "mode", mode)
	return true
}

// ReleaseGrab cancels the grabs held by id. The owner receives a
// PressEnd without success for each.
func (cx *Cx) ReleaseGrab(id widget.Id) {
	s := cx.s
	for i := len(s.grabs) - 1; i >= 0; i-- {
		if g := s.grabs[i]; g.id == id {
			s.endGrab(i)
			s.post(id, pointer.PressEnd{Source: g.source, Coord: g.last})
		}
	}
}

// PressVelocity returns the velocity in pixels per second of the
// grabbed press from source. The velocity is zero if the press has
// not moved within the kinetic timeout.
func (cx *Cx) PressVelocity(source pointer.PressSource) (geom.Vec2, bool) {
	s := cx.s
	i := s.findGrab(source)
	if i < 0 {
		return geom.Vec2{}, false
	}
	g := s.grabs[i]
	now := s.Now()
	last, ok := g.vel.Last()
	if !ok || now.Sub(last) > s.cfg.Event.KineticTimeout() {
		return geom.Vec2{}, true
	}
	return g.vel.Estimate(now, fling.Window(s.RefreshRate)), true
}

// IsGrabbed reports whether id holds a grab.
func (s *State) IsGrabbed(id widget.Id) bool {
	for _, g := range s.grabs {
		if g.id == id {
			return true
		}
	}
	return false
}

func (s *State) findGrab(source pointer.PressSource) int {
	return slices.IndexFunc(s.grabs, func(g *grab) bool {
		return g.source.Same(source)
	})
}

// endGrab removes grab i and its pan point.
func (s *State) endGrab(i int) {
	g := s.grabs[i]
	s.grabs = slices.Delete(s.grabs, i, i+1)
	if g.mode.IsPan() {
		s.removePanPoint(g.id, g.source)
	}
	s.action |= Redraw
	log.Debug("router: grab end", "id", g.id, "source", g.source)
}

func (s *State) addPanPoint(id widget.Id, mode pointer.GrabMode, press pointer.PressStart) {
	c := press.Coord.Vec2()
	pt := panPoint{source: press.Source, start: c, cur: c}
	if press.Source.IsTouch() {
		for _, p := range s.pans {
			if p.id == id && p.n == 1 {
				p.points[0].start = p.points[0].cur
				p.points[1] = pt
				p.n = 2
				return
			}
		}
	}
	s.pans = append(s.pans, &panGrab{id: id, mode: mode, n: 1, points: [2]panPoint{pt}})
}

func (s *State) removePanPoint(id widget.Id, source pointer.PressSource) {
	for i, p := range s.pans {
		if p.id != id {
			continue
		}
		for j := 0; j < p.n; j++ {
			if !p.points[j].source.Same(source) {
				continue
			}
			if j == 0 {
				p.points[0] = p.points[1]
			}
			p.n--
			if p.n == 0 {
				s.pans = slices.Delete(s.pans, i, i+1)
			} else {
				p.points[0].start = p.points[0].cur
			}
			return
		}
	}
}

func (s *State) movePanPoint(g *grab, c geom.Coord) {
	for _, p := range s.pans {
		if p.id != g.id {
			continue
		}
		for j := 0; j < p.n; j++ {
			if p.points[j].source.Same(g.source) {
				p.points[j].cur = c.Vec2()
				p.moved = true
				return
			}
		}
	}
}

// sendPans delivers one Pan event to each pan grab that moved.
func (s *State) sendPans(root widget.Tile) {
	for _, p := range slices.Clone(s.pans) {
		if !p.moved {
			continue
		}
		p.moved = false
		ev := p.transform()
		for j := 0; j < p.n; j++ {
			p.points[j].start = p.points[j].cur
		}
		s.send(root, p.id, ev)
	}
}

// transform returns the Pan mapping the start of the points to their
// current position.
func (p *panGrab) transform() pointer.Pan {
	alpha := geom.Vec2{X: 1}
	p0, c0 := p.points[0].start, p.points[0].cur
	if p.n == 2 {
		sv := p.points[1].start.Sub(p0)
		cv := p.points[1].cur.Sub(c0)
		if n := sv.X*sv.X + sv.Y*sv.Y; n > 0 {
			alpha = geom.Vec2{
				X: (cv.X*sv.X + cv.Y*sv.Y) / n,
				Y: (cv.Y*sv.X - cv.X*sv.Y) / n,
			}
		}
	}
	switch p.mode {
	case pointer.GrabPanOnly:
		alpha = geom.Vec2{X: 1}
	case pointer.GrabPanScale:
		alpha = geom.Vec2{X: alpha.Len()}
	case pointer.GrabPanRotate:
		if l := alpha.Len(); l > 0 {
			alpha = alpha.Mul(1 / l)
		}
	}
	// delta = c0 - alpha*p0, with complex multiplication.
	delta := geom.Vec2{
		X: c0.X - (alpha.X*p0.X - alpha.Y*p0.Y),
		Y: c0.Y - (alpha.X*p0.Y + alpha.Y*p0.X),
	}
	return pointer.Pan{Alpha: alpha, Delta: delta}
}

// translate moves the coordinates of ev into the space of a child
// offset by off.
func translate(ev event.Event, off geom.Offset) event.Event {
	if off == (geom.Offset{}) {
		return ev
	}
	switch e := ev.(type) {
	case pointer.PressStart:
		e.Coord = e.Coord.Add(off)
		return e
	case pointer.PressMove:
		e.Coord = e.Coord.Add(off)
		return e
	case pointer.PressEnd:
		e.Coord = e.Coord.Add(off)
		return e
	case pointer.CursorMove:
		e.Coord = e.Coord.Add(off)
		return e
	}
	return ev
}

// inPopup reports whether id lies in an open pop-up.
func (s *State) inPopup(id widget.Id) bool {
	for _, p := range s.popups {
		if p.Id.IsAncestorOf(id) {
			return true
		}
	}
	return false
}

// setHover makes id the hovered widget. While a pop-up is open only
// widgets inside pop-ups are hovered.
func (s *State) setHover(root widget.Tile, id widget.Id) {
	if len(s.popups) > 0 && !s.inPopup(id) {
		id = ""
	}
	if id == s.hover {
		return
	}
	old := s.hover
	s.hover = id
	s.hoverStart = s.Now()
	s.cursor = pointer.CursorDefault
	if w, ok := widget.Find(root, id); ok {
		if c, ok := w.(Cursorer); ok {
			s.cursor = c.Cursor()
		}
	}
	s.action |= Redraw
	log.Trace("router: hover", "id", id)
	s.post(old, event.MouseHover{})
	s.post(id, event.MouseHover{Hovered: true})
}

// CursorMoved handles a mouse cursor move to c, in window
// coordinates.
func (s *State) CursorMoved(root widget.Tile, c geom.Coord) {
	s.enter()
	defer s.leave(root)
	delta := c.Sub(s.lastCoord)
	s.lastCoord = c
	hit, _ := s.HitTest(root, c)
	s.setHover(root, hit)

	grabbed := false
	for _, g := range slices.Clone(s.grabs) {
		if !g.source.IsMouse() {
			continue
		}
		grabbed = true
		s.moveGrab(root, g, hit, c)
	}
	if grabbed {
		return
	}
	if n := len(s.popups); n > 0 {
		ev := pointer.PressMove{
			Source: pointer.MouseSource(0, 1),
			Id:     hit,
			Coord:  c,
			Delta:  delta,
		}
		if s.send(root, s.popups[n-1].Parent, ev) {
			return
		}
	}
	if s.hover.IsValid() {
		s.send(root, s.hover, pointer.CursorMove{Coord: c})
	}
}

// moveGrab moves the press of g to c, over the widget hit.
func (s *State) moveGrab(root widget.Tile, g *grab, hit widget.Id, c geom.Coord) {
	delta := c.Sub(g.last)
	if delta == (geom.Offset{}) {
		return
	}
	g.last = c
	g.vel.Add(s.Now(), delta.Vec2())
	switch {
	case g.mode == pointer.GrabClick:
		depress := widget.Id("")
		if g.id.IsAncestorOf(hit) {
			depress = g.id
		}
		if depress != g.depress {
			g.depress = depress
			s.action |= Redraw
		}
	case g.mode.IsPan():
		s.movePanPoint(g, c)
		s.action |= Redraw
	default:
		s.send(root, g.id, pointer.PressMove{
			Source:  g.source,
			Id:      hit,
			Coord:   c,
			Delta:   delta,
			Grabbed: true,
		})
	}
}

// CursorLeft handles the cursor leaving the window.
func (s *State) CursorLeft(root widget.Tile) {
	s.enter()
	defer s.leave(root)
	if len(s.grabs) == 0 {
		s.setHover(root, "")
	}
}

// MouseButton handles a press or release of button at the last cursor
// position. Presses of the same button within the double-click
// interval count as repetitions.
func (s *State) MouseButton(root widget.Tile, button pointer.Buttons, pressed bool) {
	s.enter()
	defer s.leave(root)
	c := s.lastCoord
	hit, _ := s.HitTest(root, c)
	if !pressed {
		for _, g := range slices.Clone(s.grabs) {
			if b, ok := g.source.Button(); ok && b == button {
				s.endHeldPress(root, g, hit, c, true)
			}
		}
		return
	}
	now := s.Now()
	if s.lastClick.button == button && !s.clickTimeout(now) {
		s.lastClick.count++
	} else {
		s.lastClick.count = 1
	}
	s.lastClick.button = button
	s.lastClick.t = now
	s.lastClick.coord = c
	source := pointer.MouseSource(button, s.lastClick.count)
	if s.findGrab(source) >= 0 {
		return
	}
	s.sendPopupFirst(root, hit, pointer.PressStart{Source: source, Id: hit, Coord: c, Modifiers: s.modifiers})
}

// endPress ends grab i with the press at c over hit.
func (s *State) endPress(root widget.Tile, i int, hit widget.Id, c geom.Coord, success bool) {
	g := s.grabs[i]
	s.endGrab(i)
	s.send(root, g.id, pointer.PressEnd{Source: g.source, Id: hit, Coord: c, Success: success})
}

// endHeldPress ends g if it is still held. PressEnd handlers may
// release other grabs, so callers ending several grabs iterate over a
// copy and call this for each.
func (s *State) endHeldPress(root widget.Tile, g *grab, hit widget.Id, c geom.Coord, success bool) {
	if i := s.findGrab(g.source); i >= 0 && s.grabs[i] == g {
		s.endPress(root, i, hit, c, success)
	}
}

// Touch handles a change of phase of the touch point id at c.
func (s *State) Touch(root widget.Tile, id uint64, phase pointer.Phase, c geom.Coord) {
	s.enter()
	defer s.leave(root)
	source := pointer.TouchSource(id)
	hit, _ := s.HitTest(root, c)
	switch phase {
	case pointer.Begin:
		s.sendPopupFirst(root, hit, pointer.PressStart{Source: source, Id: hit, Coord: c, Modifiers: s.modifiers})
	case pointer.Move:
		if i := s.findGrab(source); i >= 0 {
			s.moveGrab(root, s.grabs[i], hit, c)
		}
	case pointer.End, pointer.Cancel:
		if i := s.findGrab(source); i >= 0 {
			s.endPress(root, i, hit, c, phase == pointer.End)
		}
	}
}

// Wheel handles a scroll over the hovered widget.
func (s *State) Wheel(root widget.Tile, delta pointer.ScrollDelta) {
	s.enter()
	defer s.leave(root)
	s.sendPopupFirst(root, s.hover, pointer.Scroll{Delta: delta})
}

// FocusLost handles the window losing input focus: pop-ups close,
// grabs are cancelled and the hover is cleared.
func (s *State) FocusLost(root widget.Tile) {
	s.enter()
	defer s.leave(root)
	if len(s.popups) > 0 {
		s.closePopups(0, false)
	}
	grabs := slices.Clone(s.grabs)
	for i := len(grabs) - 1; i >= 0; i-- {
		s.endHeldPress(root, grabs[i], "", grabs[i].last, false)
	}
	s.modifiers = 0
	s.setHover(root, "")
}

// distance returns the euclidean length of o.
func distance(o geom.Offset) float64 {
	return math.Hypot(float64(o.X), float64(o.Y))
}

// PressDistance returns how far the grabbed press from source has
// moved from where it started.
func (s *State) PressDistance(source pointer.PressSource) (float64, bool) {
	i := s.findGrab(source)
	if i < 0 {
		return 0, false
	}
	g := s.grabs[i]
	return distance(g.last.Sub(g.start)), true
}

// clickTimeout reports whether a press at t is too late to continue
// the previous click sequence.
func (s *State) clickTimeout(t time.Time) bool {
	return t.Sub(s.lastClick.t) > s.cfg.Event.DoubleClick()
}
