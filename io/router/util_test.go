// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"gioui.org/retained/geom"
	"gioui.org/retained/io/event"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget"
)

// node is a widget recording the events and messages it receives.
type node struct {
	widget.Core
	name   string
	t      *tree
	r      geom.Rect
	kids   []*node
	nav    bool
	hidden bool

	onEvent    func(cx *Cx, ev event.Event) event.IsUsed
	onUnused   func(cx *Cx, index int, ev event.Event) event.IsUsed
	onMessages func(cx *Cx)
	onSteal    func(cx *Cx, id widget.Id, ev event.Event) event.IsUsed
}

func (n *node) NumChildren() int { return len(n.kids) }

func (n *node) Child(i int) widget.Tile {
	if i < 0 || i >= len(n.kids) {
		return nil
	}
	return n.kids[i]
}

func (n *node) Navigable() bool { return n.nav }

func (n *node) Hidden() bool { return n.hidden }

func (n *node) HandleEvent(cx *Cx, ev event.Event) event.IsUsed {
	n.t.record(n.name, describe(ev))
	if n.onEvent != nil {
		return n.onEvent(cx, ev)
	}
	return event.Unused
}

func (n *node) HandleUnused(cx *Cx, index int, ev event.Event) event.IsUsed {
	if n.onUnused != nil {
		return n.onUnused(cx, index, ev)
	}
	return event.Unused
}

func (n *node) HandleMessages(cx *Cx) {
	n.t.record(n.name, "messages")
	if n.onMessages != nil {
		n.onMessages(cx)
	}
}

func (n *node) StealEvent(cx *Cx, id widget.Id, ev event.Event) event.IsUsed {
	if n.onSteal != nil {
		return n.onSteal(cx, id, ev)
	}
	return event.Unused
}

// tree is the test widget tree:
//
//	root  (0,0)-(200,200)
//	├ a   (0,0)-(100,100) navigable
//	│ └ a0 (10,10)-(40,40)
//	├ b   (100,0)-(200,100) navigable
//	└ pop (0,120)-(80,180) hidden
//	  ├ pop0 (0,120)-(80,150) navigable
//	  └ pop1 (0,150)-(80,180) navigable
type tree struct {
	root, a, a0, b, pop, pop0, pop1 *node

	s     *State
	clock *clock
	log   []string
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTree() *tree {
	t := &tree{clock: &clock{t: time.Unix(1000, 0)}}
	mk := func(name string, r geom.Rect, kids ...*node) *node {
		return &node{name: name, t: t, r: r, kids: kids}
	}
	t.a0 = mk("a0", geom.R(10, 10, 30, 30))
	t.a = mk("a", geom.R(0, 0, 100, 100), t.a0)
	t.b = mk("b", geom.R(100, 0, 100, 100))
	t.pop0 = mk("pop0", geom.R(0, 120, 80, 30))
	t.pop1 = mk("pop1", geom.R(0, 150, 80, 30))
	t.pop = mk("pop", geom.R(0, 120, 80, 60), t.pop0, t.pop1)
	t.root = mk("root", geom.R(0, 0, 200, 200), t.a, t.b, t.pop)
	t.a.nav, t.b.nav, t.pop0.nav, t.pop1.nav = true, true, true, true
	t.pop.hidden = true

	t.s = New(nil)
	t.s.Now = t.clock.now
	t.configure()
	return t
}

// configure assigns ids and places every node at its rectangle.
func (t *tree) configure() {
	t.s.Configure(t.root)
	var place func(n *node)
	place = func(n *node) {
		n.StoreRect(n.r)
		for _, k := range n.kids {
			place(k)
		}
	}
	place(t.root)
	t.s.TakeAction()
	t.log = nil
}

func (t *tree) record(name, what string) {
	if what == "MouseHover" {
		return
	}
	t.log = append(t.log, name+" "+what)
}

// takeLog returns and clears the recorded events.
func (t *tree) takeLog() []string {
	l := t.log
	t.log = nil
	return l
}

// do runs fn with a dispatch context, delivering queued events after.
func (t *tree) do(fn func(cx *Cx)) {
	t.s.enter()
	fn(t.s.newCx(t.root))
	t.s.leave(t.root)
}

func (t *tree) click(c geom.Coord) {
	t.s.CursorMoved(t.root, c)
	t.s.MouseButton(t.root, pointer.ButtonPrimary, true)
	t.s.MouseButton(t.root, pointer.ButtonPrimary, false)
}

func describe(ev event.Event) string {
	switch e := ev.(type) {
	case event.Timer:
		return fmt.Sprintf("Timer(%d)", e.Handle.Code())
	case key.Command:
		return "Command(" + e.String() + ")"
	}
	s := fmt.Sprintf("%T", ev)
	return s[strings.IndexByte(s, '.')+1:]
}

func used(cx *Cx, ev event.Event) event.IsUsed { return event.Used }

func expectLog(t *testing.T, tr *tree, want ...string) {
	t.Helper()
	got := tr.takeLog()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events:\n got %q\nwant %q", got, want)
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3*max(1, math.Abs(float64(b)))
}

func pt(x, y int) geom.Coord { return geom.Pt(x, y) }

func pressStart(ev event.Event) (pointer.PressStart, bool) {
	e, ok := ev.(pointer.PressStart)
	return e, ok
}

func keyPress(name key.Name) key.Event {
	return key.Event{Name: name, State: key.Press}
}
