// SPDX-License-Identifier: Unlicense OR MIT

package window

import (
	"errors"
	"image/color"
	"sync/atomic"
	"testing"

	"golang.org/x/image/font"

	"gioui.org/retained/config"
	"gioui.org/retained/draw"
	"gioui.org/retained/geom"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/io/router"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/widget"
	"gioui.org/retained/widget/basic"
)

func TestPlacePopup(t *testing.T) {
	win := geom.Size{W: 100, H: 100}
	size := geom.Size{W: 30, H: 20}
	tests := []struct {
		name   string
		dir    layout.Direction
		anchor geom.Rect
		want   geom.Coord
	}{
		{"down", layout.Down, geom.R(10, 10, 20, 10), geom.Pt(10, 20)},
		{"down flipped", layout.Down, geom.R(10, 85, 20, 10), geom.Pt(10, 65)},
		{"up", layout.Up, geom.R(10, 50, 20, 10), geom.Pt(10, 30)},
		{"up flipped", layout.Up, geom.R(10, 5, 20, 10), geom.Pt(10, 15)},
		{"right", layout.Right, geom.R(10, 10, 20, 10), geom.Pt(30, 10)},
		{"right flipped", layout.Right, geom.R(75, 10, 20, 10), geom.Pt(45, 10)},
		{"left", layout.Left, geom.R(50, 10, 20, 10), geom.Pt(20, 10)},
		{"clamped", layout.Down, geom.R(90, 40, 20, 10), geom.Pt(70, 50)},
		{"full width", layout.Down, geom.R(0, 45, 100, 10), geom.Pt(0, 55)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := placePopup(router.Popup{Direction: test.dir}, test.anchor, size, win)
			if r.Size != size {
				t.Errorf("size %v, want %v", r.Size, size)
			}
			if r.Pos != test.want {
				t.Errorf("placed at %v, want %v", r.Pos, test.want)
			}
		})
	}
}

// recorder is a draw.Draw recording passes and text.
type recorder struct {
	kinds []draw.PassType
	rects []geom.Rect
	texts map[string]draw.PassId
}

func newRecorder() *recorder {
	return &recorder{texts: make(map[string]draw.PassId)}
}

func (r *recorder) NewPass(parent draw.PassId, rect geom.Rect, offset geom.Offset, kind draw.PassType) draw.PassId {
	r.kinds = append(r.kinds, kind)
	r.rects = append(r.rects, rect)
	return draw.PassId(len(r.kinds))
}

func (r *recorder) ClipRect(pass draw.PassId) geom.Rect {
	return geom.R(-10000, -10000, 20000, 20000)
}

func (r *recorder) Rect(pass draw.PassId, rect geom.Rect, c color.NRGBA) {}

func (r *recorder) Frame(pass draw.PassId, outer, inner geom.Rect, c color.NRGBA) {}

func (r *recorder) Text(pass draw.PassId, pos geom.Coord, text string, face font.Face, c color.NRGBA) {
	r.texts[text] = pass
}

func (r *recorder) Image(pass draw.PassId, id draw.ImageId, rect geom.Rect) {}

func center(r geom.Rect) geom.Coord {
	return r.Pos.Add(geom.Offset{X: r.Size.W / 2, Y: r.Size.H / 2})
}

func click(w *Window, c geom.Coord) router.Action {
	a := w.CursorMoved(c)
	a |= w.MouseButton(pointer.ButtonPrimary, true)
	return a | w.MouseButton(pointer.ButtonPrimary, false)
}

func TestPopupPlacedAndDrawn(t *testing.T) {
	mb := basic.NewMenuButton("File", basic.NewMenuEntry("Open", "open"))
	w, err := New(basic.NewList(layout.Right, mb), Size(400, 300))
	if err != nil {
		t.Fatal(err)
	}
	if a := click(w, center(mb.Rect())); !a.Contain(router.Redraw) {
		t.Errorf("opening a menu returned %v", a)
	}
	p := mb.Popup()
	if !p.IsOpen() {
		t.Fatal("menu did not open")
	}
	if got, want := p.Rect().Pos, geom.Pt(mb.Rect().Pos.X, mb.Rect().Max().Y); got != want {
		t.Errorf("pop-up placed at %v, want %v", got, want)
	}
	if p.Rect().Empty() {
		t.Error("pop-up has no size")
	}

	rec := newRecorder()
	w.Draw(rec)
	if len(rec.kinds) != 1 || rec.kinds[0] != draw.PassOverlay {
		t.Fatalf("got passes %v, want one overlay", rec.kinds)
	}
	if rec.rects[0] != p.Rect() {
		t.Errorf("overlay pass %v, want %v", rec.rects[0], p.Rect())
	}
	if pass, ok := rec.texts["Open"]; !ok || pass != 1 {
		t.Errorf("entry drawn in pass %v (%v), want the overlay", pass, ok)
	}
	if pass := rec.texts["File"]; pass != 0 {
		t.Errorf("menu button drawn in pass %v, want the root", pass)
	}

	// Hit testing finds the entry in the pop-up.
	if id, _ := w.State().HitTest(w.Root(), center(p.Rect())); !p.Id().IsAncestorOf(id) {
		t.Errorf("hit test in the pop-up found %v", id)
	}

	w.FocusLost()
	if p.IsOpen() {
		t.Error("focus loss left the menu open")
	}
	rec = newRecorder()
	w.Draw(rec)
	if len(rec.kinds) != 0 {
		t.Errorf("closed pop-up drawn: %v", rec.kinds)
	}
}

func TestScrollRehover(t *testing.T) {
	var lines []widget.Widget
	for i := 0; i < 40; i++ {
		lines = append(lines, basic.NewLabel("line"))
	}
	region := basic.NewScrollRegion(basic.NewList(layout.Down, lines...))
	w, err := New(basic.NewList(layout.Down, region), Size(200, 100))
	if err != nil {
		t.Fatal(err)
	}
	w.CursorMoved(geom.Pt(50, 50))
	before, _ := w.State().Hover()

	if a := w.Wheel(pointer.ScrollDelta{Pixels: geom.Offset{Y: 60}}); !a.Contain(router.Redraw) {
		t.Errorf("scroll returned %v", a)
	}
	after, ok := w.State().Hover()
	if !ok || after == before {
		t.Fatalf("hover stayed on %v after scrolling", before)
	}
	hovered, _ := widget.Find(w.Root(), after)
	if !hovered.Rect().Contains(geom.Pt(50, 50+region.Offset().Y)) {
		t.Errorf("hovered %v at %v is not under the cursor", after, hovered.Rect())
	}
}

// loader spawns a task when its button is clicked and records the
// results.
type loader struct {
	*basic.List
	results []any
}

func (l *loader) HandleMessages(cx *router.Cx) {
	if m, ok := router.TryPop[string](cx); ok && m == "load" {
		cx.Spawn(l.Id(), func() any { return 42 })
	}
	if v, ok := router.TryPop[int](cx); ok {
		l.results = append(l.results, v)
	}
}

func TestSpawnOnGoroutine(t *testing.T) {
	b := basic.NewButton("Load", "load")
	root := &loader{List: basic.NewList(layout.Down, b)}
	exec := NewGoExecutor(2)
	w, err := New(root, Size(200, 100), Executor(exec))
	if err != nil {
		t.Fatal(err)
	}
	click(w, center(b.Rect()))
	if _, ok := w.NextWakeup(); !ok {
		t.Error("no wakeup while a task is pending")
	}
	if err := exec.Wait(); err != nil {
		t.Fatal(err)
	}
	w.Update()
	if len(root.results) != 1 || root.results[0] != 42 {
		t.Errorf("got results %v", root.results)
	}
	if _, ok := w.NextWakeup(); ok {
		t.Error("wakeup with nothing pending")
	}
}

func TestGoExecutorLimit(t *testing.T) {
	exec := NewGoExecutor(1)
	var running, peak atomic.Int32
	release := make(chan struct{})
	var futures []router.Future
	for i := 0; i < 3; i++ {
		i := i
		futures = append(futures, exec.Spawn(func() any {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			<-release
			running.Add(-1)
			return i
		}))
	}
	close(release)
	if err := exec.Wait(); err != nil {
		t.Fatal(err)
	}
	if p := peak.Load(); p != 1 {
		t.Errorf("%d tasks ran at once, want 1", p)
	}
	for i, f := range futures {
		if v, ok := f.Poll(); !ok || v != i {
			t.Errorf("future %d = %v, %v", i, v, ok)
		}
	}
}

func TestGoExecutorPanic(t *testing.T) {
	exec := NewGoExecutor(-1)
	f := exec.Spawn(func() any { panic("boom") })
	if err := exec.Wait(); err == nil {
		t.Error("panicking task reported no error")
	}
	if v, ok := f.Poll(); !ok || v != nil {
		t.Errorf("future of a panicked task = %v, %v", v, ok)
	}
}

func TestSetConfig(t *testing.T) {
	w, err := New(basic.NewList(layout.Down, basic.NewLabel("text")), Size(200, 100))
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Theme.ColorScheme = "dark"
	if _, err := w.SetConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if w.Theme().Palette != theme.DarkPalette() {
		t.Error("dark colour scheme not applied")
	}
	if w.State().Config() != cfg {
		t.Error("event state kept the old configuration")
	}

	bad := config.Default()
	bad.Event.PanDistThresh = -1
	if _, err := w.SetConfig(bad); err == nil {
		t.Error("invalid configuration accepted")
	}
	if _, err := New(basic.NewLabel("x"), Config(bad)); err == nil {
		t.Error("window created with an invalid configuration")
	}
}

func TestScaleFactor(t *testing.T) {
	l := basic.NewLabel("text")
	w, err := New(basic.NewList(layout.Down, l), Size(400, 400))
	if err != nil {
		t.Fatal(err)
	}
	h1 := l.Rect().Size.H
	if _, err := w.SetScaleFactor(2); err != nil {
		t.Fatal(err)
	}
	if h2 := l.Rect().Size.H; h2 <= h1 {
		t.Errorf("label height %d at scale 2, %d at scale 1", h2, h1)
	}
	if _, err := w.SetScaleFactor(0); err == nil {
		t.Error("zero scale factor accepted")
	}
}

func TestResize(t *testing.T) {
	list := basic.NewList(layout.Down, basic.NewButton("One", nil), basic.NewButton("Two", nil))
	w, err := New(list, Size(100, 100))
	if err != nil {
		t.Fatal(err)
	}
	if a := w.Resize(geom.Size{W: 300, H: 200}); !a.Contain(router.Redraw) {
		t.Errorf("resize returned %v", a)
	}
	if got := list.Rect(); got != geom.R(0, 0, 300, 200) {
		t.Errorf("root placed at %v", got)
	}
	ideal := w.IdealSize()
	if ideal.W <= 0 || ideal.H <= 0 || ideal.W >= 300 {
		t.Errorf("ideal size %v", ideal)
	}
	if got := list.Rect(); got != geom.R(0, 0, 300, 200) {
		t.Errorf("ideal size query moved the root to %v", got)
	}
}

func TestAccessibility(t *testing.T) {
	b := basic.NewButton("Save", nil)
	w, err := New(basic.NewList(layout.Down, b), Size(200, 100))
	if err != nil {
		t.Fatal(err)
	}
	nodes := w.Accessibility()
	if len(nodes) != 1 || nodes[0].Role != semantic.List {
		t.Fatalf("got nodes %v", nodes)
	}
	n, ok := semantic.Find(nodes, b.Id())
	if !ok || n.Label != "Save" || n.Bounds != b.Rect() {
		t.Errorf("got button node %v", n)
	}
}

func TestImagesDefault(t *testing.T) {
	w, err := New(basic.NewLabel("x"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = w.Images().Load("missing.png")
	var ierr *draw.ImageError
	if !errors.As(err, &ierr) {
		t.Errorf("load without a file system: %v", err)
	}
}
