// SPDX-License-Identifier: Unlicense OR MIT

/*
Package window ties a widget tree to its event state, theme and
configuration, for a platform shell or a headless driver.

The shell forwards input to the entry points of a Window and acts on
the returned router.Action: Redraw asks for a call to Draw, SetSize
for a window of IdealSize, Close and Exit for ending the window or
the program. Between input events the shell calls Update once per
frame while NextWakeup reports a wakeup time.

	w, err := window.New(root, window.Size(800, 600))
	...
	if a := w.MouseButton(pointer.ButtonPrimary, true); a.Contain(router.Redraw) {
		w.Draw(backend)
	}
*/
package window

import (
	"fmt"
	"log/slog"
	"time"

	"gioui.org/retained/config"
	"gioui.org/retained/draw"
	"gioui.org/retained/geom"
	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/io/router"
	"gioui.org/retained/io/semantic"
	"gioui.org/retained/layout"
	"gioui.org/retained/theme"
	"gioui.org/retained/widget"
)

// Window is a widget tree and the state of its window.
type Window struct {
	root   widget.Widget
	state  *router.State
	theme  *theme.Theme
	cfg    *config.Config
	images *draw.Images

	size   geom.Size
	scale  float32
	cursor geom.Coord
	// inside reports whether the cursor is over the window.
	inside bool
	closed bool
}

// Option configures a window.
type Option func(w *Window)

// shellActions are the actions left for the shell once the window has
// applied the rest.
const shellActions = router.Redraw | router.SetSize | router.Close | router.Exit

// New returns a window showing root, configured and laid out.
func New(root widget.Widget, options ...Option) (*Window, error) {
	w := &Window{
		root:  root,
		cfg:   config.Default(),
		size:  geom.Size{W: 800, H: 600},
		scale: 1,
	}
	for _, o := range options {
		o(w)
	}
	if err := w.cfg.Validate(); err != nil {
		return nil, err
	}
	th, err := theme.New(w.cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	if err := th.SetScaleFactor(w.scale); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	w.theme = th
	st := w.state
	if st == nil {
		st = router.New(w.cfg)
	} else {
		st.SetConfig(w.cfg)
	}
	w.state = st
	if w.images == nil {
		w.images = draw.NewImages(nil)
	}
	w.Configure()
	// The settings above are already in effect.
	w.state.TakeAction()
	return w, nil
}

// Size sets the initial size of the window, in pixels.
func Size(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic("window: size must be positive")
	}
	return func(w *Window) {
		w.size = geom.Size{W: width, H: height}
	}
}

// ScaleFactor sets the initial scale factor of the window.
func ScaleFactor(s float32) Option {
	return func(w *Window) {
		w.scale = s
	}
}

// Config sets the configuration of the window.
func Config(cfg *config.Config) Option {
	return func(w *Window) {
		w.cfg = cfg
	}
}

// Images sets the image cache shared with other windows.
func Images(images *draw.Images) Option {
	return func(w *Window) {
		w.images = images
	}
}

// Executor sets the executor of tasks spawned by widgets.
func Executor(e router.Executor) Option {
	return func(w *Window) {
		if w.state == nil {
			w.state = router.New(nil)
		}
		w.state.SetExecutor(e)
	}
}

// SetLogger directs the logging of the toolkit to l.
func SetLogger(l *slog.Logger) {
	log.SetLogger(l)
}

// SetLogLevel sets the minimum level logged.
func SetLogLevel(l slog.Level) {
	log.SetLevel(l)
}

// Root returns the root widget.
func (w *Window) Root() widget.Widget { return w.root }

// State returns the event state of the window.
func (w *Window) State() *router.State { return w.state }

// Theme returns the theme of the window.
func (w *Window) Theme() *theme.Theme { return w.theme }

// Images returns the image cache of the window.
func (w *Window) Images() *draw.Images { return w.images }

// Size returns the size of the window.
func (w *Window) Size() geom.Size { return w.size }

// Closed reports whether a widget requested closing the window.
func (w *Window) Closed() bool { return w.closed }

// Configure runs a configure pass over the whole tree and lays it out.
func (w *Window) Configure() {
	w.state.Configure(w.root)
	w.layout()
}

// Resize changes the size of the window.
func (w *Window) Resize(size geom.Size) router.Action {
	if size == w.size {
		return 0
	}
	w.size = size
	return w.apply(router.Resize)
}

// SetScaleFactor changes the scale factor, as when the window moves to
// a screen of another density.
func (w *Window) SetScaleFactor(s float32) (router.Action, error) {
	if err := w.theme.SetScaleFactor(s); err != nil {
		return 0, err
	}
	w.scale = s
	return w.apply(router.Resize), nil
}

// SetConfig replaces the configuration of the window.
func (w *Window) SetConfig(cfg *config.Config) (router.Action, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	w.cfg = cfg
	w.state.SetConfig(cfg)
	return w.apply(w.state.TakeAction() | router.ThemeUpdate), nil
}

// IdealSize returns the size the contents would like.
func (w *Window) IdealSize() geom.Size {
	sz := w.theme.SizeCx()
	h := widget.SizeRules(w.root, sz, layout.HorizontalInfo())
	v := widget.SizeRules(w.root, sz, layout.VerticalInfo(h.Ideal))
	size := geom.Size{W: h.Ideal, H: v.Ideal}
	// Sizing restarted the layout sequence.
	w.layout()
	return size
}

func (w *Window) layout() {
	sz := w.theme.SizeCx()
	widget.Resize(w.root, sz, geom.Rect{Size: w.size}, layout.AlignHints{})
	w.placePopups()
}

// CursorMoved handles a move of the mouse cursor to c.
func (w *Window) CursorMoved(c geom.Coord) router.Action {
	w.cursor, w.inside = c, true
	w.state.CursorMoved(w.root, c)
	return w.flush()
}

// CursorLeft handles the cursor leaving the window.
func (w *Window) CursorLeft() router.Action {
	w.inside = false
	w.state.CursorLeft(w.root)
	return w.flush()
}

// MouseButton handles a press or release of a mouse button at the
// last cursor position.
func (w *Window) MouseButton(button pointer.Buttons, pressed bool) router.Action {
	w.state.MouseButton(w.root, button, pressed)
	return w.flush()
}

// Touch handles a touch point.
func (w *Window) Touch(id uint64, phase pointer.Phase, c geom.Coord) router.Action {
	w.state.Touch(w.root, id, phase, c)
	return w.flush()
}

// Wheel handles a scroll of the mouse wheel or touchpad.
func (w *Window) Wheel(delta pointer.ScrollDelta) router.Action {
	w.state.Wheel(w.root, delta)
	return w.flush()
}

// SetModifiers records the modifier keys held.
func (w *Window) SetModifiers(m key.Modifiers) {
	w.state.SetModifiers(m)
}

// Key handles a key press or release.
func (w *Window) Key(e key.Event) router.Action {
	w.state.Key(w.root, e)
	return w.flush()
}

// Text handles text input.
func (w *Window) Text(text string) router.Action {
	w.state.Text(w.root, text)
	return w.flush()
}

// FocusLost handles the window losing input focus.
func (w *Window) FocusLost() router.Action {
	w.state.FocusLost(w.root)
	return w.flush()
}

// Update runs the per-frame work of the event state: timers, pans and
// results of spawned tasks.
func (w *Window) Update() router.Action {
	return w.apply(w.state.Update(w.root))
}

// NextWakeup returns when Update should next be called.
func (w *Window) NextWakeup() (time.Time, bool) {
	if w.state.HasFrameTimers() || w.state.HasFutures() {
		hz := w.state.RefreshRate
		if hz <= 0 {
			hz = 60
		}
		return w.state.Now().Add(time.Duration(float32(time.Second) / hz)), true
	}
	return w.state.NextTimer()
}

// Accessibility returns the semantic tree of the window.
func (w *Window) Accessibility() []semantic.Node {
	return semantic.Tree(w.root, w.state)
}

func (w *Window) flush() router.Action {
	return w.apply(w.state.TakeAction())
}

// apply carries out the actions a handles itself and returns the
// rest.
func (w *Window) apply(a router.Action) router.Action {
	// Hover recomputation may produce further actions; two rounds
	// settle any scroll-then-hover sequence.
	for round := 0; round < 2 && a&^shellActions != 0; round++ {
		a = w.applyOnce(a)
	}
	return a & shellActions
}

func (w *Window) applyOnce(a router.Action) router.Action {
	if a&(router.Close|router.Exit) != 0 {
		w.closed = true
	}
	if a&(router.EventConfig|router.ThemeUpdate) != 0 {
		if err := w.theme.Apply(w.cfg.Theme); err != nil {
			log.Error("window: theme update", "err", err)
		}
		a |= router.Resize
	}
	if a&router.Reconfigure != 0 {
		w.state.Configure(w.root)
		a |= router.Resize
	}
	if a&router.SetSize != 0 {
		w.size = w.IdealSize()
		a |= router.Resize
	}
	if a&router.Resize != 0 {
		w.layout()
		a |= router.Redraw | router.RegionMoved
	} else if a&(router.Redraw|router.RegionMoved) != 0 {
		w.placePopups()
	}
	next := a & shellActions
	if a&router.RegionMoved != 0 && w.inside {
		w.state.CursorMoved(w.root, w.cursor)
		next |= w.state.TakeAction() &^ router.RegionMoved
	}
	return next
}

// Draw draws the window into d: the tree, then each open pop-up above
// it in an overlay pass.
func (w *Window) Draw(d draw.Draw) {
	cx := widget.NewDrawCx(d, w.theme, w.state, w.state.Now())
	cx.Background(geom.Rect{Size: w.size})
	widget.Draw(w.root, cx)
	for _, p := range w.state.Popups() {
		pw, ok := w.popupWidget(p.Id)
		if !ok {
			continue
		}
		t := widget.Translation(w.root, p.Id)
		r := pw.Rect().Add(t.Neg())
		cx.WithPass(r, t.Neg(), draw.PassOverlay, func(cx *widget.DrawCx) {
			widget.Draw(pw, cx)
		})
	}
}
