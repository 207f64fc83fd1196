// SPDX-License-Identifier: Unlicense OR MIT

// Command tilegallery renders a gallery of widgets without a display.
// It replays a script of input events against the gallery and writes
// a PNG image of the window after each step.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"gioui.org/retained/config"
	"gioui.org/retained/draw"
	"gioui.org/retained/draw/raster"
	"gioui.org/retained/geom"
	"gioui.org/retained/io/key"
	"gioui.org/retained/io/pointer"
	"gioui.org/retained/widget"
	"gioui.org/retained/window"
)

var (
	configPath = flag.String("config", "", "TOML configuration file.")
	outDir     = flag.String("out", ".", "directory receiving the PNG frames.")
	sizeFlag   = flag.String("size", "640x480", "window size in pixels, as WIDTHxHEIGHT.")
	scale      = flag.Float64("scale", 1, "scale factor.")
	verbose    = flag.Bool("v", false, "log routing decisions.")
)

type options struct {
	cfg   *config.Config
	out   string
	size  geom.Size
	scale float32
}

func main() {
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "tilegallery: %v\n", err)
		os.Exit(1)
	}
}

func mainErr() error {
	if *verbose {
		window.SetLogLevel(slog.LevelDebug)
	}
	opts := options{
		cfg:   config.Default(),
		out:   *outDir,
		scale: float32(*scale),
	}
	if *configPath != "" {
		cfg, err := config.LoadFile(*configPath)
		if err != nil {
			return err
		}
		opts.cfg = cfg
	}
	size, err := parseSize(*sizeFlag)
	if err != nil {
		return err
	}
	opts.size = size
	files, err := run(opts)
	for _, f := range files {
		fmt.Println(f)
	}
	return err
}

func parseSize(s string) (geom.Size, error) {
	var sz geom.Size
	if _, err := fmt.Sscanf(s, "%dx%d", &sz.W, &sz.H); err != nil {
		return geom.Size{}, fmt.Errorf("invalid -size %q: %w", s, err)
	}
	if sz.W <= 0 || sz.H <= 0 {
		return geom.Size{}, fmt.Errorf("invalid -size %q", s)
	}
	return sz, nil
}

// clock is the time source of the replay, advanced by the script.
type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

// session is a gallery window being replayed.
type session struct {
	w    *window.Window
	g    *gallery
	clk  *clock
	exec *window.GoExecutor
}

type step struct {
	name string
	run  func(s *session) error
}

var script = []step{
	{"initial", func(s *session) error { return nil }},
	{"hover", func(s *session) error {
		s.w.CursorMoved(center(s.g.inc.Rect()))
		return nil
	}},
	{"click", func(s *session) error {
		s.click(center(s.g.inc.Rect()))
		s.click(center(s.g.inc.Rect()))
		return nil
	}},
	{"menu", func(s *session) error {
		s.click(center(s.g.menu.Rect()))
		if !s.g.menu.Popup().IsOpen() {
			return errors.New("menu did not open")
		}
		return nil
	}},
	{"submenu", func(s *session) error {
		s.w.CursorMoved(s.windowCenter(s.g.help.Rect(), s.g.help.Id()))
		s.frames(s.w.State().Config().Event.MenuDelay() + 50*time.Millisecond)
		if !s.g.help.Popup().IsOpen() {
			return errors.New("sub-menu did not open")
		}
		return nil
	}},
	{"about", func(s *session) error {
		s.click(s.windowCenter(s.g.about.Rect(), s.g.about.Id()))
		if s.g.menu.Popup().IsOpen() {
			return errors.New("menu still open")
		}
		return nil
	}},
	{"scroll", func(s *session) error {
		s.w.CursorMoved(center(s.g.region.Rect()))
		s.w.Wheel(pointer.ScrollDelta{Lines: geom.Vec2{Y: 2}})
		return nil
	}},
	{"fling", func(s *session) error {
		c := center(s.g.region.Rect())
		s.w.CursorMoved(c)
		s.w.MouseButton(pointer.ButtonPrimary, true)
		for i := 0; i < 5; i++ {
			s.clk.advance(10 * time.Millisecond)
			c.Y -= 12
			s.w.CursorMoved(c)
		}
		s.w.MouseButton(pointer.ButtonPrimary, false)
		s.frames(2 * time.Second)
		return nil
	}},
	{"keyboard", func(s *session) error {
		s.w.Key(key.Event{Name: key.NameTab, State: key.Press})
		s.w.Key(key.Event{Name: key.NameTab, State: key.Press})
		s.w.Key(key.Event{Name: key.NameSpace, State: key.Press})
		return nil
	}},
	{"load", func(s *session) error {
		s.click(center(s.g.load.Rect()))
		if err := s.exec.Wait(); err != nil {
			return err
		}
		s.w.Update()
		return nil
	}},
}

// run replays the script and returns the files written.
func run(opts options) ([]string, error) {
	images := draw.NewImages(nil)
	g, err := newGallery(images)
	if err != nil {
		return nil, err
	}
	clk := &clock{t: time.Unix(0, 0)}
	exec := window.NewGoExecutor(4)
	w, err := window.New(g,
		window.Config(opts.cfg),
		window.Size(opts.size.W, opts.size.H),
		window.ScaleFactor(opts.scale),
		window.Images(images),
		window.Executor(exec),
	)
	if err != nil {
		return nil, err
	}
	w.State().Now = clk.now
	s := &session{w: w, g: g, clk: clk, exec: exec}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return nil, err
	}

	r := raster.New(images)
	var files []string
	var eg errgroup.Group
	eg.SetLimit(4)
	for i, st := range script {
		if err := st.run(s); err != nil {
			return files, fmt.Errorf("step %s: %w", st.name, err)
		}
		s.clk.advance(time.Second)
		w.Update()
		img := s.render(r)
		path := filepath.Join(opts.out, fmt.Sprintf("%02d-%s.png", i, st.name))
		files = append(files, path)
		eg.Go(func() error {
			return writePNG(path, img)
		})
	}
	return files, eg.Wait()
}

func (s *session) click(c geom.Coord) {
	s.w.CursorMoved(c)
	s.w.MouseButton(pointer.ButtonPrimary, true)
	s.clk.advance(60 * time.Millisecond)
	s.w.MouseButton(pointer.ButtonPrimary, false)
}

// frames runs frame updates for d, or until nothing is pending.
func (s *session) frames(d time.Duration) {
	end := s.clk.t.Add(d)
	for {
		next, ok := s.w.NextWakeup()
		if !ok || next.After(end) {
			break
		}
		if next.After(s.clk.t) {
			s.clk.t = next
		} else {
			s.clk.advance(time.Millisecond)
		}
		s.w.Update()
	}
	s.clk.t = end
	s.w.Update()
}

// windowCenter returns the window coordinates of the centre of r,
// given in the coordinates of widget id.
func (s *session) windowCenter(r geom.Rect, id widget.Id) geom.Coord {
	return center(r).Add(widget.Translation(s.w.Root(), id).Neg())
}

func (s *session) render(r *raster.Rasterizer) *image.RGBA {
	size := s.w.Size()
	r.Begin(geom.Rect{Size: size})
	s.w.Draw(r)
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	r.Render(img)
	return img
}

func center(r geom.Rect) geom.Coord {
	return r.Pos.Add(geom.Offset{X: r.Size.W / 2, Y: r.Size.H / 2})
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
