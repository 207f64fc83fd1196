// SPDX-License-Identifier: Unlicense OR MIT

/*
Package theme implements the sizes, fonts and colours widgets are
drawn with.

A Theme answers two kinds of questions. Through SizeCx, widgets ask
for the size of features (frames, margins, text, check boxes) at the
window's scale factor while computing their SizeRules. Through its
Draw methods, widgets paint those features onto a draw.Draw backend.
*/
package theme

import (
	"fmt"
	"image/color"
	"time"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"

	"gioui.org/retained/config"
	"gioui.org/retained/font/gofont"
	"gioui.org/retained/unit"
)

// State is the set of input states a widget is drawn in.
type State uint8

const (
	Hover State = 1 << iota
	Depress
	NavFocus
	SelFocus
	Disabled
)

// Palette is the set of colours of a theme.
type Palette struct {
	Background   color.NRGBA
	Surface      color.NRGBA
	Text         color.NRGBA
	TextDisabled color.NRGBA
	Frame        color.NRGBA
	Accent       color.NRGBA
	Hover        color.NRGBA
	Focus        color.NRGBA
	Popup        color.NRGBA
}

// Theme is the flat theme.
type Theme struct {
	Palette Palette

	cfg    config.ThemeConfig
	scale  float32
	metric unit.Metric
	face   font.Face
	mono   font.Face
	dims   dimensions
}

// dimensions are the theme's feature sizes in pixels at the current
// scale.
type dimensions struct {
	frame      int
	margin     uint16
	inner      uint16
	checkBox   int
	scrollBar  int
	menuPad    int
	lineHeight int
	ascent     int
	monoCell   int
}

// New returns a theme for cfg at scale factor 1.
func New(cfg config.ThemeConfig) (*Theme, error) {
	t := &Theme{scale: 1}
	if err := t.Apply(cfg); err != nil {
		return nil, err
	}
	return t, nil
}

// Apply replaces the configuration of t.
func (t *Theme) Apply(cfg config.ThemeConfig) error {
	t.cfg = cfg
	switch cfg.ColorScheme {
	case "dark":
		t.Palette = DarkPalette()
	default:
		t.Palette = LightPalette()
	}
	return t.rebuild()
}

// SetScaleFactor changes the scale factor, as after a DPI change.
// A scale factor set in the configuration takes precedence.
func (t *Theme) SetScaleFactor(s float32) error {
	if s <= 0 {
		return fmt.Errorf("theme: invalid scale factor %g", s)
	}
	t.scale = s
	return t.rebuild()
}

// ScaleFactor returns the effective scale factor.
func (t *Theme) ScaleFactor() float32 {
	if t.cfg.ScaleFactor > 0 {
		return t.cfg.ScaleFactor
	}
	return t.scale
}

func (t *Theme) rebuild() error {
	t.metric = unit.Scaled(t.ScaleFactor(), 1)
	size := float64(t.metric.Sp(unit.Sp(t.cfg.FontSize)))
	face, err := gofont.Regular(size)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	mono, err := gofont.Mono(size)
	if err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	t.face, t.mono = face, mono
	m := face.Metrics()
	adv, _ := mono.GlyphAdvance('M')
	t.dims = dimensions{
		frame:      t.metric.Dp(2),
		margin:     t.metric.U16(4),
		inner:      t.metric.U16(2),
		checkBox:   t.metric.Dp(18),
		scrollBar:  t.metric.Dp(8),
		menuPad:    t.metric.Dp(6),
		lineHeight: m.Height.Ceil(),
		ascent:     m.Ascent.Ceil(),
		monoCell:   adv.Ceil(),
	}
	return nil
}

// Face returns the face of standard text, or monospace text if mono.
func (t *Theme) Face(mono bool) font.Face {
	if mono {
		return t.mono
	}
	return t.face
}

// SizeCx returns the sizing context of t.
func (t *Theme) SizeCx() SizeCx {
	return SizeCx{t: t}
}

// HoverBlend returns how far a hover transition started since ago has
// progressed, from 0 to 1.
func (t *Theme) HoverBlend(since time.Duration) float32 {
	d := t.cfg.Transition()
	if d <= 0 || since >= d {
		return 1
	}
	if since <= 0 {
		return 0
	}
	return float32(since) / float32(d)
}

// Transition returns the duration of hover transitions.
func (t *Theme) Transition() time.Duration {
	return t.cfg.Transition()
}

// LightPalette returns the default colours.
func LightPalette() Palette {
	return Palette{
		Background:   nrgba(colornames.White),
		Surface:      nrgba(colornames.Whitesmoke),
		Text:         nrgba(colornames.Black),
		TextDisabled: nrgba(colornames.Darkgray),
		Frame:        nrgba(colornames.Gray),
		Accent:       nrgba(colornames.Steelblue),
		Hover:        nrgba(colornames.Lightsteelblue),
		Focus:        nrgba(colornames.Orange),
		Popup:        nrgba(colornames.Gainsboro),
	}
}

// DarkPalette returns colours for dark backgrounds.
func DarkPalette() Palette {
	return Palette{
		Background:   color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff},
		Surface:      nrgba(colornames.Dimgray),
		Text:         nrgba(colornames.White),
		TextDisabled: nrgba(colornames.Gray),
		Frame:        nrgba(colornames.Silver),
		Accent:       nrgba(colornames.Cornflowerblue),
		Hover:        nrgba(colornames.Slategray),
		Focus:        nrgba(colornames.Gold),
		Popup:        nrgba(colornames.Darkslategray),
	}
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// mix returns the blend of a and b at t in [0, 1].
func mix(a, b color.NRGBA, t float32) color.NRGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
