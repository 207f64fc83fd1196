// SPDX-License-Identifier: Unlicense OR MIT

/*
Package config holds the tunables of the toolkit: event handling
delays and thresholds, and theme settings. A Config is plain data; the
window reads it but never persists it. Load and Save use TOML.

A configuration file only needs the keys it changes:

	[event]
	menu_delay_ms = 400
	mouse_pan = "ctrl"

	[theme]
	font_size = 16
*/
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the complete set of tunables.
type Config struct {
	Event EventConfig `toml:"event"`
	Theme ThemeConfig `toml:"theme"`
}

// EventConfig tunes input handling.
type EventConfig struct {
	// MenuDelayMs is the hover delay before a sub-menu opens.
	MenuDelayMs uint32 `toml:"menu_delay_ms"`
	// TouchSelectDelayMs is how long a touch must be held to start
	// a text selection rather than a pan.
	TouchSelectDelayMs uint32 `toml:"touch_select_delay_ms"`
	// KineticTimeoutMs is how long after the last movement a
	// released pan still flings.
	KineticTimeoutMs uint32 `toml:"kinetic_timeout_ms"`
	// KineticDecayMul and KineticDecaySub decay fling velocity per
	// second: v = v*mul - sub.
	KineticDecayMul float32 `toml:"kinetic_decay_mul"`
	KineticDecaySub float32 `toml:"kinetic_decay_sub"`
	// KineticGrabSub is the decay applied while a fling is held.
	KineticGrabSub float32 `toml:"kinetic_grab_sub"`
	// ScrollDistEm is the distance of one wheel step, in em.
	ScrollDistEm float32 `toml:"scroll_dist_em"`
	// PanDistThresh is the distance in dp a press must move before
	// it turns into a pan.
	PanDistThresh float32 `toml:"pan_dist_thresh"`
	// DoubleClickMs is the interval within which repeated presses
	// count as a multi-click.
	DoubleClickMs uint32 `toml:"double_click_ms"`
	// MousePan controls when a mouse drag pans content.
	MousePan MousePan `toml:"mouse_pan"`
	// MouseTextPan is MousePan over text.
	MouseTextPan MousePan `toml:"mouse_text_pan"`
	// MouseWheelActions lets the wheel change values of widgets
	// such as sliders and spinners.
	MouseWheelActions bool `toml:"mouse_wheel_actions"`
	// MouseNavFocus gives navigation focus to clicked widgets.
	MouseNavFocus bool `toml:"mouse_nav_focus"`
	// TouchNavFocus gives navigation focus to touched widgets.
	TouchNavFocus bool `toml:"touch_nav_focus"`
}

// ThemeConfig tunes the theme.
type ThemeConfig struct {
	// FontSize is the size of standard text, in sp.
	FontSize float32 `toml:"font_size"`
	// ScaleFactor overrides the platform's scale factor when non-zero.
	ScaleFactor float32 `toml:"scale_factor"`
	// ColorScheme is "light" or "dark".
	ColorScheme string `toml:"color_scheme"`
	// TransitionMs is the duration of hover transitions.
	TransitionMs uint32 `toml:"transition_ms"`
}

// Default returns the default configuration.
func Default() *Config {
	textPan := PanWithCtrl
	if runtime.GOOS == "windows" {
		textPan = PanWithAlt
	}
	return &Config{
		Event: EventConfig{
			MenuDelayMs:        250,
			TouchSelectDelayMs: 1000,
			KineticTimeoutMs:   50,
			KineticDecayMul:    0.625,
			KineticDecaySub:    200,
			KineticGrabSub:     10000,
			ScrollDistEm:       4.5,
			PanDistThresh:      5,
			DoubleClickMs:      1000,
			MousePan:           PanAlways,
			MouseTextPan:       textPan,
			MouseWheelActions:  true,
			MouseNavFocus:      true,
			TouchNavFocus:      true,
		},
		Theme: ThemeConfig{
			FontSize:     14,
			ColorScheme:  "light",
			TransitionMs: 150,
		},
	}
}

// Load decodes a configuration from r. Keys missing from r keep their
// default values; unknown keys are an error.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile is Load for the file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Save encodes c to w.
func (c *Config) Save(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate reports values outside their meaningful range.
func (c *Config) Validate() error {
	var errs []error
	e := &c.Event
	if e.KineticDecayMul <= 0 || e.KineticDecayMul > 1 {
		errs = append(errs, fmt.Errorf("config: kinetic_decay_mul %g not in (0, 1]", e.KineticDecayMul))
	}
	if e.KineticDecaySub < 0 || e.KineticGrabSub < 0 {
		errs = append(errs, errors.New("config: negative kinetic decay"))
	}
	if e.PanDistThresh < 0 {
		errs = append(errs, fmt.Errorf("config: negative pan_dist_thresh %g", e.PanDistThresh))
	}
	if c.Theme.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("config: font_size %g must be positive", c.Theme.FontSize))
	}
	if c.Theme.ScaleFactor < 0 {
		errs = append(errs, fmt.Errorf("config: negative scale_factor %g", c.Theme.ScaleFactor))
	}
	switch c.Theme.ColorScheme {
	case "light", "dark":
	default:
		errs = append(errs, fmt.Errorf("config: unknown color_scheme %q", c.Theme.ColorScheme))
	}
	return errors.Join(errs...)
}

func ms(v uint32) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// MenuDelay returns MenuDelayMs as a Duration.
func (e *EventConfig) MenuDelay() time.Duration { return ms(e.MenuDelayMs) }

// TouchSelectDelay returns TouchSelectDelayMs as a Duration.
func (e *EventConfig) TouchSelectDelay() time.Duration { return ms(e.TouchSelectDelayMs) }

// KineticTimeout returns KineticTimeoutMs as a Duration.
func (e *EventConfig) KineticTimeout() time.Duration { return ms(e.KineticTimeoutMs) }

// DoubleClick returns DoubleClickMs as a Duration.
func (e *EventConfig) DoubleClick() time.Duration { return ms(e.DoubleClickMs) }

// Transition returns TransitionMs as a Duration.
func (t *ThemeConfig) Transition() time.Duration { return ms(t.TransitionMs) }
