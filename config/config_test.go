// SPDX-License-Identifier: Unlicense OR MIT

package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
)

func TestLoadPartial(t *testing.T) {
	c, err := Load(strings.NewReader(`
[event]
menu_delay_ms = 400
mouse_pan = "ctrl"

[theme]
color_scheme = "dark"
`))
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Event.MenuDelay(); got != 400*time.Millisecond {
		t.Errorf("MenuDelay = %v, want 400ms", got)
	}
	if c.Event.MousePan != PanWithCtrl {
		t.Errorf("MousePan = %v, want ctrl", c.Event.MousePan)
	}
	if c.Theme.ColorScheme != "dark" {
		t.Errorf("ColorScheme = %q", c.Theme.ColorScheme)
	}
	def := Default()
	if c.Event.PanDistThresh != def.Event.PanDistThresh || c.Theme.FontSize != def.Theme.FontSize {
		t.Errorf("unset keys lost their defaults: %+v", c)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(strings.NewReader("[event]\nmenu_delay = 3\n"))
	var strict *toml.StrictMissingError
	if !errors.As(err, &strict) {
		t.Fatalf("err = %v, want StrictMissingError", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	for _, src := range []string{
		"[event]\nmouse_pan = \"sometimes\"\n",
		"[event]\nkinetic_decay_mul = 2.0\n",
		"[theme]\ncolor_scheme = \"purple\"\n",
		"[theme\n",
	} {
		if _, err := Load(strings.NewReader(src)); err == nil {
			t.Errorf("Load(%q) succeeded", src)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	c := Default()
	c.Event.MouseTextPan = PanNever
	c.Theme.ScaleFactor = 1.5
	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `mouse_text_pan = 'never'`) && !strings.Contains(buf.String(), `mouse_text_pan = "never"`) {
		t.Errorf("saved config lacks mouse_text_pan:\n%s", buf.String())
	}
	got, err := Load(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *c {
		t.Errorf("reloaded %+v, want %+v", got, c)
	}
}

func TestMousePanActive(t *testing.T) {
	if PanNever.Active(true, true) {
		t.Error("PanNever active")
	}
	if !PanWithAlt.Active(true, false) || PanWithAlt.Active(false, true) {
		t.Error("PanWithAlt wrong")
	}
	if !PanAlways.Active(false, false) {
		t.Error("PanAlways inactive")
	}
}
