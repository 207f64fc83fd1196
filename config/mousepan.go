// SPDX-License-Identifier: Unlicense OR MIT

package config

import "fmt"

// MousePan controls when dragging with the mouse pans content, as a
// touch drag does.
type MousePan uint8

const (
	PanNever MousePan = iota
	PanWithAlt
	PanWithCtrl
	PanAlways
)

// Active reports whether a drag pans given the held modifiers.
func (p MousePan) Active(alt, ctrl bool) bool {
	switch p {
	case PanWithAlt:
		return alt
	case PanWithCtrl:
		return ctrl
	case PanAlways:
		return true
	default:
		return false
	}
}

func (p MousePan) MarshalText() ([]byte, error) {
	switch p {
	case PanNever, PanWithAlt, PanWithCtrl, PanAlways:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("config: invalid MousePan %d", p)
	}
}

func (p *MousePan) UnmarshalText(text []byte) error {
	switch string(text) {
	case "never":
		*p = PanNever
	case "alt":
		*p = PanWithAlt
	case "ctrl":
		*p = PanWithCtrl
	case "always":
		*p = PanAlways
	default:
		return fmt.Errorf("config: unknown mouse pan mode %q", text)
	}
	return nil
}

func (p MousePan) String() string {
	switch p {
	case PanNever:
		return "never"
	case PanWithAlt:
		return "alt"
	case PanWithCtrl:
		return "ctrl"
	case PanAlways:
		return "always"
	default:
		panic("unreachable")
	}
}
