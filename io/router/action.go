// SPDX-License-Identifier: Unlicense OR MIT

package router

import "strings"

// Action is a set of requests from the event core to the window.
type Action uint32

const (
	// Redraw requests a new frame.
	Redraw Action = 1 << iota
	// RegionMoved reports that widgets moved relative to the pointer,
	// so hover must be recomputed.
	RegionMoved
	// Resize requests a new layout of the window contents.
	Resize
	// SetSize requests a new layout and a window size matching it.
	SetSize
	// Reconfigure requests a configure pass over the whole tree.
	Reconfigure
	// EventConfig reports a change of the event configuration.
	EventConfig
	// ThemeUpdate reports a change of the theme configuration.
	ThemeUpdate
	// Close requests closing the window.
	Close
	// Exit requests exiting the application.
	Exit
)

// Contain reports whether a includes all of b.
func (a Action) Contain(b Action) bool {
	return a&b == b
}

func (a Action) String() string {
	names := []string{"Redraw", "RegionMoved", "Resize", "SetSize", "Reconfigure", "EventConfig", "ThemeUpdate", "Close", "Exit"}
	var strs []string
	for i, n := range names {
		if a&(1<<i) != 0 {
			strs = append(strs, n)
		}
	}
	if len(strs) == 0 {
		return "None"
	}
	return strings.Join(strs, "|")
}
