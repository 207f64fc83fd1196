// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"gioui.org/retained/widget"
)

// Update runs the per-frame work: pan events for moved pan grabs,
// frame timers, results of completed tasks and due timers. It returns
// the actions accumulated since the last call.
func (s *State) Update(root widget.Tile) Action {
	s.enter()
	s.sendPans(root)
	s.fireFrameTimers(root)
	s.pollFutures(root)
	s.fireTimers(root)
	s.leave(root)
	return s.TakeAction()
}
