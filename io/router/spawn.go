// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"fmt"

	"gioui.org/retained/internal/log"
	"gioui.org/retained/widget"
)

// Future is the pending result of a spawned task.
type Future interface {
	// Poll returns the result once the task has completed. It must
	// not block.
	Poll() (any, bool)
}

// Executor runs tasks spawned by widgets. The window provides one
// running tasks on goroutines.
type Executor interface {
	Spawn(task func() any) Future
}

// InlineExecutor runs tasks to completion when spawned.
type InlineExecutor struct{}

type doneFuture struct {
	v any
}

type pendingFuture struct {
	id widget.Id
	f  Future
}

func (InlineExecutor) Spawn(task func() any) Future {
	return doneFuture{v: task()}
}

func (f doneFuture) Poll() (any, bool) {
	return f.v, true
}

// Spawn runs task on the executor. Its result, when not nil, is
// replayed as a message to id in the first frame after it completes.
func (cx *Cx) Spawn(id widget.Id, task func() any) {
	s := cx.s
	s.futures = append(s.futures, pendingFuture{id: id, f: s.executor.Spawn(task)})
	s.action |= Redraw
}

// HasFutures reports whether spawned tasks are pending.
func (s *State) HasFutures() bool {
	return len(s.futures) > 0
}

// pollFutures replays the results of completed tasks.
func (s *State) pollFutures(root widget.Tile) {
	var done []pendingFuture
	rest := s.futures[:0]
	results := make([]any, 0, len(s.futures))
	for _, p := range s.futures {
		v, ok := p.f.Poll()
		if !ok {
			rest = append(rest, p)
			continue
		}
		done = append(done, p)
		results = append(results, v)
	}
	s.futures = rest
	for i, p := range done {
		v := results[i]
		if v == nil {
			continue
		}
		log.Debug("router: task done", "id", p.id, "result", fmt.Sprintf("%T", v))
		s.replay(root, p.id, v)
	}
}
