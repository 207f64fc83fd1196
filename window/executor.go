// SPDX-License-Identifier: Unlicense OR MIT

package window

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"gioui.org/retained/internal/log"
	"gioui.org/retained/io/router"
)

// GoExecutor runs spawned tasks on goroutines, at most a fixed number
// at a time. Spawn never blocks: tasks beyond the limit wait for a
// free slot on their own goroutine.
type GoExecutor struct {
	g       errgroup.Group
	waiting sync.WaitGroup
}

type goFuture struct {
	done chan struct{}
	v    any
}

// NewGoExecutor returns an executor running at most limit tasks at
// once. A negative limit means no limit.
func NewGoExecutor(limit int) *GoExecutor {
	e := new(GoExecutor)
	e.g.SetLimit(limit)
	return e
}

func (e *GoExecutor) Spawn(task func() any) router.Future {
	f := &goFuture{done: make(chan struct{})}
	run := func() (err error) {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("window: task panicked: %v", r)
				log.Error("window: spawned task", "err", err)
			}
		}()
		f.v = task()
		return nil
	}
	if e.g.TryGo(run) {
		return f
	}
	e.waiting.Add(1)
	go func() {
		defer e.waiting.Done()
		e.g.Go(run)
	}()
	return f
}

// Wait blocks until every spawned task has completed and returns the
// first task failure. It must not run concurrently with Spawn.
func (e *GoExecutor) Wait() error {
	e.waiting.Wait()
	return e.g.Wait()
}

func (f *goFuture) Poll() (any, bool) {
	select {
	case <-f.done:
		return f.v, true
	default:
		return nil, false
	}
}
