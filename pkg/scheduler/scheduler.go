// Package scheduler provides the single-threaded task queue that every
// deferred operation in the toolkit runs on. There is exactly one logical
// thread of control: tasks interleave on the queue, they never run in
// parallel. Post and After are safe to call from any goroutine; the tasks
// themselves execute on whichever goroutine drives Run or Pump.
package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

type task struct {
	due time.Time
	seq uint64
	fn  func()
}

// Scheduler is an ordered queue of closures with a run-after-delay primitive.
// Tasks with the same due time run in submission order; tasks with different
// delays race according to delay value, not call order.
type Scheduler struct {
	mu    sync.Mutex
	clk   clock.Clock
	tasks []task
	seq   uint64
	wake  chan struct{}
}

// New creates a Scheduler backed by the wall clock.
func New() *Scheduler {
	return NewWithClock(clock.New())
}

// NewWithClock creates a Scheduler backed by the given clock. Tests pass a
// *clock.Mock and advance it instead of sleeping.
func NewWithClock(clk clock.Clock) *Scheduler {
	return &Scheduler{
		clk:  clk,
		wake: make(chan struct{}, 1),
	}
}

// Post schedules fn to run as soon as the queue is drained.
func (s *Scheduler) Post(fn func()) {
	s.After(0, fn)
}

// After schedules fn to run once d has elapsed. There is no cancellation:
// a scheduled task cannot be aborted once submitted.
func (s *Scheduler) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	t := task{due: s.clk.Now().Add(d), seq: s.seq, fn: fn}
	s.seq++
	// Insert keeping (due, seq) order. Queues stay small enough that a
	// sorted slice beats a heap on constant factors.
	i := sort.Search(len(s.tasks), func(i int) bool {
		if s.tasks[i].due.Equal(t.due) {
			return s.tasks[i].seq > t.seq
		}
		return s.tasks[i].due.After(t.due)
	})
	s.tasks = append(s.tasks, task{})
	copy(s.tasks[i+1:], s.tasks[i:])
	s.tasks[i] = t
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of queued tasks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// popDue removes and returns the first task due at or before now.
func (s *Scheduler) popDue(now time.Time) (task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tasks) == 0 || s.tasks[0].due.After(now) {
		return task{}, false
	}
	t := s.tasks[0]
	s.tasks = s.tasks[1:]
	return t, true
}

// nextDue returns the due time of the earliest task.
func (s *Scheduler) nextDue() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tasks) == 0 {
		return time.Time{}, false
	}
	return s.tasks[0].due, true
}

// Pump runs every task that is due at the current clock time, including
// tasks submitted with zero delay by the tasks themselves. It returns the
// number of tasks executed. Pump is how tests and headless callers drive
// deferred work deterministically.
func (s *Scheduler) Pump() int {
	ran := 0
	for {
		t, ok := s.popDue(s.clk.Now())
		if !ok {
			return ran
		}
		t.fn()
		ran++
	}
}

// Run drives the queue until ctx is canceled, sleeping between due times.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		now := s.clk.Now()
		if t, ok := s.popDue(now); ok {
			t.fn()
			continue
		}
		due, ok := s.nextDue()
		if !ok {
			select {
			case <-s.wake:
			case <-ctx.Done():
				return
			}
			continue
		}
		timer := s.clk.Timer(due.Sub(now))
		select {
		case <-timer.C:
		case <-s.wake:
			timer.Stop()
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}
