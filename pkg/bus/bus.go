// Package bus implements a per-instance named-channel registry with
// deferred, queued invocation. Each channel holds at most one listener.
// Invocations targeting a channel that does not exist yet are queued and
// drained, in insertion order, the moment the channel is defined.
//
// A Bus is confined to the scheduler's logical thread: all methods must be
// called from tasks running on the owning Scheduler (or before it starts).
// Dispatch itself is always deferred through the scheduler, so contract
// violations are reported synchronously at the call site while listener
// execution happens on a later task.
package bus

import (
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/scheduler"
)

// Listener handles invocations on a single channel. The Event carries a
// one-shot send capability for replying to the invoker.
type Listener func(ev *Event, args ...any)

// Event is passed to a listener on each dispatch.
type Event struct {
	channel string
	sent    bool
	value   any
}

// Channel returns the name of the channel being dispatched.
func (e *Event) Channel() string { return e.channel }

// Send records the reply value for the invoker. Only the first call has
// any effect.
func (e *Event) Send(v any) {
	if e.sent {
		return
	}
	e.sent = true
	e.value = v
}

type channel struct {
	fn        Listener
	removable bool
	writable  bool
}

// Bus is a named-channel registry. The zero value is not usable; construct
// with New.
type Bus struct {
	sched     *scheduler.Scheduler
	channels  map[string]*channel
	pending   map[string][]func()
	destroyed bool
}

// New creates an empty bus whose dispatches run on sched.
func New(sched *scheduler.Scheduler) *Bus {
	return &Bus{
		sched:    sched,
		channels: make(map[string]*channel),
		pending:  make(map[string][]func()),
	}
}

// check validates the bus state and channel name for an operation.
func (b *Bus) check(op, name string) error {
	if b.destroyed {
		return &errors.BusError{Op: op, Kind: errors.KindBusDestroyed, Channel: name}
	}
	if name == "" {
		return &errors.BusError{Op: op, Kind: errors.KindInvalidChannelName}
	}
	return nil
}

// Handle registers fn as the listener for name with default flags: the
// channel may be overwritten and removed later.
func (b *Bus) Handle(name string, fn Listener) error {
	return b.HandleWith(name, fn, true, true)
}

// HandleWith registers fn as the listener for name. A channel registered
// with writable=false rejects later Handle calls for the same name; one
// registered with removable=false rejects Remove and is never overwritable
// regardless of writable: a listener that cannot be removed cannot be
// replaced either.
//
// If invocations were queued for name before any listener existed, they are
// drained in insertion order before this call returns; the listener runs
// for each of them on subsequent scheduler tasks.
func (b *Bus) HandleWith(name string, fn Listener, removable, writable bool) error {
	if err := b.check("bus.Handle", name); err != nil {
		return err
	}
	if fn == nil {
		return &errors.BusError{Op: "bus.Handle", Kind: errors.KindNilListener, Channel: name}
	}
	if existing, ok := b.channels[name]; ok && !existing.writable {
		return &errors.BusError{Op: "bus.Handle", Kind: errors.KindNonWritableChannel, Channel: name}
	}
	b.channels[name] = &channel{fn: fn, removable: removable, writable: writable && removable}

	if queued, ok := b.pending[name]; ok {
		delete(b.pending, name)
		for _, thunk := range queued {
			thunk()
		}
	}
	return nil
}

// Invoke dispatches the channel's listener with args on a later scheduler
// task. If reply is non-nil it is called after the listener returns with
// the value passed to Event.Send; ok is false when Send was never called.
// If no channel named name exists yet, the dispatch is queued until one is
// registered.
func (b *Bus) Invoke(name string, reply func(value any, ok bool), args ...any) error {
	if err := b.check("bus.Invoke", name); err != nil {
		return err
	}
	b.dispatch(name, reply, args)
	return nil
}

// dispatch either schedules the listener call or queues itself for the
// channel's eventual registration. Queued thunks re-run dispatch, which
// then finds the listener.
func (b *Bus) dispatch(name string, reply func(any, bool), args []any) {
	if b.destroyed {
		return
	}
	ch, ok := b.channels[name]
	if !ok {
		b.pending[name] = append(b.pending[name], func() {
			b.dispatch(name, reply, args)
		})
		return
	}
	fn := ch.fn
	b.sched.Post(func() {
		if b.destroyed {
			return
		}
		ev := &Event{channel: name}
		fn(ev, args...)
		if reply != nil {
			reply(ev.value, ev.sent)
		}
	})
}

// Remove deletes the channel and any invocations still queued for it.
func (b *Bus) Remove(name string) error {
	if err := b.check("bus.Remove", name); err != nil {
		return err
	}
	ch, ok := b.channels[name]
	if !ok {
		return &errors.BusError{Op: "bus.Remove", Kind: errors.KindChannelNotFound, Channel: name}
	}
	if !ch.removable {
		return &errors.BusError{Op: "bus.Remove", Kind: errors.KindNonRemovableChannel, Channel: name}
	}
	delete(b.channels, name)
	delete(b.pending, name)
	return nil
}

// Has reports whether a channel named name exists.
func (b *Bus) Has(name string) (bool, error) {
	if err := b.check("bus.Has", name); err != nil {
		return false, err
	}
	_, ok := b.channels[name]
	return ok, nil
}

// Names returns the registered channel names in unspecified order.
func (b *Bus) Names() ([]string, error) {
	if b.destroyed {
		return nil, &errors.BusError{Op: "bus.Names", Kind: errors.KindBusDestroyed}
	}
	names := make([]string, 0, len(b.channels))
	for name := range b.channels {
		names = append(names, name)
	}
	return names, nil
}

// Clear irreversibly destroys every channel and pending queue. Every
// subsequent operation on the bus fails with the destroyed state.
func (b *Bus) Clear() {
	b.channels = nil
	b.pending = nil
	b.destroyed = true
}
