// Package style carries style edits between property-editor panels and the
// preview surface. The transport is a second channel-bus instance keyed by
// CSS-like property names; the package also provides parsing helpers for
// the value kinds panels edit (colors, lengths, edge shorthands).
package style

import (
	"github.com/go-loom/loom/pkg/bus"
	"github.com/go-loom/loom/pkg/scheduler"
)

// PropertyBus routes property edits by CSS-like property name. Each
// property has at most one watcher, the preview; edits published before the
// watcher registers are queued and delivered once it does.
type PropertyBus struct {
	bus *bus.Bus
}

// NewPropertyBus creates a property bus dispatching on sched.
func NewPropertyBus(sched *scheduler.Scheduler) *PropertyBus {
	return &PropertyBus{bus: bus.New(sched)}
}

// Watch registers fn as the watcher for prop.
func (p *PropertyBus) Watch(prop string, fn func(value string)) error {
	return p.bus.Handle(prop, func(ev *bus.Event, args ...any) {
		if len(args) == 0 {
			return
		}
		if v, ok := args[0].(string); ok {
			fn(v)
		}
	})
}

// Unwatch removes the watcher for prop.
func (p *PropertyBus) Unwatch(prop string) error {
	return p.bus.Remove(prop)
}

// Publish delivers a new value for prop to its watcher, queueing if none
// is registered yet.
func (p *PropertyBus) Publish(prop, value string) error {
	return p.bus.Invoke(prop, nil, value)
}

// Watched reports whether prop currently has a watcher.
func (p *PropertyBus) Watched(prop string) bool {
	ok, err := p.bus.Has(prop)
	return err == nil && ok
}

// Close destroys the bus; the property bus is unusable afterwards.
func (p *PropertyBus) Close() {
	p.bus.Clear()
}
