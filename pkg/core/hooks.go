package core

import (
	"github.com/go-loom/loom/pkg/errors"
)

// HookPhase names an extension point in the component lifecycle.
type HookPhase string

const (
	// HookInit fires right after a component is created and registered,
	// before its options are applied.
	HookInit HookPhase = "init"
	// HookOptionApply fires after a component's options have been applied.
	HookOptionApply HookPhase = "option-apply"
	// HookPreRender fires during the first Render, after children are
	// attached and before the surface identifier is assigned.
	HookPreRender HookPhase = "pre-render"
)

// Hook is a callback registered for a lifecycle phase.
type Hook func(*Component)

// HookToken identifies one registration so the caller can deregister it.
type HookToken struct {
	phase HookPhase
	id    uint64
}

type hookEntry struct {
	id uint64
	fn Hook
}

// Hooks holds the per-context hook registry. Hooks fire in registration
// order, not priority order.
type Hooks struct {
	nextID  uint64
	entries map[HookPhase][]hookEntry
}

// NewHooks creates an empty hook registry.
func NewHooks() *Hooks {
	return &Hooks{entries: make(map[HookPhase][]hookEntry)}
}

// Register appends fn to the phase's list and returns a token for
// deregistration. A nil fn is accepted but reported, not invoked, when the
// phase fires.
func (h *Hooks) Register(phase HookPhase, fn Hook) HookToken {
	h.nextID++
	tok := HookToken{phase: phase, id: h.nextID}
	h.entries[phase] = append(h.entries[phase], hookEntry{id: tok.id, fn: fn})
	return tok
}

// Deregister removes the registration identified by tok. Unknown tokens
// are ignored.
func (h *Hooks) Deregister(tok HookToken) {
	list := h.entries[tok.phase]
	for i, entry := range list {
		if entry.id == tok.id {
			h.entries[tok.phase] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Len returns the number of hooks registered for phase.
func (h *Hooks) Len(phase HookPhase) int {
	return len(h.entries[phase])
}

// Fire invokes every hook for phase in registration order. A nil entry is
// reported through report rather than invoked, and a panicking hook is
// reported the same way; sibling hooks always run.
func (h *Hooks) Fire(phase HookPhase, report errors.Handler, c *Component) {
	list := h.entries[phase]
	snapshot := make([]hookEntry, len(list))
	copy(snapshot, list)
	for i, entry := range snapshot {
		if entry.fn == nil {
			if report != nil {
				report.HandleError(&errors.HookError{
					Phase: string(phase),
					Index: i,
					Kind:  errors.KindNilListener,
				})
			}
			continue
		}
		func() {
			defer errors.Recover(report, "hooks.Fire")
			entry.fn(c)
		}()
	}
}
