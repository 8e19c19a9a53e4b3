// Package errors provides structured error handling for the Loom toolkit.
package errors

import "fmt"

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindInvalidChannelName indicates an empty or malformed channel name.
	KindInvalidChannelName
	// KindBusDestroyed indicates an operation on a cleared channel bus.
	KindBusDestroyed
	// KindNonWritableChannel indicates an attempt to overwrite a channel
	// registered as non-writable.
	KindNonWritableChannel
	// KindChannelNotFound indicates removal of a channel that does not exist.
	KindChannelNotFound
	// KindNonRemovableChannel indicates removal of a channel registered as
	// non-removable.
	KindNonRemovableChannel
	// KindDuplicateListener indicates a listener name collision for one
	// event type on one component.
	KindDuplicateListener
	// KindNilListener indicates a nil listener or hook was supplied.
	KindNilListener
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindInvalidChannelName:
		return "invalid channel name"
	case KindBusDestroyed:
		return "bus destroyed"
	case KindNonWritableChannel:
		return "non-writable channel"
	case KindChannelNotFound:
		return "channel not found"
	case KindNonRemovableChannel:
		return "non-removable channel"
	case KindDuplicateListener:
		return "duplicate listener"
	case KindNilListener:
		return "nil listener"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BusError reports a channel bus contract violation. It is always returned
// synchronously from the call that caused it, never from a deferred task.
type BusError struct {
	// Op is the operation that failed (e.g., "bus.Handle").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Channel is the channel name involved, if any.
	Channel string
}

func (e *BusError) Error() string {
	return render(e.Op, e.Kind, e.Channel)
}

// ListenerError reports an event-listener registration failure on a component.
type ListenerError struct {
	// Component is the key of the component involved.
	Component string
	// Event is the event type (e.g., "click").
	Event string
	// Name is the listener name that collided or was invalid.
	Name string
	// Kind categorizes the error.
	Kind Kind
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("component %s: %s for %q listener %q", e.Component, e.Kind, e.Event, e.Name)
}

// HookError reports a hook entry that could not be invoked.
type HookError struct {
	// Phase is the hook phase name (e.g., "init").
	Phase string
	// Index is the position of the bad entry in registration order.
	Index int
	// Kind categorizes the error.
	Kind Kind
}

func (e *HookError) Error() string {
	return fmt.Sprintf("hook %s[%d]: %s", e.Phase, e.Index, e.Kind)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "hooks.Fire").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// render produces the message for a bus error. Message text is a pure
// function of the variant fields; no template table is consulted.
func render(op string, kind Kind, channel string) string {
	if channel != "" {
		return fmt.Sprintf("%s: %s: %q", op, kind, channel)
	}
	return fmt.Sprintf("%s: %s", op, kind)
}

// KindOf extracts the Kind from any error produced by this package.
// It returns KindUnknown for foreign errors and nil.
func KindOf(err error) Kind {
	switch e := err.(type) {
	case *BusError:
		return e.Kind
	case *ListenerError:
		return e.Kind
	case *HookError:
		return e.Kind
	case *PanicError:
		return KindPanic
	default:
		return KindUnknown
	}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
