// Package surface defines the rendering-surface handle a component wraps.
// The host shell supplies concrete surfaces; the component tree only asks a
// Factory for "a surface of kind X" and drives it through this interface.
// It knows nothing about windows, processes, or native menus.
package surface

// Listener receives events triggered on a surface.
type Listener func(data any)

// BindOptions alter how a listener is attached.
type BindOptions struct {
	// Once detaches the listener after its first delivery.
	Once bool
}

// Binding represents one attached listener.
type Binding interface {
	// Cancel detaches the listener. Cancel is idempotent.
	Cancel()
}

// Surface is the drawable, attachable object a component owns.
type Surface interface {
	// Kind returns the surface kind it was created with (e.g., "div").
	Kind() string

	// SetID assigns the surface identifier. ID returns it.
	SetID(id string)
	ID() string

	// Append attaches child under this surface; Detach removes it.
	Append(child Surface)
	Detach(child Surface)

	// Attribute access. Attr reports ok=false for absent attributes.
	// AttrNames lists the set attributes in sorted order.
	SetAttr(name, value string)
	Attr(name string) (string, bool)
	RemoveAttr(name string)
	AttrNames() []string

	// Style access, one declaration at a time. StyleNames lists the set
	// properties in sorted order.
	SetStyle(prop, value string)
	Style(prop string) (string, bool)
	StyleNames() []string

	// Text content of this surface, not including children.
	SetText(text string)
	Text() string

	// Bind attaches a listener for event and returns its binding.
	Bind(event string, fn Listener, opts BindOptions) Binding

	// Trigger delivers an event to every bound listener. The host calls
	// this from its input pipeline; Click is the native primary action.
	Trigger(event string, data any)
	Click()

	// Visibility of the surface.
	SetVisible(visible bool)
	Visible() bool
}

// Factory produces a new surface of the requested kind.
type Factory func(kind string) Surface
