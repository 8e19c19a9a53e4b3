package core

import (
	"strings"
	"time"

	"github.com/go-loom/loom/pkg/bus"
	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/surface"
)

// LifecycleEvent names a per-component lifecycle listener list.
type LifecycleEvent string

const (
	// LifecycleRender fires when the component's first Render completes.
	LifecycleRender LifecycleEvent = "render"
	// LifecycleAdd fires after the component is attached to a parent.
	LifecycleAdd LifecycleEvent = "add"
	// LifecycleDestroy fires when deferred destruction begins.
	LifecycleDestroy LifecycleEvent = "destroy"
)

// EventFunc handles a surface event with the owning component as receiver.
type EventFunc func(c *Component, data any)

// Scheduling delays for deferred component operations. Deferred operations
// with different delays race according to delay value, not call order.
const (
	addNotifyDelay     = 10 * time.Millisecond
	destroyDelay       = 10 * time.Millisecond
	releaseDelay       = 100 * time.Millisecond
	removeAllInterval  = 15 * time.Millisecond
	optionReleaseDelay = 250 * time.Millisecond
)

type eventRecord struct {
	binding surface.Binding
}

// Component is a node in the UI tree. It owns a rendering-surface handle,
// a per-component channel bus, and zero or more children. A component is
// owned by its parent (roots have none) and by the context's component
// registry; assigning an index name additionally registers it with the
// indexed lookup registry.
type Component struct {
	key       string
	kind      string
	ctx       *Context
	surface   surface.Surface
	rendered  bool
	visible   bool
	destroyed bool

	bus       *bus.Bus
	lifecycle map[LifecycleEvent][]func(*Component)
	events    map[string]map[string]*eventRecord

	parent     *Component
	children   []*Component
	childByKey map[string]*Component

	indexName string

	// Data is an arbitrary user-attached bag; panels stash style state here.
	Data map[string]any
}

// New creates a component of the given surface kind, registers it with the
// context, runs init hooks, applies opts, then runs option-apply hooks.
func New(ctx *Context, kind string, opts ...Option) *Component {
	c := &Component{
		key:        newKey(),
		kind:       kind,
		ctx:        ctx,
		surface:    ctx.surfaces(kind),
		visible:    true,
		bus:        bus.New(ctx.sched),
		lifecycle:  make(map[LifecycleEvent][]func(*Component)),
		events:     make(map[string]map[string]*eventRecord),
		childByKey: make(map[string]*Component),
		Data:       make(map[string]any),
	}
	ctx.register(c)
	ctx.hooks.Fire(HookInit, ctx.errs, c)
	applyOptions(ctx, c, opts)
	ctx.hooks.Fire(HookOptionApply, ctx.errs, c)
	return c
}

// Key returns the component's immutable registry key.
func (c *Component) Key() string { return c.key }

// Kind returns the surface kind the component was created with.
func (c *Component) Kind() string { return c.kind }

// Surface returns the owned rendering-surface handle.
func (c *Component) Surface() surface.Surface { return c.surface }

// Parent returns the owning component, nil for roots.
func (c *Component) Parent() *Component { return c.parent }

// Children returns the current child components in attachment order.
func (c *Component) Children() []*Component {
	out := make([]*Component, len(c.children))
	copy(out, c.children)
	return out
}

// Child returns the attached child with the given key.
func (c *Component) Child(key string) (*Component, bool) {
	child, ok := c.childByKey[key]
	return child, ok
}

// Rendered reports whether the first Render has completed.
func (c *Component) Rendered() bool { return c.rendered }

// Destroyed reports whether Destroy has been called.
func (c *Component) Destroyed() bool { return c.destroyed }

// Bus returns the component's own channel bus.
func (c *Component) Bus() *bus.Bus { return c.bus }

// IndexName returns the externally assigned lookup name, or "".
func (c *Component) IndexName() string { return c.indexName }

// OnLifecycle appends fn to the listener list for ev.
func (c *Component) OnLifecycle(ev LifecycleEvent, fn func(*Component)) {
	if fn == nil {
		return
	}
	c.lifecycle[ev] = append(c.lifecycle[ev], fn)
}

func (c *Component) notify(ev LifecycleEvent) {
	list := c.lifecycle[ev]
	snapshot := make([]func(*Component), len(list))
	copy(snapshot, list)
	for _, fn := range snapshot {
		fn(c)
	}
}

// Render performs the deferred first render: it recursively renders and
// attaches every current child whose recorded parent is this component,
// runs pre-render hooks, assigns the component key as the surface
// identifier, and fires render lifecycle listeners. Subsequent calls are
// no-ops returning the existing surface handle.
func (c *Component) Render() surface.Surface {
	if c.rendered {
		return c.surface
	}
	for _, child := range c.children {
		if child.parent == nil || child.parent.key != c.key {
			continue
		}
		c.surface.Append(child.Render())
	}
	c.ctx.hooks.Fire(HookPreRender, c.ctx.errs, c)
	c.surface.SetID(c.key)
	c.rendered = true
	c.notify(LifecycleRender)
	return c.surface
}

// Add attaches a child, given either a *Component or an index-name string.
// A string resolves through the indexed lookup registry, which may complete
// asynchronously relative to this call (the name may not be assigned yet).
// Add lifecycle listeners fire on a deferred task; the surface attachment
// itself happens immediately. Returns the parent for chaining.
func (c *Component) Add(child any) *Component {
	switch v := child.(type) {
	case *Component:
		c.addComponent(v)
	case string:
		err := c.ctx.Resolve(v, func(resolved *Component) {
			if c.destroyed || resolved.destroyed {
				return
			}
			c.addComponent(resolved)
		})
		if err != nil {
			c.ctx.errs.HandleError(err)
		}
	}
	return c
}

func (c *Component) addComponent(child *Component) {
	if child == nil || child == c {
		return
	}
	if _, attached := c.childByKey[child.key]; attached {
		return
	}
	c.ctx.sched.After(addNotifyDelay, func() {
		child.notify(LifecycleAdd)
	})
	child.parent = c
	c.children = append(c.children, child)
	c.childByKey[child.key] = child
	c.surface.Append(child.Render())
}

// Remove destroys one child, resolved by index name or direct reference.
// Unknown children are ignored.
func (c *Component) Remove(child any) *Component {
	switch v := child.(type) {
	case *Component:
		if v != nil && c.childByKey[v.key] == v {
			v.Destroy()
		}
	case string:
		for _, existing := range c.children {
			if existing.indexName == v {
				existing.Destroy()
				break
			}
		}
	}
	return c
}

// RemoveAll destroys every current child at a fixed interval cadence, one
// per tick rather than simultaneously, and invokes done once the last
// child's destruction has run.
func (c *Component) RemoveAll(done func()) {
	targets := c.Children()
	if len(targets) == 0 {
		if done != nil {
			c.ctx.sched.Post(done)
		}
		return
	}
	i := 0
	var step func()
	step = func() {
		targets[i].Destroy()
		i++
		if i == len(targets) {
			if done != nil {
				c.ctx.sched.After(destroyDelay, done)
			}
			return
		}
		c.ctx.sched.After(removeAllInterval, step)
	}
	c.ctx.sched.After(removeAllInterval, step)
}

// On registers fn for the surface event type under name. An empty name gets
// a random identifier. An explicit name must be unique among this
// component's listeners for the event type.
func (c *Component) On(eventType, name string, fn EventFunc) error {
	return c.OnWith(eventType, name, fn, surface.BindOptions{})
}

// OnWith is On with explicit binding options.
func (c *Component) OnWith(eventType, name string, fn EventFunc, opts surface.BindOptions) error {
	if fn == nil {
		return &errors.ListenerError{
			Component: c.key, Event: eventType, Name: name,
			Kind: errors.KindNilListener,
		}
	}
	if name == "" {
		name = newKey()
	}
	byName := c.events[eventType]
	if byName == nil {
		byName = make(map[string]*eventRecord)
		c.events[eventType] = byName
	}
	if _, exists := byName[name]; exists {
		return &errors.ListenerError{
			Component: c.key, Event: eventType, Name: name,
			Kind: errors.KindDuplicateListener,
		}
	}
	wrapper := func(data any) {
		fn(c, data)
	}
	byName[name] = &eventRecord{binding: c.surface.Bind(eventType, wrapper, opts)}
	return nil
}

// Off detaches the listener registered under (eventType, name). Absent
// registrations are a no-op.
func (c *Component) Off(eventType, name string) {
	byName := c.events[eventType]
	rec, ok := byName[name]
	if !ok {
		return
	}
	rec.binding.Cancel()
	delete(byName, name)
	if len(byName) == 0 {
		delete(c.events, eventType)
	}
}

// SetStyles shallow-merges decls into the surface's style declarations.
func (c *Component) SetStyles(decls map[string]string) {
	for prop, value := range decls {
		c.surface.SetStyle(prop, value)
	}
}

// SetStyle sets a single style declaration.
func (c *Component) SetStyle(prop, value string) {
	c.surface.SetStyle(prop, value)
}

// Style returns a single style declaration.
func (c *Component) Style(prop string) (string, bool) {
	return c.surface.Style(prop)
}

// StyleNames lists the set style properties in sorted order.
func (c *Component) StyleNames() []string { return c.surface.StyleNames() }

// SetText sets the surface's text content; Text returns it.
func (c *Component) SetText(text string) { c.surface.SetText(text) }
func (c *Component) Text() string        { return c.surface.Text() }

// SetAttr, Attr and RemoveAttr mutate and query surface attributes.
func (c *Component) SetAttr(name, value string) { c.surface.SetAttr(name, value) }

func (c *Component) Attr(name string) (string, bool) { return c.surface.Attr(name) }

func (c *Component) RemoveAttr(name string) { c.surface.RemoveAttr(name) }

// AttrNames lists the set attributes in sorted order.
func (c *Component) AttrNames() []string { return c.surface.AttrNames() }

func (c *Component) classes() []string {
	v, _ := c.surface.Attr("class")
	return strings.Fields(v)
}

func (c *Component) setClasses(list []string) {
	if len(list) == 0 {
		c.surface.RemoveAttr("class")
		return
	}
	c.surface.SetAttr("class", strings.Join(list, " "))
}

// AddClass adds one or more whitespace-separated class names.
func (c *Component) AddClass(names string) {
	list := c.classes()
	for _, name := range strings.Fields(names) {
		if !containsString(list, name) {
			list = append(list, name)
		}
	}
	c.setClasses(list)
}

// RemoveClass removes one or more whitespace-separated class names.
func (c *Component) RemoveClass(names string) {
	list := c.classes()
	for _, name := range strings.Fields(names) {
		for i, existing := range list {
			if existing == name {
				list = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
	c.setClasses(list)
}

// ToggleClass adds absent names and removes present ones.
func (c *Component) ToggleClass(names string) {
	list := c.classes()
	for _, name := range strings.Fields(names) {
		found := false
		for i, existing := range list {
			if existing == name {
				list = append(list[:i], list[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			list = append(list, name)
		}
	}
	c.setClasses(list)
}

// ReplaceClass swaps old for new, keeping position. Absent old is a no-op.
func (c *Component) ReplaceClass(old, new string) {
	list := c.classes()
	for i, existing := range list {
		if existing == old {
			list[i] = new
			c.setClasses(list)
			return
		}
	}
}

// HasClass reports whether the class name is present.
func (c *Component) HasClass(name string) bool {
	return containsString(c.classes(), name)
}

func containsString(list []string, s string) bool {
	for _, existing := range list {
		if existing == s {
			return true
		}
	}
	return false
}

// Hide makes the surface invisible; Show reverses it.
func (c *Component) Hide() {
	c.visible = false
	c.surface.SetVisible(false)
}

func (c *Component) Show() {
	c.visible = true
	c.surface.SetVisible(true)
}

// Visible reports the component's visibility flag.
func (c *Component) Visible() bool { return c.visible }

// SetIndexName assigns the component's lookup name, registering a
// resolution channel on the indexed lookup registry. The channel stays
// writable, so a later assignment of the same name to another component
// wins. Queued lookups for the name resolve immediately.
func (c *Component) SetIndexName(name string) error {
	if name == "" {
		return &errors.BusError{Op: "core.SetIndexName", Kind: errors.KindInvalidChannelName}
	}
	if c.indexName != "" && c.indexName != name {
		c.dropIndexName()
	}
	err := c.ctx.index.Handle(name, func(ev *bus.Event, args ...any) {
		ev.Send(c)
	})
	if err != nil {
		return err
	}
	c.indexName = name
	c.ctx.indexOwners[name] = c.key
	c.Data["id"] = name
	return nil
}

// dropIndexName removes the component's lookup channel, but only while the
// component still owns the name: a later claimant's resolver stays intact.
func (c *Component) dropIndexName() {
	name := c.indexName
	c.indexName = ""
	if name == "" {
		return
	}
	if c.ctx.indexOwners[name] != c.key {
		return
	}
	delete(c.ctx.indexOwners, name)
	c.ctx.index.Remove(name)
}

// Destroy tears the component down on deferred tasks: destroy lifecycle
// listeners fire, the index-name channel and registry entries are removed,
// the parent detaches the surface, and after a further delay every owned
// field is released. Children are destroyed along with their parent.
// Calling any mutator after destruction has undefined effect.
func (c *Component) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	for _, child := range c.Children() {
		child.Destroy()
	}
	c.ctx.sched.After(destroyDelay, func() {
		c.notify(LifecycleDestroy)
		c.dropIndexName()
		c.ctx.deregister(c.key)
		if p := c.parent; p != nil {
			p.detachChild(c)
			if p.surface != nil && c.surface != nil {
				p.surface.Detach(c.surface)
			}
			c.parent = nil
		}
		for _, byName := range c.events {
			for _, rec := range byName {
				rec.binding.Cancel()
			}
		}
		c.ctx.sched.After(releaseDelay, c.release)
	})
}

func (p *Component) detachChild(child *Component) {
	delete(p.childByKey, child.key)
	for i, existing := range p.children {
		if existing == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return
		}
	}
}

// release drops every owned reference so closures retained elsewhere do not
// keep the subtree alive.
func (c *Component) release() {
	if c.bus != nil {
		c.bus.Clear()
	}
	c.surface = nil
	c.lifecycle = nil
	c.events = nil
	c.children = nil
	c.childByKey = nil
	c.Data = nil
}
