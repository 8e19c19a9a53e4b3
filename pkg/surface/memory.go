package surface

import "sort"

// Memory is an in-process Surface implementation. It backs headless runs
// and tests; a host shell substitutes its own factory for live rendering.
type Memory struct {
	kind     string
	id       string
	parent   *Memory
	children []Surface
	attrs    map[string]string
	styles   map[string]string
	text     string
	visible  bool
	bindings map[string][]*memoryBinding
}

type memoryBinding struct {
	owner    *Memory
	event    string
	fn       Listener
	once     bool
	canceled bool
}

func (b *memoryBinding) Cancel() {
	if b.canceled {
		return
	}
	b.canceled = true
	b.owner.unbind(b)
}

// NewMemory creates a detached in-memory surface of the given kind.
func NewMemory(kind string) *Memory {
	return &Memory{
		kind:     kind,
		attrs:    make(map[string]string),
		styles:   make(map[string]string),
		bindings: make(map[string][]*memoryBinding),
		visible:  true,
	}
}

// MemoryFactory is a Factory producing in-memory surfaces.
func MemoryFactory(kind string) Surface {
	return NewMemory(kind)
}

func (m *Memory) Kind() string { return m.kind }

func (m *Memory) SetID(id string) { m.id = id }
func (m *Memory) ID() string      { return m.id }

func (m *Memory) Append(child Surface) {
	c, ok := child.(*Memory)
	if !ok || c == nil {
		return
	}
	if c.parent != nil {
		c.parent.Detach(c)
	}
	c.parent = m
	m.children = append(m.children, child)
}

func (m *Memory) Detach(child Surface) {
	for i, existing := range m.children {
		if existing == child {
			m.children = append(m.children[:i], m.children[i+1:]...)
			if c, ok := child.(*Memory); ok {
				c.parent = nil
			}
			return
		}
	}
}

// Children returns the attached child surfaces in order.
func (m *Memory) Children() []Surface {
	out := make([]Surface, len(m.children))
	copy(out, m.children)
	return out
}

// Parent returns the surface this one is attached to, or nil.
func (m *Memory) Parent() *Memory { return m.parent }

func (m *Memory) SetAttr(name, value string) { m.attrs[name] = value }

func (m *Memory) Attr(name string) (string, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

func (m *Memory) RemoveAttr(name string) { delete(m.attrs, name) }

func (m *Memory) AttrNames() []string { return sortedKeys(m.attrs) }

func (m *Memory) SetStyle(prop, value string) { m.styles[prop] = value }

func (m *Memory) Style(prop string) (string, bool) {
	v, ok := m.styles[prop]
	return v, ok
}

func (m *Memory) StyleNames() []string { return sortedKeys(m.styles) }

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (m *Memory) SetText(text string) { m.text = text }
func (m *Memory) Text() string        { return m.text }

func (m *Memory) Bind(event string, fn Listener, opts BindOptions) Binding {
	b := &memoryBinding{owner: m, event: event, fn: fn, once: opts.Once}
	m.bindings[event] = append(m.bindings[event], b)
	return b
}

func (m *Memory) unbind(b *memoryBinding) {
	list := m.bindings[b.event]
	for i, existing := range list {
		if existing == b {
			m.bindings[b.event] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (m *Memory) Trigger(event string, data any) {
	list := m.bindings[event]
	// Copy before delivery: listeners may bind or cancel during dispatch.
	snapshot := make([]*memoryBinding, len(list))
	copy(snapshot, list)
	for _, b := range snapshot {
		if b.canceled || b.fn == nil {
			continue
		}
		if b.once {
			b.Cancel()
		}
		b.fn(data)
	}
}

func (m *Memory) Click() { m.Trigger("click", nil) }

func (m *Memory) SetVisible(visible bool) { m.visible = visible }
func (m *Memory) Visible() bool           { return m.visible }
