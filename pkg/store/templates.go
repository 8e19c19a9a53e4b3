package store

import (
	"github.com/go-loom/loom/pkg/core"
)

// Node is one component in a saved template tree.
type Node struct {
	Kind     string            `msgpack:"kind"`
	ID       string            `msgpack:"id,omitempty"`
	Text     string            `msgpack:"text,omitempty"`
	Attrs    map[string]string `msgpack:"attrs,omitempty"`
	Styles   map[string]string `msgpack:"styles,omitempty"`
	Children []*Node           `msgpack:"children,omitempty"`
}

// Template is a named, reusable component tree.
type Template struct {
	Name string `msgpack:"name"`
	Root *Node  `msgpack:"root"`
}

// Snapshot captures a component subtree as a template node. Event
// listeners and hooks are behavior, not state, and are not captured.
func Snapshot(c *core.Component) *Node {
	n := &Node{
		Kind: c.Kind(),
		ID:   c.IndexName(),
		Text: c.Text(),
	}
	for _, attr := range c.AttrNames() {
		if n.Attrs == nil {
			n.Attrs = map[string]string{}
		}
		n.Attrs[attr], _ = c.Attr(attr)
	}
	for _, prop := range c.StyleNames() {
		if n.Styles == nil {
			n.Styles = map[string]string{}
		}
		n.Styles[prop], _ = c.Style(prop)
	}
	for _, child := range c.Children() {
		n.Children = append(n.Children, Snapshot(child))
	}
	return n
}

// Instantiate builds a fresh component subtree from a template node.
// Index names are applied as saved, so instantiating the same template
// twice rebinds any shared names to the newest tree.
func Instantiate(ctx *core.Context, n *Node) *core.Component {
	var opts []core.Option
	for attr, value := range n.Attrs {
		opts = append(opts, core.Attr(attr, value))
	}
	if len(n.Styles) > 0 {
		opts = append(opts, core.Styles(n.Styles))
	}
	if n.Text != "" {
		opts = append(opts, core.Text(n.Text))
	}
	if n.ID != "" {
		opts = append(opts, core.ID(n.ID))
	}
	for _, child := range n.Children {
		opts = append(opts, core.Content(Instantiate(ctx, child)))
	}
	return core.New(ctx, n.Kind, opts...)
}

// PutTemplate saves a template under its name.
func (s *Store) PutTemplate(t *Template) error {
	if t.Name == "" {
		return errEmptyKey("template name")
	}
	return s.put(bucketTemplates, t.Name, t)
}

// GetTemplate loads the template with the given name; ok is false when
// absent.
func (s *Store) GetTemplate(name string) (*Template, bool, error) {
	var t Template
	ok, err := s.get(bucketTemplates, name, &t)
	if !ok || err != nil {
		return nil, false, err
	}
	return &t, true, nil
}

// DeleteTemplate removes the template with the given name.
func (s *Store) DeleteTemplate(name string) error {
	return s.delete(bucketTemplates, name)
}

// ListTemplates returns every stored template name in key order.
func (s *Store) ListTemplates() ([]string, error) {
	return s.keys(bucketTemplates)
}
