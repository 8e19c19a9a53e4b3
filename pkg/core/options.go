package core

import (
	"github.com/go-loom/loom/pkg/surface"
)

// optionKind tags a configuration value. The kind is decided by the
// constructor at the call site, never inferred from the value at runtime.
type optionKind int

const (
	optAttr optionKind = iota
	optStyles
	optClass
	optEvent
	optText
	optContent
	optParent
	optParentName
	optID
	optData
	optAutoClick
)

// Option is one declarative configuration value for New. Options are
// applied in two stages: attribute, style, class and event options apply
// first in the order given; then content, parent, text, index name and
// auto-click apply in that fixed order regardless of position.
type Option struct {
	kind     optionKind
	key      string
	value    string
	styles   map[string]string
	fn       EventFunc
	bind     surface.BindOptions
	children []*Component
	parent   *Component
	data     map[string]any
}

// Attr assigns a scalar surface attribute.
func Attr(name, value string) Option {
	return Option{kind: optAttr, key: name, value: value}
}

// Styles shallow-merges style declarations onto the surface.
func Styles(decls map[string]string) Option {
	return Option{kind: optStyles, styles: decls}
}

// Class adds one or more whitespace-separated class names.
func Class(names string) Option {
	return Option{kind: optClass, value: names}
}

// On registers an event listener under a derived name.
func On(event string, fn EventFunc) Option {
	return Option{kind: optEvent, key: event, fn: fn}
}

// OnNamed registers an event listener under an explicit name, which must be
// unique for the event type on this component.
func OnNamed(event, name string, fn EventFunc) Option {
	return Option{kind: optEvent, key: event, value: name, fn: fn}
}

// OnWith is OnNamed with explicit binding options.
func OnWith(event, name string, fn EventFunc, opts surface.BindOptions) Option {
	return Option{kind: optEvent, key: event, value: name, fn: fn, bind: opts}
}

// Text sets the surface's text content.
func Text(s string) Option {
	return Option{kind: optText, value: s}
}

// Content attaches children, setting their parent back-reference.
func Content(children ...*Component) Option {
	return Option{kind: optContent, children: children}
}

// Parent adds the new component to p.
func Parent(p *Component) Option {
	return Option{kind: optParent, parent: p}
}

// ParentName resolves a parent through the indexed lookup registry and adds
// the new component to it once resolution fires.
func ParentName(name string) Option {
	return Option{kind: optParentName, value: name}
}

// ID assigns the component's index name.
func ID(name string) Option {
	return Option{kind: optID, value: name}
}

// Data merges entries into the component's data bag. An "id" entry doubles
// as the index name.
func Data(entries map[string]any) Option {
	return Option{kind: optData, data: entries}
}

// AutoClick triggers the surface's native primary action once, after the
// other options have applied.
func AutoClick() Option {
	return Option{kind: optAutoClick}
}

// applyOptions drives component mutations from the option list. Binding
// errors are reported through the context's handler and leave the component
// partially configured; there is no rollback.
func applyOptions(ctx *Context, c *Component, opts []Option) {
	if len(opts) == 0 {
		return
	}

	var (
		content    []*Component
		parents    []*Component
		parentRefs []string
		text       *string
		indexName  string
		autoClick  bool
	)

	for i := range opts {
		opt := &opts[i]
		switch opt.kind {
		case optAttr:
			c.SetAttr(opt.key, opt.value)
		case optStyles:
			c.SetStyles(opt.styles)
		case optClass:
			c.AddClass(opt.value)
		case optEvent:
			if err := c.OnWith(opt.key, opt.value, opt.fn, opt.bind); err != nil {
				ctx.errs.HandleError(err)
			}
		case optText:
			v := opt.value
			text = &v
		case optContent:
			content = append(content, opt.children...)
		case optParent:
			if opt.parent != nil {
				parents = append(parents, opt.parent)
			}
		case optParentName:
			parentRefs = append(parentRefs, opt.value)
		case optID:
			indexName = opt.value
		case optData:
			for k, v := range opt.data {
				c.Data[k] = v
			}
			if id, ok := opt.data["id"].(string); ok && id != "" {
				indexName = id
			}
		case optAutoClick:
			autoClick = true
		}
	}

	for _, child := range content {
		if child != nil {
			c.Add(child)
		}
	}
	for _, p := range parents {
		p.Add(c)
	}
	for _, name := range parentRefs {
		name := name
		if err := ctx.Resolve(name, func(p *Component) {
			if !c.destroyed && !p.destroyed {
				p.Add(c)
			}
		}); err != nil {
			ctx.errs.HandleError(err)
		}
	}
	if text != nil {
		c.SetText(*text)
	}
	if indexName != "" {
		if err := c.SetIndexName(indexName); err != nil {
			ctx.errs.HandleError(err)
		}
	}
	if autoClick {
		c.surface.Click()
	}

	// Drop option payloads after a fixed delay to bound the memory their
	// closures retain.
	ctx.sched.After(optionReleaseDelay, func() {
		for i := range opts {
			opts[i] = Option{}
		}
	})
}
