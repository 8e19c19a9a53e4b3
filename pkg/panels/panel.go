// Package panels implements the property-editor panels of the page
// builder: color, size, spacing, border, typography, layout and position.
// Every panel is an ordinary consumer of the core component contract: a
// small component subtree wired to input events that publishes edits to
// the style property bus. Nothing in here is special-cased by the core.
package panels

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/style"
)

// Panel is one property-editor section.
type Panel struct {
	// Root is the panel's top-level component.
	Root *core.Component

	props *style.PropertyBus
}

// Destroy tears down the panel's component subtree.
func (p *Panel) Destroy() {
	p.Root.Destroy()
}

const invalidClass = "invalid"

// newPanel creates the shared panel scaffolding: a root container with a
// title row.
func newPanel(ctx *core.Context, props *style.PropertyBus, title string) *Panel {
	root := core.New(ctx, "section",
		core.Class("panel"),
		core.Content(
			core.New(ctx, "header", core.Class("panel-title"), core.Text(title)),
		),
	)
	return &Panel{Root: root, props: props}
}

// field appends a labeled input row to the panel and returns the input
// component. onChange receives the raw input value on every change event.
func (p *Panel) field(ctx *core.Context, label string, onChange func(input *core.Component, value string)) *core.Component {
	input := core.New(ctx, "input")
	input.On("change", "", func(c *core.Component, data any) {
		v, ok := data.(string)
		if !ok {
			return
		}
		onChange(c, v)
	})
	row := core.New(ctx, "div",
		core.Class("panel-row"),
		core.Content(
			core.New(ctx, "label", core.Text(label)),
			input,
		),
	)
	p.Root.Add(row)
	return input
}

// choiceField appends a labeled input restricted to the allowed values.
// Anything else marks the input invalid and is not published.
func (p *Panel) choiceField(ctx *core.Context, label, prop string, allowed []string) *core.Component {
	return p.field(ctx, label, func(input *core.Component, v string) {
		for _, a := range allowed {
			if v == a {
				input.RemoveClass(invalidClass)
				p.props.Publish(prop, v)
				return
			}
		}
		input.AddClass(invalidClass)
	})
}

// lengthField appends a labeled input publishing a validated length.
func (p *Panel) lengthField(ctx *core.Context, label, prop string) *core.Component {
	return p.field(ctx, label, func(input *core.Component, v string) {
		l, err := style.ParseLength(v)
		if err != nil {
			input.AddClass(invalidClass)
			return
		}
		input.RemoveClass(invalidClass)
		p.props.Publish(prop, l.String())
	})
}
