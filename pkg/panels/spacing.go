package panels

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/style"
)

// NewSpacing builds the spacing panel: margin and padding shorthand inputs
// that expand one-to-four value shorthands and publish each side.
func NewSpacing(ctx *core.Context, props *style.PropertyBus) *Panel {
	p := newPanel(ctx, props, "Spacing")
	p.edgesField(ctx, "Margin", "margin")
	p.edgesField(ctx, "Padding", "padding")
	return p
}

func (p *Panel) edgesField(ctx *core.Context, label, prefix string) *core.Component {
	return p.field(ctx, label, func(input *core.Component, v string) {
		edges, err := style.ParseEdges(v)
		if err != nil {
			input.AddClass(invalidClass)
			return
		}
		input.RemoveClass(invalidClass)
		p.props.Publish(prefix+"-top", edges.Top.String())
		p.props.Publish(prefix+"-right", edges.Right.String())
		p.props.Publish(prefix+"-bottom", edges.Bottom.String())
		p.props.Publish(prefix+"-left", edges.Left.String())
	})
}
