package panels

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/style"
)

// NewColor builds the color panel: foreground and background inputs
// accepting hex values or color names, normalized to #rrggbb on publish.
func NewColor(ctx *core.Context, props *style.PropertyBus) *Panel {
	p := newPanel(ctx, props, "Color")
	p.colorField(ctx, "Text", "color")
	p.colorField(ctx, "Background", "background-color")
	return p
}

func (p *Panel) colorField(ctx *core.Context, label, prop string) *core.Component {
	return p.field(ctx, label, func(input *core.Component, v string) {
		c, err := style.ParseColor(v)
		if err != nil {
			input.AddClass(invalidClass)
			return
		}
		input.RemoveClass(invalidClass)
		p.props.Publish(prop, style.FormatColor(c))
	})
}
