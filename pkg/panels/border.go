package panels

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/style"
)

var borderStyles = []string{"none", "solid", "dashed", "dotted", "double"}

// NewBorder builds the border panel: width, line style, color, and radius.
func NewBorder(ctx *core.Context, props *style.PropertyBus) *Panel {
	p := newPanel(ctx, props, "Border")
	p.lengthField(ctx, "Width", "border-width")
	p.choiceField(ctx, "Style", "border-style", borderStyles)
	p.colorField(ctx, "Color", "border-color")
	p.lengthField(ctx, "Radius", "border-radius")
	return p
}
