package panels

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/style"
)

// NewSize builds the size panel: width, height, and their min/max bounds.
func NewSize(ctx *core.Context, props *style.PropertyBus) *Panel {
	p := newPanel(ctx, props, "Size")
	p.lengthField(ctx, "Width", "width")
	p.lengthField(ctx, "Height", "height")
	p.lengthField(ctx, "Min width", "min-width")
	p.lengthField(ctx, "Max width", "max-width")
	return p
}
