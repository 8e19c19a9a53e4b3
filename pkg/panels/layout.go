package panels

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/style"
)

var (
	displayModes   = []string{"block", "inline", "inline-block", "flex", "grid", "none"}
	flexDirections = []string{"row", "row-reverse", "column", "column-reverse"}
	justifyValues  = []string{"flex-start", "flex-end", "center", "space-between", "space-around", "space-evenly"}
	alignValues    = []string{"stretch", "flex-start", "flex-end", "center", "baseline"}
)

// NewLayout builds the layout panel: display mode and the flex axis
// controls.
func NewLayout(ctx *core.Context, props *style.PropertyBus) *Panel {
	p := newPanel(ctx, props, "Layout")
	p.choiceField(ctx, "Display", "display", displayModes)
	p.choiceField(ctx, "Direction", "flex-direction", flexDirections)
	p.choiceField(ctx, "Justify", "justify-content", justifyValues)
	p.choiceField(ctx, "Align", "align-items", alignValues)
	p.lengthField(ctx, "Gap", "gap")
	return p
}
