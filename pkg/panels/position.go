package panels

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/style"
)

var positionModes = []string{"static", "relative", "absolute", "fixed", "sticky"}

// NewPosition builds the position panel: positioning mode, the four
// offsets, and stacking order.
func NewPosition(ctx *core.Context, props *style.PropertyBus) *Panel {
	p := newPanel(ctx, props, "Position")
	p.choiceField(ctx, "Mode", "position", positionModes)
	p.lengthField(ctx, "Top", "top")
	p.lengthField(ctx, "Right", "right")
	p.lengthField(ctx, "Bottom", "bottom")
	p.lengthField(ctx, "Left", "left")
	p.field(ctx, "Z-index", func(input *core.Component, v string) {
		if !isInteger(v) {
			input.AddClass(invalidClass)
			return
		}
		input.RemoveClass(invalidClass)
		p.props.Publish("z-index", v)
	})
	return p
}

func isInteger(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' {
		if len(s) == 1 {
			return false
		}
		i = 1
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
