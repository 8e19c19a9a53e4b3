package panels

import (
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/style"
)

var fontWeights = []string{"normal", "bold", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// Families ships a starter set; hosts extend it through the completer.
var defaultFamilies = []string{
	"Arial", "Courier New", "Georgia", "Helvetica", "Inter",
	"Roboto", "Times New Roman", "Verdana",
}

// NewTypography builds the typography panel: family (with fuzzy
// completion), size, weight, and line height.
func NewTypography(ctx *core.Context, props *style.PropertyBus) *Panel {
	p := newPanel(ctx, props, "Typography")

	completer := NewCompleter(defaultFamilies)
	family := p.field(ctx, "Family", func(input *core.Component, v string) {
		if v == "" {
			input.AddClass(invalidClass)
			return
		}
		input.RemoveClass(invalidClass)
		p.props.Publish("font-family", v)
	})
	// The completer rides along in the input's data bag so the host's
	// suggestion dropdown can reach it.
	family.Data["completer"] = completer

	p.lengthField(ctx, "Size", "font-size")
	p.choiceField(ctx, "Weight", "font-weight", fontWeights)
	p.lengthField(ctx, "Line height", "line-height")
	return p
}
