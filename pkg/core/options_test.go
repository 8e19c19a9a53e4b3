package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/surface"
)

func TestOptionsApplyAttributesStylesClasses(t *testing.T) {
	ctx, _, _ := newTestContext()

	c := New(ctx, "div",
		Attr("role", "toolbar"),
		Styles(map[string]string{"color": "#fff", "margin-top": "4px"}),
		Class("panel compact"),
	)

	if v, _ := c.Attr("role"); v != "toolbar" {
		t.Errorf("role = %q", v)
	}
	if v, _ := c.Style("color"); v != "#fff" {
		t.Errorf("color = %q", v)
	}
	if v, _ := c.Style("margin-top"); v != "4px" {
		t.Errorf("margin-top = %q", v)
	}
	if !c.HasClass("panel") || !c.HasClass("compact") {
		t.Errorf("classes = %v", c.classes())
	}
}

func TestOptionsStylesMergeNotReplace(t *testing.T) {
	ctx, _, _ := newTestContext()

	c := New(ctx, "div", Styles(map[string]string{"color": "red", "width": "10px"}))
	c.SetStyles(map[string]string{"color": "blue"})

	if v, _ := c.Style("color"); v != "blue" {
		t.Errorf("color = %q", v)
	}
	if v, _ := c.Style("width"); v != "10px" {
		t.Error("merge must not drop unrelated declarations")
	}
}

func TestOptionsEventBinding(t *testing.T) {
	ctx, _, _ := newTestContext()

	var clicked *Component
	c := New(ctx, "button",
		OnNamed("click", "main", func(owner *Component, data any) { clicked = owner }),
	)
	c.Surface().Trigger("click", nil)

	if clicked != c {
		t.Error("event option did not bind with owning component as receiver")
	}
}

func TestOptionsEventOnce(t *testing.T) {
	ctx, _, _ := newTestContext()

	calls := 0
	c := New(ctx, "button",
		OnWith("click", "once", func(*Component, any) { calls++ }, surface.BindOptions{Once: true}),
	)
	c.Surface().Click()
	c.Surface().Click()

	if calls != 1 {
		t.Errorf("once listener fired %d times", calls)
	}
}

func TestOptionsDuplicateEventNameReportedNotFatal(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(ContextConfig{Errors: &errors.LogHandler{Out: &buf}})

	c := New(ctx, "button",
		OnNamed("click", "dup", func(*Component, any) {}),
		OnNamed("click", "dup", func(*Component, any) {}),
		Text("Apply"),
	)

	if !strings.Contains(buf.String(), "duplicate listener") {
		t.Errorf("collision not reported, log = %q", buf.String())
	}
	// Later options still apply: the component is partially configured,
	// not rolled back.
	if c.Text() != "Apply" {
		t.Error("options after the failing one must still apply")
	}
}

func TestOptionsContentAndText(t *testing.T) {
	ctx, _, _ := newTestContext()

	a := New(ctx, "span")
	b := New(ctx, "span")
	parent := New(ctx, "div", Content(a, b), Text("legend"))

	if a.Parent() != parent || b.Parent() != parent {
		t.Error("content children missing parent back-reference")
	}
	if len(parent.Children()) != 2 {
		t.Errorf("children = %d", len(parent.Children()))
	}
	if parent.Text() != "legend" {
		t.Errorf("text = %q", parent.Text())
	}
}

func TestOptionsParentDirect(t *testing.T) {
	ctx, _, _ := newTestContext()

	p := New(ctx, "section")
	c := New(ctx, "div", Parent(p))

	if c.Parent() != p {
		t.Error("Parent option did not attach")
	}
}

func TestOptionsParentByName(t *testing.T) {
	ctx, clk, sched := newTestContext()

	p := New(ctx, "section", ID("canvas"))
	c := New(ctx, "div", ParentName("canvas"))
	settle(clk, sched)

	if c.Parent() != p {
		t.Error("ParentName option did not resolve")
	}
}

func TestOptionsIDAssignsIndexName(t *testing.T) {
	ctx, clk, sched := newTestContext()

	c := New(ctx, "div", ID("props"))
	if c.IndexName() != "props" {
		t.Errorf("IndexName = %q", c.IndexName())
	}
	if c.Data["id"] != "props" {
		t.Error("id must land in the data bag")
	}

	var resolved *Component
	ctx.Resolve("props", func(rc *Component) { resolved = rc })
	settle(clk, sched)
	if resolved != c {
		t.Error("index name not resolvable")
	}
}

func TestOptionsDataBagWithID(t *testing.T) {
	ctx, _, _ := newTestContext()

	c := New(ctx, "div", Data(map[string]any{"id": "editor", "row": 3}))
	if c.IndexName() != "editor" {
		t.Errorf("IndexName = %q", c.IndexName())
	}
	if c.Data["row"] != 3 {
		t.Error("data entries must merge into the bag")
	}
}

func TestOptionsAutoClick(t *testing.T) {
	ctx, _, _ := newTestContext()

	clicks := 0
	New(ctx, "button",
		OnNamed("click", "n", func(*Component, any) { clicks++ }),
		AutoClick(),
	)
	if clicks != 1 {
		t.Errorf("autoClick fired %d times, want 1", clicks)
	}
}

func TestOptionPayloadsReleasedAfterDelay(t *testing.T) {
	ctx, clk, sched := newTestContext()

	opts := []Option{Text("hold"), Attr("k", "v")}
	c := New(ctx, "div", opts...)
	if c.Text() != "hold" {
		t.Fatal("option not applied")
	}

	settle(clk, sched)
	for i := range opts {
		if opts[i].key != "" || opts[i].value != "" {
			t.Fatalf("option payload %d not released: %+v", i, opts[i])
		}
	}
}
