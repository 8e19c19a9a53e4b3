package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-loom/loom/pkg/errors"
)

func TestHooksFireInRegistrationOrder(t *testing.T) {
	ctx, _, _ := newTestContext()

	var order []string
	ctx.Hooks().Register(HookInit, func(*Component) { order = append(order, "first") })
	ctx.Hooks().Register(HookInit, func(*Component) { order = append(order, "second") })
	ctx.Hooks().Register(HookInit, func(*Component) { order = append(order, "third") })

	New(ctx, "div")

	want := []string{"first", "second", "third"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestHookPhasesFireAtLifecyclePoints(t *testing.T) {
	ctx, _, _ := newTestContext()

	var phases []HookPhase
	for _, phase := range []HookPhase{HookInit, HookOptionApply, HookPreRender} {
		phase := phase
		ctx.Hooks().Register(phase, func(*Component) { phases = append(phases, phase) })
	}

	c := New(ctx, "div")
	if len(phases) != 2 || phases[0] != HookInit || phases[1] != HookOptionApply {
		t.Fatalf("phases after create = %v", phases)
	}

	c.Render()
	if len(phases) != 3 || phases[2] != HookPreRender {
		t.Fatalf("phases after render = %v", phases)
	}
}

func TestInitHookSeesComponentBeforeOptions(t *testing.T) {
	ctx, _, _ := newTestContext()

	var textAtInit, textAtApply string
	ctx.Hooks().Register(HookInit, func(c *Component) { textAtInit = c.Text() })
	ctx.Hooks().Register(HookOptionApply, func(c *Component) { textAtApply = c.Text() })

	New(ctx, "label", Text("Spacing"))

	if textAtInit != "" {
		t.Errorf("init hook ran after options: %q", textAtInit)
	}
	if textAtApply != "Spacing" {
		t.Errorf("option-apply hook text = %q", textAtApply)
	}
}

func TestNilHookReportedSiblingsRun(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(ContextConfig{Errors: &errors.LogHandler{Out: &buf}})

	ran := false
	ctx.Hooks().Register(HookInit, nil)
	ctx.Hooks().Register(HookInit, func(*Component) { ran = true })

	New(ctx, "div")

	if !ran {
		t.Error("sibling hook must run despite nil entry")
	}
	if !strings.Contains(buf.String(), "nil listener") {
		t.Errorf("nil hook not reported, log = %q", buf.String())
	}
}

func TestPanickingHookReportedSiblingsRun(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(ContextConfig{Errors: &errors.LogHandler{Out: &buf}})

	ran := false
	ctx.Hooks().Register(HookInit, func(*Component) { panic("bad hook") })
	ctx.Hooks().Register(HookInit, func(*Component) { ran = true })

	New(ctx, "div")

	if !ran {
		t.Error("sibling hook must run despite panic")
	}
	if !strings.Contains(buf.String(), "bad hook") {
		t.Errorf("panic not reported, log = %q", buf.String())
	}
}

func TestHookDeregistration(t *testing.T) {
	ctx, _, _ := newTestContext()

	calls := 0
	tok := ctx.Hooks().Register(HookInit, func(*Component) { calls++ })
	keep := 0
	ctx.Hooks().Register(HookInit, func(*Component) { keep++ })

	New(ctx, "div")
	ctx.Hooks().Deregister(tok)
	ctx.Hooks().Deregister(tok) // unknown token ignored
	New(ctx, "div")

	if calls != 1 {
		t.Errorf("deregistered hook ran %d times, want 1", calls)
	}
	if keep != 2 {
		t.Errorf("remaining hook ran %d times, want 2", keep)
	}
	if ctx.Hooks().Len(HookInit) != 1 {
		t.Errorf("Len = %d, want 1", ctx.Hooks().Len(HookInit))
	}
}
