package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-loom/loom/cmd/loom/internal/config"
	"github.com/go-loom/loom/pkg/core"
	"github.com/go-loom/loom/pkg/panels"
	"github.com/go-loom/loom/pkg/scheduler"
	"github.com/go-loom/loom/pkg/store"
	"github.com/go-loom/loom/pkg/style"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Start an editing session",
		Long: `Start an editing session for the current workspace.

The session keeps a live page tree, attaches the property-editor panels,
and persists every style edit to the workspace store. Saved styles for
the edited selector are applied on startup.`,
		Usage: "loom run [--selector NAME]",
		Run:   runSession,
	})
}

// sessionProps is every property the panels publish edits for. The session
// watches each one so edits reach the page tree and the store.
var sessionProps = []string{
	"color", "background-color",
	"width", "height", "min-width", "max-width",
	"margin-top", "margin-right", "margin-bottom", "margin-left",
	"padding-top", "padding-right", "padding-bottom", "padding-left",
	"border-width", "border-style", "border-color", "border-radius",
	"font-family", "font-size", "font-weight", "line-height",
	"display", "flex-direction", "justify-content", "align-items", "gap",
	"position", "top", "right", "bottom", "left", "z-index",
}

func runSession(args []string) error {
	selector := "page"
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--selector":
			if i+1 >= len(args) {
				return fmt.Errorf("--selector requires a name")
			}
			selector = args[i+1]
			i++
		default:
			return fmt.Errorf("unknown argument %q", args[i])
		}
	}

	cfg, st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	sched := scheduler.New()
	ctx := core.NewContext(core.ContextConfig{Scheduler: sched})
	props := style.NewPropertyBus(sched)
	defer props.Close()

	s := &session{cfg: cfg, st: st, ctx: ctx, props: props, selector: selector}
	if err := s.start(); err != nil {
		return err
	}

	fmt.Printf("Editing %s (workspace %s, store %s)\n", selector, cfg.Name, cfg.StorePath)
	if cfg.ServiceEndpoint != "" {
		fmt.Printf("Service endpoint: %s\n", cfg.ServiceEndpoint)
	}
	fmt.Println("Press Ctrl+C to stop.")

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	sched.Run(runCtx)

	fmt.Println("Session closed.")
	return nil
}

// session owns one editing run: the page tree, the panels, and the bridge
// from published property edits to the store.
type session struct {
	cfg      *config.Resolved
	st       *store.Store
	ctx      *core.Context
	props    *style.PropertyBus
	selector string
	page     *core.Component
	panels   []*panels.Panel
}

func (s *session) start() error {
	s.page = core.New(s.ctx, "page", core.ID(s.selector))
	s.page.Render()

	// Replay saved styles onto the fresh tree.
	sheet, ok, err := s.st.GetStyle(s.selector)
	if err != nil {
		return err
	}
	if ok {
		s.page.SetStyles(sheet.Props)
	}

	for _, prop := range sessionProps {
		err := s.props.Watch(prop, func(value string) {
			s.page.SetStyle(prop, value)
			if err := s.st.MergeStyle(s.selector, map[string]string{prop: value}); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to persist %s: %v\n", prop, err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", prop, err)
		}
	}

	s.panels = []*panels.Panel{
		panels.NewColor(s.ctx, s.props),
		panels.NewSize(s.ctx, s.props),
		panels.NewSpacing(s.ctx, s.props),
		panels.NewBorder(s.ctx, s.props),
		panels.NewTypography(s.ctx, s.props),
		panels.NewLayout(s.ctx, s.props),
		panels.NewPosition(s.ctx, s.props),
	}
	for _, p := range s.panels {
		p.Root.Render()
	}
	return nil
}
