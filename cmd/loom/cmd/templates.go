package cmd

import (
	"fmt"
	"strings"

	"github.com/go-loom/loom/pkg/store"
)

func init() {
	RegisterCommand(&Command{
		Name:  "templates",
		Short: "Inspect saved templates",
		Long: `Inspect the component templates saved in the workspace store.

Subcommands:
  list              List saved template names
  show NAME         Print a template's component tree
  delete NAME       Remove a saved template`,
		Usage: "loom templates <list|show|delete> [name]",
		Run:   runTemplates,
	})
}

func runTemplates(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("templates requires a subcommand (list, show, delete)")
	}

	_, st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	switch args[0] {
	case "list":
		names, err := st.ListTemplates()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No saved templates.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil

	case "show":
		if len(args) < 2 {
			return fmt.Errorf("templates show requires a name")
		}
		tpl, ok, err := st.GetTemplate(args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no template named %q", args[1])
		}
		fmt.Println(tpl.Name)
		printNode(tpl.Root, 1)
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("templates delete requires a name")
		}
		if err := st.DeleteTemplate(args[1]); err != nil {
			return err
		}
		fmt.Printf("Deleted template %s\n", args[1])
		return nil

	default:
		return fmt.Errorf("unknown templates subcommand %q", args[0])
	}
}

func printNode(n *store.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	line := n.Kind
	if n.ID != "" {
		line += "#" + n.ID
	}
	if n.Text != "" {
		line += fmt.Sprintf(" %q", n.Text)
	}
	fmt.Println(indent + line)
	for _, child := range n.Children {
		printNode(child, depth+1)
	}
}
