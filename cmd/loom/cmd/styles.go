package cmd

import (
	"fmt"
	"sort"
)

func init() {
	RegisterCommand(&Command{
		Name:  "styles",
		Short: "Inspect saved styles",
		Long: `Inspect the style sheets saved in the workspace store.

Subcommands:
  list              List saved selectors
  show SELECTOR     Print the properties saved for a selector
  delete SELECTOR   Remove a selector's saved styles`,
		Usage: "loom styles <list|show|delete> [selector]",
		Run:   runStyles,
	})
}

func runStyles(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("styles requires a subcommand (list, show, delete)")
	}

	_, st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	switch args[0] {
	case "list":
		selectors, err := st.ListStyles()
		if err != nil {
			return err
		}
		if len(selectors) == 0 {
			fmt.Println("No saved styles.")
			return nil
		}
		for _, sel := range selectors {
			fmt.Println(sel)
		}
		return nil

	case "show":
		if len(args) < 2 {
			return fmt.Errorf("styles show requires a selector")
		}
		sheet, ok, err := st.GetStyle(args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no saved styles for %q", args[1])
		}
		props := make([]string, 0, len(sheet.Props))
		for prop := range sheet.Props {
			props = append(props, prop)
		}
		sort.Strings(props)
		fmt.Printf("%s (updated %s)\n", sheet.Selector, sheet.Updated.Format("2006-01-02 15:04:05"))
		for _, prop := range props {
			fmt.Printf("  %s: %s\n", prop, sheet.Props[prop])
		}
		return nil

	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("styles delete requires a selector")
		}
		if err := st.DeleteStyle(args[1]); err != nil {
			return err
		}
		fmt.Printf("Deleted styles for %s\n", args[1])
		return nil

	default:
		return fmt.Errorf("unknown styles subcommand %q", args[0])
	}
}
