package cli

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/nielsgl/dspy-profiles/internal/branding"
	"github.com/nielsgl/dspy-profiles/profiles"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := openStore().Load()
		if err != nil {
			return fmt.Errorf("loading profiles: %w", err)
		}

		if len(all) == 0 {
			fmt.Printf("No profiles found. Run '%s init <name>' to create one.\n", branding.CLIName())
			return nil
		}

		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		sort.Strings(names)

		active := os.Getenv(profiles.EnvProfile)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tMODEL\tEXTENDS")
		for _, name := range names {
			p := all[name]
			model := ""
			if lm, ok := p["lm"].(map[string]any); ok {
				model, _ = lm["model"].(string)
			}
			extends, _ := p["extends"].(string)
			marker := ""
			if name == active {
				marker = " (active)"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\n", name, marker, model, extends)
		}
		return w.Flush()
	},
}
