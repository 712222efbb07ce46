package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/nielsgl/dspy-profiles/profiles"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var (
	showYAML bool
	showJSON bool
	showRaw  bool
)

func init() {
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "Output as YAML")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Show the stored profile without resolving inheritance")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a profile's configuration",
	Long: `Show a profile's configuration with its 'extends' chain fully resolved.
Use --raw to see the stored table exactly as written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s := openStore()

		var cfg map[string]any
		if showRaw {
			stored, err := s.Get(name)
			if err != nil {
				return err
			}
			if stored == nil {
				return &profiles.ProfileNotFoundError{Name: name}
			}
			cfg = stored
		} else {
			resolved, err := profiles.Resolve(s, name)
			if err != nil {
				return err
			}
			cfg = resolved
		}

		if showJSON {
			out, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling profile as JSON: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		if showYAML {
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling profile as YAML: %w", err)
			}
			fmt.Print(string(out))
			return nil
		}

		fmt.Printf("Profile: %s\n", name)
		fmt.Println("---")
		printTable(cfg, "  ")
		return nil
	},
}

// printTable renders a nested configuration map with sorted keys and
// two-space indentation per level.
func printTable(m map[string]any, indent string) {
	for _, k := range sortedKeys(m) {
		switch v := m[k].(type) {
		case map[string]any:
			fmt.Printf("%s%s:\n", indent, k)
			printTable(v, indent+"  ")
		default:
			fmt.Printf("%s%s: %v\n", indent, k, v)
		}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
