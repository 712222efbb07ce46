package cli

import (
	"fmt"
	"os"

	"github.com/nielsgl/dspy-profiles/profiles"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(currentCmd)
}

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the profile the environment selects",
	Long: `Show which profile an activation without an explicit name would load:
the DSPY_PROFILE environment variable when set, otherwise "default".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := os.Getenv(profiles.EnvProfile)
		source := "environment"
		if name == "" {
			name = profiles.DefaultProfile
			source = "fallback"
		}

		resolved, err := profiles.Resolve(openStore(), name)
		if err != nil {
			return err
		}

		fmt.Printf("Current profile: %s (%s)\n", name, source)
		if len(resolved) == 0 {
			fmt.Println("The profile is empty; activations will apply no configuration.")
			return nil
		}
		fmt.Println("---")
		printTable(resolved, "  ")
		return nil
	},
}
