package cli

import (
	"fmt"

	"github.com/nielsgl/dspy-profiles/internal/branding"
	"github.com/spf13/cobra"
)

var (
	initModel    string
	initProvider string
	initAPIBase  string
	initAPIKey   string
	initExtends  string
	initForce    bool
)

func init() {
	initCmd.Flags().StringVar(&initModel, "model", "", "Language model identifier (e.g., gpt-4o-mini)")
	initCmd.Flags().StringVar(&initProvider, "provider", "", "Language model provider (default: openai)")
	initCmd.Flags().StringVar(&initAPIBase, "api-base", "", "API endpoint for the language model")
	initCmd.Flags().StringVar(&initAPIKey, "api-key", "", "API key for the language model")
	initCmd.Flags().StringVar(&initExtends, "extends", "", "Parent profile to inherit from")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite the profile if it already exists")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Create a new profile",
	Long: `Create a new profile from the given flags.

Example:
  ` + branding.CLIName() + ` init staging --model gpt-4o-mini --api-base https://api.example.com/v1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s := openStore()

		existing, err := s.Get(name)
		if err != nil {
			return err
		}
		if existing != nil && !initForce {
			return fmt.Errorf("profile %q already exists (use --force to overwrite)", name)
		}

		profile := map[string]any{}
		if initExtends != "" {
			profile["extends"] = initExtends
		}

		lm := map[string]any{}
		if initModel != "" {
			lm["model"] = initModel
		}
		if initProvider != "" {
			lm["provider"] = initProvider
		}
		if initAPIBase != "" {
			lm["api_base"] = initAPIBase
		}
		if initAPIKey != "" {
			lm["api_key"] = initAPIKey
		}
		if len(lm) > 0 {
			profile["lm"] = lm
		}

		if err := s.Set(name, profile); err != nil {
			return fmt.Errorf("saving profile %q: %w", name, err)
		}

		fmt.Printf("Created profile %q in %s\n", name, s.Path())
		return nil
	},
}
