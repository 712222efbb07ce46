package cli

import (
	"fmt"
	"sort"

	"github.com/nielsgl/dspy-profiles/internal/validation"
	"github.com/nielsgl/dspy-profiles/profiles"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the profile store",
	Long: `Validate every stored profile against the profile schema, check that
'extends' chains resolve without cycles or missing parents, and enforce
any meta.requires version constraints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		all, err := s.Load()
		if err != nil {
			return err
		}

		if len(all) == 0 {
			fmt.Printf("No profiles found in %s.\n", s.Path())
			return nil
		}

		result, err := validation.ValidateStore(all)
		if err != nil {
			return fmt.Errorf("validating profiles: %w", err)
		}

		problems := 0
		for _, issue := range result.Issues {
			fmt.Printf("  %s: %s\n", issue.Path, issue.Message)
			problems++
		}

		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if _, err := profiles.Resolve(s, name); err != nil {
				fmt.Printf("  %s: %v\n", name, err)
				problems++
			}
			if err := validation.CheckRequires(name, all[name], buildVersion); err != nil {
				fmt.Printf("  %s: %v\n", name, err)
				problems++
			}
		}

		if problems > 0 {
			return fmt.Errorf("%d problem(s) found in %s", problems, s.Path())
		}
		fmt.Printf("All %d profile(s) in %s are valid.\n", len(all), s.Path())
		return nil
	},
}
