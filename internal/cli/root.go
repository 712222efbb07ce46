package cli

import (
	"fmt"
	"os"

	"github.com/nielsgl/dspy-profiles/internal/branding"
	"github.com/nielsgl/dspy-profiles/internal/config"
	"github.com/nielsgl/dspy-profiles/store"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages named, inheritable configuration profiles
(language model, retrieval model, and free-form settings) stored in
` + "`~/.dspy/profiles.toml`" + `, and activates them for scoped execution.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// openStore returns the profile store at the configured path.
func openStore() *store.Store {
	return store.Open(config.ProfilesPath())
}
