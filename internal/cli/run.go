package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/nielsgl/dspy-profiles/profiles"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <profile> -- <command> [args...]",
	Short: "Run a command with a profile active",
	Long: `Run a command with the DSPY_PROFILE environment variable set to the named
profile, so any dspy-aware process it starts activates that profile. The
profile is resolved first, so typos and broken 'extends' chains fail
before the command starts.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		command := args[1:]

		// Fail fast on unresolvable profiles.
		if _, err := profiles.Resolve(openStore(), name); err != nil {
			return err
		}

		child := exec.Command(command[0], command[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		child.Env = append(os.Environ(), profiles.EnvProfile+"="+name)

		if err := child.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				os.Exit(exitErr.ExitCode())
			}
			return fmt.Errorf("running %s: %w", command[0], err)
		}
		return nil
	},
}
