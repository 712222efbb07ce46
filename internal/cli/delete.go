package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nielsgl/dspy-profiles/profiles"
	"github.com/spf13/cobra"
)

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		if !deleteYes {
			fmt.Printf("Delete profile %q? [y/N] ", name)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		deleted, err := openStore().Delete(name)
		if err != nil {
			return fmt.Errorf("deleting profile %q: %w", name, err)
		}
		if !deleted {
			return &profiles.ProfileNotFoundError{Name: name}
		}

		fmt.Printf("Deleted profile %q\n", name)
		return nil
	},
}
