package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <name> <key> <value>",
	Short: "Set a configuration value on a profile",
	Long: `Set a configuration value on a profile using a dotted key path, creating
the profile and any intermediate tables as needed.

Example:
  dspy-profiles set staging lm.model gpt-4o-mini
  dspy-profiles set staging lm.temperature 0.2`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, key, raw := args[0], args[1], args[2]
		s := openStore()

		profile, err := s.Get(name)
		if err != nil {
			return err
		}
		if profile == nil {
			profile = map[string]any{}
		}

		if err := setPath(profile, key, parseValue(raw)); err != nil {
			return fmt.Errorf("setting %s on profile %q: %w", key, name, err)
		}
		if err := s.Set(name, profile); err != nil {
			return err
		}

		fmt.Printf("Set %s = %s on profile %q\n", key, raw, name)
		return nil
	},
}

// setPath walks a dotted key path into nested tables, creating intermediate
// tables along the way, and sets the final key.
func setPath(m map[string]any, path string, value any) error {
	keys := strings.Split(path, ".")
	for _, k := range keys {
		if k == "" {
			return fmt.Errorf("invalid key path %q", path)
		}
	}

	current := m
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]any)
		if !ok {
			if _, exists := current[k]; exists {
				return fmt.Errorf("key %q holds a value, not a table", k)
			}
			next = map[string]any{}
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
	return nil
}

// parseValue interprets a CLI argument as a bool, int, or float before
// falling back to a string, matching how TOML would type the literal.
func parseValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
