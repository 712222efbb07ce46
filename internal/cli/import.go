package cli

import (
	"fmt"
	"strings"

	"github.com/nielsgl/dspy-profiles/internal/branding"
	"github.com/nielsgl/dspy-profiles/internal/envfile"
	"github.com/spf13/cobra"
)

var importFrom string

func init() {
	importCmd.Flags().StringVar(&importFrom, "from", ".env", "Path to the .env file to import from")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <name>",
	Short: "Create a profile from a .env file",
	Long: `Create a profile from DSPY_-prefixed variables in a .env file.

Variables are mapped to profile sections by splitting on underscores:
DSPY_LM_MODEL becomes lm.model, DSPY_SETTINGS_CACHE_DIR becomes
settings.cache_dir, and so on. Variables without the DSPY_ prefix are
ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		s := openStore()

		existing, err := s.Get(name)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("profile %q already exists", name)
		}

		entries, err := envfile.Parse(importFrom)
		if err != nil {
			return err
		}

		profile := map[string]any{}
		imported := 0
		for _, e := range entries {
			section, key, ok := splitEnvKey(e.Key)
			if !ok {
				continue
			}
			table, _ := profile[section].(map[string]any)
			if table == nil {
				table = map[string]any{}
				profile[section] = table
			}
			table[key] = e.Value
			imported++
			fmt.Printf("  %s.%s = %s\n", section, key, envfile.Redact(e.Key, e.Value))
		}

		if imported == 0 {
			fmt.Printf("No variables with the %s_ prefix found in %s; nothing imported.\n", branding.EnvPrefix(), importFrom)
			return nil
		}

		if err := s.Set(name, profile); err != nil {
			return fmt.Errorf("saving profile %q: %w", name, err)
		}

		fmt.Printf("Imported %d value(s) into profile %q from %s\n", imported, name, importFrom)
		return nil
	},
}

// splitEnvKey maps an environment variable name to a profile section and
// key: DSPY_LM_MODEL → ("lm", "model"), DSPY_SETTINGS_CACHE_DIR →
// ("settings", "cache_dir"). Names without the prefix, or with nothing
// after the section, are rejected.
func splitEnvKey(envKey string) (section, key string, ok bool) {
	upper := strings.ToUpper(envKey)
	prefix := branding.EnvPrefix() + "_"
	if !strings.HasPrefix(upper, prefix) {
		return "", "", false
	}

	parts := strings.Split(strings.TrimPrefix(upper, prefix), "_")
	if len(parts) < 2 {
		return "", "", false
	}
	return strings.ToLower(parts[0]), strings.ToLower(strings.Join(parts[1:], "_")), true
}
