package cli

import (
	"fmt"
	"sort"

	"github.com/nielsgl/dspy-profiles/profiles"
	"github.com/spf13/cobra"
)

var diffRaw bool

func init() {
	diffCmd.Flags().BoolVar(&diffRaw, "raw", false, "Compare stored profiles without resolving inheritance")
	rootCmd.AddCommand(diffCmd)
}

var diffCmd = &cobra.Command{
	Use:   "diff <profile-a> <profile-b>",
	Short: "Compare two profiles",
	Long: `Compare two profiles key by key after resolving their 'extends' chains.
Keys only in the first profile print with "-", keys only in the second
with "+", and differing values print both sides.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		nameA, nameB := args[0], args[1]
		s := openStore()

		loadFn := func(name string) (map[string]any, error) {
			if diffRaw {
				stored, err := s.Get(name)
				if err != nil {
					return nil, err
				}
				if stored == nil {
					return nil, &profiles.ProfileNotFoundError{Name: name}
				}
				return stored, nil
			}
			return profiles.Resolve(s, name)
		}

		cfgA, err := loadFn(nameA)
		if err != nil {
			return err
		}
		cfgB, err := loadFn(nameB)
		if err != nil {
			return err
		}

		flatA := flatten("", cfgA)
		flatB := flatten("", cfgB)

		paths := map[string]bool{}
		for p := range flatA {
			paths[p] = true
		}
		for p := range flatB {
			paths[p] = true
		}
		ordered := make([]string, 0, len(paths))
		for p := range paths {
			ordered = append(ordered, p)
		}
		sort.Strings(ordered)

		identical := true
		for _, p := range ordered {
			va, inA := flatA[p]
			vb, inB := flatB[p]
			switch {
			case inA && !inB:
				fmt.Printf("- %s = %v\n", p, va)
			case !inA && inB:
				fmt.Printf("+ %s = %v\n", p, vb)
			case fmt.Sprintf("%v", va) != fmt.Sprintf("%v", vb):
				fmt.Printf("- %s = %v\n", p, va)
				fmt.Printf("+ %s = %v\n", p, vb)
			default:
				continue
			}
			identical = false
		}

		if identical {
			fmt.Println("Profiles are identical.")
		}
		return nil
	},
}

// flatten turns nested tables into dotted leaf paths.
func flatten(prefix string, m map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range m {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			for nk, nv := range flatten(path, nested) {
				out[nk] = nv
			}
			continue
		}
		out[path] = v
	}
	return out
}
