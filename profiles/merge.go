package profiles

import "maps"

// DeepMerge returns a new map with overrides merged onto base. When both
// sides hold a map under the same key the maps merge recursively; any other
// value in overrides replaces the base value outright, including a scalar
// replacing a map. Neither input is modified.
func DeepMerge(base, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overrides))
	maps.Copy(merged, base)
	for k, v := range overrides {
		if bm, ok := merged[k].(map[string]any); ok {
			if om, ok := v.(map[string]any); ok {
				merged[k] = DeepMerge(bm, om)
				continue
			}
		}
		merged[k] = v
	}
	return merged
}
