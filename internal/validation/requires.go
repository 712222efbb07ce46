package validation

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CheckRequires enforces a profile's optional meta.requires constraint
// against the running tool version. A profile can declare e.g.
//
//	[meta]
//	requires = ">= 0.4.0"
//
// to refuse activation under an older CLI. Development builds ("dev") and
// profiles without the field always pass.
func CheckRequires(profileName string, profile map[string]any, toolVersion string) error {
	meta, _ := profile["meta"].(map[string]any)
	constraint, _ := meta["requires"].(string)
	if constraint == "" || toolVersion == "" || toolVersion == "dev" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("profile %q: invalid meta.requires constraint %q: %w", profileName, constraint, err)
	}
	v, err := semver.NewVersion(toolVersion)
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", toolVersion, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("profile %q requires dspy-profiles %s, but this is %s", profileName, constraint, toolVersion)
	}
	return nil
}
