package profiles

import "fmt"

// ProfileNotFoundError reports a profile name that does not exist in the
// store, either requested directly or referenced through an extends chain.
type ProfileNotFoundError struct {
	Name string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.Name)
}

// CircularInheritanceError reports an extends chain that loops back on
// itself, including a profile that extends its own name.
type CircularInheritanceError struct {
	Name string
}

func (e *CircularInheritanceError) Error() string {
	return fmt.Sprintf("profile %q has a circular 'extends' chain; a profile cannot extend itself directly or transitively", e.Name)
}
