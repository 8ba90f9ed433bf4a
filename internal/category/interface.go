package category

import "context"

// Builtin category names, always present and always first, in this order.
var Builtin = []string{"Work", "Personal", "Shopping", "Health", "Errands"}

// UseCase is the category registry: built-in names plus deduplicated,
// insertion-ordered user additions.
type UseCase interface {
	// Add registers a custom category name. Adding a name that already
	// exists, built-in or custom, is a silent no-op.
	Add(ctx context.Context, name string) error

	// All returns built-ins followed by custom names in insertion order.
	All(ctx context.Context) ([]string, error)
}
