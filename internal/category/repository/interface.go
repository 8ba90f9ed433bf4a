package repository

import "context"

// Repository persists the custom category list. The registry's in-memory
// copy is canonical; dedup happens at add time, not at read time.
type Repository interface {
	// LoadCustom returns custom names in insertion order.
	LoadCustom(ctx context.Context) ([]string, error)
	// AppendCustom stores one more custom name.
	AppendCustom(ctx context.Context, name string) error
}
