package storage

import "context"

// ModuleStore defines read access to module documents. Implementations are
// read-only and safe for concurrent use.
type ModuleStore interface {
	// Read returns the raw bytes of the module. It returns an error wrapping
	// domain.ErrNotFound when no such module exists.
	Read(ctx context.Context, id string) ([]byte, error)

	// Exists reports whether a module file is present.
	Exists(ctx context.Context, id string) (bool, error)
}
