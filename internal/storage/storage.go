package storage

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nfrund/specboard/internal/domain"
	"github.com/spf13/afero"
)

// AferoStore serves modules from an afero filesystem whose root is the
// modules directory.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore. The filesystem root must be the
// modules directory itself.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewDiskStore creates an AferoStore over a directory on the local disk.
// The directory is enforced as a jail with afero.BasePathFs.
func NewDiskStore(dir string) *AferoStore {
	return NewAferoStore(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// Read opens the module file and returns its content.
func (s *AferoStore) Read(ctx context.Context, id string) ([]byte, error) {
	if !domain.ValidIdentifier(id) {
		return nil, fmt.Errorf("read %q: %w", id, domain.ErrInvalidIdentifier)
	}

	data, err := afero.ReadFile(s.fs, domain.ModuleFilename(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %q: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("read %q: %w", id, err)
	}
	return data, nil
}

// Exists reports whether the module file is present.
func (s *AferoStore) Exists(ctx context.Context, id string) (bool, error) {
	if !domain.ValidIdentifier(id) {
		return false, nil
	}
	return afero.Exists(s.fs, domain.ModuleFilename(id))
}
