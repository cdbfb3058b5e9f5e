package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nfrund/specboard/internal/domain"
	"github.com/nfrund/specboard/internal/middleware"
	"github.com/nfrund/specboard/internal/storage"
)

// Service answers module lookups and presence checks on top of a ModuleStore.
// It holds no state between calls.
type Service struct {
	store storage.ModuleStore
}

// NewService creates a new catalog service.
func NewService(store storage.ModuleStore) *Service {
	return &Service{store: store}
}

// Lookup returns the module document exactly as stored. The content must be
// valid JSON; anything else is reported as domain.ErrMalformedModule.
func (s *Service) Lookup(ctx context.Context, id string) (json.RawMessage, error) {
	data, err := s.store.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("lookup %q: %w", id, domain.ErrMalformedModule)
	}
	return json.RawMessage(data), nil
}

// Presence reports which well-known modules exist. Stat failures other than
// "does not exist" are logged and count as absent.
func (s *Service) Presence(ctx context.Context) domain.Presence {
	return domain.Presence{
		Module1: s.exists(ctx, domain.Module1),
		Module2: s.exists(ctx, domain.Module2),
	}
}

func (s *Service) exists(ctx context.Context, id string) bool {
	ok, err := s.store.Exists(ctx, id)
	if err != nil {
		middleware.FromContext(ctx).Warn("Module existence check failed",
			slog.String("module", id),
			slog.String("error", err.Error()))
		return false
	}
	return ok
}
