package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/nfrund/specboard/internal/domain"
	"github.com/nfrund/specboard/internal/storage"
	"github.com/nfrund/specboard/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, files map[string]string) *Service {
	t.Helper()
	return NewService(storage.NewAferoStore(testutils.ModulesFs(t, files)))
}

func TestService_Lookup(t *testing.T) {
	svc := newTestService(t, map[string]string{
		"module1.json": `{"name": "Engine", "specs": [1, 2]}`,
		"broken.json":  `{"name": `,
	})
	ctx := context.Background()

	t.Run("returns stored bytes unchanged", func(t *testing.T) {
		doc, err := svc.Lookup(ctx, "module1")
		require.NoError(t, err)
		assert.Equal(t, `{"name": "Engine", "specs": [1, 2]}`, string(doc))
	})

	t.Run("missing module", func(t *testing.T) {
		_, err := svc.Lookup(ctx, "module2")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("malformed module", func(t *testing.T) {
		_, err := svc.Lookup(ctx, "broken")
		assert.ErrorIs(t, err, domain.ErrMalformedModule)
	})

	t.Run("invalid identifier", func(t *testing.T) {
		_, err := svc.Lookup(ctx, "../module1")
		assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
	})
}

func TestService_Presence(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		files map[string]string
		want  domain.Presence
	}{
		{"neither", nil, domain.Presence{}},
		{"only module1", map[string]string{"module1.json": `{}`}, domain.Presence{Module1: true}},
		{"only module2", map[string]string{"module2.json": `{}`}, domain.Presence{Module2: true}},
		{"both", map[string]string{"module1.json": `{}`, "module2.json": `[]`}, domain.Presence{Module1: true, Module2: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, tt.files)
			assert.Equal(t, tt.want, svc.Presence(ctx))
		})
	}
}

// failingStore reports an I/O error for every existence check.
type failingStore struct{}

func (failingStore) Read(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) Exists(context.Context, string) (bool, error) {
	return false, errors.New("disk on fire")
}

func TestService_PresenceTreatsErrorsAsAbsent(t *testing.T) {
	svc := NewService(failingStore{})
	assert.Equal(t, domain.Presence{}, svc.Presence(context.Background()))
}
