package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/outfitly/outfitly-server/internal/domain"
	"github.com/outfitly/outfitly-server/internal/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(t.TempDir(), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// mustCreateTag seeds a tag directly through the service so tests exercise the
// same ID generation production uses.
func mustCreateTag(t *testing.T, svc *TagService, name string) *domain.Tag {
	t.Helper()

	tag, err := svc.Create(context.Background(), name)
	require.NoError(t, err)
	return tag
}

func fullCombo(name string, tags ...string) *domain.Combination {
	return &domain.Combination{
		ComboName: name,
		Top:       "white tee",
		Bottom:    "blue jeans",
		Shoes:     "sneakers",
		Bag:       "tote",
		Layer:     "denim jacket",
		Tags:      tags,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
