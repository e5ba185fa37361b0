package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/outfitly/outfitly-server/internal/domain"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(t.TempDir(), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// testCombo builds a fully populated combination for store tests.
func testCombo(id, name string, tags ...string) *domain.Combination {
	now := time.Now()
	return &domain.Combination{
		ID:        id,
		ComboName: name,
		Top:       "white tee",
		Bottom:    "blue jeans",
		Shoes:     "sneakers",
		Bag:       "tote",
		Layer:     "denim jacket",
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
