// Package service contains the business logic between the HTTP handlers and the store.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/outfitly/outfitly-server/internal/domain"
	apperrors "github.com/outfitly/outfitly-server/internal/errors"
	"github.com/outfitly/outfitly-server/internal/id"
	"github.com/outfitly/outfitly-server/internal/store"
)

// TagService owns the tag collection and resolves tag names to canonical IDs.
type TagService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(store *store.Store, logger *slog.Logger) *TagService {
	return &TagService{
		store:  store,
		logger: logger,
	}
}

// Resolve maps tag names to canonical tag IDs.
// All-or-nothing: if any name has no matching tag, the whole resolution fails
// with a Validation error and no IDs are returned. Duplicate names collapse to
// one lookup. IDs come back in input order.
func (s *TagService) Resolve(ctx context.Context, names []string) ([]string, error) {
	distinct := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		normalized := strings.ToLower(trimmed)
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		distinct = append(distinct, trimmed)
	}

	// Zero requested names resolve to zero IDs; emptiness is the caller's call.
	if len(distinct) == 0 {
		return []string{}, nil
	}

	found, err := s.store.GetTagsByNames(ctx, distinct)
	if err != nil {
		return nil, err
	}

	// Deliberately vague: which names failed is not reported.
	if len(found) != len(distinct) {
		return nil, apperrors.Validation("one or more invalid tags")
	}

	// Input order, not store lookup order.
	ids := make([]string, len(distinct))
	for i, name := range distinct {
		ids[i] = found[name].ID
	}

	return ids, nil
}

// Create adds a new tag with the given display name.
func (s *TagService) Create(ctx context.Context, name string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("tag name is required")
	}

	tagID, err := id.Generate("tag")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := &domain.Tag{
		ID:        tagID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateTag(ctx, t); err != nil {
		if apperrors.Is(err, store.ErrTagExists) {
			return nil, apperrors.Conflict("tag already exists")
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("Tag created", "tag_id", t.ID, "name", t.Name)
	}

	return t, nil
}

// List returns all tags ordered by name.
func (s *TagService) List(ctx context.Context) ([]*domain.Tag, error) {
	return s.store.ListTags(ctx)
}
