package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/outfitly/outfitly-server/internal/domain"
	apperrors "github.com/outfitly/outfitly-server/internal/errors"
	"github.com/outfitly/outfitly-server/internal/id"
	"github.com/outfitly/outfitly-server/internal/store"
)

// CombinationService orchestrates CRUD over the combination collection,
// enforcing field completeness on writes and tag validity on updates.
type CombinationService struct {
	store  *store.Store
	tags   *TagService
	logger *slog.Logger
}

// NewCombinationService creates a new combination service.
func NewCombinationService(store *store.Store, tags *TagService, logger *slog.Logger) *CombinationService {
	return &CombinationService{
		store:  store,
		tags:   tags,
		logger: logger,
	}
}

// ComboSummary is the projection returned by List: the slot fields and tags,
// without the layer slot or timestamps.
type ComboSummary struct {
	ID        string   `json:"id"`
	ComboName string   `json:"combo_name"`
	Top       string   `json:"top"`
	Bottom    string   `json:"bottom"`
	Shoes     string   `json:"shoes"`
	Bag       string   `json:"bag"`
	Dress     string   `json:"dress,omitempty"`
	Tags      []string `json:"tags"`
}

// List returns all combinations matching the given search parameters.
func (s *CombinationService) List(ctx context.Context, params store.FilterParams) ([]ComboSummary, error) {
	filter := store.BuildComboFilter(params)

	combos, err := s.store.ListCombos(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]ComboSummary, len(combos))
	for i, c := range combos {
		summaries[i] = ComboSummary{
			ID:        c.ID,
			ComboName: c.ComboName,
			Top:       c.Top,
			Bottom:    c.Bottom,
			Shoes:     c.Shoes,
			Bag:       c.Bag,
			Dress:     c.Dress,
			Tags:      c.Tags,
		}
	}

	return summaries, nil
}

// Get retrieves a single combination by ID.
// A malformed identifier is a Validation error, not a lookup miss.
func (s *CombinationService) Get(ctx context.Context, comboID string) (*domain.Combination, error) {
	if !id.Valid("combo", comboID) {
		return nil, apperrors.Validation("invalid combination id")
	}

	c, err := s.store.GetCombo(ctx, comboID)
	if err != nil {
		if apperrors.Is(err, store.ErrComboNotFound) {
			return nil, apperrors.NotFound("combination not found")
		}
		return nil, err
	}

	return c, nil
}

// Create validates and inserts a new combination.
// All five core slots plus tags and layer must be present; tags are stored as
// trimmed display strings in their original order.
func (s *CombinationService) Create(ctx context.Context, c *domain.Combination) (*domain.Combination, error) {
	if missing := c.MissingFields(true); len(missing) > 0 {
		return nil, apperrors.ValidationWithDetails("missing required fields", missing)
	}

	c.NormalizeTags()
	if len(c.Tags) == 0 {
		return nil, apperrors.Validation("tags must contain at least one non-empty entry")
	}

	comboID, err := id.Generate("combo")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	c.ID = comboID
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.store.CreateCombo(ctx, c); err != nil {
		if apperrors.Is(err, store.ErrComboNameExists) {
			return nil, apperrors.Conflict("combination name already in use")
		}
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("Combination created", "combo_id", c.ID, "combo_name", c.ComboName)
	}

	return c, nil
}

// Update validates and fully replaces the combination stored under comboID.
//
// The existing document is located by comboName from the payload; if that
// combination is not the one addressed by the path ID the update is rejected
// rather than silently overwriting a different record. Tags are re-resolved
// against the tag collection and stored as tag IDs.
func (s *CombinationService) Update(ctx context.Context, comboID string, c *domain.Combination) (*domain.Combination, error) {
	if !id.Valid("combo", comboID) {
		return nil, apperrors.Validation("invalid combination id")
	}

	// Tags are not presence-checked here; resolution below decides their fate.
	if missing := c.MissingFields(false); len(missing) > 0 {
		return nil, apperrors.ValidationWithDetails("missing required fields", missing)
	}

	existing, err := s.store.GetComboByName(ctx, c.ComboName)
	if err != nil {
		if apperrors.Is(err, store.ErrComboNotFound) {
			return nil, apperrors.NotFoundf("no combination named %q", c.ComboName)
		}
		return nil, err
	}
	if existing.ID != comboID {
		return nil, apperrors.Validation("combo_name belongs to a different combination")
	}

	tagIDs, err := s.tags.Resolve(ctx, c.Tags)
	if err != nil {
		return nil, err
	}

	c.ID = comboID
	c.Tags = tagIDs
	c.CreatedAt = existing.CreatedAt
	c.Touch()

	if err := s.store.UpdateCombo(ctx, comboID, c); err != nil {
		switch {
		case apperrors.Is(err, store.ErrComboNotFound):
			return nil, apperrors.NotFound("combination not found")
		case apperrors.Is(err, store.ErrComboNameExists):
			return nil, apperrors.Conflict("combination name already in use")
		default:
			return nil, err
		}
	}

	if s.logger != nil {
		s.logger.Info("Combination updated", "combo_id", c.ID, "combo_name", c.ComboName)
	}

	return c, nil
}

// Delete removes a combination by ID. Deletion is physical.
func (s *CombinationService) Delete(ctx context.Context, comboID string) error {
	if !id.Valid("combo", comboID) {
		return apperrors.Validation("invalid combination id")
	}

	if err := s.store.DeleteCombo(ctx, comboID); err != nil {
		if apperrors.Is(err, store.ErrComboNotFound) {
			return apperrors.NotFound("combination not found")
		}
		return err
	}

	if s.logger != nil {
		s.logger.Info("Combination deleted", "combo_id", comboID)
	}

	return nil
}
