package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/outfitly/outfitly-server/internal/domain"
	"github.com/outfitly/outfitly-server/internal/http/response"
	"github.com/outfitly/outfitly-server/internal/store"
)

// ComboRequest is the request body for creating or replacing a combination.
// Field presence is checked by the service so the error can name every
// missing field at once; here we only bound the sizes.
type ComboRequest struct {
	ComboName string   `json:"combo_name" validate:"omitempty,max=200"`
	Top       string   `json:"top" validate:"omitempty,max=200"`
	Bottom    string   `json:"bottom" validate:"omitempty,max=200"`
	Shoes     string   `json:"shoes" validate:"omitempty,max=200"`
	Bag       string   `json:"bag" validate:"omitempty,max=200"`
	Dress     string   `json:"dress,omitempty" validate:"omitempty,max=200"`
	Layer     string   `json:"layer" validate:"omitempty,max=200"`
	Tags      []string `json:"tags" validate:"omitempty,max=50,dive,max=100"`
}

func (req *ComboRequest) toDomain() *domain.Combination {
	return &domain.Combination{
		ComboName: req.ComboName,
		Top:       req.Top,
		Bottom:    req.Bottom,
		Shoes:     req.Shoes,
		Bag:       req.Bag,
		Dress:     req.Dress,
		Layer:     req.Layer,
		Tags:      req.Tags,
	}
}

// handleListCombos returns combinations matching the search query.
// All three parameters are optional and combine with AND semantics.
func (s *Server) handleListCombos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := store.FilterParams{
		Tags:     query.Get("tags"),
		Combos:   query.Get("combos"),
		Wardrobe: query.Get("wardrobe"),
	}

	combos, err := s.comboService.List(r.Context(), params)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, combos, s.logger)
}

// handleGetCombo returns a single combination by ID.
func (s *Server) handleGetCombo(w http.ResponseWriter, r *http.Request) {
	comboID := chi.URLParam(r, "id")

	combo, err := s.comboService.Get(r.Context(), comboID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, combo, s.logger)
}

// handleCreateCombo creates a new combination.
func (s *Server) handleCreateCombo(w http.ResponseWriter, r *http.Request) {
	var req ComboRequest
	if err := s.decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	combo, err := s.comboService.Create(r.Context(), req.toDomain())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, combo, s.logger)
}

// handleUpdateCombo fully replaces the combination addressed by the path ID.
func (s *Server) handleUpdateCombo(w http.ResponseWriter, r *http.Request) {
	comboID := chi.URLParam(r, "id")

	var req ComboRequest
	if err := s.decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	combo, err := s.comboService.Update(r.Context(), comboID, req.toDomain())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, combo, s.logger)
}

// handleDeleteCombo removes a combination.
func (s *Server) handleDeleteCombo(w http.ResponseWriter, r *http.Request) {
	comboID := chi.URLParam(r, "id")

	if err := s.comboService.Delete(r.Context(), comboID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
