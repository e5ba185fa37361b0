package api

import (
	"net/http"

	"github.com/outfitly/outfitly-server/internal/http/response"
)

// TagRequest is the request body for creating a tag.
type TagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// handleListTags returns every tag, sorted by name.
func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.tagService.List(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, tags, s.logger)
}

// handleCreateTag creates a new tag.
func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if err := s.decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	tag, err := s.tagService.Create(r.Context(), req.Name)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, tag, s.logger)
}
