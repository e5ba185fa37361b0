package api

import (
	"encoding/json/v2"
	"net/http"

	apperrors "github.com/outfitly/outfitly-server/internal/errors"
)

// maxBodySize caps request bodies at 1 MiB; nothing in this API is larger.
const maxBodySize = 1 << 20

// decodeBody reads and validates a JSON request body into dst.
// dst must be a pointer to a struct carrying validate tags.
func (s *Server) decodeBody(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodySize)

	if err := json.UnmarshalRead(r.Body, dst); err != nil {
		return apperrors.Validation("invalid JSON request body").WithCause(err)
	}

	return s.validator.Validate(dst)
}
