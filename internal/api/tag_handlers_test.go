package api

import (
	"encoding/json/v2"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTag(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/tags", map[string]string{"name": "casual"}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var tag struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &tag))
	assert.NotEmpty(t, tag.ID)
	assert.Equal(t, "casual", tag.Name)
}

func TestCreateTag_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/tags", map[string]string{"name": "casual"}, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateTag_MissingName(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/tags", map[string]string{}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTag_Duplicate(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/tags", map[string]string{"name": "casual"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.doJSON(t, http.MethodPost, "/api/v1/tags", map[string]string{"name": "Casual"}, token)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListTags(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	for _, name := range []string{"summer", "casual"} {
		rec := ts.doJSON(t, http.MethodPost, "/api/v1/tags", map[string]string{"name": name}, token)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	// Listing is public.
	rec := ts.doJSON(t, http.MethodGet, "/api/v1/tags", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tags []struct {
		Name string `json:"name"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &tags))
	require.Len(t, tags, 2)
	assert.Equal(t, "casual", tags[0].Name)
	assert.Equal(t, "summer", tags[1].Name)
}
