package api

import (
	"encoding/json/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullComboBody(name string, tags ...string) map[string]any {
	if tags == nil {
		tags = []string{"casual"}
	}
	return map[string]any{
		"combo_name": name,
		"top":        "white tee",
		"bottom":     "blue jeans",
		"shoes":      "sneakers",
		"bag":        "tote",
		"layer":      "denim jacket",
		"tags":       tags,
	}
}

// createCombo posts a combination and returns its ID.
func (ts *testServer) createCombo(t *testing.T, token string, body map[string]any) string {
	t.Helper()

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/combos", body, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var combo struct {
		ID string `json:"id"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &combo))
	require.NotEmpty(t, combo.ID)
	return combo.ID
}

func TestCreateCombo(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	comboID := ts.createCombo(t, token, fullComboBody("Beach Day", "casual", "summer"))

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/combos/"+comboID, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var combo struct {
		ComboName string   `json:"combo_name"`
		Tags      []string `json:"tags"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &combo))
	assert.Equal(t, "Beach Day", combo.ComboName)
	assert.Equal(t, []string{"casual", "summer"}, combo.Tags)
}

func TestCreateCombo_RequiresAuth(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/combos", fullComboBody("Beach Day"), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateCombo_MissingFields(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	body := fullComboBody("Beach Day")
	delete(body, "top")
	delete(body, "layer")

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/combos", body, token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION", env.Error.Code)
}

func TestCreateCombo_DuplicateName(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	ts.createCombo(t, token, fullComboBody("Beach Day"))

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/combos", fullComboBody("Beach Day"), token)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListCombos(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	ts.createCombo(t, token, fullComboBody("Beach Day", "casual", "summer"))

	office := fullComboBody("Office Monday", "formal")
	office["top"] = "blazer"
	ts.createCombo(t, token, office)

	decode := func(rec *httptest.ResponseRecorder) []map[string]any {
		t.Helper()
		var combos []map[string]any
		env := decodeEnvelope(t, rec)
		require.NoError(t, json.Unmarshal(env.Data, &combos))
		return combos
	}

	t.Run("no filter returns all, reads are public", func(t *testing.T) {
		rec := ts.doJSON(t, http.MethodGet, "/api/v1/combos", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(rec), 2)
	})

	t.Run("tag filter", func(t *testing.T) {
		rec := ts.doJSON(t, http.MethodGet, "/api/v1/combos?tags=formal", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		combos := decode(rec)
		require.Len(t, combos, 1)
		assert.Equal(t, "Office Monday", combos[0]["combo_name"])
	})

	t.Run("name fragment filter is case-insensitive", func(t *testing.T) {
		rec := ts.doJSON(t, http.MethodGet, "/api/v1/combos?combos=BEACH", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode(rec), 1)
	})

	t.Run("wardrobe filter", func(t *testing.T) {
		rec := ts.doJSON(t, http.MethodGet, "/api/v1/combos?wardrobe=top:blazer", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		combos := decode(rec)
		require.Len(t, combos, 1)
		assert.Equal(t, "Office Monday", combos[0]["combo_name"])
	})
}

func TestGetCombo_NotFound(t *testing.T) {
	ts := setupTestServer(t)

	// Well-formed but unknown ID.
	rec := ts.doJSON(t, http.MethodGet, "/api/v1/combos/combo-V1StGXR8Z5jdHi6BmyT91", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCombo_MalformedID(t *testing.T) {
	ts := setupTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/combos/bogus", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCombo(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	// The replacement's tags must resolve against the tag collection.
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/tags", map[string]string{"name": "casual"}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	comboID := ts.createCombo(t, token, fullComboBody("Beach Day"))

	update := fullComboBody("Beach Day")
	update["top"] = "linen shirt"

	rec = ts.doJSON(t, http.MethodPut, "/api/v1/combos/"+comboID, update, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var combo struct {
		Top string `json:"top"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &combo))
	assert.Equal(t, "linen shirt", combo.Top)
}

func TestUpdateCombo_UnknownName(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	comboID := ts.createCombo(t, token, fullComboBody("Beach Day"))

	update := fullComboBody("No Such Combo")
	update["tags"] = []string{}

	rec := ts.doJSON(t, http.MethodPut, "/api/v1/combos/"+comboID, update, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCombo_UnknownTag(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	comboID := ts.createCombo(t, token, fullComboBody("Beach Day"))

	rec := ts.doJSON(t, http.MethodPut, "/api/v1/combos/"+comboID, fullComboBody("Beach Day", "nosuchtag"), token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCombo(t *testing.T) {
	ts := setupTestServer(t)
	token := ts.registerAndLogin(t)

	comboID := ts.createCombo(t, token, fullComboBody("Beach Day"))

	rec := ts.doJSON(t, http.MethodDelete, "/api/v1/combos/"+comboID, nil, token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.doJSON(t, http.MethodGet, "/api/v1/combos/"+comboID, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.doJSON(t, http.MethodDelete, "/api/v1/combos/"+comboID, nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
