package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusNotFound, "menu not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "menu not found"}`, rec.Body.String())
}

func TestRespondJSONNilPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestParseIDParam(t *testing.T) {
	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/menus/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})

	parsed, err := ParseIDParam(req)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	_, err = ParseIDParam(req)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}
