package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenu(t *testing.T) {
	mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery("INSERT INTO menus").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	body := `{"name": "Karaage Bento", "price": "500.00", "allergens": "soy, wheat"}`
	req := httptest.NewRequest(http.MethodPost, "/menus", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateMenu(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		ID       uuid.UUID `json:"id"`
		Name     string    `json:"name"`
		Price    string    `json:"price"`
		IsActive bool      `json:"is_active"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "Karaage Bento", resp.Name)
	assert.Equal(t, "500.00", resp.Price)
	assert.True(t, resp.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMenuMissingName(t *testing.T) {
	body := `{"price": "500.00"}`
	req := httptest.NewRequest(http.MethodPost, "/menus", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateMenu(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMenuNegativePrice(t *testing.T) {
	body := `{"name": "Karaage Bento", "price": "-1.00"}`
	req := httptest.NewRequest(http.MethodPost, "/menus", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateMenu(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMenuNotFound(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery("SELECT id, name, description, price").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/menus/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	GetMenu(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPatchMenuPrice(t *testing.T) {
	mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE menus SET price").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, name, description, price").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "image_url", "allergens", "is_active"}).
			AddRow(id.String(), "Karaage Bento", nil, "550.00", nil, nil, true))

	req := httptest.NewRequest(http.MethodPatch, "/menus/"+id.String(), strings.NewReader(`{"price": "550.00"}`))
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()
	PatchMenu(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":"550.00"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMenu(t *testing.T) {
	mock := setupMockDB(t)

	id := uuid.NewString()
	mock.ExpectExec("DELETE FROM menus").
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest(http.MethodDelete, "/menus/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	DeleteMenu(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMenuNotFound(t *testing.T) {
	mock := setupMockDB(t)

	id := uuid.NewString()
	mock.ExpectExec("DELETE FROM menus").
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodDelete, "/menus/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	DeleteMenu(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
