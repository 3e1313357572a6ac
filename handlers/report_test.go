package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailySummary(t *testing.T) {
	mock := setupMockDB(t)
	freezeTime(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	mock.ExpectQuery("SELECT c.name, SUM").
		WillReturnRows(sqlmock.NewRows([]string{"name", "total_orders"}).
			AddRow("Acme Corp", nil).
			AddRow("Globex", int64(7)))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("3500.00"))
	mock.ExpectQuery("SELECT setting_value FROM system_settings").
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/daily-summary", nil)
	rec := httptest.NewRecorder()
	DailySummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2026-03-02",
		"company_orders": [
			{"name": "Acme Corp", "total_orders": null},
			{"name": "Globex", "total_orders": 7}
		],
		"total_sales": "3500.00",
		"order_cutoff_time": "not configured"
	}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDailySummaryNoOrders(t *testing.T) {
	mock := setupMockDB(t)
	freezeTime(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	mock.ExpectQuery("SELECT c.name, SUM").
		WillReturnRows(sqlmock.NewRows([]string{"name", "total_orders"}))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("0"))
	mock.ExpectQuery("SELECT setting_value FROM system_settings").
		WillReturnRows(sqlmock.NewRows([]string{"setting_value"}).AddRow("10:30"))

	req := httptest.NewRequest(http.MethodGet, "/daily-summary", nil)
	rec := httptest.NewRecorder()
	DailySummary(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"date": "2026-03-02",
		"company_orders": [],
		"total_sales": "0",
		"order_cutoff_time": "10:30"
	}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerOrderStatusMissingParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/customer-order-status", nil)
	rec := httptest.NewRecorder()
	CustomerOrderStatus(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerOrderStatusMalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/customer-order-status?customer_user_id=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	CustomerOrderStatus(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerOrderStatusUnknownUser(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	req := httptest.NewRequest(http.MethodGet, "/customer-order-status?customer_user_id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	CustomerOrderStatus(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerOrderStatusNoOrderToday(t *testing.T) {
	mock := setupMockDB(t)
	freezeTime(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT o.id, COALESCE").
		WillReturnError(sql.ErrNoRows)

	req := httptest.NewRequest(http.MethodGet, "/customer-order-status?customer_user_id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	CustomerOrderStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"has_ordered": false, "total_quantity": 0}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerOrderStatusHasOrdered(t *testing.T) {
	mock := setupMockDB(t)
	freezeTime(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	orderID := uuid.New()
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT o.id, COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "coalesce"}).AddRow(orderID.String(), int64(4)))

	req := httptest.NewRequest(http.MethodGet, "/customer-order-status?customer_user_id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	CustomerOrderStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"has_ordered": true, "total_quantity": 4, "order_id": "`+orderID.String()+`"}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyOrderStatus(t *testing.T) {
	mock := setupMockDB(t)
	freezeTime(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(12)))

	req := httptest.NewRequest(http.MethodGet, "/company-order-status?company_id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	CompanyOrderStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_company_orders": 12}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyOrderStatusUnknownCompany(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	req := httptest.NewRequest(http.MethodGet, "/company-order-status?company_id="+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	CompanyOrderStatus(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
