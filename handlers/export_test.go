package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportRowColumns() []string {
	return []string{"company_name", "employee_name", "menu_name", "quantity", "menu_price", "order_date", "ordered_at"}
}

func TestExportDailyOrdersCSVMissingDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export-csv", nil)
	rec := httptest.NewRecorder()
	ExportDailyOrdersCSV(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportDailyOrdersCSVMalformedDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export-csv?date=02-03-2026", nil)
	rec := httptest.NewRecorder()
	ExportDailyOrdersCSV(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportDailyOrdersCSV(t *testing.T) {
	mock := setupMockDB(t)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT\\s+c.name AS company_name").
		WillReturnRows(sqlmock.NewRows(exportRowColumns()).
			AddRow("Acme Corp", "tanaka", "Karaage Bento", 3, "500.00", day, time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)).
			AddRow("Acme Corp", "suzuki", nil, 2, nil, day, time.Date(2026, 3, 2, 9, 20, 0, 0, time.UTC)))

	req := httptest.NewRequest(http.MethodGet, "/export-csv?date=2026-03-02", nil)
	rec := httptest.NewRecorder()
	ExportDailyOrdersCSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="orders_2026-03-02.csv"`, rec.Header().Get("Content-Disposition"))

	want := "Customer Name,Menu,Quantity,Unit Price,Total Amount,Order Date,Ordered At\n" +
		"Acme Corp,Karaage Bento,3,500.00,1500.00,2026-03-02,2026-03-02T09:15:00Z\n" +
		"Acme Corp,N/A,2,N/A,0,2026-03-02,2026-03-02T09:20:00Z\n"
	assert.Equal(t, want, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportAnnualOrdersCSVMissingParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export-annual-orders-csv?year=2026", nil)
	rec := httptest.NewRecorder()
	ExportAnnualOrdersCSV(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportAnnualOrdersCSVBadYear(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export-annual-orders-csv?company_id="+uuid.NewString()+"&year=twenty", nil)
	rec := httptest.NewRecorder()
	ExportAnnualOrdersCSV(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportAnnualOrdersCSVUnknownCompany(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	req := httptest.NewRequest(http.MethodGet, "/export-annual-orders-csv?company_id="+uuid.NewString()+"&year=2026", nil)
	rec := httptest.NewRecorder()
	ExportAnnualOrdersCSV(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportAnnualOrdersCSV(t *testing.T) {
	mock := setupMockDB(t)
	companyID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT\\s+c.name AS company_name").
		WillReturnRows(sqlmock.NewRows(exportRowColumns()).
			AddRow("Acme Corp", "tanaka", "Sake Bento", 1, "650.00", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)))

	req := httptest.NewRequest(http.MethodGet, "/export-annual-orders-csv?company_id="+companyID.String()+"&year=2026", nil)
	rec := httptest.NewRecorder()
	ExportAnnualOrdersCSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="annual_orders_company_`+companyID.String()+`_2026.csv"`, rec.Header().Get("Content-Disposition"))

	want := "Employee Name,Order Date,Menu,Quantity,Unit Price,Total Amount,Ordered At\n" +
		"tanaka,2026-01-15,Sake Bento,1,650.00,650.00,2026-01-15T09:00:00Z\n"
	assert.Equal(t, want, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportMonthlyOrdersCSVMissingMonth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export-monthly-orders-csv?company_id="+uuid.NewString()+"&year=2026", nil)
	rec := httptest.NewRecorder()
	ExportMonthlyOrdersCSV(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportMonthlyOrdersCSVBadMonth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/export-monthly-orders-csv?company_id="+uuid.NewString()+"&year=2026&month=13", nil)
	rec := httptest.NewRecorder()
	ExportMonthlyOrdersCSV(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportMonthlyOrdersCSV(t *testing.T) {
	mock := setupMockDB(t)
	companyID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT\\s+c.name AS company_name").
		WillReturnRows(sqlmock.NewRows(exportRowColumns()).
			AddRow("Acme Corp", "suzuki", "Yakizakana Bento", 2, "720.00", time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 3, 10, 30, 0, 0, time.UTC)))

	req := httptest.NewRequest(http.MethodGet, "/export-monthly-orders-csv?company_id="+companyID.String()+"&year=2026&month=4", nil)
	rec := httptest.NewRecorder()
	ExportMonthlyOrdersCSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="monthly_orders_company_`+companyID.String()+`_2026_4.csv"`, rec.Header().Get("Content-Disposition"))

	want := "Employee Name,Order Date,Menu,Quantity,Unit Price,Total Amount,Ordered At\n" +
		"suzuki,2026-04-03,Yakizakana Bento,2,720.00,1440.00,2026-04-03T10:30:00Z\n"
	assert.Equal(t, want, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
