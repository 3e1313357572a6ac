package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database/dbhelper"
	"github.com/ray-remotestate/bento/models"
	"github.com/ray-remotestate/bento/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const menuNotAvailable = "N/A"

// exportCells renders the menu-dependent columns of one row. A deleted menu
// reference yields N/A for name and price and a zero price in the total.
func exportCells(row models.ExportRow) (menuName, unitPrice, totalAmount string) {
	menuName = menuNotAvailable
	unitPrice = menuNotAvailable
	price := decimal.Zero
	if row.MenuName != nil {
		menuName = *row.MenuName
	}
	if row.MenuPrice != nil {
		unitPrice = row.MenuPrice.String()
		price = *row.MenuPrice
	}
	totalAmount = price.Mul(decimal.NewFromInt(int64(row.Quantity))).String()
	return menuName, unitPrice, totalAmount
}

func writeCSV(w http.ResponseWriter, filename string, header []string, records [][]string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		logrus.WithError(err).Error("failed to write csv header")
		return
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			logrus.WithError(err).Error("failed to write csv record")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		logrus.WithError(err).Error("failed to flush csv")
	}
}

func ExportDailyOrdersCSV(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		utils.RespondError(w, http.StatusBadRequest, "date parameter is required")
		return
	}
	day, err := models.ParseDate(rawDate)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}

	rows, err := dbhelper.DailyExportRows(day)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch daily export rows")
		utils.RespondError(w, http.StatusInternalServerError, "failed to export orders")
		return
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		menuName, unitPrice, totalAmount := exportCells(row)
		records = append(records, []string{
			row.CompanyName,
			menuName,
			strconv.Itoa(row.Quantity),
			unitPrice,
			totalAmount,
			row.OrderDate.String(),
			row.OrderedAt.Format(time.RFC3339),
		})
	}

	writeCSV(w, fmt.Sprintf("orders_%s.csv", rawDate),
		[]string{"Customer Name", "Menu", "Quantity", "Unit Price", "Total Amount", "Order Date", "Ordered At"},
		records)
}

func ExportAnnualOrdersCSV(w http.ResponseWriter, r *http.Request) {
	companyID, year, ok := parseCompanyYearParams(w, r)
	if !ok {
		return
	}

	rows, err := dbhelper.CompanyExportRows(companyID, year, 0)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch annual export rows")
		utils.RespondError(w, http.StatusInternalServerError, "failed to export orders")
		return
	}

	writeCompanyOrdersCSV(w, fmt.Sprintf("annual_orders_company_%s_%d.csv", companyID, year), rows)
}

func ExportMonthlyOrdersCSV(w http.ResponseWriter, r *http.Request) {
	rawMonth := r.URL.Query().Get("month")
	if rawMonth == "" {
		utils.RespondError(w, http.StatusBadRequest, "company_id, year, and month parameters are required")
		return
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		utils.RespondError(w, http.StatusBadRequest, "invalid month")
		return
	}

	companyID, year, ok := parseCompanyYearParams(w, r)
	if !ok {
		return
	}

	rows, err := dbhelper.CompanyExportRows(companyID, year, month)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch monthly export rows")
		utils.RespondError(w, http.StatusInternalServerError, "failed to export orders")
		return
	}

	writeCompanyOrdersCSV(w, fmt.Sprintf("monthly_orders_company_%s_%d_%d.csv", companyID, year, month), rows)
}

// parseCompanyYearParams validates the shared company_id/year pair.
// An unknown company is rejected as a bad parameter, not a 404.
func parseCompanyYearParams(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	rawCompanyID := r.URL.Query().Get("company_id")
	rawYear := r.URL.Query().Get("year")
	if rawCompanyID == "" || rawYear == "" {
		utils.RespondError(w, http.StatusBadRequest, "company_id and year parameters are required")
		return uuid.Nil, 0, false
	}

	companyID, err := uuid.Parse(rawCompanyID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid company_id")
		return uuid.Nil, 0, false
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid year")
		return uuid.Nil, 0, false
	}

	exists, err := dbhelper.CompanyExists(companyID)
	if err != nil {
		logrus.WithError(err).Error("failed to check company")
		utils.RespondError(w, http.StatusInternalServerError, "failed to check company")
		return uuid.Nil, 0, false
	}
	if !exists {
		utils.RespondError(w, http.StatusBadRequest, "invalid company_id or year")
		return uuid.Nil, 0, false
	}
	return companyID, year, true
}

func writeCompanyOrdersCSV(w http.ResponseWriter, filename string, rows []models.ExportRow) {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		menuName, unitPrice, totalAmount := exportCells(row)
		records = append(records, []string{
			row.EmployeeName,
			row.OrderDate.String(),
			menuName,
			strconv.Itoa(row.Quantity),
			unitPrice,
			totalAmount,
			row.OrderedAt.Format(time.RFC3339),
		})
	}

	writeCSV(w, filename,
		[]string{"Employee Name", "Order Date", "Menu", "Quantity", "Unit Price", "Total Amount", "Ordered At"},
		records)
}
