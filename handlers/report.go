package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database/dbhelper"
	"github.com/ray-remotestate/bento/models"
	"github.com/ray-remotestate/bento/utils"
	"github.com/sirupsen/logrus"
)

const (
	cutoffSettingName   = "order_cutoff_time"
	cutoffNotConfigured = "not configured"
)

// timeNow is swapped out in tests to pin "today".
var timeNow = time.Now

func DailySummary(w http.ResponseWriter, r *http.Request) {
	today := models.NewDate(timeNow())

	companyOrders, err := dbhelper.DailyCompanyOrderCounts(today)
	if err != nil {
		logrus.WithError(err).Error("failed to aggregate company orders")
		utils.RespondError(w, http.StatusInternalServerError, "failed to build daily summary")
		return
	}

	totalSales, err := dbhelper.DailyTotalSales(today)
	if err != nil {
		logrus.WithError(err).Error("failed to aggregate total sales")
		utils.RespondError(w, http.StatusInternalServerError, "failed to build daily summary")
		return
	}

	cutoffTime, err := dbhelper.GetSettingValueByName(cutoffSettingName)
	if err == sql.ErrNoRows {
		cutoffTime = cutoffNotConfigured
	} else if err != nil {
		logrus.WithError(err).Error("failed to read cutoff setting")
		utils.RespondError(w, http.StatusInternalServerError, "failed to build daily summary")
		return
	}

	utils.RespondJSON(w, http.StatusOK, models.DailySummary{
		Date:            today,
		CompanyOrders:   companyOrders,
		TotalSales:      totalSales,
		OrderCutoffTime: cutoffTime,
	})
}

func CustomerOrderStatus(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("customer_user_id")
	if rawID == "" {
		utils.RespondError(w, http.StatusBadRequest, "customer_user_id parameter is required")
		return
	}
	customerUserID, err := uuid.Parse(rawID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid customer_user_id")
		return
	}

	exists, err := dbhelper.CustomerUserExists(customerUserID)
	if err != nil {
		logrus.WithError(err).Error("failed to check customer user")
		utils.RespondError(w, http.StatusInternalServerError, "failed to check customer user")
		return
	}
	if !exists {
		utils.RespondError(w, http.StatusNotFound, "customer user not found")
		return
	}

	today := models.NewDate(timeNow())
	orderID, totalQuantity, err := dbhelper.CustomerConfirmedOrderForDate(customerUserID, today)
	if err == sql.ErrNoRows {
		utils.RespondJSON(w, http.StatusOK, models.CustomerOrderStatus{
			HasOrdered:    false,
			TotalQuantity: 0,
		})
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch order status")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order status")
		return
	}

	utils.RespondJSON(w, http.StatusOK, models.CustomerOrderStatus{
		HasOrdered:    true,
		TotalQuantity: totalQuantity,
		OrderID:       &orderID,
	})
}

func CompanyOrderStatus(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("company_id")
	if rawID == "" {
		utils.RespondError(w, http.StatusBadRequest, "company_id parameter is required")
		return
	}
	companyID, err := uuid.Parse(rawID)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid company_id")
		return
	}

	exists, err := dbhelper.CompanyExists(companyID)
	if err != nil {
		logrus.WithError(err).Error("failed to check company")
		utils.RespondError(w, http.StatusInternalServerError, "failed to check company")
		return
	}
	if !exists {
		utils.RespondError(w, http.StatusNotFound, "company not found")
		return
	}

	today := models.NewDate(timeNow())
	total, err := dbhelper.CompanyConfirmedQuantityForDate(companyID, today)
	if err != nil {
		logrus.WithError(err).Error("failed to aggregate company order status")
		utils.RespondError(w, http.StatusInternalServerError, "failed to aggregate company order status")
		return
	}

	utils.RespondJSON(w, http.StatusOK, models.CompanyOrderStatus{TotalCompanyOrders: total})
}
