package handlers

import (
	"database/sql"
	"net/http"

	"github.com/ray-remotestate/bento/database/dbhelper"
	"github.com/ray-remotestate/bento/models"
	"github.com/ray-remotestate/bento/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func ListMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := dbhelper.ListMenus()
	if err != nil {
		logrus.WithError(err).Error("failed to list menus")
		utils.RespondError(w, http.StatusInternalServerError, "failed to list menus")
		return
	}
	utils.RespondJSON(w, http.StatusOK, menus)
}

func GetMenu(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu id")
		return
	}

	menu, err := dbhelper.GetMenuByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch menu")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch menu")
		return
	}
	utils.RespondJSON(w, http.StatusOK, menu)
}

func CreateMenu(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name        string          `json:"name"`
		Description *string         `json:"description"`
		Price       decimal.Decimal `json:"price"`
		ImageURL    *string         `json:"image_url"`
		Allergens   *string         `json:"allergens"`
		IsActive    *bool           `json:"is_active"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Price.IsNegative() {
		utils.RespondError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	menu := models.Menu{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Allergens:   req.Allergens,
		IsActive:    true,
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}

	id, err := dbhelper.CreateMenu(&menu)
	if err != nil {
		logrus.WithError(err).Error("failed to create menu")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create menu")
		return
	}
	menu.ID = id
	utils.RespondJSON(w, http.StatusCreated, menu)
}

func UpdateMenu(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu id")
		return
	}

	type request struct {
		Name        string          `json:"name"`
		Description *string         `json:"description"`
		Price       decimal.Decimal `json:"price"`
		ImageURL    *string         `json:"image_url"`
		Allergens   *string         `json:"allergens"`
		IsActive    bool            `json:"is_active"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Price.IsNegative() {
		utils.RespondError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	menu := models.Menu{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Allergens:   req.Allergens,
		IsActive:    req.IsActive,
	}
	err = dbhelper.UpdateMenu(id, &menu)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to update menu")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update menu")
		return
	}
	menu.ID = id
	utils.RespondJSON(w, http.StatusOK, menu)
}

func PatchMenu(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu id")
		return
	}

	type request struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Price       *decimal.Decimal `json:"price"`
		ImageURL    *string          `json:"image_url"`
		Allergens   *string          `json:"allergens"`
		IsActive    *bool            `json:"is_active"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			utils.RespondError(w, http.StatusBadRequest, "price must not be negative")
			return
		}
		fields["price"] = *req.Price
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Allergens != nil {
		fields["allergens"] = *req.Allergens
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	err = dbhelper.UpdateMenuFields(id, fields)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to patch menu")
		utils.RespondError(w, http.StatusInternalServerError, "failed to patch menu")
		return
	}

	menu, err := dbhelper.GetMenuByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch menu")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch menu")
		return
	}
	utils.RespondJSON(w, http.StatusOK, menu)
}

func DeleteMenu(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid menu id")
		return
	}

	err = dbhelper.DeleteMenu(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "menu not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to delete menu")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete menu")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
