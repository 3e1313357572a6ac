package handlers

import (
	"database/sql"
	"net/http"

	"github.com/ray-remotestate/bento/database/dbhelper"
	"github.com/ray-remotestate/bento/models"
	"github.com/ray-remotestate/bento/utils"
	"github.com/sirupsen/logrus"
)

func ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := dbhelper.ListCompanies()
	if err != nil {
		logrus.WithError(err).Error("failed to list companies")
		utils.RespondError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}
	utils.RespondJSON(w, http.StatusOK, companies)
}

func GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	company, err := dbhelper.GetCompanyByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "company not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch company")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch company")
		return
	}
	utils.RespondJSON(w, http.StatusOK, company)
}

func CreateCompany(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name          string  `json:"name"`
		ContactPerson *string `json:"contact_person"`
		Email         *string `json:"email"`
		PhoneNumber   *string `json:"phone_number"`
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

	company := models.CustomerCompany{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
	}
	id, err := dbhelper.CreateCompany(&company)
	if err != nil {
		logrus.WithError(err).Error("failed to create company")
		utils.RespondError(w, http.StatusBadRequest, "failed to create company, name may already exist")
		return
	}
	company.ID = id
	utils.RespondJSON(w, http.StatusCreated, company)
}

func UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	type request struct {
		Name          string  `json:"name"`
		ContactPerson *string `json:"contact_person"`
		Email         *string `json:"email"`
		PhoneNumber   *string `json:"phone_number"`
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

	company := models.CustomerCompany{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
	}
	err = dbhelper.UpdateCompany(id, &company)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "company not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to update company")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update company")
		return
	}
	company.ID = id
	utils.RespondJSON(w, http.StatusOK, company)
}

func PatchCompany(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	type request struct {
		Name          *string `json:"name"`
		ContactPerson *string `json:"contact_person"`
		Email         *string `json:"email"`
		PhoneNumber   *string `json:"phone_number"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		if *req.Name == "" {
			utils.RespondError(w, http.StatusBadRequest, "name must not be empty")
			return
		}
		fields["name"] = *req.Name
	}
	if req.ContactPerson != nil {
		fields["contact_person"] = *req.ContactPerson
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}

	err = dbhelper.UpdateCompanyFields(id, fields)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "company not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to patch company")
		utils.RespondError(w, http.StatusInternalServerError, "failed to patch company")
		return
	}

	company, err := dbhelper.GetCompanyByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "company not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch company")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch company")
		return
	}
	utils.RespondJSON(w, http.StatusOK, company)
}

func DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	// cascades to the company's customer users, their orders and items
	err = dbhelper.DeleteCompany(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "company not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to delete company")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete company")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
