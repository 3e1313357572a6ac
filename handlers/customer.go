package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database/dbhelper"
	"github.com/ray-remotestate/bento/models"
	"github.com/ray-remotestate/bento/utils"
	"github.com/sirupsen/logrus"
)

func ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := dbhelper.ListAccounts()
	if err != nil {
		logrus.WithError(err).Error("failed to list accounts")
		utils.RespondError(w, http.StatusInternalServerError, "failed to list accounts")
		return
	}
	utils.RespondJSON(w, http.StatusOK, accounts)
}

func GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	account, err := dbhelper.GetAccountByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "account not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch account")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch account")
		return
	}
	utils.RespondJSON(w, http.StatusOK, account)
}

func CreateAccount(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Username string  `json:"username"`
		Email    *string `json:"email"`
		Password string  `json:"password"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	taken, err := dbhelper.IsUsernameTaken(req.Username)
	if err != nil {
		logrus.WithError(err).Error("failed to check username")
		utils.RespondError(w, http.StatusInternalServerError, "failed to check username")
		return
	}
	if taken {
		utils.RespondError(w, http.StatusBadRequest, "username already taken")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logrus.WithError(err).Error("failed to hash password")
		utils.RespondError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	id, err := dbhelper.CreateAccount(req.Username, req.Email, hashedPassword)
	if err != nil {
		logrus.WithError(err).Error("failed to create account")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       id,
		"username": req.Username,
		"email":    req.Email,
	})
}

func DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	err = dbhelper.DeleteAccount(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "account not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to delete account")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete account")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}

func ListCustomerUsers(w http.ResponseWriter, r *http.Request) {
	users, err := dbhelper.ListCustomerUsers()
	if err != nil {
		logrus.WithError(err).Error("failed to list customer users")
		utils.RespondError(w, http.StatusInternalServerError, "failed to list customer users")
		return
	}
	utils.RespondJSON(w, http.StatusOK, users)
}

func GetCustomerUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid customer user id")
		return
	}

	user, err := dbhelper.GetCustomerUserByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "customer user not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch customer user")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch customer user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

func CreateCustomerUser(w http.ResponseWriter, r *http.Request) {
	type request struct {
		AccountID uuid.UUID `json:"account_id"`
		CompanyID uuid.UUID `json:"company_id"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AccountID == uuid.Nil || req.CompanyID == uuid.Nil {
		utils.RespondError(w, http.StatusBadRequest, "account_id and company_id are required")
		return
	}

	accountExists, err := dbhelper.AccountExists(req.AccountID)
	if err != nil {
		logrus.WithError(err).Error("failed to check account")
		utils.RespondError(w, http.StatusInternalServerError, "failed to check account")
		return
	}
	if !accountExists {
		utils.RespondError(w, http.StatusBadRequest, "account does not exist")
		return
	}

	companyExists, err := dbhelper.CompanyExists(req.CompanyID)
	if err != nil {
		logrus.WithError(err).Error("failed to check company")
		utils.RespondError(w, http.StatusInternalServerError, "failed to check company")
		return
	}
	if !companyExists {
		utils.RespondError(w, http.StatusBadRequest, "company does not exist")
		return
	}

	user := models.CustomerUser{AccountID: req.AccountID, CompanyID: req.CompanyID}
	id, err := dbhelper.CreateCustomerUser(&user)
	if err != nil {
		// unique constraint on account_id: one account maps to one customer user
		logrus.WithError(err).Error("failed to create customer user")
		utils.RespondError(w, http.StatusBadRequest, "account is already linked to a customer user")
		return
	}
	user.ID = id
	utils.RespondJSON(w, http.StatusCreated, user)
}

func UpdateCustomerUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid customer user id")
		return
	}

	type request struct {
		AccountID uuid.UUID `json:"account_id"`
		CompanyID uuid.UUID `json:"company_id"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AccountID == uuid.Nil || req.CompanyID == uuid.Nil {
		utils.RespondError(w, http.StatusBadRequest, "account_id and company_id are required")
		return
	}

	user := models.CustomerUser{AccountID: req.AccountID, CompanyID: req.CompanyID}
	err = dbhelper.UpdateCustomerUser(id, &user)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "customer user not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to update customer user")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update customer user")
		return
	}
	user.ID = id
	utils.RespondJSON(w, http.StatusOK, user)
}

func PatchCustomerUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid customer user id")
		return
	}

	type request struct {
		AccountID *uuid.UUID `json:"account_id"`
		CompanyID *uuid.UUID `json:"company_id"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := make(map[string]interface{})
	if req.AccountID != nil {
		fields["account_id"] = *req.AccountID
	}
	if req.CompanyID != nil {
		fields["company_id"] = *req.CompanyID
	}

	err = dbhelper.UpdateCustomerUserFields(id, fields)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "customer user not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to patch customer user")
		utils.RespondError(w, http.StatusInternalServerError, "failed to patch customer user")
		return
	}

	user, err := dbhelper.GetCustomerUserByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "customer user not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch customer user")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch customer user")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

func DeleteCustomerUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid customer user id")
		return
	}

	err = dbhelper.DeleteCustomerUser(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "customer user not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to delete customer user")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete customer user")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
