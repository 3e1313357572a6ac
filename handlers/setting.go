package handlers

import (
	"database/sql"
	"net/http"

	"github.com/ray-remotestate/bento/database/dbhelper"
	"github.com/ray-remotestate/bento/models"
	"github.com/ray-remotestate/bento/utils"
	"github.com/sirupsen/logrus"
)

func ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := dbhelper.ListSettings()
	if err != nil {
		logrus.WithError(err).Error("failed to list settings")
		utils.RespondError(w, http.StatusInternalServerError, "failed to list settings")
		return
	}
	utils.RespondJSON(w, http.StatusOK, settings)
}

func GetSetting(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid setting id")
		return
	}

	setting, err := dbhelper.GetSettingByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "setting not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch setting")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch setting")
		return
	}
	utils.RespondJSON(w, http.StatusOK, setting)
}

func CreateSetting(w http.ResponseWriter, r *http.Request) {
	type request struct {
		SettingName  string `json:"setting_name"`
		SettingValue string `json:"setting_value"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SettingName == "" {
		utils.RespondError(w, http.StatusBadRequest, "setting_name is required")
		return
	}

	setting := models.SystemSetting{SettingName: req.SettingName, SettingValue: req.SettingValue}
	id, err := dbhelper.CreateSetting(&setting)
	if err != nil {
		logrus.WithError(err).Error("failed to create setting")
		utils.RespondError(w, http.StatusBadRequest, "failed to create setting, name may already exist")
		return
	}
	setting.ID = id
	utils.RespondJSON(w, http.StatusCreated, setting)
}

func UpdateSetting(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid setting id")
		return
	}

	type request struct {
		SettingName  string `json:"setting_name"`
		SettingValue string `json:"setting_value"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SettingName == "" {
		utils.RespondError(w, http.StatusBadRequest, "setting_name is required")
		return
	}

	setting := models.SystemSetting{SettingName: req.SettingName, SettingValue: req.SettingValue}
	err = dbhelper.UpdateSetting(id, &setting)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "setting not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to update setting")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update setting")
		return
	}
	setting.ID = id
	utils.RespondJSON(w, http.StatusOK, setting)
}

func PatchSetting(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid setting id")
		return
	}

	type request struct {
		SettingName  *string `json:"setting_name"`
		SettingValue *string `json:"setting_value"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := make(map[string]interface{})
	if req.SettingName != nil {
		if *req.SettingName == "" {
			utils.RespondError(w, http.StatusBadRequest, "setting_name must not be empty")
			return
		}
		fields["setting_name"] = *req.SettingName
	}
	if req.SettingValue != nil {
		fields["setting_value"] = *req.SettingValue
	}

	err = dbhelper.UpdateSettingFields(id, fields)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "setting not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to patch setting")
		utils.RespondError(w, http.StatusInternalServerError, "failed to patch setting")
		return
	}

	setting, err := dbhelper.GetSettingByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "setting not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch setting")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch setting")
		return
	}
	utils.RespondJSON(w, http.StatusOK, setting)
}

func DeleteSetting(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid setting id")
		return
	}

	err = dbhelper.DeleteSetting(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "setting not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to delete setting")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete setting")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
