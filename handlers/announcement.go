package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/database/dbhelper"
	"github.com/ray-remotestate/bento/models"
	"github.com/ray-remotestate/bento/utils"
	"github.com/sirupsen/logrus"
)

type announcementRequest struct {
	Title            string          `json:"title"`
	Content          string          `json:"content"`
	IsActive         *bool           `json:"is_active"`
	Audience         models.Audience `json:"audience"`
	TargetCompanyIDs []uuid.UUID     `json:"target_company_ids"`
}

// validateAudience enforces the audience variant: broadcast carries no
// targets, targeted requires at least one.
func validateAudience(audience models.Audience, targetCompanyIDs []uuid.UUID) string {
	if !audience.IsValid() {
		return "audience must be broadcast or targeted"
	}
	if audience == models.AudienceTargeted && len(targetCompanyIDs) == 0 {
		return "targeted announcements need at least one target company"
	}
	if audience == models.AudienceBroadcast && len(targetCompanyIDs) > 0 {
		return "broadcast announcements must not carry target companies"
	}
	return ""
}

func (req *announcementRequest) validate() string {
	if req.Title == "" || req.Content == "" {
		return "title and content are required"
	}
	if req.Audience == "" {
		req.Audience = models.AudienceBroadcast
	}
	return validateAudience(req.Audience, req.TargetCompanyIDs)
}

func ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := dbhelper.ListAnnouncements()
	if err != nil {
		logrus.WithError(err).Error("failed to list announcements")
		utils.RespondError(w, http.StatusInternalServerError, "failed to list announcements")
		return
	}
	utils.RespondJSON(w, http.StatusOK, announcements)
}

func GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	announcement, err := dbhelper.GetAnnouncementByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "announcement not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch announcement")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch announcement")
		return
	}
	utils.RespondJSON(w, http.StatusOK, announcement)
}

func CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	announcement := models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		IsActive: true,
		Audience: req.Audience,
	}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}

	var id uuid.UUID
	txErr := database.Tx(func(tx *sql.Tx) error {
		var err error
		id, err = dbhelper.CreateAnnouncementTx(tx, &announcement)
		if err != nil {
			return err
		}
		return dbhelper.ReplaceAnnouncementTargetsTx(tx, id, req.TargetCompanyIDs)
	})
	if txErr != nil {
		logrus.WithError(txErr).Error("failed to create announcement")
		utils.RespondError(w, http.StatusBadRequest, "failed to create announcement, check target companies")
		return
	}

	created, err := dbhelper.GetAnnouncementByID(id)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch created announcement")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch created announcement")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, created)
}

func UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	var req announcementRequest
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if msg := req.validate(); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	announcement := models.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		IsActive: true,
		Audience: req.Audience,
	}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}

	var notFound bool
	txErr := database.Tx(func(tx *sql.Tx) error {
		err := dbhelper.UpdateAnnouncementTx(tx, id, &announcement)
		if err == sql.ErrNoRows {
			notFound = true
			return err
		} else if err != nil {
			return err
		}
		return dbhelper.ReplaceAnnouncementTargetsTx(tx, id, req.TargetCompanyIDs)
	})
	if txErr != nil {
		if notFound {
			utils.RespondError(w, http.StatusNotFound, "announcement not found")
			return
		}
		logrus.WithError(txErr).Error("failed to update announcement")
		utils.RespondError(w, http.StatusBadRequest, "failed to update announcement, check target companies")
		return
	}

	updated, err := dbhelper.GetAnnouncementByID(id)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch updated announcement")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch updated announcement")
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}

func PatchAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	type request struct {
		Title            *string          `json:"title"`
		Content          *string          `json:"content"`
		IsActive         *bool            `json:"is_active"`
		Audience         *models.Audience `json:"audience"`
		TargetCompanyIDs []uuid.UUID      `json:"target_company_ids"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if req.Audience != nil || req.TargetCompanyIDs != nil {
		// merge with the stored variant so a partial change still ends up in
		// a consistent audience/targets pair
		existing, err := dbhelper.GetAnnouncementByID(id)
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusNotFound, "announcement not found")
			return
		} else if err != nil {
			logrus.WithError(err).Error("failed to fetch announcement")
			utils.RespondError(w, http.StatusInternalServerError, "failed to fetch announcement")
			return
		}

		audience := existing.Audience
		if req.Audience != nil {
			audience = *req.Audience
		}
		targets := existing.TargetCompanyIDs
		if req.TargetCompanyIDs != nil {
			targets = req.TargetCompanyIDs
		}
		if msg := validateAudience(audience, targets); msg != "" {
			utils.RespondError(w, http.StatusBadRequest, msg)
			return
		}
		fields["audience"] = audience

		txErr := database.Tx(func(tx *sql.Tx) error {
			if err := dbhelper.UpdateAnnouncementFieldsTx(tx, id, fields); err != nil {
				return err
			}
			return dbhelper.ReplaceAnnouncementTargetsTx(tx, id, targets)
		})
		if txErr != nil {
			logrus.WithError(txErr).Error("failed to patch announcement")
			utils.RespondError(w, http.StatusBadRequest, "failed to patch announcement, check target companies")
			return
		}

		patched, err := dbhelper.GetAnnouncementByID(id)
		if err != nil {
			logrus.WithError(err).Error("failed to fetch announcement")
			utils.RespondError(w, http.StatusInternalServerError, "failed to fetch announcement")
			return
		}
		utils.RespondJSON(w, http.StatusOK, patched)
		return
	}

	err = dbhelper.UpdateAnnouncementFields(id, fields)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "announcement not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to patch announcement")
		utils.RespondError(w, http.StatusInternalServerError, "failed to patch announcement")
		return
	}

	announcement, err := dbhelper.GetAnnouncementByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "announcement not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch announcement")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch announcement")
		return
	}
	utils.RespondJSON(w, http.StatusOK, announcement)
}

func DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid announcement id")
		return
	}

	err = dbhelper.DeleteAnnouncement(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "announcement not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to delete announcement")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete announcement")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
