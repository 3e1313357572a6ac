package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/models"
)

func CreateAnnouncementTx(tx *sql.Tx, announcement *models.Announcement) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(`
		INSERT INTO announcements (title, content, is_active, audience)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		announcement.Title, announcement.Content, announcement.IsActive, announcement.Audience).Scan(&id)
	return id, err
}

func UpdateAnnouncementTx(tx *sql.Tx, id uuid.UUID, announcement *models.Announcement) error {
	result, err := tx.Exec(`
		UPDATE announcements
		SET title = $1, content = $2, is_active = $3, audience = $4
		WHERE id = $5`,
		announcement.Title, announcement.Content, announcement.IsActive, announcement.Audience, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

// ReplaceAnnouncementTargetsTx rewrites the target set; an empty slice
// clears it, which is what a broadcast announcement carries.
func ReplaceAnnouncementTargetsTx(tx *sql.Tx, announcementID uuid.UUID, companyIDs []uuid.UUID) error {
	if _, err := tx.Exec(`DELETE FROM announcement_targets WHERE announcement_id = $1`, announcementID); err != nil {
		return err
	}
	for _, companyID := range companyIDs {
		_, err := tx.Exec(`
			INSERT INTO announcement_targets (announcement_id, company_id)
			VALUES ($1, $2)`, announcementID, companyID)
		if err != nil {
			return err
		}
	}
	return nil
}

func GetAnnouncementByID(id uuid.UUID) (*models.Announcement, error) {
	var announcement models.Announcement
	err := database.Bento.Get(&announcement, `
		SELECT id, title, content, published_date, is_active, audience
		FROM announcements
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}

	targets, err := getAnnouncementTargets(id)
	if err != nil {
		return nil, err
	}
	announcement.TargetCompanyIDs = targets
	return &announcement, nil
}

func ListAnnouncements() ([]models.Announcement, error) {
	announcements := make([]models.Announcement, 0)
	err := database.Bento.Select(&announcements, `
		SELECT id, title, content, published_date, is_active, audience
		FROM announcements
		ORDER BY published_date DESC`)
	if err != nil {
		return nil, err
	}

	type target struct {
		AnnouncementID uuid.UUID `db:"announcement_id"`
		CompanyID      uuid.UUID `db:"company_id"`
	}
	targets := make([]target, 0)
	err = database.Bento.Select(&targets, `
		SELECT announcement_id, company_id FROM announcement_targets`)
	if err != nil {
		return nil, err
	}

	byAnnouncement := make(map[uuid.UUID][]uuid.UUID)
	for _, t := range targets {
		byAnnouncement[t.AnnouncementID] = append(byAnnouncement[t.AnnouncementID], t.CompanyID)
	}
	for i := range announcements {
		announcements[i].TargetCompanyIDs = byAnnouncement[announcements[i].ID]
		if announcements[i].TargetCompanyIDs == nil {
			announcements[i].TargetCompanyIDs = make([]uuid.UUID, 0)
		}
	}
	return announcements, nil
}

func getAnnouncementTargets(announcementID uuid.UUID) ([]uuid.UUID, error) {
	targets := make([]uuid.UUID, 0)
	err := database.Bento.Select(&targets, `
		SELECT company_id FROM announcement_targets WHERE announcement_id = $1`, announcementID)
	return targets, err
}

func UpdateAnnouncementFields(id uuid.UUID, fields map[string]interface{}) error {
	return updateFields("announcements", id, fields)
}

func UpdateAnnouncementFieldsTx(tx *sql.Tx, id uuid.UUID, fields map[string]interface{}) error {
	return updateFieldsTx(tx, "announcements", id, fields)
}

func DeleteAnnouncement(id uuid.UUID) error {
	return deleteByID("announcements", id)
}
