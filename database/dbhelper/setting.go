package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/models"
)

func CreateSetting(setting *models.SystemSetting) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Bento.QueryRow(`
		INSERT INTO system_settings (setting_name, setting_value)
		VALUES ($1, $2)
		RETURNING id`,
		setting.SettingName, setting.SettingValue).Scan(&id)
	return id, err
}

func GetSettingByID(id uuid.UUID) (*models.SystemSetting, error) {
	var setting models.SystemSetting
	err := database.Bento.Get(&setting, `
		SELECT id, setting_name, setting_value
		FROM system_settings
		WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func GetSettingValueByName(name string) (string, error) {
	var value string
	err := database.Bento.QueryRow(`
		SELECT setting_value FROM system_settings WHERE setting_name = $1`, name).Scan(&value)
	return value, err
}

func ListSettings() ([]models.SystemSetting, error) {
	settings := make([]models.SystemSetting, 0)
	err := database.Bento.Select(&settings, `
		SELECT id, setting_name, setting_value
		FROM system_settings
		ORDER BY setting_name`)
	return settings, err
}

func UpdateSetting(id uuid.UUID, setting *models.SystemSetting) error {
	result, err := database.Bento.Exec(`
		UPDATE system_settings
		SET setting_name = $1, setting_value = $2
		WHERE id = $3`,
		setting.SettingName, setting.SettingValue, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func UpdateSettingFields(id uuid.UUID, fields map[string]interface{}) error {
	return updateFields("system_settings", id, fields)
}

func DeleteSetting(id uuid.UUID) error {
	return deleteByID("system_settings", id)
}
