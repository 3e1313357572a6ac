package models

import "github.com/google/uuid"

type SystemSetting struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SettingName  string    `db:"setting_name" json:"setting_name"`
	SettingValue string    `db:"setting_value" json:"setting_value"`
}
