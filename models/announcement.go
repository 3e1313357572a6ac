package models

import (
	"time"

	"github.com/google/uuid"
)

type Audience string

const (
	AudienceBroadcast Audience = "broadcast"
	AudienceTargeted  Audience = "targeted"
)

func (a Audience) IsValid() bool {
	return a == AudienceBroadcast || a == AudienceTargeted
}

type Announcement struct {
	ID               uuid.UUID   `db:"id" json:"id"`
	Title            string      `db:"title" json:"title"`
	Content          string      `db:"content" json:"content"`
	PublishedDate    time.Time   `db:"published_date" json:"published_date"`
	IsActive         bool        `db:"is_active" json:"is_active"`
	Audience         Audience    `db:"audience" json:"audience"`
	TargetCompanyIDs []uuid.UUID `db:"-" json:"target_company_ids"`
}
