package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Menu struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	ImageURL    *string         `db:"image_url" json:"image_url"`
	Allergens   *string         `db:"allergens" json:"allergens"`
	IsActive    bool            `db:"is_active" json:"is_active"`
}
