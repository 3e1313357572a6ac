package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	CustomerUserID uuid.UUID       `db:"customer_user_id" json:"customer_user_id"`
	OrderDate      Date            `db:"order_date" json:"order_date"`
	TotalAmount    decimal.Decimal `db:"total_amount" json:"total_amount"`
	IsConfirmed    bool            `db:"is_confirmed" json:"is_confirmed"`
	OrderedAt      time.Time       `db:"ordered_at" json:"ordered_at"`
}

type OrderItem struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	OrderID    uuid.UUID       `db:"order_id" json:"order_id"`
	MenuItemID *uuid.UUID      `db:"menu_item_id" json:"menu_item_id"`
	Quantity   int             `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unit_price"`
}

// OrderItemDetail carries the live menu name and price alongside the
// snapshot. Both are null once the menu item has been deleted.
type OrderItemDetail struct {
	OrderItem
	MenuItemName  *string          `db:"menu_item_name" json:"menu_item_name"`
	MenuItemPrice *decimal.Decimal `db:"menu_item_price" json:"menu_item_price"`
}

type OrderDetail struct {
	Order
	CustomerUserUsername string            `db:"customer_user_username" json:"customer_user_username"`
	CustomerCompanyName  string            `db:"customer_company_name" json:"customer_company_name"`
	Items                []OrderItemDetail `db:"-" json:"items"`
}
