package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyOrderCount is one row of the daily summary. TotalOrders is null
// when the company has no orders for the day.
type CompanyOrderCount struct {
	Name        string `db:"name" json:"name"`
	TotalOrders *int64 `db:"total_orders" json:"total_orders"`
}

type DailySummary struct {
	Date            Date                `json:"date"`
	CompanyOrders   []CompanyOrderCount `json:"company_orders"`
	TotalSales      decimal.Decimal     `json:"total_sales"`
	OrderCutoffTime string              `json:"order_cutoff_time"`
}

type CustomerOrderStatus struct {
	HasOrdered    bool       `json:"has_ordered"`
	TotalQuantity int64      `json:"total_quantity"`
	OrderID       *uuid.UUID `json:"order_id,omitempty"`
}

type CompanyOrderStatus struct {
	TotalCompanyOrders int64 `json:"total_company_orders"`
}

// ExportRow is one CSV line worth of data, one per order item. MenuName and
// MenuPrice are null when the referenced menu item has been deleted.
type ExportRow struct {
	CompanyName  string           `db:"company_name"`
	EmployeeName string           `db:"employee_name"`
	MenuName     *string          `db:"menu_name"`
	Quantity     int              `db:"quantity"`
	MenuPrice    *decimal.Decimal `db:"menu_price"`
	OrderDate    Date             `db:"order_date"`
	OrderedAt    time.Time        `db:"ordered_at"`
}
