package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/models"
)

const exportColumns = `
	c.name AS company_name, a.username AS employee_name,
	m.name AS menu_name, oi.quantity, m.price AS menu_price,
	o.order_date, o.ordered_at
	FROM order_items oi
	JOIN orders o ON o.id = oi.order_id
	JOIN customer_users cu ON cu.id = o.customer_user_id
	JOIN accounts a ON a.id = cu.account_id
	JOIN customer_companies c ON c.id = cu.company_id
	LEFT JOIN menus m ON m.id = oi.menu_item_id`

// DailyExportRows returns one row per order item for the given day, grouped
// by company then order time.
func DailyExportRows(day models.Date) ([]models.ExportRow, error) {
	rows := make([]models.ExportRow, 0)
	err := database.Bento.Select(&rows, `SELECT`+exportColumns+`
		WHERE o.order_date = $1
		ORDER BY c.name, o.ordered_at, oi.id`, day)
	return rows, err
}

// CompanyExportRows returns one row per order item across a company's
// confirmed orders in the given year; month narrows it to one calendar
// month, month 0 keeps the whole year.
func CompanyExportRows(companyID uuid.UUID, year, month int) ([]models.ExportRow, error) {
	rows := make([]models.ExportRow, 0)
	err := database.Bento.Select(&rows, `SELECT`+exportColumns+`
		WHERE cu.company_id = $1
		  AND o.is_confirmed
		  AND EXTRACT(YEAR FROM o.order_date) = $2
		  AND ($3 = 0 OR EXTRACT(MONTH FROM o.order_date) = $3)
		ORDER BY a.username, o.order_date, o.ordered_at, oi.id`, companyID, year, month)
	return rows, err
}
