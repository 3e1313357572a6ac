package dbhelper

import (
	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/models"
	"github.com/shopspring/decimal"
)

// DailyCompanyOrderCounts lists every company with the summed item quantity
// of its orders for the given day. Companies without orders keep a NULL sum
// so the caller can tell "no orders" apart from an explicit zero.
func DailyCompanyOrderCounts(day models.Date) ([]models.CompanyOrderCount, error) {
	counts := make([]models.CompanyOrderCount, 0)
	err := database.Bento.Select(&counts, `
		SELECT c.name, SUM(oi.quantity) AS total_orders
		FROM customer_companies c
		LEFT JOIN customer_users cu ON cu.company_id = c.id
		LEFT JOIN orders o ON o.customer_user_id = cu.id AND o.order_date = $1
		LEFT JOIN order_items oi ON oi.order_id = o.id
		GROUP BY c.id, c.name
		ORDER BY c.name`, day)
	return counts, err
}

func DailyTotalSales(day models.Date) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := database.Bento.QueryRow(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE order_date = $1`, day).Scan(&total)
	return total, err
}

// CustomerConfirmedOrderForDate returns the customer's confirmed order for
// the day together with its summed item quantity. sql.ErrNoRows means the
// customer has not ordered.
func CustomerConfirmedOrderForDate(customerUserID uuid.UUID, day models.Date) (uuid.UUID, int64, error) {
	var orderID uuid.UUID
	var totalQuantity int64
	err := database.Bento.QueryRow(`
		SELECT o.id, COALESCE(SUM(oi.quantity), 0)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.customer_user_id = $1 AND o.order_date = $2 AND o.is_confirmed
		GROUP BY o.id
		ORDER BY o.ordered_at
		LIMIT 1`, customerUserID, day).Scan(&orderID, &totalQuantity)
	return orderID, totalQuantity, err
}

func CompanyConfirmedQuantityForDate(companyID uuid.UUID, day models.Date) (int64, error) {
	var total int64
	err := database.Bento.QueryRow(`
		SELECT COALESCE(SUM(oi.quantity), 0)
		FROM orders o
		JOIN customer_users cu ON cu.id = o.customer_user_id
		JOIN order_items oi ON oi.order_id = o.id
		WHERE cu.company_id = $1 AND o.order_date = $2 AND o.is_confirmed`, companyID, day).Scan(&total)
	return total, err
}
