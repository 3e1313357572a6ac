package dbhelper

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/models"
	"github.com/shopspring/decimal"
)

const orderDetailColumns = `
	o.id, o.customer_user_id, o.order_date, o.total_amount, o.is_confirmed, o.ordered_at,
	a.username AS customer_user_username, c.name AS customer_company_name
	FROM orders o
	JOIN customer_users cu ON cu.id = o.customer_user_id
	JOIN accounts a ON a.id = cu.account_id
	JOIN customer_companies c ON c.id = cu.company_id`

const orderItemDetailColumns = `
	oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.unit_price,
	m.name AS menu_item_name, m.price AS menu_item_price
	FROM order_items oi
	LEFT JOIN menus m ON m.id = oi.menu_item_id`

func GetMenuPriceTx(tx *sql.Tx, menuID uuid.UUID) (decimal.Decimal, error) {
	var price decimal.Decimal
	err := tx.QueryRow(`SELECT price FROM menus WHERE id = $1`, menuID).Scan(&price)
	return price, err
}

func CreateOrderTx(tx *sql.Tx, order *models.Order) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(`
		INSERT INTO orders (customer_user_id, total_amount, is_confirmed)
		VALUES ($1, $2, $3)
		RETURNING id`,
		order.CustomerUserID, order.TotalAmount, order.IsConfirmed).Scan(&id)
	return id, err
}

func CreateOrderItemTx(tx *sql.Tx, item *models.OrderItem) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(`
		INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice).Scan(&id)
	return id, err
}

// UpdateOrderTx leaves order_date untouched; it is fixed at creation.
func UpdateOrderTx(tx *sql.Tx, id uuid.UUID, order *models.Order) error {
	result, err := tx.Exec(`
		UPDATE orders
		SET customer_user_id = $1, total_amount = $2, is_confirmed = $3
		WHERE id = $4`,
		order.CustomerUserID, order.TotalAmount, order.IsConfirmed, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func DeleteOrderItemsTx(tx *sql.Tx, orderID uuid.UUID) error {
	_, err := tx.Exec(`DELETE FROM order_items WHERE order_id = $1`, orderID)
	return err
}

func GetOrderByID(id uuid.UUID) (*models.OrderDetail, error) {
	var order models.OrderDetail
	err := database.Bento.Get(&order, `SELECT`+orderDetailColumns+` WHERE o.id = $1`, id)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItemDetail, 0)
	err = database.Bento.Select(&items, `SELECT`+orderItemDetailColumns+` WHERE oi.order_id = $1 ORDER BY oi.id`, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

// ListOrders returns every order with its owner, company and items resolved,
// newest order date first. Items for all orders are fetched in one query to
// avoid going back to the database per order.
func ListOrders() ([]models.OrderDetail, error) {
	orders := make([]models.OrderDetail, 0)
	err := database.Bento.Select(&orders, `SELECT`+orderDetailColumns+` ORDER BY o.order_date DESC, o.id DESC`)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items := make([]models.OrderItemDetail, 0)
	err = database.Bento.Select(&items, `SELECT`+orderItemDetailColumns+` ORDER BY oi.id`)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[uuid.UUID][]models.OrderItemDetail, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], item)
	}
	for i := range orders {
		orders[i].Items = byOrder[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = make([]models.OrderItemDetail, 0)
		}
	}
	return orders, nil
}

func UpdateOrderFields(id uuid.UUID, fields map[string]interface{}) error {
	return updateFields("orders", id, fields)
}

func DeleteOrder(id uuid.UUID) error {
	return deleteByID("orders", id)
}

func OrderExists(id uuid.UUID) (bool, error) {
	var exists bool
	err := database.Bento.QueryRow(`
		SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func CreateOrderItem(item *models.OrderItem) (uuid.UUID, error) {
	var id uuid.UUID
	err := database.Bento.QueryRow(`
		INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice).Scan(&id)
	return id, err
}

func GetOrderItemByID(id uuid.UUID) (*models.OrderItemDetail, error) {
	var item models.OrderItemDetail
	err := database.Bento.Get(&item, `SELECT`+orderItemDetailColumns+` WHERE oi.id = $1`, id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func ListOrderItems() ([]models.OrderItemDetail, error) {
	items := make([]models.OrderItemDetail, 0)
	err := database.Bento.Select(&items, `SELECT`+orderItemDetailColumns+` ORDER BY oi.id`)
	return items, err
}

func UpdateOrderItem(id uuid.UUID, item *models.OrderItem) error {
	result, err := database.Bento.Exec(`
		UPDATE order_items
		SET order_id = $1, menu_item_id = $2, quantity = $3, unit_price = $4
		WHERE id = $5`,
		item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(result)
}

func UpdateOrderItemFields(id uuid.UUID, fields map[string]interface{}) error {
	return updateFields("order_items", id, fields)
}

func DeleteOrderItem(id uuid.UUID) error {
	return deleteByID("order_items", id)
}
