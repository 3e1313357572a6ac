package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database"
	"github.com/ray-remotestate/bento/database/dbhelper"
	"github.com/ray-remotestate/bento/models"
	"github.com/ray-remotestate/bento/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type orderItemInput struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
}

// snapshotItems resolves the live menu price for every requested item and
// returns the item rows to insert along with the order total.
func snapshotItems(tx *sql.Tx, inputs []orderItemInput) ([]models.OrderItem, decimal.Decimal, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	total := decimal.Zero
	for _, input := range inputs {
		price, err := dbhelper.GetMenuPriceTx(tx, input.MenuItemID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		menuItemID := input.MenuItemID
		items = append(items, models.OrderItem{
			MenuItemID: &menuItemID,
			Quantity:   input.Quantity,
			UnitPrice:  price,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(input.Quantity))))
	}
	return items, total, nil
}

func validateItemInputs(inputs []orderItemInput) string {
	for _, input := range inputs {
		if input.MenuItemID == uuid.Nil {
			return "menu_item_id is required for every item"
		}
		if input.Quantity <= 0 {
			return "item quantity must be positive"
		}
	}
	return ""
}

func ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := dbhelper.ListOrders()
	if err != nil {
		logrus.WithError(err).Error("failed to list orders")
		utils.RespondError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	utils.RespondJSON(w, http.StatusOK, orders)
}

func GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := dbhelper.GetOrderByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order")
		return
	}
	utils.RespondJSON(w, http.StatusOK, order)
}

func CreateOrder(w http.ResponseWriter, r *http.Request) {
	type request struct {
		CustomerUserID uuid.UUID        `json:"customer_user_id"`
		IsConfirmed    bool             `json:"is_confirmed"`
		TotalAmount    *decimal.Decimal `json:"total_amount"`
		Items          []orderItemInput `json:"items"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerUserID == uuid.Nil {
		utils.RespondError(w, http.StatusBadRequest, "customer_user_id is required")
		return
	}
	if msg := validateItemInputs(req.Items); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	exists, err := dbhelper.CustomerUserExists(req.CustomerUserID)
	if err != nil {
		logrus.WithError(err).Error("failed to check customer user")
		utils.RespondError(w, http.StatusInternalServerError, "failed to check customer user")
		return
	}
	if !exists {
		utils.RespondError(w, http.StatusBadRequest, "customer user does not exist")
		return
	}

	var orderID uuid.UUID
	var badMenuItem bool
	txErr := database.Tx(func(tx *sql.Tx) error {
		items, total, err := snapshotItems(tx, req.Items)
		if err == sql.ErrNoRows {
			badMenuItem = true
			return err
		} else if err != nil {
			return err
		}
		if len(req.Items) == 0 && req.TotalAmount != nil {
			total = *req.TotalAmount
		}

		order := models.Order{
			CustomerUserID: req.CustomerUserID,
			TotalAmount:    total,
			IsConfirmed:    req.IsConfirmed,
		}
		orderID, err = dbhelper.CreateOrderTx(tx, &order)
		if err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = orderID
			if _, err := dbhelper.CreateOrderItemTx(tx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if badMenuItem {
			utils.RespondError(w, http.StatusBadRequest, "menu item does not exist")
			return
		}
		logrus.WithError(txErr).Error("failed to create order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	order, err := dbhelper.GetOrderByID(orderID)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch created order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch created order")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, order)
}

// UpdateOrder replaces the order head and, when items are supplied, its item
// rows in a single transaction. order_date never changes.
func UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	type request struct {
		CustomerUserID uuid.UUID        `json:"customer_user_id"`
		IsConfirmed    bool             `json:"is_confirmed"`
		TotalAmount    *decimal.Decimal `json:"total_amount"`
		Items          []orderItemInput `json:"items"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CustomerUserID == uuid.Nil {
		utils.RespondError(w, http.StatusBadRequest, "customer_user_id is required")
		return
	}
	if msg := validateItemInputs(req.Items); msg != "" {
		utils.RespondError(w, http.StatusBadRequest, msg)
		return
	}

	var notFound, badMenuItem bool
	txErr := database.Tx(func(tx *sql.Tx) error {
		total := decimal.Zero
		if req.TotalAmount != nil {
			total = *req.TotalAmount
		}

		var items []models.OrderItem
		if req.Items != nil {
			var err error
			items, total, err = snapshotItems(tx, req.Items)
			if err == sql.ErrNoRows {
				badMenuItem = true
				return err
			} else if err != nil {
				return err
			}
		}

		order := models.Order{
			CustomerUserID: req.CustomerUserID,
			TotalAmount:    total,
			IsConfirmed:    req.IsConfirmed,
		}
		err := dbhelper.UpdateOrderTx(tx, id, &order)
		if err == sql.ErrNoRows {
			notFound = true
			return err
		} else if err != nil {
			return err
		}

		if req.Items == nil {
			return nil
		}
		if err := dbhelper.DeleteOrderItemsTx(tx, id); err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = id
			if _, err := dbhelper.CreateOrderItemTx(tx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if notFound {
			utils.RespondError(w, http.StatusNotFound, "order not found")
			return
		}
		if badMenuItem {
			utils.RespondError(w, http.StatusBadRequest, "menu item does not exist")
			return
		}
		logrus.WithError(txErr).Error("failed to update order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update order")
		return
	}

	order, err := dbhelper.GetOrderByID(id)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch updated order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch updated order")
		return
	}
	utils.RespondJSON(w, http.StatusOK, order)
}

func PatchOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	type request struct {
		CustomerUserID *uuid.UUID       `json:"customer_user_id"`
		IsConfirmed    *bool            `json:"is_confirmed"`
		TotalAmount    *decimal.Decimal `json:"total_amount"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := make(map[string]interface{})
	if req.CustomerUserID != nil {
		fields["customer_user_id"] = *req.CustomerUserID
	}
	if req.IsConfirmed != nil {
		fields["is_confirmed"] = *req.IsConfirmed
	}
	if req.TotalAmount != nil {
		fields["total_amount"] = *req.TotalAmount
	}

	err = dbhelper.UpdateOrderFields(id, fields)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to patch order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to patch order")
		return
	}

	order, err := dbhelper.GetOrderByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order")
		return
	}
	utils.RespondJSON(w, http.StatusOK, order)
}

func DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	err = dbhelper.DeleteOrder(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to delete order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete order")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
