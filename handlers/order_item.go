package handlers

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"
	"github.com/ray-remotestate/bento/database/dbhelper"
	"github.com/ray-remotestate/bento/models"
	"github.com/ray-remotestate/bento/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func ListOrderItems(w http.ResponseWriter, r *http.Request) {
	items, err := dbhelper.ListOrderItems()
	if err != nil {
		logrus.WithError(err).Error("failed to list order items")
		utils.RespondError(w, http.StatusInternalServerError, "failed to list order items")
		return
	}
	utils.RespondJSON(w, http.StatusOK, items)
}

func GetOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order item id")
		return
	}

	item, err := dbhelper.GetOrderItemByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order item not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch order item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order item")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func CreateOrderItem(w http.ResponseWriter, r *http.Request) {
	type request struct {
		OrderID    uuid.UUID        `json:"order_id"`
		MenuItemID uuid.UUID        `json:"menu_item_id"`
		Quantity   int              `json:"quantity"`
		UnitPrice  *decimal.Decimal `json:"unit_price"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrderID == uuid.Nil || req.MenuItemID == uuid.Nil {
		utils.RespondError(w, http.StatusBadRequest, "order_id and menu_item_id are required")
		return
	}
	if req.Quantity <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	orderExists, err := dbhelper.OrderExists(req.OrderID)
	if err != nil {
		logrus.WithError(err).Error("failed to check order")
		utils.RespondError(w, http.StatusInternalServerError, "failed to check order")
		return
	}
	if !orderExists {
		utils.RespondError(w, http.StatusBadRequest, "order does not exist")
		return
	}

	// unit_price defaults to the live menu price at order time
	unitPrice := decimal.Zero
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	} else {
		menu, err := dbhelper.GetMenuByID(req.MenuItemID)
		if err == sql.ErrNoRows {
			utils.RespondError(w, http.StatusBadRequest, "menu item does not exist")
			return
		} else if err != nil {
			logrus.WithError(err).Error("failed to fetch menu price")
			utils.RespondError(w, http.StatusInternalServerError, "failed to fetch menu price")
			return
		}
		unitPrice = menu.Price
	}

	menuItemID := req.MenuItemID
	item := models.OrderItem{
		OrderID:    req.OrderID,
		MenuItemID: &menuItemID,
		Quantity:   req.Quantity,
		UnitPrice:  unitPrice,
	}
	id, err := dbhelper.CreateOrderItem(&item)
	if err != nil {
		logrus.WithError(err).Error("failed to create order item")
		utils.RespondError(w, http.StatusBadRequest, "failed to create order item")
		return
	}
	item.ID = id
	utils.RespondJSON(w, http.StatusCreated, item)
}

func UpdateOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order item id")
		return
	}

	type request struct {
		OrderID    uuid.UUID       `json:"order_id"`
		MenuItemID *uuid.UUID      `json:"menu_item_id"`
		Quantity   int             `json:"quantity"`
		UnitPrice  decimal.Decimal `json:"unit_price"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.OrderID == uuid.Nil {
		utils.RespondError(w, http.StatusBadRequest, "order_id is required")
		return
	}
	if req.Quantity <= 0 {
		utils.RespondError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	item := models.OrderItem{
		OrderID:    req.OrderID,
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
		UnitPrice:  req.UnitPrice,
	}
	err = dbhelper.UpdateOrderItem(id, &item)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order item not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to update order item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to update order item")
		return
	}
	item.ID = id
	utils.RespondJSON(w, http.StatusOK, item)
}

func PatchOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order item id")
		return
	}

	type request struct {
		OrderID    *uuid.UUID       `json:"order_id"`
		MenuItemID *uuid.UUID       `json:"menu_item_id"`
		Quantity   *int             `json:"quantity"`
		UnitPrice  *decimal.Decimal `json:"unit_price"`
	}

	var req request
	if err := utils.ParseBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := make(map[string]interface{})
	if req.OrderID != nil {
		fields["order_id"] = *req.OrderID
	}
	if req.MenuItemID != nil {
		fields["menu_item_id"] = *req.MenuItemID
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			utils.RespondError(w, http.StatusBadRequest, "quantity must be positive")
			return
		}
		fields["quantity"] = *req.Quantity
	}
	if req.UnitPrice != nil {
		fields["unit_price"] = *req.UnitPrice
	}

	err = dbhelper.UpdateOrderItemFields(id, fields)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order item not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to patch order item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to patch order item")
		return
	}

	item, err := dbhelper.GetOrderItemByID(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order item not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to fetch order item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch order item")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}

func DeleteOrderItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseIDParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid order item id")
		return
	}

	err = dbhelper.DeleteOrderItem(id)
	if err == sql.ErrNoRows {
		utils.RespondError(w, http.StatusNotFound, "order item not found")
		return
	} else if err != nil {
		logrus.WithError(err).Error("failed to delete order item")
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete order item")
		return
	}
	utils.RespondJSON(w, http.StatusNoContent, nil)
}
