package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/django-nerd/foodcourt-backend/models"
	"github.com/django-nerd/foodcourt-backend/pricing"
	"github.com/django-nerd/foodcourt-backend/store"
)

type OrderController struct {
	Store *store.Store
}

func NewOrderController(s *store.Store) *OrderController {
	return &OrderController{Store: s}
}

type CreateOrderRequest struct {
	UserID       *string           `json:"user_id"`
	Items        []models.CartLine `json:"items" validate:"dive"`
	Notes        *string           `json:"notes"`
	ContactEmail *string           `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string           `json:"contact_phone"`
	PickupName   *string           `json:"pickup_name"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateOrder validates the cart, derives the money fields server-side and
// persists the order with a generated order number and pending status.
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var payload CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(payload); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	totals, err := pricing.ComputeTotals(payload.Items)
	if err != nil {
		// Only ErrEmptyCart can come back here; nothing was persisted.
		http.Error(w, `{"success": false, "message": "Cart is empty"}`, http.StatusBadRequest)
		return
	}

	order := models.Order{
		User_id:       payload.UserID,
		Order_number:  pricing.GenerateOrderNumber(),
		Items:         payload.Items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		Status:        pricing.StatusPending,
		Notes:         payload.Notes,
		Contact_email: payload.ContactEmail,
		Contact_phone: payload.ContactPhone,
		Pickup_name:   payload.PickupName,
	}

	orderId, err := c.Store.Create(ctx, models.OrderCollection, order)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order created successfully",
		"data": map[string]interface{}{
			"_id":          orderId,
			"order_number": order.Order_number,
			"subtotal":     order.Subtotal,
			"tax":          order.Tax,
			"total":        order.Total,
			"status":       order.Status,
		},
	})
}

func (c *OrderController) GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	order, err := c.Store.FindByID(ctx, models.OrderCollection, orderId)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if order == nil {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// GetOrders lists orders newest first, optionally filtered by user_id.
func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{}
	if userId := r.URL.Query().Get("user_id"); userId != "" {
		filter["user_id"] = userId
	}

	orders, err := c.Store.Find(ctx, models.OrderCollection, filter,
		&store.FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}

// UpdateOrderStatus sets the order status after membership validation.
// Any current status may be replaced by any valid status; transitions are
// deliberately not restricted.
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var payload UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !pricing.IsValidStatus(payload.Status) {
		http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
		return
	}

	ok, err := c.Store.Update(ctx, models.OrderCollection, orderId, bson.M{"status": payload.Status})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !ok {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order status updated successfully",
	})
}
