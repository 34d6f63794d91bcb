package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	controller "github.com/django-nerd/foodcourt-backend/controllers"
	"github.com/django-nerd/foodcourt-backend/store"
)

func unavailableStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("", "")
	require.NoError(t, err)
	return s
}

func TestCreateOrderEmptyCart(t *testing.T) {
	c := controller.NewOrderController(unavailableStore(t))

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items": []}`))
	rec := httptest.NewRecorder()

	c.CreateOrder(rec, req)

	// Rejected before any store access, so even a degraded store never
	// sees an empty cart.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart is empty")
}

func TestCreateOrderComputesTotals(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("totals derived server-side", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c := controller.NewOrderController(store.NewWithDatabase(mt.DB))

		body := `{
			"items": [
				{"item_id": "a", "title": "Burger", "price": 2.50, "quantity": 3},
				{"item_id": "b", "title": "Fries", "price": 1.33, "quantity": 2}
			],
			"subtotal": 1.00, "tax": 0.00, "total": 1.00
		}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		rec := httptest.NewRecorder()

		c.CreateOrder(rec, req)

		require.Equal(mt.T, http.StatusCreated, rec.Code)

		var response struct {
			Success bool `json:"success"`
			Data    struct {
				ID          string  `json:"_id"`
				OrderNumber string  `json:"order_number"`
				Subtotal    float64 `json:"subtotal"`
				Tax         float64 `json:"tax"`
				Total       float64 `json:"total"`
				Status      string  `json:"status"`
			} `json:"data"`
		}
		require.NoError(mt.T, json.Unmarshal(rec.Body.Bytes(), &response))

		assert.True(mt.T, response.Success)
		// Client-supplied money fields are ignored and recomputed.
		assert.InDelta(mt.T, 10.16, response.Data.Subtotal, 1e-9)
		assert.InDelta(mt.T, 0.81, response.Data.Tax, 1e-9)
		assert.InDelta(mt.T, 10.97, response.Data.Total, 1e-9)
		assert.Equal(mt.T, "pending", response.Data.Status)
		assert.True(mt.T, strings.HasPrefix(response.Data.OrderNumber, "ORD-"))

		_, err := store.DecodeID(response.Data.ID)
		assert.NoError(mt.T, err)
	})
}

func TestCreateOrderQuantityValidation(t *testing.T) {
	c := controller.NewOrderController(unavailableStore(t))

	body := `{"items": [{"item_id": "a", "title": "Burger", "price": 2.50, "quantity": 0}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()

	c.CreateOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("accepts every enumerated status", func(mt *mtest.T) {
		c := controller.NewOrderController(store.NewWithDatabase(mt.DB))

		for _, status := range []string{"pending", "preparing", "ready", "completed", "cancelled"} {
			mt.AddMockResponses(mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			))

			req := httptest.NewRequest(http.MethodPut, "/admin/orders/x/status",
				strings.NewReader(`{"status": "`+status+`"}`))
			req = mux.SetURLVars(req, map[string]string{"order_id": "507f1f77bcf86cd799439011"})
			rec := httptest.NewRecorder()

			c.UpdateOrderStatus(rec, req)
			assert.Equal(mt.T, http.StatusOK, rec.Code, status)
		}
	})

	mt.Run("unknown order yields 404", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		c := controller.NewOrderController(store.NewWithDatabase(mt.DB))

		req := httptest.NewRequest(http.MethodPut, "/admin/orders/x/status",
			strings.NewReader(`{"status": "ready"}`))
		req = mux.SetURLVars(req, map[string]string{"order_id": "507f1f77bcf86cd799439011"})
		rec := httptest.NewRecorder()

		c.UpdateOrderStatus(rec, req)
		assert.Equal(mt.T, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	// Validation happens before the store is touched.
	c := controller.NewOrderController(unavailableStore(t))

	for _, status := range []string{"shipped", "Pending", ""} {
		req := httptest.NewRequest(http.MethodPut, "/admin/orders/x/status",
			strings.NewReader(`{"status": "`+status+`"}`))
		req = mux.SetURLVars(req, map[string]string{"order_id": "507f1f77bcf86cd799439011"})
		rec := httptest.NewRecorder()

		c.UpdateOrderStatus(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, status)
	}
}

func TestGetOrdersStoreUnavailable(t *testing.T) {
	c := controller.NewOrderController(unavailableStore(t))

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()

	c.GetOrders(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "Database not available")
}
