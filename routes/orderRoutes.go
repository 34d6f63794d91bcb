package routes

import (
	"net/http"

	controller "github.com/django-nerd/foodcourt-backend/controllers"
	"github.com/gorilla/mux"
)

func OrderRoutes(router *mux.Router, c *controller.OrderController) {
	router.HandleFunc("/orders", c.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders", c.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}", c.GetOrderById).Methods(http.MethodGet)

	router.HandleFunc("/admin/orders/{order_id}/status", c.UpdateOrderStatus).Methods(http.MethodPut)
}
