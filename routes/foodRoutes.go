package routes

import (
	"net/http"

	controller "github.com/django-nerd/foodcourt-backend/controllers"
	"github.com/gorilla/mux"
)

func FoodRoutes(router *mux.Router, c *controller.FoodController) {
	router.HandleFunc("/items", c.GetItems).Methods(http.MethodGet)
	router.HandleFunc("/items/{item_id}", c.GetItem).Methods(http.MethodGet)

	router.HandleFunc("/admin/items", c.CreateItem).Methods(http.MethodPost)
	router.HandleFunc("/admin/items/{item_id}", c.UpdateItem).Methods(http.MethodPut)
	router.HandleFunc("/admin/items/{item_id}", c.DeleteItem).Methods(http.MethodDelete)
}
