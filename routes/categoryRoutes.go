package routes

import (
	"net/http"

	controller "github.com/django-nerd/foodcourt-backend/controllers"
	"github.com/gorilla/mux"
)

func CategoryRoutes(router *mux.Router, c *controller.CategoryController) {
	router.HandleFunc("/categories", c.GetCategories).Methods(http.MethodGet)

	router.HandleFunc("/admin/categories", c.CreateCategory).Methods(http.MethodPost)
	router.HandleFunc("/admin/categories/{category_id}", c.UpdateCategory).Methods(http.MethodPut)
	router.HandleFunc("/admin/categories/{category_id}", c.DeleteCategory).Methods(http.MethodDelete)
}
