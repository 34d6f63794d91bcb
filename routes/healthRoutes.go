package routes

import (
	"net/http"

	controller "github.com/django-nerd/foodcourt-backend/controllers"
	"github.com/gorilla/mux"
)

func HealthRoutes(router *mux.Router, c *controller.HealthController) {
	router.HandleFunc("/", c.Root).Methods(http.MethodGet)
	router.HandleFunc("/test", c.TestDatabase).Methods(http.MethodGet)
	router.HandleFunc("/schema", c.Schema).Methods(http.MethodGet)
}
