package routes

import (
	"net/http"

	controller "github.com/django-nerd/foodcourt-backend/controllers"
	"github.com/gorilla/mux"
)

func UserRoutes(router *mux.Router, c *controller.UserController) {
	router.HandleFunc("/auth/signup", c.SignUp).Methods(http.MethodPost)
	router.HandleFunc("/auth/login", c.Login).Methods(http.MethodPost)
}
