package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/django-nerd/foodcourt-backend/config"
	controller "github.com/django-nerd/foodcourt-backend/controllers"
	"github.com/django-nerd/foodcourt-backend/logger"
	"github.com/django-nerd/foodcourt-backend/metrics"
	middleware "github.com/django-nerd/foodcourt-backend/middlewares"
	"github.com/django-nerd/foodcourt-backend/routes"
	"github.com/django-nerd/foodcourt-backend/store"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.Env)

	// Missing database configuration degrades the store instead of
	// crashing: the health endpoints keep answering and report the state.
	st, err := store.Open(cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Error("database connection failed, store degraded", "error", err)
	} else if !st.Available() {
		log.Warn("DATABASE_URL or DATABASE_NAME not set, store degraded")
	} else {
		log.Info("connected to database", "database", cfg.DatabaseName)
	}

	router := mux.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestLogger(log))
	router.Use(metrics.Middleware)

	routes.HealthRoutes(router, controller.NewHealthController(st, cfg))
	routes.UserRoutes(router, controller.NewUserController(st))
	routes.CategoryRoutes(router, controller.NewCategoryController(st))
	routes.FoodRoutes(router, controller.NewFoodController(st))
	routes.OrderRoutes(router, controller.NewOrderController(st))

	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	log.Info("server running", "port", cfg.Port, "env", cfg.Env)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Error("server stopped", "error", err)
	}
}
