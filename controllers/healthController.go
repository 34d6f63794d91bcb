package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/django-nerd/foodcourt-backend/config"
	"github.com/django-nerd/foodcourt-backend/models"
	"github.com/django-nerd/foodcourt-backend/store"
)

type HealthController struct {
	Store  *store.Store
	Config config.AppConfig
}

func NewHealthController(s *store.Store, cfg config.AppConfig) *HealthController {
	return &HealthController{Store: s, Config: cfg}
}

func (c *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Food Court Ordering API running",
	})
}

// TestDatabase reports backend/database health, which settings are present
// and the collections visible in the database.
func (c *HealthController) TestDatabase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not available",
		"connection_status": "not connected",
		"database_url":      c.Config.DatabaseURL != "",
		"database_name":     c.Config.DatabaseName != "",
		"collections":       []string{},
	}

	if c.Store.Available() {
		response["database"] = "available"
		response["connection_status"] = "connected"
		if names, err := c.Store.CollectionNames(ctx); err == nil {
			response["collections"] = names
		} else {
			response["database"] = "error: " + err.Error()
			response["connection_status"] = "not connected"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Schema lists the logical collections this backend persists.
func (c *HealthController) Schema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"collections": []string{
			models.UserCollection,
			models.CategoryCollection,
			models.FoodItemCollection,
			models.OrderCollection,
		},
	})
}
