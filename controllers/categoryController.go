package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/django-nerd/foodcourt-backend/models"
	"github.com/django-nerd/foodcourt-backend/store"
)

type CategoryController struct {
	Store *store.Store
}

func NewCategoryController(s *store.Store) *CategoryController {
	return &CategoryController{Store: s}
}

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// GetCategories lists active categories sorted by name.
func (c *CategoryController) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	categories, err := c.Store.Find(ctx, models.CategoryCollection,
		bson.M{"is_active": true},
		&store.FindOptions{Sort: bson.D{{Key: "name", Value: 1}}})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

func (c *CategoryController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var payload CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(payload); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	category := models.Category{
		Name:        payload.Name,
		Description: payload.Description,
		Image_url:   payload.ImageURL,
		Is_active:   true,
	}

	categoryId, err := c.Store.Create(ctx, models.CategoryCollection, category)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category created successfully",
		"data":    map[string]interface{}{"_id": categoryId},
	})
}

func (c *CategoryController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	var payload CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(payload); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	ok, err := c.Store.Update(ctx, models.CategoryCollection, categoryId, bson.M{
		"name":        payload.Name,
		"description": payload.Description,
		"image_url":   payload.ImageURL,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !ok {
		http.Error(w, `{"success": false, "message": "Category not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category updated successfully",
	})
}

func (c *CategoryController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	// No cascade: items keep their category_id reference after deletion.
	ok, err := c.Store.Delete(ctx, models.CategoryCollection, categoryId)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !ok {
		http.Error(w, `{"success": false, "message": "Category not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Category deleted successfully",
	})
}
