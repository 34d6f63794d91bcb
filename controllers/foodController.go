package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/django-nerd/foodcourt-backend/models"
	"github.com/django-nerd/foodcourt-backend/store"
)

var validate = validator.New()

type FoodController struct {
	Store *store.Store
}

func NewFoodController(s *store.Store) *FoodController {
	return &FoodController{Store: s}
}

type FoodItemRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=100"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	CategoryID  string   `json:"category_id" validate:"required"`
	ImageURL    *string  `json:"image_url"`
	Tags        []string `json:"tags"`
	IsAvailable *bool    `json:"is_available"`
}

// GetItems lists available items sorted by title. Optional query
// parameters: q (case-insensitive substring over title, description and
// tags), category, min_price, max_price.
func (c *FoodController) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{"is_available": true}

	if category := r.URL.Query().Get("category"); category != "" {
		filter["category_id"] = category
	}

	if q := r.URL.Query().Get("q"); q != "" {
		regex := bson.M{"$regex": q, "$options": "i"}
		filter["$or"] = []bson.M{
			{"title": regex},
			{"description": regex},
			{"tags": bson.M{"$elemMatch": regex}},
		}
	}

	priceFilter := bson.M{}
	if minPrice, err := strconv.ParseFloat(r.URL.Query().Get("min_price"), 64); err == nil {
		priceFilter["$gte"] = minPrice
	}
	if maxPrice, err := strconv.ParseFloat(r.URL.Query().Get("max_price"), 64); err == nil {
		priceFilter["$lte"] = maxPrice
	}
	if len(priceFilter) > 0 {
		filter["price"] = priceFilter
	}

	items, err := c.Store.Find(ctx, models.FoodItemCollection, filter,
		&store.FindOptions{Sort: bson.D{{Key: "title", Value: 1}}})
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Food items retrieved successfully",
		"data":    items,
	})
}

func (c *FoodController) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	item, err := c.Store.FindByID(ctx, models.FoodItemCollection, itemId)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if item == nil {
		http.Error(w, `{"success": false, "message": "Food item not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Food item retrieved successfully",
		"data":    item,
	})
}

func (c *FoodController) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var payload FoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(payload); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	isAvailable := true
	if payload.IsAvailable != nil {
		isAvailable = *payload.IsAvailable
	}
	tags := payload.Tags
	if tags == nil {
		tags = []string{}
	}

	item := models.FoodItem{
		Title:        payload.Title,
		Description:  payload.Description,
		Price:        *payload.Price,
		Category_id:  payload.CategoryID,
		Image_url:    payload.ImageURL,
		Tags:         tags,
		Is_available: isAvailable,
		Rating:       0,
	}

	itemId, err := c.Store.Create(ctx, models.FoodItemCollection, item)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Food item created successfully",
		"data":    map[string]interface{}{"_id": itemId},
	})
}

func (c *FoodController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var payload FoodItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(payload); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.M{
		"title":       payload.Title,
		"description": payload.Description,
		"price":       *payload.Price,
		"category_id": payload.CategoryID,
		"image_url":   payload.ImageURL,
	}
	if payload.Tags != nil {
		updateObj["tags"] = payload.Tags
	}
	if payload.IsAvailable != nil {
		updateObj["is_available"] = *payload.IsAvailable
	}

	ok, err := c.Store.Update(ctx, models.FoodItemCollection, itemId, updateObj)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !ok {
		http.Error(w, `{"success": false, "message": "Food item not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Food item updated successfully",
	})
}

func (c *FoodController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	ok, err := c.Store.Delete(ctx, models.FoodItemCollection, itemId)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if !ok {
		http.Error(w, `{"success": false, "message": "Food item not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Food item deleted successfully",
	})
}
