package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodItem maps to the "fooditem" collection.
type FoodItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title        string             `bson:"title" json:"title" validate:"required,min=2,max=100"`
	Description  *string            `bson:"description" json:"description"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0"`
	Category_id  string             `bson:"category_id" json:"category_id" validate:"required"`
	Image_url    *string            `bson:"image_url" json:"image_url"`
	Tags         []string           `bson:"tags" json:"tags"`
	Is_available bool               `bson:"is_available" json:"is_available"`
	Rating       float64            `bson:"rating" json:"rating"`
	Created_at   time.Time          `bson:"created_at" json:"created_at"`
	Updated_at   time.Time          `bson:"updated_at" json:"updated_at"`
}

const FoodItemCollection = "fooditem"
