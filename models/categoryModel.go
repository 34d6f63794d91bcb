package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category maps to the "category" collection. Items reference a category by
// identifier; deleting a category does not cascade to its items.
type Category struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description *string            `bson:"description" json:"description"`
	Image_url   *string            `bson:"image_url" json:"image_url"`
	Is_active   bool               `bson:"is_active" json:"is_active"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
	Updated_at  time.Time          `bson:"updated_at" json:"updated_at"`
}

const CategoryCollection = "category"
