package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine is a snapshot of an item at order time. Title, price and image
// are captured so later catalog edits never change historical orders.
type CartLine struct {
	Item_id   string  `bson:"item_id" json:"item_id" validate:"required"`
	Title     string  `bson:"title" json:"title" validate:"required"`
	Price     float64 `bson:"price" json:"price" validate:"gte=0"`
	Quantity  int     `bson:"quantity" json:"quantity" validate:"required,gte=1"`
	Image_url *string `bson:"image_url" json:"image_url"`
}

// Order maps to the "order" collection. Subtotal, tax and total are derived
// server-side and never accepted from the caller. User_id is nil for guest
// checkout.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	User_id       *string            `bson:"user_id" json:"user_id"`
	Order_number  string             `bson:"order_number" json:"order_number"`
	Items         []CartLine         `bson:"items" json:"items" validate:"required,min=1,dive"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Tax           float64            `bson:"tax" json:"tax"`
	Total         float64            `bson:"total" json:"total"`
	Status        string             `bson:"status" json:"status"`
	Notes         *string            `bson:"notes" json:"notes"`
	Contact_email *string            `bson:"contact_email" json:"contact_email" validate:"omitempty,email"`
	Contact_phone *string            `bson:"contact_phone" json:"contact_phone"`
	Pickup_name   *string            `bson:"pickup_name" json:"pickup_name"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
}

const OrderCollection = "order"
