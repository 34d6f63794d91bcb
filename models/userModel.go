package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User maps to the "user" collection. Email uniqueness is enforced by a
// pre-check query before signup, not by a database constraint.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	Password_hash string             `bson:"password_hash" json:"-"`
	Is_admin      bool               `bson:"is_admin" json:"is_admin"`
	Avatar_url    *string            `bson:"avatar_url" json:"avatar_url"`
	Is_active     bool               `bson:"is_active" json:"is_active"`
	Created_at    time.Time          `bson:"created_at" json:"created_at"`
	Updated_at    time.Time          `bson:"updated_at" json:"updated_at"`
}

const UserCollection = "user"
