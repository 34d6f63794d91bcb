package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/django-nerd/foodcourt-backend/models"
	"github.com/django-nerd/foodcourt-backend/store"
)

type UserController struct {
	Store *store.Store
}

func NewUserController(s *store.Store) *UserController {
	return &UserController{Store: s}
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *UserController) SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var payload SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(payload); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	// Pre-check, not a database constraint: two concurrent signups with the
	// same email can both pass this query. Accepted limitation.
	existing, err := c.Store.Find(ctx, models.UserCollection, bson.M{"email": payload.Email}, &store.FindOptions{Limit: 1})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if len(existing) > 0 {
		http.Error(w, `{"success": false, "message": "Email already registered"}`, http.StatusConflict)
		return
	}

	user := models.User{
		Name:          payload.Name,
		Email:         payload.Email,
		Password_hash: HashPassword(payload.Password),
		Is_admin:      false,
		Is_active:     true,
	}

	userId, err := c.Store.Create(ctx, models.UserCollection, user)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	responseUser := struct {
		UserID  string `json:"user_id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		IsAdmin bool   `json:"is_admin"`
	}{
		UserID:  userId,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.Is_admin,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "User created successfully",
		"data":    responseUser,
	})
}

func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var payload LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(payload); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	users, err := c.Store.Find(ctx, models.UserCollection, bson.M{"email": payload.Email}, &store.FindOptions{Limit: 1})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if len(users) == 0 {
		http.Error(w, `{"success": false, "message": "Invalid credentials"}`, http.StatusUnauthorized)
		return
	}

	foundUser := users[0]
	passwordHash, _ := foundUser["password_hash"].(string)

	passwordIsValid, msg := VerifyPassword(payload.Password, passwordHash)
	if !passwordIsValid {
		http.Error(w, `{"success": false, "message": "`+msg+`"}`, http.StatusUnauthorized)
		return
	}

	userId, _ := foundUser["_id"].(string)
	isAdmin, _ := foundUser["is_admin"].(bool)

	responseUser := struct {
		UserID  string      `json:"user_id"`
		Name    interface{} `json:"name"`
		Email   interface{} `json:"email"`
		IsAdmin bool        `json:"is_admin"`
	}{
		UserID:  userId,
		Name:    foundUser["name"],
		Email:   foundUser["email"],
		IsAdmin: isAdmin,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"data":    responseUser,
	})
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedHash string) (bool, string) {
	if err := bcrypt.CompareHashAndPassword([]byte(providedHash), []byte(userPassword)); err != nil {
		return false, "Invalid credentials"
	}
	return true, ""
}

// writeStoreError maps store failures onto HTTP responses: an uninitialized
// store is a configuration-level 503, anything else a 500.
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrUnavailable) {
		http.Error(w, `{"success": false, "message": "Database not available"}`, http.StatusServiceUnavailable)
		return
	}
	http.Error(w, `{"success": false, "message": "Database error"}`, http.StatusInternalServerError)
}
