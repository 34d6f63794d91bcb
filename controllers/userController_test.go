package controller_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	controller "github.com/django-nerd/foodcourt-backend/controllers"
	"github.com/django-nerd/foodcourt-backend/store"
)

func TestSignUpValidation(t *testing.T) {
	c := controller.NewUserController(unavailableStore(t))

	cases := []string{
		`{"name": "Sam", "email": "not-an-email", "password": "secret123"}`,
		`{"name": "Sam", "email": "sam@example.com", "password": "123"}`,
		`{"name": "S", "email": "sam@example.com", "password": "secret123"}`,
		`not json`,
	}

	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()

		c.SignUp(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("pre-check query rejects a known email", func(mt *mtest.T) {
		// The duplicate check is a query before the insert, not a database
		// constraint, so it is advisory only: two concurrent signups can
		// both pass it. This asserts the current permissive single-request
		// behavior.
		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "sam@example.com"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodcourt.user", mtest.FirstBatch, existing))

		c := controller.NewUserController(store.NewWithDatabase(mt.DB))

		req := httptest.NewRequest(http.MethodPost, "/auth/signup",
			strings.NewReader(`{"name": "Sam", "email": "sam@example.com", "password": "secret123"}`))
		rec := httptest.NewRecorder()

		c.SignUp(rec, req)

		assert.Equal(mt.T, http.StatusConflict, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "Email already registered")
	})
}

func TestLoginUnknownEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unknown email yields 401", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodcourt.user", mtest.FirstBatch))

		c := controller.NewUserController(store.NewWithDatabase(mt.DB))

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email": "ghost@example.com", "password": "secret123"}`))
		rec := httptest.NewRecorder()

		c.Login(rec, req)

		assert.Equal(mt.T, http.StatusUnauthorized, rec.Code)
	})
}

func TestLoginWrongPassword(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("bcrypt mismatch yields 401", func(mt *mtest.T) {
		existing := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Sam"},
			{Key: "email", Value: "sam@example.com"},
			{Key: "password_hash", Value: controller.HashPassword("right-password")},
			{Key: "is_admin", Value: false},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "foodcourt.user", mtest.FirstBatch, existing))

		c := controller.NewUserController(store.NewWithDatabase(mt.DB))

		req := httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email": "sam@example.com", "password": "wrong-password"}`))
		rec := httptest.NewRecorder()

		c.Login(rec, req)

		assert.Equal(mt.T, http.StatusUnauthorized, rec.Code)
		assert.Contains(mt.T, rec.Body.String(), "Invalid credentials")
	})
}

func TestVerifyPassword(t *testing.T) {
	hash := controller.HashPassword("secret123")

	ok, _ := controller.VerifyPassword("secret123", hash)
	assert.True(t, ok)

	ok, msg := controller.VerifyPassword("other", hash)
	assert.False(t, ok)
	assert.Equal(t, "Invalid credentials", msg)
}
