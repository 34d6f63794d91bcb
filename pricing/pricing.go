// Package pricing derives an order's money fields, generates its
// human-readable order number and owns the status enumeration.
package pricing

import (
	"errors"
	"math"
	"strings"

	"github.com/django-nerd/foodcourt-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaxRate is the flat sales tax applied to every order subtotal.
const TaxRate = 0.08

// OrderNumberPrefix starts every generated order number.
const OrderNumberPrefix = "ORD-"

// ErrEmptyCart is returned when an order is created with no cart lines.
var ErrEmptyCart = errors.New("pricing: cart is empty")

// Order statuses. New orders always start as pending. Any status may be set
// to any other status by an admin update: the engine validates membership
// only, not transitions.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// IsValidStatus reports whether status is one of the five order statuses.
func IsValidStatus(status string) bool {
	return validStatuses[status]
}

// Totals holds the derived money fields of an order.
type Totals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeTotals derives subtotal, tax and total from the cart lines.
// Tax and total are rounded half-up to two decimal places; all three values
// are always recomputed server-side so clients cannot tamper with prices.
func ComputeTotals(lines []models.CartLine) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, ErrEmptyCart
	}

	var subtotal float64
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}

	tax := round2(subtotal * TaxRate)
	total := round2(subtotal + tax)

	return Totals{Subtotal: subtotal, Tax: tax, Total: total}, nil
}

// GenerateOrderNumber builds a display tag from a freshly generated
// ObjectID, not the order's persisted identifier, so the visible number is
// decoupled from the storage key. Collisions are possible but negligible
// given the identifier's entropy and are not checked against existing
// orders.
func GenerateOrderNumber() string {
	hex := primitive.NewObjectID().Hex()
	return OrderNumberPrefix + strings.ToUpper(hex[len(hex)-6:])
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
