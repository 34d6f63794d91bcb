package pricing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/django-nerd/foodcourt-backend/models"
	"github.com/django-nerd/foodcourt-backend/pricing"
)

func TestComputeTotals(t *testing.T) {
	lines := []models.CartLine{
		{Item_id: "a", Title: "Burger", Price: 2.50, Quantity: 3},
		{Item_id: "b", Title: "Fries", Price: 1.33, Quantity: 2},
	}

	totals, err := pricing.ComputeTotals(lines)
	assert.NoError(t, err)
	assert.InDelta(t, 10.16, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.81, totals.Tax, 1e-9)
	assert.InDelta(t, 10.97, totals.Total, 1e-9)
}

func TestComputeTotalsSingleLine(t *testing.T) {
	totals, err := pricing.ComputeTotals([]models.CartLine{
		{Item_id: "a", Title: "Coffee", Price: 3.00, Quantity: 1},
	})
	assert.NoError(t, err)
	assert.InDelta(t, 3.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 0.24, totals.Tax, 1e-9)
	assert.InDelta(t, 3.24, totals.Total, 1e-9)
}

func TestComputeTotalsTaxIsRecomputedFromSubtotal(t *testing.T) {
	lines := []models.CartLine{
		{Item_id: "a", Title: "Soup", Price: 0.10, Quantity: 1},
	}

	totals, err := pricing.ComputeTotals(lines)
	assert.NoError(t, err)
	assert.InDelta(t, 0.01, totals.Tax, 1e-9)
	assert.InDelta(t, 0.11, totals.Total, 1e-9)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	_, err := pricing.ComputeTotals(nil)
	assert.ErrorIs(t, err, pricing.ErrEmptyCart)

	_, err = pricing.ComputeTotals([]models.CartLine{})
	assert.ErrorIs(t, err, pricing.ErrEmptyCart)
}

func TestGenerateOrderNumber(t *testing.T) {
	number := pricing.GenerateOrderNumber()

	assert.True(t, strings.HasPrefix(number, pricing.OrderNumberPrefix))

	suffix := strings.TrimPrefix(number, pricing.OrderNumberPrefix)
	assert.Len(t, suffix, 6)
	assert.Equal(t, strings.ToUpper(suffix), suffix)

	// Derived from a fresh identifier each time, so consecutive numbers
	// should differ.
	assert.NotEqual(t, number, pricing.GenerateOrderNumber())
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		pricing.StatusPending,
		pricing.StatusPreparing,
		pricing.StatusReady,
		pricing.StatusCompleted,
		pricing.StatusCancelled,
	} {
		assert.True(t, pricing.IsValidStatus(status), status)
	}

	assert.False(t, pricing.IsValidStatus("shipped"))
	assert.False(t, pricing.IsValidStatus("Pending"))
	assert.False(t, pricing.IsValidStatus(""))
}
