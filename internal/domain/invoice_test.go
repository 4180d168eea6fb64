package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceFixture(t *testing.T, customerID int) (*Ticket, *Restaurant) {
	t.Helper()

	m := newTestMatch()
	customer := NewCustomer(customerID, "Ana", 30)
	require.NoError(t, m.Reserve(ClassVIP, "vA1"))
	ticket := NewTicket(ClassVIP, m, "vA1", customer, false)

	return ticket, newTestRestaurant()
}

func TestNewInvoiceBreakdown(t *testing.T) {
	ticket, restaurant := newInvoiceFixture(t, 10)

	products := []*Product{
		restaurant.ProductByName("Beer"),
		restaurant.ProductByName("Burger"),
	}
	invoice := NewInvoice(ticket, restaurant, products)

	assert.InDelta(t, 20, invoice.Breakdown.Subtotal, 1e-9)
	assert.InDelta(t, 0, invoice.Breakdown.Discount, 1e-9)
	assert.InDelta(t, 3.2, invoice.Breakdown.Tax, 1e-9)
	assert.InDelta(t, 23.2, invoice.Breakdown.Total, 1e-9)
}

func TestNewInvoicePerfectNumberDiscount(t *testing.T) {
	ticket, restaurant := newInvoiceFixture(t, 28)

	products := []*Product{
		restaurant.ProductByName("Beer"),
		restaurant.ProductByName("Burger"),
	}
	invoice := NewInvoice(ticket, restaurant, products)

	// Tax applies to the pre-discount subtotal; the discount comes off
	// at the end.
	assert.InDelta(t, 20, invoice.Breakdown.Subtotal, 1e-9)
	assert.InDelta(t, 3, invoice.Breakdown.Discount, 1e-9)
	assert.InDelta(t, 3.2, invoice.Breakdown.Tax, 1e-9)
	assert.InDelta(t, 20.2, invoice.Breakdown.Total, 1e-9)
}

func TestNewInvoiceLeavesStockAlone(t *testing.T) {
	ticket, restaurant := newInvoiceFixture(t, 10)
	beer := restaurant.ProductByName("Beer")
	before := beer.Stock

	NewInvoice(ticket, restaurant, []*Product{beer})

	assert.Equal(t, before, beer.Stock)
}
