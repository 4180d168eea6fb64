package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketPricing(t *testing.T) {
	tests := []struct {
		name         string
		class        SeatClass
		customerID   int
		wantSubtotal float64
		wantDiscount float64
		wantTax      float64
		wantTotal    float64
	}{
		{"general full price", ClassGeneral, 10, 35, 0, 5.6, 40.6},
		{"vip full price", ClassVIP, 10, 75, 0, 12, 87},
		{"general vampire id", ClassGeneral, 1260, 17.5, 17.5, 2.8, 20.3},
		{"vip vampire id", ClassVIP, 1260, 37.5, 37.5, 6, 43.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch()
			customer := NewCustomer(tt.customerID, "Ana", 30)
			seat := "A1"
			if tt.class == ClassVIP {
				seat = "vA1"
			}
			require.NoError(t, m.Reserve(tt.class, seat))

			ticket := NewTicket(tt.class, m, seat, customer, false)

			assert.InDelta(t, tt.wantSubtotal, ticket.Breakdown.Subtotal, 1e-9)
			assert.InDelta(t, tt.wantDiscount, ticket.Breakdown.Discount, 1e-9)
			assert.InDelta(t, tt.wantTax, ticket.Breakdown.Tax, 1e-9)
			assert.InDelta(t, tt.wantTotal, ticket.Breakdown.Total, 1e-9)
		})
	}
}

func TestTicketCode(t *testing.T) {
	m := newTestMatch()
	customer := NewCustomer(10, "Ana", 30)
	require.NoError(t, m.Reserve(ClassVIP, "vC3"))

	ticket := NewTicket(ClassVIP, m, "vC3", customer, false)

	assert.Equal(t, "vC3 BRCHL", ticket.Code)
	assert.Equal(t, "vC3 BRCHL", TicketCode("vC3", "BRCHL"))
}

func TestTicketTotalSpend(t *testing.T) {
	m := newTestMatch()
	customer := NewCustomer(10, "Ana", 30)
	require.NoError(t, m.Reserve(ClassVIP, "vA1"))
	ticket := NewTicket(ClassVIP, m, "vA1", customer, false)

	restaurant := &Restaurant{Name: "Grill"}
	products := []*Product{NewProduct("Burger", "500g", 10, 5, "plate")}
	invoice := NewInvoice(ticket, restaurant, products)
	ticket.Invoices = append(ticket.Invoices, invoice)
	customer.Tickets = append(customer.Tickets, ticket)

	assert.InDelta(t, 87+11.6, ticket.TotalSpend(), 1e-9)
	assert.InDelta(t, ticket.TotalSpend(), customer.TotalSpend(), 1e-9)
}
