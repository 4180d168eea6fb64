package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/domain"
)

func issueVIP(t *testing.T, session *Session, customerID int, name string, age int, seat string) *domain.Ticket {
	t.Helper()

	ticket, err := NewTicketService(session).Issue(customerID, name, age, "BRCHL", domain.ClassVIP, seat)
	require.NoError(t, err)

	return ticket
}

func TestPurchaseServicePurchase(t *testing.T) {
	session := newTestSession(t)
	svc := NewPurchaseService(session)

	// 28 is a perfect number, so the invoice carries the 15% discount.
	ticket := issueVIP(t, session, 28, "Ana", 30, "vA1")

	invoice, rejected, err := svc.Purchase(ticket.Code, "Grill", []string{"Beer", "Burger", "Beer"})
	require.NoError(t, err)
	assert.Empty(t, rejected)

	assert.InDelta(t, 29, invoice.Breakdown.Subtotal, 1e-9)
	assert.InDelta(t, 29*0.15, invoice.Breakdown.Discount, 1e-9)
	assert.InDelta(t, 29*0.16, invoice.Breakdown.Tax, 1e-9)
	assert.InDelta(t, 29*1.01, invoice.Breakdown.Total, 1e-9)

	// The commit spent stock and registered the invoice on both sides.
	grill := session.Catalog().RestaurantByName("Grill")
	assert.Equal(t, 8, grill.ProductByName("Beer").Stock)
	assert.Equal(t, 4, grill.ProductByName("Burger").Stock)
	require.Len(t, ticket.Invoices, 1)
	require.Len(t, ticket.Customer.Invoices, 1)
	assert.Same(t, invoice, ticket.Invoices[0])
}

func TestPurchaseServiceRejections(t *testing.T) {
	session := newTestSession(t)
	svc := NewPurchaseService(session)

	ticket := issueVIP(t, session, 17, "Luis", 16, "vA1")

	// Cola has one unit; the second one in the basket is rejected, as
	// are the alcoholic item for a minor and the unknown product.
	invoice, rejected, err := svc.Purchase(ticket.Code, "Grill", []string{"Cola", "Cola", "Beer", "Pizza", "Burger"})
	require.NoError(t, err)
	require.Len(t, rejected, 3)

	reasons := map[string]string{}
	for _, r := range rejected {
		reasons[r.Name] = r.Reason
	}
	assert.Equal(t, "out of stock", reasons["Cola"])
	assert.Equal(t, "customer is under 18", reasons["Beer"])
	assert.Equal(t, "not on the menu", reasons["Pizza"])

	require.Len(t, invoice.Products, 2)
	assert.InDelta(t, 16, invoice.Breakdown.Subtotal, 1e-9)

	grill := session.Catalog().RestaurantByName("Grill")
	assert.Equal(t, 0, grill.ProductByName("Cola").Stock)
	assert.Equal(t, 10, grill.ProductByName("Beer").Stock)
}

func TestPurchaseServiceEmptyBasket(t *testing.T) {
	session := newTestSession(t)
	svc := NewPurchaseService(session)

	ticket := issueVIP(t, session, 17, "Luis", 16, "vA1")

	_, rejected, err := svc.Purchase(ticket.Code, "Grill", []string{"Beer", "Pizza"})
	assert.ErrorIs(t, err, ErrEmptyBasket)
	assert.Len(t, rejected, 2)

	// Nothing was committed.
	grill := session.Catalog().RestaurantByName("Grill")
	assert.Equal(t, 10, grill.ProductByName("Beer").Stock)
	assert.Empty(t, ticket.Invoices)
}

func TestPurchaseServiceEligibility(t *testing.T) {
	session := newTestSession(t)
	svc := NewPurchaseService(session)

	general, err := NewTicketService(session).Issue(10, "Ana", 30, "BRCHL", domain.ClassGeneral, "A1")
	require.NoError(t, err)

	_, _, err = svc.Purchase(general.Code, "Grill", []string{"Burger"})
	assert.ErrorIs(t, err, ErrNotEligible)

	_, _, err = svc.Purchase("nope", "Grill", []string{"Burger"})
	assert.ErrorIs(t, err, ErrTicketNotFound)

	vip := issueVIP(t, session, 11, "Luis", 30, "vA1")
	_, _, err = svc.Purchase(vip.Code, "Sushi", []string{"Burger"})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}

func TestPurchaseServiceVIPTickets(t *testing.T) {
	session := newTestSession(t)
	svc := NewPurchaseService(session)

	_, err := svc.VIPTickets(10)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = NewTicketService(session).Issue(10, "Ana", 30, "BRCHL", domain.ClassGeneral, "A1")
	require.NoError(t, err)

	_, err = svc.VIPTickets(10)
	assert.ErrorIs(t, err, ErrNotEligible)

	issueVIP(t, session, 10, "Ana", 30, "vA1")
	tickets, err := svc.VIPTickets(10)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, domain.ClassVIP, tickets[0].Class)
}

func TestPurchaseServiceStadiumRestaurants(t *testing.T) {
	session := newTestSession(t)
	svc := NewPurchaseService(session)

	stadium, err := svc.StadiumRestaurants("5")
	require.NoError(t, err)
	assert.Len(t, stadium.Restaurants, 1)

	_, err = svc.StadiumRestaurants("99")
	assert.ErrorIs(t, err, ErrStadiumNotFound)
}
