package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/catalog"
	"matchday/internal/domain"
)

type fakeRepo struct {
	saved     []*domain.Customer
	loadCalls int
}

func (f *fakeRepo) Save(_ context.Context, customers []*domain.Customer) error {
	f.saved = customers
	return nil
}

func (f *fakeRepo) Load(_ context.Context, _ *catalog.Catalog) ([]*domain.Customer, error) {
	f.loadCalls++
	return nil, nil
}

func newTestCatalog() *catalog.Catalog {
	brazil := &domain.Team{ID: "1", Name: "Brazil"}
	chile := &domain.Team{ID: "2", Name: "Chile"}
	mexico := &domain.Team{ID: "3", Name: "Mexico"}

	lusail := &domain.Stadium{
		ID:       "5",
		Name:     "Lusail",
		Capacity: []int{3, 5},
		Restaurants: []*domain.Restaurant{
			{Name: "Grill", Products: []*domain.Product{
				domain.NewProduct("Beer", "330ml", 8.5, 10, "alcoholic"),
				domain.NewProduct("Burger", "500g", 12, 5, "plate"),
				domain.NewProduct("Cola", "330ml", 4, 1, "non-alcoholic"),
			}},
		},
	}
	alBayt := &domain.Stadium{ID: "6", Name: "Al Bayt", Capacity: []int{2, 4}}

	return &catalog.Catalog{
		Teams:    []*domain.Team{brazil, chile, mexico},
		Stadiums: []*domain.Stadium{lusail, alBayt},
		Matches: []*domain.Match{
			domain.NewMatch(brazil, chile, "Mon 21 Nov 2022 16:00", lusail),
			domain.NewMatch(mexico, brazil, "Fri 18 Nov 2022 19:00", alBayt),
		},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()

	session := NewSession(newTestCatalog(), &fakeRepo{})
	require.NoError(t, session.Restore(context.Background()))

	return session
}

func TestTicketServiceIssue(t *testing.T) {
	session := newTestSession(t)
	svc := NewTicketService(session)

	ticket, err := svc.Issue(10, "Ana", 30, "BRCHL", domain.ClassGeneral, "A1")
	require.NoError(t, err)
	assert.Equal(t, "A1 BRCHL", ticket.Code)
	assert.InDelta(t, 40.6, ticket.Breakdown.Total, 1e-9)
	assert.False(t, ticket.Validated)

	// The customer came into existence with the purchase.
	customers := session.Customers()
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana", customers[0].Name)
	assert.Len(t, customers[0].Tickets, 1)

	// A second ticket reuses the customer.
	_, err = svc.Issue(10, "Ana", 30, "BRCHL", domain.ClassVIP, "vA1")
	require.NoError(t, err)
	assert.Len(t, session.Customers(), 1)
}

func TestTicketServiceIssueErrors(t *testing.T) {
	session := newTestSession(t)
	svc := NewTicketService(session)

	_, err := svc.Issue(10, "Ana", 30, "XXXXX", domain.ClassGeneral, "A1")
	assert.ErrorIs(t, err, ErrMatchNotFound)

	_, err = svc.Issue(10, "Ana", 30, "BRCHL", domain.ClassGeneral, "A1")
	require.NoError(t, err)

	_, err = svc.Issue(11, "Luis", 25, "BRCHL", domain.ClassGeneral, "A1")
	assert.ErrorIs(t, err, ErrSeatUnavailable)

	_, err = svc.Issue(11, "Luis", 25, "BRCHL", domain.ClassGeneral, "E1")
	assert.ErrorIs(t, err, ErrSeatUnavailable)
}

func TestTicketServiceAvailableSeats(t *testing.T) {
	session := newTestSession(t)
	svc := NewTicketService(session)

	seats, err := svc.AvailableSeats("BRCHL", domain.ClassVIP)
	require.NoError(t, err)
	require.Len(t, seats, 30)

	_, err = svc.Issue(10, "Ana", 30, "BRCHL", domain.ClassVIP, seats[0])
	require.NoError(t, err)

	seats, err = svc.AvailableSeats("BRCHL", domain.ClassVIP)
	require.NoError(t, err)
	assert.Len(t, seats, 29)

	_, err = svc.AvailableSeats("XXXXX", domain.ClassVIP)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestTicketServiceValidate(t *testing.T) {
	session := newTestSession(t)
	svc := NewTicketService(session)

	issued, err := svc.Issue(10, "Ana", 30, "BRCHL", domain.ClassGeneral, "A1")
	require.NoError(t, err)

	ticket, err := svc.Validate(issued.Code)
	require.NoError(t, err)
	assert.True(t, ticket.Validated)
	assert.Equal(t, 1, ticket.Match.Attendance)

	// Checking in twice is reported but moves nothing.
	again, err := svc.Validate(issued.Code)
	assert.ErrorIs(t, err, ErrAlreadyValidated)
	assert.Same(t, ticket, again)
	assert.Equal(t, 1, ticket.Match.Attendance)

	_, err = svc.Validate("nope")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestTicketServiceCustomerTickets(t *testing.T) {
	session := newTestSession(t)
	svc := NewTicketService(session)

	_, err := svc.CustomerTickets(10)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.Issue(10, "Ana", 30, "BRCHL", domain.ClassGeneral, "A1")
	require.NoError(t, err)
	_, err = svc.Issue(10, "Ana", 30, "MEBRA", domain.ClassGeneral, "B1")
	require.NoError(t, err)

	tickets, err := svc.CustomerTickets(10)
	require.NoError(t, err)
	require.Len(t, tickets, 2)
	assert.Equal(t, "A1 BRCHL", tickets[0].Code)
	assert.Equal(t, "B1 MEBRA", tickets[1].Code)
}

func TestTicketServiceMatches(t *testing.T) {
	session := newTestSession(t)
	svc := NewTicketService(session)

	assert.Len(t, svc.Matches("", "", ""), 2)
	assert.Len(t, svc.Matches("Brazil", "", ""), 2)
	assert.Len(t, svc.Matches("Mexico", "", ""), 1)
	assert.Len(t, svc.Matches("", "Lusail", ""), 1)
	assert.Len(t, svc.Matches("", "", "Fri 18"), 1)
	assert.Empty(t, svc.Matches("France", "", ""))
}
