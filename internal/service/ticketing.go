package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"matchday/internal/domain"
)

var (
	ErrSeatUnavailable  = domain.ErrSeatUnavailable
	ErrMatchNotFound    = errors.New("match not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrTicketNotFound   = errors.New("ticket not found")

	// ErrAlreadyValidated is informational: the ticket exists and was
	// checked in before. Attendance is not touched again.
	ErrAlreadyValidated = errors.New("ticket already validated")
)

// TicketService issues and validates tickets. All seat-map and
// attendance mutations funnel through here.
type TicketService struct {
	session *Session
}

func NewTicketService(session *Session) *TicketService {
	return &TicketService{
		session: session,
	}
}

// Matches lists fixtures, optionally narrowed by team name, stadium
// name or date prefix. The first non-empty filter wins.
func (s *TicketService) Matches(team, stadium, date string) []*domain.Match {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	cat := s.session.Catalog()
	switch {
	case team != "":
		return cat.MatchesByTeam(team)
	case stadium != "":
		return cat.MatchesByStadium(stadium)
	case date != "":
		return cat.MatchesByDate(date)
	}
	return cat.Matches
}

// AvailableSeats lists the free seats of one class for a match.
func (s *TicketService) AvailableSeats(matchID string, class domain.SeatClass) ([]string, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	match := s.session.catalog.MatchByID(matchID)
	if match == nil {
		return nil, ErrMatchNotFound
	}
	return match.AvailableSeats(class), nil
}

// Issue reserves the seat, prices the ticket (class base price, vampire
// discount, tax) and registers it on both the match and the customer.
// The customer is created on first purchase.
func (s *TicketService) Issue(customerID int, name string, age int, matchID string, class domain.SeatClass, seat string) (*domain.Ticket, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	match := s.session.catalog.MatchByID(matchID)
	if match == nil {
		return nil, ErrMatchNotFound
	}

	if err := match.Reserve(class, seat); err != nil {
		return nil, fmt.Errorf("match.Reserve -> %w", err)
	}

	customer := s.session.findOrCreateCustomer(customerID, name, age)
	ticket := domain.NewTicket(class, match, seat, customer, false)
	match.RegisterTicket(ticket)
	customer.Tickets = append(customer.Tickets, ticket)

	zap.L().Info("ticket issued",
		zap.String("code", ticket.Code),
		zap.String("class", string(class)),
		zap.Int("customer", customerID),
		zap.Float64("total", ticket.Breakdown.Total))

	return ticket, nil
}

// Validate checks a ticket in by code. The validated flag flips
// false->true at most once, and the owning match's attendance counter
// moves by exactly one on that transition.
func (s *TicketService) Validate(code string) (*domain.Ticket, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	ticket := s.session.ticketByCode(code)
	if ticket == nil {
		return nil, ErrTicketNotFound
	}
	if ticket.Validated {
		return ticket, ErrAlreadyValidated
	}

	ticket.Validated = true
	ticket.Match.Attendance++

	zap.L().Info("ticket validated",
		zap.String("code", code),
		zap.String("match", ticket.Match.ID),
		zap.Int("attendance", ticket.Match.Attendance))

	return ticket, nil
}

// CustomerTickets lists the tickets a customer owns, in purchase order.
func (s *TicketService) CustomerTickets(customerID int) ([]*domain.Ticket, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	customer := s.session.customerByID(customerID)
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer.Tickets, nil
}
