package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"matchday/internal/domain"
)

var (
	// ErrNotEligible rejects restaurant purchases on non-VIP tickets.
	ErrNotEligible = errors.New("ticket not eligible for restaurant purchases")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrStadiumNotFound    = errors.New("stadium not found")

	// ErrEmptyBasket means every selected product was rejected during
	// re-validation; no invoice is created.
	ErrEmptyBasket = errors.New("no purchasable products in basket")
)

// RejectedProduct reports a basket item dropped during re-validation.
// Partial baskets are tolerated; the rejections travel back with the
// invoice instead of failing the purchase.
type RejectedProduct struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// PurchaseService creates restaurant invoices against VIP tickets.
// All product stock mutations funnel through here.
type PurchaseService struct {
	session *Session
}

func NewPurchaseService(session *Session) *PurchaseService {
	return &PurchaseService{
		session: session,
	}
}

// Purchase invoices a basket of product names at a restaurant of the
// ticket's stadium. The basket arrives pre-filtered by the selection
// surface, but the ledger never trusts that: it re-checks age and stock
// per item before anything is committed. Stock decrements and invoice
// registration happen together after the basket is final, so no
// partially-committed invoice is observable.
func (s *PurchaseService) Purchase(code, restaurantName string, productNames []string) (*domain.Invoice, []RejectedProduct, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	ticket := s.session.ticketByCode(code)
	if ticket == nil {
		return nil, nil, ErrTicketNotFound
	}
	if ticket.Class != domain.ClassVIP {
		return nil, nil, ErrNotEligible
	}

	restaurant := ticket.Match.Stadium.RestaurantByName(restaurantName)
	if restaurant == nil {
		return nil, nil, ErrRestaurantNotFound
	}

	var (
		basket   []*domain.Product
		rejected []RejectedProduct
		planned  = make(map[*domain.Product]int)
	)
	for _, name := range productNames {
		product := restaurant.ProductByName(name)
		if product == nil {
			rejected = append(rejected, RejectedProduct{Name: name, Reason: "not on the menu"})
			continue
		}
		if ticket.Customer.Age < 18 && product.Alcoholic {
			rejected = append(rejected, RejectedProduct{Name: name, Reason: "customer is under 18"})
			continue
		}
		// Count duplicates against the same stock so a basket cannot
		// drain a product below zero.
		if product.Stock-planned[product] < 1 {
			rejected = append(rejected, RejectedProduct{Name: name, Reason: "out of stock"})
			continue
		}
		planned[product]++
		basket = append(basket, product)
	}

	for _, r := range rejected {
		zap.L().Warn("purchase: product rejected",
			zap.String("code", code),
			zap.String("product", r.Name),
			zap.String("reason", r.Reason))
	}

	if len(basket) == 0 {
		return nil, rejected, ErrEmptyBasket
	}

	invoice := domain.NewInvoice(ticket, restaurant, basket)

	// Commit: one unit per purchased product, then register the invoice
	// on the ticket and the customer.
	for _, p := range basket {
		p.Stock--
	}
	ticket.Invoices = append(ticket.Invoices, invoice)
	ticket.Customer.Invoices = append(ticket.Customer.Invoices, invoice)

	zap.L().Info("invoice created",
		zap.String("code", code),
		zap.String("restaurant", restaurantName),
		zap.Int("products", len(basket)),
		zap.Float64("total", invoice.Breakdown.Total))

	return invoice, rejected, nil
}

// StadiumRestaurants returns the stadium's restaurant list for menu
// browsing.
func (s *PurchaseService) StadiumRestaurants(stadiumID string) (*domain.Stadium, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	stadium := s.session.Catalog().StadiumByID(stadiumID)
	if stadium == nil {
		return nil, ErrStadiumNotFound
	}
	return stadium, nil
}

// VIPTickets lists a customer's VIP tickets, the ones restaurant
// purchases can be made against.
func (s *PurchaseService) VIPTickets(customerID int) ([]*domain.Ticket, error) {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	customer := s.session.customerByID(customerID)
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	var out []*domain.Ticket
	for _, t := range customer.Tickets {
		if t.Class == domain.ClassVIP {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("customer %d: %w", customerID, ErrNotEligible)
	}
	return out, nil
}
