package domain

import "fmt"

const (
	PriceGeneral = 35.0
	PriceVIP     = 75.0

	// TaxRate applies to tickets and invoices alike.
	TaxRate = 0.16

	// TicketDiscountRate is the ticket discount for customers whose id
	// is a vampire number.
	TicketDiscountRate = 0.50

	// InvoiceDiscountRate is the restaurant discount for customers
	// whose id is a perfect number.
	InvoiceDiscountRate = 0.15
)

// Breakdown is the computed price decomposition of a ticket or invoice.
type Breakdown struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Ticket grants one customer one seat at one match. Validated flips
// false->true exactly once, at check-in. Rehydrated marks tickets
// rebuilt from a stored snapshot rather than issued this session, which
// suppresses the issue-time side effects (confirmation surfaces).
type Ticket struct {
	Class      SeatClass
	Match      *Match
	Seat       string
	Customer   *Customer
	Code       string
	Validated  bool
	Rehydrated bool
	Breakdown  Breakdown
	Invoices   []*Invoice
}

// TicketCode derives the ticket code from its seat label and match id.
func TicketCode(seat, matchID string) string {
	return fmt.Sprintf("%s %s", seat, matchID)
}

// NewTicket builds a ticket and computes its price: flat base per class,
// 50% off for vampire-number ids, then 16% tax on the discounted
// subtotal. The seat must already be reserved on the match.
func NewTicket(class SeatClass, match *Match, seat string, customer *Customer, rehydrated bool) *Ticket {
	base := PriceGeneral
	if class == ClassVIP {
		base = PriceVIP
	}

	discount := 0.0
	if IsVampireNumber(customer.ID) {
		discount = base * TicketDiscountRate
	}
	subtotal := base - discount
	tax := subtotal * TaxRate

	return &Ticket{
		Class:      class,
		Match:      match,
		Seat:       seat,
		Customer:   customer,
		Code:       TicketCode(seat, match.ID),
		Rehydrated: rehydrated,
		Breakdown: Breakdown{
			Subtotal: subtotal,
			Discount: discount,
			Tax:      tax,
			Total:    subtotal + tax,
		},
	}
}

// TotalSpend is the ticket total plus all restaurant invoices bought
// against it.
func (t *Ticket) TotalSpend() float64 {
	total := t.Breakdown.Total
	for _, inv := range t.Invoices {
		total += inv.Breakdown.Total
	}
	return total
}

func (t *Ticket) String() string {
	return fmt.Sprintf("ticket for %s, seat %s, customer %d", t.Match, t.Seat, t.Customer.ID)
}
