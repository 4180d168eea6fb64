package response

import (
	"matchday/internal/domain"
)

type Ticket struct {
	Code      string           `json:"code"`
	Class     string           `json:"class"`
	MatchID   string           `json:"match_id"`
	Fixture   string           `json:"fixture"`
	Seat      string           `json:"seat"`
	Customer  int              `json:"customer_id"`
	Validated bool             `json:"validated"`
	Breakdown domain.Breakdown `json:"breakdown"`
	Invoices  []Invoice        `json:"invoices,omitempty"`
}

func NewTicket(t *domain.Ticket) Ticket {
	resp := Ticket{
		Code:      t.Code,
		Class:     string(t.Class),
		MatchID:   t.Match.ID,
		Fixture:   t.Match.String(),
		Seat:      t.Seat,
		Customer:  t.Customer.ID,
		Validated: t.Validated,
		Breakdown: t.Breakdown,
	}
	for _, inv := range t.Invoices {
		resp.Invoices = append(resp.Invoices, NewInvoice(inv))
	}

	return resp
}

func NewTickets(tickets []*domain.Ticket) []Ticket {
	out := make([]Ticket, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, NewTicket(t))
	}
	return out
}

type Invoice struct {
	TicketCode string           `json:"ticket_code"`
	Restaurant string           `json:"restaurant"`
	Products   []InvoiceProduct `json:"products"`
	Breakdown  domain.Breakdown `json:"breakdown"`
}

type InvoiceProduct struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func NewInvoice(inv *domain.Invoice) Invoice {
	resp := Invoice{
		TicketCode: inv.Ticket.Code,
		Restaurant: inv.Restaurant.Name,
		Breakdown:  inv.Breakdown,
	}
	for _, p := range inv.Products {
		resp.Products = append(resp.Products, InvoiceProduct{
			Name:  p.Name,
			Price: p.Price,
		})
	}

	return resp
}
