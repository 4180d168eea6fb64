package domain

// Invoice is one restaurant purchase against a VIP ticket. It is
// immutable once created; the stock decrement it implies is committed
// separately by the purchase ledger so that rebuilding an invoice from
// a snapshot never re-applies it.
type Invoice struct {
	Ticket     *Ticket
	Customer   *Customer
	Restaurant *Restaurant
	Products   []*Product
	Breakdown  Breakdown
}

// NewInvoice computes the breakdown over an already-validated basket:
// 15% discount on the subtotal for perfect-number ids, 16% tax on the
// pre-discount subtotal, and total = subtotal + tax - discount. The
// discount and tax are derived independently, both from the subtotal.
func NewInvoice(ticket *Ticket, restaurant *Restaurant, products []*Product) *Invoice {
	subtotal := 0.0
	for _, p := range products {
		subtotal += p.Price
	}

	discount := 0.0
	if IsPerfectNumber(ticket.Customer.ID) {
		discount = subtotal * InvoiceDiscountRate
	}
	tax := subtotal * TaxRate

	return &Invoice{
		Ticket:     ticket,
		Customer:   ticket.Customer,
		Restaurant: restaurant,
		Products:   products,
		Breakdown: Breakdown{
			Subtotal: subtotal,
			Discount: discount,
			Tax:      tax,
			Total:    subtotal + tax - discount,
		},
	}
}
