package response

import (
	"matchday/internal/domain"
	"matchday/internal/service"
)

type Purchase struct {
	Invoice  Invoice                   `json:"invoice"`
	Rejected []service.RejectedProduct `json:"rejected,omitempty"`
}

func NewPurchase(inv *domain.Invoice, rejected []service.RejectedProduct) Purchase {
	return Purchase{
		Invoice:  NewInvoice(inv),
		Rejected: rejected,
	}
}
