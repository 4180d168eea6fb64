package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"matchday/internal/catalog"
	"matchday/internal/domain"
	"matchday/internal/repository/dao"
)

// ErrUnresolvableReference marks a stored match or restaurant reference
// with no counterpart in the freshly loaded catalog. The record is
// skipped, not fatal to the whole load, but always reported.
var ErrUnresolvableReference = errors.New("unresolvable reference")

type SnapshotDAO interface {
	ReadAll(ctx context.Context) ([]dao.Customer, error)
	WriteAll(ctx context.Context, records []dao.Customer) error
}

// SessionRepository is the persistence gateway: it flattens the
// session-owned customer graph into snapshot records and rebuilds it
// against a live catalog, replaying the derived state (seat occupancy,
// attendance, product stock) that only existed in memory.
type SessionRepository struct {
	dao SnapshotDAO
}

func NewSessionRepository(dao SnapshotDAO) *SessionRepository {
	return &SessionRepository{
		dao: dao,
	}
}

func (r *SessionRepository) Save(ctx context.Context, customers []*domain.Customer) error {
	records := make([]dao.Customer, 0, len(customers))
	for _, c := range customers {
		records = append(records, r.domainToDAO(c))
	}

	if err := r.dao.WriteAll(ctx, records); err != nil {
		return fmt.Errorf("r.dao.WriteAll -> %w", err)
	}
	return nil
}

func (r *SessionRepository) domainToDAO(c *domain.Customer) dao.Customer {
	rec := dao.Customer{
		ID:   c.ID,
		Name: c.Name,
		Age:  c.Age,
	}
	for _, t := range c.Tickets {
		tr := dao.Ticket{
			Class:     string(t.Class),
			Match:     t.Match.ID,
			Seat:      t.Seat,
			Code:      t.Code,
			Validated: t.Validated,
		}
		for _, inv := range t.Invoices {
			ir := dao.Invoice{Restaurant: inv.Restaurant.Name}
			for _, p := range inv.Products {
				ir.Products = append(ir.Products, dao.Product{
					Name:      p.Name,
					Unit:      p.Unit,
					Price:     p.Price,
					Stock:     p.Stock,
					Attribute: p.Attribute,
				})
			}
			tr.Invoices = append(tr.Invoices, ir)
		}
		rec.Tickets = append(rec.Tickets, tr)
	}
	return rec
}

// Load rebuilds the customer graph from the snapshot, re-linking every
// ticket to its existing match and every invoice to its existing
// restaurant. Derived state is replayed through a dedicated path that
// never runs the purchase pipeline: seats are written directly,
// attendance incremented per stored validated flag, and live stock
// decremented one unit per embedded product. A ticket whose code is
// already registered on its match has been replayed before (same file
// loaded twice, duplicate record) and is skipped, so replay is
// idempotent by construction.
func (r *SessionRepository) Load(ctx context.Context, cat *catalog.Catalog) ([]*domain.Customer, error) {
	records, err := r.dao.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ReadAll -> %w", err)
	}

	var customers []*domain.Customer
	for _, rec := range records {
		customer := domain.NewCustomer(rec.ID, rec.Name, rec.Age)

		for _, tr := range rec.Tickets {
			match := cat.MatchByID(tr.Match)
			if match == nil {
				zap.L().Error("load: dropping ticket record",
					zap.String("code", tr.Code),
					zap.String("match", tr.Match),
					zap.Error(ErrUnresolvableReference))
				continue
			}
			if match.TicketByCode(tr.Code) != nil {
				zap.L().Warn("load: ticket already replayed, skipping",
					zap.String("code", tr.Code))
				continue
			}

			class := domain.SeatClass(tr.Class)
			match.RestoreSeat(class, tr.Seat)

			ticket := domain.NewTicket(class, match, tr.Seat, customer, true)
			ticket.Code = tr.Code
			if tr.Validated {
				ticket.Validated = true
				match.Attendance++
			}

			for _, ir := range tr.Invoices {
				restaurant := cat.RestaurantByName(ir.Restaurant)
				if restaurant == nil {
					zap.L().Error("load: dropping invoice record",
						zap.String("code", tr.Code),
						zap.String("restaurant", ir.Restaurant),
						zap.Error(ErrUnresolvableReference))
					continue
				}

				products := make([]*domain.Product, 0, len(ir.Products))
				for _, pr := range ir.Products {
					// Fresh value copies: purchase-time product state
					// stays independent of the live catalog.
					products = append(products,
						domain.NewProduct(pr.Name, pr.Unit, pr.Price, pr.Stock, pr.Attribute))

					if live := restaurant.ProductByName(pr.Name); live != nil && live.Stock > 0 {
						live.Stock--
					}
				}

				invoice := domain.NewInvoice(ticket, restaurant, products)
				ticket.Invoices = append(ticket.Invoices, invoice)
				customer.Invoices = append(customer.Invoices, invoice)
			}

			match.RegisterTicket(ticket)
			customer.Tickets = append(customer.Tickets, ticket)
		}

		customers = append(customers, customer)
	}

	if len(customers) > 0 {
		zap.L().Info("session restored", zap.Int("customers", len(customers)))
	}
	return customers, nil
}
