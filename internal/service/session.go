package service

import (
	"context"
	"fmt"
	"sync"

	"matchday/internal/catalog"
	"matchday/internal/domain"
)

type SessionRepository interface {
	Save(ctx context.Context, customers []*domain.Customer) error
	Load(ctx context.Context, cat *catalog.Catalog) ([]*domain.Customer, error)
}

// Session owns the customer roster for the running process. The ledger
// is single-writer: every mutating operation across the ticket and
// purchase services serializes on mu, so the concurrent HTTP listener
// cannot break the single-session model.
type Session struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	repo     SessionRepository
	custs    []*domain.Customer
	restored bool
}

func NewSession(cat *catalog.Catalog, repo SessionRepository) *Session {
	return &Session{
		catalog: cat,
		repo:    repo,
	}
}

// Restore replays the stored snapshot into the session exactly once;
// later calls are no-ops. It must run before any new mutation.
func (s *Session) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return nil
	}

	customers, err := s.repo.Load(ctx, s.catalog)
	if err != nil {
		return fmt.Errorf("s.repo.Load -> %w", err)
	}

	s.custs = customers
	s.restored = true
	return nil
}

// Save flattens the whole roster into the snapshot, replacing the
// previous one.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, s.custs); err != nil {
		return fmt.Errorf("s.repo.Save -> %w", err)
	}
	return nil
}

func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Customers returns a copy of the roster slice.
func (s *Session) Customers() []*domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Customer, len(s.custs))
	copy(out, s.custs)
	return out
}

// customerByID must be called with mu held.
func (s *Session) customerByID(id int) *domain.Customer {
	for _, c := range s.custs {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// findOrCreateCustomer must be called with mu held. Customers come into
// existence on their first ticket purchase and are never deleted within
// a session.
func (s *Session) findOrCreateCustomer(id int, name string, age int) *domain.Customer {
	if c := s.customerByID(id); c != nil {
		return c
	}
	c := domain.NewCustomer(id, name, age)
	s.custs = append(s.custs, c)
	return c
}

// ticketByCode must be called with mu held. It scans every match's
// registered tickets; fine at this scale.
func (s *Session) ticketByCode(code string) *domain.Ticket {
	for _, m := range s.catalog.Matches {
		if t := m.TicketByCode(code); t != nil {
			return t
		}
	}
	return nil
}
