package service

import (
	"sort"

	"matchday/internal/domain"
)

// StatsService aggregates read-only views over the session. No chart
// rendering here; consumers shape the numbers however they like.
type StatsService struct {
	session *Session
}

func NewStatsService(session *Session) *StatsService {
	return &StatsService{
		session: session,
	}
}

type MatchAttendance struct {
	MatchID    string  `json:"match_id"`
	Fixture    string  `json:"fixture"`
	Stadium    string  `json:"stadium"`
	Sold       int     `json:"sold"`
	Attendance int     `json:"attendance"`
	Ratio      float64 `json:"ratio"`
}

// AttendanceTable reports tickets sold vs. check-ins per match, sorted
// by tickets sold descending.
func (s *StatsService) AttendanceTable() []MatchAttendance {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	var table []MatchAttendance
	for _, m := range s.session.catalog.Matches {
		sold := len(m.Tickets)
		ratio := 0.0
		if sold > 0 {
			ratio = float64(m.Attendance) / float64(sold)
		}
		table = append(table, MatchAttendance{
			MatchID:    m.ID,
			Fixture:    m.HomeTeam.Name + " vs " + m.AwayTeam.Name,
			Stadium:    m.Stadium.Name,
			Sold:       sold,
			Attendance: m.Attendance,
			Ratio:      ratio,
		})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Sold > table[j].Sold
	})
	return table
}

// AverageVIPSpend is the mean total spend (ticket plus restaurant
// invoices) across all VIP tickets. Zero when none were sold.
func (s *StatsService) AverageVIPSpend() float64 {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	sum := 0.0
	count := 0
	for _, m := range s.session.catalog.Matches {
		for _, t := range m.Tickets {
			if t.Class != domain.ClassVIP {
				continue
			}
			sum += t.TotalSpend()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

type CustomerCount struct {
	Customer string `json:"customer"`
	Tickets  int    `json:"tickets"`
}

// TopCustomers ranks customers by tickets bought.
func (s *StatsService) TopCustomers(n int) []CustomerCount {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	counts := make(map[string]int)
	for _, m := range s.session.catalog.Matches {
		for _, t := range m.Tickets {
			counts[t.Customer.Name]++
		}
	}
	return topCounts(counts, n)
}

type ProductSales struct {
	Name  string `json:"name"`
	Units int    `json:"units"`
}

// TopProducts ranks products by units sold across all invoices.
func (s *StatsService) TopProducts(n int) []ProductSales {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	units := make(map[string]int)
	for _, m := range s.session.catalog.Matches {
		for _, t := range m.Tickets {
			for _, inv := range t.Invoices {
				for _, p := range inv.Products {
					units[p.Name]++
				}
			}
		}
	}

	out := make([]ProductSales, 0, len(units))
	for name, u := range units {
		out = append(out, ProductSales{Name: name, Units: u})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Units != out[j].Units {
			return out[i].Units > out[j].Units
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

type RestaurantSales struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// TopRestaurants ranks restaurants by invoiced revenue.
func (s *StatsService) TopRestaurants(n int) []RestaurantSales {
	s.session.mu.Lock()
	defer s.session.mu.Unlock()

	revenue := make(map[string]float64)
	for _, m := range s.session.catalog.Matches {
		for _, t := range m.Tickets {
			for _, inv := range t.Invoices {
				revenue[inv.Restaurant.Name] += inv.Breakdown.Total
			}
		}
	}

	out := make([]RestaurantSales, 0, len(revenue))
	for name, r := range revenue {
		out = append(out, RestaurantSales{Name: name, Revenue: r})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topCounts(counts map[string]int, n int) []CustomerCount {
	out := make([]CustomerCount, 0, len(counts))
	for name, c := range counts {
		out = append(out, CustomerCount{Customer: name, Tickets: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tickets != out[j].Tickets {
			return out[i].Tickets > out[j].Tickets
		}
		return out[i].Customer < out[j].Customer
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
