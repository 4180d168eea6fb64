package catalog

import (
	"sort"

	"matchday/internal/domain"
)

// Catalog is the read-mostly reference data for one session: teams,
// stadiums (with their restaurants) and matches. It is loaded once at
// startup; the only fields mutated afterwards are the match-owned
// attendance counters and seat maps, and product stock, all through
// the service contracts.
type Catalog struct {
	Teams    []*domain.Team
	Stadiums []*domain.Stadium
	Matches  []*domain.Match
}

// MatchByID returns the first match with the given derived id, or nil.
// Derived ids can collide between matches sharing name prefixes; that
// is a known limitation of the id scheme, not corrected here.
func (c *Catalog) MatchByID(id string) *domain.Match {
	for _, m := range c.Matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (c *Catalog) StadiumByID(id string) *domain.Stadium {
	for _, s := range c.Stadiums {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (c *Catalog) TeamByID(id string) *domain.Team {
	for _, t := range c.Teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RestaurantByName scans every stadium for a restaurant with that name.
func (c *Catalog) RestaurantByName(name string) *domain.Restaurant {
	for _, s := range c.Stadiums {
		if r := s.RestaurantByName(name); r != nil {
			return r
		}
	}
	return nil
}

// MatchesByTeam lists matches where the team plays home or away.
func (c *Catalog) MatchesByTeam(teamName string) []*domain.Match {
	var out []*domain.Match
	for _, m := range c.Matches {
		if m.HomeTeam.Name == teamName || m.AwayTeam.Name == teamName {
			out = append(out, m)
		}
	}
	return out
}

func (c *Catalog) MatchesByStadium(stadiumName string) []*domain.Match {
	var out []*domain.Match
	for _, m := range c.Matches {
		if m.Stadium.Name == stadiumName {
			out = append(out, m)
		}
	}
	return out
}

// MatchesByDate lists matches whose date starts with the given prefix.
func (c *Catalog) MatchesByDate(date string) []*domain.Match {
	var out []*domain.Match
	for _, m := range c.Matches {
		if len(m.Date) >= len(date) && m.Date[:len(date)] == date {
			out = append(out, m)
		}
	}
	return out
}

// Dates returns the distinct match dates, sorted by the date string
// with its first four characters stripped. The dataset's dates carry a
// fixed-width day-name prefix ("Mon 14 Nov ..."), so the stripped key
// orders by day-of-month; any other date format breaks this ordering.
func (c *Catalog) Dates() []string {
	seen := make(map[string]struct{})
	var dates []string
	for _, m := range c.Matches {
		if _, ok := seen[m.Date]; ok {
			continue
		}
		seen[m.Date] = struct{}{}
		dates = append(dates, m.Date)
	}

	sort.Slice(dates, func(i, j int) bool {
		return sortKey(dates[i]) < sortKey(dates[j])
	})
	return dates
}

func sortKey(date string) string {
	if len(date) <= 4 {
		return date
	}
	return date[4:]
}
