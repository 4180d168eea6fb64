package response

import (
	"matchday/internal/domain"
)

type Match struct {
	ID       string `json:"id"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Date     string `json:"date"`
	Stadium  string `json:"stadium"`
	Sold     int    `json:"tickets_sold"`
}

func NewMatch(m *domain.Match) Match {
	return Match{
		ID:       m.ID,
		HomeTeam: m.HomeTeam.Name,
		AwayTeam: m.AwayTeam.Name,
		Date:     m.Date,
		Stadium:  m.Stadium.Name,
		Sold:     len(m.Tickets),
	}
}

func NewMatches(matches []*domain.Match) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, NewMatch(m))
	}
	return out
}

type Seats struct {
	MatchID string   `json:"match_id"`
	Class   string   `json:"class"`
	Seats   []string `json:"seats"`
}
