package domain

import (
	"errors"
	"fmt"
	"strings"
)

type SeatClass string

const (
	ClassGeneral SeatClass = "general"
	ClassVIP     SeatClass = "vip"
)

// ErrSeatUnavailable is returned when a seat label is unknown to the
// class's seat map or already occupied.
var ErrSeatUnavailable = errors.New("seat unavailable")

// seatLetters is the row alphabet used for seat labels. E is not part
// of it; the 15 letters below are the complete set.
var seatLetters = []string{"A", "B", "C", "D", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P"}

// MatchID derives a match identifier from the first two characters of
// each team name and the first character of the stadium name, uppercased.
// Two matches sharing those prefixes collide; callers tolerate that and
// the first registered match wins on lookup.
func MatchID(homeTeam, awayTeam, stadium string) string {
	return strings.ToUpper(firstN(homeTeam, 2) + firstN(awayTeam, 2) + firstN(stadium, 1))
}

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// Match is a fixture between two teams at a stadium. It owns one seat
// map per class and the attendance counter; both are mutated only
// through the ticketing pipeline (or the persistence replay).
type Match struct {
	ID         string
	HomeTeam   *Team
	AwayTeam   *Team
	Date       string
	Stadium    *Stadium
	Tickets    []*Ticket
	Attendance int

	vipSeats     map[string]bool
	generalSeats map[string]bool
}

func NewMatch(home, away *Team, date string, stadium *Stadium) *Match {
	m := &Match{
		ID:       MatchID(home.Name, away.Name, stadium.Name),
		HomeTeam: home,
		AwayTeam: away,
		Date:     date,
		Stadium:  stadium,
	}
	m.buildSeatMaps()

	return m
}

// buildSeatMaps generates every seat label for both classes. A capacity
// value of N yields rows 1..N-1, matching the venue numbering scheme.
// VIP labels carry a "v" prefix so both classes can share letters.
func (m *Match) buildSeatMaps() {
	m.vipSeats = make(map[string]bool, len(seatLetters)*maxInt(m.Stadium.VIPRows()-1, 0))
	m.generalSeats = make(map[string]bool, len(seatLetters)*maxInt(m.Stadium.GeneralRows()-1, 0))

	for _, letter := range seatLetters {
		for num := 1; num < m.Stadium.VIPRows(); num++ {
			m.vipSeats[fmt.Sprintf("v%s%d", letter, num)] = false
		}
		for num := 1; num < m.Stadium.GeneralRows(); num++ {
			m.generalSeats[fmt.Sprintf("%s%d", letter, num)] = false
		}
	}
}

func (m *Match) seatMap(class SeatClass) map[string]bool {
	if class == ClassVIP {
		return m.vipSeats
	}
	return m.generalSeats
}

// AvailableSeats returns the free seat labels of a class, ordered by
// row number then letter (the order the venue displays them in).
func (m *Match) AvailableSeats(class SeatClass) []string {
	seats := m.seatMap(class)
	rows := m.Stadium.GeneralRows()
	prefix := ""
	if class == ClassVIP {
		rows = m.Stadium.VIPRows()
		prefix = "v"
	}

	var out []string
	for num := 1; num < rows; num++ {
		for _, letter := range seatLetters {
			label := fmt.Sprintf("%s%s%d", prefix, letter, num)
			if !seats[label] {
				out = append(out, label)
			}
		}
	}
	return out
}

// Reserve marks a seat occupied. It fails with ErrSeatUnavailable when
// the label is not part of the class's seat map or already taken; a
// seat never becomes free again within a session.
func (m *Match) Reserve(class SeatClass, label string) error {
	seats := m.seatMap(class)
	occupied, ok := seats[label]
	if !ok || occupied {
		return ErrSeatUnavailable
	}
	seats[label] = true

	return nil
}

// RestoreSeat writes seat occupancy directly, bypassing the reservation
// check. Only the persistence replay uses it: a stored seat is not a
// contested reservation, so the write must not fail.
func (m *Match) RestoreSeat(class SeatClass, label string) {
	m.seatMap(class)[label] = true
}

// OccupiedSeats counts taken seats in one class.
func (m *Match) OccupiedSeats(class SeatClass) int {
	n := 0
	for _, occupied := range m.seatMap(class) {
		if occupied {
			n++
		}
	}
	return n
}

// SeatCount is the total label count of one class's seat map.
func (m *Match) SeatCount(class SeatClass) int {
	return len(m.seatMap(class))
}

func (m *Match) RegisterTicket(t *Ticket) {
	m.Tickets = append(m.Tickets, t)
}

// TicketByCode returns the registered ticket with that code, or nil.
func (m *Match) TicketByCode(code string) *Ticket {
	for _, t := range m.Tickets {
		if t.Code == code {
			return t
		}
	}
	return nil
}

func (m *Match) String() string {
	return fmt.Sprintf("%s vs %s at %s on %s", m.HomeTeam.Name, m.AwayTeam.Name, m.Stadium.Name, m.Date)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
