package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchday/internal/config"
	"matchday/internal/domain"
)

const teamsFixture = `[
	{"id": "1", "name": "Brazil", "code": "BRA", "group": "G"},
	{"id": "2", "name": "Chile", "code": "CHI", "group": "G"}
]`

// Prices mix JSON numbers and numeric strings, as the dataset does.
const stadiumsFixture = `[
	{
		"id": "5", "name": "Lusail", "city": "Lusail", "capacity": [3, 5],
		"restaurants": [
			{"name": "Grill", "products": [
				{"name": "Beer", "quantity": "330ml", "price": "8.5", "stock": 10, "adicional": "alcoholic"},
				{"name": "Burger", "quantity": "500g", "price": 12, "stock": 5, "adicional": "plate"}
			]}
		]
	}
]`

const matchesFixture = `[
	{"id": "m1", "home": {"id": "1"}, "away": {"id": "2"}, "date": "Mon 21 Nov 2022 16:00", "stadium_id": "5"},
	{"id": "m2", "home": {"id": "9"}, "away": {"id": "2"}, "date": "Tue 22 Nov 2022 16:00", "stadium_id": "5"},
	{"id": "m3", "home": {"id": "9"}, "away": {"id": "8"}, "date": "Wed 23 Nov 2022 16:00", "stadium_id": "5"},
	{"id": "m4", "home": {"id": "1"}, "away": {"id": "2"}, "date": "Thu 24 Nov 2022 16:00", "stadium_id": "99"}
]`

func writeFixtures(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "teams.json"), []byte(teamsFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stadiums.json"), []byte(stadiumsFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "matches.json"), []byte(matchesFixture), 0o644))
}

func newTestLoader(t *testing.T) *Loader {
	t.Helper()

	dir := t.TempDir()
	writeFixtures(t, dir)

	// Cache hits short-circuit the fetch, so no URLs are needed.
	return NewLoader(&config.CatalogConfig{CacheDir: dir})
}

func TestLoaderLoadFromCache(t *testing.T) {
	c := newTestLoader(t).Load(context.Background())

	require.Len(t, c.Teams, 2)
	assert.Equal(t, "BRA", c.Teams[0].FIFACode)

	require.Len(t, c.Stadiums, 1)
	grill := c.Stadiums[0].RestaurantByName("Grill")
	require.NotNil(t, grill)

	beer := grill.ProductByName("Beer")
	require.NotNil(t, beer)
	assert.InDelta(t, 8.5, beer.Price, 1e-9)
	assert.Equal(t, domain.KindAlcoholicDrink, beer.Kind)

	burger := grill.ProductByName("Burger")
	require.NotNil(t, burger)
	assert.InDelta(t, 12, burger.Price, 1e-9)
	assert.Equal(t, domain.KindFood, burger.Kind)
}

func TestLoaderMatchAssembly(t *testing.T) {
	c := newTestLoader(t).Load(context.Background())

	// m1 resolves fully; m2 survives one unknown team; m3 loses both
	// teams and m4 its stadium, so both are skipped.
	require.Len(t, c.Matches, 2)
	assert.Equal(t, "BRCHL", c.Matches[0].ID)
	assert.Same(t, c.Stadiums[0], c.Matches[0].Stadium)
}

func TestLoaderMissingSourceDegrades(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "teams.json"), []byte(teamsFixture), 0o644))

	// No stadium or match cache and no reachable URL: empty collections,
	// no error.
	l := NewLoader(&config.CatalogConfig{
		CacheDir:    dir,
		StadiumsURL: "http://127.0.0.1:0/stadiums.json",
		MatchesURL:  "http://127.0.0.1:0/matches.json",
	})
	c := l.Load(context.Background())

	assert.Len(t, c.Teams, 2)
	assert.Empty(t, c.Stadiums)
	assert.Empty(t, c.Matches)
}
