package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"matchday/internal/config"
	"matchday/internal/domain"
)

// Payload shapes of the published dataset.

type teamPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	Group string `json:"group"`
}

type productPayload struct {
	Name      string    `json:"name"`
	Quantity  string    `json:"quantity"`
	Price     flexFloat `json:"price"`
	Stock     int       `json:"stock"`
	Adicional string    `json:"adicional"`
}

type restaurantPayload struct {
	Name     string           `json:"name"`
	Products []productPayload `json:"products"`
}

type stadiumPayload struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	City        string              `json:"city"`
	Capacity    []int               `json:"capacity"`
	Restaurants []restaurantPayload `json:"restaurants"`
}

type matchPayload struct {
	ID        string         `json:"id"`
	Home      teamRefPayload `json:"home"`
	Away      teamRefPayload `json:"away"`
	Date      string         `json:"date"`
	StadiumID string         `json:"stadium_id"`
}

type teamRefPayload struct {
	ID string `json:"id"`
}

// flexFloat accepts both JSON numbers and numeric strings; the dataset
// mixes the two for product prices.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*f = flexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// Loader performs the one-shot reference-data load. Each source is
// fetched once and cached on disk; a cached file short-circuits the
// fetch on later runs. Failures degrade to empty collections, logged,
// never fatal.
type Loader struct {
	conf   *config.CatalogConfig
	client *http.Client
}

func NewLoader(conf *config.CatalogConfig) *Loader {
	return &Loader{
		conf: conf,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (l *Loader) Load(ctx context.Context) *Catalog {
	c := &Catalog{}

	var teams []teamPayload
	if err := l.loadSource(ctx, l.conf.TeamsURL, "teams.json", &teams); err != nil {
		zap.L().Warn("catalog: teams unavailable, continuing with none", zap.Error(err))
	}
	for _, t := range teams {
		c.Teams = append(c.Teams, &domain.Team{
			ID:       t.ID,
			Name:     t.Name,
			FIFACode: t.Code,
			Group:    t.Group,
		})
	}

	var stadiums []stadiumPayload
	if err := l.loadSource(ctx, l.conf.StadiumsURL, "stadiums.json", &stadiums); err != nil {
		zap.L().Warn("catalog: stadiums unavailable, continuing with none", zap.Error(err))
	}
	for _, s := range stadiums {
		stadium := &domain.Stadium{
			ID:       s.ID,
			Name:     s.Name,
			Location: s.City,
			Capacity: s.Capacity,
		}
		for _, r := range s.Restaurants {
			restaurant := &domain.Restaurant{Name: r.Name}
			for _, p := range r.Products {
				restaurant.Products = append(restaurant.Products,
					domain.NewProduct(p.Name, p.Quantity, float64(p.Price), p.Stock, p.Adicional))
			}
			stadium.Restaurants = append(stadium.Restaurants, restaurant)
		}
		c.Stadiums = append(c.Stadiums, stadium)
	}

	var matches []matchPayload
	if err := l.loadSource(ctx, l.conf.MatchesURL, "matches.json", &matches); err != nil {
		zap.L().Warn("catalog: matches unavailable, continuing with none", zap.Error(err))
	}
	for _, m := range matches {
		home := c.TeamByID(m.Home.ID)
		away := c.TeamByID(m.Away.ID)
		stadium := c.StadiumByID(m.StadiumID)

		// A match survives one unresolved team but not both, and never
		// an unresolved stadium. Kept exactly as the upstream dataset
		// has always been filtered.
		if home == nil && away == nil || stadium == nil {
			zap.L().Warn("catalog: skipping match with unresolved references",
				zap.String("home", m.Home.ID),
				zap.String("away", m.Away.ID),
				zap.String("stadium", m.StadiumID))
			continue
		}

		// The published dataset resolves both teams in practice; the
		// filter above only drops a match when both are missing. A
		// single unresolved side gets a stub so lookups stay nil-safe.
		if home == nil {
			home = &domain.Team{ID: m.Home.ID, Name: "unknown"}
		}
		if away == nil {
			away = &domain.Team{ID: m.Away.ID, Name: "unknown"}
		}

		c.Matches = append(c.Matches, domain.NewMatch(home, away, m.Date, stadium))
	}

	zap.L().Info("catalog loaded",
		zap.Int("teams", len(c.Teams)),
		zap.Int("stadiums", len(c.Stadiums)),
		zap.Int("matches", len(c.Matches)))

	return c
}

// loadSource reads one dataset from the cache file when present,
// otherwise fetches it and populates the cache.
func (l *Loader) loadSource(ctx context.Context, url, cacheName string, out any) error {
	cachePath := filepath.Join(l.conf.CacheDir, cacheName)

	data, err := os.ReadFile(cachePath)
	if err != nil {
		data, err = l.fetch(ctx, url)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(l.conf.CacheDir, 0o755); err == nil {
			if err := os.WriteFile(cachePath, data, 0o644); err != nil {
				zap.L().Warn("catalog: cache write failed", zap.String("path", cachePath), zap.Error(err))
			}
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("json.Unmarshal %s -> %w", cacheName, err)
	}
	return nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll -> %w", err)
	}
	return body, nil
}
