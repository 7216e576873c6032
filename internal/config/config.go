package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/flyby-predictor/internal/flyby"
)

type AppConfig struct {
	NASAAPIKey     string
	CatalogBaseURL string

	// Optional capture window passed to the catalog (YYYY-MM-DD).
	CatalogBegin string
	CatalogEnd   string

	GeocoderAPIKey string

	// HTTPTimeout bounds each outbound catalog call.
	HTTPTimeout time.Duration

	// WatchInterval controls how often the watch list is predicted.
	WatchInterval time.Duration

	// Watch list, either as coordinates or as places to geocode.
	Locations []flyby.Coordinate
	Places    []flyby.Place

	// Recent prediction retention.
	RecentMaxHistory int           // max number of predictions per coordinate (0 = unlimited)
	RecentMaxAge     time.Duration // max age of predictions (0 = unlimited)

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.NASAAPIKey = getenvDefault("NASA_API_KEY", "DEMO_KEY")
	cfg.CatalogBaseURL = getenvDefault("CATALOG_BASE_URL", "https://api.nasa.gov/planetary/earth/assets")
	cfg.CatalogBegin = os.Getenv("CATALOG_BEGIN_DATE")
	cfg.CatalogEnd = os.Getenv("CATALOG_END_DATE")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	for _, d := range []struct {
		key string
		val string
	}{{"CATALOG_BEGIN_DATE", cfg.CatalogBegin}, {"CATALOG_END_DATE", cfg.CatalogEnd}} {
		if d.val == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d.val); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "30s"); err != nil {
		return nil, err
	}

	// Watch interval: default once a day.
	if cfg.WatchInterval, err = getenvDuration("WATCH_INTERVAL", "24h"); err != nil {
		return nil, err
	}

	cfg.RecentMaxHistory = getenvInt("RECENT_MAX_HISTORY", 20)
	if cfg.RecentMaxAge, err = getenvDuration("RECENT_MAX_AGE", "168h"); err != nil {
		return nil, err
	}

	cfg.Port = getenvDefault("PORT", "8080")

	if cfg.Locations, err = parseLocations(os.Getenv("WATCH_LOCATIONS")); err != nil {
		return nil, err
	}
	if cfg.Places, err = parsePlaces(os.Getenv("WATCH_PLACES")); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseLocations reads "lat,lon;lat,lon" and validates every pair.
func parseLocations(s string) ([]flyby.Coordinate, error) {
	var locs []flyby.Coordinate
	for _, item := range splitList(s) {
		lat, lon, ok := strings.Cut(item, ",")
		if !ok {
			return nil, fmt.Errorf("invalid WATCH_LOCATIONS entry %q: expected lat,lon", item)
		}
		c, err := flyby.ParseCoordinate(lat, lon)
		if err != nil {
			return nil, fmt.Errorf("invalid WATCH_LOCATIONS entry %q: %w", item, err)
		}
		locs = append(locs, c)
	}
	return locs, nil
}

// parsePlaces reads "City:Country;City:Country".
func parsePlaces(s string) ([]flyby.Place, error) {
	var places []flyby.Place
	for _, item := range splitList(s) {
		city, country, ok := strings.Cut(item, ":")
		city, country = strings.TrimSpace(city), strings.TrimSpace(country)
		if !ok || city == "" || country == "" {
			return nil, fmt.Errorf("invalid WATCH_PLACES entry %q: expected City:Country", item)
		}
		places = append(places, flyby.Place{City: city, Country: country})
	}
	return places, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ";") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
