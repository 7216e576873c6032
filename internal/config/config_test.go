package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/flyby-predictor/internal/flyby"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NASA_API_KEY", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("WATCH_INTERVAL", "")
	t.Setenv("WATCH_LOCATIONS", "")
	t.Setenv("WATCH_PLACES", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "DEMO_KEY", cfg.NASAAPIKey)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 24*time.Hour, cfg.WatchInterval)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.Locations)
	assert.Empty(t, cfg.Places)
}

func TestLoadWatchList(t *testing.T) {
	t.Setenv("WATCH_LOCATIONS", "36.098592,-112.097796; 43.078154,-79.075891")
	t.Setenv("WATCH_PLACES", "Paris:FR;Montevideo:UY")

	cfg, err := Load()
	require.NoError(t, err)

	wantLocs := []flyby.Coordinate{
		{Latitude: 36.098592, Longitude: -112.097796},
		{Latitude: 43.078154, Longitude: -79.075891},
	}
	if diff := cmp.Diff(wantLocs, cfg.Locations); diff != "" {
		t.Errorf("Locations mismatch (-want +got):\n%s", diff)
	}

	wantPlaces := []flyby.Place{{City: "Paris", Country: "FR"}, {City: "Montevideo", Country: "UY"}}
	if diff := cmp.Diff(wantPlaces, cfg.Places); diff != "" {
		t.Errorf("Places mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"latitude out of range", "WATCH_LOCATIONS", "91,0"},
		{"missing longitude", "WATCH_LOCATIONS", "10"},
		{"place without country", "WATCH_PLACES", "Paris"},
		{"bad timeout", "HTTP_TIMEOUT", "soon"},
		{"bad begin date", "CATALOG_BEGIN_DATE", "01/02/2020"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
