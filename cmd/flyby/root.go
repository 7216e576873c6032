package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/i474232898/flyby-predictor/internal/config"
	"github.com/i474232898/flyby-predictor/internal/flyby"
	"github.com/i474232898/flyby-predictor/internal/flyby/catalog"
	"github.com/i474232898/flyby-predictor/internal/geocode"
	"github.com/i474232898/flyby-predictor/internal/store"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "flyby",
	Short: "predicts the next satellite imagery capture for a location",
	Long: `
flyby asks the NASA Earth imagery catalog when a location was captured and
predicts the next capture from the mean interval between past captures.
`,
	SilenceUsage: true,
}

func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// components bundles what every command needs.
type components struct {
	cfg     *config.AppConfig
	service *flyby.Service
}

func newComponents() (*components, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Shared HTTP client for outbound catalog calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	nasa := catalog.NewNASAEarthCatalog(httpClient, cfg.NASAAPIKey,
		catalog.WithBaseURL(cfg.CatalogBaseURL),
		catalog.WithWindow(cfg.CatalogBegin, cfg.CatalogEnd),
	)

	var geo flyby.Geocoder
	if cfg.GeocoderAPIKey != "" {
		geo = geocode.NewGoogleGeocoder(cfg.GeocoderAPIKey)
	}

	// In-memory log of served predictions with configured retention.
	memStore := store.NewMemoryStore(cfg.RecentMaxHistory, cfg.RecentMaxAge)

	return &components{
		cfg:     cfg,
		service: flyby.NewService(nasa, memStore, geo),
	}, nil
}
