package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/i474232898/flyby-predictor/internal/flyby"
	"github.com/i474232898/flyby-predictor/internal/scheduler"
)

// landmarks is the watch list used when none is configured.
var landmarks = []flyby.Coordinate{
	{Latitude: 36.098592, Longitude: -112.097796}, // Grand Canyon
	{Latitude: 43.078154, Longitude: -79.075891},  // Niagara Falls
	{Latitude: 36.998979, Longitude: -109.045183}, // Four Corners Monument
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Predicts the next capture for every location of the watch list once",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newComponents()
		if err != nil {
			return err
		}

		locations, places := a.cfg.Locations, a.cfg.Places
		if len(locations) == 0 && len(places) == 0 {
			log.Println("INFO: no watch list configured; using default landmarks")
			locations = landmarks
		}

		sched := scheduler.New(locations, places, a.cfg.WatchInterval, a.service)

		var bar *progressbar.ProgressBar
		if isatty.IsTerminal(os.Stderr.Fd()) {
			bar = progressbar.NewOptions(sched.Len(),
				progressbar.OptionSetDescription("Predicting"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		results := sched.RunOnce(cmd.Context(), func(r scheduler.Result) {
			if bar == nil {
				log.Printf("Predicted %s", r.Label)
				return
			}
			if err := bar.Add(1); err != nil {
				log.Printf("updating progress bar for %s: %v", r.Label, err)
			}
		})

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Printf("%s: %v\n", r.Label, r.Err)
				continue
			}
			fmt.Printf("%s: %s\n", r.Label, r.Prediction)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d predictions failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
