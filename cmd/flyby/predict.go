package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/i474232898/flyby-predictor/internal/flyby"
)

var predictOptions struct {
	lat     string
	lon     string
	city    string
	country string
	asJSON  bool
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predicts the next capture for one location",
	Example: `  flyby predict --lat 36.098592 --lon -112.097796
  flyby predict --city Paris --country FR --json`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := newComponents()
		if err != nil {
			return err
		}

		var p flyby.Prediction
		if predictOptions.city != "" || predictOptions.country != "" {
			p, err = a.service.PredictPlace(cmd.Context(), flyby.Place{
				City:    predictOptions.city,
				Country: predictOptions.country,
			})
		} else {
			p, err = a.service.Predict(cmd.Context(),
				flyby.ParseComponent(predictOptions.lat),
				flyby.ParseComponent(predictOptions.lon),
			)
		}
		if err != nil {
			return err
		}

		if predictOptions.asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		fmt.Println(p)
		return nil
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictOptions.lat, "lat", "", "latitude in decimal degrees")
	predictCmd.Flags().StringVar(&predictOptions.lon, "lon", "", "longitude in decimal degrees")
	predictCmd.Flags().StringVar(&predictOptions.city, "city", "", "city to geocode instead of --lat/--lon")
	predictCmd.Flags().StringVar(&predictOptions.country, "country", "", "country of --city")
	predictCmd.Flags().BoolVar(&predictOptions.asJSON, "json", false, "print the full prediction as JSON")
	rootCmd.AddCommand(predictCmd)
}
