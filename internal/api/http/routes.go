package httpapi

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/flyby-predictor/internal/flyby"
	"github.com/i474232898/flyby-predictor/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *flyby.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/flyby", func(c *fiber.Ctx) error {
		var (
			p   flyby.Prediction
			err error
		)

		if c.Query("city") != "" || c.Query("country") != "" {
			place, perr := parsePlaceQuery(c)
			if perr != nil {
				return fiber.NewError(fiber.StatusBadRequest, perr.Error())
			}
			p, err = service.PredictPlace(c.UserContext(), place.toPlace())
		} else {
			q := parseCoordinateQuery(c)
			p, err = service.Predict(c.UserContext(), q.Lat, q.Lon)
		}
		if err != nil {
			return predictionError(err)
		}

		return c.JSON(fiber.Map{
			"prediction": p,
			"message":    p.String(),
		})
	})

	v1.Get("/flyby/recent", func(c *fiber.Ctx) error {
		var req recentQuery
		if err := req.bind(c); err != nil {
			return predictionError(err)
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		var since time.Time
		if req.Since != "" {
			since, _ = time.Parse(time.RFC3339, req.Since)
		}

		predictions, err := service.Recent(req.coord, since)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no predictions for requested coordinate")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch recent predictions")
		}

		return c.JSON(fiber.Map{
			"coordinate":  req.coord,
			"since":       since,
			"predictions": predictions,
		})
	})
}

// predictionError maps the flyby error taxonomy onto HTTP status codes.
func predictionError(err error) error {
	switch {
	case flyby.IsInputError(err):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case flyby.IsInsufficientData(err):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case flyby.IsCatalogError(err):
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	case errors.Is(err, flyby.ErrNoGeocoder):
		return fiber.NewError(fiber.StatusNotImplemented, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to predict next capture")
	}
}

// coordinateQuery holds the raw lat/lon query parameters. A nil field was not supplied.
type coordinateQuery struct {
	Lat *float64
	Lon *float64
}

func parseCoordinateQuery(c *fiber.Ctx) coordinateQuery {
	return coordinateQuery{
		Lat: flyby.ParseComponent(c.Query("lat")),
		Lon: flyby.ParseComponent(c.Query("lon")),
	}
}

// placeQuery holds query parameters for identifying a place by name.
type placeQuery struct {
	City    string `validate:"required"`
	Country string `validate:"required"`
}

func (p placeQuery) toPlace() flyby.Place {
	return flyby.Place{
		City:    p.City,
		Country: p.Country,
	}
}

func parsePlaceQuery(c *fiber.Ctx) (placeQuery, error) {
	var q placeQuery

	q.City = strings.TrimSpace(c.Query("city"))
	q.Country = strings.TrimSpace(c.Query("country"))

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}

// recentQuery holds query parameters for the recent predictions endpoint.
type recentQuery struct {
	coord flyby.Coordinate
	Since string `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

func (r *recentQuery) bind(c *fiber.Ctx) error {
	q := parseCoordinateQuery(c)
	coord, err := flyby.Validate(q.Lat, q.Lon)
	if err != nil {
		return err
	}
	r.coord = coord
	r.Since = c.Query("since")
	return nil
}
