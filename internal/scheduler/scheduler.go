package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/flyby-predictor/internal/flyby"
)

// Predictor is the part of flyby.Service the scheduler needs.
type Predictor interface {
	Predict(ctx context.Context, lat, lon *float64) (flyby.Prediction, error)
	PredictPlace(ctx context.Context, place flyby.Place) (flyby.Prediction, error)
}

// Result is the outcome of one watch list entry.
type Result struct {
	Label      string
	Prediction flyby.Prediction
	Err        error
}

// Scheduler periodically predicts the next capture for the watch list.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Predictor
	locations []flyby.Coordinate
	places    []flyby.Place
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler.
func New(locations []flyby.Coordinate, places []flyby.Place, interval time.Duration, service Predictor) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		locations: locations,
		places:    places,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Len returns the number of watch list entries.
func (s *Scheduler) Len() int {
	return len(s.locations) + len(s.places)
}

// Start schedules the periodic job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.Len() == 0 {
		log.Println("scheduler: no locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 24 * 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running fly-by prediction job")
		for _, r := range s.RunOnce(context.Background(), nil) {
			if r.Err != nil {
				log.Printf("scheduler: prediction failed for %s: %v", r.Label, r.Err)
				continue
			}
			log.Printf("scheduler: %s: %s", r.Label, r.Prediction)
		}
		log.Println("scheduler: completed fly-by prediction job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce predicts every watch list entry concurrently, one catalog call
// each. Results keep the watch list order; done, if set, is called as each
// entry finishes.
func (s *Scheduler) RunOnce(ctx context.Context, done func(Result)) []Result {
	results := make([]Result, s.Len())

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	run := func(i int, label string, predict func(ctx context.Context) (flyby.Prediction, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()

			p, err := predict(ctx)
			r := Result{Label: label, Prediction: p, Err: err}
			results[i] = r

			if done != nil {
				mu.Lock()
				done(r)
				mu.Unlock()
			}
		}()
	}

	for i, loc := range s.locations {
		lat, lon := loc.Latitude, loc.Longitude
		run(i, loc.Key(), func(ctx context.Context) (flyby.Prediction, error) {
			return s.service.Predict(ctx, &lat, &lon)
		})
	}
	for j, place := range s.places {
		place := place
		run(len(s.locations)+j, fmt.Sprintf("%s, %s", place.City, place.Country), func(ctx context.Context) (flyby.Prediction, error) {
			return s.service.PredictPlace(ctx, place)
		})
	}

	wg.Wait()
	return results
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
