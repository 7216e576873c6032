package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/flyby-predictor/internal/flyby"
)

var (
	// ErrNotFound is returned when no prediction was served for a coordinate.
	ErrNotFound = errors.New("no predictions for coordinate")
)

// PredictionHistory holds the predictions served for one coordinate, oldest first.
type PredictionHistory struct {
	Predictions []flyby.Prediction
}

// MemoryStore is a concurrency-safe in-memory log of recent predictions.
// It never holds catalog data.
type MemoryStore struct {
	mu sync.RWMutex

	// key: coordinate key, value: history
	data map[string]*PredictionHistory

	// retention configuration
	maxHistory int           // max number of predictions per coordinate
	maxAge     time.Duration // optional max age for predictions

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*PredictionHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// SavePrediction appends a prediction for its coordinate and enforces retention.
func (s *MemoryStore) SavePrediction(p flyby.Prediction) {
	key := p.Coordinate.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[key]
	if !ok {
		history = &PredictionHistory{}
		s.data[key] = history
	}

	history.Predictions = append(history.Predictions, p)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Predictions) > s.maxHistory {
		over := len(history.Predictions) - s.maxHistory
		history.Predictions = history.Predictions[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := s.now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Predictions); i++ {
			if !history.Predictions[i].CreatedAt.Before(cutoff) {
				break
			}
		}
		history.Predictions = history.Predictions[i:]
	}
}

// Recent returns every retained prediction for a coordinate.
func (s *MemoryStore) Recent(c flyby.Coordinate) ([]flyby.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[c.Key()]
	if !ok || len(history.Predictions) == 0 {
		return nil, ErrNotFound
	}

	out := make([]flyby.Prediction, len(history.Predictions))
	copy(out, history.Predictions)
	return out, nil
}

// RecentSince returns the predictions for a coordinate created at or after since.
func (s *MemoryStore) RecentSince(c flyby.Coordinate, since time.Time) ([]flyby.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[c.Key()]
	if !ok || len(history.Predictions) == 0 {
		return nil, ErrNotFound
	}

	var result []flyby.Prediction
	for _, p := range history.Predictions {
		if !p.CreatedAt.Before(since) {
			result = append(result, p)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
