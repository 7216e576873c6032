package flyby

import (
	"slices"
	"time"
)

// Estimate is the intermediate result of a prediction, kept for presentation.
type Estimate struct {
	Next         time.Time
	Last         time.Time
	MeanInterval time.Duration
	Captures     int
}

// EstimateNext projects the next capture from the mean interval between past
// captures. Arithmetic is done in whole milliseconds since the Unix epoch and
// the mean is truncated by integer division, so results are deterministic.
func EstimateNext(records CaptureSet) (Estimate, error) {
	if len(records) < 2 {
		return Estimate{}, &InsufficientDataError{Count: len(records)}
	}

	instants := make([]int64, len(records))
	for i, r := range records {
		instants[i] = r.Date.UnixMilli()
	}
	slices.Sort(instants)

	var sum int64
	for i := 0; i+1 < len(instants); i++ {
		sum += instants[i+1] - instants[i]
	}
	mean := sum / int64(len(instants)-1)

	last := instants[len(instants)-1]
	return Estimate{
		Next:         time.UnixMilli(last + mean).UTC(),
		Last:         time.UnixMilli(last).UTC(),
		MeanInterval: time.Duration(mean) * time.Millisecond,
		Captures:     len(records),
	}, nil
}

// PredictNext returns the predicted instant of the next capture.
func PredictNext(records CaptureSet) (time.Time, error) {
	est, err := EstimateNext(records)
	if err != nil {
		return time.Time{}, err
	}
	return est.Next, nil
}
