package stats

import (
	"errors"

	mstats "github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64 // Sample standard deviation
	Min    float64
	Median float64
	Max    float64
}

// Describe computes descriptive statistics of a sample.
func Describe(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, errors.New("describe: sample must be non-empty")
	}

	data := mstats.Float64Data(values)

	mean, err := data.Mean()
	if err != nil {
		return nil, err
	}
	min, err := data.Min()
	if err != nil {
		return nil, err
	}
	median, err := data.Median()
	if err != nil {
		return nil, err
	}
	max, err := data.Max()
	if err != nil {
		return nil, err
	}

	// A single observation has no sample standard deviation.
	stddev := 0.0
	if len(values) > 1 {
		stddev, err = data.StandardDeviationSample()
		if err != nil {
			return nil, err
		}
	}

	return &Summary{
		N:      len(values),
		Mean:   mean,
		StdDev: stddev,
		Min:    min,
		Median: median,
		Max:    max,
	}, nil
}
