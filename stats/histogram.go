package stats

import "errors"

// Hist is a fixed-width histogram over the sample range.
type Hist struct {
	Counts []int
	Edges  []float64 // len(Counts)+1 bin boundaries
}

// Histogram bins values into the given number of fixed-width bins spanning
// [min, max]. The top edge is inclusive, so the maximum lands in the last
// bin. A constant sample collapses into a single occupied bin.
func Histogram(values []float64, bins int) (*Hist, error) {
	if bins < 1 {
		return nil, errors.New("histogram: bins must be at least 1")
	}
	if len(values) == 0 {
		return nil, errors.New("histogram: sample must be non-empty")
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	edges := make([]float64, bins+1)
	width := (max - min) / float64(bins)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}
	edges[bins] = max

	counts := make([]int, bins)
	for _, v := range values {
		idx := 0
		if width > 0 {
			idx = int((v - min) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}

	return &Hist{Counts: counts, Edges: edges}, nil
}
