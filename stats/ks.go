package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// KSResult represents the result of a Kolmogorov-Smirnov test.
type KSResult struct {
	Statistic float64 // Largest distance between the cumulative distributions
	PValue    float64
	N1        int
	N2        int // 0 for one-sample tests
}

// KolmogorovSmirnov performs the two-sample Kolmogorov-Smirnov test. The
// null hypothesis is that both samples are drawn from the same continuous
// distribution.
func KolmogorovSmirnov(x, y []float64) (*KSResult, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, errors.New("kolmogorov-smirnov: both samples must be non-empty")
	}

	xs := sortedCopy(x)
	ys := sortedCopy(y)
	d := stat.KolmogorovSmirnov(xs, nil, ys, nil)

	n1, n2 := float64(len(x)), float64(len(y))
	ne := n1 * n2 / (n1 + n2)

	return &KSResult{
		Statistic: d,
		PValue:    kolmogorovSurvival(ksLambda(ne, d)),
		N1:        len(x),
		N2:        len(y),
	}, nil
}

// KSUniform performs the one-sample Kolmogorov-Smirnov test of a sample
// against the Uniform(0,1) distribution. Under a correct model, the tail
// probabilities of repeated experiments follow exactly this distribution.
func KSUniform(sample []float64) (*KSResult, error) {
	n := len(sample)
	if n == 0 {
		return nil, errors.New("kolmogorov-smirnov: sample must be non-empty")
	}

	xs := sortedCopy(sample)
	if xs[0] < 0 || xs[n-1] > 1 {
		return nil, fmt.Errorf("kolmogorov-smirnov: sample values outside [0,1]: [%g, %g]",
			xs[0], xs[n-1])
	}

	// D = sup |F_n(x) - x| over the sorted sample.
	d := 0.0
	for i, v := range xs {
		above := float64(i+1)/float64(n) - v
		below := v - float64(i)/float64(n)
		d = math.Max(d, math.Max(above, below))
	}

	return &KSResult{
		Statistic: d,
		PValue:    kolmogorovSurvival(ksLambda(float64(n), d)),
		N1:        n,
	}, nil
}

// ksLambda applies the finite-sample correction to the KS statistic before
// it is handed to the asymptotic Kolmogorov distribution, with ne the
// effective sample size.
func ksLambda(ne, d float64) float64 {
	sq := math.Sqrt(ne)
	return (sq + 0.12 + 0.11/sq) * d
}

// kolmogorovSurvival evaluates the survival function of the Kolmogorov
// distribution,
//
//	Q(lambda) = 2 * sum_{j>=1} (-1)^(j-1) * exp(-2 j^2 lambda^2)
//
// via its alternating series. The terms decay doubly exponentially, so a
// hundred terms is far more than the worst case needs.
func kolmogorovSurvival(lambda float64) float64 {
	if lambda <= 0 {
		return 1
	}

	maxIter := 100
	eps := 1e-12

	sum := 0.0
	sign := 1.0
	for j := 1; j <= maxIter; j++ {
		term := sign * math.Exp(-2*float64(j*j)*lambda*lambda)
		sum += term
		if math.Abs(term) < eps {
			break
		}
		sign = -sign
	}

	p := 2 * sum
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

// sortedCopy returns the values sorted ascending without mutating the input.
func sortedCopy(values []float64) []float64 {
	result := make([]float64, len(values))
	copy(result, values)
	sort.Float64s(result)
	return result
}
