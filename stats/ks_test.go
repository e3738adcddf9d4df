package stats

import (
	"math"
	"testing"

	"github.com/statproj/gofit/rng"
)

func TestKolmogorovSurvivalKnownValues(t *testing.T) {
	cases := []struct {
		lambda float64
		want   float64
	}{
		{0.5, 0.9639},
		{1.0, 0.2700},
	}

	for _, tc := range cases {
		got := kolmogorovSurvival(tc.lambda)
		if math.Abs(got-tc.want) > 1e-3 {
			t.Errorf("Q(%g) = %f, want %f", tc.lambda, got, tc.want)
		}
	}
}

func TestKolmogorovSurvivalBounds(t *testing.T) {
	if got := kolmogorovSurvival(0); got != 1 {
		t.Errorf("Q(0) = %f, want 1", got)
	}
	if got := kolmogorovSurvival(10); got > 1e-12 {
		t.Errorf("Q(10) = %g, want ~0", got)
	}

	prev := 1.0
	for lambda := 0.1; lambda < 3; lambda += 0.1 {
		got := kolmogorovSurvival(lambda)
		if got < 0 || got > 1 {
			t.Fatalf("Q(%f) = %f outside [0,1]", lambda, got)
		}
		if got > prev {
			t.Fatalf("Q not monotone at lambda=%f", lambda)
		}
		prev = got
	}
}

func TestKSUniformAcceptsUniform(t *testing.T) {
	src := rng.New(42)
	sample := make([]float64, 2000)
	for i := range sample {
		sample[i] = src.Uniform()
	}

	res, err := KSUniform(sample)
	if err != nil {
		t.Fatalf("KSUniform failed: %v", err)
	}
	if res.PValue < 0.01 {
		t.Errorf("uniform sample rejected: D=%f p=%f", res.Statistic, res.PValue)
	}
	if res.N1 != 2000 || res.N2 != 0 {
		t.Errorf("unexpected sample sizes: %d, %d", res.N1, res.N2)
	}
}

func TestKSUniformRejectsNonUniform(t *testing.T) {
	src := rng.New(42)
	sample := make([]float64, 2000)
	for i := range sample {
		u := src.Uniform()
		sample[i] = u * u
	}

	res, err := KSUniform(sample)
	if err != nil {
		t.Fatalf("KSUniform failed: %v", err)
	}
	if res.PValue > 0.01 {
		t.Errorf("squared-uniform sample not rejected: D=%f p=%f", res.Statistic, res.PValue)
	}
}

func TestKSUniformInputValidation(t *testing.T) {
	if _, err := KSUniform(nil); err == nil {
		t.Error("expected error for empty sample")
	}
	if _, err := KSUniform([]float64{0.5, 1.5}); err == nil {
		t.Error("expected error for values outside [0,1]")
	}
	if _, err := KSUniform([]float64{-0.1, 0.5}); err == nil {
		t.Error("expected error for negative values")
	}
}

func TestTwoSampleSameDistribution(t *testing.T) {
	src := rng.New(7)
	a := make([]float64, 1000)
	b := make([]float64, 1000)
	for i := range a {
		a[i] = src.Gaussian(0, 1)
	}
	for i := range b {
		b[i] = src.Gaussian(0, 1)
	}

	res, err := KolmogorovSmirnov(a, b)
	if err != nil {
		t.Fatalf("KolmogorovSmirnov failed: %v", err)
	}
	if res.PValue < 0.01 {
		t.Errorf("same-distribution samples rejected: D=%f p=%f", res.Statistic, res.PValue)
	}
}

func TestTwoSampleDifferentDistribution(t *testing.T) {
	src := rng.New(7)
	a := make([]float64, 1000)
	b := make([]float64, 1000)
	for i := range a {
		a[i] = src.Gaussian(0, 1)
	}
	for i := range b {
		b[i] = src.Gaussian(1, 1)
	}

	res, err := KolmogorovSmirnov(a, b)
	if err != nil {
		t.Fatalf("KolmogorovSmirnov failed: %v", err)
	}
	if res.PValue > 0.01 {
		t.Errorf("shifted samples not rejected: D=%f p=%f", res.Statistic, res.PValue)
	}
}

func TestTwoSampleIdenticalSamples(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}

	res, err := KolmogorovSmirnov(a, a)
	if err != nil {
		t.Fatalf("KolmogorovSmirnov failed: %v", err)
	}
	if res.Statistic != 0 {
		t.Errorf("D = %f for identical samples, want 0", res.Statistic)
	}
	if res.PValue != 1 {
		t.Errorf("p = %f for identical samples, want 1", res.PValue)
	}
}

func TestTwoSampleDoesNotMutateInput(t *testing.T) {
	a := []float64{3, 1, 2}
	b := []float64{2, 3, 1}

	if _, err := KolmogorovSmirnov(a, b); err != nil {
		t.Fatalf("KolmogorovSmirnov failed: %v", err)
	}
	if a[0] != 3 || b[0] != 2 {
		t.Error("input samples were mutated")
	}
}

func TestTwoSampleEmpty(t *testing.T) {
	if _, err := KolmogorovSmirnov(nil, []float64{1}); err == nil {
		t.Error("expected error for empty sample")
	}
}
