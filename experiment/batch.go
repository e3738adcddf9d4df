package experiment

import (
	"github.com/statproj/gofit/fit"
	"github.com/statproj/gofit/stats"
)

// Batch is the ordered collection of fit results from one experiment run.
type Batch struct {
	Results []*fit.Result
}

// Len returns the number of results in the batch.
func (b *Batch) Len() int {
	return len(b.Results)
}

// PValues returns the tail probabilities in run order.
func (b *Batch) PValues() []float64 {
	values := make([]float64, len(b.Results))
	for i, r := range b.Results {
		values[i] = r.PValue
	}
	return values
}

// ChiSquares returns the chi-square statistics in run order.
func (b *Batch) ChiSquares() []float64 {
	values := make([]float64, len(b.Results))
	for i, r := range b.Results {
		values[i] = r.ChiSquare
	}
	return values
}

// Intercepts returns the fitted intercepts in run order.
func (b *Batch) Intercepts() []float64 {
	values := make([]float64, len(b.Results))
	for i, r := range b.Results {
		values[i] = r.Model.Alpha0
	}
	return values
}

// Slopes returns the fitted slopes in run order.
func (b *Batch) Slopes() []float64 {
	values := make([]float64, len(b.Results))
	for i, r := range b.Results {
		values[i] = r.Model.Alpha1
	}
	return values
}

// DescribePValues returns descriptive statistics of the batch p-values.
func (b *Batch) DescribePValues() (*stats.Summary, error) {
	return stats.Describe(b.PValues())
}

// PValueUniformity tests the batch p-values against Uniform(0,1). Under a
// correct model the tail probabilities of repeated experiments are uniform,
// so a small p-value here signals a problem in the pipeline.
func (b *Batch) PValueUniformity() (*stats.KSResult, error) {
	return stats.KSUniform(b.PValues())
}
