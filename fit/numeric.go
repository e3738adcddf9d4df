package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/statproj/gofit/dataset"
)

// NumericLinear fits the straight line by direct numerical minimization of
// the chi-square objective. It exists as a cross-check for Linear, which
// evaluates the same minimum in closed form.
//
// Minimizer contract: Nelder-Mead started at (mean(y), 0), unbounded,
// converged when the objective stops improving by more than 1e-12. The
// parameter standard errors do not come from the minimizer; they are read
// off the inverse of the weighted normal matrix, which for a model linear in
// its parameters is the exact covariance.
func NumericLinear(ds *dataset.Dataset) (*LinearModel, error) {
	n := ds.Len()
	if n < nFreeParams {
		return nil, fmt.Errorf("%w: %d observations for %d parameters",
			ErrDegenerateDesign, n, nFreeParams)
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			return ChiSquare(ds, &LinearModel{Alpha0: p[0], Alpha1: p[1]})
		},
	}

	meanY := 0.0
	for _, o := range ds.Obs {
		meanY += o.Y
	}
	meanY /= float64(n)

	settings := &optimize.Settings{
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-12,
			Iterations: 100,
		},
	}

	result, err := optimize.Minimize(problem, []float64{meanY, 0}, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("numeric fit: %w", err)
	}

	sigmaAlpha0, sigmaAlpha1, err := normalMatrixErrors(ds)
	if err != nil {
		return nil, err
	}

	return &LinearModel{
		Alpha0:      result.X[0],
		Alpha1:      result.X[1],
		SigmaAlpha0: sigmaAlpha0,
		SigmaAlpha1: sigmaAlpha1,
	}, nil
}

// normalMatrixErrors computes the parameter standard errors from the inverse
// of the weighted normal matrix A, with A = [[sum w, sum w*x], [sum w*x,
// sum w*x^2]] and w = 1/sigma_y^2. The chi-square Hessian is 2A, so the
// parameter covariance is A^-1.
func normalMatrixErrors(ds *dataset.Dataset) (float64, float64, error) {
	var a00, a01, a11 float64
	for _, o := range ds.Obs {
		w := 1 / (o.SigmaY * o.SigmaY)
		a00 += w
		a01 += w * o.X
		a11 += w * o.X * o.X
	}

	a := mat.NewSymDense(2, []float64{a00, a01, a01, a11})

	var cov mat.Dense
	if err := cov.Inverse(a); err != nil {
		return 0, 0, fmt.Errorf("%w: normal matrix is singular", ErrDegenerateDesign)
	}

	return math.Sqrt(cov.At(0, 0)), math.Sqrt(cov.At(1, 1)), nil
}
