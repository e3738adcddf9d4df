package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statproj/gofit/dataset"
)

// ErrInsufficientDOF reports a dataset with no more observations than the
// model has free parameters.
var ErrInsufficientDOF = errors.New("insufficient degrees of freedom")

// nFreeParams is the number of free parameters of the straight-line model.
const nFreeParams = 2

// Result aggregates a fitted model with its goodness-of-fit measures.
type Result struct {
	Model     *LinearModel
	ChiSquare float64 // Sum of squared standardized residuals
	DOF       int     // Degrees of freedom: N - 2
	PValue    float64 // Upper-tail probability P(X >= ChiSquare | X ~ ChiSquare(DOF))
}

// ChiSquare computes the sum of squared standardized residuals of the model
// on the dataset. Each residual is divided by its own observation's sigma_y,
// so the statistic is correct even when the uncertainties vary.
func ChiSquare(ds *dataset.Dataset, m *LinearModel) float64 {
	chi2 := 0.0
	for _, o := range ds.Obs {
		r := (o.Y - m.At(o.X)) / o.SigmaY
		chi2 += r * r
	}
	return chi2
}

// Evaluate computes the chi-square statistic, degrees of freedom, and tail
// probability of a fitted model on a dataset.
func Evaluate(ds *dataset.Dataset, m *LinearModel) (*Result, error) {
	dof := ds.Len() - nFreeParams
	if dof < 1 {
		return nil, fmt.Errorf("%w: %d observations leave %d degrees of freedom",
			ErrInsufficientDOF, ds.Len(), dof)
	}

	chi2 := ChiSquare(ds, m)
	if math.IsNaN(chi2) || math.IsInf(chi2, 0) {
		return nil, fmt.Errorf("chi-square statistic is not finite: %v", chi2)
	}

	dist := distuv.ChiSquared{K: float64(dof)}

	return &Result{
		Model:     m,
		ChiSquare: chi2,
		DOF:       dof,
		PValue:    dist.Survival(chi2),
	}, nil
}

// FitEvaluate runs the analytic fit and evaluates its goodness of fit.
func FitEvaluate(ds *dataset.Dataset) (*Result, error) {
	m, err := Linear(ds)
	if err != nil {
		return nil, err
	}
	return Evaluate(ds, m)
}
