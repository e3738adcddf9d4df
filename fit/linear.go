package fit

import (
	"errors"
	"math"

	"github.com/statproj/gofit/dataset"
)

// ErrDegenerateDesign reports x values that do not determine a unique line.
var ErrDegenerateDesign = errors.New("degenerate design: x values do not determine a unique line")

// LinearModel holds a fitted straight line y = Alpha0 + Alpha1*x and the
// standard errors of its parameters. Immutable after the fit.
type LinearModel struct {
	Alpha0      float64 // Intercept
	Alpha1      float64 // Slope
	SigmaAlpha0 float64 // Standard error of the intercept
	SigmaAlpha1 float64 // Standard error of the slope
}

// At returns the model prediction at x.
func (m *LinearModel) At(x float64) float64 {
	return m.Alpha0 + m.Alpha1*x
}

// Linear fits a straight line by closed-form least squares.
//
// From the method-of-moments sums S = N, Sx, Sxx, Sy, Sxy and
// Delta = Sxx*S - Sx*Sx:
//
//	alpha0 = (Sy*Sxx - Sxy*Sx) / Delta
//	alpha1 = (Sxy*S - Sy*Sx) / Delta
//	sigma_alpha0 = sigma_y * sqrt(Sxx/Delta)
//	sigma_alpha1 = sigma_y * sqrt(S/Delta)
//
// This is the exact global minimum of the chi-square objective for
// homoscedastic data. The common sigma_y is taken from the first
// observation; the error formulas assume all observations share it
// (weighted least squares for varying uncertainties is out of scope).
func Linear(ds *dataset.Dataset) (*LinearModel, error) {
	n := ds.Len()

	var sx, sxx, sy, sxy float64
	s := float64(n)
	for _, o := range ds.Obs {
		sx += o.X
		sxx += o.X * o.X
		sy += o.Y
		sxy += o.X * o.Y
	}

	// Delta is a difference of large sums, so compare it against their
	// scale rather than against exact zero.
	delta := sxx*s - sx*sx
	if math.Abs(delta) <= 1e-12*sxx*s {
		return nil, ErrDegenerateDesign
	}

	sigma := ds.Obs[0].SigmaY

	return &LinearModel{
		Alpha0:      (sy*sxx - sxy*sx) / delta,
		Alpha1:      (sxy*s - sy*sx) / delta,
		SigmaAlpha0: sigma * math.Sqrt(sxx/delta),
		SigmaAlpha1: sigma * math.Sqrt(s/delta),
	}, nil
}
