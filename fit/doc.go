// Package fit provides analytic least-squares fitting of a straight line
// and chi-square goodness-of-fit evaluation.
//
// For the straight-line model with Gaussian errors the least-squares problem
// has a closed-form solution, so Linear evaluates the exact global minimum
// from the method-of-moments sums with no iteration and no convergence
// criteria. NumericLinear minimizes the same chi-square objective with a
// general-purpose minimizer and exists as a cross-check; on well-posed data
// the two agree to well below 1e-6.
//
// # Fitting and evaluating
//
//	model, err := fit.Linear(ds)
//	res, err := fit.Evaluate(ds, model)
//	fmt.Printf("chi2=%.3f dof=%d p=%.4f\n", res.ChiSquare, res.DOF, res.PValue)
//
// Or in one step:
//
//	res, err := fit.FitEvaluate(ds)
//
// The tail probability is the upper-tail survival of the chi-square
// distribution with N-2 degrees of freedom: exactly 1 at chi2=0 and strictly
// decreasing in chi2.
//
// # Errors
//
// Linear fails with ErrDegenerateDesign when the x values do not determine a
// unique line (all abscissas identical). Evaluate fails with
// ErrInsufficientDOF when the dataset has no more observations than the
// model has parameters.
package fit
