// Package stats provides the statistical tests and summaries used to
// inspect experiment results.
//
// # Kolmogorov-Smirnov tests
//
// Test whether a sample of tail probabilities is uniform on [0,1]:
//
//	ks, err := stats.KSUniform(pvalues)
//	if ks.PValue < 0.05 {
//	    // the p-values are not compatible with Uniform(0,1)
//	}
//
// Compare two samples:
//
//	ks, err := stats.KolmogorovSmirnov(a, b)
//
// # Summaries
//
// Describe a sample and bin it for a quick histogram:
//
//	summary, _ := stats.Describe(values)
//	hist, _ := stats.Histogram(values, 10)
package stats
