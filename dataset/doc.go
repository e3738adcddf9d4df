// Package dataset provides the observation container, synthetic sample
// generation, and loading of columnar text data.
//
// A Dataset is an ordered sequence of (x, y, sigma_y) observations where
// sigma_y is the known standard deviation of y.
//
// # Synthetic samples
//
// Draw observations from a known straight line with Gaussian noise:
//
//	src := rng.New(42)
//	ds, err := dataset.GenerateLinear(src, 9, 3.6, 0.3, 1.0)
//
// The abscissas are x_i = 1, 2, ..., n and every observation carries the
// same uncertainty sigma.
//
// # Text tables
//
// Load whitespace-delimited numeric columns, one record per line:
//
//	opts := dataset.DefaultTableOptions()
//	opts.SkipRows = 2 // header lines
//	ds, err := dataset.LoadTable("measurements.dat", opts)
//
// When the file carries no uncertainty column, every observation gets
// opts.DefaultSigma.
package dataset
