package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statproj/gofit/dataset"
	"github.com/statproj/gofit/fit"
	"github.com/statproj/gofit/rng"
)

func TestRunDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NExp = 200

	a, err := Run(cfg)
	require.NoError(t, err)
	b, err := Run(cfg)
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	for i := range a.Results {
		// Bit-identical, not merely close.
		assert.Equal(t, *a.Results[i].Model, *b.Results[i].Model, "experiment %d", i)
		assert.Equal(t, a.Results[i].ChiSquare, b.Results[i].ChiSquare, "experiment %d", i)
		assert.Equal(t, a.Results[i].DOF, b.Results[i].DOF, "experiment %d", i)
		assert.Equal(t, a.Results[i].PValue, b.Results[i].PValue, "experiment %d", i)
	}
}

func TestRunDrawOrder(t *testing.T) {
	// The first experiment of a run must equal a single pipeline pass on a
	// fresh source with the same seed: draws for experiment i precede those
	// for experiment i+1.
	cfg := DefaultConfig()
	cfg.NExp = 5

	batch, err := Run(cfg)
	require.NoError(t, err)

	src := rng.New(cfg.Seed)
	ds, err := dataset.GenerateLinear(src, cfg.NPoints, cfg.Alpha0, cfg.Alpha1, cfg.SigmaY)
	require.NoError(t, err)
	first, err := fit.FitEvaluate(ds)
	require.NoError(t, err)

	assert.Equal(t, *first.Model, *batch.Results[0].Model)
	assert.Equal(t, first.ChiSquare, batch.Results[0].ChiSquare)
	assert.Equal(t, first.PValue, batch.Results[0].PValue)
}

func TestRunBatchShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NExp = 50

	batch, err := Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, 50, batch.Len())
	assert.Len(t, batch.PValues(), 50)
	assert.Len(t, batch.ChiSquares(), 50)
	assert.Len(t, batch.Intercepts(), 50)
	assert.Len(t, batch.Slopes(), 50)

	for i, r := range batch.Results {
		assert.Equal(t, cfg.NPoints-2, r.DOF, "experiment %d", i)
		assert.GreaterOrEqual(t, r.PValue, 0.0, "experiment %d", i)
		assert.LessOrEqual(t, r.PValue, 1.0, "experiment %d", i)
	}
}

func TestPValueUniformity(t *testing.T) {
	// Under the true model the tail probabilities are Uniform(0,1); a KS
	// test over a thousand experiments should not reject.
	batch, err := Run(DefaultConfig())
	require.NoError(t, err)

	ks, err := batch.PValueUniformity()
	require.NoError(t, err)
	assert.Greater(t, ks.PValue, 0.01,
		"p-values not uniform: D=%f p=%f", ks.Statistic, ks.PValue)
}

func TestDescribePValues(t *testing.T) {
	batch, err := Run(DefaultConfig())
	require.NoError(t, err)

	summary, err := batch.DescribePValues()
	require.NoError(t, err)

	assert.Equal(t, 1000, summary.N)
	// The mean of Uniform(0,1) is 0.5; with 1000 draws the standard error
	// is about 0.009.
	assert.InDelta(t, 0.5, summary.Mean, 0.05)
	assert.GreaterOrEqual(t, summary.Min, 0.0)
	assert.LessOrEqual(t, summary.Max, 1.0)
}

func TestRunFirstFailureAborts(t *testing.T) {
	// Two points per dataset leave zero degrees of freedom; the very first
	// iteration must fail and no partial batch may come back.
	cfg := DefaultConfig()
	cfg.NPoints = 2
	cfg.NExp = 10

	batch, err := Run(cfg)
	assert.Nil(t, batch)
	require.Error(t, err)
	assert.ErrorIs(t, err, fit.ErrInsufficientDOF)
	assert.Contains(t, err.Error(), "experiment 0")
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero points", func(c *Config) { c.NPoints = 0 }},
		{"zero experiments", func(c *Config) { c.NExp = 0 }},
		{"zero sigma", func(c *Config) { c.SigmaY = 0 }},
		{"negative sigma", func(c *Config) { c.SigmaY = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			_, err := Run(cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestRunNilConfigUsesDefault(t *testing.T) {
	batch, err := Run(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().NExp, batch.Len())
}

func TestRunWithSourceContinuesStream(t *testing.T) {
	// Consuming two runs from one source must differ from two fresh runs:
	// the source advances.
	cfg := DefaultConfig()
	cfg.NExp = 10

	src := rng.New(cfg.Seed)
	first, err := RunWithSource(cfg, src)
	require.NoError(t, err)
	second, err := RunWithSource(cfg, src)
	require.NoError(t, err)

	assert.NotEqual(t, first.Results[0].ChiSquare, second.Results[0].ChiSquare)
}
