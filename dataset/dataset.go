package dataset

// Observation is a single measured point: an abscissa, an ordinate, and the
// ordinate's known standard deviation.
type Observation struct {
	X      float64
	Y      float64
	SigmaY float64
}

// Dataset is an ordered sequence of observations.
type Dataset struct {
	Obs  []Observation
	Name string
}

// New creates a dataset from a slice of observations.
func New(obs []Observation) *Dataset {
	return &Dataset{Obs: obs}
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	return len(d.Obs)
}

// Xs returns the abscissas as a fresh slice.
func (d *Dataset) Xs() []float64 {
	result := make([]float64, len(d.Obs))
	for i, o := range d.Obs {
		result[i] = o.X
	}
	return result
}

// Ys returns the ordinates as a fresh slice.
func (d *Dataset) Ys() []float64 {
	result := make([]float64, len(d.Obs))
	for i, o := range d.Obs {
		result[i] = o.Y
	}
	return result
}

// Sigmas returns the ordinate uncertainties as a fresh slice.
func (d *Dataset) Sigmas() []float64 {
	result := make([]float64, len(d.Obs))
	for i, o := range d.Obs {
		result[i] = o.SigmaY
	}
	return result
}

// Copy creates a deep copy of the dataset.
func (d *Dataset) Copy() *Dataset {
	obs := make([]Observation, len(d.Obs))
	copy(obs, d.Obs)
	return &Dataset{Obs: obs, Name: d.Name}
}
