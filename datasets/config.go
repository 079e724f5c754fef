package datasets

import (
	"math"

	"github.com/YuminosukeSato/sparsegen/pkg/errors"
)

// Defaults used by DefaultConfig.
const (
	DefaultDataSparsity  = 0.1
	DefaultLassoSparsity = 0.1
	DefaultSeed          = 1000
)

// Config holds the generation parameters. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// DataSparsity is the fraction of features active in every row of A.
	DataSparsity float64 `json:"data_sparsity"`

	// Lasso enables zeroing part of the coefficient vector.
	Lasso bool `json:"lasso"`

	// LassoSparsity is the fraction of coefficients kept nonzero in Lasso mode.
	LassoSparsity float64 `json:"lasso_sparsity"`

	Problem Problem `json:"problem"`

	// Noisy adds standard normal noise to every output.
	Noisy bool `json:"noisy"`

	// Seed initialises the random source at the start of every generation.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns the documented defaults: 10% row density, Lasso off,
// regression with noise, seed 1000.
func DefaultConfig() Config {
	return Config{
		DataSparsity:  DefaultDataSparsity,
		Lasso:         false,
		LassoSparsity: DefaultLassoSparsity,
		Problem:       Regression,
		Noisy:         true,
		Seed:          DefaultSeed,
	}
}

// Validate checks every field. Errors match errors.ErrInvalidArgument.
func (c Config) Validate() error {
	if !inUnitInterval(c.DataSparsity) {
		return errors.NewValidationError("data_sparsity", "must be in [0, 1]", c.DataSparsity)
	}
	if c.Lasso && !inUnitInterval(c.LassoSparsity) {
		return errors.NewValidationError("lasso_sparsity", "must be in [0, 1]", c.LassoSparsity)
	}
	if !c.Problem.valid() {
		return errors.NewValidationError("problem", "must be regression or classification", int(c.Problem))
	}
	return nil
}

func inUnitInterval(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// RowNonzero returns floor(d*DataSparsity), the number of active features
// in every row of A.
func (c Config) RowNonzero(d int) int {
	return floorCount(float64(d)*c.DataSparsity, d)
}

// LassoZeros returns floor(d*(1-LassoSparsity)), the number of coefficients
// forced to zero in Lasso mode, or 0 when Lasso is off.
func (c Config) LassoZeros(d int) int {
	if !c.Lasso {
		return 0
	}
	return floorCount(float64(d)*(1-c.LassoSparsity), d)
}

func floorCount(v float64, d int) int {
	k := int(math.Floor(v))
	if k < 0 {
		return 0
	}
	if k > d {
		return d
	}
	return k
}
