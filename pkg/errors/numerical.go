package errors

import (
	"math"
)

// CheckNumericalStability returns a NumericalInstabilityError for the first
// NaN or Inf in values, reporting up to ten offending values.
func CheckNumericalStability(operation string, values []float64) error {
	first := -1
	var bad []float64
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if first < 0 {
				first = i
			}
			bad = append(bad, v)
			if len(bad) >= 10 {
				break
			}
		}
	}
	if first >= 0 {
		return NewNumericalInstabilityError(operation, bad, first)
	}
	return nil
}

// CheckMatrix is CheckNumericalStability over a row-major matrix. The
// reported index is the flat offset i*cols+j.
func CheckMatrix(operation string, matrix interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return NewNumericalInstabilityError(operation, []float64{v}, i*cols+j)
			}
		}
	}
	return nil
}
