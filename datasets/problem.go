package datasets

import (
	"strings"

	"github.com/YuminosukeSato/sparsegen/pkg/errors"
)

// Problem selects how outputs are post-processed.
type Problem int

const (
	// Regression keeps b = A·x (+ noise) as real values.
	Regression Problem = iota
	// Classification replaces every output with its sign.
	Classification
)

func (p Problem) String() string {
	switch p {
	case Regression:
		return "regression"
	case Classification:
		return "classification"
	default:
		return "unknown"
	}
}

func (p Problem) valid() bool {
	return p == Regression || p == Classification
}

// ParseProblem accepts "regression" or "classification", case-insensitively.
func ParseProblem(s string) (Problem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regression":
		return Regression, nil
	case "classification":
		return Classification, nil
	default:
		return Regression, errors.NewValidationError("problem", "must be regression or classification", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Problem) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, errors.NewValidationError("problem", "unknown problem type", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Problem) UnmarshalText(text []byte) error {
	parsed, err := ParseProblem(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
