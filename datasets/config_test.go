package datasets

import (
	"encoding/json"
	"testing"

	"github.com/YuminosukeSato/sparsegen/pkg/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataSparsity != 0.1 || cfg.LassoSparsity != 0.1 {
		t.Errorf("unexpected sparsity defaults: %+v", cfg)
	}
	if cfg.Lasso || !cfg.Noisy || cfg.Problem != Regression || cfg.Seed != 1000 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}

	g, err := NewGenerator(WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	if g.Config() != cfg {
		t.Errorf("NewGenerator() config = %+v, want defaults", g.Config())
	}
}

func TestOptionsOverrideConfig(t *testing.T) {
	base := DefaultConfig()
	base.Seed = 5
	base.Problem = Classification

	g, err := NewGenerator(WithConfig(base), WithSeed(6), WithLogger(quietLogger()))
	if err != nil {
		t.Fatal(err)
	}
	if g.Config().Seed != 6 || g.Config().Problem != Classification {
		t.Errorf("options applied in order expected, got %+v", g.Config())
	}
}

func TestConfigCounts(t *testing.T) {
	cfg := Config{DataSparsity: 0.35, Lasso: true, LassoSparsity: 0.2}

	if got := cfg.RowNonzero(20); got != 7 {
		t.Errorf("RowNonzero(20) = %d, want 7", got)
	}
	if got := cfg.LassoZeros(20); got != 16 {
		t.Errorf("LassoZeros(20) = %d, want 16", got)
	}

	cfg.Lasso = false
	if got := cfg.LassoZeros(20); got != 0 {
		t.Errorf("LassoZeros with Lasso off = %d, want 0", got)
	}
}

func TestParseProblem(t *testing.T) {
	tests := []struct {
		in      string
		want    Problem
		wantErr bool
	}{
		{"regression", Regression, false},
		{"Classification", Classification, false},
		{" regression ", Regression, false},
		{"ranking", Regression, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseProblem(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProblem(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidArgument) {
				t.Errorf("error should match ErrInvalidArgument: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseProblem(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfigJSON(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Problem = Classification
	cfg.Lasso = true

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["problem"] != "classification" {
		t.Errorf("problem encoded as %v", raw["problem"])
	}

	var decoded Config
	if err := json.Unmarshal([]byte(`{"data_sparsity":0.2,"problem":"classification","noisy":false,"seed":3}`), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Problem != Classification || decoded.DataSparsity != 0.2 || decoded.Seed != 3 {
		t.Errorf("decoded config = %+v", decoded)
	}

	if err := json.Unmarshal([]byte(`{"problem":"ranking"}`), &decoded); err == nil {
		t.Error("unknown problem should fail to decode")
	}

	if _, err := json.Marshal(Config{Problem: Problem(7)}); err == nil {
		t.Error("unknown problem should fail to encode")
	}
}
