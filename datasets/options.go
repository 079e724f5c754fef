package datasets

import (
	"github.com/YuminosukeSato/sparsegen/pkg/log"
)

// Option configures a Generator.
type Option func(*Generator)

// WithConfig replaces the whole configuration. Later options still apply.
func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

// WithDataSparsity sets the fraction of active features per row.
func WithDataSparsity(p float64) Option {
	return func(g *Generator) {
		g.cfg.DataSparsity = p
	}
}

// WithLasso enables or disables coefficient sparsification.
func WithLasso(lasso bool) Option {
	return func(g *Generator) {
		g.cfg.Lasso = lasso
	}
}

// WithLassoSparsity sets the fraction of coefficients kept nonzero in Lasso mode.
func WithLassoSparsity(p float64) Option {
	return func(g *Generator) {
		g.cfg.LassoSparsity = p
	}
}

// WithProblem selects regression or classification outputs.
func WithProblem(p Problem) Option {
	return func(g *Generator) {
		g.cfg.Problem = p
	}
}

// WithNoise toggles additive standard normal noise on outputs.
func WithNoise(noisy bool) Option {
	return func(g *Generator) {
		g.cfg.Noisy = noisy
	}
}

// WithSeed sets the seed used at the start of every Generate call.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.cfg.Seed = seed
	}
}

// WithLogger sets the logger. Nil keeps the current one.
func WithLogger(l log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithWriter sets the hook called with every generated dataset.
func WithWriter(w Writer) Option {
	return func(g *Generator) {
		if w != nil {
			g.writer = w
		}
	}
}
