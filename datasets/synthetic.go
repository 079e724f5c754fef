package datasets

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/YuminosukeSato/sparsegen/pkg/errors"
	"github.com/YuminosukeSato/sparsegen/pkg/log"
)

// Generator produces synthetic sparse linear-model datasets. Its
// configuration is fixed at construction, and each Generate call seeds a
// private random source, so a Generator may be shared between goroutines.
type Generator struct {
	cfg    Config
	logger log.Logger
	writer Writer
}

// NewGenerator builds a Generator from DefaultConfig and opts, and
// validates the result.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:    DefaultConfig(),
		logger: log.GetLoggerWithName("datasets"),
		writer: NopWriter{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cfg.Validate(); err != nil {
		g.logger.Warn("invalid generator configuration",
			log.ErrorCodeKey, log.ErrorInvalidInput,
			"error", err,
		)
		return nil, err
	}
	return g, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// NewSource returns the random source Generate uses for seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// MakeSparseData generates one dataset with the given options. It is
// shorthand for NewGenerator followed by Generate.
func MakeSparseData(n, d int, opts ...Option) (*Dataset, error) {
	g, err := NewGenerator(opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(n, d)
}

// Generate draws an n×d dataset from a source freshly seeded with the
// configured seed, so equal arguments always give bit-identical output.
func (g *Generator) Generate(n, d int) (*Dataset, error) {
	return g.GenerateFrom(NewSource(g.cfg.Seed), n, d)
}

// GenerateFrom draws an n×d dataset from rnd, which the caller owns. Draws
// are taken in a fixed order: the dense matrix row by row, one column subset
// per row, the coefficients, the Lasso zero set, then the noise.
//
// rnd must not be used concurrently with this call.
func (g *Generator) GenerateFrom(rnd *rand.Rand, n, d int) (ds *Dataset, err error) {
	defer errors.Recover(&err, "datasets.Generate")

	if err := validateShape(rnd, n, d); err != nil {
		g.logger.Warn("invalid dataset shape",
			log.ErrorCodeKey, log.ErrorInvalidInput,
			log.SamplesKey, n,
			log.FeaturesKey, d,
			"error", err,
		)
		return nil, err
	}

	start := time.Now()
	cfg := g.cfg
	rowNonzero := cfg.RowNonzero(d)
	lassoZeros := cfg.LassoZeros(d)

	if rowNonzero == 0 {
		g.warn(errors.NewSparsityWarning("data_sparsity", cfg.DataSparsity, d))
	}
	if cfg.Lasso && lassoZeros == d {
		g.warn(errors.NewSparsityWarning("lasso_sparsity", cfg.LassoSparsity, d))
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rnd}

	a := mat.NewDense(n, d, drawNormal(normal, n*d))

	mask, err := RowShuffledMask(rnd, n, d, rowNonzero)
	if err != nil {
		return nil, errors.Wrap(err, "draw row mask")
	}
	a.MulElem(a, mask)
	if err := errors.CheckMatrix("datasets.Generate", a, n, d); err != nil {
		g.logger.Error("generated matrix is not finite", err, log.ErrorCodeKey, log.ErrorNumerical)
		return nil, err
	}

	x := mat.NewVecDense(d, drawNormal(normal, d))
	if lassoZeros > 0 {
		zeroed := make([]int, lassoZeros)
		sampleuv.WithoutReplacement(zeroed, d, rnd)
		for _, j := range zeroed {
			x.SetVec(j, 0)
		}
	}

	b := mat.NewVecDense(n, nil)
	b.MulVec(a, x)

	if cfg.Noisy {
		for i := 0; i < n; i++ {
			b.SetVec(i, b.AtVec(i)+normal.Rand())
		}
	}
	if err := errors.CheckNumericalStability("datasets.Generate", b.RawVector().Data); err != nil {
		g.logger.Error("generated outputs are not finite", err, log.ErrorCodeKey, log.ErrorNumerical)
		return nil, err
	}

	if cfg.Problem == Classification {
		for i := 0; i < n; i++ {
			b.SetVec(i, sign(b.AtVec(i)))
		}
	}

	ds = &Dataset{B: b, A: a, X: x, Mask: mask, Config: cfg}

	err = errors.SafeExecute("datasets.WriteData", func() error {
		return g.writer.WriteData(ds)
	})
	if err != nil {
		g.logger.Error("dataset writer failed", err, log.ErrorCodeKey, log.ErrorWriteFailed)
		return nil, errors.Wrap(err, "write dataset")
	}

	g.logger.Debug("dataset generated",
		log.OperationKey, log.OperationGenerate,
		log.SamplesKey, n,
		log.FeaturesKey, d,
		log.RowNonzeroKey, rowNonzero,
		log.CoefNonzeroKey, d-lassoZeros,
		log.ProblemKey, cfg.Problem.String(),
		log.NoisyKey, cfg.Noisy,
		log.RandomSeedKey, cfg.Seed,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return ds, nil
}

// warn logs w on the generator's logger and passes it to any handler
// installed with errors.SetWarningHandler.
func (g *Generator) warn(w *errors.SparsityWarning) {
	g.logger.Warn("sparsity leaves no nonzero entries",
		log.WarningKey, w,
		log.FeaturesKey, w.Size,
	)
	errors.Warn(w)
}

func validateShape(rnd *rand.Rand, n, d int) error {
	if rnd == nil {
		return errors.NewValidationError("rnd", "random source must not be nil", nil)
	}
	if n <= 0 {
		return errors.NewValidationError("n", "must be positive", n)
	}
	if d <= 0 {
		return errors.NewValidationError("d", "must be positive", d)
	}
	return nil
}

func drawNormal(dist distuv.Normal, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// sign maps positive values to 1, negative to -1 and zero to 0.
func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
