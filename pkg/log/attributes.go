// Package log defines standard attribute keys for dataset generation.
//
// Keys follow a hierarchical naming convention ("data.samples",
// "config.random_seed") so records can be filtered consistently regardless
// of the backend in use.

package log

// Operation context.
const (
	// ComponentKey identifies the package emitting the record.
	// Examples: "datasets", "parallel"
	ComponentKey = "ml.component"

	// OperationKey names the operation being performed.
	// Standard values: "generate", "mask", "sparse_rows"
	OperationKey = "ml.operation"

	// ProblemKey records the problem type of a generated dataset.
	// Standard values: "regression", "classification"
	ProblemKey = "ml.problem"
)

// Data shape and sparsity.
const (
	// SamplesKey is the number of rows (n).
	SamplesKey = "data.samples"

	// FeaturesKey is the number of columns (d).
	FeaturesKey = "data.features"

	// RowNonzeroKey is the number of active features per row.
	RowNonzeroKey = "data.row_nonzero"

	// DataSparsityKey is the requested per-row active fraction.
	DataSparsityKey = "data.sparsity"

	// CoefNonzeroKey is the number of nonzero ground-truth coefficients.
	CoefNonzeroKey = "coef.nonzero"

	// LassoSparsityKey is the retained coefficient fraction in Lasso mode.
	LassoSparsityKey = "coef.lasso_sparsity"

	// NoisyKey records whether Gaussian noise was added to the outputs.
	NoisyKey = "data.noisy"
)

// Performance.
const (
	// DurationMsKey records elapsed time in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrorCodeKey is a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// WarningKey carries a warning value such as errors.SparsityWarning.
	WarningKey = "warning"

	// ErrorTypeKey categorizes the error.
	ErrorTypeKey = "error.type"

	// StacktraceKey carries stack trace information.
	StacktraceKey = "error.stacktrace"
)

// Configuration.
const (
	// RandomSeedKey records the seed for reproducibility.
	RandomSeedKey = "config.random_seed"
)

// Standard attribute values.
const (
	OperationGenerate   = "generate"
	OperationMask       = "mask"
	OperationSparseRows = "sparse_rows"

	ErrorInvalidInput   = "INVALID_INPUT"
	ErrorNumerical      = "NUMERICAL_INSTABILITY"
	ErrorWriteFailed    = "WRITE_FAILED"
	ErrorPanicRecovered = "PANIC_RECOVERED"
)
