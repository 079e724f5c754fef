// Package datasets generates synthetic sparse linear-model datasets for
// exercising regression and classification solvers, Lasso in particular.
//
// A dataset is a data matrix A (n×d), a ground-truth coefficient vector x
// (d) and outputs b (n). Every row of A has exactly floor(d*DataSparsity)
// nonzero entries at independently drawn columns. In Lasso mode
// floor(d*(1-LassoSparsity)) entries of x are zeroed. Outputs are A·x, plus
// standard normal noise when Noisy is set, and reduced to their sign for
// Classification.
//
//	ds, err := datasets.MakeSparseData(1000, 200,
//	    datasets.WithDataSparsity(0.05),
//	    datasets.WithLasso(true),
//	    datasets.WithLassoSparsity(0.1),
//	    datasets.WithSeed(42),
//	)
//
// All randomness comes from a single math/rand/v2 PCG source seeded at the
// start of each Generate call, so identical options reproduce identical
// output. GenerateFrom accepts a caller-owned source instead.
package datasets
