// Package sparsegen generates synthetic sparse linear-model datasets for
// testing regression and classification algorithms in Go.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/sparsegen/datasets"
//	)
//
//	func main() {
//	    ds, err := datasets.MakeSparseData(500, 100,
//	        datasets.WithDataSparsity(0.1),
//	        datasets.WithLasso(true),
//	        datasets.WithNoise(false),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(ds.RowNonzeroCounts()[0]) // 10
//	}
//
// # Packages
//
//   - datasets: row-shuffled masks and the sample synthesizer
//   - pkg/errors: structured errors and warnings on cockroachdb/errors
//   - pkg/log: structured logging with zerolog and log/slog backends
//   - core/parallel: range splitting across goroutines
//
// # Error Handling
//
// Invalid parameters return a *errors.ValidationError that also matches
// errors.ErrInvalidArgument:
//
//	_, err := datasets.MakeSparseData(10, 10, datasets.WithDataSparsity(1.5))
//	if errors.Is(err, errors.ErrInvalidArgument) {
//	    // handle
//	}
package sparsegen
