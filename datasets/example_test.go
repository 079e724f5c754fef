package datasets_test

import (
	"fmt"

	"github.com/YuminosukeSato/sparsegen/datasets"
	"github.com/YuminosukeSato/sparsegen/pkg/log"
)

func ExampleMakeSparseData() {
	quiet, _ := log.NewTestLogger(log.LevelError)

	ds, err := datasets.MakeSparseData(5, 10,
		datasets.WithDataSparsity(0.3),
		datasets.WithNoise(false),
		datasets.WithSeed(42),
		datasets.WithLogger(quiet),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	n, d := ds.Dims()
	fmt.Println("shape:", n, d)
	fmt.Println("nonzeros per row:", ds.RowNonzeroCounts())
	// Output:
	// shape: 5 10
	// nonzeros per row: [3 3 3 3 3]
}

func ExampleMakeSparseData_lassoClassification() {
	quiet, _ := log.NewTestLogger(log.LevelError)

	ds, err := datasets.MakeSparseData(100, 40,
		datasets.WithLasso(true),
		datasets.WithLassoSparsity(0.25),
		datasets.WithProblem(datasets.Classification),
		datasets.WithLogger(quiet),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	signsOnly := true
	for i := 0; i < ds.B.Len(); i++ {
		if v := ds.B.AtVec(i); v != -1 && v != 0 && v != 1 {
			signsOnly = false
		}
	}
	fmt.Println("nonzero coefficients:", len(ds.CoefficientSupport()))
	fmt.Println("labels are signs:", signsOnly)
	// Output:
	// nonzero coefficients: 10
	// labels are signs: true
}

func ExampleRowShuffledMask() {
	mask, err := datasets.RowShuffledMask(datasets.NewSource(1), 3, 8, 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < 3; i++ {
		fmt.Println(len(mask.Active(i)))
	}
	// Output:
	// 2
	// 2
	// 2
}
