// Package special provides the logistic function, its inverse (the logit),
// and element-wise block kernels over float64 slices.
//
// The scalar functions follow IEEE-754 propagation throughout: out-of-domain
// inputs yield NaN or an infinity rather than an error, and extreme inputs
// saturate cleanly. The hot loops perform no per-element domain checks.
//
//   - Logistic(x) = 1 / (1 + exp(-x)), saturating to 0 and 1
//   - Logit(p)    = log(p / (1 - p)), the inverse of Logistic on (0, 1)
//
// # Block kernels
//
// The Block variants write into caller-provided storage and accept any
// aliasing between dst and src, including full in-place use:
//
//	x := []float64{-2, -1, 0, 1, 2}
//	if err := special.LogisticBlock(x, x); err != nil {
//	    // only possible error: dst and src length mismatch
//	}
//
// The Vec variants allocate a fresh output slice instead.
//
// # Parallel evaluation
//
// Large blocks can be split across a persistent worker pool. The split is a
// contiguous chunk per worker, so results are bit-identical to the sequential
// kernel for every worker count:
//
//	pool := workerpool.New(0) // GOMAXPROCS workers
//	defer pool.Close()
//	err := special.LogisticBlockParallel(pool, dst, src)
package special
