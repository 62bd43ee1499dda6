package special

import "github.com/cwbudde/algo-logistic/workerpool"

// MinParallelBlock is the minimum element count before the parallel block
// kernels split work across the pool. Below this the chunk handoff costs more
// than the per-element math and the sequential kernel is used instead.
const MinParallelBlock = 4096

// LogisticBlockParallel evaluates LogisticBlock with the work split into one
// contiguous chunk per pool worker. Each worker writes only its own index
// range of dst, so no locking is needed; the pool joins before return.
//
// A nil pool, or fewer than MinParallelBlock elements, falls back to the
// sequential kernel. The output is bit-identical for every worker count.
func LogisticBlockParallel(pool *workerpool.Pool, dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	if pool == nil || len(src) < MinParallelBlock {
		logisticKernel(dst, src)
		return nil
	}

	pool.ParallelFor(len(src), func(start, end int) {
		logisticKernel(dst[start:end], src[start:end])
	})

	return nil
}

// LogitBlockParallel evaluates LogitBlock across the pool. Semantics match
// LogisticBlockParallel.
func LogitBlockParallel(pool *workerpool.Pool, dst, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	if pool == nil || len(src) < MinParallelBlock {
		logitKernel(dst, src)
		return nil
	}

	pool.ParallelFor(len(src), func(start, end int) {
		logitKernel(dst[start:end], src[start:end])
	})

	return nil
}
