//nolint:revive
package special

import (
	"runtime"
	"testing"

	"github.com/cwbudde/algo-logistic/internal/testutil"
	"github.com/cwbudde/algo-logistic/workerpool"
)

var benchSizes = []int{64, 256, 1024, 4096, 16384, 65536}

func BenchmarkLogisticScalarLoop(b *testing.B) {
	for _, n := range benchSizes {
		src := testutil.DeterministicLogOdds(1, 3, n)
		dst := make([]float64, n)
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				for i, x := range src {
					dst[i] = Logistic(x)
				}
			}
		})
	}
}

func BenchmarkLogisticBlock(b *testing.B) {
	for _, n := range benchSizes {
		src := testutil.DeterministicLogOdds(1, 3, n)
		dst := make([]float64, n)
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_ = LogisticBlock(dst, src)
			}
		})
	}
}

func BenchmarkLogisticVec(b *testing.B) {
	// Allocating variant; the per-call allocation shows up in allocs/op.
	for _, n := range benchSizes {
		src := testutil.DeterministicLogOdds(1, 3, n)
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_ = LogisticVec(src)
			}
		})
	}
}

func BenchmarkLogisticFastBlock(b *testing.B) {
	for _, n := range benchSizes {
		src := testutil.DeterministicLogOdds(1, 3, n)
		dst := make([]float64, n)
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_ = LogisticFastBlock(dst, src)
			}
		})
	}
}

func BenchmarkLogisticBlockParallel(b *testing.B) {
	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	for _, n := range benchSizes {
		src := testutil.DeterministicLogOdds(1, 3, n)
		dst := make([]float64, n)
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_ = LogisticBlockParallel(pool, dst, src)
			}
		})
	}
}

func BenchmarkLogitBlock(b *testing.B) {
	for _, n := range benchSizes {
		src := testutil.DeterministicProbabilities(1, n)
		dst := make([]float64, n)
		b.Run(itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				_ = LogitBlock(dst, src)
			}
		})
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
