// Command logitcmp compares element-wise, block, allocating, and
// multithreaded evaluation of the logistic and logit functions over a large
// input vector.
//
// Usage:
//
//	logitcmp [flags]
//
// Examples:
//
//	logitcmp
//	logitcmp -n 10000000 -iters 5
//	logitcmp -workers 2 -fast
//	LOGITCMP_WORKERS=8 logitcmp
//
// The worker count and input seed can also be set through the environment
// variables LOGITCMP_WORKERS and LOGITCMP_SEED; flags take precedence.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/cwbudde/algo-logistic/sample"
	"github.com/cwbudde/algo-logistic/special"
	"github.com/cwbudde/algo-logistic/workerpool"
)

type envConfig struct {
	Workers int   `env:"LOGITCMP_WORKERS"`
	Seed    int64 `env:"LOGITCMP_SEED" envDefault:"1"`
}

func main() {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "logitcmp: parse env: %v\n", err)
		os.Exit(1)
	}

	var (
		n       = flag.Int("n", 1_000_000, "number of elements")
		iters   = flag.Int("iters", 10, "timed iterations per variant")
		workers = flag.Int("workers", cfg.Workers, "parallel worker count (0 = GOMAXPROCS)")
		seed    = flag.Int64("seed", cfg.Seed, "input generation seed")
		fast    = flag.Bool("fast", false, "include the approximate fast kernels")
	)
	flag.Parse()

	if *n <= 0 || *iters <= 0 {
		fmt.Fprintln(os.Stderr, "logitcmp: -n and -iters must be > 0")
		os.Exit(1)
	}

	gen := sample.NewGenerator(rand.New(rand.NewSource(*seed)))

	logOdds, err := gen.LogOdds(*n, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logitcmp: %v\n", err)
		os.Exit(1)
	}

	probs, err := gen.Probabilities(*n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logitcmp: %v\n", err)
		os.Exit(1)
	}

	pool := workerpool.New(*workers)
	defer pool.Close()

	dst := make([]float64, *n)

	type variant struct {
		name string
		run  func()
	}

	logisticVariants := []variant{
		{"scalar loop", func() {
			for i, x := range logOdds {
				dst[i] = special.Logistic(x)
			}
		}},
		{"block", func() { _ = special.LogisticBlock(dst, logOdds) }},
		{"vec (allocating)", func() { _ = special.LogisticVec(logOdds) }},
		{fmt.Sprintf("parallel (%d workers)", pool.NumWorkers()), func() {
			_ = special.LogisticBlockParallel(pool, dst, logOdds)
		}},
	}
	if *fast {
		logisticVariants = append(logisticVariants, variant{
			"fast block", func() { _ = special.LogisticFastBlock(dst, logOdds) },
		})
	}

	logitVariants := []variant{
		{"scalar loop", func() {
			for i, p := range probs {
				dst[i] = special.Logit(p)
			}
		}},
		{"block", func() { _ = special.LogitBlock(dst, probs) }},
		{"vec (allocating)", func() { _ = special.LogitVec(probs) }},
		{fmt.Sprintf("parallel (%d workers)", pool.NumWorkers()), func() {
			_ = special.LogitBlockParallel(pool, dst, probs)
		}},
	}
	if *fast {
		logitVariants = append(logitVariants, variant{
			"fast block", func() { _ = special.LogitFastBlock(dst, probs) },
		})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	report := func(title string, variants []variant) {
		fmt.Fprintf(w, "%s, n=%d, %d iterations\n", title, *n, *iters)
		fmt.Fprintln(w, "variant\ttotal\tns/elem\tspeedup")

		var base time.Duration
		for i, v := range variants {
			v.run() // warm up

			start := time.Now()
			for range *iters {
				v.run()
			}
			elapsed := time.Since(start)

			if i == 0 {
				base = elapsed
			}

			perElem := float64(elapsed.Nanoseconds()) / (float64(*n) * float64(*iters))
			fmt.Fprintf(w, "%s\t%v\t%.2f\t%.2fx\n", v.name, elapsed, perElem, float64(base)/float64(elapsed))
		}
		fmt.Fprintln(w)
	}

	report("logistic", logisticVariants)
	report("logit", logitVariants)

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "logitcmp: %v\n", err)
		os.Exit(1)
	}
}
