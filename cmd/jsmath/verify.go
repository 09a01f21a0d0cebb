package main

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"runtime"
	"sync"

	"github.com/pgavlin/jsmath"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

// maxMismatches bounds the number of mismatches reported by a single run.
const maxMismatches = 20

type verifyOptions struct {
	Samples int
	Workers int
	Seed    int64
}

func (o *verifyOptions) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", 0)
	flags.IntVar(&o.Samples, "samples", 1000000, "number of random samples to check")
	flags.IntVar(&o.Workers, "workers", runtime.NumCPU(), "number of concurrent workers")
	flags.Int64Var(&o.Seed, "seed", 1, "seed for the sample generator")
	return flags
}

type mismatch struct {
	Op       string
	Input    float64
	Expected float64
	Actual   float64
}

func (m mismatch) String() string {
	return fmt.Sprintf("%v(%v [%016x]): expected %v, got %v", m.Op, m.Input, math.Float64bits(m.Input), m.Expected, m.Actual)
}

// sample draws an input that exercises both the normal and subnormal float32
// ranges, including values that lie exactly between two float32s.
func sample(r *rand.Rand) float64 {
	var v float64
	switch r.Intn(4) {
	case 0:
		v = math.Float64frombits(r.Uint64())
	case 1:
		m := float64(r.Int63n(1<<24) | 1<<23)
		v = math.Ldexp(m+0.5, r.Intn(300)-170)
	case 2:
		v = math.Ldexp(r.Float64(), r.Intn(300)-170)
	default:
		v = float64(r.Int63n(1<<40)) - 1<<39
	}
	if r.Intn(2) == 0 {
		v = -v
	}
	return v
}

func checkSample(v float64) []mismatch {
	var result []mismatch

	if !math.IsNaN(v) {
		expected, actual := float64(float32(v)), jsmath.Fround(v)
		if !jsmath.SameValue(expected, actual) {
			result = append(result, mismatch{Op: "fround", Input: v, Expected: expected, Actual: actual})
		}
	}

	// Outside the int64 range the conversion is implementation-defined.
	if math.Abs(v) < 1<<63 {
		expected, actual := bits.LeadingZeros32(uint32(int64(v))), jsmath.Clz32(v)
		if expected != actual {
			result = append(result, mismatch{Op: "clz32", Input: v, Expected: float64(expected), Actual: float64(actual)})
		}
	}

	return result
}

// verify checks opts.Samples random inputs split across opts.Workers workers.
// Each worker draws from its own generator seeded from opts.Seed, so a run is
// reproducible for a fixed seed and worker count.
func verify(ctx context.Context, opts *verifyOptions) ([]mismatch, error) {
	if opts.Samples < 0 {
		return nil, fmt.Errorf("--samples must not be negative")
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var mu sync.Mutex
	var mismatches []mismatch

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := opts.Samples / workers
		if w < opts.Samples%workers {
			n++
		}
		r := rand.New(rand.NewSource(opts.Seed + int64(w)))

		g.Go(func() error {
			for i := 0; i < n; i++ {
				if i%4096 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				if m := checkSample(sample(r)); len(m) != 0 {
					mu.Lock()
					mismatches = append(mismatches, m...)
					full := len(mismatches) >= maxMismatches
					mu.Unlock()
					if full {
						return nil
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(mismatches) > maxMismatches {
		mismatches = mismatches[:maxMismatches]
	}
	log.Infof("Checked %d samples with %d workers; %d mismatches.", opts.Samples, workers, len(mismatches))
	return mismatches, nil
}
