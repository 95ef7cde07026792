// Package dudect is a small statistical timing test in the style of
// "dude, is my code constant time?": run an operation on inputs from two
// classes in random order, record the durations, and apply Welch's t-test
// to the two distributions. A large |t| means the running time depends on
// the class.
package dudect

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// Threshold is the |t| above which a leak is reported.
const Threshold = 4.5

// Accumulator keeps running means and variances of two classes (Welford).
type Accumulator struct {
	n    [2]float64
	mean [2]float64
	m2   [2]float64
}

// Push adds a sample to class 0 or 1.
func (a *Accumulator) Push(class int, x float64) {
	c := class & 1
	a.n[c]++
	d := x - a.mean[c]
	a.mean[c] += d / a.n[c]
	a.m2[c] += d * (x - a.mean[c])
}

// Count returns the number of samples in class.
func (a *Accumulator) Count(class int) int {
	return int(a.n[class&1])
}

// Mean returns the sample mean of class.
func (a *Accumulator) Mean(class int) float64 {
	return a.mean[class&1]
}

// Variance returns the unbiased sample variance of class.
func (a *Accumulator) Variance(class int) float64 {
	c := class & 1
	if a.n[c] < 2 {
		return 0
	}
	return a.m2[c] / (a.n[c] - 1)
}

// T returns Welch's t statistic, or 0 until both classes have two samples.
func (a *Accumulator) T() float64 {
	if a.n[0] < 2 || a.n[1] < 2 {
		return 0
	}
	se := math.Sqrt(a.Variance(0)/a.n[0] + a.Variance(1)/a.n[1])
	if se == 0 {
		return 0
	}
	return (a.mean[0] - a.mean[1]) / se
}

// Config controls a measurement run.
type Config struct {
	// Samples is the number of timed calls.
	Samples int

	// Percentiles are the crop points. For each p a separate test keeps
	// only samples below the p-th percentile of all measurements, which
	// removes interrupts and other long-tail noise. The uncropped test is
	// always included.
	Percentiles []float64

	// Seed seeds the class schedule.
	Seed int64
}

// DefaultConfig returns the configuration used by the timing tests.
func DefaultConfig() Config {
	return Config{
		Samples:     20000,
		Percentiles: []float64{0.5, 0.75, 0.9, 0.99},
		Seed:        1,
	}
}

// Result summarises a run.
type Result struct {
	// MaxT is the largest |t| over all crops.
	MaxT float64

	// Tests holds one accumulator per crop; Tests[0] is uncropped.
	Tests []Accumulator
}

// Leaky reports whether MaxT exceeds Threshold.
func (r Result) Leaky() bool {
	return r.MaxT > Threshold
}

// Run measures op. For every sample a class is drawn at random, prepare is
// called outside the timed region to produce the input, and op is timed on
// it.
func Run[T any](cfg Config, prepare func(class int) T, op func(T)) Result {
	if cfg.Samples <= 0 {
		cfg = DefaultConfig()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	classes := make([]int, cfg.Samples)
	inputs := make([]T, cfg.Samples)
	for i := range classes {
		classes[i] = rng.Intn(2)
		inputs[i] = prepare(classes[i])
	}

	durations := make([]float64, cfg.Samples)
	for i := range inputs {
		start := time.Now()
		op(inputs[i])
		durations[i] = float64(time.Since(start).Nanoseconds())
	}

	return analyse(cfg.Percentiles, classes, durations)
}

func analyse(percentiles []float64, classes []int, durations []float64) Result {
	sorted := append([]float64(nil), durations...)
	sort.Float64s(sorted)

	cuts := []float64{math.Inf(1)}
	for _, p := range percentiles {
		cuts = append(cuts, percentile(sorted, p))
	}

	res := Result{Tests: make([]Accumulator, len(cuts))}
	for i, d := range durations {
		for j, cut := range cuts {
			if d <= cut {
				res.Tests[j].Push(classes[i], d)
			}
		}
	}
	for _, acc := range res.Tests {
		if t := math.Abs(acc.T()); t > res.MaxT {
			res.MaxT = t
		}
	}
	return res
}

func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(p*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
