// Package descstats computes descriptive statistics over finite samples of
// 64-bit floating-point numbers: the arithmetic mean, an (n-1)-normalized
// spread, the median, and the Euclidean (L2) norm, plus the shared
// squared-deviation reduction backing the spread and the norm.
//
// Every function is pure: no shared state, no side effects, and no mutation of
// the caller's sample. A statistic that is undefined for the given sample is
// reported through sentinel.ErrEmptySample; all other abnormal numeric
// outcomes (NaN, infinities) surface as ordinary floating-point values in the
// result and are deliberately not guarded against.
package descstats

import (
	"math"
	"slices"

	"github.com/hyp3rd/descstats/sentinel"
)

// Func is the common signature of the sample statistics in this package.
// Mean, StdDev, Median, and L2 all satisfy it, so callers can select a
// statistic at runtime and treat them uniformly.
type Func func(sample []float64) (float64, error)

// Mean returns the arithmetic mean of the sample. The mean of an empty sample
// is 0.0 by convention; Mean never returns an error.
//
// The element count is accumulated as a float64 counter incremented once per
// element rather than converted from len(sample). For practical sample sizes
// the two are indistinguishable; the float counter is part of the contract and
// keeps results bit-exact across implementations.
func Mean(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0.0, nil
	}

	var count, sum float64
	for _, v := range sample {
		count++
		sum += v
	}

	return sum / count, nil
}

// StdDev returns the spread of the sample: the sum of squared deviations from
// the sample mean divided by (n-1). Despite the name it is not the
// conventional standard deviation: the result is never square-rooted. The
// spread of an empty sample is undefined and reported as
// sentinel.ErrEmptySample.
//
// A single-element sample divides zero by zero and yields NaN. The division is
// part of the contract and intentionally not guarded; callers needing a
// defined value must supply at least two elements.
func StdDev(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, sentinel.ErrEmptySample
	}

	mean, _ := Mean(sample)

	return SummationPower(sample, mean) / float64(len(sample)-1), nil
}

// Median returns the middle element of the sorted sample, taking the value
// closer to the beginning to break ties: for an even-length sample it returns
// the lower of the two central elements, never their average. The median of an
// empty sample is undefined and reported as sentinel.ErrEmptySample.
//
// The sample is copied before sorting; the caller's slice is left untouched.
// Sorting uses the slices.Sort total order, which places NaN values before all
// others. Callers needing strict NaN semantics should filter their samples
// first.
func Median(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, sentinel.ErrEmptySample
	}

	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	slices.Sort(sorted)

	// Integer division selects the exact middle for odd lengths and the
	// lower central element for even lengths.
	offset := len(sorted) - 1

	return sorted[offset/2], nil
}

// L2 returns the Euclidean (L2) norm of the sample: the square root of the sum
// of squared elements. The norm of an empty sample is 0.0 by convention; L2
// never returns an error.
func L2(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0.0, nil
	}

	return math.Sqrt(SummationPower(sample, 0.0)), nil
}

// SummationPower returns the sum over the sample of the squared deviation of
// each element from offset. It is the shared reduction behind StdDev
// (offset = mean) and L2 (offset = 0). An empty sample sums to 0.0; there is
// no error path, callers interpret emptiness themselves.
func SummationPower(sample []float64, offset float64) float64 {
	var total float64
	for _, v := range sample {
		total += math.Pow(v-offset, 2)
	}

	return total
}
