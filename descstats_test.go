package descstats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/descstats"
	"github.com/hyp3rd/descstats/sentinel"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		expected float64
	}{
		{
			name:     "empty sample is 0 by convention",
			sample:   []float64{},
			expected: 0.0,
		},
		{
			name:     "single element",
			sample:   []float64{42.5},
			expected: 42.5,
		},
		{
			name:     "symmetric sample",
			sample:   []float64{-1.0, 1.0},
			expected: 0.0,
		},
		{
			name:     "constant sample",
			sample:   []float64{1.0, 1.0, 1.0},
			expected: 1.0,
		},
		{
			name:     "mixed sample",
			sample:   []float64{-3.0, -1.0, 1.0, 5.0},
			expected: 0.5,
		},
		{
			name:     "positive mean",
			sample:   []float64{-1.0, 1.0, 7.0, 2.0, -3.0},
			expected: 1.2,
		},
		{
			name:     "negative mean",
			sample:   []float64{-1.0, 1.0, -7.0, 2.0, -3.0},
			expected: -1.6,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := descstats.Mean(test.sample)
			assert.Nil(t, err)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestMean_ReorderInvariance(t *testing.T) {
	forward, err := descstats.Mean([]float64{-3.0, -1.0, 1.0, 5.0})
	assert.Nil(t, err)

	backward, err := descstats.Mean([]float64{5.0, 1.0, -1.0, -3.0})
	assert.Nil(t, err)

	assert.Equal(t, forward, backward)
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		expected float64
	}{
		{
			name:     "constant sample has zero spread",
			sample:   []float64{1.0, 1.0},
			expected: 0.0,
		},
		{
			name:     "two elements",
			sample:   []float64{2.0, -1.0},
			expected: 4.5,
		},
		{
			name:     "three elements",
			sample:   []float64{1.0, 1.0, -5.0},
			expected: 12.0,
		},
		{
			name:     "four elements",
			sample:   []float64{1.0, 1.0, -5.0, -10.0},
			expected: 28.25,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := descstats.StdDev(test.sample)
			assert.Nil(t, err)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestStdDev_EmptySample(t *testing.T) {
	_, err := descstats.StdDev([]float64{})
	assert.True(t, errors.Is(err, sentinel.ErrEmptySample))
}

func TestStdDev_SingleElement(t *testing.T) {
	// (n-1) is zero for a single element; the division is deliberately
	// unguarded and yields NaN.
	value, err := descstats.StdDev([]float64{7.0})
	assert.Nil(t, err)
	assert.True(t, math.IsNaN(value))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		expected float64
	}{
		{
			name:     "even length returns lower central element",
			sample:   []float64{0.0, 0.5, -1.0, 1.0},
			expected: 0.0,
		},
		{
			name:     "odd length returns middle element",
			sample:   []float64{0.0, -1.0, 1.0},
			expected: 0.0,
		},
		{
			name:     "seven elements",
			sample:   []float64{0.0, -1.0, 1.0, 3.0, -3.0, 0.5, 0.2},
			expected: 0.2,
		},
		{
			name:     "six elements, no averaging of the central pair",
			sample:   []float64{1.2, 0.0, -1.0, 1.0, 5.0, -3.0},
			expected: 0.0,
		},
		{
			name:     "eight elements, no averaging of the central pair",
			sample:   []float64{1.2, 0.0, -1.0, 1.0, 5.0, -3.0, -0.2, -0.5},
			expected: -0.2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := descstats.Median(test.sample)
			assert.Nil(t, err)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestMedian_EmptySample(t *testing.T) {
	_, err := descstats.Median([]float64{})
	assert.True(t, errors.Is(err, sentinel.ErrEmptySample))
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	sample := []float64{3.0, -1.0, 2.0, 0.0}
	original := []float64{3.0, -1.0, 2.0, 0.0}

	_, err := descstats.Median(sample)
	assert.Nil(t, err)
	assert.Equal(t, original, sample)
}

func TestL2(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		expected float64
	}{
		{
			name:     "empty sample is 0 by convention",
			sample:   []float64{},
			expected: 0.0,
		},
		{
			name:     "single negative element",
			sample:   []float64{-3.0},
			expected: 3.0,
		},
		{
			name:     "pythagorean pair",
			sample:   []float64{-3.0, 4.0},
			expected: 5.0,
		},
		{
			name:     "three elements",
			sample:   []float64{-4.0, -2.0, 4.0},
			expected: 6.0,
		},
		{
			name:     "four elements",
			sample:   []float64{-1.0, 1.0, 1.0, 1.0},
			expected: 2.0,
		},
		{
			name:     "six elements",
			sample:   []float64{-3.0, 4.0, -3.0, 5.0, 1.0, -2.0},
			expected: 8.0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := descstats.L2(test.sample)
			assert.Nil(t, err)
			assert.Equal(t, test.expected, value)
		})
	}
}

func TestSummationPower(t *testing.T) {
	tests := []struct {
		name     string
		sample   []float64
		offset   float64
		expected float64
	}{
		{
			name:     "empty sample sums to zero",
			sample:   []float64{},
			offset:   0.0,
			expected: 0.0,
		},
		{
			name:     "empty sample ignores the offset",
			sample:   []float64{},
			offset:   123.456,
			expected: 0.0,
		},
		{
			name:     "single element, zero offset",
			sample:   []float64{-3.0},
			offset:   0.0,
			expected: 9.0,
		},
		{
			name:     "single element, positive offset",
			sample:   []float64{-3.0},
			offset:   2.0,
			expected: 25.0,
		},
		{
			name:     "two elements, positive offset",
			sample:   []float64{-3.0, 4.0},
			offset:   2.0,
			expected: 29.0,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, descstats.SummationPower(test.sample, test.offset))
		})
	}
}

func TestStatistics_Idempotence(t *testing.T) {
	sample := []float64{0.0, -1.0, 1.0, 3.0, -3.0, 0.5, 0.2}

	for _, statistic := range []descstats.Func{descstats.Mean, descstats.StdDev, descstats.Median, descstats.L2} {
		first, err := statistic(sample)
		assert.Nil(t, err)

		second, err := statistic(sample)
		assert.Nil(t, err)
		assert.Equal(t, first, second)
	}
}
