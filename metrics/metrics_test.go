package metrics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/evenbins/metrics"
)

// TestNumeric_Basic checks counts and means for three dense categories.
func TestNumeric_Basic(t *testing.T) {
	c, err := metrics.Numeric(
		[]int{0, 0, 1, 1, 2, 2},
		[]float64{400, 50, 250, 300, 100, 400},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{0, 1, 2}, c.IDs())
	assert.Equal(t, []int{2, 2, 2}, c.Counts())
	assert.Equal(t, []float64{225, 275, 250}, c.Means())
	assert.Equal(t, 6, c.Total())
}

// TestNumeric_FirstSeenOrder checks descriptor order follows first occurrence.
func TestNumeric_FirstSeenOrder(t *testing.T) {
	c, err := metrics.Numeric([]int{2, 0, 2, 1, 0}, []float64{1, 2, 3, 4, 6})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 0, 1}, c.IDs())
	assert.Equal(t, []int{2, 2, 1}, c.Counts())
	assert.Equal(t, []float64{2, 4, 4}, c.Means())

	i, ok := c.Index(0)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, c.Count(2))
	assert.InDelta(t, 4.0, c.Mean(1), 1e-12)
}

// TestNumeric_UnknownID checks lookups outside the id range.
func TestNumeric_UnknownID(t *testing.T) {
	c, err := metrics.Numeric([]int{0, 1}, []float64{1, 2})
	require.NoError(t, err)

	_, ok := c.Index(2)
	assert.False(t, ok)
	_, ok = c.Index(-1)
	assert.False(t, ok)
	assert.Zero(t, c.Count(7))
	assert.Zero(t, c.Mean(7))
}

// TestTrueRate_Basic checks the boolean scoring mode.
func TestTrueRate_Basic(t *testing.T) {
	labels := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}
	flags := []bool{
		true, false, false, false,
		false, false, false, false,
		true, true, true, true,
	}
	c, err := metrics.TrueRate(labels, flags)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 4, 4}, c.Counts())
	assert.Equal(t, []float64{0.25, 0, 1}, c.Means())
}

// TestSentinels covers every precondition violation.
func TestSentinels(t *testing.T) {
	cases := []struct {
		name   string
		labels []int
		values []float64
		want   error
	}{
		{"empty", nil, nil, metrics.ErrEmptyInput},
		{"mismatch", []int{0, 1}, []float64{1}, metrics.ErrLengthMismatch},
		{"negative", []int{0, -1}, []float64{1, 2}, metrics.ErrNegativeLabel},
		{"gap", []int{0, 2, 2}, []float64{1, 2, 3}, metrics.ErrLabelGap},
		{"max beyond n", []int{0, 5}, []float64{1, 2}, metrics.ErrLabelGap},
		{"missing zero", []int{1, 1}, []float64{1, 2}, metrics.ErrLabelGap},
		{"nan", []int{0, 1}, []float64{1, math.NaN()}, metrics.ErrNonFiniteValue},
		{"inf", []int{0, 1}, []float64{math.Inf(-1), 1}, metrics.ErrNonFiniteValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := metrics.Numeric(tc.labels, tc.values)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := metrics.TrueRate([]int{1}, []bool{true})
	assert.ErrorIs(t, err, metrics.ErrLabelGap)
	_, err = metrics.TrueRate([]int{0}, nil)
	assert.ErrorIs(t, err, metrics.ErrLengthMismatch)
}

// TestNew validates hand-built descriptor sets.
func TestNew(t *testing.T) {
	c, err := metrics.New([]int{1, 0}, []int{3, 1}, []float64{0.5, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Count(1))
	assert.Equal(t, 2.0, c.Mean(0))
	assert.Equal(t, 4, c.Total())

	_, err = metrics.New(nil, nil, nil)
	assert.ErrorIs(t, err, metrics.ErrEmptyInput)
	_, err = metrics.New([]int{0}, []int{1, 2}, []float64{1})
	assert.ErrorIs(t, err, metrics.ErrLengthMismatch)
	_, err = metrics.New([]int{0, 0}, []int{1, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, metrics.ErrLabelGap)
	_, err = metrics.New([]int{0, 2}, []int{1, 1}, []float64{1, 1})
	assert.ErrorIs(t, err, metrics.ErrLabelGap)
	_, err = metrics.New([]int{-1}, []int{1}, []float64{1})
	assert.ErrorIs(t, err, metrics.ErrNegativeLabel)
	_, err = metrics.New([]int{0}, []int{0}, []float64{1})
	assert.ErrorIs(t, err, metrics.ErrBadCount)
	_, err = metrics.New([]int{0}, []int{1}, []float64{math.NaN()})
	assert.ErrorIs(t, err, metrics.ErrNonFiniteValue)
}

// TestAccessorsCopy ensures callers cannot mutate the descriptor set.
func TestAccessorsCopy(t *testing.T) {
	c, err := metrics.Numeric([]int{0, 1}, []float64{1, 2})
	require.NoError(t, err)

	c.IDs()[0] = 9
	c.Counts()[0] = 9
	c.Means()[0] = 9
	assert.Equal(t, []int{0, 1}, c.IDs())
	assert.Equal(t, []int{1, 1}, c.Counts())
	assert.Equal(t, []float64{1, 2}, c.Means())
}
