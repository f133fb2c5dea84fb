package sampling

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedConvergesToWeightShare(t *testing.T) {
	s := New(42)
	choices := []Choice[string]{
		{Value: "a", Weight: 1},
		{Value: "b", Weight: 1},
		{Value: "c", Weight: 2},
	}

	const n = 100000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		v, err := Weighted(s, choices)
		require.NoError(t, err)
		counts[v]++
	}

	assert.InDelta(t, 0.5, float64(counts["c"])/n, 0.01)
	assert.InDelta(t, 0.25, float64(counts["a"])/n, 0.01)
	assert.InDelta(t, 0.25, float64(counts["b"])/n, 0.01)
}

func TestWeightedNeverPicksZeroWeight(t *testing.T) {
	s := New(7)
	choices := []Choice[int]{{Value: 1, Weight: 0}, {Value: 2, Weight: 3}, {Value: 3, Weight: 0}}
	for i := 0; i < 1000; i++ {
		v, err := Weighted(s, choices)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
	}
}

func TestWeightedSkipsTrailingZeroWeight(t *testing.T) {
	s := New(9)
	choices := []Choice[string]{{Value: "a", Weight: 0.1}, {Value: "b", Weight: 0.2}, {Value: "c", Weight: 0.3}, {Value: "z", Weight: 0}}
	for i := 0; i < 5000; i++ {
		v, err := Weighted(s, choices)
		require.NoError(t, err)
		assert.NotEqual(t, "z", v)
	}

	top := &Sampler{rand: rand.New(topSource{})}
	v, err := Weighted(top, choices)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

// topSource pins Float64 just below 1.
type topSource struct{}

func (topSource) Int63() int64 { return 1<<63 - 2048 }
func (topSource) Seed(int64) {}

func TestWeightedRejectsBadInput(t *testing.T) {
	s := New(1)

	_, err := Weighted[string](s, nil)
	assert.ErrorIs(t, err, ErrNoChoices)

	_, err = Weighted(s, []Choice[string]{{Value: "x", Weight: 0}})
	assert.ErrorIs(t, err, ErrInvalidWeights)

	_, err = Weighted(s, []Choice[string]{{Value: "x", Weight: -1}, {Value: "y", Weight: 2}})
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

func TestAmountStaysInRangeAndRounded(t *testing.T) {
	s := New(3)
	for i := 0; i < 5000; i++ {
		max := 50.03 * 0.2
		v := s.Amount(0, max)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, max)
		assert.InDelta(t, v, math.Round(v*100)/100, 1e-9)
	}
}

func TestIntBetweenInclusive(t *testing.T) {
	s := New(9)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := s.IntBetween(1, 3)
		require.True(t, v >= 1 && v <= 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 5, s.IntBetween(5, 5))
}

func TestTimestampStaysOnSingleDay(t *testing.T) {
	s := New(11)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	for i := 0; i < 500; i++ {
		ts := s.Timestamp(start, end, DefaultDayWeights, DefaultHourWeights)
		assert.Equal(t, 2024, ts.Year())
		assert.Equal(t, time.January, ts.Month())
		assert.Equal(t, 1, ts.Day())
		assert.Zero(t, ts.Nanosecond())
	}
}

func TestTimestampStaysInsideOffMidnightWindow(t *testing.T) {
	s := New(17)
	start := time.Date(2024, 6, 14, 9, 30, 0, 0, time.UTC)
	end := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		ts := s.Timestamp(start, end, DefaultDayWeights, DefaultHourWeights)
		assert.False(t, ts.Before(start), ts)
		assert.True(t, ts.Before(end), ts)
	}

	short := start.Add(10 * time.Minute)
	for i := 0; i < 200; i++ {
		ts := s.Timestamp(start, short, DefaultDayWeights, DefaultHourWeights)
		assert.False(t, ts.Before(start), ts)
		assert.True(t, ts.Before(short), ts)
	}
	assert.Equal(t, start, s.Timestamp(start, start, DefaultDayWeights, DefaultHourWeights))
}

func TestTimestampTerminatesWithAdversarialWeights(t *testing.T) {
	s := New(5)
	// 2024-01-01 is a Monday; only Saturdays are weighted.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	days := DayWeights{0, 0, 0, 0, 0, 0, 1}

	ts := s.Timestamp(start, end, days, DefaultHourWeights)
	assert.Equal(t, time.Monday, ts.Weekday())
}

func TestTimestampFollowsHourWeights(t *testing.T) {
	s := New(13)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	var hours HourWeights
	hours[19] = 1

	for i := 0; i < 200; i++ {
		ts := s.Timestamp(start, end, DefaultDayWeights, hours)
		assert.Equal(t, 19, ts.Hour())
		assert.False(t, ts.Before(start))
		assert.True(t, ts.Before(end))
	}
}

func TestTimestampFavoursWeightedDays(t *testing.T) {
	s := New(21)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 70)
	days := DayWeights{1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}

	sundays := 0
	const n = 5000
	for i := 0; i < n; i++ {
		if s.Timestamp(start, end, days, DefaultHourWeights).Weekday() == time.Sunday {
			sundays++
		}
	}
	// Expected share is 1/1.6; unweighted it would be 1/7.
	assert.InDelta(t, 1/1.6, float64(sundays)/n, 0.05)
}
