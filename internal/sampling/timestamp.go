package sampling

import (
	"time"
)

// MaxTimestampAttempts bounds the rejection loop in Timestamp.
const MaxTimestampAttempts = 32

// DayWeights is indexed by time.Weekday (Sunday first).
type DayWeights [7]float64

// HourWeights is indexed by hour of day.
type HourWeights [24]float64

// DefaultDayWeights favours the weekend slightly.
var DefaultDayWeights = DayWeights{0.8, 1.0, 1.0, 1.0, 1.0, 1.2, 1.3}

// DefaultHourWeights peaks at lunch and dinner.
var DefaultHourWeights = HourWeights{
	0.5, 0.3, 0.2, 0.2, 0.3, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 4.0,
	5.0, 4.5, 4.0, 3.5, 3.0, 4.0, 5.5, 6.0, 4.5, 3.0, 2.0, 1.0,
}

func (w DayWeights) max() float64 {
	m := 0.0
	for _, v := range w {
		if v > m {
			m = v
		}
	}
	return m
}

// Uniform returns an instant in [start, end). It returns start when the range is empty.
func (s *Sampler) Uniform(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(s.rand.Int63n(int64(span))))
}

// Timestamp draws an instant in [start, end) shaped by day-of-week and hour-of-day
// intensity. A draw keeps its calendar date and takes a weighted hour with uniform
// minute and second; it is rejected when its weekday loses the intensity roll or
// the new clock time falls outside the window. After MaxTimestampAttempts
// rejections a plain uniform instant in the window is returned.
func (s *Sampler) Timestamp(start, end time.Time, days DayWeights, hours HourWeights) time.Time {
	if !end.After(start) {
		return start
	}
	peak := days.max()

	for attempt := 0; attempt < MaxTimestampAttempts; attempt++ {
		t := s.Uniform(start, end)
		if peak > 0 && s.rand.Float64() >= days[t.Weekday()]/peak {
			continue
		}
		ts := time.Date(t.Year(), t.Month(), t.Day(), s.hour(hours), s.rand.Intn(60), s.rand.Intn(60), 0, t.Location())
		if !ts.Before(start) && ts.Before(end) {
			return ts
		}
	}
	t := s.Uniform(start, end)
	if ts := t.Truncate(time.Second); !ts.Before(start) {
		return ts
	}
	return t
}

func (s *Sampler) hour(hours HourWeights) int {
	choices := make([]Choice[int], len(hours))
	for h, w := range hours {
		choices[h] = Choice[int]{Value: h, Weight: w}
	}
	h, err := Weighted(s, choices)
	if err != nil {
		return 12
	}
	return h
}

// Recent returns an instant within the last days before now.
func (s *Sampler) Recent(now time.Time, days int) time.Time {
	return s.Uniform(now.AddDate(0, 0, -days), now)
}

// Past returns an instant within the last years before now.
func (s *Sampler) Past(now time.Time, years int) time.Time {
	return s.Uniform(now.AddDate(-years, 0, 0), now)
}
