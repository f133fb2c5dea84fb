package sampling

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoChoices      = errors.New("no choices to sample from")
	ErrInvalidWeights = errors.New("weights must be non-negative with a positive total")
)

// Choice is a label paired with its relative weight. Weights do not need to sum to 1.
type Choice[T any] struct {
	Value  T
	Weight float64
}

// Sampler owns one random stream. It is not safe for concurrent use.
type Sampler struct {
	rand *rand.Rand
}

// New returns a Sampler seeded with seed, or with the clock when seed is zero.
func New(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rand: rand.New(rand.NewSource(seed))}
}

// Weighted draws one label with probability weight/sum(weights).
func Weighted[T any](s *Sampler, choices []Choice[T]) (T, error) {
	var zero T
	if len(choices) == 0 {
		return zero, ErrNoChoices
	}

	total := 0.0
	for _, c := range choices {
		if c.Weight < 0 {
			return zero, fmt.Errorf("%w: negative weight %v", ErrInvalidWeights, c.Weight)
		}
		total += c.Weight
	}
	if total <= 0 {
		return zero, ErrInvalidWeights
	}

	u := s.rand.Float64() * total
	cum := 0.0
	var last T
	for _, c := range choices {
		if c.Weight == 0 {
			continue
		}
		cum += c.Weight
		if cum >= u {
			return c.Value, nil
		}
		last = c.Value
	}
	// Rounding left cum just below u; the last positive-weight label absorbs it.
	return last, nil
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](s *Sampler, items []T) T {
	return items[s.rand.Intn(len(items))]
}

// IntBetween returns an integer in [min, max].
func (s *Sampler) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rand.Intn(max-min+1)
}

// Intn returns an integer in [0, n).
func (s *Sampler) Intn(n int) int {
	return s.rand.Intn(n)
}

func (s *Sampler) Float(min, max float64) float64 {
	return min + s.rand.Float64()*(max-min)
}

// Amount draws a value in [min, max] rounded to cents. Rounding never escapes the range.
func (s *Sampler) Amount(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	v := decimal.NewFromFloat(s.Float(min, max)).Round(2)
	lo := decimal.NewFromFloat(min).RoundUp(2)
	hi := decimal.NewFromFloat(max).RoundDown(2)
	if lo.GreaterThan(hi) {
		return min
	}
	if v.LessThan(lo) {
		v = lo
	}
	if v.GreaterThan(hi) {
		v = hi
	}
	return v.InexactFloat64()
}

// Chance reports true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.rand.Float64() < p
}

// Alphanumeric returns an upper-case code of length n.
func (s *Sampler) Alphanumeric(n int) string {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[s.rand.Intn(len(alphabet))]
	}
	return string(b)
}
