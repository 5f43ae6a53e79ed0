// ABOUTME: Synthetic Unix timestamps for formatter records
// ABOUTME: Uniform draw between 2010-01-01 and 2020-12-31 with a wall-clock round-trip
package formatter

import (
	"math"
	"math/rand/v2"
	"time"
)

// RandomSource is the part of *rand.Rand the generator needs.
type RandomSource interface {
	Float64() float64
}

// TimestampGenerator draws epoch seconds uniformly from [lower, upper).
//
// The bounds are midnight on 2010-01-01 and 2020-12-31 in the generator's
// location. Each draw is converted to wall-clock time in that location and
// back to epoch seconds, discarding the sub-second part. Around DST
// transitions the second conversion may resolve an ambiguous wall time to
// a different offset, so results can shift by the transition amount.
type TimestampGenerator struct {
	loc       *time.Location
	rng       RandomSource
	roundTrip bool
	lower     int64
	upper     int64
}

// Option configures a TimestampGenerator.
type Option func(*TimestampGenerator)

// WithLocation interprets the bounds and the round-trip in loc.
// Default: time.Local.
func WithLocation(loc *time.Location) Option {
	return func(g *TimestampGenerator) {
		if loc != nil {
			g.loc = loc
		}
	}
}

// WithRand sets the random source. Default: an unseeded PCG.
func WithRand(r RandomSource) Option {
	return func(g *TimestampGenerator) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed makes the draw sequence reproducible.
func WithSeed(seed int64) Option {
	return func(g *TimestampGenerator) {
		g.rng = rand.New(rand.NewPCG(uint64(seed), 0))
	}
}

// WithoutRoundTrip truncates the raw draw directly instead of converting it
// through wall-clock time.
func WithoutRoundTrip() Option {
	return func(g *TimestampGenerator) { g.roundTrip = false }
}

// NewTimestampGenerator builds a generator. Bounds are computed once.
func NewTimestampGenerator(opts ...Option) *TimestampGenerator {
	g := &TimestampGenerator{
		loc:       time.Local,
		roundTrip: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g.lower = time.Date(2010, time.January, 1, 0, 0, 0, 0, g.loc).Unix()
	g.upper = time.Date(2020, time.December, 31, 0, 0, 0, 0, g.loc).Unix()
	return g
}

// Bounds returns the epoch seconds of the lower and upper calendar bounds.
func (g *TimestampGenerator) Bounds() (lower, upper int64) {
	return g.lower, g.upper
}

// Next returns the next synthetic timestamp.
func (g *TimestampGenerator) Next() int64 {
	raw := float64(g.lower) + float64(g.upper-g.lower)*g.rng.Float64()
	if !g.roundTrip {
		return int64(raw)
	}
	return g.wallClockRoundTrip(raw)
}

func (g *TimestampGenerator) wallClockRoundTrip(raw float64) int64 {
	sec, frac := math.Modf(raw)
	t := time.Unix(int64(sec), int64(frac*1e9)).In(g.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, g.loc).Unix()
}
