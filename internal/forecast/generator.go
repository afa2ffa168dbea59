package forecast

import (
	"math/rand/v2"
	"sync"
	"time"
)

// RandomSource returns a uniform integer in [0, n).
type RandomSource interface {
	IntN(n int) int
}

type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

func SystemClock() Clock {
	return ClockFunc(time.Now)
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedSource returns a seeded PCG source that is safe for concurrent use.
func NewLockedSource(seed uint64) RandomSource {
	return &lockedSource{
		rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

type Generator struct {
	rnd   RandomSource
	clock Clock
}

func NewGenerator(rnd RandomSource, clock Clock) *Generator {
	return &Generator{
		rnd:   rnd,
		clock: clock,
	}
}

// Generate returns Days forecasts starting tomorrow. Every temperature and
// summary is drawn independently.
func (g *Generator) Generate() []Forecast {
	today := DateOf(g.clock.Now())

	forecasts := make([]Forecast, 0, Days)
	for i := 1; i <= Days; i++ {
		temperature := MinTemperatureC + g.rnd.IntN(MaxTemperatureC-MinTemperatureC+1)
		summary := Summaries[g.rnd.IntN(len(Summaries))]

		forecasts = append(forecasts, New(today.AddDays(i), temperature, &summary))
	}

	return forecasts
}
