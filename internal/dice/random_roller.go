package dice

import (
	"math/rand"
	"sync"
)

// randomRoller implements Roller over a seeded math/rand source
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from crypto/rand.
// It falls back to a fixed seed if the system source cannot be read.
func NewRandomRoller() Roller {
	seed, err := NewSeed()
	if err != nil {
		seed = 1
	}
	return NewSeededRoller(seed)
}

// NewSeededRoller creates a deterministic roller for replays and tests
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Random2 implements Roller.Random2
func (r *randomRoller) Random2(max int) int {
	if max <= 1 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(max)
}

// Random2Avg implements Roller.Random2Avg
func (r *randomRoller) Random2Avg(max, rolls int) int {
	return Avg(r, max, rolls)
}

// DivRandRound implements Roller.DivRandRound
func (r *randomRoller) DivRandRound(num, den int) int {
	return DivRound(r, num, den)
}

// OneChanceIn implements Roller.OneChanceIn
func (r *randomRoller) OneChanceIn(n int) bool {
	return OneIn(r, n)
}

// XChanceInY implements Roller.XChanceInY
func (r *randomRoller) XChanceInY(x, y int) bool {
	return Chance(r, x, y)
}

// RandomRange implements Roller.RandomRange
func (r *randomRoller) RandomRange(low, high int) int {
	return Between(r, low, high)
}
