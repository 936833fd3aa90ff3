package mockdice

import (
	"sync"

	"github.com/KirkDiggler/crawl-talents/internal/dice"
)

// ManualMockRoller implements dice.Roller with predetermined Random2 results.
// Every derived draw (averages, rounding, chances) consumes scripted values
// exactly the way the real roller would consume random ones.
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
	fallback  int
}

// NewManualMockRoller creates a new mock roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll queues a single Random2 result
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the queued Random2 results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// SetFallback sets the value used once the queue is exhausted
func (m *ManualMockRoller) SetFallback(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = roll
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
	m.fallback = 0
}

// Used returns how many queued values were consumed
func (m *ManualMockRoller) Used() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rollIndex
}

// Random2 implements dice.Roller.Random2. Scripted values are clamped into
// [0, max) so a script written for one bound cannot escape another.
func (m *ManualMockRoller) Random2(max int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	roll := m.fallback
	if m.rollIndex < len(m.rolls) {
		roll = m.rolls[m.rollIndex]
		m.rollIndex++
	}

	if max <= 1 {
		return 0
	}
	if roll < 0 {
		return 0
	}
	if roll >= max {
		return max - 1
	}
	return roll
}

// Random2Avg implements dice.Roller.Random2Avg
func (m *ManualMockRoller) Random2Avg(max, rolls int) int {
	return dice.Avg(m, max, rolls)
}

// DivRandRound implements dice.Roller.DivRandRound
func (m *ManualMockRoller) DivRandRound(num, den int) int {
	return dice.DivRound(m, num, den)
}

// OneChanceIn implements dice.Roller.OneChanceIn
func (m *ManualMockRoller) OneChanceIn(n int) bool {
	return dice.OneIn(m, n)
}

// XChanceInY implements dice.Roller.XChanceInY
func (m *ManualMockRoller) XChanceInY(x, y int) bool {
	return dice.Chance(m, x, y)
}

// RandomRange implements dice.Roller.RandomRange
func (m *ManualMockRoller) RandomRange(low, high int) int {
	return dice.Between(m, low, high)
}
