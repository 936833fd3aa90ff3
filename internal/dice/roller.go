package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides the random primitives the rules engine draws from.
// This allows us to inject seeded or scripted implementations for testing.
type Roller interface {
	// Random2 returns a uniform value in [0, max). max <= 1 always yields 0.
	Random2(max int) int

	// Random2Avg averages rolls draws below max, biasing toward max/2
	Random2Avg(max, rolls int) int

	// DivRandRound divides num by den, rounding up with probability rem/den
	DivRandRound(num, den int) int

	// OneChanceIn reports a 1-in-n event
	OneChanceIn(n int) bool

	// XChanceInY reports an x-in-y event
	XChanceInY(x, y int) bool

	// RandomRange returns a uniform value in [low, high]
	RandomRange(low, high int) int
}

// Source is the single primitive every derived draw is built on
type Source interface {
	Random2(max int) int
}

// Avg sums one draw below max and rolls-1 draws below max+1, then divides
// by rolls with random rounding.
func Avg(s Source, max, rolls int) int {
	if rolls < 1 {
		rolls = 1
	}

	sum := s.Random2(max)
	for i := 0; i < rolls-1; i++ {
		sum += s.Random2(max + 1)
	}

	return DivRound(s, sum, rolls)
}

// DivRound divides num by den, adding one with probability (num%den)/den
func DivRound(s Source, num, den int) int {
	if den == 0 {
		return 0
	}

	rem := num % den
	if rem == 0 {
		return num / den
	}

	if s.Random2(den) < rem {
		return num/den + 1
	}
	return num / den
}

// OneIn reports a 1-in-n event; n <= 1 always happens
func OneIn(s Source, n int) bool {
	if n <= 1 {
		return true
	}
	return s.Random2(n) == 0
}

// Chance reports an x-in-y event
func Chance(s Source, x, y int) bool {
	if x <= 0 {
		return false
	}
	if x >= y {
		return true
	}
	return s.Random2(y) < x
}

// Between returns a uniform value in [low, high]
func Between(s Source, low, high int) int {
	if high < low {
		low, high = high, low
	}
	return low + s.Random2(high-low+1)
}

// RollDice sums num rolls of a size-sided die
func RollDice(r Roller, num, size int) int {
	if size <= 0 {
		return 0
	}

	total := 0
	for i := 0; i < num; i++ {
		total += 1 + r.Random2(size)
	}
	return total
}
