package dice

// Weighted pairs a value with its relative weight
type Weighted[T any] struct {
	Weight int
	Value  T
}

// ChooseWeighted picks one value with probability proportional to its weight.
// Each candidate replaces the current pick when a draw against the running
// total lands inside its own weight. Entries with a non-positive weight are
// skipped; an empty or all-zero list yields the zero value.
func ChooseWeighted[T any](r Roller, choices []Weighted[T]) T {
	var chosen T
	total := 0

	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}

		total += c.Weight
		if r.Random2(total) < c.Weight {
			chosen = c.Value
		}
	}

	return chosen
}
