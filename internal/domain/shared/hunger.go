package shared

// HungerState buckets the raw hunger counter
type HungerState int

const (
	HungerStarving HungerState = iota
	HungerNearStarving
	HungerVeryHungry
	HungerHungry
	HungerSatiated
	HungerFull
	HungerVeryFull
	HungerEngorged
)

// Hunger thresholds, upper bounds of each state
const (
	HungerStarvingAt     = 1000
	HungerNearStarvingAt = 1533
	HungerVeryHungryAt   = 2066
	HungerHungryAt       = 2600
	HungerSatiatedAt     = 7000
	HungerFullAt         = 9000
	HungerVeryFullAt     = 11000
	HungerMaximum        = 12000
)

// HungerStateOf buckets a hunger counter
func HungerStateOf(hunger int) HungerState {
	switch {
	case hunger <= HungerStarvingAt:
		return HungerStarving
	case hunger <= HungerNearStarvingAt:
		return HungerNearStarving
	case hunger <= HungerVeryHungryAt:
		return HungerVeryHungry
	case hunger <= HungerHungryAt:
		return HungerHungry
	case hunger < HungerSatiatedAt:
		return HungerSatiated
	case hunger < HungerFullAt:
		return HungerFull
	case hunger < HungerVeryFullAt:
		return HungerVeryFull
	default:
		return HungerEngorged
	}
}

func (h HungerState) String() string {
	switch h {
	case HungerStarving:
		return "starving"
	case HungerNearStarving:
		return "near starving"
	case HungerVeryHungry:
		return "very hungry"
	case HungerHungry:
		return "hungry"
	case HungerSatiated:
		return "satiated"
	case HungerFull:
		return "full"
	case HungerVeryFull:
		return "very full"
	default:
		return "engorged"
	}
}
