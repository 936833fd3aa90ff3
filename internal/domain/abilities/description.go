package abilities

import (
	"fmt"
	"strconv"
	"strings"
)

// CostContext is the slice of player state the cost descriptions depend on
type CostContext interface {
	MaxHP() int
	MP() int
	// NeedsFood is false for foodless species and for a starving
	// semi-undead, who pay no hunger.
	NeedsFood() bool
	// GoldPrice is the current gold cost of a Gold ability, 0 if unknown
	GoldPrice(id ID) int
	// SacrificePiety is the piety an offered sacrifice grants, 0 if unknown
	SacrificePiety(id ID) int
}

const sacrificePrefix = "Sacrifice "

// QuickChargeMP is the MP spent by Pakellas' Quick Charge: two thirds of
// current MP, at least one.
func QuickChargeMP(currentMP int) int {
	return max(1, currentMP*2/3)
}

// CostDescription is the one-line summary shown in the ability menu
func CostDescription(id ID, c CostContext) string {
	def := Lookup(id)
	var parts []string

	if def.MPCost > 0 {
		parts = append(parts, fmt.Sprintf("%d %sMP", def.MPCost, permanent(def.Flags, FlagPermanentMP)))
	}
	if def.Flags.Has(FlagVariableMP) {
		parts = append(parts, "MP")
	}
	if id == PakellasQuickCharge {
		parts = append(parts, fmt.Sprintf("%d MP", QuickChargeMP(c.MP())))
	}
	if def.HPCost.Any() {
		parts = append(parts, fmt.Sprintf("%d %sHP", def.HPCost.Cost(c.MaxHP()), permanent(def.Flags, FlagPermanentHP)))
	}
	if def.FoodCost > 0 && c.NeedsFood() {
		// amount is randomised, so only the fact of it is shown
		parts = append(parts, "Hunger")
	}
	if def.PietyCost.Any() || def.Flags.Has(FlagPiety) {
		parts = append(parts, "Piety")
	}

	for _, f := range flagWords {
		if def.Flags.Has(f.flag) {
			parts = append(parts, f.word)
		}
	}

	if def.Flags.Has(FlagGold) {
		switch price := c.GoldPrice(id); {
		case price > 0:
			parts = append(parts, fmt.Sprintf("%d Gold", price))
		case id == GozagPotionPetition:
			parts = append(parts, "Free")
		default:
			parts = append(parts, "Gold")
		}
	}

	if def.Flags.Has(FlagSacrifice) {
		parts = append(parts, strings.TrimPrefix(def.Name, sacrificePrefix)+sacrificeText(id, c))
	}

	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

func sacrificeText(id ID, c CostContext) string {
	piety := c.SacrificePiety(id)
	if piety <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%d piety)", piety)
}

var flagWords = []struct {
	flag Flags
	word string
}{
	{FlagBreath, "Breath"},
	{FlagDelay, "Delay"},
	{FlagPain, "Pain"},
	{FlagExhaustion, "Exhaustion"},
	{FlagInstant, "Instant"},
	{FlagFruit, "Fruit"},
	{FlagVariableFruit, "Fruit or Piety"},
	{FlagSkillDrain, "Skill drain"},
}

var flagSentences = []struct {
	flag     Flags
	sentence string
}{
	{FlagBreath, "You must catch your breath between uses of this ability."},
	{FlagDelay, "It takes some time before being effective."},
	{FlagPain, "Using this ability will hurt you."},
	{FlagExhaustion, "It cannot be used when exhausted."},
	{FlagInstant, "It is instantaneous."},
	{FlagConfOK, "You can use it even if confused."},
	{FlagSkillDrain, "It will temporarily drain your skills when used."},
}

// DetailedCostDescription is the multi-line block used by the ability
// help screen.
func DetailedCostDescription(id ID, c CostContext) string {
	def := Lookup(id)
	var b strings.Builder
	haveCost := false

	b.WriteString("This ability costs: ")

	if def.MPCost > 0 {
		haveCost = true
		if def.Flags.Has(FlagPermanentMP) {
			b.WriteString("\nMax MP : ")
		} else {
			b.WriteString("\nMP     : ")
		}
		b.WriteString(strconv.Itoa(def.MPCost))
	}

	if def.HPCost.Any() {
		haveCost = true
		if def.Flags.Has(FlagPermanentHP) {
			b.WriteString("\nMax HP : ")
		} else {
			b.WriteString("\nHP     : ")
		}
		b.WriteString(strconv.Itoa(def.HPCost.Cost(c.MaxHP())))
	}

	if def.FoodCost > 0 && c.NeedsFood() {
		haveCost = true
		b.WriteString("\nHunger : ")
		b.WriteString(HungerCostString(def.FoodCost+def.FoodCost/2, true))
	}

	if def.PietyCost.Any() || def.Flags.Has(FlagPiety) {
		haveCost = true
		b.WriteString("\nPiety  : ")
		if def.Flags.Has(FlagPiety) {
			b.WriteString("variable")
		} else {
			b.WriteString(pietyAmount(def.PietyCost.Average()))
		}
	}

	if def.Flags.Has(FlagGold) {
		haveCost = true
		b.WriteString("\nGold   : ")
		switch price := c.GoldPrice(id); {
		case price > 0:
			b.WriteString(strconv.Itoa(price))
		case id == GozagPotionPetition:
			b.WriteString("free")
		default:
			b.WriteString("variable")
		}
	}

	if !haveCost {
		b.WriteString("nothing.")
	}

	for _, f := range flagSentences {
		if def.Flags.Has(f.flag) {
			b.WriteString("\n")
			b.WriteString(f.sentence)
		}
	}

	return b.String()
}

var hungerBreakpoints = []int{1, 15, 41, 121, 401}

// HungerCostString renders a hunger amount as a five-cell bar
func HungerCostString(hunger int, needsFood bool) string {
	if !needsFood {
		return "N/A"
	}
	bars := 0
	for _, bp := range hungerBreakpoints {
		if hunger >= bp {
			bars++
		}
	}
	if bars == 0 {
		return "None"
	}
	return strings.Repeat("#", bars) + strings.Repeat(".", len(hungerBreakpoints)-bars)
}

func pietyAmount(avg int) string {
	switch {
	case avg > 15:
		return "extremely large"
	case avg > 10:
		return "large"
	case avg > 5:
		return "moderate"
	default:
		return "small"
	}
}

func permanent(f, flag Flags) string {
	if f.Has(flag) {
		return "Permanent "
	}
	return ""
}
