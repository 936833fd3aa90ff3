// Package abilities is the static table of player abilities: their names,
// resource costs and behavioural flags.
package abilities

import (
	"fmt"

	"github.com/KirkDiggler/crawl-talents/internal/logger"
	"golang.org/x/text/cases"
)

// Lookup returns the definition for id. Unknown IDs resolve to the
// NonAbility row, never nil.
func Lookup(id ID) *Definition {
	for i := range table {
		if table[i].ID == id {
			return &table[i]
		}
	}
	return &table[0]
}

// ByName finds an ability by its display name, ignoring case. It returns
// NonAbility when nothing matches.
func ByName(name string) ID {
	fold := cases.Fold()
	want := fold.String(name)
	for _, def := range table[1:] {
		if fold.String(def.Name) == want {
			return def.ID
		}
	}
	return NonAbility
}

// Name is the display name of id
func Name(id ID) string {
	return Lookup(id).Name
}

// MPCost is the flat magic point cost of id
func MPCost(id ID) int {
	return Lookup(id).MPCost
}

// All returns a copy of the table, sentinel included
func All() []Definition {
	out := make([]Definition, len(table))
	copy(out, table)
	return out
}

// Count is the number of real abilities, excluding the sentinel
func Count() int {
	return len(table) - 1
}

// Validate checks the table once at startup. A broken table is a build
// defect, so it panics rather than returning an error.
func Validate() {
	if len(table) == 0 || table[0].ID != NonAbility {
		panic("abilities: table must start with NonAbility")
	}

	seen := make(map[ID]bool, len(table))
	for _, def := range table {
		if def.ID < NonAbility || def.ID >= numIDs {
			panic(fmt.Sprintf("abilities: id %d out of range", def.ID))
		}
		if seen[def.ID] {
			panic(fmt.Sprintf("abilities: duplicate id %d (%s)", def.ID, def.Name))
		}
		if def.Name == "" {
			panic(fmt.Sprintf("abilities: id %d has no name", def.ID))
		}
		if def.MPCost < 0 || def.FoodCost < 0 {
			panic(fmt.Sprintf("abilities: %s has a negative cost", def.Name))
		}
		seen[def.ID] = true
	}

	for id := NonAbility; id < numIDs; id++ {
		if !seen[id] {
			panic(fmt.Sprintf("abilities: id %d has no table row", id))
		}
	}

	logger.Info("ability table validated", "abilities", Count())
}
