package shared

import (
	"golang.org/x/text/cases"
)

// Species is the player's race
type Species int

const (
	SpeciesHuman Species = iota
	SpeciesHighElf
	SpeciesDeepElf
	SpeciesDeepDwarf
	SpeciesHillOrc
	SpeciesHalfling
	SpeciesKobold
	SpeciesSpriggan
	SpeciesOgre
	SpeciesTroll
	SpeciesMinotaur
	SpeciesMerfolk
	SpeciesNaga
	SpeciesCentaur
	SpeciesTengu
	SpeciesGargoyle
	SpeciesFormicid
	SpeciesVineStalker
	SpeciesFelid
	SpeciesOctopode
	SpeciesDemigod
	SpeciesDemonspawn
	SpeciesGhoul
	SpeciesMummy
	SpeciesVampire
	SpeciesBaseDraconian
	SpeciesRedDraconian
	SpeciesWhiteDraconian
	SpeciesGreenDraconian
	SpeciesYellowDraconian
	SpeciesGreyDraconian
	SpeciesBlackDraconian
	SpeciesPurpleDraconian
	SpeciesMottledDraconian
	SpeciesPaleDraconian

	numSpecies
)

var speciesNames = [numSpecies]string{
	SpeciesHuman:            "Human",
	SpeciesHighElf:          "High Elf",
	SpeciesDeepElf:          "Deep Elf",
	SpeciesDeepDwarf:        "Deep Dwarf",
	SpeciesHillOrc:          "Hill Orc",
	SpeciesHalfling:         "Halfling",
	SpeciesKobold:           "Kobold",
	SpeciesSpriggan:         "Spriggan",
	SpeciesOgre:             "Ogre",
	SpeciesTroll:            "Troll",
	SpeciesMinotaur:         "Minotaur",
	SpeciesMerfolk:          "Merfolk",
	SpeciesNaga:             "Naga",
	SpeciesCentaur:          "Centaur",
	SpeciesTengu:            "Tengu",
	SpeciesGargoyle:         "Gargoyle",
	SpeciesFormicid:         "Formicid",
	SpeciesVineStalker:      "Vine Stalker",
	SpeciesFelid:            "Felid",
	SpeciesOctopode:         "Octopode",
	SpeciesDemigod:          "Demigod",
	SpeciesDemonspawn:       "Demonspawn",
	SpeciesGhoul:            "Ghoul",
	SpeciesMummy:            "Mummy",
	SpeciesVampire:          "Vampire",
	SpeciesBaseDraconian:    "Draconian",
	SpeciesRedDraconian:     "Red Draconian",
	SpeciesWhiteDraconian:   "White Draconian",
	SpeciesGreenDraconian:   "Green Draconian",
	SpeciesYellowDraconian:  "Yellow Draconian",
	SpeciesGreyDraconian:    "Grey Draconian",
	SpeciesBlackDraconian:   "Black Draconian",
	SpeciesPurpleDraconian:  "Purple Draconian",
	SpeciesMottledDraconian: "Mottled Draconian",
	SpeciesPaleDraconian:    "Pale Draconian",
}

func (s Species) String() string {
	if s < 0 || s >= numSpecies {
		return "Unknown"
	}
	return speciesNames[s]
}

// Plural is used in species-wide refusals ("Formicids cannot teleport.")
func (s Species) Plural() string {
	switch s {
	case SpeciesMerfolk:
		return "Merfolk"
	case SpeciesDeepElf, SpeciesHighElf:
		return s.String()[:len(s.String())-2] + "lves"
	case SpeciesDeepDwarf:
		return "Deep Dwarves"
	default:
		return s.String() + "s"
	}
}

// IsDraconian covers the base and every coloured draconian
func (s Species) IsDraconian() bool {
	return s >= SpeciesBaseDraconian && s <= SpeciesPaleDraconian
}

// UndeadState is the species' resting place on the undead spectrum
func (s Species) UndeadState() UndeadState {
	switch s {
	case SpeciesGhoul:
		return HungryDead
	case SpeciesVampire:
		return SemiUndead
	case SpeciesMummy:
		return Undead
	default:
		return Alive
	}
}

// SpeciesByName resolves a display name case-insensitively
func SpeciesByName(name string) (Species, bool) {
	fold := cases.Fold()
	want := fold.String(name)
	for s := Species(0); s < numSpecies; s++ {
		if fold.String(speciesNames[s]) == want {
			return s, true
		}
	}
	return SpeciesHuman, false
}

// UndeadState places a body on the undead spectrum
type UndeadState int

const (
	Alive UndeadState = iota
	HungryDead
	SemiUndead
	Undead
)
