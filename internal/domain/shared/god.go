package shared

import (
	"golang.org/x/text/cases"
)

// God is a deity the player may worship
type God int

const (
	GodNone God = iota
	GodZin
	GodShiningOne
	GodKikubaaqudgha
	GodYredelemnul
	GodXom
	GodVehumet
	GodOkawaru
	GodMakhleb
	GodSifMuna
	GodTrog
	GodNemelex
	GodElyvilon
	GodLugonu
	GodBeogh
	GodJiyva
	GodFedhas
	GodCheibriados
	GodAshenzari
	GodDithmenos
	GodGozag
	GodQazlal
	GodRu
	GodPakellas

	NumGods
)

var godNames = [NumGods]string{
	GodNone:          "No God",
	GodZin:           "Zin",
	GodShiningOne:    "The Shining One",
	GodKikubaaqudgha: "Kikubaaqudgha",
	GodYredelemnul:   "Yredelemnul",
	GodXom:           "Xom",
	GodVehumet:       "Vehumet",
	GodOkawaru:       "Okawaru",
	GodMakhleb:       "Makhleb",
	GodSifMuna:       "Sif Muna",
	GodTrog:          "Trog",
	GodNemelex:       "Nemelex Xobeh",
	GodElyvilon:      "Elyvilon",
	GodLugonu:        "Lugonu",
	GodBeogh:         "Beogh",
	GodJiyva:         "Jiyva",
	GodFedhas:        "Fedhas",
	GodCheibriados:   "Cheibriados",
	GodAshenzari:     "Ashenzari",
	GodDithmenos:     "Dithmenos",
	GodGozag:         "Gozag",
	GodQazlal:        "Qazlal",
	GodRu:            "Ru",
	GodPakellas:      "Pakellas",
}

func (g God) String() string {
	if g < 0 || g >= NumGods {
		return "Unknown"
	}
	return godNames[g]
}

// GodByName resolves a god name case-insensitively
func GodByName(name string) (God, bool) {
	fold := cases.Fold()
	want := fold.String(name)
	for g := God(0); g < NumGods; g++ {
		if fold.String(godNames[g]) == want {
			return g, true
		}
	}
	return GodNone, false
}
