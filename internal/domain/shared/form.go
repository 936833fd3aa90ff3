package shared

// Form is a transformation the player's body can be in
type Form int

const (
	FormNone Form = iota
	FormSpider
	FormBladeHands
	FormStatue
	FormIce
	FormDragon
	FormLich
	FormBat
	FormPig
	FormAppendage
	FormTree
	FormPorcupine
	FormWisp
	FormJelly
	FormFungus
	FormShadow
	FormHydra
)

var formNames = map[Form]string{
	FormNone:       "none",
	FormSpider:     "spider",
	FormBladeHands: "blade",
	FormStatue:     "statue",
	FormIce:        "ice",
	FormDragon:     "dragon",
	FormLich:       "lich",
	FormBat:        "bat",
	FormPig:        "pig",
	FormAppendage:  "appendage",
	FormTree:       "tree",
	FormPorcupine:  "porcupine",
	FormWisp:       "wisp",
	FormJelly:      "jelly",
	FormFungus:     "fungus",
	FormShadow:     "shadow",
	FormHydra:      "hydra",
}

func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}
	return "unknown"
}

// ChangesPhysiology reports whether the body is reshaped enough to lose
// racial breath weapons and the like.
func (f Form) ChangesPhysiology() bool {
	switch f {
	case FormNone, FormAppendage, FormBladeHands:
		return false
	default:
		return true
	}
}

// ForbidsFlight reports whether the form cannot become airborne
func (f Form) ForbidsFlight() bool {
	switch f {
	case FormTree, FormFungus, FormJelly:
		return true
	default:
		return false
	}
}

// CanBleed reports whether the form has blood
func (f Form) CanBleed() bool {
	switch f {
	case FormStatue, FormIce, FormLich, FormTree, FormFungus, FormWisp, FormJelly, FormShadow:
		return false
	default:
		return true
	}
}

// StatMods is the strength and dexterity change the form applies
func (f Form) StatMods() (str, dex int) {
	switch f {
	case FormSpider:
		return 0, 5
	case FormStatue:
		return 2, -2
	case FormDragon:
		return 10, 0
	case FormBat:
		return -5, 5
	default:
		return 0, 0
	}
}
