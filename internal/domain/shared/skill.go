package shared

// Skill indexes a trainable skill
type Skill int

// SkillNone is returned where no skill corresponds
const SkillNone Skill = -1

const (
	SkillFighting Skill = iota
	SkillDodging
	SkillStealth
	SkillSpellcasting
	SkillConjurations
	SkillHexes
	SkillCharms
	SkillFireMagic
	SkillIceMagic
	SkillTransmutations
	SkillNecromancy
	SkillSummonings
	SkillTranslocations
	SkillPoisonMagic
	SkillEarthMagic
	SkillAirMagic
	SkillInvocations
	SkillEvocations

	NumSkills
)

// MaxSkillLevel is the highest whole level a skill can reach
const MaxSkillLevel = 27

var skillNames = [NumSkills]string{
	SkillFighting:       "Fighting",
	SkillDodging:        "Dodging",
	SkillStealth:        "Stealth",
	SkillSpellcasting:   "Spellcasting",
	SkillConjurations:   "Conjurations",
	SkillHexes:          "Hexes",
	SkillCharms:         "Charms",
	SkillFireMagic:      "Fire Magic",
	SkillIceMagic:       "Ice Magic",
	SkillTransmutations: "Transmutations",
	SkillNecromancy:     "Necromancy",
	SkillSummonings:     "Summonings",
	SkillTranslocations: "Translocations",
	SkillPoisonMagic:    "Poison Magic",
	SkillEarthMagic:     "Earth Magic",
	SkillAirMagic:       "Air Magic",
	SkillInvocations:    "Invocations",
	SkillEvocations:     "Evocations",
}

func (s Skill) String() string {
	if s < 0 || s >= NumSkills {
		return "none"
	}
	return skillNames[s]
}
