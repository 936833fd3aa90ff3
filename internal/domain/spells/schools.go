package spells

import (
	"math/bits"

	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// School is a bitmask of spell disciplines
type School uint16

const (
	SchoolNone          School = 0
	SchoolConjuration   School = 1 << 0
	SchoolHexes         School = 1 << 1
	SchoolCharms        School = 1 << 2
	SchoolFire          School = 1 << 3
	SchoolIce           School = 1 << 4
	SchoolTransmutation School = 1 << 5
	SchoolNecromancy    School = 1 << 6
	SchoolSummoning     School = 1 << 7
	SchoolDivination    School = 1 << 8
	SchoolTranslocation School = 1 << 9
	SchoolPoison        School = 1 << 10
	SchoolEarth         School = 1 << 11
	SchoolAir           School = 1 << 12
	SchoolRandom        School = 1 << 13

	lastSchoolExponent   = 12 // Air
	randomSchoolExponent = 13
)

// SchoolFromExponent returns the single school 1<<exp
func SchoolFromExponent(exp int) School {
	return School(1) << exp
}

// Has reports whether any of the schools in s overlap other
func (s School) Has(other School) bool {
	return s&other != 0
}

// Count is the number of disciplines set
func (s School) Count() int {
	return bits.OnesCount16(uint16(s))
}

type schoolInfo struct {
	short, long string
	skill       shared.Skill
	lockout     shared.Mutation
	lockable    bool
}

var schoolData = map[School]schoolInfo{
	SchoolConjuration:   {"Conj", "Conjuration", shared.SkillConjurations, shared.MutNoConjurationMagic, true},
	SchoolHexes:         {"Hex", "Hexes", shared.SkillHexes, shared.MutNoHexesMagic, true},
	SchoolCharms:        {"Chrm", "Charms", shared.SkillCharms, shared.MutNoCharmMagic, true},
	SchoolFire:          {"Fire", "Fire", shared.SkillFireMagic, shared.MutNoFireMagic, true},
	SchoolIce:           {"Ice", "Ice", shared.SkillIceMagic, shared.MutNoIceMagic, true},
	SchoolTransmutation: {"Trmt", "Transmutation", shared.SkillTransmutations, shared.MutNoTransmutationMagic, true},
	SchoolNecromancy:    {"Necr", "Necromancy", shared.SkillNecromancy, shared.MutNoNecromancyMagic, true},
	SchoolSummoning:     {"Summ", "Summoning", shared.SkillSummonings, shared.MutNoSummoningMagic, true},
	SchoolDivination:    {"Divn", "Divination", shared.SkillNone, 0, false},
	SchoolTranslocation: {"Tloc", "Translocation", shared.SkillTranslocations, shared.MutNoTranslocationMagic, true},
	SchoolPoison:        {"Pois", "Poison", shared.SkillPoisonMagic, shared.MutNoPoisonMagic, true},
	SchoolEarth:         {"Erth", "Earth", shared.SkillEarthMagic, shared.MutNoEarthMagic, true},
	SchoolAir:           {"Air", "Air", shared.SkillAirMagic, shared.MutNoAirMagic, true},
	SchoolRandom:        {"Rndm", "Random", shared.SkillNone, 0, false},
}

// ShortName is the four-letter abbreviation of a single school
func (s School) ShortName() string {
	if info, ok := schoolData[s]; ok {
		return info.short
	}
	return "Bug"
}

// LongName is the full name of a single school
func (s School) LongName() string {
	if info, ok := schoolData[s]; ok {
		return info.long
	}
	return "Bug"
}

// Skill is the skill that trains a single school. Divination has none.
func (s School) Skill() shared.Skill {
	if info, ok := schoolData[s]; ok {
		return info.skill
	}
	return shared.SkillNone
}

// SchoolForSkill is the inverse of Skill
func SchoolForSkill(sk shared.Skill) School {
	if sk == shared.SkillNone {
		return SchoolNone
	}
	for school, info := range schoolData {
		if info.skill == sk {
			return school
		}
	}
	return SchoolNone
}

// Split lists the individual schools in s in exponent order
func (s School) Split() []School {
	var out []School
	for exp := 0; exp <= randomSchoolExponent; exp++ {
		if school := SchoolFromExponent(exp); s.Has(school) {
			out = append(out, school)
		}
	}
	return out
}

// DisciplinesConflict reports whether two school sets combine opposed
// elements: earth with air, or fire with ice.
func DisciplinesConflict(a, b School) bool {
	combined := a | b
	return combined.Has(SchoolEarth) && combined.Has(SchoolAir) ||
		combined.Has(SchoolFire) && combined.Has(SchoolIce)
}

// LockoutMutation is the Ru sacrifice that forbids a school, if any
func LockoutMutation(s School) (shared.Mutation, bool) {
	info, ok := schoolData[s]
	if !ok || !info.lockable {
		return 0, false
	}
	return info.lockout, true
}

// CannotUseSchools reports whether any school in s is locked out by a
// sacrifice mutation the caster has.
func CannotUseSchools(s School, mutationLevel func(shared.Mutation) int) bool {
	for exp := 0; exp <= lastSchoolExponent; exp++ {
		school := SchoolFromExponent(exp)
		if !s.Has(school) {
			continue
		}
		if mut, ok := LockoutMutation(school); ok && mutationLevel(mut) > 0 {
			return true
		}
	}
	return false
}

// ArcaneMutationToSkill maps a school sacrifice mutation to the skill of
// that school.
func ArcaneMutationToSkill(m shared.Mutation) shared.Skill {
	for exp := 0; exp <= lastSchoolExponent; exp++ {
		school := SchoolFromExponent(exp)
		if mut, ok := LockoutMutation(school); ok && mut == m {
			return school.Skill()
		}
	}
	return shared.SkillNone
}
