package player

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// pietyBreakpoints are the piety thresholds of ranks one through six
var pietyBreakpoints = [...]int{30, 50, 75, 100, 120, 160}

// NumPietyRanks is the highest rank piety can reach
const NumPietyRanks = len(pietyBreakpoints)

// PietyBreakpoint returns the piety needed for breakpoint i (0-based)
func PietyBreakpoint(i int) int {
	if i < 0 || i >= len(pietyBreakpoints) {
		return 0
	}
	return pietyBreakpoints[i]
}

// PietyRank is the number of breakpoints piety has passed
func PietyRank(piety int) int {
	for i := NumPietyRanks; i > 0; i-- {
		if piety >= pietyBreakpoints[i-1] {
			return i
		}
	}
	return 0
}

// PietyRank is the player's current rank with their god
func (p *Player) PietyRank() int {
	return PietyRank(p.Piety)
}

// Worships reports whether g is the player's god
func (p *Player) Worships(g shared.God) bool {
	return g != shared.GodNone && p.Religion == g
}

// UnderPenance reports whether the player owes g penance
func (p *Player) UnderPenance(g shared.God) bool {
	return p.Penance[g] > 0
}

// InGoodStanding reports whether the player worships g without penance and
// with piety at or above breakpoint minBreakpoint. A negative breakpoint
// skips the piety requirement.
func (p *Player) InGoodStanding(g shared.God, minBreakpoint int) bool {
	if !p.Worships(g) || p.UnderPenance(g) {
		return false
	}
	return minBreakpoint < 0 || p.Piety >= PietyBreakpoint(minBreakpoint)
}

// CanDoCapstone reports whether the one-time top-rank gift is available
func (p *Player) CanDoCapstone() bool {
	return p.InGoodStanding(p.Religion, 5) && !p.CapstoneUsed
}

// GodPower is an ability granted at a piety rank. Rank 0 powers are always
// available, rank -1 ones even under penance and rank 7 ones are the
// one-time capstone.
type GodPower struct {
	Rank    int
	Ability abilities.ID
}

// CapstoneRank marks the one-time gift
const CapstoneRank = 7

var godPowers = map[shared.God][]GodPower{
	shared.GodZin: {
		{1, abilities.ZinRecite},
		{2, abilities.ZinVitalisation},
		{3, abilities.ZinImprison},
		{5, abilities.ZinSanctuary},
		{CapstoneRank, abilities.ZinCureAllMutations},
		{-1, abilities.ZinDonateGold},
	},
	shared.GodShiningOne: {
		{1, abilities.TSODivineShield},
		{4, abilities.TSOCleansingFlame},
		{5, abilities.TSOSummonDivineWarrior},
		{CapstoneRank, abilities.TSOBlessWeapon},
	},
	shared.GodKikubaaqudgha: {
		{1, abilities.KikuReceiveCorpses},
		{4, abilities.KikuTorment},
		{CapstoneRank, abilities.KikuBlessWeapon},
		{CapstoneRank, abilities.KikuGiftNecronomicon},
	},
	shared.GodYredelemnul: {
		{1, abilities.YredAnimateRemains},
		{1, abilities.YredRecallUndeadSlaves},
		{2, abilities.YredAnimateDead},
		{3, abilities.YredInjuryMirror},
		{4, abilities.YredDrainLife},
		{5, abilities.YredEnslaveSoul},
	},
	shared.GodOkawaru: {
		{1, abilities.OkawaruHeroism},
		{5, abilities.OkawaruFinesse},
	},
	shared.GodMakhleb: {
		{1, abilities.MakhlebMinorDestruction},
		{2, abilities.MakhlebLesserServant},
		{4, abilities.MakhlebMajorDestruction},
		{5, abilities.MakhlebGreaterServant},
	},
	shared.GodSifMuna: {
		{1, abilities.SifMunaChannelEnergy},
		{4, abilities.SifMunaForgetSpell},
	},
	shared.GodTrog: {
		{0, abilities.TrogBurnSpellbooks},
		{1, abilities.TrogBerserk},
		{2, abilities.TrogRegenMR},
		{4, abilities.TrogBrothersInArms},
	},
	shared.GodElyvilon: {
		{1, abilities.ElyvilonLifesaving},
		{1, abilities.ElyvilonLesserHealing},
		{2, abilities.ElyvilonPurification},
		{3, abilities.ElyvilonGreaterHealing},
		{4, abilities.ElyvilonHealOther},
		{5, abilities.ElyvilonDivineVigour},
	},
	shared.GodLugonu: {
		{1, abilities.LugonuAbyssExit},
		{1, abilities.LugonuBendSpace},
		{2, abilities.LugonuBanish},
		{4, abilities.LugonuCorrupt},
		{5, abilities.LugonuAbyssEnter},
		{CapstoneRank, abilities.LugonuBlessWeapon},
	},
	shared.GodNemelex: {
		{3, abilities.NemelexTripleDraw},
		{4, abilities.NemelexDealFour},
		{5, abilities.NemelexStackFive},
	},
	shared.GodBeogh: {
		{2, abilities.BeoghSmiting},
		{4, abilities.BeoghRecallOrcishFollowers},
		{5, abilities.BeoghGiftItem},
	},
	shared.GodJiyva: {
		{2, abilities.JiyvaCallJelly},
		{3, abilities.JiyvaJellyParalyse},
		{4, abilities.JiyvaSlimify},
		{5, abilities.JiyvaCureBadMutation},
	},
	shared.GodFedhas: {
		{1, abilities.FedhasEvolution},
		{2, abilities.FedhasSunlight},
		{3, abilities.FedhasPlantRing},
		{4, abilities.FedhasSpawnSpores},
		{5, abilities.FedhasRain},
	},
	shared.GodCheibriados: {
		{1, abilities.CheibriadosTimeBend},
		{3, abilities.CheibriadosDistortion},
		{4, abilities.CheibriadosSlouch},
		{5, abilities.CheibriadosTimeStep},
	},
	shared.GodAshenzari: {
		{4, abilities.AshenzariScrying},
		{5, abilities.AshenzariTransferKnowledge},
	},
	shared.GodDithmenos: {
		{3, abilities.DithmenosShadowStep},
		{5, abilities.DithmenosShadowForm},
	},
	shared.GodGozag: {
		{0, abilities.GozagPotionPetition},
		{0, abilities.GozagCallMerchant},
		{0, abilities.GozagBribeBranch},
	},
	shared.GodQazlal: {
		{3, abilities.QazlalUpheaval},
		{4, abilities.QazlalElementalForce},
		{5, abilities.QazlalDisasterArea},
	},
	shared.GodRu: {
		{3, abilities.RuDrawOutPower},
		{4, abilities.RuPowerLeap},
		{5, abilities.RuApocalypse},
	},
	shared.GodPakellas: {
		{1, abilities.PakellasQuickCharge},
		{3, abilities.PakellasDeviceSurge},
		{CapstoneRank, abilities.PakellasSupercharge},
	},
}

// GodPowers lists the activated powers of g in rank order of the table
func GodPowers(g shared.God) []GodPower {
	return append([]GodPower(nil), godPowers[g]...)
}
