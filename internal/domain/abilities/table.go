package abilities

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/cost"
)

// Definition is one immutable row of the ability table.
//
// FoodCost is a base: the amount paid is FoodCost + Random2Avg(FoodCost, 2).
// HPCost per-mille values are thousandths of max HP, rounded up.
type Definition struct {
	ID        ID           `json:"id"`
	Name      string       `json:"name"`
	MPCost    int          `json:"mp_cost"`
	HPCost    cost.Scaling `json:"hp_cost"`
	FoodCost  int          `json:"food_cost"`
	PietyCost cost.Generic `json:"piety_cost"`
	Flags     Flags        `json:"flags"`
}

func row(id ID, name string, mp int, hp cost.Scaling, food int, piety cost.Generic, flags Flags) Definition {
	return Definition{
		ID:        id,
		Name:      name,
		MPCost:    mp,
		HPCost:    hp,
		FoodCost:  food,
		PietyCost: piety,
		Flags:     flags,
	}
}

var (
	noHP    = cost.Scaling{}
	noPiety = cost.Generic{}
	approx  = cost.Approx
	hpPct   = cost.PerMille
	hpFixed = cost.FixedScaling
)

// table must keep NonAbility first: lookup misses fall back to row zero.
var table = []Definition{
	row(NonAbility, "No ability", 0, noHP, 0, noPiety, FlagNone),
	row(SpitPoison, "Spit Poison", 0, noHP, 40, noPiety, FlagBreath),

	row(Blink, "Blink", 0, hpPct(50), 50, noPiety, FlagNone),

	row(BreatheFire, "Breathe Fire", 0, noHP, 125, noPiety, FlagBreath),
	row(BreatheFrost, "Breathe Frost", 0, noHP, 125, noPiety, FlagBreath),
	row(BreathePoison, "Breathe Poison Gas", 0, noHP, 125, noPiety, FlagBreath),
	row(BreatheMephitic, "Breathe Noxious Fumes", 0, noHP, 125, noPiety, FlagBreath),
	row(BreatheLightning, "Breathe Lightning", 0, noHP, 125, noPiety, FlagBreath),
	row(BreathePower, "Breathe Dispelling Energy", 0, noHP, 125, noPiety, FlagBreath),
	row(BreatheStickyFlame, "Breathe Sticky Flame", 0, noHP, 125, noPiety, FlagBreath),
	row(BreatheSteam, "Breathe Steam", 0, noHP, 75, noPiety, FlagBreath),
	row(TranBat, "Bat Form", 2, noHP, 0, noPiety, FlagNone),

	row(SpitAcid, "Spit Acid", 0, noHP, 125, noPiety, FlagBreath),

	row(Fly, "Fly", 3, noHP, 100, noPiety, FlagNone),
	row(StopFlying, "Stop Flying", 0, noHP, 0, noPiety, FlagNone),
	row(Hellfire, "Hellfire", 0, hpPct(150), 200, noPiety, FlagNone),

	row(DelayedFireball, "Release Delayed Fireball", 0, noHP, 0, noPiety, FlagInstant),
	row(StopSinging, "Stop Singing", 0, noHP, 0, noPiety, FlagNone),
	row(MummyRestoration, "Self-Restoration", 1, noHP, 0, noPiety, FlagPermanentMP),

	row(Dig, "Dig", 0, noHP, 0, noPiety, FlagInstant),
	row(ShaftSelf, "Shaft Self", 0, noHP, 250, noPiety, FlagDelay),

	// Evocations come from items; the mutation versions of blink and
	// recharging are kept distinct so training is attributed correctly.
	row(EvokeBlink, "Evoke Blink", 1, noHP, 50, noPiety, FlagNone),
	row(Recharging, "Device Recharging", 1, noHP, 0, noPiety, FlagPermanentMP),
	row(EvokeBerserk, "Evoke Berserk Rage", 0, noHP, 0, noPiety, FlagNone),
	row(EvokeTurnInvisible, "Evoke Invisibility", 2, noHP, 250, noPiety, FlagNone),
	row(EvokeTurnVisible, "Turn Visible", 0, noHP, 0, noPiety, FlagNone),
	row(EvokeFlight, "Evoke Flight", 1, noHP, 100, noPiety, FlagNone),
	row(EvokeFog, "Evoke Fog", 2, noHP, 250, noPiety, FlagNone),

	row(EndTransformation, "End Transformation", 0, noHP, 0, noPiety, FlagNone),

	// Zin
	row(ZinRecite, "Recite", 0, noHP, 0, noPiety, FlagBreath),
	row(ZinVitalisation, "Vitalisation", 2, noHP, 0, approx(1), FlagNone),
	row(ZinImprison, "Imprison", 5, noHP, 125, approx(4), FlagNone),
	row(ZinSanctuary, "Sanctuary", 7, noHP, 150, approx(15), FlagNone),
	row(ZinCureAllMutations, "Cure All Mutations", 0, noHP, 0, noPiety, FlagNone),
	row(ZinDonateGold, "Donate Gold", 0, noHP, 0, noPiety, FlagNone),

	// The Shining One
	row(TSODivineShield, "Divine Shield", 3, noHP, 50, approx(2), FlagNone),
	row(TSOCleansingFlame, "Cleansing Flame", 5, noHP, 100, approx(2), FlagNone),
	row(TSOSummonDivineWarrior, "Summon Divine Warrior", 8, noHP, 150, approx(5), FlagNone),
	row(TSOBlessWeapon, "Brand Weapon With Holy Wrath", 0, noHP, 0, noPiety, FlagNone),

	// Kikubaaqudgha
	row(KikuReceiveCorpses, "Receive Corpses", 3, noHP, 50, approx(2), FlagNone),
	row(KikuTorment, "Torment", 4, noHP, 0, approx(8), FlagNone),
	row(KikuGiftNecronomicon, "Receive Necronomicon", 0, noHP, 0, noPiety, FlagNone),
	row(KikuBlessWeapon, "Brand Weapon With Pain", 0, noHP, 0, noPiety, FlagPain),

	// Yredelemnul
	row(YredInjuryMirror, "Injury Mirror", 0, noHP, 0, noPiety, FlagPiety),
	row(YredAnimateRemains, "Animate Remains", 2, noHP, 50, noPiety, FlagNone),
	row(YredRecallUndeadSlaves, "Recall Undead Slaves", 2, noHP, 50, noPiety, FlagNone),
	row(YredAnimateDead, "Animate Dead", 2, noHP, 50, noPiety, FlagNone),
	row(YredDrainLife, "Drain Life", 6, noHP, 200, approx(2), FlagNone),
	row(YredEnslaveSoul, "Enslave Soul", 8, noHP, 150, approx(4), FlagNone),

	// Okawaru
	row(OkawaruHeroism, "Heroism", 2, noHP, 50, approx(1), FlagNone),
	row(OkawaruFinesse, "Finesse", 5, noHP, 100, approx(3), FlagNone),

	// Makhleb
	row(MakhlebMinorDestruction, "Minor Destruction", 0, hpFixed(1), 20, noPiety, FlagNone),
	row(MakhlebLesserServant, "Lesser Servant of Makhleb", 0, hpFixed(4), 50, approx(2), FlagHostile),
	row(MakhlebMajorDestruction, "Major Destruction", 0, hpFixed(6), 100, cost.Range(0, 1), FlagNone),
	row(MakhlebGreaterServant, "Greater Servant of Makhleb", 0, hpFixed(10), 100, approx(5), FlagHostile),

	// Sif Muna
	row(SifMunaChannelEnergy, "Channel Energy", 0, noHP, 100, noPiety, FlagNone),
	row(SifMunaForgetSpell, "Forget Spell", 5, noHP, 0, approx(8), FlagNone),

	// Trog
	row(TrogBurnSpellbooks, "Burn Spellbooks", 0, noHP, 10, noPiety, FlagNone),
	row(TrogBerserk, "Berserk", 0, noHP, 200, noPiety, FlagNone),
	row(TrogRegenMR, "Trog's Hand", 0, noHP, 50, approx(2), FlagNone),
	row(TrogBrothersInArms, "Brothers in Arms", 0, noHP, 100, cost.Range(5, 6), FlagNone),

	// Elyvilon
	row(ElyvilonLifesaving, "Divine Protection", 0, noHP, 0, noPiety, FlagNone),
	row(ElyvilonLesserHealing, "Lesser Healing", 1, noHP, 100, cost.Range(0, 1), FlagConfOK),
	row(ElyvilonHealOther, "Heal Other", 2, noHP, 250, approx(2), FlagNone),
	row(ElyvilonPurification, "Purification", 3, noHP, 300, approx(3), FlagConfOK),
	row(ElyvilonGreaterHealing, "Greater Healing", 2, noHP, 250, approx(3), FlagConfOK),
	row(ElyvilonDivineVigour, "Divine Vigour", 0, noHP, 600, approx(6), FlagConfOK),

	// Lugonu
	row(LugonuAbyssExit, "Depart the Abyss", 1, noHP, 150, approx(10), FlagNone),
	row(LugonuBendSpace, "Bend Space", 1, noHP, 50, noPiety, FlagPain),
	row(LugonuBanish, "Banish", 4, noHP, 200, cost.Range(3, 4), FlagNone),
	row(LugonuCorrupt, "Corrupt", 7, hpFixed(5), 500, approx(10), FlagNone),
	row(LugonuAbyssEnter, "Enter the Abyss", 9, noHP, 500, cost.Fixed(35), FlagPain),
	row(LugonuBlessWeapon, "Brand Weapon With Distortion", 0, noHP, 0, noPiety, FlagNone),

	// Nemelex
	row(NemelexTripleDraw, "Triple Draw", 2, noHP, 100, approx(2), FlagNone),
	row(NemelexDealFour, "Deal Four", 8, noHP, 200, approx(8), FlagNone),
	row(NemelexStackFive, "Stack Five", 5, noHP, 250, approx(10), FlagNone),

	// Beogh
	row(BeoghSmiting, "Smiting", 3, noHP, 80, cost.Fixed(3), FlagNone),
	row(BeoghRecallOrcishFollowers, "Recall Orcish Followers", 2, noHP, 50, noPiety, FlagNone),
	row(BeoghGiftItem, "Give Item to Named Follower", 0, noHP, 0, noPiety, FlagNone),

	// Jiyva
	row(JiyvaCallJelly, "Request Jelly", 2, noHP, 20, approx(1), FlagNone),
	row(JiyvaJellyParalyse, "Jelly Paralyse", 3, noHP, 0, noPiety, FlagPiety),
	row(JiyvaSlimify, "Slimify", 4, noHP, 100, approx(8), FlagNone),
	row(JiyvaCureBadMutation, "Cure Bad Mutation", 8, noHP, 200, approx(15), FlagNone),

	// Fedhas
	row(FedhasEvolution, "Evolution", 2, noHP, 0, noPiety, FlagVariableFruit),
	row(FedhasSunlight, "Sunlight", 2, noHP, 50, noPiety, FlagNone),
	row(FedhasPlantRing, "Growth", 2, noHP, 0, noPiety, FlagFruit),
	row(FedhasSpawnSpores, "Reproduction", 4, noHP, 100, approx(1), FlagNone),
	row(FedhasRain, "Rain", 4, noHP, 150, approx(4), FlagNone),

	// Cheibriados
	row(CheibriadosTimeBend, "Bend Time", 3, noHP, 50, approx(1), FlagNone),
	row(CheibriadosDistortion, "Temporal Distortion", 4, noHP, 200, approx(3), FlagInstant),
	row(CheibriadosSlouch, "Slouch", 5, noHP, 100, approx(8), FlagNone),
	row(CheibriadosTimeStep, "Step From Time", 10, noHP, 200, approx(10), FlagNone),

	// Ashenzari
	row(AshenzariScrying, "Scrying", 4, noHP, 50, approx(2), FlagInstant),
	row(AshenzariTransferKnowledge, "Transfer Knowledge", 0, noHP, 0, approx(10), FlagNone),
	row(AshenzariEndTransfer, "End Transfer Knowledge", 0, noHP, 0, noPiety, FlagNone),

	// Dithmenos
	row(DithmenosShadowStep, "Shadow Step", 4, noHP, 0, approx(4), FlagNone),
	row(DithmenosShadowForm, "Shadow Form", 9, noHP, 0, approx(10), FlagSkillDrain),

	// Ru
	row(RuDrawOutPower, "Draw Out Power", 0, noHP, 0, noPiety, FlagExhaustion|FlagSkillDrain|FlagConfOK),
	row(RuPowerLeap, "Power Leap", 5, noHP, 0, noPiety, FlagExhaustion),
	row(RuApocalypse, "Apocalypse", 8, noHP, 0, noPiety, FlagExhaustion|FlagSkillDrain),

	row(RuSacrificePurity, "Sacrifice Purity", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeWords, "Sacrifice Words", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeDrink, "Sacrifice Drink", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeEssence, "Sacrifice Essence", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeHealth, "Sacrifice Health", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeStealth, "Sacrifice Stealth", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeArtifice, "Sacrifice Artifice", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeLove, "Sacrifice Love", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeCourage, "Sacrifice Courage", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeArcana, "Sacrifice Arcana", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeNimbleness, "Sacrifice Nimbleness", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeDurability, "Sacrifice Durability", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeHand, "Sacrifice a Hand", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeExperience, "Sacrifice Experience", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeSkill, "Sacrifice Skill", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeEye, "Sacrifice an Eye", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuSacrificeResistance, "Sacrifice Resistance", 0, noHP, 0, noPiety, FlagSacrifice),
	row(RuRejectSacrifices, "Reject Sacrifices", 0, noHP, 0, noPiety, FlagNone),

	// Gozag
	row(GozagPotionPetition, "Potion Petition", 0, noHP, 0, noPiety, FlagGold),
	row(GozagCallMerchant, "Call Merchant", 0, noHP, 0, noPiety, FlagGold),
	row(GozagBribeBranch, "Bribe Branch", 0, noHP, 0, noPiety, FlagGold),

	// Qazlal
	row(QazlalUpheaval, "Upheaval", 4, noHP, 0, approx(3), FlagNone),
	row(QazlalElementalForce, "Elemental Force", 6, noHP, 0, approx(6), FlagNone),
	row(QazlalDisasterArea, "Disaster Area", 7, noHP, 0, approx(10), FlagNone),

	// Pakellas
	row(PakellasDeviceSurge, "Device Surge", 0, noHP, 100, cost.Fixed(1), FlagVariableMP|FlagInstant),
	row(PakellasQuickCharge, "Quick Charge", 0, noHP, 100, approx(2), FlagNone),
	row(PakellasSupercharge, "Supercharge", 0, noHP, 0, noPiety, FlagNone),

	row(StopRecall, "Stop Recall", 0, noHP, 0, noPiety, FlagNone),
	row(RenounceReligion, "Renounce Religion", 0, noHP, 0, noPiety, FlagNone),
	row(ConvertToBeogh, "Convert to Beogh", 0, noHP, 0, noPiety, FlagNone),
}
