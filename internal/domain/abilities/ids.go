package abilities

// ID identifies an ability. Zero is the NonAbility sentinel.
type ID int

const (
	NonAbility ID = iota

	// innate, mutation and form abilities
	SpitPoison
	Blink
	BreatheFire
	BreatheFrost
	BreathePoison
	BreatheMephitic
	BreatheLightning
	BreathePower
	BreatheStickyFlame
	BreatheSteam
	TranBat
	SpitAcid
	Fly
	StopFlying
	Hellfire
	DelayedFireball
	StopSinging
	MummyRestoration
	Dig
	ShaftSelf

	// evocations
	EvokeBlink
	Recharging
	EvokeBerserk
	EvokeTurnInvisible
	EvokeTurnVisible
	EvokeFlight
	EvokeFog

	EndTransformation

	// Zin
	ZinRecite
	ZinVitalisation
	ZinImprison
	ZinSanctuary
	ZinCureAllMutations
	ZinDonateGold

	// The Shining One
	TSODivineShield
	TSOCleansingFlame
	TSOSummonDivineWarrior
	TSOBlessWeapon

	// Kikubaaqudgha
	KikuReceiveCorpses
	KikuTorment
	KikuGiftNecronomicon
	KikuBlessWeapon

	// Yredelemnul
	YredInjuryMirror
	YredAnimateRemains
	YredRecallUndeadSlaves
	YredAnimateDead
	YredDrainLife
	YredEnslaveSoul

	// Okawaru
	OkawaruHeroism
	OkawaruFinesse

	// Makhleb
	MakhlebMinorDestruction
	MakhlebLesserServant
	MakhlebMajorDestruction
	MakhlebGreaterServant

	// Sif Muna
	SifMunaChannelEnergy
	SifMunaForgetSpell

	// Trog
	TrogBurnSpellbooks
	TrogBerserk
	TrogRegenMR
	TrogBrothersInArms

	// Elyvilon
	ElyvilonLifesaving
	ElyvilonLesserHealing
	ElyvilonHealOther
	ElyvilonPurification
	ElyvilonGreaterHealing
	ElyvilonDivineVigour

	// Lugonu
	LugonuAbyssExit
	LugonuBendSpace
	LugonuBanish
	LugonuCorrupt
	LugonuAbyssEnter
	LugonuBlessWeapon

	// Nemelex
	NemelexTripleDraw
	NemelexDealFour
	NemelexStackFive

	// Beogh
	BeoghSmiting
	BeoghRecallOrcishFollowers
	BeoghGiftItem

	// Jiyva
	JiyvaCallJelly
	JiyvaJellyParalyse
	JiyvaSlimify
	JiyvaCureBadMutation

	// Fedhas
	FedhasEvolution
	FedhasSunlight
	FedhasPlantRing
	FedhasSpawnSpores
	FedhasRain

	// Cheibriados
	CheibriadosTimeBend
	CheibriadosDistortion
	CheibriadosSlouch
	CheibriadosTimeStep

	// Ashenzari
	AshenzariScrying
	AshenzariTransferKnowledge
	AshenzariEndTransfer

	// Dithmenos
	DithmenosShadowStep
	DithmenosShadowForm

	// Ru
	RuDrawOutPower
	RuPowerLeap
	RuApocalypse
	RuSacrificePurity
	RuSacrificeWords
	RuSacrificeDrink
	RuSacrificeEssence
	RuSacrificeHealth
	RuSacrificeStealth
	RuSacrificeArtifice
	RuSacrificeLove
	RuSacrificeCourage
	RuSacrificeArcana
	RuSacrificeNimbleness
	RuSacrificeDurability
	RuSacrificeHand
	RuSacrificeExperience
	RuSacrificeSkill
	RuSacrificeEye
	RuSacrificeResistance
	RuRejectSacrifices

	// Gozag
	GozagPotionPetition
	GozagCallMerchant
	GozagBribeBranch

	// Qazlal
	QazlalUpheaval
	QazlalElementalForce
	QazlalDisasterArea

	// Pakellas
	PakellasDeviceSurge
	PakellasQuickCharge
	PakellasSupercharge

	StopRecall
	RenounceReligion
	ConvertToBeogh

	numIDs
)

// IsRuSacrifice reports whether id is one of Ru's offered sacrifices
func IsRuSacrifice(id ID) bool {
	return id >= RuSacrificePurity && id <= RuSacrificeResistance
}

// IsBreath reports whether id is a breath or spit weapon
func IsBreath(id ID) bool {
	switch id {
	case SpitPoison, BreatheFire, BreatheFrost, BreathePoison, BreatheMephitic,
		BreatheLightning, BreathePower, BreatheStickyFlame, BreatheSteam, SpitAcid:
		return true
	default:
		return false
	}
}
