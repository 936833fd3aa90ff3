package spells

// ID identifies a spell. NoSpell is the sentinel.
type ID int

const (
	NoSpell ID = iota

	// conjurations and elemental attacks
	MagicDart
	Fireball
	DelayedFireball
	ConjureFlame
	FulminantPrism
	FireStorm
	ChainLightning
	OzocubusRefrigeration
	OlgrebsToxicRadiance
	FreezingCloud
	PoisonousCloud
	MephiticCloud
	ConjureBallLightning
	LRD
	Sandblast
	Glaciate
	Shock
	LightningBolt
	Airstrike
	StaticDischarge
	Sting
	ThrowFlame
	ThrowFrost
	ThrowIcicle
	BoltOfFire
	BoltOfCold
	IronShot

	// hexes
	Slow
	Confuse
	Discord
	Darkness
	Invisibility
	ViolentUnravelling

	// charms
	Swiftness
	RepelMissiles
	Regeneration
	Stoneskin
	SpectralWeapon
	PortalProjectile
	WarpBrand
	ExcruciatingWounds
	DeathsDoor

	// transmutations
	BeastlyAppendage
	SpiderForm
	BladeHands
	StatueForm
	IceForm
	HydraForm
	DragonForm
	Necromutation
	LedasLiquefaction
	SublimationOfBlood
	CurePoison

	// necromancy
	Pain
	Agony
	AnimateSkeleton
	AnimateDead
	TwistedResurrection
	ControlUndead
	DeathChannel
	Simulacrum
	BorgnjorsRevivification
	Haunt

	// summonings
	SummonSmallMammal
	CallImp
	CallCanineFamiliar
	SummonIceBeast
	SummonMinorDemon
	SummonButterflies
	SummonLightningSpire
	SummonGuardianGolem
	ShadowCreatures
	SummonHorribleThings
	SummonGreaterDemon
	SummonDragon
	SummonHydra
	MonstrousMenagerie
	DragonCall
	MalignGateway
	SummonForest
	SummonManaViper
	Tornado

	// translocations
	Apportation
	Blink
	ControlledBlink
	Passwall
	GolubriasPassage

	// monster only
	HasteOther
	MinorHealing
	HolyBreath
	HellfireBurst

	numIDs
)

// LOSRadius is the maximum line-of-sight distance
const LOSRadius = 7
