package spells

// Definition is one immutable row of the spell table.
//
// MinRange and MaxRange are both -1 for spells that are not aimed. When they
// differ, range grows linearly with power up to PowerCap.
type Definition struct {
	ID           ID     `json:"id"`
	Title        string `json:"title"`
	Schools      School `json:"schools"`
	Flags        Flags  `json:"flags"`
	Level        int    `json:"level"`
	PowerCap     int    `json:"power_cap"` // 0 means uncapped
	MinRange     int    `json:"min_range"`
	MaxRange     int    `json:"max_range"`
	Noise        int    `json:"noise"`
	EffectNoise  int    `json:"effect_noise"`
	TargetPrompt string `json:"target_prompt,omitempty"`
}

const (
	los     = LOSRadius
	noRange = -1
)

// table rows are grouped by school for readability only; the ID index is
// what lookups use.
var table = []Definition{
	{ID: NoSpell, Title: "nonexistent spell", Level: 1, MinRange: noRange, MaxRange: noRange},

	{ID: MagicDart, Title: "Magic Dart", Schools: SchoolConjuration, Flags: FlagDir | FlagTarg,
		Level: 1, PowerCap: 25, MinRange: los, MaxRange: los, Noise: 1},
	{ID: Fireball, Title: "Fireball", Schools: SchoolConjuration | SchoolFire, Flags: FlagDir | FlagTarg,
		Level: 5, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 5},
	{ID: DelayedFireball, Title: "Delayed Fireball", Schools: SchoolFire | SchoolConjuration, Flags: FlagUtility,
		Level: 7, MinRange: noRange, MaxRange: noRange, Noise: 7},
	{ID: ConjureFlame, Title: "Conjure Flame", Schools: SchoolConjuration | SchoolFire, Flags: FlagTarg | FlagNeutral | FlagNotSelf,
		Level: 3, PowerCap: 100, MinRange: 4, MaxRange: 4, Noise: 3, EffectNoise: 2},
	{ID: FulminantPrism, Title: "Fulminant Prism", Schools: SchoolConjuration | SchoolHexes, Flags: FlagTarg | FlagArea | FlagNotSelf,
		Level: 4, PowerCap: 200, MinRange: 4, MaxRange: 4, Noise: 4},
	{ID: FireStorm, Title: "Fire Storm", Schools: SchoolFire | SchoolConjuration, Flags: FlagTarg | FlagArea | FlagNotSelf,
		Level: 9, PowerCap: 200, MinRange: 5, MaxRange: 5, Noise: 9},
	{ID: ChainLightning, Title: "Chain Lightning", Schools: SchoolAir | SchoolConjuration, Flags: FlagArea,
		Level: 8, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 8, EffectNoise: 25},
	{ID: OzocubusRefrigeration, Title: "Ozocubu's Refrigeration", Schools: SchoolIce, Flags: FlagArea,
		Level: 5, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 4},
	{ID: OlgrebsToxicRadiance, Title: "Olgreb's Toxic Radiance", Schools: SchoolPoison, Flags: FlagArea,
		Level: 4, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 2},
	{ID: FreezingCloud, Title: "Freezing Cloud", Schools: SchoolConjuration | SchoolIce | SchoolAir, Flags: FlagTarg | FlagArea | FlagCloud,
		Level: 6, PowerCap: 200, MinRange: 5, MaxRange: 5, Noise: 6, EffectNoise: 2},
	{ID: PoisonousCloud, Title: "Poisonous Cloud", Schools: SchoolConjuration | SchoolPoison | SchoolAir, Flags: FlagTarg | FlagArea | FlagCloud,
		Level: 5, PowerCap: 200, MinRange: 5, MaxRange: 5, Noise: 5, EffectNoise: 2},
	{ID: MephiticCloud, Title: "Mephitic Cloud", Schools: SchoolConjuration | SchoolPoison | SchoolAir, Flags: FlagDir | FlagTarg | FlagArea,
		Level: 3, PowerCap: 100, MinRange: 4, MaxRange: los, Noise: 3},
	{ID: ConjureBallLightning, Title: "Conjure Ball Lightning", Schools: SchoolAir | SchoolConjuration, Flags: FlagSelfench,
		Level: 6, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: LRD, Title: "Lee's Rapid Deconstruction", Schools: SchoolEarth, Flags: FlagTarg,
		Level: 5, PowerCap: 200, MinRange: 4, MaxRange: 4, Noise: 4, TargetPrompt: "Fragment what (e.g. wall or brittle monster)?"},
	{ID: Sandblast, Title: "Sandblast", Schools: SchoolEarth, Flags: FlagDir | FlagTarg | FlagNotSelf,
		Level: 1, PowerCap: 50, MinRange: 2, MaxRange: 2, Noise: 1},
	{ID: Glaciate, Title: "Glaciate", Schools: SchoolConjuration | SchoolIce, Flags: FlagDir | FlagArea | FlagNotSelf,
		Level: 9, PowerCap: 200, MinRange: 6, MaxRange: 6, Noise: 9, EffectNoise: 25},
	{ID: Shock, Title: "Shock", Schools: SchoolConjuration | SchoolAir, Flags: FlagDir | FlagTarg,
		Level: 1, PowerCap: 25, MinRange: los, MaxRange: los, Noise: 1},
	{ID: LightningBolt, Title: "Lightning Bolt", Schools: SchoolConjuration | SchoolAir, Flags: FlagDir | FlagTarg,
		Level: 5, PowerCap: 200, MinRange: 4, MaxRange: los, Noise: 5},
	{ID: Airstrike, Title: "Airstrike", Schools: SchoolAir, Flags: FlagTarg | FlagNotSelf,
		Level: 4, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 2, EffectNoise: 4},
	{ID: StaticDischarge, Title: "Static Discharge", Schools: SchoolConjuration | SchoolAir, Flags: FlagArea,
		Level: 3, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: Sting, Title: "Sting", Schools: SchoolConjuration | SchoolPoison, Flags: FlagDir | FlagTarg,
		Level: 1, PowerCap: 25, MinRange: 6, MaxRange: 6, Noise: 1},
	{ID: ThrowFlame, Title: "Throw Flame", Schools: SchoolConjuration | SchoolFire, Flags: FlagDir | FlagTarg,
		Level: 2, PowerCap: 50, MinRange: los, MaxRange: los, Noise: 2},
	{ID: ThrowFrost, Title: "Throw Frost", Schools: SchoolConjuration | SchoolIce, Flags: FlagDir | FlagTarg,
		Level: 2, PowerCap: 50, MinRange: los, MaxRange: los, Noise: 2},
	{ID: ThrowIcicle, Title: "Throw Icicle", Schools: SchoolConjuration | SchoolIce, Flags: FlagDir | FlagTarg,
		Level: 4, PowerCap: 100, MinRange: los, MaxRange: los, Noise: 4},
	{ID: BoltOfFire, Title: "Bolt of Fire", Schools: SchoolConjuration | SchoolFire, Flags: FlagDir | FlagTarg,
		Level: 6, PowerCap: 200, MinRange: 5, MaxRange: los, Noise: 6},
	{ID: BoltOfCold, Title: "Bolt of Cold", Schools: SchoolConjuration | SchoolIce, Flags: FlagDir | FlagTarg,
		Level: 6, PowerCap: 200, MinRange: 5, MaxRange: los, Noise: 6},
	{ID: IronShot, Title: "Iron Shot", Schools: SchoolConjuration | SchoolEarth, Flags: FlagDir | FlagTarg,
		Level: 6, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 6},

	{ID: Slow, Title: "Slow", Schools: SchoolHexes, Flags: FlagDir | FlagTarg,
		Level: 2, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 2},
	{ID: Confuse, Title: "Confuse", Schools: SchoolHexes, Flags: FlagDir | FlagTarg,
		Level: 3, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 3},
	{ID: Discord, Title: "Discord", Schools: SchoolHexes, Flags: FlagArea,
		Level: 8, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: Darkness, Title: "Darkness", Schools: SchoolHexes, Flags: FlagUtility,
		Level: 6, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 5},
	{ID: Invisibility, Title: "Invisibility", Schools: SchoolHexes, Flags: FlagSelfench | FlagEscape,
		Level: 6, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 5},
	{ID: ViolentUnravelling, Title: "Yara's Violent Unravelling", Schools: SchoolHexes | SchoolTransmutation, Flags: FlagTarg | FlagNotSelf,
		Level: 5, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 4},

	{ID: Swiftness, Title: "Swiftness", Schools: SchoolCharms | SchoolAir, Flags: FlagSelfench | FlagUtility,
		Level: 2, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 2},
	{ID: RepelMissiles, Title: "Repel Missiles", Schools: SchoolCharms | SchoolAir, Flags: FlagSelfench,
		Level: 2, PowerCap: 50, MinRange: noRange, MaxRange: noRange, Noise: 1},
	{ID: Regeneration, Title: "Regeneration", Schools: SchoolCharms | SchoolNecromancy, Flags: FlagSelfench | FlagUtility,
		Level: 3, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: Stoneskin, Title: "Stoneskin", Schools: SchoolTransmutation | SchoolEarth, Flags: FlagSelfench | FlagUtility,
		Level: 2, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 2},
	{ID: SpectralWeapon, Title: "Spectral Weapon", Schools: SchoolHexes | SchoolCharms, Flags: FlagSelfench,
		Level: 3, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: PortalProjectile, Title: "Portal Projectile", Schools: SchoolTranslocation | SchoolHexes, Flags: FlagSelfench,
		Level: 3, PowerCap: 50, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: WarpBrand, Title: "Warp Weapon", Schools: SchoolCharms | SchoolTranslocation, Flags: FlagHelpful | FlagUtility,
		Level: 5, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 4},
	{ID: ExcruciatingWounds, Title: "Excruciating Wounds", Schools: SchoolCharms | SchoolNecromancy, Flags: FlagHelpful | FlagUtility,
		Level: 5, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 4},
	{ID: DeathsDoor, Title: "Death's Door", Schools: SchoolCharms | SchoolNecromancy, Flags: FlagSelfench | FlagUtility,
		Level: 9, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 7},

	{ID: BeastlyAppendage, Title: "Beastly Appendage", Schools: SchoolTransmutation, Flags: FlagHelpful | FlagUtility,
		Level: 1, PowerCap: 50, MinRange: noRange, MaxRange: noRange, Noise: 1},
	{ID: SpiderForm, Title: "Spider Form", Schools: SchoolTransmutation | SchoolPoison, Flags: FlagHelpful | FlagUtility,
		Level: 3, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 2},
	{ID: BladeHands, Title: "Blade Hands", Schools: SchoolTransmutation, Flags: FlagHelpful | FlagUtility,
		Level: 5, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 4},
	{ID: StatueForm, Title: "Statue Form", Schools: SchoolTransmutation | SchoolEarth, Flags: FlagHelpful | FlagUtility,
		Level: 6, PowerCap: 150, MinRange: noRange, MaxRange: noRange, Noise: 5},
	{ID: IceForm, Title: "Ice Form", Schools: SchoolIce | SchoolTransmutation, Flags: FlagHelpful | FlagUtility,
		Level: 4, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: HydraForm, Title: "Hydra Form", Schools: SchoolTransmutation | SchoolPoison, Flags: FlagHelpful | FlagUtility,
		Level: 6, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 5},
	{ID: DragonForm, Title: "Dragon Form", Schools: SchoolFire | SchoolTransmutation, Flags: FlagHelpful | FlagUtility,
		Level: 7, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: Necromutation, Title: "Necromutation", Schools: SchoolTransmutation | SchoolNecromancy, Flags: FlagHelpful | FlagUtility,
		Level: 8, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: LedasLiquefaction, Title: "Leda's Liquefaction", Schools: SchoolEarth | SchoolHexes, Flags: FlagArea,
		Level: 4, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: SublimationOfBlood, Title: "Sublimation of Blood", Schools: SchoolNecromancy, Flags: FlagUtility,
		Level: 2, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 2},
	{ID: CurePoison, Title: "Cure Poison", Schools: SchoolPoison, Flags: FlagRecovery | FlagHelpful | FlagNoMagic,
		Level: 3, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 2},

	{ID: Pain, Title: "Pain", Schools: SchoolNecromancy, Flags: FlagDir | FlagTarg,
		Level: 1, PowerCap: 25, MinRange: los, MaxRange: los, Noise: 1},
	{ID: Agony, Title: "Agony", Schools: SchoolNecromancy, Flags: FlagDir | FlagTarg,
		Level: 5, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 4},
	{ID: AnimateSkeleton, Title: "Animate Skeleton", Schools: SchoolNecromancy, Flags: FlagUtility,
		Level: 1, MinRange: noRange, MaxRange: noRange, Noise: 1},
	{ID: AnimateDead, Title: "Animate Dead", Schools: SchoolNecromancy, Flags: FlagArea | FlagNeutral | FlagUtility,
		Level: 4, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: TwistedResurrection, Title: "Twisted Resurrection", Schools: SchoolNecromancy, Flags: FlagUtility,
		Level: 5, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 4},
	{ID: ControlUndead, Title: "Control Undead", Schools: SchoolNecromancy, Flags: FlagArea,
		Level: 6, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 5},
	{ID: DeathChannel, Title: "Death Channel", Schools: SchoolNecromancy, Flags: FlagHelpful,
		Level: 6, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 5},
	{ID: Simulacrum, Title: "Simulacrum", Schools: SchoolIce | SchoolNecromancy, Flags: FlagArea,
		Level: 6, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 5},
	{ID: BorgnjorsRevivification, Title: "Borgnjor's Revivification", Schools: SchoolNecromancy, Flags: FlagUtility,
		Level: 8, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: Haunt, Title: "Haunt", Schools: SchoolSummoning | SchoolNecromancy, Flags: FlagTarg | FlagNotSelf,
		Level: 7, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 6},

	{ID: SummonSmallMammal, Title: "Summon Small Mammal", Schools: SchoolSummoning,
		Level: 1, PowerCap: 80, MinRange: noRange, MaxRange: noRange, Noise: 1},
	{ID: CallImp, Title: "Call Imp", Schools: SchoolSummoning,
		Level: 2, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 2},
	{ID: CallCanineFamiliar, Title: "Call Canine Familiar", Schools: SchoolSummoning,
		Level: 3, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: SummonIceBeast, Title: "Summon Ice Beast", Schools: SchoolIce | SchoolSummoning,
		Level: 4, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: SummonMinorDemon, Title: "Summon Minor Demon", Schools: SchoolSummoning,
		Level: 2, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 2},
	{ID: SummonButterflies, Title: "Summon Butterflies", Schools: SchoolSummoning,
		Level: 1, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 1},
	{ID: SummonLightningSpire, Title: "Summon Lightning Spire", Schools: SchoolSummoning | SchoolAir, Flags: FlagTarg | FlagNeutral | FlagNotSelf,
		Level: 4, PowerCap: 100, MinRange: 2, MaxRange: 2, Noise: 2},
	{ID: SummonGuardianGolem, Title: "Summon Guardian Golem", Schools: SchoolSummoning | SchoolHexes,
		Level: 3, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 3},
	{ID: ShadowCreatures, Title: "Shadow Creatures", Schools: SchoolSummoning,
		Level: 6, MinRange: noRange, MaxRange: noRange, Noise: 5},
	{ID: SummonHorribleThings, Title: "Summon Horrible Things", Schools: SchoolSummoning,
		Level: 8, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: SummonGreaterDemon, Title: "Summon Greater Demon", Schools: SchoolSummoning,
		Level: 7, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: SummonDragon, Title: "Summon Dragon", Schools: SchoolSummoning,
		Level: 9, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 7},
	{ID: SummonHydra, Title: "Summon Hydra", Schools: SchoolSummoning,
		Level: 7, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: MonstrousMenagerie, Title: "Monstrous Menagerie", Schools: SchoolSummoning,
		Level: 7, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: DragonCall, Title: "Dragon's Call", Schools: SchoolSummoning,
		Level: 9, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 7},
	{ID: MalignGateway, Title: "Malign Gateway", Schools: SchoolSummoning | SchoolTranslocation,
		Level: 7, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: SummonForest, Title: "Summon Forest", Schools: SchoolSummoning | SchoolEarth,
		Level: 5, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 4},
	{ID: SummonManaViper, Title: "Summon Mana Viper", Schools: SchoolSummoning | SchoolHexes,
		Level: 5, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 4},
	{ID: Tornado, Title: "Tornado", Schools: SchoolAir, Flags: FlagArea,
		Level: 9, PowerCap: 200, MinRange: noRange, MaxRange: noRange, Noise: 5, EffectNoise: 15},

	{ID: Apportation, Title: "Apportation", Schools: SchoolTranslocation, Flags: FlagTarg | FlagObj | FlagNotSelf,
		Level: 1, PowerCap: 50, MinRange: los, MaxRange: los, Noise: 1, TargetPrompt: "Apport what?"},
	{ID: Blink, Title: "Blink", Schools: SchoolTranslocation, Flags: FlagEscape | FlagSelfench,
		Level: 2, MinRange: noRange, MaxRange: noRange, Noise: 2},
	{ID: ControlledBlink, Title: "Controlled Blink", Schools: SchoolTranslocation, Flags: FlagEscape | FlagSelfench,
		Level: 7, PowerCap: 100, MinRange: noRange, MaxRange: noRange, Noise: 6},
	{ID: Passwall, Title: "Passwall", Schools: SchoolTransmutation | SchoolEarth, Flags: FlagDir | FlagEscape | FlagNotSelf,
		Level: 3, PowerCap: 200, MinRange: 1, MaxRange: 9, Noise: 0},
	{ID: GolubriasPassage, Title: "Passage of Golubria", Schools: SchoolTranslocation, Flags: FlagTarg | FlagEscape | FlagNotSelf,
		Level: 4, MinRange: los, MaxRange: los, Noise: 3},

	{ID: HasteOther, Title: "Haste Other", Schools: SchoolCharms, Flags: FlagDir | FlagTarg | FlagHelpful | FlagMonster,
		Level: 3, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 3},
	{ID: MinorHealing, Title: "Minor Healing", Schools: SchoolNecromancy, Flags: FlagRecovery | FlagHelpful | FlagMonster,
		Level: 2, PowerCap: 50, MinRange: noRange, MaxRange: noRange, Noise: 2},
	{ID: HolyBreath, Title: "Holy Breath", Schools: SchoolConjuration, Flags: FlagTarg | FlagArea | FlagCloud | FlagMonster,
		Level: 5, PowerCap: 200, MinRange: 5, MaxRange: 5, Noise: 5, EffectNoise: 2},
	{ID: HellfireBurst, Title: "Hellfire Burst", Schools: SchoolFire | SchoolConjuration, Flags: FlagTarg | FlagArea | FlagMonster,
		Level: 9, PowerCap: 200, MinRange: los, MaxRange: los, Noise: 9},
}

// zapPowerCaps holds the cap of the beam effect behind zap-backed spells.
// A spell appears here exactly when it fires a tracer-capable zap.
var zapPowerCaps = map[ID]int{
	MagicDart:     25,
	Fireball:      200,
	MephiticCloud: 100,
	Sandblast:     50,
	Shock:         25,
	LightningBolt: 200,
	Sting:         25,
	ThrowFlame:    50,
	ThrowFrost:    50,
	ThrowIcicle:   100,
	BoltOfFire:    200,
	BoltOfCold:    200,
	IronShot:      200,
	Slow:          100,
	Confuse:       100,
	Pain:          100,
	Agony:         100,
	HasteOther:    100,
}
