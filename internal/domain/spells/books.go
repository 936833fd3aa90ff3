package spells

// Book is a spellbook: the way player spells enter the game
type Book struct {
	Name   string `json:"name"`
	Spells []ID   `json:"spells"`
}

var books = []Book{
	{Name: "Book of Minor Magic", Spells: []ID{MagicDart, Blink, CallImp, RepelMissiles, ConjureFlame, MephiticCloud}},
	{Name: "Book of Flames", Spells: []ID{ThrowFlame, ConjureFlame, BoltOfFire, Fireball, DelayedFireball}},
	{Name: "Book of Frost", Spells: []ID{ThrowFrost, ThrowIcicle, OzocubusRefrigeration, IceForm, SummonIceBeast, FreezingCloud}},
	{Name: "Book of Air", Spells: []ID{Shock, Swiftness, Airstrike, LightningBolt, ConjureBallLightning, SummonLightningSpire}},
	{Name: "Book of the Sky", Spells: []ID{ChainLightning, Tornado, StaticDischarge}},
	{Name: "Book of Geomancy", Spells: []ID{Sandblast, Passwall, Stoneskin, LRD, IronShot, StatueForm}},
	{Name: "Book of Changes", Spells: []ID{BeastlyAppendage, SpiderForm, BladeHands, HydraForm, DragonForm}},
	{Name: "Necronomicon", Spells: []ID{Pain, Agony, AnimateSkeleton, AnimateDead, TwistedResurrection, ControlUndead, DeathChannel, Simulacrum, BorgnjorsRevivification, Haunt, Necromutation, DeathsDoor, Regeneration, SublimationOfBlood, ExcruciatingWounds}},
	{Name: "Book of Callings", Spells: []ID{SummonSmallMammal, SummonButterflies, CallCanineFamiliar, SummonMinorDemon, SummonGuardianGolem, ShadowCreatures, SummonManaViper, SummonForest}},
	{Name: "Grand Grimoire", Spells: []ID{SummonHorribleThings, SummonGreaterDemon, MalignGateway, MonstrousMenagerie, SummonHydra, SummonDragon, DragonCall}},
	{Name: "Book of Spatial Translocations", Spells: []ID{Apportation, PortalProjectile, GolubriasPassage, ControlledBlink, WarpBrand}},
	{Name: "Book of Hexes", Spells: []ID{Slow, Confuse, Darkness, Invisibility, Discord, LedasLiquefaction, ViolentUnravelling, SpectralWeapon, FulminantPrism}},
	{Name: "Book of Annihilations", Spells: []ID{FireStorm, Glaciate, PoisonousCloud, OlgrebsToxicRadiance, Sting, CurePoison}},
}

// Books returns a copy of the spellbook list
func Books() []Book {
	out := make([]Book, len(books))
	for i, b := range books {
		out[i] = Book{Name: b.Name, Spells: append([]ID(nil), b.Spells...)}
	}
	return out
}
