package shared

// Duration indexes a timed status on the player, counted in game-time units
type Duration int

const (
	DurConfusion Duration = iota
	DurBerserk
	DurExhausted
	DurBreathWeapon
	DurTransformation
	DurFlight
	DurInvisibility
	DurSongOfSlaying
	DurPoisoning
	DurSlow
	DurWeak
	DurPetrifying
	DurDeathsDoor
	DurDimensionAnchor
	DurLiquefying
	DurTornado
	DurTornadoCooldown
	DurForested
	DurHeroism
	DurFinesse
	DurRecite
	DurLifesaving
	DurMirrorDamage
	DurDeviceSurge
	DurGraspingRoots
	DurRegeneration
	DurDivineShield

	NumDurations
)

// BaselineDelay is the time one ordinary action takes
const BaselineDelay = 10
