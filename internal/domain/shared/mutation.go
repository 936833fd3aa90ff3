package shared

// Mutation is an innate or acquired trait with a level from 0 to 3
type Mutation int

const (
	MutSpitPoison Mutation = iota
	MutBlink
	MutHurlHellfire
	MutTenguFlight
	MutBigWings
	MutMummyRestoration
	MutDistortionField
	MutHighMagic
	MutLowMagic
	MutNoLove
	MutNoArtifice
	MutNoConjurationMagic
	MutNoHexesMagic
	MutNoCharmMagic
	MutNoFireMagic
	MutNoIceMagic
	MutNoTransmutationMagic
	MutNoNecromancyMagic
	MutNoSummoningMagic
	MutNoTranslocationMagic
	MutNoPoisonMagic
	MutNoEarthMagic
	MutNoAirMagic

	NumMutations
)

// IsSacrifice marks mutations granted by Ru sacrifices; Zin will not cure
// those.
func (m Mutation) IsSacrifice() bool {
	switch m {
	case MutNoLove, MutNoArtifice:
		return true
	default:
		return m >= MutNoConjurationMagic && m <= MutNoAirMagic
	}
}
