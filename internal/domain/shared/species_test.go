package shared_test

import (
	"testing"

	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestSpeciesByName(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   shared.Species
		wantOK bool
	}{
		{name: "exact", input: "Deep Dwarf", want: shared.SpeciesDeepDwarf, wantOK: true},
		{name: "folded", input: "vINE sTALKER", want: shared.SpeciesVineStalker, wantOK: true},
		{name: "base draconian", input: "draconian", want: shared.SpeciesBaseDraconian, wantOK: true},
		{name: "unknown", input: "Djinni", want: shared.SpeciesHuman, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := shared.SpeciesByName(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpecies_Plural(t *testing.T) {
	assert.Equal(t, "Formicids", shared.SpeciesFormicid.Plural())
	assert.Equal(t, "Deep Elves", shared.SpeciesDeepElf.Plural())
	assert.Equal(t, "Deep Dwarves", shared.SpeciesDeepDwarf.Plural())
	assert.Equal(t, "Merfolk", shared.SpeciesMerfolk.Plural())
}

func TestSpecies_UndeadState(t *testing.T) {
	assert.Equal(t, shared.Undead, shared.SpeciesMummy.UndeadState())
	assert.Equal(t, shared.SemiUndead, shared.SpeciesVampire.UndeadState())
	assert.Equal(t, shared.HungryDead, shared.SpeciesGhoul.UndeadState())
	assert.Equal(t, shared.Alive, shared.SpeciesTengu.UndeadState())
}

func TestSpecies_IsDraconian(t *testing.T) {
	assert.True(t, shared.SpeciesBaseDraconian.IsDraconian())
	assert.True(t, shared.SpeciesPaleDraconian.IsDraconian())
	assert.False(t, shared.SpeciesVampire.IsDraconian())
	assert.Equal(t, "Unknown", shared.Species(-1).String())
}

func TestGodByName(t *testing.T) {
	g, ok := shared.GodByName("the shining one")
	assert.True(t, ok)
	assert.Equal(t, shared.GodShiningOne, g)

	_, ok = shared.GodByName("Mollusc")
	assert.False(t, ok)
}

func TestHungerStateOf(t *testing.T) {
	tests := []struct {
		name   string
		hunger int
		want   shared.HungerState
	}{
		{name: "empty", hunger: 0, want: shared.HungerStarving},
		{name: "starving edge", hunger: 1000, want: shared.HungerStarving},
		{name: "near starving", hunger: 1001, want: shared.HungerNearStarving},
		{name: "hungry edge", hunger: 2600, want: shared.HungerHungry},
		{name: "satiated", hunger: 2601, want: shared.HungerSatiated},
		{name: "full starts at 7000", hunger: 7000, want: shared.HungerFull},
		{name: "engorged", hunger: 11000, want: shared.HungerEngorged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.HungerStateOf(tt.hunger))
		})
	}
}

func TestForm(t *testing.T) {
	assert.False(t, shared.FormNone.ChangesPhysiology())
	assert.False(t, shared.FormBladeHands.ChangesPhysiology())
	assert.True(t, shared.FormDragon.ChangesPhysiology())
	assert.True(t, shared.FormTree.ForbidsFlight())
	assert.False(t, shared.FormBat.ForbidsFlight())
}
