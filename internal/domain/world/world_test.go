package world_test

import (
	"os"
	"testing"

	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
	"github.com/KirkDiggler/crawl-talents/internal/domain/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sight struct{ vision int }

func (s sight) CurrentVision() int                  { return s.vision }
func (s sight) WieldingRocks() bool                 { return false }
func (s sight) InGoodStanding(shared.God, int) bool { return false }

func TestMain(m *testing.M) {
	spells.InitSpellDescs()
	spells.InitSpellNameCache()
	os.Exit(m.Run())
}

func TestTerrain(t *testing.T) {
	assert.False(t, world.TerrainFloor.Dangerous())
	assert.False(t, world.TerrainShallowWater.Dangerous())
	assert.True(t, world.TerrainDeepWater.Dangerous())
	assert.True(t, world.TerrainLava.Dangerous())
	assert.Equal(t, "lava", world.TerrainLava.String())
}

func TestSnapshot_ReciteAudience(t *testing.T) {
	snap := &world.Snapshot{}
	assert.False(t, snap.ReciteAudience())
	assert.True(t, snap.AbyssExists())

	snap.Monsters = []world.Monster{{Name: "rat", Pos: shared.Coord{X: 2}}}
	assert.False(t, snap.ReciteAudience(), "allies do not listen")

	snap.Monsters = append(snap.Monsters, world.Monster{Name: "orc", Pos: shared.Coord{X: 3}, Hostile: true})
	assert.True(t, snap.ReciteAudience())
}

func TestBattlefield_NearestFoe(t *testing.T) {
	snap := &world.Snapshot{Monsters: []world.Monster{
		{Name: "ally", Pos: shared.Coord{X: 1}},
		{Name: "far", Pos: shared.Coord{X: 6, Y: -2}, Hostile: true},
		{Name: "near", Pos: shared.Coord{X: -3, Y: 3}, Hostile: true},
	}}

	bf := snap.Battlefield(sight{vision: 7})
	assert.Equal(t, 3, bf.NearestFoeDistance())
	assert.Equal(t, 7, bf.CurrentVision())

	empty := (&world.Snapshot{}).Battlefield(sight{vision: 7})
	assert.Equal(t, -1, empty.NearestFoeDistance())
}

func TestBattlefield_CellsWithin(t *testing.T) {
	bf := (&world.Snapshot{}).Battlefield(sight{vision: 2})

	assert.Len(t, bf.CellsWithin(1), 8)
	assert.Len(t, bf.CellsWithin(5), 24, "clamped to vision")
	assert.Empty(t, bf.CellsWithin(-1))
	assert.NotContains(t, bf.CellsWithin(1), shared.Coord{})
}

func TestBattlefield_Trace(t *testing.T) {
	snap := &world.Snapshot{Monsters: []world.Monster{
		{Name: "goblin", Pos: shared.Coord{X: 2}, Hostile: true},
		{Name: "dog", Pos: shared.Coord{X: 4}},
		{Name: "kobold", Pos: shared.Coord{Y: 3}, Hostile: true},
	}}
	bf := snap.Battlefield(sight{vision: 7})

	tests := []struct {
		name   string
		target shared.Coord
		rng    int
		want   spells.TraceResult
	}{
		{name: "beam passes through both", target: shared.Coord{X: 1}, rng: 7, want: spells.TraceResult{Foes: 1, Friends: 1}},
		{name: "short beam stops early", target: shared.Coord{X: 1}, rng: 3, want: spells.TraceResult{Foes: 1}},
		{name: "other axis", target: shared.Coord{Y: 3}, rng: 7, want: spells.TraceResult{Foes: 1}},
		{name: "diagonal misses", target: shared.Coord{X: 1, Y: 1}, rng: 7, want: spells.TraceResult{}},
		{name: "self target", target: shared.Coord{}, rng: 7, want: spells.TraceResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bf.Trace(spells.MagicDart, tt.target, tt.rng))
		})
	}
}

func TestBattlefield_CloudThreatens(t *testing.T) {
	snap := &world.Snapshot{Monsters: []world.Monster{
		{Name: "ogre", Pos: shared.Coord{X: 4}, Hostile: true, Threatening: true},
		{Name: "bat", Pos: shared.Coord{Y: 2}, Hostile: true},
	}}
	bf := snap.Battlefield(sight{vision: 7})

	assert.True(t, bf.CloudThreatens(spells.FreezingCloud, shared.Coord{X: 3}, 5))
	assert.False(t, bf.CloudThreatens(spells.FreezingCloud, shared.Coord{X: 3}, 2), "aim out of range")
	assert.False(t, bf.CloudThreatens(spells.FreezingCloud, shared.Coord{Y: 2}, 5), "harmless monsters are ignored")
}

func TestBattlefield_NoHostileInRange(t *testing.T) {
	snap := &world.Snapshot{Monsters: []world.Monster{
		{Name: "orc", Pos: shared.Coord{X: 5}, Hostile: true, Threatening: true},
	}}
	bf := snap.Battlefield(sight{vision: 7})
	require.Equal(t, 5, bf.NearestFoeDistance())

	assert.False(t, spells.NoHostileInRange(spells.MagicDart, bf))
	assert.False(t, spells.NoHostileInRange(spells.FreezingCloud, bf))
	assert.True(t, spells.NoHostileInRange(spells.Sandblast, bf))
}
