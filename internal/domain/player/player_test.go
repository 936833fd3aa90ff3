package player_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	spells.InitSpellDescs()
	spells.InitSpellNameCache()
	os.Exit(m.Run())
}

func newPlayer() *player.Player {
	p := player.New("p1", "owner", "Tester")
	p.XL = 10
	p.HP, p.BaseMaxHP = 50, 50
	p.MP, p.BaseMaxMP = 10, 10
	return p
}

func TestDecHP(t *testing.T) {
	tests := []struct {
		name  string
		hp    int
		loss  int
		fatal bool
		want  int
	}{
		{name: "ordinary loss", hp: 50, loss: 10, want: 40},
		{name: "non-fatal keeps one", hp: 5, loss: 10, want: 1},
		{name: "fatal can kill", hp: 5, loss: 10, fatal: true, want: -5},
		{name: "zero is a no-op", hp: 5, loss: 0, want: 5},
		{name: "non-fatal lifts a dying player", hp: 0, loss: 3, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			p.HP = tt.hp
			p.DecHP(tt.loss, tt.fatal)
			assert.Equal(t, tt.want, p.HP)
		})
	}
}

func TestRot(t *testing.T) {
	p := newPlayer()

	p.RotHP(10)
	assert.Equal(t, 40, p.MaxHP())
	assert.Equal(t, 40, p.HP)
	assert.Equal(t, 10, p.Rotted())

	p.RotHP(1000)
	assert.Equal(t, 1, p.MaxHP(), "rot never takes the last point")

	p.Gear.MPBonus = 5
	p.MP = 15
	p.RotMP(2)
	assert.Equal(t, 8, p.RealMP(false))
	assert.Equal(t, 13, p.RealMP(true))
	assert.Equal(t, 13, p.MP)

	p.DecMP(100)
	assert.Equal(t, 0, p.MP)
}

func TestEnoughHPAndMP(t *testing.T) {
	p := newPlayer()

	ok, msg := p.EnoughHP(49)
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, msg = p.EnoughHP(50)
	assert.False(t, ok)
	assert.Equal(t, "You don't have enough health at the moment.", msg)

	p.SetDuration(shared.DurDeathsDoor, 20)
	ok, msg = p.EnoughHP(1)
	assert.False(t, ok)
	assert.Equal(t, "You cannot pay life while functionally dead.", msg)

	p.MP = 3
	ok, msg = p.EnoughMP(5)
	assert.False(t, ok)
	assert.Equal(t, "You don't have enough magic at the moment.", msg)

	ok, msg = p.EnoughMP(11)
	assert.False(t, ok)
	assert.Equal(t, "You don't have enough magic capacity.", msg)

	ok, _ = p.EnoughMP(3)
	assert.True(t, ok)
}

func TestHunger(t *testing.T) {
	p := newPlayer()
	start := p.Hunger
	p.MakeHungry(100)
	assert.Equal(t, start-100, p.Hunger)
	assert.True(t, p.NeedsFood())

	p.Species = shared.SpeciesMummy
	p.MakeHungry(100)
	assert.Equal(t, start-100, p.Hunger, "mummies never get hungry")
	assert.False(t, p.NeedsFood())

	p.Species = shared.SpeciesVampire
	p.Hunger = 500
	assert.False(t, p.NeedsFood(), "starving vampires pay no food")
}

func TestPiety(t *testing.T) {
	tests := []struct {
		piety int
		rank  int
	}{
		{0, 0}, {29, 0}, {30, 1}, {49, 1}, {50, 2}, {75, 3}, {100, 4}, {120, 5}, {159, 5}, {160, 6}, {200, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.rank, player.PietyRank(tt.piety), "piety %d", tt.piety)
	}

	p := newPlayer()
	p.GainPiety(10)
	assert.Zero(t, p.Piety, "atheists gain nothing")

	p.Religion = shared.GodTrog
	p.GainPiety(500)
	assert.Equal(t, 200, p.Piety)
	p.LosePiety(500)
	assert.Zero(t, p.Piety)
}

func TestInGoodStanding(t *testing.T) {
	p := newPlayer()
	p.Religion = shared.GodVehumet
	p.Piety = 100

	assert.True(t, p.InGoodStanding(shared.GodVehumet, 3))
	assert.False(t, p.InGoodStanding(shared.GodVehumet, 4))
	assert.True(t, p.InGoodStanding(shared.GodVehumet, -1))
	assert.False(t, p.InGoodStanding(shared.GodTrog, -1))

	p.Penance[shared.GodVehumet] = 5
	assert.False(t, p.InGoodStanding(shared.GodVehumet, -1))
}

func TestCapstone(t *testing.T) {
	p := newPlayer()
	p.Religion = shared.GodZin
	p.Piety = 160
	assert.True(t, p.CanDoCapstone())

	p.CapstoneUsed = true
	assert.False(t, p.CanDoCapstone())
}

func TestGodPowers(t *testing.T) {
	powers := player.GodPowers(shared.GodTrog)
	require.Len(t, powers, 4)
	assert.Equal(t, player.GodPower{Rank: 0, Ability: abilities.TrogBurnSpellbooks}, powers[0])

	powers[0].Rank = 99
	assert.Equal(t, 0, player.GodPowers(shared.GodTrog)[0].Rank, "callers get a copy")

	assert.Empty(t, player.GodPowers(shared.GodXom))
}

func TestLetters(t *testing.T) {
	assert.Equal(t, 'a', player.IndexToLetter(0))
	assert.Equal(t, 'z', player.IndexToLetter(25))
	assert.Equal(t, 'A', player.IndexToLetter(26))
	assert.Equal(t, 'Z', player.IndexToLetter(51))
	assert.Equal(t, rune(0), player.IndexToLetter(52))

	for i := 0; i < player.NumSlots; i++ {
		assert.Equal(t, i, player.LetterToIndex(player.IndexToLetter(i)))
	}
	assert.Equal(t, -1, player.LetterToIndex('!'))
}

func TestAbilitySlots(t *testing.T) {
	p := newPlayer()
	p.AbilityLetters[3] = abilities.Blink
	p.AbilityLetters[7] = abilities.YredRecallUndeadSlaves

	identity := func(id abilities.ID) abilities.ID { return id }
	assert.Equal(t, 3, p.AbilitySlot(abilities.Blink, identity))
	assert.Equal(t, -1, p.AbilitySlot(abilities.StopRecall, identity))

	recalling := func(id abilities.ID) abilities.ID {
		if id == abilities.YredRecallUndeadSlaves {
			return abilities.StopRecall
		}
		return id
	}
	assert.Equal(t, 7, p.AbilitySlot(abilities.StopRecall, recalling))

	require.True(t, p.SwapAbilitySlots(3, 7))
	assert.Equal(t, abilities.YredRecallUndeadSlaves, p.AbilityLetters[3])
	assert.Equal(t, abilities.Blink, p.AbilityLetters[7])
	assert.False(t, p.SwapAbilitySlots(-1, 7))
	assert.False(t, p.SwapAbilitySlots(0, 52))
}

func TestSpellMemory(t *testing.T) {
	p := newPlayer()

	assert.Equal(t, 'a', p.LearnSpell(spells.MagicDart, nil))
	assert.Equal(t, 'b', p.LearnSpell(spells.Blink, nil))
	assert.Equal(t, rune(0), p.LearnSpell(spells.Blink, nil), "already known")
	assert.Equal(t, rune(0), p.LearnSpell(spells.NoSpell, nil))

	assert.True(t, p.HasSpell(spells.MagicDart))
	assert.Equal(t, 2, p.SpellCount())
	assert.Equal(t, spells.Blink, p.SpellAtLetter('b'))

	require.True(t, p.ForgetSpell(spells.MagicDart))
	assert.False(t, p.HasSpell(spells.MagicDart))
	assert.Equal(t, spells.NoSpell, p.SpellAtLetter('a'))
	assert.False(t, p.ForgetSpell(spells.MagicDart))

	assert.Equal(t, 'a', p.LearnSpell(spells.Fireball, nil), "freed letters are reused")
	assert.Equal(t, []spells.ID{spells.Fireball, spells.Blink}, p.KnownSpells())
}

func TestSpellMemory_LetterRules(t *testing.T) {
	p := newPlayer()
	p.LearnSpell(spells.MagicDart, nil) // a
	p.LearnSpell(spells.Blink, nil)     // b

	rules := []player.LetterRule{
		{Pattern: regexp.MustCompile("fire"), Letters: "b+a"},
	}

	// b is taken and overwrite is off for it; a is taken but may be displaced
	assert.Equal(t, 'a', p.LearnSpell(spells.Fireball, rules))
	assert.Equal(t, spells.Fireball, p.SpellAtLetter('a'))
	assert.Equal(t, spells.MagicDart, p.SpellAtLetter('c'), "displaced spell moves to the first free letter")

	// delayed fireball matches the same rule as the occupant of a, so it
	// may not displace it
	assert.Equal(t, 'd', p.LearnSpell(spells.DelayedFireball, rules))
}

func TestClone(t *testing.T) {
	p := newPlayer()
	p.Mutations[shared.MutBlink] = 1
	p.RecallList = []string{"orc"}

	c := p.Clone()
	c.Mutations[shared.MutBlink] = 3
	c.RecallList[0] = "ogre"
	c.AbilityLetters[0] = abilities.Fly

	assert.Equal(t, 1, p.MutationLevel(shared.MutBlink))
	assert.Equal(t, "orc", p.RecallList[0])
	assert.Equal(t, abilities.NonAbility, p.AbilityLetters[0])
	assert.Nil(t, (*player.Player)(nil).Clone())
}

func TestNoTeleportReason(t *testing.T) {
	p := newPlayer()
	assert.Empty(t, p.NoTeleportReason(true))

	p.SetDuration(shared.DurDimensionAnchor, 10)
	p.Form = shared.FormTree
	assert.Equal(t,
		"You cannot teleport because you are locked down by Dimension Anchor and held in place by your roots.",
		p.NoTeleportReason(true))

	p.Sprint = true
	assert.Equal(t, "Long-range teleportation is disallowed in Dungeon Sprint.", p.NoTeleportReason(false))

	f := newPlayer()
	f.Species = shared.SpeciesFormicid
	assert.Equal(t, "Formicids cannot teleport.", f.NoTeleportReason(true))
}

func TestBerserkBlocker(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *player.Player)
		want  string
	}{
		{name: "fresh", setup: func(p *player.Player) {}, want: ""},
		{name: "berserk", setup: func(p *player.Player) { p.SetDuration(shared.DurBerserk, 5) }, want: "You're already berserk!"},
		{name: "exhausted", setup: func(p *player.Player) { p.SetDuration(shared.DurExhausted, 5) }, want: "You're too exhausted to go berserk."},
		{name: "mummy", setup: func(p *player.Player) { p.Species = shared.SpeciesMummy }, want: "You cannot raise a blood rage in your lifeless body."},
		{name: "formicid", setup: func(p *player.Player) { p.Species = shared.SpeciesFormicid }, want: "Your stasis prevents you from going berserk."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPlayer()
			tt.setup(p)
			assert.Equal(t, tt.want, p.BerserkBlocker())
			assert.Equal(t, tt.want == "", p.CanGoBerserk())
		})
	}
}

func TestIsLifelessUndead(t *testing.T) {
	p := newPlayer()
	assert.False(t, p.IsLifelessUndead(true))

	p.Species = shared.SpeciesVampire
	p.Hunger = shared.HungerSatiatedAt - 1
	assert.False(t, p.IsLifelessUndead(true))
	p.Hunger = 500
	assert.True(t, p.IsLifelessUndead(true))
	assert.False(t, p.IsLifelessUndead(false))

	p.Species = shared.SpeciesGhoul
	assert.True(t, p.IsLifelessUndead(false))

	h := newPlayer()
	h.Form = shared.FormLich
	assert.True(t, h.IsLifelessUndead(true))
	assert.False(t, h.IsLifelessUndead(false))
}

func TestAilingAndMutations(t *testing.T) {
	p := newPlayer()
	assert.False(t, p.Ailing())
	p.Stats = player.Stats{Str: 8, Int: 10, Dex: 10, MaxStr: 10, MaxInt: 10, MaxDex: 10}
	assert.True(t, p.Ailing())

	p.Mutations[shared.MutBlink] = 2
	p.Mutations[shared.MutNoLove] = 1
	assert.Equal(t, 3, p.HowMutated(true))
	assert.Equal(t, 2, p.HowMutated(false))
}

func TestView(t *testing.T) {
	p := newPlayer()
	p.GoldPrices = map[abilities.ID]int{abilities.GozagCallMerchant: 700}
	v := p.View(nil)

	assert.Equal(t, "700 Gold", abilities.CostDescription(abilities.GozagCallMerchant, v))

	p.SacrificePiety = map[abilities.ID]int{abilities.RuSacrificeArtifice: 55}
	assert.Equal(t, "Artifice (55 piety)", abilities.CostDescription(abilities.RuSacrificeArtifice, v))
	assert.Equal(t, "", spells.UselessnessReason(spells.MagicDart, v, spells.UselessOptions{Temp: true}))

	p.SetDuration(shared.DurConfusion, 3)
	assert.True(t, spells.IsUseless(spells.MagicDart, v, spells.UselessOptions{Temp: true}))
}

func TestFormStatRisk(t *testing.T) {
	p := newPlayer()
	p.Stats.Str, p.Stats.Dex = 4, 10

	assert.Equal(t, "strength", p.FormStatRisk(shared.FormBat))
	assert.Empty(t, p.FormStatRisk(shared.FormSpider))

	p.Form = shared.FormDragon
	p.Stats.Str = 9
	assert.Equal(t, "strength", p.FormStatRisk(shared.FormNone), "losing dragon strength")

	p.Form = shared.FormBat
	p.Stats.Str, p.Stats.Dex = 3, 4
	assert.Equal(t, "dexterity", p.FormStatRisk(shared.FormNone))
}
