package abilities_test

import (
	"testing"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubContext struct {
	maxHP     int
	mp        int
	needsFood bool
	prices    map[abilities.ID]int
	sacPiety  map[abilities.ID]int
}

func (s stubContext) MaxHP() int { return s.maxHP }
func (s stubContext) MP() int { return s.mp }
func (s stubContext) NeedsFood() bool { return s.needsFood }
func (s stubContext) GoldPrice(id abilities.ID) int { return s.prices[id] }
func (s stubContext) SacrificePiety(id abilities.ID) int { return s.sacPiety[id] }

func fed() stubContext {
	return stubContext{maxHP: 100, mp: 10, needsFood: true}
}

func TestValidate(t *testing.T) {
	assert.NotPanics(t, abilities.Validate)
}

func TestLookup_MissReturnsSentinel(t *testing.T) {
	for _, id := range []abilities.ID{-5, abilities.NonAbility, 100000} {
		def := abilities.Lookup(id)
		require.NotNil(t, def)
		assert.Equal(t, abilities.NonAbility, def.ID)
		assert.Equal(t, "No ability", def.Name)
	}
}

func TestByName_RoundTripsEveryAbility(t *testing.T) {
	for _, def := range abilities.All()[1:] {
		assert.Equal(t, def.ID, abilities.ByName(def.Name), def.Name)
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  abilities.ID
	}{
		{name: "exact", input: "Breathe Fire", want: abilities.BreatheFire},
		{name: "any case", input: "bREATHE fIRE", want: abilities.BreatheFire},
		{name: "apostrophe", input: "trog's hand", want: abilities.TrogRegenMR},
		{name: "partial does not match", input: "Breathe", want: abilities.NonAbility},
		{name: "sentinel name is skipped", input: "No ability", want: abilities.NonAbility},
		{name: "empty", input: "", want: abilities.NonAbility},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, abilities.ByName(tt.input))
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := abilities.All()
	all[1].Name = "Changed"
	assert.Equal(t, "Spit Poison", abilities.Name(abilities.SpitPoison))
	assert.Equal(t, len(all)-1, abilities.Count())
}

func TestMPCost(t *testing.T) {
	assert.Equal(t, 9, abilities.MPCost(abilities.LugonuAbyssEnter))
	assert.Equal(t, 0, abilities.MPCost(abilities.NonAbility))
}

func TestFlagsHas(t *testing.T) {
	f := abilities.FlagExhaustion | abilities.FlagSkillDrain
	assert.True(t, f.Has(abilities.FlagExhaustion))
	assert.True(t, f.Has(abilities.FlagExhaustion|abilities.FlagSkillDrain))
	assert.False(t, f.Has(abilities.FlagExhaustion|abilities.FlagConfOK))
	assert.False(t, f.Has(abilities.FlagNone))
}

func TestClassifiers(t *testing.T) {
	assert.True(t, abilities.IsBreath(abilities.SpitAcid))
	assert.False(t, abilities.IsBreath(abilities.Hellfire))
	assert.True(t, abilities.IsRuSacrifice(abilities.RuSacrificeEye))
	assert.False(t, abilities.IsRuSacrifice(abilities.RuRejectSacrifices))
}

func TestCostDescription(t *testing.T) {
	tests := []struct {
		name string
		id   abilities.ID
		ctx  func() stubContext
		want string
	}{
		{name: "sentinel", id: abilities.NonAbility, ctx: fed, want: "None"},
		{name: "free ability", id: abilities.StopRecall, ctx: fed, want: "None"},
		{name: "permanent mp", id: abilities.MummyRestoration, ctx: fed, want: "1 Permanent MP"},
		{
			name: "per-mille hp rounds up",
			id:   abilities.Hellfire,
			ctx: func() stubContext {
				c := fed()
				c.maxHP = 47
				return c
			},
			want: "8 HP, Hunger",
		},
		{name: "blink", id: abilities.Blink, ctx: fed, want: "5 HP, Hunger"},
		{name: "fixed hp with piety", id: abilities.MakhlebGreaterServant, ctx: fed, want: "10 HP, Hunger, Piety"},
		{name: "mp with flags", id: abilities.LugonuAbyssEnter, ctx: fed, want: "9 MP, Hunger, Piety, Pain"},
		{name: "no mp, flags only", id: abilities.RuDrawOutPower, ctx: fed, want: "Exhaustion, Skill drain"},
		{name: "variable mp", id: abilities.PakellasDeviceSurge, ctx: fed, want: "MP, Hunger, Piety, Instant"},
		{
			name: "quick charge uses current mp",
			id:   abilities.PakellasQuickCharge,
			ctx: func() stubContext {
				c := fed()
				c.mp = 9
				return c
			},
			want: "6 MP, Hunger, Piety",
		},
		{
			name: "quick charge never below one",
			id:   abilities.PakellasQuickCharge,
			ctx: func() stubContext {
				c := fed()
				c.mp = 0
				return c
			},
			want: "1 MP, Hunger, Piety",
		},
		{name: "piety flag", id: abilities.YredInjuryMirror, ctx: fed, want: "Piety"},
		{name: "variable fruit", id: abilities.FedhasEvolution, ctx: fed, want: "2 MP, Fruit or Piety"},
		{
			name: "foodless hides hunger",
			id:   abilities.SpitPoison,
			ctx: func() stubContext {
				c := fed()
				c.needsFood = false
				return c
			},
			want: "Breath",
		},
		{name: "free petition", id: abilities.GozagPotionPetition, ctx: fed, want: "Free"},
		{name: "unpriced merchant", id: abilities.GozagCallMerchant, ctx: fed, want: "Gold"},
		{
			name: "priced bribe",
			id:   abilities.GozagBribeBranch,
			ctx: func() stubContext {
				c := fed()
				c.prices = map[abilities.ID]int{abilities.GozagBribeBranch: 3000}
				return c
			},
			want: "3000 Gold",
		},
		{name: "sacrifice strips prefix", id: abilities.RuSacrificeHand, ctx: fed, want: "a Hand"},
		{name: "sacrifice words", id: abilities.RuSacrificeWords, ctx: fed, want: "Words"},
		{
			name: "sacrifice with known piety",
			id:   abilities.RuSacrificeWords,
			ctx: func() stubContext {
				c := fed()
				c.sacPiety = map[abilities.ID]int{abilities.RuSacrificeWords: 37}
				return c
			},
			want: "Words (37 piety)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, abilities.CostDescription(tt.id, tt.ctx()))
		})
	}
}

func TestDetailedCostDescription(t *testing.T) {
	tests := []struct {
		name string
		id   abilities.ID
		want string
	}{
		{name: "nothing", id: abilities.StopRecall, want: "This ability costs: nothing."},
		{name: "max mp", id: abilities.MummyRestoration, want: "This ability costs: \nMax MP : 1"},
		{
			name: "sanctuary",
			id:   abilities.ZinSanctuary,
			want: "This ability costs: \nMP     : 7\nHunger : ####.\nPiety  : extremely large",
		},
		{
			name: "divine vigour",
			id:   abilities.ElyvilonDivineVigour,
			want: "This ability costs: \nHunger : #####\nPiety  : moderate\nYou can use it even if confused.",
		},
		{
			name: "variable piety",
			id:   abilities.JiyvaJellyParalyse,
			want: "This ability costs: \nMP     : 3\nPiety  : variable",
		},
		{
			name: "flags only",
			id:   abilities.RuDrawOutPower,
			want: "This ability costs: nothing.\nIt cannot be used when exhausted.\nYou can use it even if confused.\nIt will temporarily drain your skills when used.",
		},
		{
			name: "free gold",
			id:   abilities.GozagPotionPetition,
			want: "This ability costs: \nGold   : free",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, abilities.DetailedCostDescription(tt.id, fed()))
		})
	}
}

func TestHungerCostString(t *testing.T) {
	tests := []struct {
		name      string
		hunger    int
		needsFood bool
		want      string
	}{
		{name: "foodless", hunger: 300, needsFood: false, want: "N/A"},
		{name: "zero", hunger: 0, needsFood: true, want: "None"},
		{name: "one bar", hunger: 14, needsFood: true, want: "#...."},
		{name: "two bars", hunger: 15, needsFood: true, want: "##..."},
		{name: "full", hunger: 900, needsFood: true, want: "#####"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, abilities.HungerCostString(tt.hunger, tt.needsFood))
		})
	}
}
