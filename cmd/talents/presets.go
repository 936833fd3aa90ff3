package main

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

type preset struct {
	name  string
	build func(p *player.Player)
}

func worship(g shared.God, piety int) func(p *player.Player) {
	return func(p *player.Player) {
		p.Religion = g
		p.Piety = piety
		p.Skills[shared.SkillInvocations] = 120
	}
}

var presets = map[string]preset{
	"human": {name: "Wanderer", build: func(*player.Player) {}},
	"red-draconian": {name: "Ember", build: func(p *player.Player) {
		p.Species = shared.SpeciesRedDraconian
	}},
	"deep-dwarf": {name: "Anvil", build: func(p *player.Player) {
		p.Species = shared.SpeciesDeepDwarf
		p.Skills[shared.SkillEvocations] = 80
	}},
	"mummy": {name: "Wrappings", build: func(p *player.Player) {
		p.Species = shared.SpeciesMummy
		p.Mutations[shared.MutMummyRestoration] = 1
		p.Stats.Str--
	}},
	"berserker": {name: "Grunt", build: worship(shared.GodTrog, 150)},
	"demonologist": {name: "Ash", build: worship(shared.GodMakhleb, 150)},
	"healer": {name: "Mercy", build: worship(shared.GodElyvilon, 160)},
	"paladin": {name: "Dawn", build: worship(shared.GodShiningOne, 140)},
	"necromancer": {name: "Bones", build: func(p *player.Player) {
		worship(shared.GodKikubaaqudgha, 120)(p)
		p.Skills[shared.SkillNecromancy] = 100
		p.LearnSpell(spells.Pain, nil)
	}},
	"sacrificer": {name: "Ascetic", build: func(p *player.Player) {
		worship(shared.GodRu, 60)(p)
		p.RuSacrifices = []abilities.ID{abilities.RuSacrificeArtifice, abilities.RuSacrificeLove}
		p.SacrificePiety = map[abilities.ID]int{abilities.RuSacrificeArtifice: 55, abilities.RuSacrificeLove: 40}
	}},
	"wizard": {name: "Merla", build: func(p *player.Player) {
		worship(shared.GodSifMuna, 120)(p)
		p.Skills[shared.SkillSpellcasting] = 100
		p.LearnSpell(spells.MagicDart, nil)
		p.LearnSpell(spells.Blink, nil)
	}},
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// newPreset builds a level 12 character of the named kind
func newPreset(kind, owner, name string) (*player.Player, error) {
	pre, ok := presets[kind]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", kind)
	}
	if name == "" {
		name = pre.name
	}

	p := player.New("", owner, name)
	p.XL = 12
	p.HP, p.BaseMaxHP = 80, 80
	p.MP, p.BaseMaxMP = 15, 15
	p.Gold = 250
	p.Stats = player.Stats{Str: 14, Int: 14, Dex: 14, MaxStr: 14, MaxInt: 14, MaxDex: 14}
	pre.build(p)
	return p, nil
}
