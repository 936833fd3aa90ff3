package testutils

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// CreateTestPlayer creates a healthy level 10 human
func CreateTestPlayer(id, ownerID, name string) *player.Player {
	p := player.New(id, ownerID, name)
	p.XL = 10
	p.HP, p.BaseMaxHP = 60, 60
	p.MP, p.BaseMaxMP = 12, 12
	p.Stats = player.Stats{Str: 12, Int: 12, Dex: 12, MaxStr: 12, MaxInt: 12, MaxDex: 12}
	return p
}

// CreateTestWorshipper creates a test player following god
func CreateTestWorshipper(id string, god shared.God, piety int) *player.Player {
	p := CreateTestPlayer(id, "owner", "Worshipper")
	p.Religion = god
	p.Piety = piety
	p.Skills[shared.SkillInvocations] = 100
	return p
}

// CreateTestDraconian creates a test draconian of the given colour
func CreateTestDraconian(id string, species shared.Species) *player.Player {
	p := CreateTestPlayer(id, "owner", "Drac")
	p.Species = species
	return p
}
