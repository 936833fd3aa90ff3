package talent

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/player"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
)

// invocation tiers: base - piety/pietyDiv - skill(sk, skillMult)
type tier struct {
	base      int
	pietyDiv  int
	skill     shared.Skill
	skillMult int
}

var tiers = map[abilities.ID]tier{
	abilities.ZinRecite:                  {30, 20, shared.SkillInvocations, 6},
	abilities.BeoghRecallOrcishFollowers: {30, 20, shared.SkillInvocations, 6},
	abilities.OkawaruHeroism:             {30, 20, shared.SkillInvocations, 6},
	abilities.ElyvilonLesserHealing:      {30, 20, shared.SkillInvocations, 6},
	abilities.LugonuAbyssExit:            {30, 20, shared.SkillInvocations, 6},
	abilities.FedhasSunlight:             {30, 20, shared.SkillInvocations, 6},
	abilities.FedhasEvolution:            {30, 20, shared.SkillInvocations, 6},
	abilities.DithmenosShadowStep:        {30, 20, shared.SkillInvocations, 6},

	abilities.YredAnimateRemains:  {40, 20, shared.SkillInvocations, 4},
	abilities.YredAnimateDead:     {40, 20, shared.SkillInvocations, 4},
	abilities.YredInjuryMirror:    {40, 20, shared.SkillInvocations, 4},
	abilities.CheibriadosTimeBend: {40, 20, shared.SkillInvocations, 4},

	abilities.PakellasQuickCharge: {40, 25, shared.SkillEvocations, 5},

	abilities.ZinVitalisation:         {40, 20, shared.SkillInvocations, 5},
	abilities.TSODivineShield:         {40, 20, shared.SkillInvocations, 5},
	abilities.BeoghSmiting:            {40, 20, shared.SkillInvocations, 5},
	abilities.SifMunaForgetSpell:      {40, 20, shared.SkillInvocations, 5},
	abilities.MakhlebMinorDestruction: {40, 20, shared.SkillInvocations, 5},
	abilities.MakhlebLesserServant:    {40, 20, shared.SkillInvocations, 5},
	abilities.ElyvilonGreaterHealing:  {40, 20, shared.SkillInvocations, 5},
	abilities.ElyvilonHealOther:       {40, 20, shared.SkillInvocations, 5},
	abilities.LugonuBendSpace:         {40, 20, shared.SkillInvocations, 5},
	abilities.FedhasPlantRing:         {40, 20, shared.SkillInvocations, 5},
	abilities.QazlalUpheaval:          {40, 20, shared.SkillInvocations, 5},

	abilities.KikuReceiveCorpses:   {40, 20, shared.SkillNecromancy, 5},
	abilities.SifMunaChannelEnergy: {40, 20, shared.SkillInvocations, 2},

	abilities.YredRecallUndeadSlaves: {50, 20, shared.SkillInvocations, 4},
	abilities.PakellasDeviceSurge:    {40, 20, shared.SkillEvocations, 5},

	abilities.ZinImprison:           {60, 20, shared.SkillInvocations, 5},
	abilities.LugonuBanish:          {60, 20, shared.SkillInvocations, 5},
	abilities.CheibriadosDistortion: {60, 20, shared.SkillInvocations, 5},
	abilities.QazlalElementalForce:  {60, 20, shared.SkillInvocations, 5},

	abilities.KikuTorment: {60, 20, shared.SkillNecromancy, 5},

	abilities.MakhlebMajorDestruction: {60, 25, shared.SkillInvocations, 4},
	abilities.FedhasSpawnSpores:       {60, 25, shared.SkillInvocations, 4},
	abilities.YredDrainLife:           {60, 25, shared.SkillInvocations, 4},
	abilities.CheibriadosSlouch:       {60, 25, shared.SkillInvocations, 4},
	abilities.OkawaruFinesse:          {60, 25, shared.SkillInvocations, 4},

	abilities.TSOCleansingFlame:  {70, 25, shared.SkillInvocations, 4},
	abilities.LugonuCorrupt:      {70, 25, shared.SkillInvocations, 4},
	abilities.FedhasRain:         {70, 25, shared.SkillInvocations, 4},
	abilities.QazlalDisasterArea: {70, 25, shared.SkillInvocations, 4},

	abilities.ZinSanctuary:           {80, 25, shared.SkillInvocations, 4},
	abilities.TSOSummonDivineWarrior: {80, 25, shared.SkillInvocations, 4},
	abilities.YredEnslaveSoul:        {80, 25, shared.SkillInvocations, 4},
	abilities.ElyvilonDivineVigour:   {80, 25, shared.SkillInvocations, 4},
	abilities.LugonuAbyssEnter:       {80, 25, shared.SkillInvocations, 4},
	abilities.CheibriadosTimeStep:    {80, 25, shared.SkillInvocations, 4},
	abilities.DithmenosShadowForm:    {80, 25, shared.SkillInvocations, 4},

	abilities.MakhlebGreaterServant: {90, 5, shared.SkillInvocations, 2},

	abilities.NemelexStackFive:  {80, 25, shared.SkillEvocations, 4},
	abilities.NemelexTripleDraw: {60, 20, shared.SkillEvocations, 5},
}

// infallible invocations never fail but still count as invoking
var infallible = map[abilities.ID]bool{
	abilities.ZinCureAllMutations:        true,
	abilities.ZinDonateGold:              true,
	abilities.KikuBlessWeapon:            true,
	abilities.KikuGiftNecronomicon:       true,
	abilities.TSOBlessWeapon:             true,
	abilities.LugonuBlessWeapon:          true,
	abilities.ElyvilonLifesaving:         true,
	abilities.TrogBurnSpellbooks:         true,
	abilities.TrogBerserk:                true,
	abilities.AshenzariTransferKnowledge: true,
	abilities.AshenzariEndTransfer:       true,
	abilities.AshenzariScrying:           true,
	abilities.BeoghGiftItem:              true,
	abilities.JiyvaCallJelly:             true,
	abilities.JiyvaCureBadMutation:       true,
	abilities.JiyvaJellyParalyse:         true,
	abilities.GozagPotionPetition:        true,
	abilities.GozagCallMerchant:          true,
	abilities.GozagBribeBranch:           true,
	abilities.RuDrawOutPower:             true,
	abilities.RuPowerLeap:                true,
	abilities.RuApocalypse:               true,
	abilities.RuRejectSacrifices:         true,
	abilities.PakellasSupercharge:        true,
	abilities.StopRecall:                 true,
	abilities.RenounceReligion:           true,
	abilities.ConvertToBeogh:             true,
}

// FailureRate is the percent chance that using id fails, clamped to
// 0..100, and whether using it counts as an invocation. It keys on the
// ability as bound, before Fixup.
func (r *Resolver) FailureRate(p *player.Player, id abilities.ID) (int, bool) {
	xl := p.XL
	piety := p.Piety
	dragon := p.Form == shared.FormDragon

	failure := 0
	invoc := false

	switch id {
	case abilities.DelayedFireball, abilities.MummyRestoration, abilities.StopSinging,
		abilities.Dig, abilities.ShaftSelf, abilities.EndTransformation,
		abilities.EvokeTurnVisible, abilities.StopFlying:
		failure = 0

	case abilities.SpitPoison:
		failure = 40 - 10*p.MutationLevel(shared.MutSpitPoison) - xl

	case abilities.BreatheFire, abilities.BreatheFrost, abilities.BreathePoison,
		abilities.SpitAcid, abilities.BreatheLightning, abilities.BreathePower,
		abilities.BreatheStickyFlame, abilities.BreatheMephitic:
		failure = 30 - xl
		if dragon {
			failure -= 20
		}

	case abilities.BreatheSteam:
		failure = 20 - xl
		if dragon {
			failure -= 20
		}

	case abilities.Fly:
		failure = 42 - 3*xl
	case abilities.TranBat, abilities.Recharging:
		failure = 45 - 2*xl
	case abilities.Hellfire:
		failure = 50 - xl
	case abilities.Blink:
		failure = 48 - 17*p.MutationLevel(shared.MutBlink) - xl/2

	case abilities.EvokeTurnInvisible:
		failure = 60 - p.Skill(shared.SkillEvocations, 2)
	case abilities.EvokeFlight, abilities.EvokeBlink:
		failure = 40 - p.Skill(shared.SkillEvocations, 2)
	case abilities.EvokeBerserk, abilities.EvokeFog:
		failure = 50 - p.Skill(shared.SkillEvocations, 2)

	case abilities.TrogRegenMR:
		invoc = true
		failure = player.PietyBreakpoint(2) - piety
	case abilities.TrogBrothersInArms:
		invoc = true
		failure = player.PietyBreakpoint(5) - piety
	case abilities.JiyvaSlimify:
		invoc = true
		failure = 90 - piety/2
	case abilities.ElyvilonPurification:
		invoc = true
		failure = 20 - piety/20 - p.Skill(shared.SkillInvocations, 5)
	case abilities.NemelexDealFour:
		invoc = true
		failure = 70 - piety*2/45 - p.Skill(shared.SkillEvocations, 9)/2

	default:
		switch {
		case abilities.IsRuSacrifice(id), infallible[id]:
			invoc = true
		default:
			if t, ok := tiers[id]; ok {
				invoc = true
				failure = t.base - piety/t.pietyDiv - p.Skill(t.skill, t.skillMult)
			}
		}
	}

	return max(0, min(100, failure)), invoc
}
