// Package player holds the actor state the talent and activation code
// reads and mutates. A Player is owned by a single game loop and is not
// safe for concurrent use.
package player

import (
	"github.com/KirkDiggler/crawl-talents/internal/domain/abilities"
	"github.com/KirkDiggler/crawl-talents/internal/domain/shared"
	"github.com/KirkDiggler/crawl-talents/internal/domain/spells"
)

const (
	// NumSlots is the number of ability and spell letters, a-z then A-Z
	NumSlots = 52
	// MaxKnownSpells is how many spells fit in memory at once
	MaxKnownSpells = 21
)

// Attributes are long-lived flags and counters that are not durations
type Attributes struct {
	DelayedFireball     bool `json:"delayed_fireball,omitempty"`
	PermFlight          bool `json:"perm_flight,omitempty"`
	FlightUncancellable bool `json:"flight_uncancellable,omitempty"`
	InvisUncancellable  bool `json:"invis_uncancellable,omitempty"`
	DivineVigour        int  `json:"divine_vigour,omitempty"`
	Supercharged        bool `json:"supercharged,omitempty"`
	Digging             bool `json:"digging,omitempty"`
}

// Stats are the three primary attributes and their undrained maxima
type Stats struct {
	Str    int `json:"str"`
	Int    int `json:"int"`
	Dex    int `json:"dex"`
	MaxStr int `json:"max_str"`
	MaxInt int `json:"max_int"`
	MaxDex int `json:"max_dex"`
}

// Drained reports whether any stat is below its maximum
func (s Stats) Drained() bool {
	return s.Str < s.MaxStr || s.Int < s.MaxInt || s.Dex < s.MaxDex
}

// Equipment summarises the gear properties the rules look at
type Equipment struct {
	MPBonus       int  `json:"mp_bonus,omitempty"`
	WieldingRocks bool `json:"wielding_rocks,omitempty"`
	RepelMissiles bool `json:"repel_missiles,omitempty"`
	NoTeleport    bool `json:"no_teleport,omitempty"`
	Stasis        bool `json:"stasis,omitempty"`
	PoisonResist  int  `json:"poison_resist,omitempty"`
	Haloed        bool `json:"haloed,omitempty"`
	Backlit       bool `json:"backlit,omitempty"`
	FlyingArmour  bool `json:"flying_armour,omitempty"`
	Evocations    struct {
		Blink     bool `json:"blink,omitempty"`
		Recharge  bool `json:"recharge,omitempty"`
		Berserk   bool `json:"berserk,omitempty"`
		Invisible bool `json:"invisible,omitempty"`
		Flight    bool `json:"flight,omitempty"`
		Fog       bool `json:"fog,omitempty"`
	} `json:"evocations"`
}

// Player is the explicit actor context passed to every rules call
type Player struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`

	Species shared.Species `json:"species"`
	XL      int            `json:"xl"`

	HP        int `json:"hp"`
	BaseMaxHP int `json:"base_max_hp"`
	HPRot     int `json:"hp_rot,omitempty"`

	MP        int `json:"mp"`
	BaseMaxMP int `json:"base_max_mp"`
	MPMaxAdj  int `json:"mp_max_adj,omitempty"` // permanent, negative after rot

	Hunger int `json:"hunger"`
	Gold   int `json:"gold"`

	Religion       shared.God         `json:"religion"`
	Piety          int                `json:"piety"`
	Penance        map[shared.God]int `json:"penance,omitempty"`
	CapstoneUsed   bool               `json:"capstone_used,omitempty"`
	RuSacrifices   []abilities.ID     `json:"ru_sacrifices,omitempty"`
	TransferPoints int                `json:"transfer_points,omitempty"`
	RecallList     []string           `json:"recall_list,omitempty"`

	// SacrificePiety is what each offered sacrifice is worth
	SacrificePiety map[abilities.ID]int `json:"sacrifice_piety,omitempty"`

	Skills    map[shared.Skill]int    `json:"skills,omitempty"` // tenths of a level
	Mutations map[shared.Mutation]int `json:"mutations,omitempty"`
	Durations map[shared.Duration]int `json:"durations,omitempty"`
	Attr      Attributes              `json:"attributes"`
	Stats     Stats                   `json:"stats"`
	Disease   int                     `json:"disease,omitempty"`
	Gear      Equipment               `json:"gear"`

	Form              shared.Form `json:"form"`
	FormUncancellable bool        `json:"form_uncancellable,omitempty"`
	Vision            int         `json:"vision"`
	Sprint            bool        `json:"sprint,omitempty"`

	GoldPrices map[abilities.ID]int `json:"gold_prices,omitempty"`

	// AbilityLetters is the persistent hotkey binding table
	AbilityLetters [NumSlots]abilities.ID `json:"ability_letters"`

	// Spells are memorised spells by slot; SpellLetters maps each letter to
	// a slot in Spells, or -1.
	Spells       [MaxKnownSpells]spells.ID `json:"spells"`
	SpellLetters [NumSlots]int             `json:"spell_letters"`

	TurnIsOver bool `json:"-"`
}

// New returns a living human with empty tables
func New(id, ownerID, name string) *Player {
	p := &Player{
		ID:        id,
		OwnerID:   ownerID,
		Name:      name,
		Species:   shared.SpeciesHuman,
		XL:        1,
		Hunger:    shared.HungerSatiatedAt - 1,
		Vision:    spells.LOSRadius,
		Penance:   map[shared.God]int{},
		Skills:    map[shared.Skill]int{},
		Mutations: map[shared.Mutation]int{},
		Durations: map[shared.Duration]int{},
	}
	p.clearSpellLetters()
	return p
}

// Clone returns a deep copy
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}

	c := *p
	c.Penance = cloneMap(p.Penance)
	c.Skills = cloneMap(p.Skills)
	c.Mutations = cloneMap(p.Mutations)
	c.Durations = cloneMap(p.Durations)
	c.GoldPrices = cloneMap(p.GoldPrices)
	c.RuSacrifices = append([]abilities.ID(nil), p.RuSacrifices...)
	c.SacrificePiety = cloneMap(p.SacrificePiety)
	c.RecallList = append([]string(nil), p.RecallList...)
	return &c
}

// Normalize fills nil maps after decoding
func (p *Player) Normalize() {
	if p.Penance == nil {
		p.Penance = map[shared.God]int{}
	}
	if p.Skills == nil {
		p.Skills = map[shared.Skill]int{}
	}
	if p.Mutations == nil {
		p.Mutations = map[shared.Mutation]int{}
	}
	if p.Durations == nil {
		p.Durations = map[shared.Duration]int{}
	}
	if p.Vision == 0 {
		p.Vision = spells.LOSRadius
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
