// Package spells holds the static spell table and the pure queries over it:
// name lookup, ranges, noise, school handling and uselessness checks.
//
// The table indexes are built by InitSpellDescs and InitSpellNameCache at
// startup. Before that, every lookup degrades to the NoSpell row.
package spells

import (
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/crawl-talents/internal/logger"
)

var (
	mu        sync.RWMutex
	index     []int // ID -> table row, -1 when missing
	nameCache map[string]ID
)

// InitSpellDescs validates the table and builds the ID index. It panics on
// a malformed row: the table is compiled in, so a bad row is a programming
// error.
func InitSpellDescs() {
	idx := make([]int, numIDs)
	for i := range idx {
		idx[i] = -1
	}

	for i, def := range table {
		if def.ID < 0 || def.ID >= numIDs {
			panic(fmt.Sprintf("spell row %d: id %d out of range", i, def.ID))
		}
		if idx[def.ID] != -1 {
			panic(fmt.Sprintf("spell %q: duplicate id %d", def.Title, def.ID))
		}
		if def.Title == "" {
			panic(fmt.Sprintf("spell %d has no title", def.ID))
		}
		if def.Level < 1 || def.Level > 9 {
			panic(fmt.Sprintf("spell %q has level %d", def.Title, def.Level))
		}
		if def.MinRange > def.MaxRange {
			panic(fmt.Sprintf("spell %q: min range %d above max %d", def.Title, def.MinRange, def.MaxRange))
		}
		if def.Flags.Any(TargetingMask) && (def.MinRange < 0 || def.MaxRange <= 0) {
			panic(fmt.Sprintf("spell %q is targeted but has no range", def.Title))
		}
		idx[def.ID] = i
	}
	if idx[NoSpell] != 0 {
		panic("spell table must start with the NoSpell row")
	}

	for _, b := range books {
		for _, id := range b.Spells {
			if id <= NoSpell || id >= numIDs || idx[id] == -1 {
				panic(fmt.Sprintf("book %q lists unknown spell %d", b.Name, id))
			}
			if table[idx[id]].Flags.Has(FlagMonster) {
				panic(fmt.Sprintf("book %q lists monster spell %q", b.Name, table[idx[id]].Title))
			}
		}
	}

	mu.Lock()
	index = idx
	mu.Unlock()

	logger.Info("spell table validated", "spells", len(table)-1, "books", len(books))
}

// InitSpellNameCache builds the lowercase title lookup used by ByName. It
// must run after InitSpellDescs.
func InitSpellNameCache() {
	mu.Lock()
	defer mu.Unlock()

	cache := make(map[string]ID, len(table))
	for _, def := range table[1:] {
		if index == nil || index[def.ID] == -1 {
			continue
		}
		cache[strings.ToLower(def.Title)] = def.ID
	}
	nameCache = cache
}

// Get returns the row for id. Unknown or invalid ids yield the NoSpell row
// and false.
func Get(id ID) (*Definition, bool) {
	mu.RLock()
	defer mu.RUnlock()

	if index == nil || id <= NoSpell || id >= numIDs || index[id] == -1 {
		return &table[0], false
	}
	return &table[index[id]], true
}

// IsValid reports whether id names a real spell
func IsValid(id ID) bool {
	_, ok := Get(id)
	return ok
}

func Title(id ID) string {
	def, _ := Get(id)
	return def.Title
}

func Level(id ID) int {
	def, _ := Get(id)
	return def.Level
}

func Schools(id ID) School {
	def, _ := Get(id)
	return def.Schools
}

func FlagsOf(id ID) Flags {
	def, _ := Get(id)
	return def.Flags
}

// Noise is the casting noise of the spell
func Noise(id ID) int {
	def, _ := Get(id)
	return def.Noise
}

// TargetPrompt is the custom targeting prompt, empty when the default
// should be used.
func TargetPrompt(id ID) string {
	def, _ := Get(id)
	return def.TargetPrompt
}

// IsPlayerSpell reports whether the spell can be learnt from some book
func IsPlayerSpell(id ID) bool {
	if !IsValid(id) {
		return false
	}
	for _, b := range books {
		for _, sp := range b.Spells {
			if sp == id {
				return true
			}
		}
	}
	return false
}

// All returns every valid spell ID in table order
func All() []ID {
	out := make([]ID, 0, len(table)-1)
	for _, def := range table[1:] {
		if IsValid(def.ID) {
			out = append(out, def.ID)
		}
	}
	return out
}

// ByName resolves a spell title, case-insensitively. With partial set, a
// name that is a substring of titles picks the title where it appears
// earliest; an exact title always wins and ties go to table order.
func ByName(name string, partial bool) ID {
	if name == "" {
		return NoSpell
	}
	lower := strings.ToLower(name)

	mu.RLock()
	id, ok := nameCache[lower]
	mu.RUnlock()
	if ok {
		return id
	}
	if !partial {
		return NoSpell
	}

	best := NoSpell
	bestPos := -1
	for _, def := range table[1:] {
		if !IsValid(def.ID) {
			continue
		}
		title := strings.ToLower(def.Title)
		pos := strings.Index(title, lower)
		if pos == -1 {
			continue
		}
		if title == lower {
			return def.ID
		}
		if bestPos == -1 || pos < bestPos {
			best = def.ID
			bestPos = pos
		}
	}
	return best
}

// SchoolByName resolves a school from its short or long name, or from an
// unambiguous fragment of either.
func SchoolByName(name string) School {
	lower := strings.ToLower(name)

	shortMatch, longMatch := SchoolNone, SchoolNone
	shortCount, longCount := 0, 0

	for exp := 0; exp <= randomSchoolExponent; exp++ {
		school := SchoolFromExponent(exp)
		short := strings.ToLower(school.ShortName())
		long := strings.ToLower(school.LongName())

		if lower == short || lower == long {
			return school
		}
		if strings.Contains(short, lower) {
			shortCount++
			shortMatch = school
		}
		if strings.Contains(long, lower) {
			longCount++
			longMatch = school
		}
	}

	switch {
	case shortCount != 1 && longCount != 1:
		return SchoolNone
	case shortCount == 1 && longCount != 1:
		return shortMatch
	case shortCount != 1 && longCount == 1:
		return longMatch
	case shortMatch == longMatch:
		return shortMatch
	default:
		return SchoolNone
	}
}

// LevelsRequired is the number of spell levels needed to memorise id given
// the spells already known. Delayed Fireball and Fireball share their
// levels.
func LevelsRequired(id ID, knows func(ID) bool) int {
	if !IsValid(id) {
		return 0
	}
	levels := Level(id)

	switch {
	case id == DelayedFireball && knows(Fireball):
		levels -= Level(Fireball)
	case id == Fireball && knows(DelayedFireball):
		levels = 0
	}
	return levels
}

// IsForm reports whether the spell is a transformation
func IsForm(id ID) bool {
	switch id {
	case BeastlyAppendage, BladeHands, DragonForm, HydraForm, IceForm,
		SpiderForm, StatueForm, Necromutation:
		return true
	default:
		return false
	}
}
