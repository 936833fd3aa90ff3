package abilities

// Flags is a set of behavioural modifiers on an ability
type Flags uint32

const (
	FlagNone          Flags = 0
	FlagBreath        Flags = 1 << 0 // shares the breath weapon cooldown
	FlagDelay         Flags = 1 << 1 // takes effect after a delay
	FlagPain          Flags = 1 << 2 // hurts the user
	FlagPiety         Flags = 1 << 3 // handles its own piety cost
	FlagExhaustion    Flags = 1 << 4 // unusable while exhausted
	FlagInstant       Flags = 1 << 5 // takes no time
	FlagPermanentHP   Flags = 1 << 6
	FlagPermanentMP   Flags = 1 << 7
	FlagConfOK        Flags = 1 << 8 // usable while confused
	FlagFruit         Flags = 1 << 9
	FlagVariableFruit Flags = 1 << 10 // fruit or piety
	FlagVariableMP    Flags = 1 << 11
	FlagSkillDrain    Flags = 1 << 19
	FlagGold          Flags = 1 << 20
	FlagSacrifice     Flags = 1 << 21
	FlagHostile       Flags = 1 << 22 // failure still summons, but hostile
)

// Has reports whether every bit of flag is set
func (f Flags) Has(flag Flags) bool {
	return flag != 0 && f&flag == flag
}
