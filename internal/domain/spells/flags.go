package spells

// Flags describe how a spell is aimed and what it is for
type Flags uint32

const (
	FlagNone     Flags = 0
	FlagDir      Flags = 1 << 0 // a direction
	FlagTarg     Flags = 1 << 1 // a monster or square
	FlagObj      Flags = 1 << 2 // an item on the floor
	FlagArea     Flags = 1 << 3
	FlagHelpful  Flags = 1 << 4
	FlagNeutral  Flags = 1 << 5 // affects friend and foe alike
	FlagNotSelf  Flags = 1 << 6
	FlagMonster  Flags = 1 << 7 // monsters only
	FlagEscape   Flags = 1 << 8
	FlagRecovery Flags = 1 << 9
	FlagSelfench Flags = 1 << 10
	FlagCloud    Flags = 1 << 11
	FlagLOS      Flags = 1 << 12
	FlagUtility  Flags = 1 << 13
	FlagNoMagic  Flags = 1 << 14 // usable under antimagic

	TargetingMask = FlagDir | FlagTarg | FlagObj
)

// Has reports whether every bit of flag is set
func (f Flags) Has(flag Flags) bool {
	return flag != 0 && f&flag == flag
}

// Any reports whether at least one bit of mask is set
func (f Flags) Any(mask Flags) bool {
	return f&mask != 0
}
