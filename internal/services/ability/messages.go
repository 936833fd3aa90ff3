package ability

// Stock replies shared by several checks
const (
	msgTooBerserk     = "You are too berserk!"
	msgTooConfused    = "You are too confused!"
	msgTooHungry      = "You're too hungry."
	msgOK             = "Okay, then."
	msgCannotDoYet    = "You can't do that yet."
	msgNoSpells       = "You don't know any spells."
	msgNothingHappens = "Nothing appears to happen."
	msgFailed         = "You fail to use your ability."
	msgNonAbility     = "Sorry, you can't do that."
)
