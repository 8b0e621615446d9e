package domain

// Role is what a player holds for the round
type Role string

const (
	RoleCivilian   Role = "CIVILIAN"   // knows the secret word
	RoleImposter   Role = "IMPOSTER"   // knows only the category, maybe a hint
	RoleUndercover Role = "UNDERCOVER" // holds a decoy word and may not know it
)

// RoleFor resolves a seat's role under the given mode
func RoleFor(isImposter bool, mode Mode) Role {
	switch {
	case !isImposter:
		return RoleCivilian
	case mode.IsUndercover():
		return RoleUndercover
	default:
		return RoleImposter
	}
}

// IsImposter reports whether the role is the odd one out, decoy or not
func (r Role) IsImposter() bool {
	return r == RoleImposter || r == RoleUndercover
}
