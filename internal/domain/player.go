package domain

// Player is one seat around the shared device. IDs run 1..N.
type Player struct {
	ID         int  `json:"id"`
	IsImposter bool `json:"isImposter"`
}

// Role returns the player's role under mode
func (p Player) Role(mode Mode) Role {
	return RoleFor(p.IsImposter, mode)
}

// PlayerInfo is the roster entry shown outside a private reveal
type PlayerInfo struct {
	ID int `json:"id"`
}

// ToInfo drops the role
func (p Player) ToInfo() PlayerInfo {
	return PlayerInfo{ID: p.ID}
}
