package domain

// Phase represents the current phase of a session
type Phase string

const (
	PhaseModeSelection Phase = "MODE_SELECTION" // Choosing a game variant
	PhaseSetup         Phase = "SETUP"          // Editing players, category, difficulty, timer
	PhaseCustomInput   Phase = "CUSTOM_INPUT"   // Each player enters a category and word
	PhasePassDevice    Phase = "PASS_DEVICE"    // Hand the device to the next player
	PhaseRevealRole    Phase = "REVEAL_ROLE"    // Current player privately views their card
	PhaseGameActive    Phase = "GAME_ACTIVE"    // Open discussion, timer running
	PhaseGameOver      Phase = "GAME_OVER"      // Results revealed
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// IsValid reports whether p is a known phase
func (p Phase) IsValid() bool {
	_, ok := validTransitions[p]
	return ok
}

// InRevealFlow reports whether the reveal cursor is meaningful in this phase
func (p Phase) InRevealFlow() bool {
	return p == PhasePassDevice || p == PhaseRevealRole
}

var validTransitions = map[Phase][]Phase{
	PhaseModeSelection: {PhaseSetup},
	PhaseSetup:         {PhaseCustomInput, PhasePassDevice, PhaseModeSelection},
	PhaseCustomInput:   {PhasePassDevice, PhaseModeSelection},
	PhasePassDevice:    {PhaseRevealRole, PhaseModeSelection},
	PhaseRevealRole:    {PhasePassDevice, PhaseGameActive, PhaseModeSelection},
	PhaseGameActive:    {PhaseGameOver, PhaseModeSelection},
	PhaseGameOver:      {PhaseModeSelection},
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
