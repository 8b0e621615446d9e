package domain

// TimerRunning reports whether the countdown should be ticking
func (s *Session) TimerRunning() bool {
	return s.Phase == PhaseGameActive && s.TimerDuration > 0 && s.TimeLeft > 0
}

// Tick applies one elapsed second. It reports whether time was decremented.
func (s *Session) Tick() bool {
	if !s.TimerRunning() {
		return false
	}
	s.TimeLeft--
	if s.TimeLeft < 0 {
		s.TimeLeft = 0
	}
	return true
}

// TimerExpired reports whether an enabled timer reached zero during discussion
func (s *Session) TimerExpired() bool {
	return s.Phase == PhaseGameActive && s.TimerDuration > 0 && s.TimeLeft == 0
}
