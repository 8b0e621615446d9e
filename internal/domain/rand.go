package domain

import "math/rand"

// RandSource supplies the random draws a round needs: imposter seat,
// starting player and the custom word pick.
type RandSource interface {
	// Intn returns a uniform value in [0, n). n is always > 0.
	Intn(n int) int
}

type mathRand struct{}

func (mathRand) Intn(n int) int { return rand.Intn(n) }

// DefaultRand returns a RandSource backed by math/rand
func DefaultRand() RandSource {
	return mathRand{}
}

// SequenceRand replays a fixed sequence of draws, wrapping around.
// Each value is reduced modulo n.
type SequenceRand struct {
	Values []int
	next   int
}

// Intn implements RandSource
func (s *SequenceRand) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
