package wfc

import "math/rand"

// LCGSelector is the default ValueSelector: a linear-congruential
// generator seeded at construction, matching spec.md §6's prescribed
// recurrence exactly: state = state*1103515245 + 12345 (mod 2^31).
type LCGSelector struct {
	state uint64
}

// NewLCGSelector seeds an LCGSelector. Two selectors constructed with the
// same seed produce identical Pick sequences (spec.md §5 determinism).
func NewLCGSelector(seed int64) *LCGSelector {
	return &LCGSelector{state: uint64(seed) & 0x7fffffff}
}

// Pick returns a value in [0, max).
func (s *LCGSelector) Pick(max int) int {
	assertf(max > 0, "wfc: LCGSelector.Pick requires max > 0, got %d", max)
	s.state = (s.state*1103515245 + 12345) & 0x7fffffff
	return int(s.state % uint64(max))
}

// MathRandSelector is the higher-quality ValueSelector spec.md §6 calls
// for, wrapping math/rand's generator the same way the teacher's own
// RandomLabeling (labeling.go, NewRandomLabeling(seed int64)) does. No
// repository in the retrieved corpus imports a dedicated PRNG package
// (e.g. a Mersenne Twister or PCG implementation), so math/rand — already
// the teacher's choice for exactly this role — stands in for the spec's
// "e.g. a Mersenne-Twister variant" without inventing an unverified
// dependency.
type MathRandSelector struct {
	rng *rand.Rand
}

// NewMathRandSelector seeds a MathRandSelector.
func NewMathRandSelector(seed int64) *MathRandSelector {
	return &MathRandSelector{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a value in [0, max).
func (s *MathRandSelector) Pick(max int) int {
	return s.rng.Intn(max)
}
