// Package quasi models a toy quantum-like dual value: a paired set of
// magnitudes under one label, a derived coherence score, and the
// superposed/observed lifecycle of the pair. The package is pure arithmetic —
// no I/O, no shared state, every operation O(1).
package quasi

import "math"

// Token is a labeled single magnitude. Tokens are replaced wholesale during
// inversion, never mutated field by field.
type Token struct {
	Label     string
	Magnitude float64
}

// Field is a primary/secondary token pair plus the coherence derived from it.
// Coherence is computed once at construction and is not a free field; the
// only mutation a Field undergoes is the pair swap in Invert, under which the
// coherence formula is symmetric.
type Field struct {
	Primary   Token
	Secondary Token
	Coherence float64
}

// State is the owning entity: an identifier, a Field, and the observed flag.
// A State exclusively owns its Field and Tokens. Uniqueness of ID is the
// caller's business, not enforced here.
type State struct {
	ID       string
	Field    Field
	Observed bool
}

// Coherence reports how close two magnitudes are relative to their combined
// scale, in [0, 1] for finite inputs. The +1 in the denominator keeps the
// zero/zero pair at full coherence instead of dividing by zero. NaN and
// Infinity inputs are not rejected; they propagate per IEEE arithmetic.
func Coherence(a, b float64) float64 {
	return 1.0 - math.Abs(a-b)/(math.Abs(a)+math.Abs(b)+1.0)
}

// New constructs a superposed State. No validation is performed: empty
// strings and non-finite magnitudes are accepted as given.
func New(id, label string, primary, secondary float64) *State {
	return &State{
		ID: id,
		Field: Field{
			Primary:   Token{Label: label, Magnitude: primary},
			Secondary: Token{Label: label, Magnitude: secondary},
			Coherence: Coherence(primary, secondary),
		},
	}
}

// Observe collapses the state and returns the mean of the two magnitudes.
// The transition to observed is one-way and idempotent: a second call
// returns the same value and changes nothing.
func (s *State) Observe() float64 {
	s.Observed = true
	return (s.Field.Primary.Magnitude + s.Field.Secondary.Magnitude) / 2.0
}

// MeasureCoherence returns the stored coherence. Read-only; legal in either
// lifecycle state.
func (s *State) MeasureCoherence() float64 {
	return s.Field.Coherence
}

// Invert exchanges the primary and secondary tokens in place. The stored
// coherence is left untouched: the formula is symmetric under the swap, so
// recomputing would only invite mixing stale and swapped magnitudes.
func (s *State) Invert() {
	s.Field.Primary, s.Field.Secondary = s.Field.Secondary, s.Field.Primary
}
