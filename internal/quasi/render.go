package quasi

import (
	"fmt"
	"strings"
)

// Render produces the human-readable multi-line summary of the state.
// Numeric fields are fixed to three decimals so output is deterministic and
// diff-friendly; the tag line reports "Observed" or "Superposed".
func (s *State) Render() string {
	tag := "Superposed"
	if s.Observed {
		tag = "Observed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "QuasiState [%s]\n", s.ID)
	fmt.Fprintf(&b, "Label: %s\n", s.Field.Primary.Label)
	fmt.Fprintf(&b, "Primary: %.3f\n", s.Field.Primary.Magnitude)
	fmt.Fprintf(&b, "Secondary: %.3f\n", s.Field.Secondary.Magnitude)
	fmt.Fprintf(&b, "Coherence: %.3f\n", s.Field.Coherence)
	fmt.Fprintf(&b, "State: %s", tag)
	return b.String()
}

// String makes a State printable with the fmt verbs.
func (s *State) String() string {
	return s.Render()
}
