package quasi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoherenceFormula(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"demo sample pair", 42.0, -41.8, 1.0 - 83.8/84.8},
		{"equal magnitudes", 7.5, 7.5, 1.0},
		{"both zero", 0, 0, 1.0},
		{"one zero", 3.0, 0, 1.0 - 3.0/4.0},
		{"both negative", -2.0, -2.0, 1.0},
		{"opposed unit pair", 1.0, -1.0, 1.0 - 2.0/3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Coherence(tt.a, tt.b), 1e-12)
		})
	}
}

func TestCoherenceStaysInUnitInterval(t *testing.T) {
	pairs := [][2]float64{
		{42.0, -41.8}, {1e12, -1e12}, {0, 0}, {-5, 900}, {0.001, -0.001},
	}
	for _, p := range pairs {
		c := Coherence(p[0], p[1])
		assert.GreaterOrEqual(t, c, 0.0, "pair %v", p)
		assert.LessOrEqual(t, c, 1.0, "pair %v", p)
	}
}

func TestNewIsSuperposed(t *testing.T) {
	s := New("iceberg_01", "energy", 42.0, -41.8)

	require.False(t, s.Observed)
	assert.Equal(t, "iceberg_01", s.ID)
	assert.Equal(t, "energy", s.Field.Primary.Label)
	assert.Equal(t, "energy", s.Field.Secondary.Label)
	assert.Equal(t, 42.0, s.Field.Primary.Magnitude)
	assert.Equal(t, -41.8, s.Field.Secondary.Magnitude)
	assert.InDelta(t, 0.0118, s.Field.Coherence, 1e-4)
}

func TestObserveCollapsesToMean(t *testing.T) {
	s := New("iceberg_01", "energy", 42.0, -41.8)

	got := s.Observe()
	assert.InDelta(t, 0.1, got, 1e-12)
	assert.True(t, s.Observed)

	// Second observation is a no-op beyond the flag already being set.
	again := s.Observe()
	assert.Equal(t, got, again)
	assert.True(t, s.Observed)
}

func TestObserveDoesNotTouchCoherence(t *testing.T) {
	s := New("c", "energy", 10, 4)
	before := s.MeasureCoherence()
	s.Observe()
	assert.Equal(t, before, s.MeasureCoherence())
}

func TestInvertSwapsPair(t *testing.T) {
	s := New("inv", "charge", 3.25, -8.5)
	s.Invert()

	assert.Equal(t, -8.5, s.Field.Primary.Magnitude)
	assert.Equal(t, 3.25, s.Field.Secondary.Magnitude)
	assert.Equal(t, "charge", s.Field.Primary.Label)
	assert.False(t, s.Observed, "inversion must not collapse the state")
}

func TestInvertIsInvolution(t *testing.T) {
	s := New("inv", "energy", 42.0, -41.8)
	orig := s.Field

	s.Invert()
	s.Invert()
	assert.Equal(t, orig, s.Field)
}

func TestCoherenceInvariantUnderInvert(t *testing.T) {
	tests := [][2]float64{
		{42.0, -41.8}, {0, 0}, {1, 2}, {-3.5, -3.5}, {1e9, -1e-9},
	}
	for _, tt := range tests {
		s := New("x", "energy", tt[0], tt[1])
		before := s.MeasureCoherence()
		s.Invert()
		// Stored value, bit-for-bit: Invert never recomputes.
		assert.Equal(t, before, s.MeasureCoherence(), "pair %v", tt)
	}
}

func TestInvertLegalAfterObserve(t *testing.T) {
	s := New("x", "energy", 2, 4)
	s.Observe()
	s.Invert()
	assert.True(t, s.Observed)
	assert.Equal(t, 4.0, s.Field.Primary.Magnitude)
}

func TestNonFiniteInputsPropagate(t *testing.T) {
	s := New("gigo", "energy", math.NaN(), 1.0)
	assert.True(t, math.IsNaN(s.MeasureCoherence()))
	assert.True(t, math.IsNaN(s.Observe()))
}
