package oscillator

import (
	"testing"

	"pgregory.net/rapid"
)

var nonResonanceWaveforms = []Waveform{Saw, Square, Pulse, DoubleSine, HalfSaw}

// TestRemapBendPeriod2048IsSawIdentity exercises §8.2 invariant 11: at
// bend_period = 2048 (the full wave size) the SAW remap reduces to the
// identity, modulo integer rounding.
func TestRemapBendPeriod2048IsSawIdentity(t *testing.T) {
	for x := 0; x < waveSize; x++ {
		got := Remap(Saw, x, waveSize)
		if got != x {
			t.Fatalf("Remap(Saw, %d, %d) = %d, want %d (identity)", x, waveSize, got, x)
		}
	}
}

// TestRemapNeverPanicsAndStaysBounded property-tests every non-resonance
// remap variant against the realistic bend-period domain observed in
// practice (the bend-period table never drops much below 1024 before
// octave-row right-shifting, see cztables.BendPeriod), per §9's call to
// "property-test each [remap variant] against a reference."
func TestRemapNeverPanicsAndStaysBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := nonResonanceWaveforms[rapid.IntRange(0, len(nonResonanceWaveforms)-1).Draw(t, "waveform")]
		b := rapid.IntRange(64, waveSize).Draw(t, "bendPeriod")
		x := rapid.IntRange(0, waveSize-1).Draw(t, "waveIndex")

		got := Remap(w, x, b)
		if got < -waveSize || got > 2*waveSize {
			t.Fatalf("Remap(%v, %d, %d) = %d, wildly out of bounds", w, x, b, got)
		}
	})
}

// TestRemapMonotoneWithinFirstSegment checks that every variant's leading
// ramp segment ([0, b/4) for most waveforms, [0, 3b/4) for Pulse/DoubleSine)
// is non-decreasing, matching the source's linear ramp semantics.
func TestRemapMonotoneWithinFirstSegment(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := nonResonanceWaveforms[rapid.IntRange(0, len(nonResonanceWaveforms)-1).Draw(t, "waveform")]
		b := rapid.IntRange(64, waveSize).Draw(t, "bendPeriod")

		limit := b / 4
		if w == Pulse || w == DoubleSine {
			limit = 3 * b / 4
		}
		if limit < 2 {
			return
		}
		x := rapid.IntRange(1, limit-1).Draw(t, "waveIndex")
		prev := Remap(w, x-1, b)
		cur := Remap(w, x, b)
		if cur < prev {
			t.Fatalf("Remap(%v, x, %d) not monotone at x=%d: %d < %d", w, b, x, cur, prev)
		}
	})
}

// TestRemapIsResonanceExcludesNonResonanceWaveforms documents the dispatch
// boundary between Remap (wave-phase driven) and the resonance waveforms
// (resonance-phase driven, bypassing Remap entirely — see Pair.Advance).
func TestRemapIsResonanceExcludesNonResonanceWaveforms(t *testing.T) {
	for _, w := range nonResonanceWaveforms {
		if w.IsResonance() {
			t.Errorf("%v unexpectedly reports IsResonance()", w)
		}
	}
	for _, w := range []Waveform{ResonanceSaw, ResonanceTriangle, ResonanceTrapezoid} {
		if !w.IsResonance() {
			t.Errorf("%v should report IsResonance()", w)
		}
	}
}
