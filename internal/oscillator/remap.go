// Package oscillator implements the phase-distortion index remap (§4.5) and
// the four-pair oscillator update that drives each voice line.
package oscillator

// Waveform selects one of the eight phase-distortion shapes a Wave-1/Wave-2
// slot can hold (§6.1).
type Waveform int

const (
	Saw Waveform = iota
	Square
	Pulse
	DoubleSine
	HalfSaw
	ResonanceSaw
	ResonanceTriangle
	ResonanceTrapezoid
)

// IsResonance reports whether w drives its sine lookup from the resonance
// phase rather than from the remapped wave phase (§4.5 step 6).
func (w Waveform) IsResonance() bool {
	return w == ResonanceSaw || w == ResonanceTriangle || w == ResonanceTrapezoid
}

// waveSize is N, the number of wave-position entries per full cycle (§4.5).
const waveSize = 2048

// Remap computes remap_index for a non-resonance waveform, given the raw
// wave-position index x (0..2047) and the effective bend period b (§4.5
// step 6). Resonance waveforms do not use this function; their sine lookup
// reads the resonance phase directly (see Pair.Advance).
//
// Integer division here is intentionally truncating, matching the source's
// integer pipeline bit-for-bit.
func Remap(w Waveform, x, b int) int {
	switch w {
	case Saw:
		return remapSaw(x, b)
	case Square:
		return remapSquare(x, b)
	case Pulse:
		return remapPulse(x, b)
	case DoubleSine:
		return remapDoubleSine(x, b)
	case HalfSaw:
		return remapHalfSaw(x, b)
	default:
		// Resonance waveforms have no wave_index-driven remap; return the
		// identity so Remap remains a total function (§9 design note).
		return x
	}
}

func remapSaw(x, b int) int {
	switch {
	case x < b/4:
		return x * waveSize / b
	case x < waveSize-b/4:
		r := x - b/4
		r = r * waveSize / (2*waveSize - b)
		return r + waveSize/4
	default:
		r := x - (waveSize - b/4)
		r = r * waveSize / b
		return r + 3*waveSize/4
	}
}

func remapSquare(x, b int) int {
	switch {
	case x < b/4:
		return x * waveSize / b
	case x < waveSize/2-b/4:
		return waveSize / 4
	case x < waveSize/2+b/4:
		r := x - (waveSize/2 - b/4)
		r = r * waveSize / b
		return r + waveSize/4
	case x < waveSize-b/4:
		return 3 * waveSize / 4
	default:
		r := x - (waveSize - b/4)
		r = r * waveSize / b
		return r + 3*waveSize/4
	}
}

func remapPulse(x, b int) int {
	switch {
	case x < 3*b/4:
		return x * waveSize / b
	case x < waveSize-b/4:
		return 3 * waveSize / 4
	default:
		r := x - (waveSize - b/4)
		r = r * waveSize / b
		return r + 3*waveSize/4
	}
}

func remapDoubleSine(x, b int) int {
	switch {
	case x < 3*b/4:
		return x * waveSize / b
	case x < waveSize-b/4:
		r := x - 3*b/4
		r = r * waveSize / (waveSize - b)
		r += 3 * waveSize / 4
		return r % waveSize
	default:
		r := x - (waveSize - b/4)
		r = r * waveSize / b
		return r + 3*waveSize/4
	}
}

func remapHalfSaw(x, b int) int {
	switch {
	case x < b/4:
		return x * waveSize / b
	case x < waveSize/2-b/4:
		return waveSize / 4
	case x < waveSize-b/4:
		r := x - (waveSize/2 - b/4)
		return r + waveSize/4
	default:
		r := x - (waveSize - b/4)
		r = r * waveSize / b
		return r + 3*waveSize/4
	}
}
