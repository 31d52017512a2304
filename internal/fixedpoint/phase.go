// Package fixedpoint holds the 24-bit phase register arithmetic shared by
// pitch, envelope, and LFO advancement.
package fixedpoint

const (
	// PhaseBits is the width of a phase register.
	PhaseBits = 24
	// PhaseMod is 2^24; phase registers wrap modulo this value.
	PhaseMod = 1 << PhaseBits
	// PhaseMask masks a value into the phase register's range.
	PhaseMask = PhaseMod - 1

	// WaveIndexBits is the width of the wave-position index taken from the
	// top bits of a phase register.
	WaveIndexBits = 11
	// WaveIndexShift right-shifts a phase register down to its wave index.
	WaveIndexShift = PhaseBits - WaveIndexBits
	// WaveIndexMod is 2048, the number of wave-position entries per cycle.
	WaveIndexMod = 1 << WaveIndexBits

	// OctaveSteps is the number of pitch-index steps per octave.
	OctaveSteps = 1024
	// NumOctaves is the number of octave rows stored by the pitch tables.
	NumOctaves = 13
	// MaxPitchIndex bounds a pitch index: NumOctaves*OctaveSteps.
	MaxPitchIndex = NumOctaves * OctaveSteps

	// AttenMax is the silence value in the 12-bit dB-domain attenuation space.
	AttenMax = 4095
)

// Phase is a 24-bit fixed-point phase accumulator.
type Phase uint32

// Advance adds increment and wraps modulo 2^24, reporting whether the
// addition wrapped (crossed the top of the register at least once) and how
// many whole periods elapsed.
func (p *Phase) Advance(increment uint32) (wrapped bool, periods uint32) {
	sum := uint32(*p) + increment
	periods = sum >> PhaseBits
	*p = Phase(sum & PhaseMask)
	return periods > 0, periods
}

// WaveIndex returns the top WaveIndexBits bits of the phase register.
func (p Phase) WaveIndex() int {
	return int(uint32(p) >> WaveIndexShift)
}

// ClampInt clamps v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampAtten clamps a dB attenuation into [0, AttenMax].
func ClampAtten(v int) int {
	return ClampInt(v, 0, AttenMax)
}

// ClampPitchIndex clamps a pitch index into [0, MaxPitchIndex).
func ClampPitchIndex(v int) int {
	return ClampInt(v, 0, MaxPitchIndex-1)
}

// RowStep decomposes a pitch index into its octave row and in-octave step.
func RowStep(pitchIndex int) (row, step int) {
	return pitchIndex / OctaveSteps, pitchIndex % OctaveSteps
}
