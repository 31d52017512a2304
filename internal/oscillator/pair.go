package oscillator

import (
	"github.com/cbegin/czvoice-go/internal/cztables"
	"github.com/cbegin/czvoice-go/internal/fixedpoint"
)

// Pair is one of a voice's four oscillator pairs (two lines x two unison
// members). It owns a wave phase and a resonance phase and alternates
// between two configured waveforms on every wave-cycle wrap (§3.4, §4.5).
type Pair struct {
	PitchIndex int
	WavePhase  fixedpoint.Phase
	ResPhase   fixedpoint.Phase
	Flag       bool // selects Wave-1 (false) or Wave-2 (true) for this cycle
}

// Reset zeros phases and the flag, per note_on (§4.2).
func (p *Pair) Reset(pitchIndex int) {
	p.PitchIndex = fixedpoint.ClampPitchIndex(pitchIndex)
	p.WavePhase = 0
	p.ResPhase = 0
	p.Flag = false
}

// incrementFor looks up the per-sample phase increment for a pitch index,
// right-shifting the top-octave table entry for lower octaves (§3.3, §4.5
// steps 2/4).
func incrementFor(tb *cztables.Tables, pitchIndex int) uint32 {
	row, step := fixedpoint.RowStep(pitchIndex)
	inc := tb.PhaseIncrement[step]
	if row < fixedpoint.NumOctaves-1 {
		return inc >> uint(fixedpoint.NumOctaves-1-row)
	}
	return inc
}

// bendPeriodFor looks up the effective bend period for a resonance offset
// (0..4095), right-shifting for the high bits of the offset (§4.5 step 1).
func bendPeriodFor(tb *cztables.Tables, resOffset int) int {
	row, step := resOffset/cztables.OctaveSteps, resOffset%cztables.OctaveSteps
	period := tb.BendPeriod[step]
	if row > 0 {
		period >>= uint(row)
	}
	return int(period)
}

// Result carries the per-sample output of one oscillator pair before
// ring-modulation and envelope/window mixing are applied by the voice.
type Result struct {
	OutputDB  int
	Sign      bool
	WaveIndex int // top bits of the wave phase; feeds resonance window lookups
	Waveform  Waveform
}

// Advance runs one sample of the phase-distortion pipeline (§4.5 steps
// 1-7). vibratoAdj is the signed pitch-index adjustment from the vibrato
// LFO; bendEnvLevel is the owning line's bend-envelope output level.
func (p *Pair) Advance(tb *cztables.Tables, wave1, wave2 Waveform, vibratoAdj, bendEnvLevel int) Result {
	// Step 1: resonance offset and bend period.
	resOffset := fixedpoint.ClampAtten(fixedpoint.AttenMax - bendEnvLevel)
	bendPeriod := bendPeriodFor(tb, resOffset)

	// Step 2: wave phase advance.
	wavePitch := fixedpoint.ClampPitchIndex(p.PitchIndex + vibratoAdj)
	wrapped, _ := p.WavePhase.Advance(incrementFor(tb, wavePitch))

	// Step 3: wave wrap syncs the resonance phase and toggles Wave-1/Wave-2.
	if wrapped {
		p.ResPhase = p.WavePhase
		p.Flag = !p.Flag
	}

	// Step 4: resonance phase advance.
	resPitch := fixedpoint.ClampPitchIndex(p.PitchIndex + resOffset)
	p.ResPhase.Advance(incrementFor(tb, resPitch))

	// Step 5: waveform selection; DOUBLE_SINE caps the bend period.
	selected := wave1
	if p.Flag {
		selected = wave2
	}
	if wave1 == DoubleSine || wave2 == DoubleSine {
		if bendPeriod > waveSize/2 {
			bendPeriod = waveSize / 2
		}
	}

	waveIndex := p.WavePhase.WaveIndex()

	// Step 6: index remap.
	var remapIndex int
	if selected.IsResonance() {
		remapIndex = p.ResPhase.WaveIndex()
	} else {
		remapIndex = Remap(selected, waveIndex, bendPeriod)
	}

	// Step 7: sine lookup and sign.
	outputDB := tb.SineHalf[remapIndex%cztables.SineSize]
	sign := remapIndex >= cztables.SineSize

	return Result{OutputDB: outputDB, Sign: sign, WaveIndex: waveIndex, Waveform: selected}
}

// ResonanceWindow implements §4.5 step 10: the formant-shaping window added
// to resonance waveforms, keyed by the wave index (not the remap index).
func ResonanceWindow(tb *cztables.Tables, w Waveform, waveIndex int) int {
	const half = cztables.WindowSize // 1024
	switch w {
	case ResonanceSaw:
		return tb.Window[(waveIndex/2)%half]
	case ResonanceTriangle:
		if waveIndex < half {
			return tb.Window[(half-waveIndex)%half]
		}
		return tb.Window[(waveIndex-half)%half]
	case ResonanceTrapezoid:
		if waveIndex < half {
			return 0
		}
		return tb.Window[(waveIndex-half)%half]
	default:
		return 0
	}
}
