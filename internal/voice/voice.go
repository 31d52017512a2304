// Package voice implements the per-voice state record and the per-sample
// update pipeline that ties LFOs, envelopes, and oscillator pairs into one
// 16-bit output sample (§3.4, §4.5 steps 8-11, §4.6).
package voice

import (
	"github.com/cbegin/czvoice-go/internal/cart"
	"github.com/cbegin/czvoice-go/internal/cztables"
	"github.com/cbegin/czvoice-go/internal/envelope"
	"github.com/cbegin/czvoice-go/internal/fixedpoint"
	"github.com/cbegin/czvoice-go/internal/lfo"
	"github.com/cbegin/czvoice-go/internal/oscillator"
)

// Pair indices within Voice.Pairs (§4.6).
const (
	Line1Unison1 = 0
	Line1Unison2 = 1
	Line2Unison1 = 2
	Line2Unison2 = 3
)

// Envelope indices within Voice.Envelopes.
const (
	envLine1Amp  = 0
	envLine1Bend = 1
	envLine2Amp  = 2
	envLine2Bend = 3
)

// LFO indices within Voice.LFOs.
const (
	LFOVibrato = 0
	LFOTremolo = 1
)

// Internal note-numbering constants (§6.3).
const (
	MiddleCInternal = 84
	LowestPlayable  = 45  // A0
	HighestPlayable = 132 // C8
	DefaultVelocity = 96
)

// Voice is one polyphonic voice's complete mutable state (§3.4).
type Voice struct {
	CartIndex  int
	PatchIndex int
	BaseNote   int

	Pairs     [4]oscillator.Pair
	Envelopes [4]envelope.Envelope
	LFOs      [2]lfo.LFO

	PitchWheelPos   int
	VibratoWheelPos int
	TremoloWheelPos int
	NoteVelocityPos int

	Level int16
}

// Reset puts a voice into its post-reset_all state (§4.2).
func (v *Voice) Reset() {
	*v = Voice{}
	for i := range v.Envelopes {
		v.Envelopes[i].Reset()
	}
	v.LFOs[LFOVibrato].Waveform = lfo.Triangle
	v.LFOs[LFOTremolo].Waveform = lfo.Triangle
}

// centsToPitchIndex converts a detune in cents to a clamped pitch index
// (§4.2 note_on: cents*1024/1200).
func centsToPitchIndex(cents int) int {
	return fixedpoint.ClampPitchIndex(cents * fixedpoint.OctaveSteps / 1200)
}

// NoteOn starts a new note per §4.2. midiNote is the external MIDI note
// number; velocity defaults to DefaultVelocity when outside [0,128).
// Returns false (a no-op, not an error) when the internal note falls
// outside the playable range.
func (v *Voice) NoteOn(p *cart.Patch, midiNote, velocity int) bool {
	internalNote := midiNote - 60 + MiddleCInternal
	if internalNote < LowestPlayable || internalNote > HighestPlayable {
		return false
	}
	if velocity < 0 || velocity >= 128 {
		velocity = DefaultVelocity
	}

	v.BaseNote = internalNote
	v.NoteVelocityPos = velocity

	baseCents := 100 * internalNote

	unisonSigns := [2]int{-1, 1}
	line1Detune := patchDetuneCents(p.Line1Detune)
	line2Detune := patchDetuneCents(p.Line2Detune)
	unisonDetune := patchDetuneCents(p.UnisonDetune)
	line2Offset := 1200*octaveOffset(p.Line2Octave) + 100*noteOffset(p.Line2Note)

	v.Pairs[Line1Unison1].Reset(centsToPitchIndex(baseCents + line1Detune + unisonSigns[0]*unisonDetune))
	v.Pairs[Line1Unison2].Reset(centsToPitchIndex(baseCents + line1Detune + unisonSigns[1]*unisonDetune))
	v.Pairs[Line2Unison1].Reset(centsToPitchIndex(baseCents + line2Offset + line2Detune + unisonSigns[0]*unisonDetune))
	v.Pairs[Line2Unison2].Reset(centsToPitchIndex(baseCents + line2Offset + line2Detune + unisonSigns[1]*unisonDetune))

	for i := range v.Envelopes {
		v.Envelopes[i].Trigger()
	}

	v.LFOs[LFOVibrato].Waveform = lfo.WaveformFromParam(p.VibratoWaveform)
	v.LFOs[LFOVibrato].Reset(p.VibratoDelay)
	v.LFOs[LFOTremolo].Waveform = lfo.WaveformFromParam(p.TremoloWaveform)
	v.LFOs[LFOTremolo].Reset(p.TremoloDelay)

	return true
}

// patchDetuneCents maps a 0-99 detune parameter to a signed cents offset,
// centered at 50 (§6.1: "-50..+49 semantically").
func patchDetuneCents(v int) int { return v - 50 }

// octaveOffset maps a 0-6 Line-2 octave parameter to -3..+3.
func octaveOffset(v int) int { return v - 3 }

// noteOffset maps a 0-14 Line-2 note parameter to -7..+7.
func noteOffset(v int) int { return v - 7 }

// NoteOff releases every envelope not already releasing (§4.2).
func (v *Voice) NoteOff() {
	for i := range v.Envelopes {
		v.Envelopes[i].ReleaseNote()
	}
}

func envRates(attack, decay, release, hold, sustain int) envelope.Rates {
	return envelope.Rates{Attack: attack, Decay: decay, Release: release, Hold: hold, Sustain: sustain}
}

// Update advances the voice by exactly one sample, writing the result to
// v.Level (§4.5 steps 8-11, §4.6). wheelDepth blending and velocity
// adjustment are computed here since they require both patch and
// controller state.
func (v *Voice) Update(tb *cztables.Tables, p *cart.Patch) {
	vibratoRemap := lfo.DepthWheel(v.VibratoWheelPos, p.VibratoDepth)
	tremoloRemap := lfo.DepthWheel(v.TremoloWheelPos, p.TremoloDepth)

	vibratoSensitivity := tb.VibratoSensitivity[fixedpoint.ClampInt(p.VibratoSensitivity, 0, cztables.NumSensitivityVals-1)]
	tremoloSensitivity := tb.TremoloSensitivity[fixedpoint.ClampInt(p.TremoloSensitivity, 0, cztables.NumSensitivityVals-1)]

	vibratoIncrement := tb.LFOSpeed[fixedpoint.ClampInt(p.VibratoSpeed, 0, cztables.NumLFOSpeedVals-1)]
	tremoloIncrement := tb.LFOSpeed[fixedpoint.ClampInt(p.TremoloSpeed, 0, cztables.NumLFOSpeedVals-1)]

	rawVibrato := v.LFOs[LFOVibrato].Advance(vibratoIncrement, vibratoSensitivity)
	rawTremolo := v.LFOs[LFOTremolo].Advance(tremoloIncrement, tremoloSensitivity)

	vibratoAdj := lfo.ScaleByDepthWheel(rawVibrato, vibratoRemap)
	tremoloAdj := lfo.ScaleByDepthWheel(rawTremolo, tremoloRemap)
	if p.VibratoPolarity != 0 && vibratoAdj < 0 { // UNI: rectify to non-negative swing
		vibratoAdj = -vibratoAdj
	}
	if tremoloAdj < 0 {
		tremoloAdj = -tremoloAdj
	}

	velocityAdj := lfo.VelocityAdjust(v.NoteVelocityPos, p.VelocityDepth, p.VelocityOffset)

	ampRates := envRates(p.AmpAttack, p.AmpDecay, p.AmpRelease, p.AmpHold, p.AmpSustain)
	bendRates := envRates(p.BendAttack, p.BendDecay, p.BendRelease, p.BendHold, p.BendSustain)

	v.Envelopes[envLine1Amp].Advance(tb, ampRates, tb.EnvLevel[fixedpoint.ClampInt(p.AmpHold, 0, cztables.NumEnvLevelVals-1)])
	v.Envelopes[envLine2Amp].Advance(tb, ampRates, tb.EnvLevel[fixedpoint.ClampInt(p.AmpHold, 0, cztables.NumEnvLevelVals-1)])
	v.Envelopes[envLine1Bend].Advance(tb, bendRates, tb.EnvLevel[fixedpoint.ClampInt(p.BendHold, 0, cztables.NumEnvLevelVals-1)])
	v.Envelopes[envLine2Bend].Advance(tb, bendRates, tb.EnvLevel[fixedpoint.ClampInt(p.BendHold, 0, cztables.NumEnvLevelVals-1)])

	line1BendMaxOffset := tb.EnvLevel[fixedpoint.ClampInt(p.Line1BendMax, 0, cztables.NumEnvLevelVals-1)]
	line2BendMaxOffset := tb.EnvLevel[fixedpoint.ClampInt(p.Line2BendMax, 0, cztables.NumEnvLevelVals-1)]

	line1AmpLevel := fixedpoint.ClampAtten(v.Envelopes[envLine1Amp].Attenuation + velocityAdj + tremoloAdj)
	line2AmpLevel := fixedpoint.ClampAtten(v.Envelopes[envLine2Amp].Attenuation + velocityAdj + tremoloAdj)
	line1BendLevel := fixedpoint.ClampAtten(v.Envelopes[envLine1Bend].Attenuation + line1BendMaxOffset)
	line2BendLevel := fixedpoint.ClampAtten(v.Envelopes[envLine2Bend].Attenuation + line2BendMaxOffset)

	wave1ByLine := [2]oscillator.Waveform{oscillator.Waveform(p.Line1Wave1), oscillator.Waveform(p.Line2Wave1)}
	wave2ByLine := [2]oscillator.Waveform{oscillator.Waveform(p.Line1Wave2), oscillator.Waveform(p.Line2Wave2)}
	bendLevelByLine := [2]int{line1BendLevel, line2BendLevel}
	ampLevelByLine := [2]int{line1AmpLevel, line2AmpLevel}

	var results [4]oscillator.Result
	lineOf := [4]int{0, 0, 1, 1}
	for i := range v.Pairs {
		line := lineOf[i]
		results[i] = v.Pairs[i].Advance(tb, wave1ByLine[line], wave2ByLine[line], vibratoAdj, bendLevelByLine[line])
	}

	// Step 8: ring modulation. Line-2 unison members absorb their Line-1
	// counterpart's output in the dB domain and XOR sign bits.
	if p.OutputRingMod != 0 {
		results[Line2Unison1].OutputDB += results[Line1Unison1].OutputDB
		results[Line2Unison1].Sign = results[Line2Unison1].Sign != results[Line1Unison1].Sign
		results[Line2Unison2].OutputDB += results[Line1Unison2].OutputDB
		results[Line2Unison2].Sign = results[Line2Unison2].Sign != results[Line1Unison2].Sign
	}

	unisonAtten := tb.OutputMix[50]
	line1MixAtten := tb.OutputMix[99-fixedpoint.ClampInt(p.OutputMix, 0, 99)]
	line2MixAtten := tb.OutputMix[fixedpoint.ClampInt(p.OutputMix, 0, 99)]

	var sum int32
	for i := range results {
		r := results[i]
		line := lineOf[i]

		// Step 9: amplitude envelope add.
		outputDB := r.OutputDB + ampLevelByLine[line]

		// Step 10: resonance window.
		if r.Waveform.IsResonance() {
			outputDB += oscillator.ResonanceWindow(tb, r.Waveform, r.WaveIndex)
		}

		// §4.6: output-mix and unison attenuation.
		if line == 0 {
			outputDB += line1MixAtten
		} else {
			outputDB += line2MixAtten
		}
		outputDB += unisonAtten

		// Step 11: clamp.
		outputDB = fixedpoint.ClampAtten(outputDB)

		linear := int32(tb.DBToLinear[outputDB])
		if r.Sign {
			linear = -linear
		}
		sum += linear
	}

	if sum > 32767 {
		sum = 32767
	} else if sum < -32768 {
		sum = -32768
	}
	v.Level = int16(sum)
}
