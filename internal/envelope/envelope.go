// Package envelope implements the four-stage ATTACK/DECAY/SUSTAIN/RELEASE
// generators used by the amplitude and bend envelopes of each voice line.
package envelope

import (
	"github.com/cbegin/czvoice-go/internal/cztables"
	"github.com/cbegin/czvoice-go/internal/fixedpoint"
)

// Stage identifies which of the four segments an envelope is currently in.
type Stage int

const (
	Attack Stage = iota + 1
	Decay
	Sustain
	Release
)

// Rates names the four patch-facing time parameters for one envelope.
type Rates struct {
	Attack  int // 0-99
	Decay   int // 0-99
	Release int // 0-99
	Hold    int // 0-99, indexes EnvLevel for the DECAY->SUSTAIN threshold
	Sustain int // 0-99, rate used while in SUSTAIN
}

// Envelope is one ATTACK->DECAY->SUSTAIN->RELEASE state machine advancing in
// the 24-bit fixed-point phase domain (§3.4, §4.4).
type Envelope struct {
	Stage       Stage
	Phase       fixedpoint.Phase
	Attenuation int // 0 (full) .. 4095 (silent)
}

// Reset puts the envelope in RELEASE with full attenuation, matching
// reset_all (§4.2).
func (e *Envelope) Reset() {
	e.Stage = Release
	e.Phase = 0
	e.Attenuation = fixedpoint.AttenMax
}

// Trigger starts a new note: stage ATTACK, phase 0 (§4.2 note_on).
func (e *Envelope) Trigger() {
	e.Stage = Attack
	e.Phase = 0
}

// ReleaseNote moves the envelope to RELEASE unless it is already there,
// preserving the current attenuation (§4.2 note_off).
func (e *Envelope) ReleaseNote() {
	if e.Stage != Release {
		e.Stage = Release
		e.Phase = 0
	}
}

// timeIndex looks up the EnvTime time index for the rate parameter of the
// given stage (§4.4); phaseIncrement splits it into row and step.
func timeIndex(tb *cztables.Tables, rates Rates, stage Stage) int {
	switch stage {
	case Attack:
		return tb.EnvTime[fixedpoint.ClampInt(rates.Attack, 0, cztables.NumEnvTimeVals-1)]
	case Decay:
		return tb.EnvTime[fixedpoint.ClampInt(rates.Decay, 0, cztables.NumEnvTimeVals-1)]
	case Sustain:
		return tb.EnvTime[fixedpoint.ClampInt(rates.Sustain, 0, cztables.NumEnvTimeVals-1)]
	default: // Release
		return tb.EnvTime[fixedpoint.ClampInt(rates.Release, 0, cztables.NumEnvTimeVals-1)]
	}
}

// phaseIncrement derives the per-sample phase increment for the given time
// index. Every stage, ATTACK included, reads the decay increment table
// (§4.4).
func phaseIncrement(tb *cztables.Tables, idx int) uint32 {
	row, step := idx/cztables.EnvStepsPerRow, idx%cztables.EnvStepsPerRow
	base := tb.EnvDecayIncrement[step]
	if row < 12 {
		return base >> uint(12-row)
	}
	return base
}

// Advance runs one sample of the envelope's state machine, applying the
// elapsed-period catch-up loop described in §4.4. holdLevel is
// tb.EnvLevel[patchHoldParam].
func (e *Envelope) Advance(tb *cztables.Tables, rates Rates, holdLevel int) {
	idx := timeIndex(tb, rates, e.Stage)
	inc := phaseIncrement(tb, idx)

	_, periods := e.Phase.Advance(inc)
	for i := uint32(0); i < periods; i++ {
		e.step(holdLevel)
	}
}

// step applies exactly one elapsed dB-step, per §4.4.
func (e *Envelope) step(holdLevel int) {
	switch e.Stage {
	case Attack:
		e.Attenuation = (127 * e.Attenuation) / 128
		if e.Attenuation <= 0 {
			e.Attenuation = 0
			e.Stage = Decay
			e.Phase = 0
		}
	case Decay:
		e.Attenuation++
		if e.Attenuation >= holdLevel {
			e.Attenuation = holdLevel
			e.Stage = Sustain
			e.Phase = 0
		}
	case Sustain, Release:
		e.Attenuation++
	}
	e.Attenuation = fixedpoint.ClampAtten(e.Attenuation)
}
