// Package lfo implements the voice engine's vibrato and tremolo low-frequency
// oscillators: a 24-bit phase accumulator, delay-cycle countdown, four
// waveform shapes, and depth/wheel/velocity blending (§4.3).
package lfo

import "github.com/cbegin/czvoice-go/internal/fixedpoint"

// Waveform selects one of the four LFO shapes.
type Waveform int

const (
	Triangle Waveform = iota
	Square
	SawUp
	SawDown
)

// LFO is a single vibrato- or tremolo-style low-frequency oscillator.
type LFO struct {
	Phase       fixedpoint.Phase
	DelayCycles int
	Waveform    Waveform
}

// Reset restarts the LFO with the given delay, counted in Advance calls
// (one per sample); note_on passes the patch's raw delay parameter (§4.2).
func (l *LFO) Reset(delayCycles int) {
	l.Phase = 0
	l.DelayCycles = delayCycles
}

// Advance adds increment to the phase, honors the delay countdown, and
// returns the shaped, unscaled output in [-sensitivity, +sensitivity]
// (§4.3). Callers apply depth-wheel scaling via ScaleByDepthWheel.
func (l *LFO) Advance(increment uint32, sensitivity int) int {
	l.Phase.Advance(increment)
	if l.DelayCycles > 0 {
		l.DelayCycles--
		l.Phase = 0
		return 0
	}
	return shape(l.Waveform, l.Phase.WaveIndex(), sensitivity)
}

// shape maps a wave-position index (0..2047) to a value in
// [-sensitivity, +sensitivity] for the given waveform (§4.3 table).
func shape(w Waveform, idx, sens int) int {
	const n = fixedpoint.WaveIndexMod
	switch w {
	case Square:
		if idx < n/2 {
			return sens
		}
		return -sens
	case SawUp:
		return -sens + idx*2*sens/n
	case SawDown:
		return sens - idx*2*sens/n
	default: // Triangle: four linear segments peaking at +-sens
		switch {
		case idx < n/4:
			return idx * sens / (n / 4)
		case idx < n/2:
			return sens - (idx-n/4)*sens/(n/4)
		case idx < 3*n/4:
			return -(idx - n/2) * sens / (n / 4)
		default:
			return -sens + (idx-3*n/4)*sens/(n/4)
		}
	}
}

// DepthWheel computes the blended depth position (0-127) from a controller
// wheel position and the patch's fixed depth parameter (§4.3).
func DepthWheel(wheelPos, patchDepth int) int {
	remapPos := wheelPos*(99-patchDepth)/100 + 128*patchDepth/100
	return fixedpoint.ClampInt(remapPos, 0, 127)
}

// ScaleByDepthWheel scales a shaped LFO value by remapPos/128 (§4.3).
func ScaleByDepthWheel(raw, remapPos int) int {
	return raw * remapPos / 128
}

// VelocityAdjust computes the amplitude-path velocity adjustment, in dB
// units, from note velocity and the patch's offset/depth parameters (§4.3).
func VelocityAdjust(velocity, velDepth, velOffset int) int {
	remapPos := velocity*2*velDepth/100 - 128 + 2*128*velOffset/100
	remapPos = fixedpoint.ClampInt(remapPos, 0, 127)
	return remapPos * 32
}

// WaveformFromParam maps a patch's 0-3 vibrato/tremolo waveform parameter to
// a Waveform. Out-of-range values clamp to Triangle, matching the hot path's
// "never panic on malformed state" invariant (§7).
func WaveformFromParam(v int) Waveform {
	switch v {
	case 1:
		return Square
	case 2:
		return SawUp
	case 3:
		return SawDown
	default:
		return Triangle
	}
}
