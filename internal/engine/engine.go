// Package engine owns the voice bank, the cart bank, and the shared lookup
// tables, and exposes the lifecycle API that drives them (§4.2).
package engine

import (
	"github.com/cbegin/czvoice-go/internal/cart"
	"github.com/cbegin/czvoice-go/internal/cztables"
	"github.com/cbegin/czvoice-go/internal/voice"
)

// Engine is a fixed-size voice bank sharing one set of tables and one cart
// bank (§3.6). Tables are built once at construction and never mutated.
type Engine struct {
	tables *cztables.Tables
	bank   *cart.Bank
	voices []voice.Voice
}

// New builds an Engine with numVoices voices at the given sample rate,
// with every voice and every cart/patch reset to its default state.
func New(sampleRate, numVoices int) *Engine {
	e := &Engine{
		tables: cztables.New(sampleRate),
		bank:   cart.NewBank(),
		voices: make([]voice.Voice, numVoices),
	}
	e.ResetAll()
	return e
}

// Tables exposes the shared lookup tables, e.g. for a live-audition or
// offline-render driver that needs SampleRate.
func (e *Engine) Tables() *cztables.Tables { return e.tables }

// Bank exposes the cart/patch store for editing outside the hot path.
func (e *Engine) Bank() *cart.Bank { return e.bank }

// NumVoices reports the size of the voice bank.
func (e *Engine) NumVoices() int { return len(e.voices) }

func (e *Engine) validVoiceIndex(voiceIndex int) bool {
	return voiceIndex >= 0 && voiceIndex < len(e.voices)
}

// ResetAll resets every voice to its post-construction state (§4.2).
func (e *Engine) ResetAll() {
	for i := range e.voices {
		e.voices[i].Reset()
	}
}

// LoadPatch validates cart/patch indices and stores them on the voice
// (§4.2). It does not reset the voice's running state.
func (e *Engine) LoadPatch(voiceIndex, cartIndex, patchIndex int) error {
	if !e.validVoiceIndex(voiceIndex) {
		return ErrInvalidIndex
	}
	if _, err := e.bank.Patch(cartIndex, patchIndex); err != nil {
		return ErrInvalidIndex
	}
	v := &e.voices[voiceIndex]
	v.CartIndex = cartIndex
	v.PatchIndex = patchIndex
	return nil
}

// NoteOn starts a note on the given voice using its currently loaded patch
// (§4.2). Returns ErrInvalidIndex for a bad voice index; out-of-range MIDI
// notes are a silent no-op per §4.7, not an error.
func (e *Engine) NoteOn(voiceIndex, midiNote, velocity int) error {
	if !e.validVoiceIndex(voiceIndex) {
		return ErrInvalidIndex
	}
	v := &e.voices[voiceIndex]
	p, err := e.bank.Patch(v.CartIndex, v.PatchIndex)
	if err != nil {
		return ErrInvalidIndex
	}
	v.NoteOn(p, midiNote, velocity)
	return nil
}

// NoteOff releases the given voice's envelopes (§4.2).
func (e *Engine) NoteOff(voiceIndex int) error {
	if !e.validVoiceIndex(voiceIndex) {
		return ErrInvalidIndex
	}
	e.voices[voiceIndex].NoteOff()
	return nil
}

// UpdateAll advances every voice by one sample and returns each voice's
// rendered level, summed into a single output sample (§4.2, §4.7: cannot
// fail). Callers needing independent per-voice signals should use Voice.
func (e *Engine) UpdateAll() int16 {
	var sum int32
	for i := range e.voices {
		v := &e.voices[i]
		p, err := e.bank.Patch(v.CartIndex, v.PatchIndex)
		if err != nil {
			continue
		}
		v.Update(e.tables, p)
		sum += int32(v.Level)
	}
	if sum > 32767 {
		sum = 32767
	} else if sum < -32768 {
		sum = -32768
	}
	return int16(sum)
}

// Voice returns a pointer to a voice's state, e.g. for per-voice level
// inspection after UpdateAll. Returns nil for an out-of-range index.
func (e *Engine) Voice(voiceIndex int) *voice.Voice {
	if !e.validVoiceIndex(voiceIndex) {
		return nil
	}
	return &e.voices[voiceIndex]
}
