// Package cart implements patch and cart storage: the external collaborator
// that owns the bounded parameter vectors the voice engine reads (§3.5,
// §6.1, §6.4). The core voice engine never mutates a Patch; edits come from
// this package's Validate/Reset/Copy operations or from callers writing
// through the pointer Bank.Patch returns.
package cart

import "github.com/cbegin/czvoice-go/internal/fixedpoint"

const (
	NumCarts         = 16
	NumPatchesPerCart = 16
	NameSize          = 16

	NumWaveVals            = 8
	NumEnvLevelVals        = 100
	NumDetuneVals          = 100
	NumModEnableVals       = 2
	NumOctaveVals          = 7
	NumNoteVals            = 15
	NumRingModVals         = 2
	NumMixVals             = 100
	NumEnvTimeVals         = 100
	NumEnvKeyScalingVals   = 100
	NumVelocityVals        = 100
	NumVibratoPolarityVals = 2
	NumLFOWaveformVals     = 4
	NumLFODelayVals        = 100
	NumLFOSpeedVals        = 100
	NumLFODepthVals        = 100
	NumLFOSensitivityVals  = 100
	NumTremoloModeVals     = 2
	NumTransposeVals       = 49 // -24..+24
	NumPitchWheelModeVals  = 2
	NumPitchWheelRangeVals = 12
	NumPortamentoModeVals  = 2
	NumPortamentoTimeVals  = 100
	NumUnisonModeVals      = 2
)

// Patch mirrors the bounded parameter vector of §6.1. Field order follows
// this module's own canonical enumeration (the two upstream C revisions
// disagree on ordering; see SPEC_FULL.md Part D.1).
type Patch struct {
	Name string `yaml:"name"`

	Line1Wave1 int `yaml:"line1_wave1"`
	Line1Wave2 int `yaml:"line1_wave2"`
	Line2Wave1 int `yaml:"line2_wave1"`
	Line2Wave2 int `yaml:"line2_wave2"`

	Line1BendMax int `yaml:"line1_bend_max"`
	Line2BendMax int `yaml:"line2_bend_max"`

	Line1PMEnable int `yaml:"line1_pm_enable"`
	Line1AMEnable int `yaml:"line1_am_enable"`
	Line2PMEnable int `yaml:"line2_pm_enable"`
	Line2AMEnable int `yaml:"line2_am_enable"`

	Line1Detune  int `yaml:"line1_detune"`
	Line2Detune  int `yaml:"line2_detune"`
	UnisonDetune int `yaml:"unison_detune"`
	Line2Octave  int `yaml:"line2_octave"`
	Line2Note    int `yaml:"line2_note"`

	OutputRingMod int `yaml:"output_ring_mod"`
	OutputMix     int `yaml:"output_mix"`
	UnisonMode    int `yaml:"unison_mode"`

	AmpAttack        int `yaml:"amp_attack"`
	AmpDecay         int `yaml:"amp_decay"`
	AmpRelease       int `yaml:"amp_release"`
	AmpHold          int `yaml:"amp_hold"`
	AmpSustain       int `yaml:"amp_sustain"`
	AmpTimeKeyScale  int `yaml:"amp_time_keyscale"`
	AmpLevelKeyScale int `yaml:"amp_level_keyscale"`

	BendAttack        int `yaml:"bend_attack"`
	BendDecay         int `yaml:"bend_decay"`
	BendRelease       int `yaml:"bend_release"`
	BendHold          int `yaml:"bend_hold"`
	BendSustain       int `yaml:"bend_sustain"`
	BendTimeKeyScale  int `yaml:"bend_time_keyscale"`
	BendLevelKeyScale int `yaml:"bend_level_keyscale"`

	VelocityOffset int `yaml:"velocity_offset"`
	VelocityDepth  int `yaml:"velocity_depth"`

	VibratoPolarity    int `yaml:"vibrato_polarity"`
	VibratoWaveform    int `yaml:"vibrato_waveform"`
	VibratoDelay       int `yaml:"vibrato_delay"`
	VibratoSpeed       int `yaml:"vibrato_speed"`
	VibratoDepth       int `yaml:"vibrato_depth"`
	VibratoSensitivity int `yaml:"vibrato_sensitivity"`

	TremoloMode        int `yaml:"tremolo_mode"`
	TremoloWaveform    int `yaml:"tremolo_waveform"`
	TremoloDelay       int `yaml:"tremolo_delay"`
	TremoloSpeed       int `yaml:"tremolo_speed"`
	TremoloDepth       int `yaml:"tremolo_depth"`
	TremoloSensitivity int `yaml:"tremolo_sensitivity"`

	Transpose       int `yaml:"transpose"`
	PitchWheelMode  int `yaml:"pitch_wheel_mode"`
	PitchWheelRange int `yaml:"pitch_wheel_range"`

	PortamentoMode   int `yaml:"portamento_mode"`
	PortamentoLegato int `yaml:"portamento_legato"`
	PortamentoFollow int `yaml:"portamento_follow"`
	PortamentoTime   int `yaml:"portamento_time"`
}

// bound pairs a Patch field's address with its exclusive upper bound, used
// by Validate to clamp every parameter in one pass (§6.1, §7
// ParameterClamped).
type bound struct {
	field *int
	max   int
}

func (p *Patch) bounds() []bound {
	return []bound{
		{&p.Line1Wave1, NumWaveVals}, {&p.Line1Wave2, NumWaveVals},
		{&p.Line2Wave1, NumWaveVals}, {&p.Line2Wave2, NumWaveVals},
		{&p.Line1BendMax, NumEnvLevelVals}, {&p.Line2BendMax, NumEnvLevelVals},
		{&p.Line1PMEnable, NumModEnableVals}, {&p.Line1AMEnable, NumModEnableVals},
		{&p.Line2PMEnable, NumModEnableVals}, {&p.Line2AMEnable, NumModEnableVals},
		{&p.Line1Detune, NumDetuneVals}, {&p.Line2Detune, NumDetuneVals},
		{&p.UnisonDetune, NumDetuneVals},
		{&p.Line2Octave, NumOctaveVals}, {&p.Line2Note, NumNoteVals},
		{&p.OutputRingMod, NumRingModVals}, {&p.OutputMix, NumMixVals},
		{&p.UnisonMode, NumUnisonModeVals},
		{&p.AmpAttack, NumEnvTimeVals}, {&p.AmpDecay, NumEnvTimeVals},
		{&p.AmpRelease, NumEnvTimeVals}, {&p.AmpHold, NumEnvLevelVals},
		{&p.AmpSustain, NumEnvTimeVals},
		{&p.AmpTimeKeyScale, NumEnvKeyScalingVals}, {&p.AmpLevelKeyScale, NumEnvKeyScalingVals},
		{&p.BendAttack, NumEnvTimeVals}, {&p.BendDecay, NumEnvTimeVals},
		{&p.BendRelease, NumEnvTimeVals}, {&p.BendHold, NumEnvLevelVals},
		{&p.BendSustain, NumEnvTimeVals},
		{&p.BendTimeKeyScale, NumEnvKeyScalingVals}, {&p.BendLevelKeyScale, NumEnvKeyScalingVals},
		{&p.VelocityOffset, NumVelocityVals}, {&p.VelocityDepth, NumVelocityVals},
		{&p.VibratoPolarity, NumVibratoPolarityVals}, {&p.VibratoWaveform, NumLFOWaveformVals},
		{&p.VibratoDelay, NumLFODelayVals}, {&p.VibratoSpeed, NumLFOSpeedVals},
		{&p.VibratoDepth, NumLFODepthVals}, {&p.VibratoSensitivity, NumLFOSensitivityVals},
		{&p.TremoloMode, NumTremoloModeVals}, {&p.TremoloWaveform, NumLFOWaveformVals},
		{&p.TremoloDelay, NumLFODelayVals}, {&p.TremoloSpeed, NumLFOSpeedVals},
		{&p.TremoloDepth, NumLFODepthVals}, {&p.TremoloSensitivity, NumLFOSensitivityVals},
		{&p.Transpose, NumTransposeVals}, {&p.PitchWheelMode, NumPitchWheelModeVals},
		{&p.PitchWheelRange, NumPitchWheelRangeVals},
		{&p.PortamentoMode, NumPortamentoModeVals}, {&p.PortamentoLegato, NumModEnableVals},
		{&p.PortamentoFollow, NumModEnableVals}, {&p.PortamentoTime, NumPortamentoTimeVals},
	}
}

// Validate clamps every out-of-range parameter in place and reports whether
// anything was clamped (§7 ParameterClamped). It also sanitizes the name to
// valid characters and length.
func (p *Patch) Validate() (clamped bool) {
	for _, b := range p.bounds() {
		v := fixedpoint.ClampInt(*b.field, 0, b.max-1)
		if v != *b.field {
			clamped = true
		}
		*b.field = v
	}
	sanitized, nameClamped := sanitizeName(p.Name)
	p.Name = sanitized
	return clamped || nameClamped
}

func sanitizeName(name string) (string, bool) {
	clamped := false
	runes := []rune(name)
	if len(runes) > NameSize {
		runes = runes[:NameSize]
		clamped = true
	}
	for i, r := range runes {
		if !validNameChar(r) {
			runes[i] = ' '
			clamped = true
		}
	}
	return string(runes), clamped
}

func validNameChar(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '-' || r == '!' || r == '?' || r == '.':
		return true
	default:
		return false
	}
}

// ResetDefault returns a patch with the non-zero defaults a fresh patch
// slot carries (detune/octave/note/mix/velocity midpoints), matching
// cart_reset_patch.
func ResetDefault() Patch {
	return Patch{
		Name:           "INIT",
		Line1Detune:    50,
		Line2Detune:    50,
		UnisonDetune:   50,
		Line2Octave:    3,
		Line2Note:      7,
		OutputMix:      50,
		VelocityOffset: 50,
		VelocityDepth:  50,
		Transpose:      24,
	}
}

// Copy overwrites dst's contents with src's, by value.
func Copy(dst *Patch, src Patch) {
	*dst = src
}

// Cart is a bank of NumPatchesPerCart patches sharing a name.
type Cart struct {
	Name    string  `yaml:"name"`
	Patches []Patch `yaml:"patches"`
}

// NewCart returns a cart with every patch slot reset to its default.
func NewCart(name string) Cart {
	c := Cart{Name: name, Patches: make([]Patch, NumPatchesPerCart)}
	for i := range c.Patches {
		c.Patches[i] = ResetDefault()
	}
	return c
}

// Bank is the full 16-cart store (§6.4).
type Bank struct {
	Carts []Cart `yaml:"carts"`
}

// NewBank returns a bank with every cart and patch reset to defaults,
// matching cart_reset_all.
func NewBank() *Bank {
	b := &Bank{Carts: make([]Cart, NumCarts)}
	for i := range b.Carts {
		b.Carts[i] = NewCart("")
	}
	return b
}

// ResetAll resets every cart and patch in place to its default state.
func (b *Bank) ResetAll() {
	for i := range b.Carts {
		b.Carts[i] = NewCart(b.Carts[i].Name)
	}
}

// ResetCart resets a single cart's patches to their defaults.
func (b *Bank) ResetCart(cart int) error {
	if !b.validCartIndex(cart) {
		return ErrInvalidIndex
	}
	b.Carts[cart] = NewCart(b.Carts[cart].Name)
	return nil
}

// ResetPatch resets a single patch slot to its default.
func (b *Bank) ResetPatch(cart, patch int) error {
	if err := b.validate(cart, patch); err != nil {
		return err
	}
	b.Carts[cart].Patches[patch] = ResetDefault()
	return nil
}

// ValidatePatch clamps a single patch slot's parameters in place.
func (b *Bank) ValidatePatch(cart, patch int) (clamped bool, err error) {
	if err := b.validate(cart, patch); err != nil {
		return false, err
	}
	return b.Carts[cart].Patches[patch].Validate(), nil
}

// ValidateCart clamps every patch in a cart.
func (b *Bank) ValidateCart(cart int) (clamped bool, err error) {
	if !b.validCartIndex(cart) {
		return false, ErrInvalidIndex
	}
	for i := range b.Carts[cart].Patches {
		if b.Carts[cart].Patches[i].Validate() {
			clamped = true
		}
	}
	return clamped, nil
}

// CopyPatch copies one patch slot to another, across carts if needed.
func (b *Bank) CopyPatch(srcCart, srcPatch, dstCart, dstPatch int) error {
	if err := b.validate(srcCart, srcPatch); err != nil {
		return err
	}
	if err := b.validate(dstCart, dstPatch); err != nil {
		return err
	}
	Copy(&b.Carts[dstCart].Patches[dstPatch], b.Carts[srcCart].Patches[srcPatch])
	return nil
}

// CopyCart copies every patch from src to dst.
func (b *Bank) CopyCart(src, dst int) error {
	if !b.validCartIndex(src) {
		return ErrInvalidIndex
	}
	if !b.validCartIndex(dst) {
		return ErrInvalidIndex
	}
	b.Carts[dst] = b.Carts[src]
	b.Carts[dst].Patches = append([]Patch(nil), b.Carts[src].Patches...)
	return nil
}

// Patch returns a pointer to a patch slot, for read-only use by the voice
// engine (§3.5: "the core never mutates a patch").
func (b *Bank) Patch(cart, patch int) (*Patch, error) {
	if err := b.validate(cart, patch); err != nil {
		return nil, err
	}
	return &b.Carts[cart].Patches[patch], nil
}

func (b *Bank) validCartIndex(cart int) bool {
	return cart >= 0 && cart < len(b.Carts)
}

func (b *Bank) validate(cart, patch int) error {
	if !b.validCartIndex(cart) {
		return ErrInvalidIndex
	}
	if patch < 0 || patch >= len(b.Carts[cart].Patches) {
		return ErrInvalidIndex
	}
	return nil
}
