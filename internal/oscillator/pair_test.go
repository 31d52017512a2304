package oscillator

import (
	"testing"

	"github.com/cbegin/czvoice-go/internal/cztables"
	"github.com/cbegin/czvoice-go/internal/fixedpoint"
)

func TestPairAdvanceStaysInPhaseBounds(t *testing.T) {
	tb := cztables.New(32000)
	p := &Pair{}
	p.Reset(8 * 1024) // roughly C5

	for i := 0; i < 100000; i++ {
		r := p.Advance(tb, Saw, Saw, 0, 0)
		if r.OutputDB < 0 || r.OutputDB > fixedpoint.AttenMax {
			t.Fatalf("sample %d: OutputDB %d out of range", i, r.OutputDB)
		}
		if uint32(p.WavePhase) >= fixedpoint.PhaseMod {
			t.Fatalf("sample %d: WavePhase out of range: %d", i, p.WavePhase)
		}
		if uint32(p.ResPhase) >= fixedpoint.PhaseMod {
			t.Fatalf("sample %d: ResPhase out of range: %d", i, p.ResPhase)
		}
	}
}

func TestPairFlagTogglesOnWrap(t *testing.T) {
	tb := cztables.New(32000)
	p := &Pair{}
	p.Reset(12 * 1024) // top octave, fast wrap

	seenToggle := false
	prevFlag := p.Flag
	for i := 0; i < 5000; i++ {
		p.Advance(tb, Saw, Square, 0, 0)
		if p.Flag != prevFlag {
			seenToggle = true
			break
		}
		prevFlag = p.Flag
	}
	if !seenToggle {
		t.Error("expected the pair's flag to toggle on a wave wrap within 5000 samples")
	}
}

func TestResonanceWaveformsReadResPhase(t *testing.T) {
	tb := cztables.New(32000)
	p := &Pair{}
	p.Reset(8 * 1024)

	for i := 0; i < 1000; i++ {
		r := p.Advance(tb, ResonanceSaw, ResonanceSaw, 0, 2000)
		if !r.Waveform.IsResonance() {
			t.Fatalf("sample %d: expected a resonance waveform to be selected", i)
		}
		resIndex := p.ResPhase.WaveIndex()
		if want := tb.SineHalf[resIndex%cztables.SineSize]; r.OutputDB != want {
			t.Fatalf("sample %d: OutputDB = %d, want SineHalf at ResPhase index %d = %d", i, r.OutputDB, resIndex, want)
		}
	}
}

func TestResonanceWindowBranches(t *testing.T) {
	tb := cztables.New(32000)
	if got := ResonanceWindow(tb, ResonanceTrapezoid, 0); got != 0 {
		t.Errorf("ResonanceTrapezoid at waveIndex 0 = %d, want 0", got)
	}
	if got := ResonanceWindow(tb, ResonanceTrapezoid, 1500); got == 0 && tb.Window[476] != 0 {
		t.Errorf("ResonanceTrapezoid at waveIndex 1500 unexpectedly 0")
	}
}
