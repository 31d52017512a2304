package fixedpoint

import "testing"

func TestAdvanceWrapsAndReportsPeriods(t *testing.T) {
	var p Phase = PhaseMod - 10
	wrapped, periods := p.Advance(25)
	if !wrapped || periods != 1 {
		t.Fatalf("Advance = wrapped=%v periods=%d, want true,1", wrapped, periods)
	}
	if uint32(p) != 15 {
		t.Errorf("p = %d, want 15", p)
	}
}

func TestAdvanceNoWrapReportsZeroPeriods(t *testing.T) {
	var p Phase = 100
	wrapped, periods := p.Advance(50)
	if wrapped || periods != 0 {
		t.Fatalf("Advance = wrapped=%v periods=%d, want false,0", wrapped, periods)
	}
	if uint32(p) != 150 {
		t.Errorf("p = %d, want 150", p)
	}
}

func TestWaveIndexTopBits(t *testing.T) {
	var p Phase = 1 << WaveIndexShift
	if got := p.WaveIndex(); got != 1 {
		t.Errorf("WaveIndex() = %d, want 1", got)
	}
	var max Phase = PhaseMod - 1
	if got := max.WaveIndex(); got != WaveIndexMod-1 {
		t.Errorf("WaveIndex() = %d, want %d", got, WaveIndexMod-1)
	}
}

func TestClampHelpers(t *testing.T) {
	if got := ClampInt(-5, 0, 10); got != 0 {
		t.Errorf("ClampInt(-5,0,10) = %d, want 0", got)
	}
	if got := ClampInt(15, 0, 10); got != 10 {
		t.Errorf("ClampInt(15,0,10) = %d, want 10", got)
	}
	if got := ClampAtten(5000); got != AttenMax {
		t.Errorf("ClampAtten(5000) = %d, want %d", got, AttenMax)
	}
	if got := ClampPitchIndex(-1); got != 0 {
		t.Errorf("ClampPitchIndex(-1) = %d, want 0", got)
	}
	if got := ClampPitchIndex(MaxPitchIndex + 5); got != MaxPitchIndex-1 {
		t.Errorf("ClampPitchIndex overflow = %d, want %d", got, MaxPitchIndex-1)
	}
}

func TestRowStepDecomposition(t *testing.T) {
	row, step := RowStep(12*OctaveSteps + 7)
	if row != 12 || step != 7 {
		t.Errorf("RowStep = (%d,%d), want (12,7)", row, step)
	}
}
