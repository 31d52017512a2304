package cztables

import (
	"strconv"
	"testing"
)

func TestDBToLinearMonotoneAndBounds(t *testing.T) {
	tb := New(32000)

	if tb.DBToLinear[0] != 32767 {
		t.Errorf("DBToLinear[0] = %d, want 32767", tb.DBToLinear[0])
	}
	if tb.DBToLinear[AttenSize-1] != 0 {
		t.Errorf("DBToLinear[%d] = %d, want 0", AttenSize-1, tb.DBToLinear[AttenSize-1])
	}
	for i := 0; i < AttenSize-1; i++ {
		if tb.DBToLinear[i] < tb.DBToLinear[i+1] {
			t.Fatalf("DBToLinear not monotone non-increasing at %d: %d < %d", i, tb.DBToLinear[i], tb.DBToLinear[i+1])
		}
	}
}

func TestSineHalfSymmetricAndBounds(t *testing.T) {
	tb := New(32000)

	if tb.SineHalf[0] != 4095 {
		t.Errorf("SineHalf[0] = %d, want 4095", tb.SineHalf[0])
	}
	if tb.SineHalf[512] != 0 {
		t.Errorf("SineHalf[512] = %d, want 0", tb.SineHalf[512])
	}
	for k := 0; k <= 512; k++ {
		// The table covers one half period, so index 1024 wraps to 0.
		got, want := tb.SineHalf[512-k], tb.SineHalf[(512+k)%SineSize]
		if got != want {
			t.Fatalf("SineHalf[%d]=%d != SineHalf[%d]=%d", 512-k, got, (512+k)%SineSize, want)
		}
	}
}

func TestPhaseIncrementMonotonicallyIncreasing(t *testing.T) {
	tb := New(32000)
	for i := 0; i < OctaveSteps-1; i++ {
		if tb.PhaseIncrement[i] >= tb.PhaseIncrement[i+1] {
			t.Fatalf("PhaseIncrement not increasing at %d: %d >= %d", i, tb.PhaseIncrement[i], tb.PhaseIncrement[i+1])
		}
	}
}

func TestBendPeriodMonotonicallyDecreasing(t *testing.T) {
	tb := New(32000)
	for i := 0; i < OctaveSteps-1; i++ {
		if tb.BendPeriod[i] < tb.BendPeriod[i+1] {
			t.Fatalf("BendPeriod not decreasing at %d: %d < %d", i, tb.BendPeriod[i], tb.BendPeriod[i+1])
		}
	}
}

func TestEnvLevelTableBounds(t *testing.T) {
	tb := New(32000)
	if tb.EnvLevel[0] != 4095 {
		t.Errorf("EnvLevel[0] = %d, want 4095", tb.EnvLevel[0])
	}
	for _, v := range tb.EnvLevel {
		if v < 0 || v > 4095 {
			t.Fatalf("EnvLevel out of range: %d", v)
		}
	}
}

func TestOutputMixMonotoneAndMidpoint(t *testing.T) {
	tb := New(32000)
	if tb.OutputMix[99] != 0 {
		t.Errorf("OutputMix[99] = %d, want 0", tb.OutputMix[99])
	}
	if tb.OutputMix[50] != 512 {
		t.Errorf("OutputMix[50] = %d, want 512 (6.0 dB)", tb.OutputMix[50])
	}
	for i := 0; i < NumMixVals-1; i++ {
		if tb.OutputMix[i] < tb.OutputMix[i+1] {
			t.Fatalf("OutputMix not monotone non-increasing at %d: %d < %d", i, tb.OutputMix[i], tb.OutputMix[i+1])
		}
	}
}

func TestTablesIndependentOfSampleRateShape(t *testing.T) {
	for _, sr := range []int{32000, 44100, 48000} {
		t.Run(strconv.Itoa(sr), func(t *testing.T) {
			tb := New(sr)
			if tb.SampleRate != sr {
				t.Errorf("SampleRate = %d, want %d", tb.SampleRate, sr)
			}
			if tb.DBToLinear[0] != 32767 {
				t.Errorf("DBToLinear[0] = %d, want 32767", tb.DBToLinear[0])
			}
		})
	}
}
