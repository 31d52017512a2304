package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWritePCM16MonoHeaderFields(t *testing.T) {
	samples := []int16{0, 100, -100, 32767, -32768}
	var buf bytes.Buffer
	if err := WritePCM16Mono(&buf, samples, 32000); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) != headerSize+len(samples)*2 {
		t.Fatalf("length = %d, want %d", len(b), headerSize+len(samples)*2)
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[12:16]) != "fmt " || string(b[36:40]) != "data" {
		t.Fatalf("unexpected chunk IDs: %q", b[:44])
	}
	if got := binary.LittleEndian.Uint16(b[20:22]); got != formatPCM {
		t.Errorf("format tag = %d, want %d", got, formatPCM)
	}
	if got := binary.LittleEndian.Uint16(b[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(b[24:28]); got != 32000 {
		t.Errorf("sample rate = %d, want 32000", got)
	}
	if got := binary.LittleEndian.Uint16(b[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	for i, want := range samples {
		got := int16(binary.LittleEndian.Uint16(b[headerSize+i*2:]))
		if got != want {
			t.Errorf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestWriteFloat32StereoHeaderFields(t *testing.T) {
	samples := []float32{0, 0.5, -0.5, 1, -1}
	var buf bytes.Buffer
	if err := WriteFloat32Stereo(&buf, samples, 44100); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if got := binary.LittleEndian.Uint16(b[20:22]); got != formatIEEEFloat {
		t.Errorf("format tag = %d, want %d", got, formatIEEEFloat)
	}
	if got := binary.LittleEndian.Uint16(b[22:24]); got != 2 {
		t.Errorf("channels = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint16(b[34:36]); got != 32 {
		t.Errorf("bits per sample = %d, want 32", got)
	}
	if len(b) != headerSize+len(samples)*4 {
		t.Fatalf("length = %d, want %d", len(b), headerSize+len(samples)*4)
	}
}
