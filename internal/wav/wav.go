// Package wav writes the two PCM WAV flavors the demo driver needs: a
// PCM16 mono stream matching export_buffer's layout, and a float32 stereo
// stream for live-audition style output (§6.4: "No file format is part of
// the core").
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	headerSize      = 44
	formatPCM       = 1
	formatIEEEFloat = 3
)

func writeHeader(w io.Writer, dataSize, sampleRate, channels, bitsPerSample, format int) error {
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	chunkSize := 36 + dataSize

	header := make([]byte, headerSize)
	copy(header[0:], "RIFF")
	binary.LittleEndian.PutUint32(header[4:], uint32(chunkSize))
	copy(header[8:], "WAVE")
	copy(header[12:], "fmt ")
	binary.LittleEndian.PutUint32(header[16:], 16)
	binary.LittleEndian.PutUint16(header[20:], uint16(format))
	binary.LittleEndian.PutUint16(header[22:], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:], uint16(bitsPerSample))
	copy(header[36:], "data")
	binary.LittleEndian.PutUint32(header[40:], uint32(dataSize))

	_, err := w.Write(header)
	return err
}

// WritePCM16Mono writes a single-channel 16-bit PCM WAV stream, matching
// export_buffer's layout (RIFF/WAVE/fmt /data, format tag 1).
func WritePCM16Mono(w io.Writer, samples []int16, sampleRate int) error {
	const channels, bitsPerSample = 1, 16
	dataSize := len(samples) * 2
	if err := writeHeader(w, dataSize, sampleRate, channels, bitsPerSample, formatPCM); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}
	buf := make([]byte, dataSize)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(s))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}
	return nil
}

// WriteFloat32Stereo writes an interleaved two-channel IEEE-float WAV
// stream (format tag 3), for a live-audition driver that wants float
// samples without a separate int16 conversion.
func WriteFloat32Stereo(w io.Writer, samples []float32, sampleRate int) error {
	const channels, bitsPerSample = 2, 32
	dataSize := len(samples) * 4
	if err := writeHeader(w, dataSize, sampleRate, channels, bitsPerSample, formatIEEEFloat); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}
	buf := make([]byte, dataSize)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(s))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("wav: write samples: %w", err)
	}
	return nil
}
