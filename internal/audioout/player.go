// Package audioout adapts the voice engine to ebiten's streaming audio
// context for live audition (SPEC_FULL.md Part D.3). It is not part of the
// core: the engine never imports this package.
package audioout

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/cbegin/czvoice-go/internal/engine"
)

// Source renders stereo interleaved float32 frames, one per UpdateAll call,
// mirroring the engine's single 16-bit sample to both channels.
type Source struct {
	eng *engine.Engine
}

// NewSource wraps an Engine for streaming playback.
func NewSource(eng *engine.Engine) *Source { return &Source{eng: eng} }

// Process fills dst with interleaved stereo float32 samples in [-1, 1].
func (s *Source) Process(dst []float32) {
	for i := 0; i < len(dst); i += 2 {
		sample := float32(s.eng.UpdateAll()) / 32768
		dst[i] = sample
		dst[i+1] = sample
	}
}

type streamReader struct {
	mu     sync.Mutex
	source *Source
	buf    []float32
}

func (r *streamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	need := frames * 2
	if cap(r.buf) < need {
		r.buf = make([]float32, need)
	}
	r.buf = r.buf[:need]
	r.source.Process(r.buf)
	for i := 0; i < need; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(r.buf[i]))
	}
	return frames * 8, nil
}

func (r *streamReader) Close() error { return nil }

// Player streams an Engine's live output through ebiten's audio context.
type Player struct {
	player *ebitaudio.Player
	reader io.ReadCloser
}

// NewPlayer starts a streaming player at the given sample rate.
func NewPlayer(sampleRate int, eng *engine.Engine) (*Player, error) {
	ctx := ebitaudio.NewContext(sampleRate)
	reader := &streamReader{source: NewSource(eng)}
	pl, err := ctx.NewPlayerF32(reader)
	if err != nil {
		return nil, fmt.Errorf("audioout: new player: %w", err)
	}
	return &Player{player: pl, reader: reader}, nil
}

// Play starts or resumes streaming playback.
func (p *Player) Play() { p.player.Play() }

// IsPlaying reports whether the player is currently streaming.
func (p *Player) IsPlaying() bool { return p.player.IsPlaying() }

// Stop halts playback and releases the underlying reader.
func (p *Player) Stop() error {
	p.player.Pause()
	p.player.Close()
	return p.reader.Close()
}
