// Command czvoice is a demo driver for the CZ-style voice engine: it
// assembles one of a handful of canned patches, renders it to a WAV file,
// and optionally plays it back live.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/cbegin/czvoice-go/internal/audioout"
	"github.com/cbegin/czvoice-go/internal/engine"
	"github.com/cbegin/czvoice-go/internal/wav"
)

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 32000, "output sample rate")
		cartIndex  = flag.Int("cart", 0, "cart slot to load the demo patch into")
		patchIndex = flag.Int("patch", 0, "patch slot to load the demo patch into")
		note       = flag.Int("note", 60, "MIDI note number to trigger")
		velocity   = flag.Int("velocity", 100, "MIDI velocity (0-127)")
		seconds    = flag.Float64("seconds", 3, "render length in seconds")
		out        = flag.String("out", "czvoice.wav", "output WAV path")
		play       = flag.Bool("play", false, "play the render live after writing it")
		demo       = flag.String("demo", "saw-sweep", "demo patch: saw-sweep|square-sweep|pulse-sweep|double-sine|resonance-saw|ring-mod")
	)
	flag.Parse()

	eng := engine.New(*sampleRate, 1)
	if err := applyDemoPatch(eng, *cartIndex, *patchIndex, *demo); err != nil {
		log.Fatal(err)
	}
	if err := eng.LoadPatch(0, *cartIndex, *patchIndex); err != nil {
		log.Fatal(err)
	}
	if err := eng.NoteOn(0, *note, *velocity); err != nil {
		log.Fatal(err)
	}

	numSamples := int(float64(*sampleRate) * *seconds)
	samples := make([]int16, numSamples)
	for i := range samples {
		samples[i] = eng.UpdateAll()
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := wav.WritePCM16Mono(f, samples, *sampleRate); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %d samples to %s\n", numSamples, *out)

	if *play {
		if err := playLive(*sampleRate, *cartIndex, *patchIndex, *note, *velocity, *demo, *seconds); err != nil {
			log.Fatal(err)
		}
	}
}

// playLive builds a fresh engine (NoteOn state does not rewind cleanly for
// replay) and streams it through ebiten's audio context for the render
// duration.
func playLive(sampleRate, cartIndex, patchIndex, note, velocity int, demo string, seconds float64) error {
	eng := engine.New(sampleRate, 1)
	if err := applyDemoPatch(eng, cartIndex, patchIndex, demo); err != nil {
		return err
	}
	if err := eng.LoadPatch(0, cartIndex, patchIndex); err != nil {
		return err
	}
	if err := eng.NoteOn(0, note, velocity); err != nil {
		return err
	}

	player, err := audioout.NewPlayer(sampleRate, eng)
	if err != nil {
		return err
	}
	player.Play()
	time.Sleep(time.Duration(seconds * float64(time.Second)))
	return player.Stop()
}

// applyDemoPatch configures the E1-E6 scenarios described in the engine's
// end-to-end test plan.
func applyDemoPatch(eng *engine.Engine, cartIndex, patchIndex int, demo string) error {
	p, err := eng.Bank().Patch(cartIndex, patchIndex)
	if err != nil {
		return err
	}

	const (
		waveSaw = iota
		waveSquare
		wavePulse
		waveDoubleSine
		waveHalfSaw
		waveResonanceSaw
	)

	p.AmpAttack, p.AmpDecay, p.AmpRelease, p.AmpHold, p.AmpSustain = 0, 70, 50, 75, 90
	p.BendAttack, p.BendDecay, p.BendRelease, p.BendHold, p.BendSustain = 0, 30, 50, 50, 70
	p.Line1BendMax, p.Line2BendMax = 99, 99
	p.OutputMix = 0 // all Line-1

	switch demo {
	case "saw-sweep":
		p.Line1Wave1, p.Line1Wave2 = waveSaw, waveSaw
		p.Line2Wave1, p.Line2Wave2 = waveSaw, waveSaw
	case "square-sweep":
		p.Line1Wave1, p.Line1Wave2 = waveSquare, waveSquare
		p.Line2Wave1, p.Line2Wave2 = waveSquare, waveSquare
	case "pulse-sweep":
		p.Line1Wave1, p.Line1Wave2 = wavePulse, wavePulse
		p.Line2Wave1, p.Line2Wave2 = wavePulse, wavePulse
	case "double-sine":
		p.Line1Wave1, p.Line1Wave2 = waveDoubleSine, waveDoubleSine
		p.Line2Wave1, p.Line2Wave2 = waveDoubleSine, waveDoubleSine
	case "resonance-saw":
		p.Line1Wave1 = waveSaw
		p.Line1Wave2 = waveResonanceSaw
		p.Line2Wave1, p.Line2Wave2 = waveSaw, waveSaw
		p.OutputMix = 0
	case "ring-mod":
		p.Line1Wave1, p.Line1Wave2 = waveSaw, waveSaw
		p.Line2Wave1, p.Line2Wave2 = waveSaw, waveSaw
		p.Line2Octave = 4 // +1 octave
		p.OutputRingMod = 1
		p.OutputMix = 50
	default:
		return fmt.Errorf("unknown -demo %q", demo)
	}

	p.Validate()
	return nil
}
