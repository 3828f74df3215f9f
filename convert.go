package audfx

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/formats/wav"
)

// maxInitialSamples bounds the up-front reservation of ReadMono.
const maxInitialSamples = 1 << 20

// ReadMono drains src through a MonoMixer and collects the frames into a Signal
// at the source's sample rate. The source is not closed.
func ReadMono(src audio.Source) (audio.Signal, error) {
	mono := audio.NewMonoMixer(src)

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}

	// Start with about two seconds and let append grow from there. The rate
	// comes from the file header, so the reservation is bounded.
	samples := make([]float64, 0, min(max(src.SampleRate(), 0), maxInitialSamples/2)*2)
	buf := make([]float64, bufSize)

	for {
		n, err := mono.ReadSamples(buf)
		samples = append(samples, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return audio.Signal{}, fmt.Errorf("reading samples: %w", err)
		}
	}

	return audio.Adopt(samples, src.SampleRate())
}

// DecodeMono decodes r with dec and folds the result to mono.
func DecodeMono(dec audio.Decoder, r io.Reader) (audio.Signal, error) {
	src, err := dec.Decode(r)
	if err != nil {
		return audio.Signal{}, err
	}
	defer src.Close()

	return ReadMono(src)
}

// LoadFile reads a PCM WAV file into a normalized mono Signal.
func LoadFile(path string) (audio.Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Signal{}, fmt.Errorf("%w: %w", audio.ErrIOFailure, err)
	}
	defer f.Close()

	sig, err := DecodeMono(wav.Decoder{}, f)
	if err != nil {
		return audio.Signal{}, fmt.Errorf("loading %s: %w", path, err)
	}

	return sig, nil
}

// SaveFile writes sig to path as mono 16-bit PCM.
func SaveFile(path string, sig audio.Signal) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIOFailure, err)
	}

	if err := wav.EncodeSignal(f, sig); err != nil {
		f.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIOFailure, err)
	}

	return nil
}
