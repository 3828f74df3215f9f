package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audfx/audio"
)

const formatPCM = 1

// maxSampleRate is the highest header rate accepted; anything above it is a
// corrupt header rather than audio.
const maxSampleRate = 1 << 22

// fullScale maps a PCM bit depth to the magnitude of its most negative value.
var fullScale = map[int]float64{
	16: 32768.0,
	32: 2147483648.0,
}

// pcmReader is an interface for wav.Decoder to allow testing
type pcmReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio wav.Decoder to implement audio.Source
type source struct {
	dec        pcmReader
	sampleRate int
	channels   int
	scale      float64
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w: %w", audio.ErrIOFailure, err)
		}
		return 0, io.EOF
	}

	for i := range n {
		dst[i] = float64(s.intBuf.Data[i]) / s.scale
	}

	// Report EOF on the next call so callers never lose the tail.
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w: %w", audio.ErrIOFailure, err)
	}
	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w: %w", audio.ErrIOFailure, err)
		}
		rs = bytes.NewReader(data)
	}

	dec := wav.NewDecoder(rs)
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, ErrNotWavFile
	}

	if dec.SampleRate > maxSampleRate {
		return nil, fmt.Errorf("%w: sample rate %d Hz", ErrNotWavFile, dec.SampleRate)
	}

	tag := dec.WavAudioFormat
	if tag == formatExtensible {
		sub, err := subFormatTag(rs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotWavFile, err)
		}
		tag = sub
	}

	if tag != formatPCM {
		return nil, fmt.Errorf("%w: format tag %d", ErrNotPCM, tag)
	}

	scale, ok := fullScale[int(dec.BitDepth)]
	if !ok {
		return nil, fmt.Errorf("%w: %d-bit", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		scale:      scale,
	}, nil
}
