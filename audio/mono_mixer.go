package audio

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// maxScratchSamples bounds one read from the source, so a header claiming
// thousands of channels cannot inflate the scratch buffer.
const maxScratchSamples = 1 << 16

// MonoMixer folds an interleaved Source into one channel by averaging the
// channels of every frame. A frame split across two reads of the source is
// carried into the next read; an incomplete frame at the end of the stream
// is dropped.
type MonoMixer struct {
	src      Source
	channels int
	buf      []float64
	carry    int // samples of an incomplete frame at the head of buf
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:      src,
		channels: max(src.Channels(), 1),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("closing source: %w", err)
	}

	return nil
}

// ReadSamples fills dst with mono frames and returns the frame count, which
// may be less than len(dst) for wide sources.
func (m *MonoMixer) ReadSamples(dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if m.channels == 1 {
		return m.src.ReadSamples(dst)
	}

	frames := min(len(dst), max(maxScratchSamples/m.channels, 1))
	want := frames * m.channels
	if cap(m.buf) < want {
		grown := make([]float64, want)
		copy(grown, m.buf[:m.carry])
		m.buf = grown
	}
	m.buf = m.buf[:want]

	n, err := m.src.ReadSamples(m.buf[m.carry:])
	total := m.carry + n
	frames = total / m.channels

	scale := 1 / float64(m.channels)
	for f := range frames {
		dst[f] = floats.Sum(m.buf[f*m.channels:(f+1)*m.channels]) * scale
	}

	if err != nil {
		m.carry = 0
	} else {
		m.carry = copy(m.buf, m.buf[frames*m.channels:total])
	}

	return frames, err
}
