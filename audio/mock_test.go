package audio

import (
	"io"
	"math"
)

// mockSource generates interleaved frames from a waveform function.
type mockSource struct {
	sampleRate   int
	channels     int
	totalFrames  int
	generated    int
	waveform     func(frame int, channel int) float64
}

func newMockSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) float64) *mockSource {
	return &mockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

func newSilentSource(sampleRate, channels, totalFrames int) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(int, int) float64 { return 0 })
}

func newConstantSource(sampleRate, channels, totalFrames int, value float64) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(int, int) float64 { return value })
}

func newSineSource(sampleRate, channels, totalFrames int, frequency float64) *mockSource {
	return newMockSource(sampleRate, channels, totalFrames, func(frame int, _ int) float64 {
		return math.Sin(2 * math.Pi * frequency * float64(frame) / float64(sampleRate))
	})
}

func (m *mockSource) SampleRate() int { return m.sampleRate }
func (m *mockSource) Channels() int   { return m.channels }
func (m *mockSource) BufSize() int    { return 4096 }
func (m *mockSource) Close() error    { return nil }
func (m *mockSource) Reset()          { m.generated = 0 }

func (m *mockSource) ReadSamples(dst []float64) (int, error) {
	if m.generated >= m.totalFrames {
		return 0, io.EOF
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.generated)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.generated+f, ch)
		}
	}
	m.generated += frames

	if m.generated >= m.totalFrames {
		return frames * m.channels, io.EOF
	}

	return frames * m.channels, nil
}
