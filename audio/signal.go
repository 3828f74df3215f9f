// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"slices"
	"time"
)

// Signal is an immutable mono buffer of float64 samples tagged with its sample rate.
// The zero value is not a valid signal; use NewSignal or Adopt.
type Signal struct {
	samples []float64
	rate    int
}

// NewSignal copies samples into a new Signal.
func NewSignal(samples []float64, sampleRate int) (Signal, error) {
	return Adopt(slices.Clone(samples), sampleRate)
}

// Adopt wraps samples without copying. The caller hands over ownership and
// must not modify samples afterwards.
func Adopt(samples []float64, sampleRate int) (Signal, error) {
	if sampleRate <= 0 {
		return Signal{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	return Signal{samples: samples, rate: sampleRate}, nil
}

func (s Signal) Len() int        { return len(s.samples) }
func (s Signal) SampleRate() int { return s.rate }
func (s Signal) IsEmpty() bool   { return len(s.samples) == 0 }

// At returns sample i. It panics if i is out of range, like a slice index.
func (s Signal) At(i int) float64 { return s.samples[i] }

// Samples returns a copy of the sample data.
func (s Signal) Samples() []float64 {
	return slices.Clone(s.samples)
}

// Seconds is Len / SampleRate.
func (s Signal) Seconds() float64 {
	if s.rate == 0 {
		return 0
	}

	return float64(len(s.samples)) / float64(s.rate)
}

func (s Signal) Duration() time.Duration {
	return FramesToDuration(len(s.samples), s.rate)
}

// FramesToDuration converts a sample count at rate into wall-clock time.
func FramesToDuration(frames, rate int) time.Duration {
	if rate <= 0 {
		return 0
	}

	return time.Duration(int64(frames) * int64(time.Second) / int64(rate))
}
