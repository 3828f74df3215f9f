// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"

	"github.com/ik5/audfx/audio"
)

const (
	DefaultToneDuration = 2.0
	DefaultToneRate     = 44100

	toneAmplitude = 0.5
)

// Synthesize renders floor(durationS*sampleRate) samples of
// 0.5*sin(2*pi*frequencyHz*t), with t evenly spaced over [0, durationS).
func Synthesize(frequencyHz, durationS float64, sampleRate int) (audio.Signal, error) {
	if sampleRate <= 0 {
		return audio.Signal{}, fmt.Errorf("%w: sample rate %d", ErrInvalidParameter, sampleRate)
	}
	if math.IsNaN(durationS) || math.IsInf(durationS, 0) || durationS < 0 {
		return audio.Signal{}, fmt.Errorf("%w: duration %v", ErrInvalidParameter, durationS)
	}
	if math.IsNaN(frequencyHz) || math.IsInf(frequencyHz, 0) {
		return audio.Signal{}, fmt.Errorf("%w: frequency %v", ErrInvalidParameter, frequencyHz)
	}

	count := int(math.Floor(durationS * float64(sampleRate)))
	samples := make([]float64, count)
	step := 0.0
	if count > 0 {
		step = durationS / float64(count)
	}

	w := 2 * math.Pi * frequencyHz
	for i := range samples {
		samples[i] = toneAmplitude * math.Sin(w*float64(i)*step)
	}

	return audio.Adopt(samples, sampleRate)
}
