// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math"

	"github.com/ik5/audfx/audio"
)

// DefaultCutoffHz is the low-pass cutoff used when none is given.
const DefaultCutoffHz = 5000.0

// Denoise removes every spectral component whose absolute frequency exceeds
// cutoffHz. The mask is symmetric in frequency so the result is real up to
// rounding, and a second pass with the same cutoff removes nothing new.
func Denoise(sig audio.Signal, cutoffHz float64) audio.Signal {
	if sig.IsEmpty() {
		return sig
	}

	coeffs := forward(sig.Samples())
	freqs := FFTFreq(len(coeffs), float64(sig.SampleRate()))

	for i, f := range freqs {
		if math.Abs(f) > cutoffHz {
			coeffs[i] = 0
		}
	}

	out, _ := audio.Adopt(inverseReal(coeffs), sig.SampleRate())
	return out
}
