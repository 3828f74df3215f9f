// SPDX-License-Identifier: EPL-2.0

package dsp

// FFTFreq returns the frequency in Hz of each bin of an n point DFT sampled
// at sampleRate. Bin 0 is DC, bins 1..(n-1)/2 are positive and the rest
// negative, ending at -sampleRate/n. For even n the Nyquist bin is reported
// as negative.
func FFTFreq(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	step := sampleRate / float64(n)
	positive := (n-1)/2 + 1

	for i := range positive {
		out[i] = float64(i) * step
	}
	for i := positive; i < n; i++ {
		out[i] = float64(i-n) * step
	}

	return out
}
