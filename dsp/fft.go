// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"github.com/mjibson/go-dsp/fft"
)

// forward returns the full complex DFT of x.
func forward(x []float64) []complex128 {
	return fft.FFTReal(x)
}

// inverseReal runs the inverse DFT and keeps the real part. Any imaginary
// residue left by an asymmetric edit of the spectrum is discarded.
func inverseReal(coeffs []complex128) []float64 {
	y := fft.IFFT(coeffs)

	out := make([]float64, len(y))
	for i, c := range y {
		out[i] = real(c)
	}

	return out
}
