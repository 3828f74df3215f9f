// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math/cmplx"
	"sort"

	"github.com/ik5/audfx/audio"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Bin is one line of a one-sided amplitude spectrum.
type Bin struct {
	Frequency float64 // Hz
	Magnitude float64 // amplitude of the sinusoid at Frequency
}

// Spectrum returns the n/2+1 bins of the one-sided amplitude spectrum of sig,
// so a sine of amplitude A that falls exactly on a bin reports Magnitude A.
func Spectrum(sig audio.Signal) []Bin {
	n := sig.Len()
	if n == 0 {
		return nil
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, sig.Samples())
	rate := float64(sig.SampleRate())

	bins := make([]Bin, len(coeffs))
	for i, c := range coeffs {
		mag := cmplx.Abs(c) / float64(n)
		// DC and Nyquist have no mirrored negative-frequency twin.
		if i != 0 && !(n%2 == 0 && i == n/2) {
			mag *= 2
		}
		bins[i] = Bin{
			Frequency: fft.Freq(i) * rate,
			Magnitude: mag,
		}
	}

	return bins
}

// Peaks returns the top bins of spec by magnitude, strongest first.
func Peaks(spec []Bin, top int) []Bin {
	sorted := make([]Bin, len(spec))
	copy(sorted, spec)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Magnitude > sorted[j].Magnitude
	})

	if top >= 0 && top < len(sorted) {
		sorted = sorted[:top]
	}

	return sorted
}

// Energy is the sum of squared samples, equal to the spectral energy
// sum(|X_k|^2)/n by Parseval's theorem.
func Energy(sig audio.Signal) float64 {
	x := sig.Samples()
	return floats.Dot(x, x)
}
