// SPDX-License-Identifier: EPL-2.0

// Package dsp implements the frequency-domain transforms applied to a signal.
//
// Every transform is a pure function: it reads the input audio.Signal and
// returns a new one with the same length and sample rate. Nothing is cached
// between calls, so transforms can run concurrently on any goroutine.
//
// # Transforms
//
//   - Denoise: low-pass filter that zeroes every bin above a cutoff frequency
//   - Compress: spectral truncation keeping a percentage of the coefficients
//   - Synthesize: a pure 0.5 amplitude sine tone
//
// Compress has two truncation policies. HeadTruncate keeps the first k
// coefficients and is what Compress uses. EdgePreserve keeps the first and
// last k coefficients, which is the fixed 50% variant used by
// CompressInteractive.
//
// # Analysis
//
// FFTFreq maps bin indices to frequencies in the usual order (DC, positive
// frequencies, then negative ones). Spectrum returns the one-sided amplitude
// spectrum of a signal and Energy its total energy.
//
// The transforms use github.com/mjibson/go-dsp/fft, which handles any
// length. The analysis helpers use gonum.
package dsp
