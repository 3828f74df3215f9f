// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core sample types shared by the rest of audfx.
//
// This package contains:
//   - Source interface for streaming decoded audio
//   - MonoMixer for collapsing channels into mono
//   - Signal, an immutable mono buffer tagged with its sample rate
//   - Optional, an explicit "no signal / one signal" value
//   - Sentinel errors used across the module
//
// # Source Interface
//
// Decoders produce a Source of interleaved float64 samples:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float64) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// # Channel Mixing
//
// The MonoMixer converts multi-channel audio to mono by averaging every frame:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float64, 4096)
//	n, err := mono.ReadSamples(buf)
//
// # Signals
//
// A Signal never changes after construction. NewSignal copies its input,
// Samples returns a copy, and transforms always build a new Signal:
//
//	sig, err := audio.NewSignal(samples, 44100)
//	fmt.Println(sig.Len(), sig.Duration())
//
// # Optional Signals
//
// Code that may or may not hold a signal uses Optional instead of a nil
// pointer or an empty sentinel:
//
//	current := audio.None()
//	current = audio.Some(sig)
//	filtered := current.Map(func(s audio.Signal) audio.Signal { return s })
//
// # Errors
//
// ErrUnsupportedFormat, ErrIOFailure, ErrDeviceUnavailable and
// ErrNoSignalLoaded classify every failure in the module. Packages wrap them,
// so callers match with errors.Is.
package audio
