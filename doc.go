// SPDX-License-Identifier: EPL-2.0

// Package audfx loads, transforms and saves mono audio signals.
//
// The root package ties the streaming pieces together: a format decoder
// produces an audio.Source, an audio.MonoMixer folds it to one channel and
// ReadMono collects the result into an audio.Signal.
//
//	sig, err := audfx.LoadFile("voice.wav")
//	if err != nil {
//	    // errors.Is(err, audio.ErrUnsupportedFormat) or audio.ErrIOFailure
//	}
//
//	clean := dsp.Denoise(sig, dsp.DefaultCutoffHz)
//	err = audfx.SaveFile("clean.wav", clean)
//
// Only uncompressed PCM WAV is read (16 and 32 bit, plain or
// WAVE_FORMAT_EXTENSIBLE) and written (16 bit).
//
// # Subpackages
//
//   - audio: Source, MonoMixer, Signal, Optional and the shared error values
//   - formats/wav: WAV decoding and encoding
//   - dsp: FFT based denoise, compression, synthesis and spectrum analysis
//   - player: streaming playback with seek, pause and progress
//   - store: the current-signal holder used by interactive front ends
package audfx
