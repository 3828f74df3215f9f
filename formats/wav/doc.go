// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes PCM WAV files on top of github.com/go-audio/wav.
//
// # Decoding
//
// Decoder accepts 16-bit and 32-bit integer PCM with any channel count and
// sample rate:
//
//	f, _ := os.Open("voice.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // ...
//	}
//
//	buf := make([]float64, src.BufSize())
//	n, err := src.ReadSamples(buf)
//
// Samples are interleaved and normalized by the magnitude of the most
// negative value of the bit depth, so 16-bit data is divided by 32768.
// Readers that cannot seek are buffered in memory first.
//
// # Encoding
//
// WriteWAV16 writes mono 16-bit PCM. EncodeSignal quantizes an audio.Signal
// with x*32767, rounding and clipping to the int16 range:
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.EncodeSignal(f, sig)
//
// Both need an io.WriteSeeker because the chunk sizes are patched on close.
//
// # Errors
//
//   - ErrNotWavFile: the input has no usable RIFF/WAVE header (an audio.ErrIOFailure)
//   - ErrNotPCM: the format tag is not integer PCM (an audio.ErrUnsupportedFormat)
//   - ErrUnsupportedBitDepth: PCM that is neither 16 nor 32 bit (an audio.ErrUnsupportedFormat)
package wav
