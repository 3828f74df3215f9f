// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/utils"
)

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
// The encoder seeks back to patch chunk sizes, hence io.WriteSeeker.
func WriteWAV16(w io.WriteSeeker, sampleRate int, samples []int16) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, sampleRate)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(w, sampleRate, 16, 1, formatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIOFailure, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIOFailure, err)
	}

	return nil
}

// EncodeSignal quantizes sig to 16-bit PCM (x*32767, clipped) and writes it
// as a mono WAV at the signal's sample rate.
func EncodeSignal(w io.WriteSeeker, sig audio.Signal) error {
	pcm := make([]int16, sig.Len())
	for i := range pcm {
		pcm[i] = utils.Float64ToInt16(sig.At(i))
	}

	return WriteWAV16(w, sig.SampleRate(), pcm)
}
