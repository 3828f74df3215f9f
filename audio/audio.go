// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
)

type Source interface {
    // SampleRate of the PCM stream in Hz.
    SampleRate() int
    // Channels count (e.g., 1=mono, 2=stereo).
    Channels() int
    // ReadSamples fills dst with interleaved float64 samples in [-1,1].
    // Returns number of float64 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
    ReadSamples(dst []float64) (n int, err error)

    BufSize() int

    // Close releases any resources.
    Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
    Decode(r io.Reader) (Source, error)
}
