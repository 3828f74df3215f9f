// SPDX-License-Identifier: EPL-2.0

package player

// Callback fills out with the next block of mono samples. It runs on the
// device's own thread and must not block.
type Callback func(out []float32)

// Device opens single-channel float32 output streams.
type Device interface {
	Open(sampleRate int, callback Callback) (Stream, error)
}

// Stream is an opened output stream. Stop suspends it and Start resumes it.
type Stream interface {
	Start() error
	Stop() error
	Close() error
}
