// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/ik5/audfx/audio"
)

// PortAudioDevice opens streams on the default PortAudio output device.
type PortAudioDevice struct {
	mu     sync.Mutex
	closed bool
}

// NewPortAudioDevice initializes PortAudio. Close terminates it.
func NewPortAudioDevice() (*PortAudioDevice, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: initializing portaudio: %w", audio.ErrDeviceUnavailable, err)
	}

	return &PortAudioDevice{}, nil
}

func (d *PortAudioDevice) Open(sampleRate int, callback Callback) (Stream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, fmt.Errorf("%w: device closed", audio.ErrDeviceUnavailable)
	}

	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate),
		portaudio.FramesPerBufferUnspecified, func(out []float32) { callback(out) })
	if err != nil {
		return nil, fmt.Errorf("%w: opening stream: %w", audio.ErrDeviceUnavailable, err)
	}

	return stream, nil
}

func (d *PortAudioDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	return portaudio.Terminate()
}
