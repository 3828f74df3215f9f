// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported sample format")
	ErrIOFailure         = errors.New("audio I/O failure")
	ErrDeviceUnavailable = errors.New("audio output device unavailable")
	ErrNoSignalLoaded    = errors.New("no signal loaded")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
