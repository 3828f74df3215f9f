// SPDX-License-Identifier: EPL-2.0

// Package player streams a mono audio.Signal to an output device.
//
// A Player is a state machine with four states:
//
//	Idle     no signal assigned yet
//	Stopped  signal assigned, cursor at 0 (or at the end after natural completion), no stream
//	Playing  stream running, cursor advancing
//	Paused   stream suspended but kept, cursor frozen
//
// Control methods (Play, Stop, Pause, Resume, Seek) are serialized by a
// mutex. The device callback never takes that mutex: it reads the track,
// the playing flag and the cursor through atomics and reports the end of
// the signal with a non-blocking channel send. Streams are opened and
// closed only on control goroutines.
//
// Typical use from a front end that polls every 100 ms:
//
//	dev, err := player.NewPortAudioDevice()
//	if err != nil {
//	    // ...
//	}
//	p := player.New(dev)
//	defer p.Close()
//
//	if err := p.Play(sig); err != nil {
//	    // errors.Is(err, audio.ErrDeviceUnavailable)
//	}
//	for p.State() == player.Playing {
//	    fmt.Printf("%5.1f%%\n", p.Progress())
//	    time.Sleep(100 * time.Millisecond)
//	}
package player
