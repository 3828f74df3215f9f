// SPDX-License-Identifier: EPL-2.0

package player

import (
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// fakeDevice records every stream it opens. Tests drive the callback with
// fakeStream.Pull instead of a hardware clock.
type fakeDevice struct {
	mu       sync.Mutex
	openErr  error
	startErr error
	streams  []*fakeStream
	closed   bool
}

func (d *fakeDevice) Open(sampleRate int, cb Callback) (Stream, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.openErr != nil {
		return nil, d.openErr
	}

	s := &fakeStream{cb: cb, rate: sampleRate, startErr: d.startErr}
	d.streams = append(d.streams, s)

	return s, nil
}

func (d *fakeDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	return nil
}

func (d *fakeDevice) last(t *testing.T) *fakeStream {
	t.Helper()

	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.streams) == 0 {
		t.Fatal("no stream opened")
	}

	return d.streams[len(d.streams)-1]
}

func (d *fakeDevice) opened() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.streams)
}

type fakeStream struct {
	mu       sync.Mutex
	cb       Callback
	rate     int
	running  bool
	closed   bool
	starts   int
	stops    int
	startErr error
}

func (s *fakeStream) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.startErr != nil {
		return s.startErr
	}
	s.running = true
	s.starts++

	return nil
}

func (s *fakeStream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.stops++

	return nil
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.closed = true

	return nil
}

func (s *fakeStream) failStarts(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.startErr = err
}

func (s *fakeStream) snapshot() (running, closed bool, starts, stops int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running, s.closed, s.starts, s.stops
}

// Pull invokes the callback for one block of frames.
func (s *fakeStream) Pull(frames int) []float32 {
	out := make([]float32, frames)
	for i := range out {
		out[i] = 99 // must be overwritten
	}
	s.cb(out)

	return out
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestPlayer() (*Player, *fakeDevice) {
	dev := &fakeDevice{}
	return New(dev, WithLogger(quietLogger())), dev
}

// waitState polls until p reaches want; the end-of-signal transition runs on
// the session watcher goroutine.
func waitState(t *testing.T, p *Player, want State) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for p.State() != want {
		if time.Now().After(deadline) {
			t.Fatalf("State() = %v, want %v", p.State(), want)
		}
		time.Sleep(time.Millisecond)
	}
}
