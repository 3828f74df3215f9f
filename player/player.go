// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ik5/audfx/audio"
	"github.com/sirupsen/logrus"
)

var ErrClosed = errors.New("player closed")

// session is one opened stream's lifetime, from Play until Stop or the
// natural end of the signal.
type session struct {
	// ended receives at most one value from the callback when the signal runs out.
	ended chan struct{}
	// done is closed by the control side once the session is over.
	done chan struct{}
}

func newSession() *session {
	return &session{
		ended: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Player drives a Device from an in-memory Signal.
type Player struct {
	mu      sync.Mutex
	dev     Device
	log     logrus.FieldLogger
	stream  Stream   // guarded by mu
	session *session // guarded by mu
	closed  bool     // guarded by mu

	// Shared with the device callback.
	track   atomic.Pointer[audio.Signal]
	cursor  atomic.Int64
	playing atomic.Bool
	state   atomic.Int32
}

type Option func(*Player)

// WithLogger routes player logs to l instead of the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Player) {
		if l != nil {
			p.log = l
		}
	}
}

func New(dev Device, opts ...Option) *Player {
	p := &Player{
		dev: dev,
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Play stops any current playback, rewinds to the start of sig and streams
// it. If the device cannot be opened or started the player is left Stopped
// and the error wraps audio.ErrDeviceUnavailable.
func (p *Player) Play(sig audio.Signal) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	p.stopLocked()

	p.track.Store(&sig)
	p.cursor.Store(0)
	p.state.Store(int32(Stopped))

	s := newSession()
	stream, err := p.dev.Open(sig.SampleRate(), func(out []float32) { p.fill(out, s) })
	if err != nil {
		p.log.WithFields(logrus.Fields{
			"function":    "Player.Play",
			"sample_rate": sig.SampleRate(),
			"error":       err,
		}).Error("Failed to open output stream")
		return fmt.Errorf("%w: %w", audio.ErrDeviceUnavailable, err)
	}

	p.playing.Store(true)
	if err := stream.Start(); err != nil {
		p.playing.Store(false)
		if cerr := stream.Close(); cerr != nil {
			p.log.WithError(cerr).Warn("Failed to close stream after start failure")
		}
		p.log.WithFields(logrus.Fields{
			"function": "Player.Play",
			"error":    err,
		}).Error("Failed to start output stream")
		return fmt.Errorf("%w: %w", audio.ErrDeviceUnavailable, err)
	}

	p.stream = stream
	p.session = s
	p.state.Store(int32(Playing))
	go p.watch(s)

	p.log.WithFields(logrus.Fields{
		"function":    "Player.Play",
		"samples":     sig.Len(),
		"sample_rate": sig.SampleRate(),
		"duration":    sig.Duration(),
	}).Info("Playback started")

	return nil
}

// Stop releases the stream and rewinds to 0. It never fails and does
// nothing while Idle.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.State() == Idle {
		return
	}

	wasActive := p.stream != nil
	p.playing.Store(false)
	p.releaseLocked()
	p.cursor.Store(0)
	p.state.Store(int32(Stopped))

	if wasActive {
		p.log.WithField("function", "Player.Stop").Debug("Playback stopped")
	}
}

// releaseLocked stops and closes the stream and ends the session.
func (p *Player) releaseLocked() {
	if p.stream != nil {
		if err := p.stream.Stop(); err != nil {
			p.log.WithError(err).Warn("Failed to stop output stream")
		}
		if err := p.stream.Close(); err != nil {
			p.log.WithError(err).Warn("Failed to close output stream")
		}
		p.stream = nil
	}

	if p.session != nil {
		close(p.session.done)
		p.session = nil
	}
}

// Pause suspends a Playing stream without releasing it.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.State() != Playing {
		return
	}

	p.playing.Store(false)
	if err := p.stream.Stop(); err != nil {
		p.log.WithError(err).Warn("Failed to suspend output stream")
	}
	p.state.Store(int32(Paused))

	p.log.WithFields(logrus.Fields{
		"function": "Player.Pause",
		"cursor":   p.cursor.Load(),
	}).Debug("Playback paused")
}

// Resume restarts a Paused stream. Without a suspended stream it does
// nothing. If the restart fails the player stops and the error wraps
// audio.ErrDeviceUnavailable.
func (p *Player) Resume() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.State() != Paused || p.stream == nil {
		return nil
	}

	p.playing.Store(true)
	if err := p.stream.Start(); err != nil {
		p.log.WithFields(logrus.Fields{
			"function": "Player.Resume",
			"error":    err,
		}).Error("Failed to restart output stream")
		p.stopLocked()
		return fmt.Errorf("%w: %w", audio.ErrDeviceUnavailable, err)
	}
	p.state.Store(int32(Playing))

	p.log.WithFields(logrus.Fields{
		"function": "Player.Resume",
		"cursor":   p.cursor.Load(),
	}).Debug("Playback resumed")

	return nil
}

// Seek moves the cursor to round(fraction*len). fraction is clamped to
// [0, 1] and NaN seeks to the start. The state is not changed.
func (p *Player) Seek(fraction float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case math.IsNaN(fraction) || fraction < 0:
		fraction = 0
	case fraction > 1:
		fraction = 1
	}

	pos := int64(math.Round(fraction * float64(p.length())))
	p.cursor.Store(pos)

	p.log.WithFields(logrus.Fields{
		"function": "Player.Seek",
		"fraction": fraction,
		"cursor":   pos,
	}).Debug("Cursor moved")
}

// Progress is the cursor as a percentage of the signal length, or 0 with no
// (or an empty) signal. It may exceed 100 by up to one block at the end.
func (p *Player) Progress() float64 {
	n := p.length()
	if n == 0 {
		return 0
	}

	return float64(p.cursor.Load()) / float64(n) * 100
}

func (p *Player) State() State { return State(p.state.Load()) }

// Cursor is the current sample index.
func (p *Player) Cursor() int64 { return p.cursor.Load() }

// Position is the cursor as elapsed time, for time labels.
func (p *Player) Position() time.Duration {
	t := p.track.Load()
	if t == nil {
		return 0
	}

	return audio.FramesToDuration(int(p.cursor.Load()), t.SampleRate())
}

// Duration of the assigned signal, 0 when Idle.
func (p *Player) Duration() time.Duration {
	t := p.track.Load()
	if t == nil {
		return 0
	}

	return t.Duration()
}

// Done returns a channel closed when the current session ends, by reaching
// the end of the signal or through Stop, Play or Close. Without an active
// session the channel is already closed.
func (p *Player) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}

	return p.session.done
}

// Close stops playback and closes the device if it implements io.Closer.
// Further Play calls fail with ErrClosed.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}

	p.stopLocked()
	p.closed = true

	if c, ok := p.dev.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("closing device: %w", err)
		}
	}

	return nil
}

func (p *Player) length() int {
	t := p.track.Load()
	if t == nil {
		return 0
	}

	return t.Len()
}

// watch releases the stream once the callback reports the end of the
// signal. The cursor is left where the callback put it.
func (p *Player) watch(s *session) {
	select {
	case <-s.ended:
	case <-s.done:
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session != s {
		return
	}

	// A Pause and Resume between the end of the signal and here re-armed it.
	p.playing.Store(false)
	p.releaseLocked()
	p.state.Store(int32(Stopped))

	p.log.WithFields(logrus.Fields{
		"function": "Player.watch",
		"cursor":   p.cursor.Load(),
	}).Info("Playback finished")
}

// fill is the real-time callback. It must not block, allocate or log.
func (p *Player) fill(out []float32, s *session) {
	t := p.track.Load()
	if t == nil || !p.playing.Load() {
		clear(out)
		return
	}

	n := int64(t.Len())
	cur := p.cursor.Load()
	if cur < 0 || cur >= n {
		clear(out)
		p.finish(s)
		return
	}

	frames := int64(len(out))
	avail := min(frames, n-cur)
	for i := range avail {
		out[i] = float32(t.At(int(cur + i)))
	}
	clear(out[avail:])

	// A Seek that landed since the load wins over this advance.
	p.cursor.CompareAndSwap(cur, cur+frames)

	if avail < frames {
		p.finish(s)
	}
}

// finish clears the playing flag and, if this call did so, notifies the
// session watcher.
func (p *Player) finish(s *session) {
	if !p.playing.CompareAndSwap(true, false) {
		return
	}

	select {
	case s.ended <- struct{}{}:
	default:
	}
}
