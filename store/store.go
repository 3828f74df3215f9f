// SPDX-License-Identifier: EPL-2.0

// Package store holds the signal an interactive session is working on.
//
// A Store starts empty. Load replaces the current signal only when the file
// decodes successfully; a failed load leaves the previous signal in place.
package store

import (
	"sync"

	"github.com/ik5/audfx"
	"github.com/ik5/audfx/audio"
	"github.com/sirupsen/logrus"
)

// Store owns at most one current Signal. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	current audio.Optional
	log     logrus.FieldLogger
}

type Option func(*Store)

// WithLogger routes store logs to l instead of the logrus standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		current: audio.None(),
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load decodes the WAV file at path into a mono signal and makes it current.
func (s *Store) Load(path string) (audio.Signal, error) {
	sig, err := audfx.LoadFile(path)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"function": "Store.Load",
			"path":     path,
			"error":    err,
		}).Error("Failed to load signal")
		return audio.Signal{}, err
	}

	s.mu.Lock()
	s.current = audio.Some(sig)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"function":    "Store.Load",
		"path":        path,
		"samples":     sig.Len(),
		"sample_rate": sig.SampleRate(),
		"duration":    sig.Duration(),
	}).Info("Signal loaded")

	return sig, nil
}

// Save writes sig to path as mono 16-bit PCM. The current signal is not changed.
func (s *Store) Save(path string, sig audio.Signal) error {
	if err := audfx.SaveFile(path, sig); err != nil {
		s.log.WithFields(logrus.Fields{
			"function": "Store.Save",
			"path":     path,
			"error":    err,
		}).Error("Failed to save signal")
		return err
	}

	s.log.WithFields(logrus.Fields{
		"function": "Store.Save",
		"path":     path,
		"samples":  sig.Len(),
	}).Info("Signal saved")

	return nil
}

// Current returns the loaded signal or audio.ErrNoSignalLoaded.
func (s *Store) Current() (audio.Signal, error) {
	return s.Optional().Value()
}

func (s *Store) Optional() audio.Optional {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

// Set makes sig current without touching the filesystem, e.g. after synthesis.
func (s *Store) Set(sig audio.Signal) {
	s.mu.Lock()
	s.current = audio.Some(sig)
	s.mu.Unlock()
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.current = audio.None()
	s.mu.Unlock()
}
