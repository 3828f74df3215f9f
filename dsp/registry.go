// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ik5/audfx/audio"
)

// Transform maps a signal to a new one.
type Transform func(audio.Signal) audio.Signal

// Params configures the transforms installed by NewDefaultRegistry.
type Params struct {
	CutoffHz    float64
	KeepPercent float64
}

func DefaultParams() Params {
	return Params{
		CutoffHz:    DefaultCutoffHz,
		KeepPercent: DefaultKeepPercent,
	}
}

// Registry of transforms by name (e.g., "denoise", "compress").
type Registry struct {
	transforms map[string]Transform

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		transforms: make(map[string]Transform),
		mtx:        &sync.Mutex{},
	}
}

// DefaultRegistry holds denoise, compress and compress-edge with default parameters.
func DefaultRegistry() *Registry {
	return NewDefaultRegistry(DefaultParams())
}

func NewDefaultRegistry(p Params) *Registry {
	r := NewRegistry()
	r.Register("denoise", func(s audio.Signal) audio.Signal {
		return Denoise(s, p.CutoffHz)
	})
	r.Register("compress", func(s audio.Signal) audio.Signal {
		return Compress(s, p.KeepPercent)
	})
	r.Register("compress-edge", CompressInteractive)

	return r
}

func (r *Registry) Register(name string, t Transform) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.transforms[name] = t
}

func (r *Registry) Get(name string) (Transform, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	t, ok := r.transforms[name]
	return t, ok
}

// Apply runs the named transform over a present signal. None passes through.
func (r *Registry) Apply(name string, sig audio.Optional) (audio.Optional, error) {
	t, ok := r.Get(name)
	if !ok {
		return audio.None(), fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}

	return sig.Map(t), nil
}

// Names lists the registered transforms in sorted order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, 0, len(r.transforms))
	for name := range r.transforms {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
