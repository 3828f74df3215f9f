// SPDX-License-Identifier: EPL-2.0

package store

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/internal/audiotest"
	"github.com/sirupsen/logrus"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func toneFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	samples := audiotest.SineSamples(44100, 44100, 1000, 0.5)

	ints := make([]int, len(samples))
	for i, v := range samples {
		ints[i] = int(math.Round(v * 32767))
	}
	if err := audiotest.WritePCM(path, 44100, 1, 16, ints); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}

	return path
}

func TestStore_EmptyAtStart(t *testing.T) {
	t.Parallel()

	s := New(WithLogger(quietLogger()))

	if _, err := s.Current(); !errors.Is(err, audio.ErrNoSignalLoaded) {
		t.Errorf("Current() error = %v, want ErrNoSignalLoaded", err)
	}
	if s.Optional().IsSome() {
		t.Error("Optional().IsSome() = true on a new store")
	}
}

func TestStore_LoadToneScenario(t *testing.T) {
	t.Parallel()

	s := New(WithLogger(quietLogger()))
	path := toneFile(t, "tone.wav")

	sig, err := s.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if sig.Len() != 44100 || sig.SampleRate() != 44100 {
		t.Fatalf("Load() = %d samples at %d Hz, want 44100 at 44100 Hz", sig.Len(), sig.SampleRate())
	}
	if sig.Seconds() != 1 {
		t.Errorf("Seconds() = %v, want 1", sig.Seconds())
	}

	peak := 0.0
	for i := range sig.Len() {
		peak = math.Max(peak, math.Abs(sig.At(i)))
	}
	if math.Abs(peak-0.5) > 0.001 {
		t.Errorf("peak = %v, want about 0.5", peak)
	}

	cur, err := s.Current()
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if cur.Len() != sig.Len() {
		t.Errorf("Current().Len() = %d, want %d", cur.Len(), sig.Len())
	}
}

func TestStore_FailedLoadKeepsCurrent(t *testing.T) {
	t.Parallel()

	s := New(WithLogger(quietLogger()))
	if _, err := s.Load(toneFile(t, "good.wav")); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	float := filepath.Join(dir, "float.wav")
	if err := os.WriteFile(float, audiotest.RawWAV(3, 44100, 1, 32, make([]byte, 16)), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"unsupported format", float, audio.ErrUnsupportedFormat},
		{"missing file", filepath.Join(dir, "nope.wav"), audio.ErrIOFailure},
	}

	for _, tt := range tests {
		if _, err := s.Load(tt.path); !errors.Is(err, tt.want) {
			t.Errorf("%s: Load() error = %v, want %v", tt.name, err, tt.want)
		}

		cur, err := s.Current()
		if err != nil || cur.Len() != 44100 {
			t.Errorf("%s: current signal changed after failed load (len=%d, err=%v)", tt.name, cur.Len(), err)
		}
	}
}

func TestStore_SaveThenLoad(t *testing.T) {
	t.Parallel()

	s := New(WithLogger(quietLogger()))
	orig, _ := audio.NewSignal([]float64{0, 0.5, -0.5, 0.999, -1}, 8000)
	path := filepath.Join(t.TempDir(), "out.wav")

	if err := s.Save(path, orig); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if s.Optional().IsSome() {
		t.Error("Save() must not change the current signal")
	}

	got, err := s.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for i := range orig.Len() {
		if d := math.Abs(got.At(i) - orig.At(i)); d > 2.0/32767 {
			t.Errorf("sample %d differs by %v", i, d)
		}
	}
}

func TestStore_SaveFailure(t *testing.T) {
	t.Parallel()

	s := New(WithLogger(quietLogger()))
	sig, _ := audio.NewSignal([]float64{0}, 8000)

	err := s.Save(filepath.Join(t.TempDir(), "missing", "dir", "x.wav"), sig)
	if !errors.Is(err, audio.ErrIOFailure) {
		t.Errorf("Save() error = %v, want ErrIOFailure", err)
	}
}

func TestStore_SetAndClear(t *testing.T) {
	t.Parallel()

	s := New(WithLogger(quietLogger()))
	sig, _ := audio.NewSignal([]float64{1, 2, 3}, 100)

	s.Set(sig)
	if cur, err := s.Current(); err != nil || cur.Len() != 3 {
		t.Fatalf("Current() = (%d, %v), want (3, nil)", cur.Len(), err)
	}

	s.Clear()
	if _, err := s.Current(); !errors.Is(err, audio.ErrNoSignalLoaded) {
		t.Errorf("Current() after Clear() error = %v, want ErrNoSignalLoaded", err)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := New(WithLogger(quietLogger()))
	a, _ := audio.NewSignal(make([]float64, 10), 100)
	b, _ := audio.NewSignal(make([]float64, 20), 100)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if i%2 == 0 {
					s.Set(a)
				} else {
					s.Set(b)
				}
				if cur, err := s.Current(); err == nil && cur.Len() != 10 && cur.Len() != 20 {
					t.Errorf("observed partial signal of length %d", cur.Len())
				}
			}
		}()
	}
	wg.Wait()
}
