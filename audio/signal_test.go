// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
	"time"
)

func TestNewSignal_CopiesInput(t *testing.T) {
	t.Parallel()

	in := []float64{0.1, 0.2, 0.3}
	sig, err := NewSignal(in, 8000)
	if err != nil {
		t.Fatalf("NewSignal() error = %v", err)
	}

	in[0] = 9
	if sig.At(0) != 0.1 {
		t.Errorf("At(0) = %v after mutating input, want 0.1", sig.At(0))
	}

	out := sig.Samples()
	out[1] = 9
	if sig.At(1) != 0.2 {
		t.Errorf("At(1) = %v after mutating Samples(), want 0.2", sig.At(1))
	}
}

func TestNewSignal_InvalidRate(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{0, -1, -44100} {
		_, err := NewSignal([]float64{0}, rate)
		if !errors.Is(err, ErrInvalidSampleRate) {
			t.Errorf("NewSignal(rate=%d) error = %v, want ErrInvalidSampleRate", rate, err)
		}
	}
}

func TestSignal_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		frames  int
		rate    int
		seconds float64
		dur     time.Duration
	}{
		{"one second", 44100, 44100, 1, time.Second},
		{"half second", 4000, 8000, 0.5, 500 * time.Millisecond},
		{"empty", 0, 8000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sig, err := Adopt(make([]float64, tt.frames), tt.rate)
			if err != nil {
				t.Fatalf("Adopt() error = %v", err)
			}
			if sig.Len() != tt.frames {
				t.Errorf("Len() = %d, want %d", sig.Len(), tt.frames)
			}
			if sig.Seconds() != tt.seconds {
				t.Errorf("Seconds() = %v, want %v", sig.Seconds(), tt.seconds)
			}
			if sig.Duration() != tt.dur {
				t.Errorf("Duration() = %v, want %v", sig.Duration(), tt.dur)
			}
			if sig.IsEmpty() != (tt.frames == 0) {
				t.Errorf("IsEmpty() = %v", sig.IsEmpty())
			}
		})
	}
}

func TestSignal_ZeroValue(t *testing.T) {
	t.Parallel()

	var sig Signal
	if sig.Seconds() != 0 || sig.Duration() != 0 || !sig.IsEmpty() {
		t.Errorf("zero Signal reports non-zero length: %v %v", sig.Seconds(), sig.Duration())
	}
}

func TestFramesToDuration(t *testing.T) {
	t.Parallel()

	if got := FramesToDuration(22050, 44100); got != 500*time.Millisecond {
		t.Errorf("FramesToDuration(22050, 44100) = %v, want 500ms", got)
	}
	if got := FramesToDuration(100, 0); got != 0 {
		t.Errorf("FramesToDuration(100, 0) = %v, want 0", got)
	}
}
