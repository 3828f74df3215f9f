// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"fmt"
	"math"
	"strings"

	"github.com/ik5/audfx/audio"
)

const (
	// DefaultKeepPercent is the share of coefficients Compress retains by default.
	DefaultKeepPercent = 50.0

	// InteractiveKeepPercent is the fixed share used by CompressInteractive.
	InteractiveKeepPercent = 50.0
)

// Truncation selects which spectral coefficients survive compression.
type Truncation int

const (
	// HeadTruncate keeps coefficients [0, k) and zeroes [k, n). It does not
	// preserve conjugate symmetry, so the inverse carries an imaginary residue
	// that is dropped.
	HeadTruncate Truncation = iota

	// EdgePreserve zeroes the middle band [k, n-k), keeping both ends of the
	// conjugate-symmetric spectrum. Nothing is zeroed when k >= n-k.
	EdgePreserve
)

func (t Truncation) String() string {
	switch t {
	case HeadTruncate:
		return "head"
	case EdgePreserve:
		return "edge"
	default:
		return fmt.Sprintf("Truncation(%d)", int(t))
	}
}

// ParseTruncation accepts "head" or "edge" (case-insensitive).
func ParseTruncation(s string) (Truncation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "head", "head-truncate":
		return HeadTruncate, nil
	case "edge", "edge-preserve":
		return EdgePreserve, nil
	default:
		return 0, fmt.Errorf("%w: truncation policy %q", ErrInvalidParameter, s)
	}
}

// Compress keeps keepPercent of the low-index coefficients using HeadTruncate.
func Compress(sig audio.Signal, keepPercent float64) audio.Signal {
	return CompressWith(sig, keepPercent, HeadTruncate)
}

// CompressInteractive applies EdgePreserve at a fixed 50%.
func CompressInteractive(sig audio.Signal) audio.Signal {
	return CompressWith(sig, InteractiveKeepPercent, EdgePreserve)
}

// CompressWith truncates the spectrum of sig according to policy, with
// k = floor(n * keepPercent / 100) clamped to [0, n].
func CompressWith(sig audio.Signal, keepPercent float64, policy Truncation) audio.Signal {
	if sig.IsEmpty() {
		return sig
	}

	coeffs := forward(sig.Samples())
	n := len(coeffs)
	k := keepCount(n, keepPercent)

	lo, hi := k, n
	if policy == EdgePreserve {
		hi = n - k
	}
	for i := lo; i < hi; i++ {
		coeffs[i] = 0
	}

	out, _ := audio.Adopt(inverseReal(coeffs), sig.SampleRate())
	return out
}

func keepCount(n int, keepPercent float64) int {
	if math.IsNaN(keepPercent) {
		return n
	}

	k := math.Floor(float64(n) * keepPercent / 100)
	switch {
	case k < 0:
		return 0
	case k > float64(n):
		return n
	default:
		return int(k)
	}
}
