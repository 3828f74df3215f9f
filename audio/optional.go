// SPDX-License-Identifier: EPL-2.0

package audio

// Optional holds either no signal or exactly one Signal.
type Optional struct {
	signal  Signal
	present bool
}

func Some(s Signal) Optional { return Optional{signal: s, present: true} }
func None() Optional         { return Optional{} }

func (o Optional) IsSome() bool { return o.present }

func (o Optional) Get() (Signal, bool) { return o.signal, o.present }

// Value returns the signal or ErrNoSignalLoaded.
func (o Optional) Value() (Signal, error) {
	if !o.present {
		return Signal{}, ErrNoSignalLoaded
	}

	return o.signal, nil
}

// Map applies fn to a present signal. None maps to None without calling fn.
func (o Optional) Map(fn func(Signal) Signal) Optional {
	if !o.present {
		return o
	}

	return Some(fn(o.signal))
}
