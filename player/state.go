// SPDX-License-Identifier: EPL-2.0

package player

import "fmt"

type State int32

const (
	Idle State = iota
	Stopped
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}
