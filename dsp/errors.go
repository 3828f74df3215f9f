// SPDX-License-Identifier: EPL-2.0

package dsp

import "errors"

var (
	ErrInvalidParameter = errors.New("invalid transform parameter")
	ErrUnknownTransform = errors.New("unknown transform")
)
