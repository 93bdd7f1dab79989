// SPDX-License-Identifier: EPL-2.0

package mixer

import "errors"

var (
	// ErrTooManyVoices is returned by Add when the hand-over queue is full.
	ErrTooManyVoices = errors.New("too many pending voices")
	ErrNilRenderer   = errors.New("nil renderer")
)
