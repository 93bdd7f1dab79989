// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrEmptyClip       = errors.New("clip has no frames")
	ErrUnknownFormat   = errors.New("no decoder registered for format")
	ErrInvalidChannels = errors.New("channel count must be positive")
)
