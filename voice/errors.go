// SPDX-License-Identifier: EPL-2.0

package voice

import "errors"

var (
	// ErrCommandQueueFull is returned by handle operations when the command
	// ring has no free slot. The command is dropped; the caller decides
	// whether to retry on a later period.
	ErrCommandQueueFull = errors.New("command queue full")

	// ErrClosed is returned by handle operations after Close.
	ErrClosed = errors.New("voice handle closed")
)
