// SPDX-License-Identifier: EPL-2.0

package voice

type commandKind uint8

const (
	cmdPause commandKind = iota
	cmdResume
	cmdSetAmplifier
	cmdSeekTo
	cmdSetLowPass
	cmdFadeIn
	cmdFadeOut
)

func (k commandKind) String() string {
	switch k {
	case cmdPause:
		return "pause"
	case cmdResume:
		return "resume"
	case cmdSetAmplifier:
		return "set amplifier"
	case cmdSeekTo:
		return "seek to"
	case cmdSetLowPass:
		return "set low pass"
	case cmdFadeIn:
		return "fade in"
	case cmdFadeOut:
		return "fade out"
	default:
		return "unknown"
	}
}

// command is a value type so the ring never holds pointers.
type command struct {
	kind  commandKind
	value int
}
