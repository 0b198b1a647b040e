package processor

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

// classify maps a channel message to a cue message and its 1-based channel.
//
// If overrideChannel is nonzero, it is used instead of the message channel.
// Messages other than note on, note off and control change are not classified.
func classify(msg smf.Message, overrideChannel uint8) (Message, uint8, bool) {
	var ch, a, b uint8
	var m Message
	switch {
	case msg.GetNoteOn(&ch, &a, &b):
		m = NoteOn(a, b)
	case msg.GetNoteOff(&ch, &a, &b):
		// Release velocity is dropped.
		m = NoteOff(a)
	case msg.GetControlChange(&ch, &a, &b):
		m = ControlChange(a, b)
	default:
		return Message{}, 0, false
	}
	if overrideChannel != 0 {
		return m, overrideChannel, true
	}
	return m, ch + 1, true
}
