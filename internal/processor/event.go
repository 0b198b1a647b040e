package processor

import (
	"fmt"
)

// Kind is the kind of a cue message.
type Kind int

const (
	NoteOnKind Kind = iota
	NoteOffKind
	ControlChangeKind
)

func (k Kind) String() string {
	switch k {
	case NoteOnKind:
		return "NoteOn"
	case NoteOffKind:
		return "NoteOff"
	case ControlChangeKind:
		return "ControlChange"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Message is a note on, note off or control change.
//
// For notes, Data1 is the note number and Data2 the velocity.
// For control changes, Data1 is the controller and Data2 the value.
type Message struct {
	Kind  Kind
	Data1 uint8
	Data2 uint8
}

// NoteOn returns a note on message.
func NoteOn(note, velocity uint8) Message {
	return Message{Kind: NoteOnKind, Data1: note, Data2: velocity}
}

// NoteOff returns a note off message. Release velocity is not kept.
func NoteOff(note uint8) Message {
	return Message{Kind: NoteOffKind, Data1: note}
}

// ControlChange returns a control change message.
func ControlChange(controller, value uint8) Message {
	return Message{Kind: ControlChangeKind, Data1: controller, Data2: value}
}

func (m Message) String() string {
	return fmt.Sprintf("%v(%d, %d)", m.Kind, m.Data1, m.Data2)
}

// Event is a message at an absolute time.
type Event struct {
	// Timestamp is the time in seconds since the start of the song.
	Timestamp float64

	Message Message

	// Channel is 1-based.
	Channel uint8
}

func (e Event) String() string {
	return fmt.Sprintf("%v@%d at %.6fs", e.Message, e.Channel, e.Timestamp)
}
