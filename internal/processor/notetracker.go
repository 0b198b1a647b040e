package processor

import (
	"sort"
)

// Key identifies a sounding note.
type Key struct {
	Channel, Note uint8
}

// KeySorter returns a less function for sorting keys by channel then note.
func KeySorter(keys []Key) func(i, j int) bool {
	return func(i, j int) bool {
		if keys[i].Channel != keys[j].Channel {
			return keys[i].Channel < keys[j].Channel
		}
		return keys[i].Note < keys[j].Note
	}
}

type noteTracker struct {
	refcounting bool
	activeNotes map[Key]int
}

func newNoteTracker(refcounting bool) *noteTracker {
	return &noteTracker{
		refcounting: refcounting,
		activeNotes: map[Key]int{},
	}
}

func (t noteTracker) Playing() bool {
	return len(t.activeNotes) > 0
}

// Handle updates the tracker and returns whether the event started or ended a note.
func (t noteTracker) Handle(ev Event) bool {
	k := Key{ev.Channel, ev.Message.Data1}
	switch ev.Message.Kind {
	case NoteOnKind:
		if ev.Message.Data2 == 0 {
			// Note on with zero velocity ends the note on the receiving side.
			return t.end(k)
		}
		result := t.activeNotes[k] == 0
		if t.refcounting {
			t.activeNotes[k]++
		} else {
			t.activeNotes[k] = 1
		}
		return result
	case NoteOffKind:
		return t.end(k)
	}
	return true
}

func (t noteTracker) end(k Key) bool {
	result := t.activeNotes[k] == 1
	if t.refcounting {
		if t.activeNotes[k] > 0 {
			t.activeNotes[k]--
			if t.activeNotes[k] == 0 {
				delete(t.activeNotes, k)
			}
		}
	} else {
		delete(t.activeNotes, k)
	}
	return result
}

// Active returns the sounding notes in sorted order.
func (t noteTracker) Active() []Key {
	keys := make([]Key, 0, len(t.activeNotes))
	for k := range t.activeNotes {
		keys = append(keys, k)
	}
	sort.Slice(keys, KeySorter(keys))
	return keys
}

// HangingNotes returns the notes still sounding after all events.
//
// Cue tools usually treat these as latched scenes, so this is only informational.
func HangingNotes(events []Event) []Key {
	tracker := newNoteTracker(false)
	for _, ev := range events {
		tracker.Handle(ev)
	}
	return tracker.Active()
}
