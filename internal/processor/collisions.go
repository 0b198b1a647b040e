package processor

// SkipOffNoteCollisions drops note off events that are directly followed by another event at the same time.
//
// This avoids a note off arriving together with the note on of another mutually exclusive cue.
func SkipOffNoteCollisions(events []Event) []Event {
	result := make([]Event, 0, len(events))
	for i, ev := range events {
		if ev.Message.Kind == NoteOffKind && i+1 < len(events) && events[i+1].Timestamp == ev.Timestamp {
			continue
		}
		result = append(result, ev)
	}
	return result
}
