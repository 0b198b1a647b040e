package summary

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/divVerent/midicues/internal/processor"
)

func TestWrite(t *testing.T) {
	events := []processor.Event{
		{Timestamp: 0, Message: processor.NoteOn(60, 100), Channel: 1},
		{Timestamp: 1, Message: processor.ControlChange(1, 2), Channel: 1},
		{Timestamp: 2, Message: processor.NoteOn(62, 100), Channel: 1},
		{Timestamp: 3, Message: processor.NoteOff(62), Channel: 1},
	}
	info := &processor.Info{
		Segments:   []processor.TempoSegment{{Tempo: 500000}},
		EndSeconds: 65.5,
	}
	var b strings.Builder
	if err := Write(&b, message.NewPrinter(language.English), events, info); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "4 cues (2 note on, 1 note off, 1 control change) over 01:05.500, 1 tempo segments.\n1 notes still on at the end.\n"
	if b.String() != want {
		t.Errorf("Write wrote %q, want %q", b.String(), want)
	}
}

func TestWriteGroupsDigits(t *testing.T) {
	events := make([]processor.Event, 1234)
	for i := range events {
		events[i] = processor.Event{Message: processor.ControlChange(1, 2), Channel: 1}
	}
	var b strings.Builder
	if err := Write(&b, message.NewPrinter(language.English), events, &processor.Info{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.HasPrefix(b.String(), "1,234 cues") {
		t.Errorf("Write wrote %q, want digit grouping", b.String())
	}
}

func TestCount(t *testing.T) {
	got := Count([]processor.Event{
		{Message: processor.NoteOn(1, 1)},
		{Message: processor.NoteOff(1)},
		{Message: processor.NoteOff(2)},
	})
	if got != (Counts{NoteOn: 1, NoteOff: 2}) {
		t.Errorf("Count = %+v", got)
	}
}
