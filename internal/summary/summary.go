// Package summary prints a short human readable summary of an extraction run.
package summary

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/divVerent/midicues/internal/formatter"
	"github.com/divVerent/midicues/internal/processor"
)

// userLanguage returns the first user locale that parses as a language tag.
func userLanguage() language.Tag {
	locs, err := locale.GetLocales()
	if err != nil {
		log.Printf("Could not detect locales - working without: %v.", err)
	}
	for _, loc := range locs {
		lang, err := language.Parse(loc)
		if err != nil {
			continue
		}
		return lang
	}
	return language.English
}

// NewPrinter returns a printer for the user's locale.
func NewPrinter() *message.Printer {
	return message.NewPrinter(userLanguage())
}

// Counts holds the number of events per kind.
type Counts struct {
	NoteOn, NoteOff, ControlChange int
}

// Count counts events per kind.
func Count(events []processor.Event) Counts {
	var c Counts
	for _, ev := range events {
		switch ev.Message.Kind {
		case processor.NoteOnKind:
			c.NoteOn++
		case processor.NoteOffKind:
			c.NoteOff++
		case processor.ControlChangeKind:
			c.ControlChange++
		}
	}
	return c
}

// Write writes the summary using p.
func Write(w io.Writer, p *message.Printer, events []processor.Event, info *processor.Info) error {
	c := Count(events)
	_, err := p.Fprintf(w, "%d cues (%d note on, %d note off, %d control change) over %s, %d tempo segments.\n",
		len(events), c.NoteOn, c.NoteOff, c.ControlChange, formatter.FormatTime(info.EndSeconds), len(info.Segments))
	if err != nil {
		return err
	}
	if hanging := processor.HangingNotes(events); len(hanging) > 0 {
		_, err = p.Fprintf(w, "%d notes still on at the end.\n", len(hanging))
	}
	return err
}
