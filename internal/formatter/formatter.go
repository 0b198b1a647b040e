// Package formatter renders cue events as text lines.
package formatter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/divVerent/midicues/internal/processor"
)

// Formatter renders one event as one line, without line terminator.
type Formatter interface {
	Format(ev processor.Event) string
}

// WriteLines writes one formatted line per event.
func WriteLines(w io.Writer, f Formatter, events []processor.Event) error {
	bw := bufio.NewWriter(w)
	for _, ev := range events {
		if _, err := fmt.Fprintln(bw, f.Format(ev)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
