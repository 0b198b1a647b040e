package formatter

import (
	"fmt"
	"math"
	"time"

	"github.com/divVerent/midicues/internal/processor"
)

// StageTraxx formats events as StageTraxx MIDI cue tags, e.g. [midi@00:46.700: CC1.62@4].
type StageTraxx struct{}

func (StageTraxx) Format(ev processor.Event) string {
	tag := "N"
	arg2 := ev.Message.Data2
	switch ev.Message.Kind {
	case processor.NoteOffKind:
		arg2 = 0
	case processor.ControlChangeKind:
		tag = "CC"
	}
	return fmt.Sprintf("[midi@%s: %s%d.%d@%d]", FormatTime(ev.Timestamp), tag, ev.Message.Data1, arg2, ev.Channel)
}

// FormatTime formats seconds as MM:SS.mmm.
//
// Milliseconds are truncated, not rounded. The time is first rounded to whole
// nanoseconds so that e.g. 106.704, stored as 106.70399999..., gives 704.
func FormatTime(seconds float64) string {
	d := time.Duration(math.Round(seconds * float64(time.Second)))
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	millis := int64(d%time.Second) / int64(time.Millisecond)
	return fmt.Sprintf("%02d:%02d.%03d", secs/60, secs%60, millis)
}
