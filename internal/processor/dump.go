package processor

import (
	"fmt"
	"io"
)

// Info describes the timing of a file as seen by an Extractor run.
type Info struct {
	PulsesPerQN uint16

	// Segments always starts with the default tempo segment at tick 0.
	Segments []TempoSegment

	TimeSigs    []TimeSig
	SMPTEOffset *SMPTEOffsetInfo

	// Unhandled counts events that were neither cues nor timing related.
	Unhandled int

	EndTicks   uint32
	EndSeconds float64
}

// TimeSig is a time signature change.
type TimeSig struct {
	Tick  uint32
	Time  float64
	Num   uint8
	Denom uint8
}

// SMPTEOffsetInfo is a decoded SMPTE offset.
type SMPTEOffsetInfo struct {
	Offset    SMPTEOffset
	FrameRate float64
	Hour      uint8
}

// Dump prints the timing info in concise form.
func Dump(w io.Writer, info *Info) error {
	p := func(format string, args ...any) error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	}
	if err := p("division: %d ticks per quarter note\n", info.PulsesPerQN); err != nil {
		return err
	}
	for i, s := range info.Segments {
		end := info.EndTicks
		if i+1 < len(info.Segments) {
			end = info.Segments[i+1].StartTick
		}
		if i == 0 && end == 0 && len(info.Segments) > 1 {
			// Default tempo replaced right away.
			continue
		}
		ticks := end - s.StartTick
		plural := "s"
		if ticks == 1 {
			plural = ""
		}
		if err := p("%d @ %.3fs: %d tick%s of %.3f bpm (%d us per quarter note).\n", s.StartTick, s.StartSeconds, ticks, plural, s.BPM(), s.Tempo); err != nil {
			return err
		}
	}
	for _, t := range info.TimeSigs {
		if err := p("%d @ %.3fs: time signature %d/%d.\n", t.Tick, t.Time, t.Num, t.Denom); err != nil {
			return err
		}
	}
	if o := info.SMPTEOffset; o != nil {
		if err := p("SMPTE offset: %02d:%02d:%02d:%02d.%02d at %v fps.\n", o.Hour, o.Offset.Minute(), o.Offset.Second(), o.Offset.Frame(), o.Offset.FractionalFrame(), o.FrameRate); err != nil {
			return err
		}
	}
	if info.Unhandled > 0 {
		if err := p("%d other events.\n", info.Unhandled); err != nil {
			return err
		}
	}
	return p("%d @ %.3fs: end.\n", info.EndTicks, info.EndSeconds)
}
