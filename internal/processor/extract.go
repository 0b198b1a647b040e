package processor

import (
	"errors"
	"fmt"
	"log/slog"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ErrUnsupportedDivision is returned for files that do not use ticks per quarter note.
var ErrUnsupportedDivision = errors.New("unsupported division")

// ErrInvalidChannel is returned for override channels outside 1 to 16.
var ErrInvalidChannel = errors.New("invalid MIDI channel")

const (
	microsPerSecond = 1_000_000.0
	defaultBPM      = 120.0

	// defaultTempo is the tempo in microseconds per quarter note before the first tempo event.
	defaultTempo = uint32(microsPerSecond / (defaultBPM / 60.0))
)

// Options configure an Extractor.
type Options struct {
	// OverrideChannel, if nonzero, is reported as the channel of every event.
	OverrideChannel uint8

	// Logger receives diagnostics. If nil, they are discarded.
	Logger *slog.Logger
}

// Extractor converts MIDI tracks into timestamped cue events.
//
// The clock is kept as a sequence of tempo segments: elapsedSec holds the length
// of all closed segments, and the open segment started at lastTempoChangeTicks.
type Extractor struct {
	overrideChannel uint8
	log             *slog.Logger

	pulsesPerQN          uint16
	ticks                uint32
	lastTempoChangeTicks uint32
	elapsedSec           float64
	currentTempo         uint32

	info Info
}

// New returns an Extractor for the given time format.
func New(tf smf.TimeFormat, opts Options) (*Extractor, error) {
	ppqn, ok := tf.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("%w: %v (only ticks per quarter note are supported)", ErrUnsupportedDivision, tf)
	}
	if ppqn == 0 {
		panic("processor.New: zero ticks per quarter note")
	}
	if opts.OverrideChannel > 16 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannel, opts.OverrideChannel)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger.Info("quarter note division", "ppqn", uint16(ppqn))
	x := &Extractor{
		overrideChannel: opts.OverrideChannel,
		log:             logger,
		pulsesPerQN:     uint16(ppqn),
	}
	x.reset()
	return x, nil
}

// Extract runs a new Extractor over all tracks of mid.
func Extract(mid *smf.SMF, opts Options) ([]Event, error) {
	x, err := New(mid.TimeFormat, opts)
	if err != nil {
		return nil, err
	}
	return x.Run(mid.Tracks)
}

func (x *Extractor) reset() {
	x.ticks = 0
	x.lastTempoChangeTicks = 0
	x.elapsedSec = 0
	x.currentTempo = defaultTempo
	x.info = Info{
		PulsesPerQN: x.pulsesPerQN,
		Segments: []TempoSegment{
			{Tempo: defaultTempo},
		},
	}
}

// Run processes the tracks one after another and returns the cue events in input order.
//
// Each call starts from tick zero at the default tempo.
func (x *Extractor) Run(tracks []smf.Track) ([]Event, error) {
	x.reset()
	var events []Event
	err := ForEachEvent(tracks, func(_ int64, track int, ev smf.Event) error {
		e, ok, err := x.process(track, ev)
		if err != nil {
			return err
		}
		if ok {
			events = append(events, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	x.info.EndTicks = x.ticks
	x.info.EndSeconds = x.now()
	return events, nil
}

// Info returns what the last Run found out about the file besides the events.
func (x *Extractor) Info() *Info {
	info := x.info
	return &info
}

// now returns the seconds since the start at the current tick.
func (x *Extractor) now() float64 {
	return x.elapsedSec + TicksToSeconds(x.ticks-x.lastTempoChangeTicks, x.pulsesPerQN, x.currentTempo)
}

func (x *Extractor) process(track int, ev smf.Event) (Event, bool, error) {
	x.ticks += ev.Delta
	msg := ev.Message

	if m, ch, ok := classify(msg, x.overrideChannel); ok {
		return Event{
			Timestamp: x.now(),
			Message:   m,
			Channel:   ch,
		}, true, nil
	}

	var tempo uint32
	if getTempo(msg, &tempo) {
		x.changeTempo(tempo)
		return Event{}, false, nil
	}

	var offset SMPTEOffset
	if getSMPTEOffset(msg, &offset) {
		frameRate, hour, err := DecodeSMPTEOffset(offset)
		if err != nil {
			return Event{}, false, fmt.Errorf("SMPTE offset in track %d at tick %d: %w", track, x.ticks, err)
		}
		x.log.Info("SMPTE offset", "frame_rate", frameRate, "hour", hour, "minute", offset.Minute(), "second", offset.Second(), "frame", offset.Frame(), "fractional_frame", offset.FractionalFrame())
		x.info.SMPTEOffset = &SMPTEOffsetInfo{
			Offset:    offset,
			FrameRate: frameRate,
			Hour:      hour,
		}
		return Event{}, false, nil
	}

	var num, denom, clocksPerClick, demiSemiQuaverPerQuarter uint8
	if msg.GetMetaTimeSig(&num, &denom, &clocksPerClick, &demiSemiQuaverPerQuarter) {
		x.log.Info("time signature", "tick", x.ticks, "num", num, "denom", denom, "clocks_per_click", clocksPerClick, "32nds_per_quarter", demiSemiQuaverPerQuarter)
		x.info.TimeSigs = append(x.info.TimeSigs, TimeSig{
			Tick:  x.ticks,
			Time:  x.now(),
			Num:   num,
			Denom: denom,
		})
		return Event{}, false, nil
	}

	x.log.Debug("unhandled event", "track", track, "delta", ev.Delta, "tick", x.ticks, "message", msg)
	x.info.Unhandled++
	return Event{}, false, nil
}

// changeTempo closes the open tempo segment and starts a new one at the current tick.
func (x *Extractor) changeTempo(tempo uint32) {
	x.elapsedSec = x.now()
	x.lastTempoChangeTicks = x.ticks
	x.currentTempo = tempo
	x.log.Info("tempo change", "tick", x.ticks, "time", x.elapsedSec, "bpm", TempoToBPM(tempo))
	x.info.Segments = append(x.info.Segments, TempoSegment{
		StartTick:    x.ticks,
		StartSeconds: x.elapsedSec,
		Tempo:        tempo,
	})
}
