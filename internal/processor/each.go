package processor

import (
	"errors"

	"gitlab.com/gomidi/midi/v2/smf"
)

// StopIteration can be returned to return without failure.
var StopIteration = errors.New("ForEachEvent: StopIteration")

// ForEachEvent runs the given function for each event of all tracks, in file order.
//
// Tracks are not merged by time; the second track's events follow the last event of the first track.
// The tick passed is the running sum of all deltas so far, end of track events included.
func ForEachEvent(tracks []smf.Track, yield func(tick int64, track int, ev smf.Event) error) error {
	var tick int64
	for i, t := range tracks {
		for _, ev := range t {
			tick += int64(ev.Delta)
			err := yield(tick, i, ev)
			if errors.Is(err, StopIteration) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
