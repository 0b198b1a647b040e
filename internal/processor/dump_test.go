package processor

import (
	"strings"
	"testing"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestDump(t *testing.T) {
	var tr smf.Track
	tr.Add(0, tempoMsg(1000000))
	tr.Add(0, smf.MetaMeter(3, 4))
	tr.Add(0, smpteMsg(0b01_0_00001, 2, 3, 4, 5))
	tr.Add(480, midi.NoteOn(0, 60, 100))
	tr.Add(480, tempoMsg(500000))
	tr.Close(960)
	x, err := New(smf.MetricTicks(480), Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := x.Run([]smf.Track{tr}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	var b strings.Builder
	if err := Dump(&b, x.Info()); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	got := b.String()
	for _, want := range []string{
		"division: 480 ticks per quarter note\n",
		"0 @ 0.000s: 960 ticks of 60.000 bpm (1000000 us per quarter note).\n",
		"960 @ 2.000s: 960 ticks of 120.000 bpm (500000 us per quarter note).\n",
		"0 @ 0.000s: time signature 3/4.\n",
		"SMPTE offset: 01:02:03:04.05 at 25 fps.\n",
		"1 other events.\n",
		"1920 @ 3.000s: end.\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Dump output %q does not contain %q", got, want)
		}
	}
	if strings.Contains(got, "0 @ 0.000s: 0 ticks") {
		t.Errorf("Dump output %q lists the replaced default tempo", got)
	}
}
