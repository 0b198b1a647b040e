package processor

const metaTempo = 0x51

// TicksToSeconds converts a tick count to seconds at a constant tempo in microseconds per quarter note.
func TicksToSeconds(ticks uint32, pulsesPerQN uint16, tempo uint32) float64 {
	beats := float64(ticks) / float64(pulsesPerQN)
	return beats * (float64(tempo) / microsPerSecond)
}

// TempoToBPM converts microseconds per quarter note to beats per minute.
func TempoToBPM(tempo uint32) float64 {
	return microsPerSecond / float64(tempo) * 60.0
}

// getTempo returns the microseconds per quarter note if msg is a tempo meta message.
//
// This reads the raw value, as smf.Message.GetMetaTempo only returns BPM.
func getTempo(msg []byte, tempo *uint32) bool {
	// FF 51 03 tt tt tt
	if len(msg) < 5 || msg[0] != metaStatus || msg[1] != metaTempo {
		return false
	}
	t := msg[len(msg)-3:]
	*tempo = uint32(t[0])<<16 | uint32(t[1])<<8 | uint32(t[2])
	return true
}

// TempoSegment is a span of ticks with constant tempo.
type TempoSegment struct {
	StartTick    uint32
	StartSeconds float64
	Tempo        uint32
}

// BPM returns the tempo of the segment in beats per minute.
func (s TempoSegment) BPM() float64 {
	return TempoToBPM(s.Tempo)
}
