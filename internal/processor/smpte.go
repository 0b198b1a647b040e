package processor

import (
	"errors"
	"fmt"
)

// ErrInvalidFrameRateCode is returned for SMPTE offsets whose frame rate code is not one of 0 to 3.
var ErrInvalidFrameRateCode = errors.New("invalid SMPTE frame rate code")

const (
	smpteFrameRateShift = 6
	smpteFrameRateMask  = 0b0000_0011
	smpteHourMask       = 0b0001_1111
)

// FrameRate is a SMPTE frame rate code as stored in the top bits of the hour byte.
type FrameRate uint8

const (
	FrameRate24   FrameRate = 0
	FrameRate25   FrameRate = 1
	FrameRate2997 FrameRate = 2
	FrameRate30   FrameRate = 3
)

// ParseFrameRateCode validates a 2-bit frame rate code.
func ParseFrameRateCode(code uint8) (FrameRate, error) {
	if code > uint8(FrameRate30) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFrameRateCode, code)
	}
	return FrameRate(code), nil
}

// FPS returns the frames per second.
func (f FrameRate) FPS() float64 {
	switch f {
	case FrameRate24:
		return 24.0
	case FrameRate25:
		return 25.0
	case FrameRate2997:
		return 29.97
	case FrameRate30:
		return 30.0
	default:
		// ParseFrameRateCode never returns these.
		panic(fmt.Sprintf("FrameRate(%d).FPS: invalid frame rate", uint8(f)))
	}
}

// SMPTEOffset is the payload of a SMPTE offset meta event: hr, mn, se, fr, ff.
type SMPTEOffset [5]byte

// FrameRateCode returns the top two bits of the hour byte.
func (s SMPTEOffset) FrameRateCode() uint8 {
	return (s[0] >> smpteFrameRateShift) & smpteFrameRateMask
}

// Hour returns the low five bits of the hour byte.
func (s SMPTEOffset) Hour() uint8 {
	return s[0] & smpteHourMask
}

func (s SMPTEOffset) Minute() uint8 {
	return s[1]
}

func (s SMPTEOffset) Second() uint8 {
	return s[2]
}

func (s SMPTEOffset) Frame() uint8 {
	return s[3]
}

func (s SMPTEOffset) FractionalFrame() uint8 {
	return s[4]
}

// DecodeSMPTEOffset extracts the frame rate and hour of a SMPTE offset.
func DecodeSMPTEOffset(s SMPTEOffset) (frameRate float64, hour uint8, err error) {
	fr, err := ParseFrameRateCode(s.FrameRateCode())
	if err != nil {
		return 0, 0, err
	}
	return fr.FPS(), s.Hour(), nil
}

const (
	metaStatus      = 0xFF
	metaSMPTEOffset = 0x54
)

// getSMPTEOffset returns the payload if msg is a SMPTE offset meta message.
func getSMPTEOffset(msg []byte, out *SMPTEOffset) bool {
	// FF 54 05 hr mn se fr ff; the payload is always the last five bytes.
	if len(msg) < 2+len(out) || msg[0] != metaStatus || msg[1] != metaSMPTEOffset {
		return false
	}
	copy(out[:], msg[len(msg)-len(out):])
	return true
}
