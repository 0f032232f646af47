// Package vibrator holds the controller vibration-motor payload, grounded
// in the original Rust crate's protocol/vibrator.rs.
package vibrator

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// Mode selects when a vibration pattern takes effect.
type Mode uint8

const (
	ModeStop        Mode = 0
	ModeInstantly   Mode = 1
	ModeContinually Mode = 2
)

var modeDefined = map[Mode]bool{ModeStop: true, ModeInstantly: true, ModeContinually: true}

// ModeFromU8 performs the total enum conversion.
func ModeFromU8(b uint8) Mode {
	m := Mode(b)
	if modeDefined[m] {
		return m
	}
	return ModeStop
}

// Size is Vibrator's fixed wire size in bytes.
const Size = 7

// Vibrator drives the on/off/time cycle of the controller's haptic motor,
// all durations in milliseconds.
type Vibrator struct {
	Mode Mode
	On   uint16
	Off  uint16
	Time uint16
}

// Parse decodes a Vibrator from exactly Size bytes.
func Parse(data []byte) (Vibrator, error) {
	if len(data) != Size {
		return Vibrator{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Vibrator{
		Mode: ModeFromU8(r.GetU8()),
		On:   r.GetU16(),
		Off:  r.GetU16(),
		Time: r.GetU16(),
	}, nil
}

// ToVec serializes the Vibrator.
func (v Vibrator) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(v.Mode))
	w.PutU16(v.On)
	w.PutU16(v.Off)
	w.PutU16(v.Time)
	return w.Bytes()
}
