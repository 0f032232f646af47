// Package control holds the flight-stick payload kinds sent to a drone or
// controller: raw 8-bit axis quads, an axis quad bundled with a telemetry
// request, and two position-control variants (16-bit fixed-point and
// floating point), grounded in the original Rust crate's protocol/control.rs.
package control

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// Quad8Size is Quad8's wire size in bytes.
const Quad8Size = 4

// Quad8 is the four raw flight-stick axes, each a signed byte in [-100,100].
type Quad8 struct {
	Roll     int8
	Pitch    int8
	Yaw      int8
	Throttle int8
}

// ParseQuad8 decodes a Quad8 from exactly Quad8Size bytes.
func ParseQuad8(data []byte) (Quad8, error) {
	if len(data) != Quad8Size {
		return Quad8{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Quad8{
		Roll:     r.GetI8(),
		Pitch:    r.GetI8(),
		Yaw:      r.GetI8(),
		Throttle: r.GetI8(),
	}, nil
}

// ToVec serializes the Quad8.
func (q Quad8) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI8(q.Roll)
	w.PutI8(q.Pitch)
	w.PutI8(q.Yaw)
	w.PutI8(q.Throttle)
	return w.Bytes()
}

// Quad8AndRequestDataSize is Quad8AndRequestData's wire size in bytes.
const Quad8AndRequestDataSize = 5

// Quad8AndRequestData is a Quad8 plus a piggy-backed telemetry request: the
// responder should answer with the named DataType after acting on the axes.
type Quad8AndRequestData struct {
	Roll     int8
	Pitch    int8
	Yaw      int8
	Throttle int8
	DataType protocol.DataType
}

// ParseQuad8AndRequestData decodes a Quad8AndRequestData from exactly
// Quad8AndRequestDataSize bytes.
func ParseQuad8AndRequestData(data []byte) (Quad8AndRequestData, error) {
	if len(data) != Quad8AndRequestDataSize {
		return Quad8AndRequestData{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Quad8AndRequestData{
		Roll:     r.GetI8(),
		Pitch:    r.GetI8(),
		Yaw:      r.GetI8(),
		Throttle: r.GetI8(),
		DataType: protocol.DataTypeFromU8(r.GetU8()),
	}, nil
}

// ToVec serializes the Quad8AndRequestData.
func (q Quad8AndRequestData) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI8(q.Roll)
	w.PutI8(q.Pitch)
	w.PutI8(q.Yaw)
	w.PutI8(q.Throttle)
	w.PutU8(uint8(q.DataType))
	return w.Bytes()
}

// Position16Size is Position16's wire size in bytes.
const Position16Size = 12

// Position16 is a fixed-point position/velocity/heading command.
type Position16 struct {
	PositionX          int16
	PositionY          int16
	PositionZ          int16
	Velocity           int16
	Heading            int16
	RotationalVelocity int16
}

// ParsePosition16 decodes a Position16 from exactly Position16Size bytes.
func ParsePosition16(data []byte) (Position16, error) {
	if len(data) != Position16Size {
		return Position16{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Position16{
		PositionX:          r.GetI16(),
		PositionY:          r.GetI16(),
		PositionZ:          r.GetI16(),
		Velocity:           r.GetI16(),
		Heading:            r.GetI16(),
		RotationalVelocity: r.GetI16(),
	}, nil
}

// ToVec serializes the Position16.
func (p Position16) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(p.PositionX)
	w.PutI16(p.PositionY)
	w.PutI16(p.PositionZ)
	w.PutI16(p.Velocity)
	w.PutI16(p.Heading)
	w.PutI16(p.RotationalVelocity)
	return w.Bytes()
}

// PositionSize is Position's wire size in bytes.
const PositionSize = 20

// Position is the floating-point position/velocity/heading command.
type Position struct {
	X                  float32
	Y                  float32
	Z                  float32
	Velocity           float32
	Heading            int16
	RotationalVelocity int16
}

// ParsePosition decodes a Position from exactly PositionSize bytes.
func ParsePosition(data []byte) (Position, error) {
	if len(data) != PositionSize {
		return Position{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Position{
		X:                  r.GetF32(),
		Y:                  r.GetF32(),
		Z:                  r.GetF32(),
		Velocity:           r.GetF32(),
		Heading:            r.GetI16(),
		RotationalVelocity: r.GetI16(),
	}, nil
}

// ToVec serializes the Position.
func (p Position) ToVec() []byte {
	w := wire.NewWriter()
	w.PutF32(p.X)
	w.PutF32(p.Y)
	w.PutF32(p.Z)
	w.PutF32(p.Velocity)
	w.PutI16(p.Heading)
	w.PutI16(p.RotationalVelocity)
	return w.Bytes()
}
