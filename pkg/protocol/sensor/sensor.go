// Package sensor holds the drone's outbound telemetry payload kinds: raw
// and filtered IMU readings, range-finder distances, flight counters,
// calibration bias/trim, and the timed-landing/lost-connection behavior,
// grounded in the original Rust crate's protocol/sensor.rs.
package sensor

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// RawMotionSize is RawMotion's fixed wire size in bytes.
const RawMotionSize = 12

// RawMotion is the unfiltered accelerometer and gyroscope reading.
type RawMotion struct {
	AccelX, AccelY, AccelZ int16
	GyroRoll, GyroPitch, GyroYaw int16
}

// ParseRawMotion decodes a RawMotion from exactly RawMotionSize bytes.
func ParseRawMotion(data []byte) (RawMotion, error) {
	if len(data) != RawMotionSize {
		return RawMotion{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return RawMotion{
		AccelX: r.GetI16(), AccelY: r.GetI16(), AccelZ: r.GetI16(),
		GyroRoll: r.GetI16(), GyroPitch: r.GetI16(), GyroYaw: r.GetI16(),
	}, nil
}

// ToVec serializes the RawMotion.
func (m RawMotion) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(m.AccelX)
	w.PutI16(m.AccelY)
	w.PutI16(m.AccelZ)
	w.PutI16(m.GyroRoll)
	w.PutI16(m.GyroPitch)
	w.PutI16(m.GyroYaw)
	return w.Bytes()
}

// RawFlowSize is RawFlow's fixed wire size in bytes.
const RawFlowSize = 8

// RawFlow is the optical-flow sensor's raw x/y displacement estimate.
type RawFlow struct {
	X, Y float32
}

// ParseRawFlow decodes a RawFlow from exactly RawFlowSize bytes.
func ParseRawFlow(data []byte) (RawFlow, error) {
	if len(data) != RawFlowSize {
		return RawFlow{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return RawFlow{X: r.GetF32(), Y: r.GetF32()}, nil
}

// ToVec serializes the RawFlow.
func (f RawFlow) ToVec() []byte {
	w := wire.NewWriter()
	w.PutF32(f.X)
	w.PutF32(f.Y)
	return w.Bytes()
}

// AttitudeSize is Attitude's fixed wire size in bytes.
const AttitudeSize = 6

// Attitude is the filtered roll/pitch/yaw estimate, in tenths of a degree.
type Attitude struct {
	Roll, Pitch, Yaw int16
}

// ParseAttitude decodes an Attitude from exactly AttitudeSize bytes.
func ParseAttitude(data []byte) (Attitude, error) {
	if len(data) != AttitudeSize {
		return Attitude{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Attitude{Roll: r.GetI16(), Pitch: r.GetI16(), Yaw: r.GetI16()}, nil
}

// ToVec serializes the Attitude.
func (a Attitude) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(a.Roll)
	w.PutI16(a.Pitch)
	w.PutI16(a.Yaw)
	return w.Bytes()
}

// PositionSize is the telemetry Position payload's fixed wire size in
// bytes — distinct from protocol/control.Position, which is a command.
const PositionSize = 12

// Position is the filtered x/y/z position estimate, in meters.
type Position struct {
	X, Y, Z float32
}

// ParsePosition decodes a Position from exactly PositionSize bytes.
func ParsePosition(data []byte) (Position, error) {
	if len(data) != PositionSize {
		return Position{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Position{X: r.GetF32(), Y: r.GetF32(), Z: r.GetF32()}, nil
}

// ToVec serializes the Position.
func (p Position) ToVec() []byte {
	w := wire.NewWriter()
	w.PutF32(p.X)
	w.PutF32(p.Y)
	w.PutF32(p.Z)
	return w.Bytes()
}

// PositionVelocitySize is PositionVelocity's fixed wire size in bytes.
const PositionVelocitySize = 24

// PositionVelocity is the filtered position estimate plus its velocity
// vector, both in meters (per second, for velocity).
type PositionVelocity struct {
	X, Y, Z    float32
	Vx, Vy, Vz float32
}

// ParsePositionVelocity decodes a PositionVelocity from exactly
// PositionVelocitySize bytes.
func ParsePositionVelocity(data []byte) (PositionVelocity, error) {
	if len(data) != PositionVelocitySize {
		return PositionVelocity{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return PositionVelocity{
		X: r.GetF32(), Y: r.GetF32(), Z: r.GetF32(),
		Vx: r.GetF32(), Vy: r.GetF32(), Vz: r.GetF32(),
	}, nil
}

// ToVec serializes the PositionVelocity.
func (p PositionVelocity) ToVec() []byte {
	w := wire.NewWriter()
	w.PutF32(p.X)
	w.PutF32(p.Y)
	w.PutF32(p.Z)
	w.PutF32(p.Vx)
	w.PutF32(p.Vy)
	w.PutF32(p.Vz)
	return w.Bytes()
}

// MotionSize is Motion's fixed wire size in bytes.
const MotionSize = 18

// Motion is the filtered accelerometer, gyroscope, and angle reading.
type Motion struct {
	AccelX, AccelY, AccelZ       int16
	GyroRoll, GyroPitch, GyroYaw int16
	AngleRoll, AnglePitch, AngleYaw int16
}

// ParseMotion decodes a Motion from exactly MotionSize bytes.
func ParseMotion(data []byte) (Motion, error) {
	if len(data) != MotionSize {
		return Motion{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Motion{
		AccelX: r.GetI16(), AccelY: r.GetI16(), AccelZ: r.GetI16(),
		GyroRoll: r.GetI16(), GyroPitch: r.GetI16(), GyroYaw: r.GetI16(),
		AngleRoll: r.GetI16(), AnglePitch: r.GetI16(), AngleYaw: r.GetI16(),
	}, nil
}

// ToVec serializes the Motion.
func (m Motion) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(m.AccelX)
	w.PutI16(m.AccelY)
	w.PutI16(m.AccelZ)
	w.PutI16(m.GyroRoll)
	w.PutI16(m.GyroPitch)
	w.PutI16(m.GyroYaw)
	w.PutI16(m.AngleRoll)
	w.PutI16(m.AnglePitch)
	w.PutI16(m.AngleYaw)
	return w.Bytes()
}

// RangeSize is Range's fixed wire size in bytes.
const RangeSize = 12

// Range is the six-direction distance-sensor reading, in millimeters.
type Range struct {
	Left, Front, Right, Rear, Top, Bottom int16
}

// ParseRange decodes a Range from exactly RangeSize bytes.
func ParseRange(data []byte) (Range, error) {
	if len(data) != RangeSize {
		return Range{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Range{
		Left: r.GetI16(), Front: r.GetI16(), Right: r.GetI16(),
		Rear: r.GetI16(), Top: r.GetI16(), Bottom: r.GetI16(),
	}, nil
}

// ToVec serializes the Range.
func (r Range) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(r.Left)
	w.PutI16(r.Front)
	w.PutI16(r.Right)
	w.PutI16(r.Rear)
	w.PutI16(r.Top)
	w.PutI16(r.Bottom)
	return w.Bytes()
}

// CountSize is Count's fixed wire size in bytes.
const CountSize = 14

// Count is the cumulative flight-event counters the drone keeps onboard.
type Count struct {
	TimeSystem, TimeFlight           uint32
	CountTakeoff, CountLanding, CountAccident uint16
}

// ParseCount decodes a Count from exactly CountSize bytes.
func ParseCount(data []byte) (Count, error) {
	if len(data) != CountSize {
		return Count{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Count{
		TimeSystem: r.GetU32(), TimeFlight: r.GetU32(),
		CountTakeoff: r.GetU16(), CountLanding: r.GetU16(), CountAccident: r.GetU16(),
	}, nil
}

// ToVec serializes the Count.
func (c Count) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU32(c.TimeSystem)
	w.PutU32(c.TimeFlight)
	w.PutU16(c.CountTakeoff)
	w.PutU16(c.CountLanding)
	w.PutU16(c.CountAccident)
	return w.Bytes()
}

// BiasSize is Bias's fixed wire size in bytes.
const BiasSize = 12

// Bias is the accelerometer/gyroscope zero-offset calibration, reset by
// command.TypeClearBias.
type Bias struct {
	AccelX, AccelY, AccelZ       int16
	GyroRoll, GyroPitch, GyroYaw int16
}

// ParseBias decodes a Bias from exactly BiasSize bytes.
func ParseBias(data []byte) (Bias, error) {
	if len(data) != BiasSize {
		return Bias{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Bias{
		AccelX: r.GetI16(), AccelY: r.GetI16(), AccelZ: r.GetI16(),
		GyroRoll: r.GetI16(), GyroPitch: r.GetI16(), GyroYaw: r.GetI16(),
	}, nil
}

// ToVec serializes the Bias.
func (b Bias) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(b.AccelX)
	w.PutI16(b.AccelY)
	w.PutI16(b.AccelZ)
	w.PutI16(b.GyroRoll)
	w.PutI16(b.GyroPitch)
	w.PutI16(b.GyroYaw)
	return w.Bytes()
}

// TrimSize is Trim's fixed wire size in bytes.
const TrimSize = 8

// Trim is the user-adjustable control-stick offset, reset by
// command.TypeClearTrim.
type Trim struct {
	Roll, Pitch, Yaw, Throttle int16
}

// ParseTrim decodes a Trim from exactly TrimSize bytes.
func ParseTrim(data []byte) (Trim, error) {
	if len(data) != TrimSize {
		return Trim{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Trim{Roll: r.GetI16(), Pitch: r.GetI16(), Yaw: r.GetI16(), Throttle: r.GetI16()}, nil
}

// ToVec serializes the Trim.
func (t Trim) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(t.Roll)
	w.PutI16(t.Pitch)
	w.PutI16(t.Yaw)
	w.PutI16(t.Throttle)
	return w.Bytes()
}

// LostConnectionSize is LostConnection's fixed wire size in bytes.
const LostConnectionSize = 8

// LostConnection configures the drone's failsafe behavior when the link
// drops: go neutral after TimeNeutral ms, begin landing after TimeLanding
// ms, cut motors after TimeStop ms.
type LostConnection struct {
	TimeNeutral uint16
	TimeLanding uint16
	TimeStop    uint32
}

// ParseLostConnection decodes a LostConnection from exactly
// LostConnectionSize bytes.
func ParseLostConnection(data []byte) (LostConnection, error) {
	if len(data) != LostConnectionSize {
		return LostConnection{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return LostConnection{TimeNeutral: r.GetU16(), TimeLanding: r.GetU16(), TimeStop: r.GetU32()}, nil
}

// ToVec serializes the LostConnection.
func (l LostConnection) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU16(l.TimeNeutral)
	w.PutU16(l.TimeLanding)
	w.PutU32(l.TimeStop)
	return w.Bytes()
}

// MagnetometerOffsetSize is MagnetometerOffset's fixed wire size in bytes.
const MagnetometerOffsetSize = 2

// MagnetometerOffset is the heading-correction offset applied on top of
// the raw magnetometer reading.
type MagnetometerOffset struct {
	Offset int16
}

// ParseMagnetometerOffset decodes a MagnetometerOffset from exactly
// MagnetometerOffsetSize bytes.
func ParseMagnetometerOffset(data []byte) (MagnetometerOffset, error) {
	if len(data) != MagnetometerOffsetSize {
		return MagnetometerOffset{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return MagnetometerOffset{Offset: r.GetI16()}, nil
}

// ToVec serializes the MagnetometerOffset.
func (m MagnetometerOffset) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(m.Offset)
	return w.Bytes()
}
