// Package motor holds the raw motor-control payload kinds, size-polymorphic
// on whether a rotation direction and/or ADC readback accompany the target
// value, grounded in the original Rust crate's protocol/motor.rs.
package motor

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// Rotation names a motor's spin direction.
type Rotation uint8

const (
	RotationNone             Rotation = 0x00
	RotationClockwise        Rotation = 0x01
	RotationCounterclockwise Rotation = 0x02
)

var rotationDefined = map[Rotation]bool{RotationNone: true, RotationClockwise: true, RotationCounterclockwise: true}

// RotationFromU8 performs the total enum conversion.
func RotationFromU8(b uint8) Rotation {
	r := Rotation(b)
	if rotationDefined[r] {
		return r
	}
	return RotationNone
}

// VSize is MotorV's fixed wire size in bytes.
const VSize = 2

// V is a bare motor target value, sign indicating direction.
type V struct {
	Value int16
}

// ParseV decodes a V from exactly VSize bytes.
func ParseV(data []byte) (V, error) {
	if len(data) != VSize {
		return V{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return V{Value: r.GetI16()}, nil
}

// ToVec serializes the V.
func (v V) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(v.Value)
	return w.Bytes()
}

// RVSize is MotorRV's fixed wire size in bytes.
const RVSize = 3

// RV is a motor target value with an explicit rotation direction.
type RV struct {
	Rotation Rotation
	Value    int16
}

// ParseRV decodes an RV from exactly RVSize bytes.
func ParseRV(data []byte) (RV, error) {
	if len(data) != RVSize {
		return RV{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return RV{Rotation: RotationFromU8(r.GetU8()), Value: r.GetI16()}, nil
}

// ToVec serializes the RV.
func (rv RV) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(rv.Rotation))
	w.PutI16(rv.Value)
	return w.Bytes()
}

// VASize is MotorVA's fixed wire size in bytes.
const VASize = 4

// VA is a motor target value with an ADC current readback.
type VA struct {
	Value int16
	Adc   int16
}

// ParseVA decodes a VA from exactly VASize bytes.
func ParseVA(data []byte) (VA, error) {
	if len(data) != VASize {
		return VA{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return VA{Value: r.GetI16(), Adc: r.GetI16()}, nil
}

// ToVec serializes the VA.
func (va VA) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(va.Value)
	w.PutI16(va.Adc)
	return w.Bytes()
}

// RVASize is MotorRVA's fixed wire size in bytes.
const RVASize = 5

// RVA is a motor target value with both a rotation direction and an ADC
// readback.
type RVA struct {
	Rotation Rotation
	Value    int16
	Adc      int16
}

// ParseRVA decodes an RVA from exactly RVASize bytes.
func ParseRVA(data []byte) (RVA, error) {
	if len(data) != RVASize {
		return RVA{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return RVA{Rotation: RotationFromU8(r.GetU8()), Value: r.GetI16(), Adc: r.GetI16()}, nil
}

// ToVec serializes the RVA.
func (rva RVA) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(rva.Rotation))
	w.PutI16(rva.Value)
	w.PutI16(rva.Adc)
	return w.Bytes()
}

// SingleVSize is MotorSingleV's fixed wire size in bytes.
const SingleVSize = 3

// SingleV targets a single motor by index.
type SingleV struct {
	Target uint8
	Value  int16
}

// ParseSingleV decodes a SingleV from exactly SingleVSize bytes.
func ParseSingleV(data []byte) (SingleV, error) {
	if len(data) != SingleVSize {
		return SingleV{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return SingleV{Target: r.GetU8(), Value: r.GetI16()}, nil
}

// ToVec serializes the SingleV.
func (s SingleV) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(s.Target)
	w.PutI16(s.Value)
	return w.Bytes()
}

// SingleRVSize is MotorSingleRV's fixed wire size in bytes.
const SingleRVSize = 4

// SingleRV targets a single motor by index, with an explicit rotation
// direction.
type SingleRV struct {
	Target   uint8
	Rotation Rotation
	Value    int16
}

// ParseSingleRV decodes a SingleRV from exactly SingleRVSize bytes.
func ParseSingleRV(data []byte) (SingleRV, error) {
	if len(data) != SingleRVSize {
		return SingleRV{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return SingleRV{Target: r.GetU8(), Rotation: RotationFromU8(r.GetU8()), Value: r.GetI16()}, nil
}

// ToVec serializes the SingleRV.
func (s SingleRV) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(s.Target)
	w.PutU8(uint8(s.Rotation))
	w.PutI16(s.Value)
	return w.Bytes()
}
