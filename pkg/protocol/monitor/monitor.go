// Package monitor holds the debug-telemetry payload family: a one-byte
// HeaderType picks among three variable-arity shapes (no timestamp, a
// 32-bit timestamp, or a 64-bit timestamp), each carrying a type-tagged
// sequence of sampled values that consumes every remaining byte, grounded
// in the original Rust crate's protocol/monitor.rs.
package monitor

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// HeaderType selects which Monitor variant a frame carries.
type HeaderType uint8

const (
	HeaderTypeMonitor0 HeaderType = 0x00
	HeaderTypeMonitor4 HeaderType = 0x01
	HeaderTypeMonitor8 HeaderType = 0x02
)

var headerTypeDefined = map[HeaderType]bool{HeaderTypeMonitor0: true, HeaderTypeMonitor4: true, HeaderTypeMonitor8: true}

// HeaderTypeFromU8 performs the total enum conversion.
func HeaderTypeFromU8(b uint8) HeaderType {
	h := HeaderType(b)
	if headerTypeDefined[h] {
		return h
	}
	return HeaderTypeMonitor0
}

// ValueType names the wire width and interpretation of each sampled value
// in a Monitor payload's trailing sequence.
type ValueType uint8

const (
	ValueTypeU8  ValueType = 0x00
	ValueTypeS8  ValueType = 0x01
	ValueTypeU16 ValueType = 0x02
	ValueTypeS16 ValueType = 0x03
	ValueTypeU32 ValueType = 0x04
	ValueTypeS32 ValueType = 0x05
	ValueTypeU64 ValueType = 0x06
	ValueTypeS64 ValueType = 0x07
	ValueTypeF32 ValueType = 0x08
	ValueTypeF64 ValueType = 0x09
)

var valueTypeDefined = map[ValueType]bool{
	ValueTypeU8: true, ValueTypeS8: true, ValueTypeU16: true, ValueTypeS16: true,
	ValueTypeU32: true, ValueTypeS32: true, ValueTypeU64: true, ValueTypeS64: true,
	ValueTypeF32: true, ValueTypeF64: true,
}

// ValueTypeFromU8 performs the total enum conversion.
func ValueTypeFromU8(b uint8) ValueType {
	v := ValueType(b)
	if valueTypeDefined[v] {
		return v
	}
	return ValueTypeU8
}

// width returns the number of wire bytes one sample of this ValueType
// occupies.
func (v ValueType) width() int {
	switch v {
	case ValueTypeU8, ValueTypeS8:
		return 1
	case ValueTypeU16, ValueTypeS16:
		return 2
	case ValueTypeU32, ValueTypeS32, ValueTypeF32:
		return 4
	case ValueTypeU64, ValueTypeS64, ValueTypeF64:
		return 8
	default:
		return 1
	}
}

func readValue(r *wire.Reader, t ValueType) float64 {
	switch t {
	case ValueTypeU8:
		return float64(r.GetU8())
	case ValueTypeS8:
		return float64(r.GetI8())
	case ValueTypeU16:
		return float64(r.GetU16())
	case ValueTypeS16:
		return float64(r.GetI16())
	case ValueTypeU32:
		return float64(r.GetU32())
	case ValueTypeS32:
		return float64(r.GetI32())
	case ValueTypeU64:
		return float64(r.GetU64())
	case ValueTypeS64:
		return float64(r.GetI64())
	case ValueTypeF32:
		return float64(r.GetF32())
	case ValueTypeF64:
		return r.GetF64()
	default:
		return 0
	}
}

func readValues(r *wire.Reader, t ValueType) []float64 {
	width := t.width()
	values := []float64{}
	for r.Remaining() >= width {
		values = append(values, readValue(r, t))
	}
	return values
}

func writeValues(w *wire.Writer, t ValueType, values []float64) {
	for _, v := range values {
		switch t {
		case ValueTypeU8:
			w.PutU8(uint8(v))
		case ValueTypeS8:
			w.PutI8(int8(v))
		case ValueTypeU16:
			w.PutU16(uint16(v))
		case ValueTypeS16:
			w.PutI16(int16(v))
		case ValueTypeU32:
			w.PutU32(uint32(v))
		case ValueTypeS32:
			w.PutI32(int32(v))
		case ValueTypeU64:
			w.PutU64(uint64(v))
		case ValueTypeS64:
			w.PutI64(int64(v))
		case ValueTypeF32:
			w.PutF32(float32(v))
		case ValueTypeF64:
			w.PutF64(v)
		}
	}
}

// TypeSize is the MonitorType selector's fixed wire size in bytes.
const TypeSize = 1

// Type is the one-byte sub-header that picks among Monitor0/4/8.
type Type struct {
	HeaderType HeaderType
}

// ParseType decodes a Type selector from exactly TypeSize bytes.
func ParseType(data []byte) (Type, error) {
	if len(data) != TypeSize {
		return Type{}, protocol.ErrWrongLength
	}
	return Type{HeaderType: HeaderTypeFromU8(data[0])}, nil
}

// ToVec serializes the Type selector.
func (t Type) ToVec() []byte { return []byte{uint8(t.HeaderType)} }

// Monitor0MinSize is Monitor0's fixed header size in bytes.
const Monitor0MinSize = 2

// Monitor0 carries an untimestamped sequence of sampled values.
type Monitor0 struct {
	ValueType ValueType
	Index     uint8
	Values    []float64
}

// ParseMonitor0 decodes a Monitor0 from at least Monitor0MinSize bytes.
func ParseMonitor0(data []byte) (Monitor0, error) {
	if len(data) < Monitor0MinSize {
		return Monitor0{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	vt := ValueTypeFromU8(r.GetU8())
	index := r.GetU8()
	return Monitor0{ValueType: vt, Index: index, Values: readValues(r, vt)}, nil
}

// Length returns the payload's total on-wire length.
func (m Monitor0) Length() int {
	return Monitor0MinSize + len(m.Values)*m.ValueType.width()
}

// ToVec serializes the Monitor0.
func (m Monitor0) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(m.ValueType))
	w.PutU8(m.Index)
	writeValues(w, m.ValueType, m.Values)
	return w.Bytes()
}

// Monitor4MinSize is Monitor4's fixed header size in bytes.
const Monitor4MinSize = 6

// Monitor4 carries a 32-bit-timestamped sequence of sampled values.
type Monitor4 struct {
	SystemTime uint32
	ValueType  ValueType
	Index      uint8
	Values     []float64
}

// ParseMonitor4 decodes a Monitor4 from at least Monitor4MinSize bytes.
func ParseMonitor4(data []byte) (Monitor4, error) {
	if len(data) < Monitor4MinSize {
		return Monitor4{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	systemTime := r.GetU32()
	vt := ValueTypeFromU8(r.GetU8())
	index := r.GetU8()
	return Monitor4{SystemTime: systemTime, ValueType: vt, Index: index, Values: readValues(r, vt)}, nil
}

// Length returns the payload's total on-wire length.
func (m Monitor4) Length() int {
	return Monitor4MinSize + len(m.Values)*m.ValueType.width()
}

// ToVec serializes the Monitor4.
func (m Monitor4) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU32(m.SystemTime)
	w.PutU8(uint8(m.ValueType))
	w.PutU8(m.Index)
	writeValues(w, m.ValueType, m.Values)
	return w.Bytes()
}

// Monitor8MinSize is Monitor8's fixed header size in bytes.
const Monitor8MinSize = 10

// Monitor8 carries a 64-bit-timestamped sequence of sampled values.
type Monitor8 struct {
	SystemTime uint64
	ValueType  ValueType
	Index      uint8
	Values     []float64
}

// ParseMonitor8 decodes a Monitor8 from at least Monitor8MinSize bytes.
func ParseMonitor8(data []byte) (Monitor8, error) {
	if len(data) < Monitor8MinSize {
		return Monitor8{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	systemTime := r.GetU64()
	vt := ValueTypeFromU8(r.GetU8())
	index := r.GetU8()
	return Monitor8{SystemTime: systemTime, ValueType: vt, Index: index, Values: readValues(r, vt)}, nil
}

// Length returns the payload's total on-wire length.
func (m Monitor8) Length() int {
	return Monitor8MinSize + len(m.Values)*m.ValueType.width()
}

// ToVec serializes the Monitor8.
func (m Monitor8) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU64(m.SystemTime)
	w.PutU8(uint8(m.ValueType))
	w.PutU8(m.Index)
	writeValues(w, m.ValueType, m.Values)
	return w.Bytes()
}
