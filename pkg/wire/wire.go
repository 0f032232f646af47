// Package wire provides cursor-based little-endian readers and writers for
// the e-drone binary protocol's fixed-width fields.
package wire

import "math"

// Reader walks a byte slice left to right, decoding fixed-width
// little-endian values. Every Get* method is safe on short input: if fewer
// bytes remain than the field requires, it returns the zero value and leaves
// the cursor where it was, instead of panicking.
type Reader struct {
	data  []byte
	index int
}

// NewReader wraps data for sequential reading starting at offset 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Index returns the reader's current cursor position.
func (r *Reader) Index() int { return r.index }

// Remaining returns how many bytes are left to read.
func (r *Reader) Remaining() int {
	n := len(r.data) - r.index
	if n < 0 {
		return 0
	}
	return n
}

func (r *Reader) canRead(width int) bool {
	return r.index+width <= len(r.data)
}

// GetU8 reads one unsigned byte.
func (r *Reader) GetU8() uint8 {
	if !r.canRead(1) {
		return 0
	}
	v := r.data[r.index]
	r.index++
	return v
}

// GetI8 reads one signed byte.
func (r *Reader) GetI8() int8 {
	return int8(r.GetU8())
}

// GetU16 reads a little-endian uint16.
func (r *Reader) GetU16() uint16 {
	if !r.canRead(2) {
		return 0
	}
	v := uint16(r.data[r.index]) | uint16(r.data[r.index+1])<<8
	r.index += 2
	return v
}

// GetI16 reads a little-endian int16.
func (r *Reader) GetI16() int16 {
	return int16(r.GetU16())
}

// GetU32 reads a little-endian uint32.
func (r *Reader) GetU32() uint32 {
	if !r.canRead(4) {
		return 0
	}
	v := uint32(r.data[r.index]) |
		uint32(r.data[r.index+1])<<8 |
		uint32(r.data[r.index+2])<<16 |
		uint32(r.data[r.index+3])<<24
	r.index += 4
	return v
}

// GetI32 reads a little-endian int32.
func (r *Reader) GetI32() int32 {
	return int32(r.GetU32())
}

// GetU64 reads a little-endian uint64.
func (r *Reader) GetU64() uint64 {
	if !r.canRead(8) {
		return 0
	}
	v := uint64(0)
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(r.data[r.index+i])
	}
	r.index += 8
	return v
}

// GetI64 reads a little-endian int64.
func (r *Reader) GetI64() int64 {
	return int64(r.GetU64())
}

// GetF32 reads a little-endian IEEE-754 single precision float.
func (r *Reader) GetF32() float32 {
	return math.Float32frombits(r.GetU32())
}

// GetF64 reads a little-endian IEEE-754 double precision float.
func (r *Reader) GetF64() float64 {
	return math.Float64frombits(r.GetU64())
}

// GetBool reads one byte, interpreting zero as false and anything else as true.
func (r *Reader) GetBool() bool {
	return r.GetU8() != 0
}

// GetArray reads the next n bytes. Returns an empty (non-nil) slice if n
// bytes are not available.
func (r *Reader) GetArray(n int) []byte {
	if n <= 0 || !r.canRead(n) {
		return []byte{}
	}
	out := make([]byte, n)
	copy(out, r.data[r.index:r.index+n])
	r.index += n
	return out
}

// GetRemaining reads every byte left in the buffer.
func (r *Reader) GetRemaining() []byte {
	return r.GetArray(r.Remaining())
}

// Writer appends fixed-width little-endian values to an internal byte slice.
type Writer struct {
	data []byte
}

// NewWriter returns an empty writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated byte slice.
func (w *Writer) Bytes() []byte {
	if w.data == nil {
		return []byte{}
	}
	return w.data
}

// PutU8 appends one unsigned byte.
func (w *Writer) PutU8(v uint8) { w.data = append(w.data, v) }

// PutI8 appends one signed byte.
func (w *Writer) PutI8(v int8) { w.PutU8(uint8(v)) }

// PutU16 appends a little-endian uint16.
func (w *Writer) PutU16(v uint16) {
	w.data = append(w.data, byte(v), byte(v>>8))
}

// PutI16 appends a little-endian int16.
func (w *Writer) PutI16(v int16) { w.PutU16(uint16(v)) }

// PutU32 appends a little-endian uint32.
func (w *Writer) PutU32(v uint32) {
	w.data = append(w.data, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// PutI32 appends a little-endian int32.
func (w *Writer) PutI32(v int32) { w.PutU32(uint32(v)) }

// PutU64 appends a little-endian uint64.
func (w *Writer) PutU64(v uint64) {
	for i := 0; i < 8; i++ {
		w.data = append(w.data, byte(v>>(8*i)))
	}
}

// PutI64 appends a little-endian int64.
func (w *Writer) PutI64(v int64) { w.PutU64(uint64(v)) }

// PutF32 appends a little-endian IEEE-754 single precision float.
func (w *Writer) PutF32(v float32) { w.PutU32(math.Float32bits(v)) }

// PutF64 appends a little-endian IEEE-754 double precision float.
func (w *Writer) PutF64(v float64) { w.PutU64(math.Float64bits(v)) }

// PutBool appends one byte: 1 for true, 0 for false.
func (w *Writer) PutBool(v bool) {
	if v {
		w.PutU8(1)
	} else {
		w.PutU8(0)
	}
}

// PutArray appends raw bytes verbatim.
func (w *Writer) PutArray(b []byte) {
	w.data = append(w.data, b...)
}

// PutString appends a string's raw UTF-8 bytes with no length prefix; the
// outer frame's Length field carries the boundary.
func (w *Writer) PutString(s string) {
	w.data = append(w.data, []byte(s)...)
}
