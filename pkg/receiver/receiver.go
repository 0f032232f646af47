// Package receiver implements the byte-stream framing state machine:
// Ready/Receiving/Loaded states (with Start/Header/Data/End sections
// inside Receiving) driven one byte at a time, with the
// inter-byte stall and connection-liveness timers. Grounded in a
// usock-style processByte state machine and the original Rust
// crate's receiver.rs, generalized to the e-drone frame layout
// (0x0A 0x55 | DataType Length From To | payload | crc16).
package receiver

import (
	"time"

	"github.com/byrobot-go/edrone/pkg/crc16"
	"github.com/byrobot-go/edrone/pkg/protocol"
)

// State names the Receiver's top-level phase.
type State int

const (
	StateReady State = iota
	StateReceiving
	StateLoaded
)

// Section names the sub-phase of Receiving.
type Section int

const (
	SectionStart Section = iota
	SectionHeader
	SectionData
	SectionEnd
)

const (
	startByte1 = 0x0A
	startByte2 = 0x55

	stallTimeout    = 30 * time.Millisecond
	livenessTimeout = 1200 * time.Millisecond

	queueCapacityHint = 4096
)

// Receiver consumes a raw byte stream and emits validated frames. It is
// not safe for concurrent use from more than one goroutine; callers that
// share a Receiver across goroutines must hold their own mutex around it.
type Receiver struct {
	state   State
	section Section
	index   int

	dataType protocol.DataType
	length   uint8
	from     protocol.DeviceType
	to       protocol.DeviceType

	payload []byte
	crcAcc  uint16
	crcLow  uint8
	crcExp  uint16

	rawFrame []byte

	queue []byte

	timeReceiveStart    time.Time
	timeReceiveComplete time.Time
	connected           bool
}

// New returns a Receiver in state Ready.
func New() *Receiver {
	return &Receiver{queue: make([]byte, 0, queueCapacityHint)}
}

// Push enqueues one byte for later processing by Check.
func (r *Receiver) Push(b byte) { r.queue = append(r.queue, b) }

// PushSlice enqueues a run of bytes for later processing by Check.
func (r *Receiver) PushSlice(bytes []byte) { r.queue = append(r.queue, bytes...) }

// State returns the Receiver's current top-level state.
func (r *Receiver) State() State { return r.state }

// IsConnected reports the liveness flag: set when a frame is loaded, and
// cleared by Check once more than livenessTimeout has passed since the
// start of the most recent frame.
func (r *Receiver) IsConnected() bool { return r.connected }

// Header returns the header of the most recently loaded frame.
func (r *Receiver) Header() protocol.Header {
	return protocol.Header{DataType: r.dataType, Length: r.length, From: r.from, To: r.to}
}

// Payload returns the payload bytes of the most recently loaded frame.
func (r *Receiver) Payload() []byte { return r.payload }

// VecDataAll returns the complete raw frame bytes (start marker through
// CRC) of the most recently loaded frame, for pass-through or logging.
func (r *Receiver) VecDataAll() []byte { return r.rawFrame }

// Clear resets the Receiver to Ready, discarding any loaded frame.
func (r *Receiver) Clear() {
	r.state = StateReady
	r.section = SectionStart
	r.index = 0
}

// ClearAll resets the Receiver's state, buffers, and connection flag.
func (r *Receiver) ClearAll() {
	r.Clear()
	r.payload = nil
	r.rawFrame = nil
	r.queue = r.queue[:0]
	r.connected = false
}

// Check drains the pending byte queue, stepping the state machine until
// the queue is empty or a frame reaches Loaded. It returns true if a
// frame is ready to be read via Header/Payload.
func (r *Receiver) Check() bool {
	if !r.timeReceiveStart.IsZero() && time.Since(r.timeReceiveStart) > livenessTimeout {
		r.connected = false
	}

	for len(r.queue) > 0 && r.state != StateLoaded {
		b := r.queue[0]
		r.queue = r.queue[1:]
		r.Call(b)
	}
	return r.state == StateLoaded
}

// Call steps the state machine by exactly one byte, applying the 30 ms
// inter-byte stall check first. It is exported for deterministic,
// single-byte-at-a-time testing.
func (r *Receiver) Call(b byte) {
	if r.state == StateReceiving && time.Since(r.timeReceiveStart) > stallTimeout {
		r.Clear()
	}
	r.step(b)
}

func (r *Receiver) fail() {
	r.Clear()
}

func (r *Receiver) step(b byte) {
	switch r.section {
	case SectionStart:
		r.stepStart(b)
	case SectionHeader:
		r.stepHeader(b)
	case SectionData:
		r.stepData(b)
	case SectionEnd:
		r.stepEnd(b)
	}
}

func (r *Receiver) stepStart(b byte) {
	switch r.index {
	case 0:
		if b != startByte1 {
			r.fail()
			return
		}
		r.timeReceiveStart = time.Now()
		r.state = StateReceiving
		r.index = 1
	case 1:
		if b != startByte2 {
			r.fail()
			return
		}
		r.section = SectionHeader
		r.index = 0
	}
}

func (r *Receiver) stepHeader(b byte) {
	switch r.index {
	case 0:
		if !protocol.DataType(b).IsDefined() {
			r.fail()
			return
		}
		r.dataType = protocol.DataTypeFromU8(b)
		r.crcAcc = crc16.Byte(0, b)
		r.index = 1
	case 1:
		r.length = b
		r.crcAcc = crc16.Byte(r.crcAcc, b)
		r.index = 2
	case 2:
		if !protocol.DeviceType(b).IsDefined() {
			r.fail()
			return
		}
		r.from = protocol.DeviceTypeFromU8(b)
		r.crcAcc = crc16.Byte(r.crcAcc, b)
		r.index = 3
	case 3:
		if !protocol.DeviceType(b).IsDefined() {
			r.fail()
			return
		}
		r.to = protocol.DeviceTypeFromU8(b)
		r.crcAcc = crc16.Byte(r.crcAcc, b)
		r.payload = r.payload[:0]
		if r.length == 0 {
			r.section = SectionEnd
		} else {
			r.section = SectionData
		}
		r.index = 0
	}
}

func (r *Receiver) stepData(b byte) {
	r.payload = append(r.payload, b)
	r.crcAcc = crc16.Byte(r.crcAcc, b)
	r.index++
	if r.index >= int(r.length) {
		r.section = SectionEnd
		r.index = 0
	}
}

func (r *Receiver) stepEnd(b byte) {
	switch r.index {
	case 0:
		r.crcLow = b
		r.index = 1
	case 1:
		r.crcExp = uint16(r.crcLow) | uint16(b)<<8
		if r.crcExp != r.crcAcc {
			r.fail()
			return
		}
		r.timeReceiveComplete = time.Now()
		r.state = StateLoaded
		r.connected = true

		header := protocol.Header{DataType: r.dataType, Length: r.length, From: r.from, To: r.to}
		raw := make([]byte, 0, 2+4+len(r.payload)+2)
		raw = append(raw, startByte1, startByte2)
		raw = append(raw, header.ToVec()...)
		raw = append(raw, r.payload...)
		raw = append(raw, r.crcLow, byte(r.crcExp>>8))
		r.rawFrame = raw
	}
}
