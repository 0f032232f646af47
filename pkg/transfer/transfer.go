// Package transfer builds outgoing frames: start marker, header, payload,
// and trailing CRC16, grounded in a usock-style WriteWithFrameID
// framing routine and the original Rust crate's transfer().
package transfer

import (
	"github.com/byrobot-go/edrone/pkg/crc16"
	"github.com/byrobot-go/edrone/pkg/protocol"
)

const (
	startByte1 = 0x0A
	startByte2 = 0x55
)

// Build assembles a complete frame from its header fields and payload
// bytes: start marker, header, payload, then a little-endian CRC16
// computed over the header and payload only.
func Build(dataType protocol.DataType, from, to protocol.DeviceType, payload []byte) []byte {
	header := protocol.Header{
		DataType: dataType,
		Length:   uint8(len(payload)),
		From:     from,
		To:       to,
	}
	return BuildHeader(header, payload)
}

// BuildHeader assembles a complete frame from a caller-held header value
// and payload bytes. header.Length is not trusted; the frame's length
// byte is always derived from len(payload).
func BuildHeader(header protocol.Header, payload []byte) []byte {
	header.Length = uint8(len(payload))
	headerBytes := header.ToVec()

	acc := crc16.Array(0, headerBytes)
	acc = crc16.Array(acc, payload)

	frame := make([]byte, 0, 2+len(headerBytes)+len(payload)+2)
	frame = append(frame, startByte1, startByte2)
	frame = append(frame, headerBytes...)
	frame = append(frame, payload...)
	frame = append(frame, byte(acc), byte(acc>>8))
	return frame
}
