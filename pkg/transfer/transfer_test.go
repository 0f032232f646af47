package transfer

import (
	"bytes"
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestBuildPingRoundTrip(t *testing.T) {
	payload := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	got := Build(protocol.DataType(0x01), protocol.DeviceType(0x70), protocol.DeviceType(0x10), payload)

	want := []byte{
		0x0A, 0x55,
		0x01, 0x08, 0x70, 0x10,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	if !bytes.Equal(got[:len(want)], want) {
		t.Fatalf("frame prefix = % X, want % X", got[:len(want)], want)
	}
	if len(got) != len(want)+2 {
		t.Fatalf("frame length = %d, want %d", len(got), len(want)+2)
	}
}

func TestBuildHeaderIgnoresStaleLength(t *testing.T) {
	header := protocol.Header{DataType: protocol.DataType(0x01), Length: 99, From: protocol.DeviceType(0x70), To: protocol.DeviceType(0x10)}
	frame := BuildHeader(header, []byte{0x01, 0x02})
	if frame[3] != 2 {
		t.Fatalf("length byte = %d, want 2", frame[3])
	}
}
