package receiver

import (
	"testing"
	"time"

	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/transfer"
)

func pingFrame() []byte {
	payload := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	return transfer.Build(protocol.DataPing, protocol.DeviceType(0x70), protocol.DeviceType(0x10), payload)
}

func TestReceiverLoadsValidFrame(t *testing.T) {
	r := New()
	r.PushSlice(pingFrame())
	if !r.Check() {
		t.Fatalf("expected Loaded after a valid frame")
	}
	h := r.Header()
	if h.DataType != protocol.DataPing || h.Length != 8 {
		t.Fatalf("header = %+v, want DataType=Ping Length=8", h)
	}
	want := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	got := r.Payload()
	if len(got) != len(want) {
		t.Fatalf("payload = % X, want % X", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("payload = % X, want % X", got, want)
		}
	}
	if !r.IsConnected() {
		t.Fatalf("expected connected after Loaded")
	}
}

func TestReceiverRejectsCorruptCRC(t *testing.T) {
	r := New()
	frame := pingFrame()
	frame[len(frame)-1] ^= 0xFF
	r.PushSlice(frame)
	if r.Check() {
		t.Fatalf("expected no Loaded frame when CRC is corrupted")
	}
	if r.State() != StateReady {
		t.Fatalf("state = %v, want Ready after CRC rejection", r.State())
	}
}

func TestReceiverResyncsPastGarbage(t *testing.T) {
	r := New()
	garbage := []byte{0xFF, 0x00, 0x0A, 0x01, 0x02}
	r.PushSlice(garbage)
	r.PushSlice(pingFrame())
	if !r.Check() {
		t.Fatalf("expected Loaded after garbage followed by a valid frame")
	}
}

func TestReceiverClearThenNextFrame(t *testing.T) {
	r := New()
	r.PushSlice(pingFrame())
	if !r.Check() {
		t.Fatalf("expected Loaded for first frame")
	}
	r.Clear()
	r.PushSlice(pingFrame())
	if !r.Check() {
		t.Fatalf("expected Loaded for second frame after Clear")
	}
}

func TestReceiverStallResetsPartialFrame(t *testing.T) {
	r := New()
	frame := pingFrame()
	for _, b := range frame[:4] {
		r.Call(b)
	}
	if r.State() != StateReceiving {
		t.Fatalf("state = %v, want Receiving mid-frame", r.State())
	}
	time.Sleep(35 * time.Millisecond)
	r.Call(frame[4])
	if r.State() != StateReady {
		t.Fatalf("state = %v, want Ready after stall", r.State())
	}
}
