package control

import (
	"bytes"
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestQuad8RoundTrip(t *testing.T) {
	want := Quad8{Roll: -100, Pitch: 100, Yaw: -1, Throttle: 42}
	got, err := ParseQuad8(want.ToVec())
	if err != nil {
		t.Fatalf("ParseQuad8() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseQuad8(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestQuad8WrongLength(t *testing.T) {
	if _, err := ParseQuad8(make([]byte, Quad8Size+1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseQuad8(wrong length) error = %v, want ErrWrongLength", err)
	}
}

func TestQuad8AndRequestDataRoundTrip(t *testing.T) {
	want := Quad8AndRequestData{Roll: 1, Pitch: 2, Yaw: 3, Throttle: 4, DataType: protocol.DataPing}
	got, err := ParseQuad8AndRequestData(want.ToVec())
	if err != nil {
		t.Fatalf("ParseQuad8AndRequestData() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseQuad8AndRequestData(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestQuad8AndRequestDataUnknownDataTypeDefaultsToNone(t *testing.T) {
	payload := Quad8AndRequestData{DataType: protocol.DataPing}.ToVec()
	payload[4] = 0xFD // not a defined DataType

	got, err := ParseQuad8AndRequestData(payload)
	if err != nil {
		t.Fatalf("ParseQuad8AndRequestData() error = %v", err)
	}
	if got.DataType != protocol.DataNone {
		t.Errorf("DataType = %#x, want DataNone", got.DataType)
	}
}

func TestPosition16RoundTrip(t *testing.T) {
	want := Position16{PositionX: 100, PositionY: -200, PositionZ: 300, Velocity: 50, Heading: 90, RotationalVelocity: -10}
	got, err := ParsePosition16(want.ToVec())
	if err != nil {
		t.Fatalf("ParsePosition16() error = %v", err)
	}
	if got != want {
		t.Errorf("ParsePosition16(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	want := Position{X: 1.5, Y: -2.25, Z: 3.75, Velocity: 0.5, Heading: 180, RotationalVelocity: -90}
	got, err := ParsePosition(want.ToVec())
	if err != nil {
		t.Fatalf("ParsePosition() error = %v", err)
	}
	if got != want {
		t.Errorf("ParsePosition(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestSizesMatchToVecLength(t *testing.T) {
	if n := len(Quad8{}.ToVec()); n != Quad8Size {
		t.Errorf("len(Quad8{}.ToVec()) = %d, want %d", n, Quad8Size)
	}
	if n := len(Quad8AndRequestData{}.ToVec()); n != Quad8AndRequestDataSize {
		t.Errorf("len(Quad8AndRequestData{}.ToVec()) = %d, want %d", n, Quad8AndRequestDataSize)
	}
	if n := len(Position16{}.ToVec()); n != Position16Size {
		t.Errorf("len(Position16{}.ToVec()) = %d, want %d", n, Position16Size)
	}
	if n := len(Position{}.ToVec()); n != PositionSize {
		t.Errorf("len(Position{}.ToVec()) = %d, want %d", n, PositionSize)
	}
}

func TestParsePositionRejectsTruncatedPayload(t *testing.T) {
	full := Position{X: 1, Y: 2, Z: 3, Velocity: 4, Heading: 5, RotationalVelocity: 6}.ToVec()
	if _, err := ParsePosition(full[:len(full)-1]); err != protocol.ErrWrongLength {
		t.Errorf("ParsePosition(truncated) error = %v, want ErrWrongLength", err)
	}
}

func TestToVecBytesAreLittleEndian(t *testing.T) {
	p := Position16{PositionX: 0x0102}
	got := p.ToVec()
	want := []byte{0x02, 0x01}
	if !bytes.Equal(got[:2], want) {
		t.Errorf("Position16.ToVec()[:2] = % X, want % X (little-endian)", got[:2], want)
	}
}
