package system

import (
	"bytes"
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestPingRoundTrip(t *testing.T) {
	want := Ping{SystemTime: 1234567890}
	got, err := ParsePing(want.ToVec())
	if err != nil {
		t.Fatalf("ParsePing() error = %v", err)
	}
	if got != want {
		t.Errorf("ParsePing(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestAckRoundTrip(t *testing.T) {
	want := Ack{SystemTime: 42, DataType: protocol.DataPing, Crc16: 0xBEEF}
	got, err := ParseAck(want.ToVec())
	if err != nil {
		t.Fatalf("ParseAck() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseAck(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestErrorRoundTrip(t *testing.T) {
	want := Error{SystemTime: 100, ErrorFlagsForSensor: 0xFF00FF00, ErrorFlagsForState: 0x00FF00FF}
	got, err := ParseError(want.ToVec())
	if err != nil {
		t.Fatalf("ParseError() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseError(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestRequestRoundTrip(t *testing.T) {
	want := Request{DataType: protocol.DataInformation}
	got, err := ParseRequest(want.ToVec())
	if err != nil {
		t.Fatalf("ParseRequest() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseRequest(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestRequestOptionRoundTrip(t *testing.T) {
	want := RequestOption{DataType: protocol.DataMonitor, Option: 7}
	got, err := ParseRequestOption(want.ToVec())
	if err != nil {
		t.Fatalf("ParseRequestOption() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseRequestOption(ToVec()) = %+v, want %+v", got, want)
	}
}

// Request and RequestOption are the DataRequest DataType's two
// length-dispatched variants; their sizes must stay distinct.
func TestRequestAndRequestOptionSizesAreDistinct(t *testing.T) {
	if RequestSize == RequestOptionSize {
		t.Fatalf("RequestSize and RequestOptionSize must differ, both = %d", RequestSize)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	value := bytes.Repeat([]byte{0xAB}, AddressSize)
	want := Address{Value: value}
	got, err := ParseAddress(want.ToVec())
	if err != nil {
		t.Fatalf("ParseAddress() error = %v", err)
	}
	if !bytes.Equal(got.Value, want.Value) {
		t.Errorf("ParseAddress(ToVec()).Value = % X, want % X", got.Value, want.Value)
	}
}

func TestAdministratorRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0x5A}, AdministratorSize)
	want := Administrator{Key: key}
	got, err := ParseAdministrator(want.ToVec())
	if err != nil {
		t.Fatalf("ParseAdministrator() error = %v", err)
	}
	if !bytes.Equal(got.Key, want.Key) {
		t.Errorf("ParseAdministrator(ToVec()).Key = % X, want % X", got.Key, want.Key)
	}
}

func TestInformationRoundTrip(t *testing.T) {
	want := Information{
		ModeUpdate:  protocol.ModeUpdateReady,
		ModelNumber: protocol.ModelDrone4DroneP4,
		Version:     protocol.Version{Major: 1, Minor: 2, Build: 300},
		Year:        2024, Month: 6, Day: 15,
	}
	got, err := ParseInformation(want.ToVec())
	if err != nil {
		t.Fatalf("ParseInformation() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseInformation(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestInformationUnknownModeUpdateDefaultsToNone(t *testing.T) {
	payload := Information{ModeUpdate: protocol.ModeUpdateReady}.ToVec()
	payload[0] = 0xEE

	got, err := ParseInformation(payload)
	if err != nil {
		t.Fatalf("ParseInformation() error = %v", err)
	}
	if got.ModeUpdate != protocol.ModeUpdateNone {
		t.Errorf("ModeUpdate = %v, want ModeUpdateNone", got.ModeUpdate)
	}
}

func TestSystemInformationRoundTrip(t *testing.T) {
	want := SystemInformation{Crc32Bootloader: 0x11223344, Crc32Application: 0x55667788}
	got, err := ParseSystemInformation(want.ToVec())
	if err != nil {
		t.Fatalf("ParseSystemInformation() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseSystemInformation(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestUpdateLocationRoundTrip(t *testing.T) {
	want := UpdateLocation{IndexBlockNext: 42}
	got, err := ParseUpdateLocation(want.ToVec())
	if err != nil {
		t.Fatalf("ParseUpdateLocation() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseUpdateLocation(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	want := Update{IndexBlockNext: 7, Data: []byte{1, 2, 3, 4}}
	got, err := ParseUpdate(want.ToVec())
	if err != nil {
		t.Fatalf("ParseUpdate() error = %v", err)
	}
	if got.IndexBlockNext != want.IndexBlockNext || !bytes.Equal(got.Data, want.Data) {
		t.Errorf("ParseUpdate(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestUpdateRejectsHeaderOnlyPayload(t *testing.T) {
	if _, err := ParseUpdate(make([]byte, UpdateMinSize)); err != protocol.ErrWrongLength {
		t.Errorf("ParseUpdate(no block data) error = %v, want ErrWrongLength", err)
	}
}

func TestUpdateLengthMatchesToVec(t *testing.T) {
	u := Update{IndexBlockNext: 1, Data: []byte{9, 9, 9}}
	if got := u.Length(); got != len(u.ToVec()) {
		t.Errorf("Length() = %d, len(ToVec()) = %d", got, len(u.ToVec()))
	}
}
