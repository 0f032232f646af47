package communication

import (
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestPairingRoundTrip(t *testing.T) {
	want := Pairing{
		Address:  [3]uint16{0x1111, 0x2222, 0x3333},
		Scramble: 0x42,
		Channel:  [4]uint8{1, 2, 3, 4},
	}
	got, err := ParsePairing(want.ToVec())
	if err != nil {
		t.Fatalf("ParsePairing() error = %v", err)
	}
	if got != want {
		t.Errorf("ParsePairing(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestPairingWrongLength(t *testing.T) {
	if _, err := ParsePairing(make([]byte, PairingSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParsePairing(short) error = %v, want ErrWrongLength", err)
	}
}

func TestRssiRoundTrip(t *testing.T) {
	want := Rssi{Rssi: -72}
	got, err := ParseRssi(want.ToVec())
	if err != nil {
		t.Fatalf("ParseRssi() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseRssi(ToVec()) = %+v, want %+v", got, want)
	}
}
