package vibrator

import (
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestModeFromU8UnknownDefaultsToStop(t *testing.T) {
	if got := ModeFromU8(0x77); got != ModeStop {
		t.Errorf("ModeFromU8(0x77) = %v, want ModeStop", got)
	}
}

func TestRoundTrip(t *testing.T) {
	want := Vibrator{Mode: ModeContinually, On: 100, Off: 200, Time: 3000}
	got, err := Parse(want.ToVec())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != want {
		t.Errorf("Parse(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestParseWrongLength(t *testing.T) {
	if _, err := Parse(make([]byte, Size+3)); err != protocol.ErrWrongLength {
		t.Errorf("Parse(wrong length) error = %v, want ErrWrongLength", err)
	}
}
