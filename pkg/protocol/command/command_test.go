package command

import (
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/protocol/light"
)

func TestTypeFromU8KnownValue(t *testing.T) {
	if got := TypeFromU8(0x07); got != TypeFlightEvent {
		t.Errorf("TypeFromU8(0x07) = %#x, want TypeFlightEvent", got)
	}
}

func TestTypeFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := TypeFromU8(0x55); got != TypeNone {
		t.Errorf("TypeFromU8(0x55) = %#x, want TypeNone", got)
	}
}

func TestCommandRoundTrip(t *testing.T) {
	want := Command{CommandType: TypeModeControlFlight, Option: 3}
	got, err := Parse(want.ToVec())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got != want {
		t.Errorf("Parse(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestCommandWrongLength(t *testing.T) {
	if _, err := Parse(make([]byte, Size+1)); err != protocol.ErrWrongLength {
		t.Errorf("Parse(wrong length) error = %v, want ErrWrongLength", err)
	}
}

func TestLightEventRoundTrip(t *testing.T) {
	want := LightEvent{
		Command:    Command{CommandType: TypeFlightEvent, Option: uint8(FlightEventTakeOff)},
		LightEvent: light.Event{Event: 1, Interval: 500, Repeat: 3},
	}
	got, err := ParseLightEvent(want.ToVec())
	if err != nil {
		t.Fatalf("ParseLightEvent() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseLightEvent(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestLightEventColorRoundTrip(t *testing.T) {
	want := LightEventColor{
		Command: Command{CommandType: TypeBacklight, Option: 1},
		Event:   light.Event{Event: 2, Interval: 1000, Repeat: 0},
		Color:   light.Color{R: 255, G: 128, B: 0},
	}
	got, err := ParseLightEventColor(want.ToVec())
	if err != nil {
		t.Fatalf("ParseLightEventColor() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseLightEventColor(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestCompositeSizesAreAdditive(t *testing.T) {
	if LightEventSize != Size+light.EventSize {
		t.Errorf("LightEventSize = %d, want %d", LightEventSize, Size+light.EventSize)
	}
	if LightEventColorSize != Size+light.EventSize+light.ColorSize {
		t.Errorf("LightEventColorSize = %d, want %d", LightEventColorSize, Size+light.EventSize+light.ColorSize)
	}
}
