package light

import (
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestModeFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := ModeFromU8(0x00); got != ModeBodyNone {
		t.Errorf("ModeFromU8(0x00) = %#x, want ModeBodyNone", got)
	}
}

func TestModeFromU8KnownValue(t *testing.T) {
	if got := ModeFromU8(uint8(ModeBodyRainbow)); got != ModeBodyRainbow {
		t.Errorf("ModeFromU8(ModeBodyRainbow) = %#x, want ModeBodyRainbow", got)
	}
}

func TestManualRoundTrip(t *testing.T) {
	want := Manual{Flags: 0xBEEF, Brightness: 200}
	got, err := ParseManual(want.ToVec())
	if err != nil {
		t.Fatalf("ParseManual() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseManual(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestModePresetRoundTrip(t *testing.T) {
	want := ModePreset{Mode: ModeBodySunset, Interval: 1500}
	got, err := ParseModePreset(want.ToVec())
	if err != nil {
		t.Fatalf("ParseModePreset() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseModePreset(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestEventRoundTrip(t *testing.T) {
	want := Event{Event: 1, Interval: 250, Repeat: 5}
	got, err := ParseEvent(want.ToVec())
	if err != nil {
		t.Fatalf("ParseEvent() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseEvent(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestColorRoundTrip(t *testing.T) {
	want := Color{R: 1, G: 2, B: 3}
	got, err := ParseColor(want.ToVec())
	if err != nil {
		t.Fatalf("ParseColor() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseColor(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestEventColorRoundTrip(t *testing.T) {
	want := EventColor{Event: Event{Event: 9, Interval: 10, Repeat: 2}, Color: Color{R: 10, G: 20, B: 30}}
	got, err := ParseEventColor(want.ToVec())
	if err != nil {
		t.Fatalf("ParseEventColor() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseEventColor(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	if _, err := ParseManual(make([]byte, ManualSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseManual(short) error = %v, want ErrWrongLength", err)
	}
	if _, err := ParseEventColor(make([]byte, EventColorSize+1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseEventColor(long) error = %v, want ErrWrongLength", err)
	}
}
