package input

import (
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestButtonEventFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := ButtonEventFromU8(0xEE); got != ButtonEventNone {
		t.Errorf("ButtonEventFromU8(0xEE) = %v, want ButtonEventNone", got)
	}
}

func TestButtonRoundTrip(t *testing.T) {
	want := Button{Button: 7, Event: ButtonEventPress}
	got, err := ParseButton(want.ToVec())
	if err != nil {
		t.Fatalf("ParseButton() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseButton(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestButtonWrongLength(t *testing.T) {
	if _, err := ParseButton(make([]byte, ButtonSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseButton(short) error = %v, want ErrWrongLength", err)
	}
}

func TestDirectionFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := DirectionFromU8(0x99); got != DirectionNone {
		t.Errorf("DirectionFromU8(0x99) = %v, want DirectionNone", got)
	}
}

func TestDirectionFromU8KnownValue(t *testing.T) {
	if got := DirectionFromU8(0x22); got != DirectionCN {
		t.Errorf("DirectionFromU8(0x22) = %v, want DirectionCN", got)
	}
}

func TestJoystickEventFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := JoystickEventFromU8(0x7F); got != JoystickEventNone {
		t.Errorf("JoystickEventFromU8(0x7F) = %v, want JoystickEventNone", got)
	}
}

func TestGestureFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := GestureFromU8(0x7F); got != GestureNone {
		t.Errorf("GestureFromU8(0x7F) = %v, want GestureNone", got)
	}
}

func TestJoystickRoundTrip(t *testing.T) {
	want := Joystick{
		Left:  JoystickBlock{X: -50, Y: 60, Direction: DirectionTL, Event: JoystickEventIn},
		Right: JoystickBlock{X: 10, Y: -20, Direction: DirectionBR, Event: JoystickEventStay},
	}
	got, err := ParseJoystick(want.ToVec())
	if err != nil {
		t.Fatalf("ParseJoystick() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseJoystick(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestJoystickWrongLength(t *testing.T) {
	if _, err := ParseJoystick(make([]byte, JoystickSize+1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseJoystick(wrong length) error = %v, want ErrWrongLength", err)
	}
}

// Button and Joystick are separate DataTypes on the wire, not
// length-dispatched variants of one DataType, so no distinct-size test
// is needed between them.
func TestButtonAndJoystickSizes(t *testing.T) {
	if ButtonSize != 3 {
		t.Errorf("ButtonSize = %d, want 3", ButtonSize)
	}
	if JoystickSize != 8 {
		t.Errorf("JoystickSize = %d, want 8", JoystickSize)
	}
}
