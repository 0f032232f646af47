package battle

import (
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/protocol/command"
	"github.com/byrobot-go/edrone/pkg/protocol/light"
)

func TestIrMessageRoundTrip(t *testing.T) {
	want := IrMessage{IrMessage: 7}
	got, err := ParseIrMessage(want.ToVec())
	if err != nil {
		t.Fatalf("ParseIrMessage() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseIrMessage(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestLightEventCommandRoundTrip(t *testing.T) {
	want := LightEventCommand{
		Event:   light.Event{Event: 1, Interval: 200, Repeat: 2},
		Color:   light.Color{R: 255, G: 0, B: 0},
		Command: command.Command{CommandType: command.TypeStop, Option: 0},
	}
	got, err := ParseLightEventCommand(want.ToVec())
	if err != nil {
		t.Fatalf("ParseLightEventCommand() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseLightEventCommand(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestIrMessageLightEventCommandRoundTrip(t *testing.T) {
	want := IrMessageLightEventCommand{
		IrMessage: 3,
		Event:     light.Event{Event: 1, Interval: 100, Repeat: 1},
		Color:     light.Color{R: 0, G: 255, B: 0},
		Command:   command.Command{CommandType: command.TypeFlightEvent, Option: uint8(command.FlightEventStop)},
	}
	got, err := ParseIrMessageLightEventCommand(want.ToVec())
	if err != nil {
		t.Fatalf("ParseIrMessageLightEventCommand() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseIrMessageLightEventCommand(ToVec()) = %+v, want %+v", got, want)
	}
}

// IrMessage, LightEventCommand, and IrMessageLightEventCommand are the
// DataBattle DataType's three length-dispatched variants; their sizes
// must stay distinct.
func TestBattleVariantSizesAreDistinct(t *testing.T) {
	sizes := []int{IrMessageSize, LightEventCommandSize, IrMessageLightEventCommandSize}
	seen := map[int]bool{}
	for _, s := range sizes {
		if seen[s] {
			t.Fatalf("battle variant sizes not distinct: %v", sizes)
		}
		seen[s] = true
	}
}

func TestLightEventCommandWrongLength(t *testing.T) {
	if _, err := ParseLightEventCommand(make([]byte, LightEventCommandSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseLightEventCommand(short) error = %v, want ErrWrongLength", err)
	}
}
