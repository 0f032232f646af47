// Package command holds the generic Command payload (command type + option
// byte) and its light-event composites, grounded in the original Rust
// crate's protocol/command.rs.
package command

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/protocol/light"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// Type names a command the drone/controller should act on.
type Type uint8

const (
	TypeNone Type = 0x00
	TypeStop Type = 0x01

	TypeModeControlFlight Type = 0x02
	TypeHeadless          Type = 0x03
	TypeControlSpeed      Type = 0x04

	TypeClearBias Type = 0x05
	TypeClearTrim Type = 0x06

	TypeFlightEvent Type = 0x07

	TypeSetDefault        Type = 0x08
	TypeBacklight         Type = 0x09
	TypeModeController    Type = 0x0A
	TypeLink              Type = 0x0B
	TypeClearMagnetometer Type = 0x0C

	TypeClearCounter      Type = 0xA0
	TypeJumpToBootloader  Type = 0xA1
	TypeJumpToApplication Type = 0xA2

	TypeNavigationTargetClear  Type = 0xE0
	TypeNavigationStart        Type = 0xE1
	TypeNavigationPause        Type = 0xE2
	TypeNavigationRestart      Type = 0xE3
	TypeNavigationStop         Type = 0xE4
	TypeNavigationNext         Type = 0xE5
	TypeNavigationReturnToHome Type = 0xE6

	TypeGpsRtkBase  Type = 0xEA
	TypeGpsRtkRover Type = 0xEB

	TypeTestLock Type = 0xF0
)

var typeDefined = map[Type]bool{
	TypeNone: true, TypeStop: true,
	TypeModeControlFlight: true, TypeHeadless: true, TypeControlSpeed: true,
	TypeClearBias: true, TypeClearTrim: true,
	TypeFlightEvent: true,
	TypeSetDefault: true, TypeBacklight: true, TypeModeController: true, TypeLink: true, TypeClearMagnetometer: true,
	TypeClearCounter: true, TypeJumpToBootloader: true, TypeJumpToApplication: true,
	TypeNavigationTargetClear: true, TypeNavigationStart: true, TypeNavigationPause: true,
	TypeNavigationRestart: true, TypeNavigationStop: true, TypeNavigationNext: true, TypeNavigationReturnToHome: true,
	TypeGpsRtkBase: true, TypeGpsRtkRover: true,
	TypeTestLock: true,
}

// TypeFromU8 performs the total enum conversion.
func TypeFromU8(b uint8) Type {
	t := Type(b)
	if typeDefined[t] {
		return t
	}
	return TypeNone
}

// FlightEvent names the value sent in Command.Option when Type is
// TypeFlightEvent.
type FlightEvent uint8

const (
	FlightEventNone FlightEvent = 0x00

	FlightEventStop FlightEvent = 0x10

	FlightEventTakeOff FlightEvent = 0x11
	FlightEventLanding FlightEvent = 0x12

	FlightEventReverse FlightEvent = 0x13

	FlightEventFlipFront FlightEvent = 0x14
	FlightEventFlipRear  FlightEvent = 0x15
	FlightEventFlipLeft  FlightEvent = 0x16
	FlightEventFlipRight FlightEvent = 0x17
)

// Size is Command's fixed wire size in bytes.
const Size = 2

// Command is a command-type/option pair.
type Command struct {
	CommandType Type
	Option      uint8
}

// Parse decodes a Command from exactly Size bytes.
func Parse(data []byte) (Command, error) {
	if len(data) != Size {
		return Command{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Command{
		CommandType: TypeFromU8(r.GetU8()),
		Option:      r.GetU8(),
	}, nil
}

// ToVec serializes the Command.
func (c Command) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(c.CommandType))
	w.PutU8(c.Option)
	return w.Bytes()
}

// LightEventSize is CommandLightEvent's fixed wire size in bytes.
const LightEventSize = Size + light.EventSize

// LightEvent bundles a Command with a light.Event, so a single frame can
// both command the drone and drive its body light.
type LightEvent struct {
	Command    Command
	LightEvent light.Event
}

// ParseLightEvent decodes a LightEvent from exactly LightEventSize bytes.
func ParseLightEvent(data []byte) (LightEvent, error) {
	if len(data) != LightEventSize {
		return LightEvent{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return LightEvent{
		Command: Command{
			CommandType: TypeFromU8(r.GetU8()),
			Option:      r.GetU8(),
		},
		LightEvent: light.Event{
			Event:    r.GetU8(),
			Interval: r.GetU16(),
			Repeat:   r.GetU8(),
		},
	}, nil
}

// ToVec serializes the LightEvent.
func (c LightEvent) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(c.Command.CommandType))
	w.PutU8(c.Command.Option)
	w.PutU8(c.LightEvent.Event)
	w.PutU16(c.LightEvent.Interval)
	w.PutU8(c.LightEvent.Repeat)
	return w.Bytes()
}

// LightEventColorSize is CommandLightEventColor's fixed wire size in bytes.
const LightEventColorSize = Size + light.EventSize + light.ColorSize

// LightEventColor bundles a Command with a light event and an RGB color.
type LightEventColor struct {
	Command Command
	Event   light.Event
	Color   light.Color
}

// ParseLightEventColor decodes a LightEventColor from exactly
// LightEventColorSize bytes.
func ParseLightEventColor(data []byte) (LightEventColor, error) {
	if len(data) != LightEventColorSize {
		return LightEventColor{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return LightEventColor{
		Command: Command{
			CommandType: TypeFromU8(r.GetU8()),
			Option:      r.GetU8(),
		},
		Event: light.Event{
			Event:    r.GetU8(),
			Interval: r.GetU16(),
			Repeat:   r.GetU8(),
		},
		Color: light.Color{
			R: r.GetU8(),
			G: r.GetU8(),
			B: r.GetU8(),
		},
	}, nil
}

// ToVec serializes the LightEventColor.
func (c LightEventColor) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(c.Command.CommandType))
	w.PutU8(c.Command.Option)
	w.PutU8(c.Event.Event)
	w.PutU16(c.Event.Interval)
	w.PutU8(c.Event.Repeat)
	w.PutU8(c.Color.R)
	w.PutU8(c.Color.G)
	w.PutU8(c.Color.B)
	return w.Bytes()
}
