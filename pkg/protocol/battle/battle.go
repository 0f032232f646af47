// Package battle holds the infrared combat-game payload family: a raw IR
// beacon code, optionally paired with a light animation and a follow-up
// command, grounded in the original Rust crate's protocol/battle.rs.
package battle

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/protocol/command"
	"github.com/byrobot-go/edrone/pkg/protocol/light"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// IrMessageSize is IrMessage's fixed wire size in bytes.
const IrMessageSize = 1

// IrMessage is a raw infrared beacon code, sent or received during a
// combat game (e.g. a "hit" code broadcast on impact).
type IrMessage struct {
	IrMessage uint8
}

// ParseIrMessage decodes an IrMessage from exactly IrMessageSize bytes.
func ParseIrMessage(data []byte) (IrMessage, error) {
	if len(data) != IrMessageSize {
		return IrMessage{}, protocol.ErrWrongLength
	}
	return IrMessage{IrMessage: data[0]}, nil
}

// ToVec serializes the IrMessage.
func (m IrMessage) ToVec() []byte { return []byte{m.IrMessage} }

// LightEventCommandSize is LightEventCommand's fixed wire size in bytes.
const LightEventCommandSize = light.EventSize + light.ColorSize + command.Size

// LightEventCommand plays a light animation in a given color, then issues
// a follow-up command (e.g. "flash red, then stop").
type LightEventCommand struct {
	Event   light.Event
	Color   light.Color
	Command command.Command
}

// ParseLightEventCommand decodes a LightEventCommand from exactly
// LightEventCommandSize bytes.
func ParseLightEventCommand(data []byte) (LightEventCommand, error) {
	if len(data) != LightEventCommandSize {
		return LightEventCommand{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return LightEventCommand{
		Event:   light.Event{Event: r.GetU8(), Interval: r.GetU16(), Repeat: r.GetU8()},
		Color:   light.Color{R: r.GetU8(), G: r.GetU8(), B: r.GetU8()},
		Command: command.Command{CommandType: command.TypeFromU8(r.GetU8()), Option: r.GetU8()},
	}, nil
}

// ToVec serializes the LightEventCommand.
func (c LightEventCommand) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(c.Event.Event)
	w.PutU16(c.Event.Interval)
	w.PutU8(c.Event.Repeat)
	w.PutU8(c.Color.R)
	w.PutU8(c.Color.G)
	w.PutU8(c.Color.B)
	w.PutU8(uint8(c.Command.CommandType))
	w.PutU8(c.Command.Option)
	return w.Bytes()
}

// IrMessageLightEventCommandSize is IrMessageLightEventCommand's fixed
// wire size in bytes.
const IrMessageLightEventCommandSize = IrMessageSize + LightEventCommandSize

// IrMessageLightEventCommand pairs an IR beacon code with the light
// animation and follow-up command it triggers.
type IrMessageLightEventCommand struct {
	IrMessage uint8
	Event     light.Event
	Color     light.Color
	Command   command.Command
}

// ParseIrMessageLightEventCommand decodes an IrMessageLightEventCommand
// from exactly IrMessageLightEventCommandSize bytes.
func ParseIrMessageLightEventCommand(data []byte) (IrMessageLightEventCommand, error) {
	if len(data) != IrMessageLightEventCommandSize {
		return IrMessageLightEventCommand{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return IrMessageLightEventCommand{
		IrMessage: r.GetU8(),
		Event:     light.Event{Event: r.GetU8(), Interval: r.GetU16(), Repeat: r.GetU8()},
		Color:     light.Color{R: r.GetU8(), G: r.GetU8(), B: r.GetU8()},
		Command:   command.Command{CommandType: command.TypeFromU8(r.GetU8()), Option: r.GetU8()},
	}, nil
}

// ToVec serializes the IrMessageLightEventCommand.
func (c IrMessageLightEventCommand) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(c.IrMessage)
	w.PutU8(c.Event.Event)
	w.PutU16(c.Event.Interval)
	w.PutU8(c.Event.Repeat)
	w.PutU8(c.Color.R)
	w.PutU8(c.Color.G)
	w.PutU8(c.Color.B)
	w.PutU8(uint8(c.Command.CommandType))
	w.PutU8(c.Command.Option)
	return w.Bytes()
}
