// Package light holds the body-light payload kinds: raw manual control,
// mode/event presets, and RGB color, grounded in the original Rust crate's
// protocol/light.rs.
package light

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// Mode names a light animation preset.
type Mode uint8

const (
	ModeBodyNone          Mode = 0x20
	ModeBodyManual        Mode = 0x21
	ModeBodyHold          Mode = 0x22
	ModeBodyFlicker       Mode = 0x23
	ModeBodyFlickerDouble Mode = 0x24
	ModeBodyDimming       Mode = 0x25
	ModeBodySunrise       Mode = 0x26
	ModeBodySunset        Mode = 0x27
	ModeBodyRainbow       Mode = 0x28
	ModeBodyRainbow2      Mode = 0x29
	ModeBodyWarning       Mode = 0x2F
)

var modeDefined = map[Mode]bool{
	ModeBodyNone: true, ModeBodyManual: true, ModeBodyHold: true, ModeBodyFlicker: true,
	ModeBodyFlickerDouble: true, ModeBodyDimming: true, ModeBodySunrise: true, ModeBodySunset: true,
	ModeBodyRainbow: true, ModeBodyRainbow2: true, ModeBodyWarning: true,
}

// ModeFromU8 performs the total enum conversion.
func ModeFromU8(b uint8) Mode {
	m := Mode(b)
	if modeDefined[m] {
		return m
	}
	return ModeBodyNone
}

// ManualSize is Manual's fixed wire size in bytes.
const ManualSize = 3

// Manual is a raw bitmask-plus-brightness light command.
type Manual struct {
	Flags      uint16
	Brightness uint8
}

// ParseManual decodes a Manual from exactly ManualSize bytes.
func ParseManual(data []byte) (Manual, error) {
	if len(data) != ManualSize {
		return Manual{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Manual{Flags: r.GetU16(), Brightness: r.GetU8()}, nil
}

// ToVec serializes the Manual.
func (m Manual) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU16(m.Flags)
	w.PutU8(m.Brightness)
	return w.Bytes()
}

// ModePresetSize is the ModePreset struct's fixed wire size in bytes.
const ModePresetSize = 3

// ModePreset selects a continuous animation mode with an interval, in
// milliseconds, between animation steps.
type ModePreset struct {
	Mode     Mode
	Interval uint16
}

// ParseModePreset decodes a ModePreset from exactly ModePresetSize bytes.
func ParseModePreset(data []byte) (ModePreset, error) {
	if len(data) != ModePresetSize {
		return ModePreset{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return ModePreset{Mode: ModeFromU8(r.GetU8()), Interval: r.GetU16()}, nil
}

// ToVec serializes the ModePreset.
func (m ModePreset) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(m.Mode))
	w.PutU16(m.Interval)
	return w.Bytes()
}

// EventSize is Event's fixed wire size in bytes.
const EventSize = 4

// Event is a one-shot or repeated light animation.
type Event struct {
	Event    uint8
	Interval uint16
	Repeat   uint8
}

// ParseEvent decodes an Event from exactly EventSize bytes.
func ParseEvent(data []byte) (Event, error) {
	if len(data) != EventSize {
		return Event{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Event{Event: r.GetU8(), Interval: r.GetU16(), Repeat: r.GetU8()}, nil
}

// ToVec serializes the Event.
func (e Event) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(e.Event)
	w.PutU16(e.Interval)
	w.PutU8(e.Repeat)
	return w.Bytes()
}

// ColorSize is Color's fixed wire size in bytes.
const ColorSize = 3

// Color is an RGB triplet.
type Color struct {
	R, G, B uint8
}

// ParseColor decodes a Color from exactly ColorSize bytes.
func ParseColor(data []byte) (Color, error) {
	if len(data) != ColorSize {
		return Color{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Color{R: r.GetU8(), G: r.GetU8(), B: r.GetU8()}, nil
}

// ToVec serializes the Color.
func (c Color) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(c.R)
	w.PutU8(c.G)
	w.PutU8(c.B)
	return w.Bytes()
}

// EventColorSize is EventColor's fixed wire size in bytes.
const EventColorSize = EventSize + ColorSize

// EventColor is a light Event paired with the color it should animate.
type EventColor struct {
	Event Event
	Color Color
}

// ParseEventColor decodes an EventColor from exactly EventColorSize bytes.
func ParseEventColor(data []byte) (EventColor, error) {
	if len(data) != EventColorSize {
		return EventColor{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return EventColor{
		Event: Event{Event: r.GetU8(), Interval: r.GetU16(), Repeat: r.GetU8()},
		Color: Color{R: r.GetU8(), G: r.GetU8(), B: r.GetU8()},
	}, nil
}

// ToVec serializes the EventColor.
func (e EventColor) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(e.Event.Event)
	w.PutU16(e.Event.Interval)
	w.PutU8(e.Event.Repeat)
	w.PutU8(e.Color.R)
	w.PutU8(e.Color.G)
	w.PutU8(e.Color.B)
	return w.Bytes()
}
