// Package input holds the controller's physical input payload kinds —
// button presses and dual-stick joystick state — grounded in the original
// Rust crate's protocol/button.rs and protocol/joystick.rs.
package input

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// ButtonEvent names a button's transition.
type ButtonEvent uint8

const (
	ButtonEventNone              ButtonEvent = 0
	ButtonEventDown              ButtonEvent = 1
	ButtonEventPress             ButtonEvent = 2
	ButtonEventUp                ButtonEvent = 3
	ButtonEventEndContinuePress  ButtonEvent = 4
)

var buttonEventDefined = map[ButtonEvent]bool{
	ButtonEventNone: true, ButtonEventDown: true, ButtonEventPress: true, ButtonEventUp: true, ButtonEventEndContinuePress: true,
}

// ButtonEventFromU8 performs the total enum conversion.
func ButtonEventFromU8(b uint8) ButtonEvent {
	e := ButtonEvent(b)
	if buttonEventDefined[e] {
		return e
	}
	return ButtonEventNone
}

// ButtonSize is Button's fixed wire size in bytes.
const ButtonSize = 3

// Button reports a controller button's identity and transition.
type Button struct {
	Button uint16
	Event  ButtonEvent
}

// ParseButton decodes a Button from exactly ButtonSize bytes.
func ParseButton(data []byte) (Button, error) {
	if len(data) != ButtonSize {
		return Button{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Button{Button: r.GetU16(), Event: ButtonEventFromU8(r.GetU8())}, nil
}

// ToVec serializes the Button.
func (b Button) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU16(b.Button)
	w.PutU8(uint8(b.Event))
	return w.Bytes()
}

// Direction names which region of a joystick's travel the stick
// currently occupies, bitwise-combining a vertical and horizontal zone.
type Direction uint8

const (
	DirectionNone Direction = 0x00
	DirectionVT   Direction = 0x10
	DirectionVM   Direction = 0x20
	DirectionVB   Direction = 0x40
	DirectionHL   Direction = 0x01
	DirectionHM   Direction = 0x02
	DirectionHR   Direction = 0x04
	DirectionTL   Direction = 0x11
	DirectionTM   Direction = 0x12
	DirectionTR   Direction = 0x14
	DirectionML   Direction = 0x21
	DirectionCN   Direction = 0x22
	DirectionMR   Direction = 0x24
	DirectionBL   Direction = 0x41
	DirectionBM   Direction = 0x42
	DirectionBR   Direction = 0x44
)

var directionDefined = map[Direction]bool{
	DirectionNone: true, DirectionVT: true, DirectionVM: true, DirectionVB: true,
	DirectionHL: true, DirectionHM: true, DirectionHR: true,
	DirectionTL: true, DirectionTM: true, DirectionTR: true,
	DirectionML: true, DirectionCN: true, DirectionMR: true,
	DirectionBL: true, DirectionBM: true, DirectionBR: true,
}

// DirectionFromU8 performs the total enum conversion.
func DirectionFromU8(b uint8) Direction {
	d := Direction(b)
	if directionDefined[d] {
		return d
	}
	return DirectionNone
}

// JoystickEvent names a stick's zone-transition event.
type JoystickEvent uint8

const (
	JoystickEventNone        JoystickEvent = 0x00
	JoystickEventIn          JoystickEvent = 0x01
	JoystickEventStay        JoystickEvent = 0x02
	JoystickEventOut         JoystickEvent = 0x03
	JoystickEventCalibration JoystickEvent = 0x04
)

var joystickEventDefined = map[JoystickEvent]bool{
	JoystickEventNone: true, JoystickEventIn: true, JoystickEventStay: true, JoystickEventOut: true, JoystickEventCalibration: true,
}

// JoystickEventFromU8 performs the total enum conversion.
func JoystickEventFromU8(b uint8) JoystickEvent {
	e := JoystickEvent(b)
	if joystickEventDefined[e] {
		return e
	}
	return JoystickEventNone
}

// Gesture names a recognized multi-step stick gesture.
type Gesture uint8

const (
	GestureNone               Gesture = 0x00
	GestureUpDownUpDown       Gesture = 0x01
	GestureLeftRightLeftRight Gesture = 0x02
	GestureRightLeftRightLeft Gesture = 0x03
	GestureTurnLeft           Gesture = 0x04
	GestureTurnRight          Gesture = 0x05
)

var gestureDefined = map[Gesture]bool{
	GestureNone: true, GestureUpDownUpDown: true, GestureLeftRightLeftRight: true,
	GestureRightLeftRightLeft: true, GestureTurnLeft: true, GestureTurnRight: true,
}

// GestureFromU8 performs the total enum conversion.
func GestureFromU8(b uint8) Gesture {
	g := Gesture(b)
	if gestureDefined[g] {
		return g
	}
	return GestureNone
}

// JoystickBlockSize is one JoystickBlock's fixed wire size in bytes.
const JoystickBlockSize = 4

// JoystickBlock is one physical stick's raw axis readings and derived
// zone/event classification.
type JoystickBlock struct {
	X         int8
	Y         int8
	Direction Direction
	Event     JoystickEvent
}

func parseJoystickBlock(r *wire.Reader) JoystickBlock {
	return JoystickBlock{
		X:         r.GetI8(),
		Y:         r.GetI8(),
		Direction: DirectionFromU8(r.GetU8()),
		Event:     JoystickEventFromU8(r.GetU8()),
	}
}

func (b JoystickBlock) writeTo(w *wire.Writer) {
	w.PutI8(b.X)
	w.PutI8(b.Y)
	w.PutU8(uint8(b.Direction))
	w.PutU8(uint8(b.Event))
}

// JoystickSize is Joystick's fixed wire size in bytes.
const JoystickSize = JoystickBlockSize * 2

// Joystick carries both controller sticks' state in one frame.
type Joystick struct {
	Left  JoystickBlock
	Right JoystickBlock
}

// ParseJoystick decodes a Joystick from exactly JoystickSize bytes.
func ParseJoystick(data []byte) (Joystick, error) {
	if len(data) != JoystickSize {
		return Joystick{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Joystick{Left: parseJoystickBlock(r), Right: parseJoystickBlock(r)}, nil
}

// ToVec serializes the Joystick.
func (j Joystick) ToVec() []byte {
	w := wire.NewWriter()
	j.Left.writeTo(w)
	j.Right.writeTo(w)
	return w.Bytes()
}
