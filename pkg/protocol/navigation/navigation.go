// Package navigation holds the autonomous-flight waypoint and telemetry
// payload family, grounded in the original Rust crate's
// protocol/navigation.rs. Sizes follow the wire contract; where the
// original source's declared size() constant disagreed with the sum of
// its own fields, the computed sum is used instead.
package navigation

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// ActionMode names the action a waypoint asks the drone to perform.
type ActionMode uint8

const (
	ActionNone    ActionMode = 0x00
	ActionWait    ActionMode = 0x01
	ActionTakeoff ActionMode = 0x02
	ActionMove    ActionMode = 0x03
	ActionLanding ActionMode = 0x04
)

var actionModeDefined = map[ActionMode]bool{
	ActionNone: true, ActionWait: true, ActionTakeoff: true, ActionMove: true, ActionLanding: true,
}

// ActionModeFromU8 performs the total enum conversion.
func ActionModeFromU8(b uint8) ActionMode {
	a := ActionMode(b)
	if actionModeDefined[a] {
		return a
	}
	return ActionNone
}

// NavigationMode reports the autopilot's current flight-plan state.
type NavigationMode uint32

const (
	NavigationNone   NavigationMode = 0x00
	NavigationReady  NavigationMode = 0x01
	NavigationStart  NavigationMode = 0x02
	NavigationCruise NavigationMode = 0x03
	NavigationPause  NavigationMode = 0x04
	NavigationFinish NavigationMode = 0x05
	NavigationError  NavigationMode = 0x06
)

var navigationModeDefined = map[NavigationMode]bool{
	NavigationNone: true, NavigationReady: true, NavigationStart: true, NavigationCruise: true,
	NavigationPause: true, NavigationFinish: true, NavigationError: true,
}

// NavigationModeFromU32 performs the total enum conversion.
func NavigationModeFromU32(v uint32) NavigationMode {
	n := NavigationMode(v)
	if navigationModeDefined[n] {
		return n
	}
	return NavigationNone
}

// TargetMoveSize is TargetMove's fixed wire size in bytes.
const TargetMoveSize = 25

// TargetMove commands the autopilot to a single GPS waypoint.
type TargetMove struct {
	Index      uint8
	ModeOption uint8
	Time       uint16
	Latitude   float64
	Longitude  float64
	Altitude   float32
	Speed      uint8
}

// ParseTargetMove decodes a TargetMove from exactly TargetMoveSize bytes.
func ParseTargetMove(data []byte) (TargetMove, error) {
	if len(data) != TargetMoveSize {
		return TargetMove{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return TargetMove{
		Index:      r.GetU8(),
		ModeOption: r.GetU8(),
		Time:       r.GetU16(),
		Latitude:   r.GetF64(),
		Longitude:  r.GetF64(),
		Altitude:   r.GetF32(),
		Speed:      r.GetU8(),
	}, nil
}

// ToVec serializes the TargetMove.
func (t TargetMove) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(t.Index)
	w.PutU8(t.ModeOption)
	w.PutU16(t.Time)
	w.PutF64(t.Latitude)
	w.PutF64(t.Longitude)
	w.PutF32(t.Altitude)
	w.PutU8(t.Speed)
	return w.Bytes()
}

// TargetActionSize is TargetAction's fixed wire size in bytes.
const TargetActionSize = 7

// TargetAction commands the autopilot to perform a non-positional step
// (wait, take off, land) within a time budget.
type TargetAction struct {
	Index  uint8
	Action ActionMode
	Option uint8
	Time   uint32
}

// ParseTargetAction decodes a TargetAction from exactly TargetActionSize
// bytes.
func ParseTargetAction(data []byte) (TargetAction, error) {
	if len(data) != TargetActionSize {
		return TargetAction{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return TargetAction{
		Index:  r.GetU8(),
		Action: ActionModeFromU8(r.GetU8()),
		Option: r.GetU8(),
		Time:   r.GetU32(),
	}, nil
}

// ToVec serializes the TargetAction.
func (t TargetAction) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(t.Index)
	w.PutU8(uint8(t.Action))
	w.PutU8(t.Option)
	w.PutU32(t.Time)
	return w.Bytes()
}

// LocationSize is Location's fixed wire size in bytes.
const LocationSize = 22

// Location is the autopilot's current GPS fix.
type Location struct {
	FixType  uint8
	NumSv    uint8
	Latitude float64
	Longitude float64
	Altitude float32
}

// ParseLocation decodes a Location from exactly LocationSize bytes.
func ParseLocation(data []byte) (Location, error) {
	if len(data) != LocationSize {
		return Location{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Location{
		FixType:   r.GetU8(),
		NumSv:     r.GetU8(),
		Latitude:  r.GetF64(),
		Longitude: r.GetF64(),
		Altitude:  r.GetF32(),
	}, nil
}

// ToVec serializes the Location.
func (l Location) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(l.FixType)
	w.PutU8(l.NumSv)
	w.PutF64(l.Latitude)
	w.PutF64(l.Longitude)
	w.PutF32(l.Altitude)
	return w.Bytes()
}

// MonitorSize is Monitor's fixed wire size in bytes.
const MonitorSize = 20

// Monitor reports the autopilot's progress along the active flight plan.
type Monitor struct {
	ModeNavigation    NavigationMode
	DistanceToTarget  float32
	Velocity          float32
	Heading           float32
	TimeRemain        uint32
}

// ParseMonitor decodes a Monitor from exactly MonitorSize bytes.
func ParseMonitor(data []byte) (Monitor, error) {
	if len(data) != MonitorSize {
		return Monitor{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Monitor{
		ModeNavigation:   NavigationModeFromU32(r.GetU32()),
		DistanceToTarget: r.GetF32(),
		Velocity:         r.GetF32(),
		Heading:          r.GetF32(),
		TimeRemain:       r.GetU32(),
	}, nil
}

// ToVec serializes the Monitor.
func (m Monitor) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU32(uint32(m.ModeNavigation))
	w.PutF32(m.DistanceToTarget)
	w.PutF32(m.Velocity)
	w.PutF32(m.Heading)
	w.PutU32(m.TimeRemain)
	return w.Bytes()
}

// HeadingSize is Heading's fixed wire size in bytes.
const HeadingSize = 16

// Heading reports the autopilot's heading-control loop state.
type Heading struct {
	Heading         float32
	HeadingPath     float32
	HeadingToTarget float32
	HeadingError    float32
}

// ParseHeading decodes a Heading from exactly HeadingSize bytes.
func ParseHeading(data []byte) (Heading, error) {
	if len(data) != HeadingSize {
		return Heading{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Heading{
		Heading:         r.GetF32(),
		HeadingPath:     r.GetF32(),
		HeadingToTarget: r.GetF32(),
		HeadingError:    r.GetF32(),
	}, nil
}

// ToVec serializes the Heading.
func (h Heading) ToVec() []byte {
	w := wire.NewWriter()
	w.PutF32(h.Heading)
	w.PutF32(h.HeadingPath)
	w.PutF32(h.HeadingToTarget)
	w.PutF32(h.HeadingError)
	return w.Bytes()
}

// CounterSize is Counter's fixed wire size in bytes.
const CounterSize = 4

// Counter reports the link's per-second frame throughput.
type Counter struct {
	CountPerSecReceive  uint16
	CountPerSecTransfer uint16
}

// ParseCounter decodes a Counter from exactly CounterSize bytes.
func ParseCounter(data []byte) (Counter, error) {
	if len(data) != CounterSize {
		return Counter{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Counter{CountPerSecReceive: r.GetU16(), CountPerSecTransfer: r.GetU16()}, nil
}

// ToVec serializes the Counter.
func (c Counter) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU16(c.CountPerSecReceive)
	w.PutU16(c.CountPerSecTransfer)
	return w.Bytes()
}

// SatelliteSize is Satellite's fixed wire size in bytes.
const SatelliteSize = 20

// Satellite is a raw passthrough of the onboard GNSS receiver's fix
// summary (u-blox UBX-NAV-PVT-style fields).
type Satellite struct {
	ITow    uint32
	Year    uint16
	Month   uint8
	Day     uint8
	Hour    uint8
	Min     uint8
	Sec     uint8
	Valid   uint8
	Flags   uint8
	Flags2  uint8
	GSpeed  int32
	PDop    uint16
}

// ParseSatellite decodes a Satellite from exactly SatelliteSize bytes.
func ParseSatellite(data []byte) (Satellite, error) {
	if len(data) != SatelliteSize {
		return Satellite{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Satellite{
		ITow:   r.GetU32(),
		Year:   r.GetU16(),
		Month:  r.GetU8(),
		Day:    r.GetU8(),
		Hour:   r.GetU8(),
		Min:    r.GetU8(),
		Sec:    r.GetU8(),
		Valid:  r.GetU8(),
		Flags:  r.GetU8(),
		Flags2: r.GetU8(),
		GSpeed: r.GetI32(),
		PDop:   r.GetU16(),
	}, nil
}

// ToVec serializes the Satellite.
func (s Satellite) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU32(s.ITow)
	w.PutU16(s.Year)
	w.PutU8(s.Month)
	w.PutU8(s.Day)
	w.PutU8(s.Hour)
	w.PutU8(s.Min)
	w.PutU8(s.Sec)
	w.PutU8(s.Valid)
	w.PutU8(s.Flags)
	w.PutU8(s.Flags2)
	w.PutI32(s.GSpeed)
	w.PutU16(s.PDop)
	return w.Bytes()
}

// LocationAdjustSize is LocationAdjust's fixed wire size in bytes.
const LocationAdjustSize = 17

// LocationAdjust nudges the autopilot's GPS fix by a manual correction.
type LocationAdjust struct {
	ModeNavigation uint8
	Latitude       float64
	Longitude      float64
}

// ParseLocationAdjust decodes a LocationAdjust from exactly
// LocationAdjustSize bytes.
func ParseLocationAdjust(data []byte) (LocationAdjust, error) {
	if len(data) != LocationAdjustSize {
		return LocationAdjust{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return LocationAdjust{
		ModeNavigation: r.GetU8(),
		Latitude:       r.GetF64(),
		Longitude:      r.GetF64(),
	}, nil
}

// ToVec serializes the LocationAdjust.
func (l LocationAdjust) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(l.ModeNavigation)
	w.PutF64(l.Latitude)
	w.PutF64(l.Longitude)
	return w.Bytes()
}
