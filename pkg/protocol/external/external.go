// Package external holds the payload kinds exchanged with companion
// peripherals wired to the drone's expansion port — camera, lidar,
// AprilTag-style vision tags, ultra-wideband positioning, and a generic
// companion-computer system channel — grounded in the original Rust
// crate's protocol/external/*.rs.
package external

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// CameraMode reports a companion camera's current operating mode.
type CameraMode uint8

const (
	CameraModeNone      CameraMode = 0x00
	CameraModeStop      CameraMode = 0x01
	CameraModeError     CameraMode = 0x02
	CameraModeCamera    CameraMode = 0x10
	CameraModeRecording CameraMode = 0x11
)

var cameraModeDefined = map[CameraMode]bool{
	CameraModeNone: true, CameraModeStop: true, CameraModeError: true, CameraModeCamera: true, CameraModeRecording: true,
}

// CameraModeFromU8 performs the total enum conversion.
func CameraModeFromU8(b uint8) CameraMode {
	m := CameraMode(b)
	if cameraModeDefined[m] {
		return m
	}
	return CameraModeNone
}

// CameraCommandType names a command sent to a companion camera.
type CameraCommandType uint8

const (
	CameraCommandNone                CameraCommandType = 0x00
	CameraCommandStop                CameraCommandType = 0x01
	CameraCommandVideoCapture        CameraCommandType = 0x10
	CameraCommandVideoRecordingStart CameraCommandType = 0x11
	CameraCommandVideoRecordingStop  CameraCommandType = 0x12
	CameraCommandTakePhoto           CameraCommandType = 0x20
)

var cameraCommandTypeDefined = map[CameraCommandType]bool{
	CameraCommandNone: true, CameraCommandStop: true, CameraCommandVideoCapture: true,
	CameraCommandVideoRecordingStart: true, CameraCommandVideoRecordingStop: true, CameraCommandTakePhoto: true,
}

// CameraCommandTypeFromU8 performs the total enum conversion.
func CameraCommandTypeFromU8(b uint8) CameraCommandType {
	t := CameraCommandType(b)
	if cameraCommandTypeDefined[t] {
		return t
	}
	return CameraCommandNone
}

// CameraStateSize is CameraState's fixed wire size in bytes.
const CameraStateSize = 3

// CameraState reports a companion camera's mode and frame rate.
type CameraState struct {
	Mode CameraMode
	Fps  uint16
}

// ParseCameraState decodes a CameraState from exactly CameraStateSize
// bytes.
func ParseCameraState(data []byte) (CameraState, error) {
	if len(data) != CameraStateSize {
		return CameraState{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return CameraState{Mode: CameraModeFromU8(r.GetU8()), Fps: r.GetU16()}, nil
}

// ToVec serializes the CameraState.
func (s CameraState) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(s.Mode))
	w.PutU16(s.Fps)
	return w.Bytes()
}

// CameraCommandSize is CameraCommand's fixed wire size in bytes.
const CameraCommandSize = 1

// CameraCommand issues one command to a companion camera.
type CameraCommand struct {
	CommandType CameraCommandType
}

// ParseCameraCommand decodes a CameraCommand from exactly
// CameraCommandSize bytes.
func ParseCameraCommand(data []byte) (CameraCommand, error) {
	if len(data) != CameraCommandSize {
		return CameraCommand{}, protocol.ErrWrongLength
	}
	return CameraCommand{CommandType: CameraCommandTypeFromU8(data[0])}, nil
}

// ToVec serializes the CameraCommand.
func (c CameraCommand) ToVec() []byte { return []byte{uint8(c.CommandType)} }

// LidarDataSize is one LidarData sample's fixed wire size in bytes.
const LidarDataSize = 4

// LidarData is one ranging sample from a spinning lidar.
type LidarData struct {
	AngleRadianX1000 uint16
	DistanceMm       uint16
}

// ParseLidarDataList decodes a repeating run of LidarData samples. The
// payload length must be a positive multiple of LidarDataSize.
func ParseLidarDataList(data []byte) ([]LidarData, error) {
	if len(data) == 0 || len(data)%LidarDataSize != 0 {
		return nil, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	out := make([]LidarData, 0, len(data)/LidarDataSize)
	for r.Remaining() > 0 {
		out = append(out, LidarData{AngleRadianX1000: r.GetU16(), DistanceMm: r.GetU16()})
	}
	return out, nil
}

// ToVec serializes one LidarData sample.
func (l LidarData) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU16(l.AngleRadianX1000)
	w.PutU16(l.DistanceMm)
	return w.Bytes()
}

// TagDataSize is one TagData detection's fixed wire size in bytes.
const TagDataSize = 10

// TagData is one vision-tag detection's bounding box and identity.
type TagData struct {
	X      int16
	Y      int16
	Width  int16
	Height int16
	Id     uint16
}

// ParseTagDataList decodes a repeating run of TagData detections. The
// payload length must be a positive multiple of TagDataSize.
func ParseTagDataList(data []byte) ([]TagData, error) {
	if len(data) == 0 || len(data)%TagDataSize != 0 {
		return nil, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	out := make([]TagData, 0, len(data)/TagDataSize)
	for r.Remaining() > 0 {
		out = append(out, TagData{
			X: r.GetI16(), Y: r.GetI16(), Width: r.GetI16(), Height: r.GetI16(), Id: r.GetU16(),
		})
	}
	return out, nil
}

// ToVec serializes one TagData detection.
func (t TagData) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(t.X)
	w.PutI16(t.Y)
	w.PutI16(t.Width)
	w.PutI16(t.Height)
	w.PutU16(t.Id)
	return w.Bytes()
}

// UwbPositionSize is UwbPosition's fixed wire size in bytes.
const UwbPositionSize = 13

// UwbPosition is a position fix computed from ultra-wideband ranging.
type UwbPosition struct {
	X     float32
	Y     float32
	Z     float32
	Error uint8
}

// ParseUwbPosition decodes a UwbPosition from exactly UwbPositionSize
// bytes.
func ParseUwbPosition(data []byte) (UwbPosition, error) {
	if len(data) != UwbPositionSize {
		return UwbPosition{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return UwbPosition{X: r.GetF32(), Y: r.GetF32(), Z: r.GetF32(), Error: r.GetU8()}, nil
}

// ToVec serializes the UwbPosition.
func (p UwbPosition) ToVec() []byte {
	w := wire.NewWriter()
	w.PutF32(p.X)
	w.PutF32(p.Y)
	w.PutF32(p.Z)
	w.PutU8(p.Error)
	return w.Bytes()
}

// SystemMode reports a companion computer's current run state.
type SystemMode uint8

const (
	SystemModeNone  SystemMode = 0x00
	SystemModeStop  SystemMode = 0x01
	SystemModeError SystemMode = 0x02
	SystemModeRun   SystemMode = 0x10
)

var systemModeDefined = map[SystemMode]bool{
	SystemModeNone: true, SystemModeStop: true, SystemModeError: true, SystemModeRun: true,
}

// SystemModeFromU8 performs the total enum conversion.
func SystemModeFromU8(b uint8) SystemMode {
	m := SystemMode(b)
	if systemModeDefined[m] {
		return m
	}
	return SystemModeNone
}

// SystemCommandType names a command sent to a companion computer.
type SystemCommandType uint8

const (
	SystemCommandNone     SystemCommandType = 0x00
	SystemCommandShutdown SystemCommandType = 0x01
	SystemCommandReboot   SystemCommandType = 0x02
)

var systemCommandTypeDefined = map[SystemCommandType]bool{
	SystemCommandNone: true, SystemCommandShutdown: true, SystemCommandReboot: true,
}

// SystemCommandTypeFromU8 performs the total enum conversion.
func SystemCommandTypeFromU8(b uint8) SystemCommandType {
	t := SystemCommandType(b)
	if systemCommandTypeDefined[t] {
		return t
	}
	return SystemCommandNone
}

// SystemStateSize is SystemState's fixed wire size in bytes.
const SystemStateSize = 3

// SystemState reports a companion computer's mode and frame rate.
type SystemState struct {
	Mode SystemMode
	Fps  uint16
}

// ParseSystemState decodes a SystemState from exactly SystemStateSize
// bytes.
func ParseSystemState(data []byte) (SystemState, error) {
	if len(data) != SystemStateSize {
		return SystemState{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return SystemState{Mode: SystemModeFromU8(r.GetU8()), Fps: r.GetU16()}, nil
}

// ToVec serializes the SystemState.
func (s SystemState) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(s.Mode))
	w.PutU16(s.Fps)
	return w.Bytes()
}

// SystemCommandSize is SystemCommand's fixed wire size in bytes.
const SystemCommandSize = 1

// SystemCommand issues one command to a companion computer.
type SystemCommand struct {
	CommandType SystemCommandType
}

// ParseSystemCommand decodes a SystemCommand from exactly
// SystemCommandSize bytes.
func ParseSystemCommand(data []byte) (SystemCommand, error) {
	if len(data) != SystemCommandSize {
		return SystemCommand{}, protocol.ErrWrongLength
	}
	return SystemCommand{CommandType: SystemCommandTypeFromU8(data[0])}, nil
}

// ToVec serializes the SystemCommand.
func (c SystemCommand) ToVec() []byte { return []byte{uint8(c.CommandType)} }
