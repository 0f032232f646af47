package external

import (
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestCameraModeFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := CameraModeFromU8(0xEE); got != CameraModeNone {
		t.Errorf("CameraModeFromU8(0xEE) = %v, want CameraModeNone", got)
	}
}

func TestCameraCommandTypeFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := CameraCommandTypeFromU8(0xEE); got != CameraCommandNone {
		t.Errorf("CameraCommandTypeFromU8(0xEE) = %v, want CameraCommandNone", got)
	}
}

func TestCameraStateRoundTrip(t *testing.T) {
	want := CameraState{Mode: CameraModeRecording, Fps: 30}
	got, err := ParseCameraState(want.ToVec())
	if err != nil {
		t.Fatalf("ParseCameraState() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseCameraState(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestCameraStateWrongLength(t *testing.T) {
	if _, err := ParseCameraState(make([]byte, CameraStateSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseCameraState(short) error = %v, want ErrWrongLength", err)
	}
}

func TestCameraCommandRoundTrip(t *testing.T) {
	want := CameraCommand{CommandType: CameraCommandTakePhoto}
	got, err := ParseCameraCommand(want.ToVec())
	if err != nil {
		t.Fatalf("ParseCameraCommand() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseCameraCommand(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestCameraCommandWrongLength(t *testing.T) {
	if _, err := ParseCameraCommand(make([]byte, CameraCommandSize+1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseCameraCommand(wrong length) error = %v, want ErrWrongLength", err)
	}
}

func TestLidarDataListRoundTrip(t *testing.T) {
	a := LidarData{AngleRadianX1000: 1000, DistanceMm: 500}
	b := LidarData{AngleRadianX1000: 2000, DistanceMm: 750}
	payload := append(a.ToVec(), b.ToVec()...)

	got, err := ParseLidarDataList(payload)
	if err != nil {
		t.Fatalf("ParseLidarDataList() error = %v", err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("ParseLidarDataList() = %+v, want [%+v %+v]", got, a, b)
	}
}

func TestLidarDataListRejectsNonMultipleLength(t *testing.T) {
	if _, err := ParseLidarDataList(make([]byte, LidarDataSize+1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseLidarDataList(non-multiple) error = %v, want ErrWrongLength", err)
	}
}

func TestLidarDataListRejectsEmptyPayload(t *testing.T) {
	if _, err := ParseLidarDataList(nil); err != protocol.ErrWrongLength {
		t.Errorf("ParseLidarDataList(empty) error = %v, want ErrWrongLength", err)
	}
}

func TestTagDataListRoundTrip(t *testing.T) {
	a := TagData{X: -10, Y: 20, Width: 30, Height: 40, Id: 1}
	b := TagData{X: 5, Y: -5, Width: 15, Height: 25, Id: 2}
	payload := append(a.ToVec(), b.ToVec()...)

	got, err := ParseTagDataList(payload)
	if err != nil {
		t.Fatalf("ParseTagDataList() error = %v", err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("ParseTagDataList() = %+v, want [%+v %+v]", got, a, b)
	}
}

func TestTagDataListRejectsNonMultipleLength(t *testing.T) {
	if _, err := ParseTagDataList(make([]byte, TagDataSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseTagDataList(non-multiple) error = %v, want ErrWrongLength", err)
	}
}

func TestUwbPositionRoundTrip(t *testing.T) {
	want := UwbPosition{X: 1.5, Y: -2.5, Z: 0.75, Error: 3}
	got, err := ParseUwbPosition(want.ToVec())
	if err != nil {
		t.Fatalf("ParseUwbPosition() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseUwbPosition(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestUwbPositionWrongLength(t *testing.T) {
	if _, err := ParseUwbPosition(make([]byte, UwbPositionSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseUwbPosition(short) error = %v, want ErrWrongLength", err)
	}
}

func TestSystemModeFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := SystemModeFromU8(0xEE); got != SystemModeNone {
		t.Errorf("SystemModeFromU8(0xEE) = %v, want SystemModeNone", got)
	}
}

func TestSystemCommandTypeFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := SystemCommandTypeFromU8(0xEE); got != SystemCommandNone {
		t.Errorf("SystemCommandTypeFromU8(0xEE) = %v, want SystemCommandNone", got)
	}
}

func TestSystemStateRoundTrip(t *testing.T) {
	want := SystemState{Mode: SystemModeRun, Fps: 60}
	got, err := ParseSystemState(want.ToVec())
	if err != nil {
		t.Fatalf("ParseSystemState() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseSystemState(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestSystemCommandRoundTrip(t *testing.T) {
	want := SystemCommand{CommandType: SystemCommandReboot}
	got, err := ParseSystemCommand(want.ToVec())
	if err != nil {
		t.Fatalf("ParseSystemCommand() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseSystemCommand(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestSystemCommandWrongLength(t *testing.T) {
	if _, err := ParseSystemCommand(make([]byte, SystemCommandSize+1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseSystemCommand(wrong length) error = %v, want ErrWrongLength", err)
	}
}
