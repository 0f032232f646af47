package sensor

import (
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestRawMotionRoundTrip(t *testing.T) {
	want := RawMotion{AccelX: 1, AccelY: -2, AccelZ: 3, GyroRoll: -4, GyroPitch: 5, GyroYaw: -6}
	got, err := ParseRawMotion(want.ToVec())
	if err != nil {
		t.Fatalf("ParseRawMotion() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseRawMotion(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestRawFlowRoundTrip(t *testing.T) {
	want := RawFlow{X: 1.5, Y: -2.5}
	got, err := ParseRawFlow(want.ToVec())
	if err != nil {
		t.Fatalf("ParseRawFlow() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseRawFlow(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestAttitudeRoundTrip(t *testing.T) {
	want := Attitude{Roll: 10, Pitch: -20, Yaw: 30}
	got, err := ParseAttitude(want.ToVec())
	if err != nil {
		t.Fatalf("ParseAttitude() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseAttitude(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestPositionRoundTrip(t *testing.T) {
	want := Position{X: 1, Y: 2, Z: 3}
	got, err := ParsePosition(want.ToVec())
	if err != nil {
		t.Fatalf("ParsePosition() error = %v", err)
	}
	if got != want {
		t.Errorf("ParsePosition(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestPositionVelocityRoundTrip(t *testing.T) {
	want := PositionVelocity{X: 1, Y: 2, Z: 3, Vx: 0.1, Vy: -0.2, Vz: 0.3}
	got, err := ParsePositionVelocity(want.ToVec())
	if err != nil {
		t.Fatalf("ParsePositionVelocity() error = %v", err)
	}
	if got != want {
		t.Errorf("ParsePositionVelocity(ToVec()) = %+v, want %+v", got, want)
	}
}

// Position and PositionVelocity are the telemetry DataPosition DataType's
// two length-dispatched variants; their sizes must stay distinct.
func TestPositionAndPositionVelocitySizesAreDistinct(t *testing.T) {
	if PositionSize == PositionVelocitySize {
		t.Fatalf("PositionSize and PositionVelocitySize must differ, both = %d", PositionSize)
	}
}

func TestMotionRoundTrip(t *testing.T) {
	want := Motion{AccelX: 1, AccelY: 2, AccelZ: 3, GyroRoll: 4, GyroPitch: 5, GyroYaw: 6, AngleRoll: 7, AnglePitch: 8, AngleYaw: 9}
	got, err := ParseMotion(want.ToVec())
	if err != nil {
		t.Fatalf("ParseMotion() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseMotion(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestRangeRoundTrip(t *testing.T) {
	want := Range{Left: 100, Front: 200, Right: 300, Rear: 400, Top: 500, Bottom: 600}
	got, err := ParseRange(want.ToVec())
	if err != nil {
		t.Fatalf("ParseRange() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseRange(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestCountRoundTrip(t *testing.T) {
	want := Count{TimeSystem: 123456, TimeFlight: 7890, CountTakeoff: 5, CountLanding: 4, CountAccident: 1}
	got, err := ParseCount(want.ToVec())
	if err != nil {
		t.Fatalf("ParseCount() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseCount(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestBiasRoundTrip(t *testing.T) {
	want := Bias{AccelX: 1, AccelY: 2, AccelZ: 3, GyroRoll: 4, GyroPitch: 5, GyroYaw: 6}
	got, err := ParseBias(want.ToVec())
	if err != nil {
		t.Fatalf("ParseBias() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseBias(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestTrimRoundTrip(t *testing.T) {
	want := Trim{Roll: 1, Pitch: -1, Yaw: 2, Throttle: -2}
	got, err := ParseTrim(want.ToVec())
	if err != nil {
		t.Fatalf("ParseTrim() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseTrim(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestLostConnectionRoundTrip(t *testing.T) {
	want := LostConnection{TimeNeutral: 500, TimeLanding: 2000, TimeStop: 5000}
	got, err := ParseLostConnection(want.ToVec())
	if err != nil {
		t.Fatalf("ParseLostConnection() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseLostConnection(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestMagnetometerOffsetRoundTrip(t *testing.T) {
	want := MagnetometerOffset{Offset: -15}
	got, err := ParseMagnetometerOffset(want.ToVec())
	if err != nil {
		t.Fatalf("ParseMagnetometerOffset() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseMagnetometerOffset(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestParseRejectsWrongLength(t *testing.T) {
	if _, err := ParseRange(make([]byte, RangeSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseRange(short) error = %v, want ErrWrongLength", err)
	}
	if _, err := ParseCount(make([]byte, CountSize+1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseCount(long) error = %v, want ErrWrongLength", err)
	}
}
