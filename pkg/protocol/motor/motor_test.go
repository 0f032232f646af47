package motor

import "testing"

func TestRotationFromU8UnknownDefaultsToNone(t *testing.T) {
	if got := RotationFromU8(0x0F); got != RotationNone {
		t.Errorf("RotationFromU8(0x0F) = %v, want RotationNone", got)
	}
}

func TestVRoundTrip(t *testing.T) {
	want := V{Value: -1234}
	got, err := ParseV(want.ToVec())
	if err != nil {
		t.Fatalf("ParseV() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseV(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestRVRoundTrip(t *testing.T) {
	want := RV{Rotation: RotationClockwise, Value: 500}
	got, err := ParseRV(want.ToVec())
	if err != nil {
		t.Fatalf("ParseRV() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseRV(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestVARoundTrip(t *testing.T) {
	want := VA{Value: 100, Adc: -50}
	got, err := ParseVA(want.ToVec())
	if err != nil {
		t.Fatalf("ParseVA() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseVA(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestRVARoundTrip(t *testing.T) {
	want := RVA{Rotation: RotationCounterclockwise, Value: 1000, Adc: 25}
	got, err := ParseRVA(want.ToVec())
	if err != nil {
		t.Fatalf("ParseRVA() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseRVA(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestSingleVRoundTrip(t *testing.T) {
	want := SingleV{Target: 2, Value: 333}
	got, err := ParseSingleV(want.ToVec())
	if err != nil {
		t.Fatalf("ParseSingleV() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseSingleV(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestSingleRVRoundTrip(t *testing.T) {
	want := SingleRV{Target: 3, Rotation: RotationClockwise, Value: -99}
	got, err := ParseSingleRV(want.ToVec())
	if err != nil {
		t.Fatalf("ParseSingleRV() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseSingleRV(ToVec()) = %+v, want %+v", got, want)
	}
}

// The handler dispatches on length alone for the Motor/MotorSingle
// DataTypes, so every variant's size must be distinct within its group.
func TestMotorVariantSizesAreDistinct(t *testing.T) {
	sizes := map[int]string{}
	for size, name := range map[int]string{VSize: "V", RVSize: "RV", VASize: "VA", RVASize: "RVA"} {
		if other, ok := sizes[size]; ok {
			t.Fatalf("size %d shared by %s and %s", size, name, other)
		}
		sizes[size] = name
	}
}

func TestMotorSingleVariantSizesAreDistinct(t *testing.T) {
	if SingleVSize == SingleRVSize {
		t.Fatalf("SingleVSize and SingleRVSize must differ, both = %d", SingleVSize)
	}
}
