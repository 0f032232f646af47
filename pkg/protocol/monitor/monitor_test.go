package monitor

import (
	"reflect"
	"testing"

	"github.com/byrobot-go/edrone/pkg/protocol"
)

func TestHeaderTypeFromU8UnknownDefaultsToMonitor0(t *testing.T) {
	if got := HeaderTypeFromU8(0xFE); got != HeaderTypeMonitor0 {
		t.Errorf("HeaderTypeFromU8(0xFE) = %v, want HeaderTypeMonitor0", got)
	}
}

func TestValueTypeFromU8UnknownDefaultsToU8(t *testing.T) {
	if got := ValueTypeFromU8(0xFE); got != ValueTypeU8 {
		t.Errorf("ValueTypeFromU8(0xFE) = %v, want ValueTypeU8", got)
	}
}

func TestMonitor0RoundTrip(t *testing.T) {
	want := Monitor0{ValueType: ValueTypeS16, Index: 3, Values: []float64{-1, 2, -3}}
	got, err := ParseMonitor0(want.ToVec())
	if err != nil {
		t.Fatalf("ParseMonitor0() error = %v", err)
	}
	if got.ValueType != want.ValueType || got.Index != want.Index || !reflect.DeepEqual(got.Values, want.Values) {
		t.Errorf("ParseMonitor0(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestMonitor0LengthMatchesToVec(t *testing.T) {
	m := Monitor0{ValueType: ValueTypeF32, Index: 0, Values: []float64{1.5, 2.5}}
	if got := m.Length(); got != len(m.ToVec()) {
		t.Errorf("Length() = %d, len(ToVec()) = %d", got, len(m.ToVec()))
	}
}

func TestMonitor4RoundTrip(t *testing.T) {
	want := Monitor4{SystemTime: 123456, ValueType: ValueTypeU32, Index: 1, Values: []float64{10, 20}}
	got, err := ParseMonitor4(want.ToVec())
	if err != nil {
		t.Fatalf("ParseMonitor4() error = %v", err)
	}
	if got.SystemTime != want.SystemTime || got.ValueType != want.ValueType || got.Index != want.Index || !reflect.DeepEqual(got.Values, want.Values) {
		t.Errorf("ParseMonitor4(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestMonitor8RoundTrip(t *testing.T) {
	want := Monitor8{SystemTime: 9876543210, ValueType: ValueTypeF64, Index: 2, Values: []float64{1.25, -2.5}}
	got, err := ParseMonitor8(want.ToVec())
	if err != nil {
		t.Fatalf("ParseMonitor8() error = %v", err)
	}
	if got.SystemTime != want.SystemTime || got.ValueType != want.ValueType || got.Index != want.Index || !reflect.DeepEqual(got.Values, want.Values) {
		t.Errorf("ParseMonitor8(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestMonitorVariantsRejectShorterThanMinHeader(t *testing.T) {
	if _, err := ParseMonitor0(make([]byte, Monitor0MinSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseMonitor0(short) error = %v, want ErrWrongLength", err)
	}
	if _, err := ParseMonitor4(make([]byte, Monitor4MinSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseMonitor4(short) error = %v, want ErrWrongLength", err)
	}
	if _, err := ParseMonitor8(make([]byte, Monitor8MinSize-1)); err != protocol.ErrWrongLength {
		t.Errorf("ParseMonitor8(short) error = %v, want ErrWrongLength", err)
	}
}

func TestTypeSelectorRoundTrip(t *testing.T) {
	want := Type{HeaderType: HeaderTypeMonitor8}
	got, err := ParseType(want.ToVec())
	if err != nil {
		t.Fatalf("ParseType() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseType(ToVec()) = %+v, want %+v", got, want)
	}
}

func TestMonitor0EmptyValuesRoundTrip(t *testing.T) {
	want := Monitor0{ValueType: ValueTypeU8, Index: 0, Values: []float64{}}
	got, err := ParseMonitor0(want.ToVec())
	if err != nil {
		t.Fatalf("ParseMonitor0() error = %v", err)
	}
	if len(got.Values) != 0 {
		t.Errorf("ParseMonitor0(empty values) = %+v, want zero values", got)
	}
}
