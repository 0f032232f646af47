// Package handler dispatches a decoded (Header, payload) pair to the
// matching payload codec, selecting among single-shape and size-polymorphic
// DataTypes the way the original Rust crate's handler/mod.rs match arms do.
// It never panics: any lookup miss, length mismatch, or parse failure comes
// back as a Result carrying an error message instead of the value.
package handler

import (
	"fmt"

	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/protocol/battle"
	"github.com/byrobot-go/edrone/pkg/protocol/buzzer"
	"github.com/byrobot-go/edrone/pkg/protocol/card"
	"github.com/byrobot-go/edrone/pkg/protocol/command"
	"github.com/byrobot-go/edrone/pkg/protocol/communication"
	"github.com/byrobot-go/edrone/pkg/protocol/control"
	"github.com/byrobot-go/edrone/pkg/protocol/display"
	"github.com/byrobot-go/edrone/pkg/protocol/external"
	"github.com/byrobot-go/edrone/pkg/protocol/input"
	"github.com/byrobot-go/edrone/pkg/protocol/light"
	"github.com/byrobot-go/edrone/pkg/protocol/monitor"
	"github.com/byrobot-go/edrone/pkg/protocol/motor"
	"github.com/byrobot-go/edrone/pkg/protocol/navigation"
	"github.com/byrobot-go/edrone/pkg/protocol/sensor"
	"github.com/byrobot-go/edrone/pkg/protocol/system"
	"github.com/byrobot-go/edrone/pkg/protocol/vibrator"
)

// Result is the dispatcher's output: the frame's header, the decoded
// payload value (one of the protocol/* package's types, boxed as an
// interface{}), and — on failure — a human-readable error in place of a
// value. Exactly one of Value/Err is meaningful at a time.
type Result struct {
	Header protocol.Header
	Value  interface{}
	Err    string
}

func errorMessage(header protocol.Header, payload []byte, reason string) Result {
	return Result{
		Header: header,
		Err: fmt.Sprintf("DataType: %d Length: %d Data: % X (%s)",
			header.DataType, header.Length, payload, reason),
	}
}

func ok(header protocol.Header, value interface{}) Result {
	return Result{Header: header, Value: value}
}

// Handle dispatches one decoded frame to its payload codec. The caller
// must ensure header.Length == len(payload) before calling; Handle
// re-checks this itself and returns an ErrorMessage-shaped Result if it
// doesn't hold.
func Handle(header protocol.Header, payload []byte) Result {
	if int(header.Length) != len(payload) {
		return errorMessage(header, payload, "length mismatch")
	}

	switch header.DataType {
	case protocol.DataPing:
		return parse1(header, payload, system.ParsePing)
	case protocol.DataAck:
		return parse1(header, payload, system.ParseAck)
	case protocol.DataError:
		return parse1(header, payload, system.ParseError)
	case protocol.DataRequest:
		switch len(payload) {
		case system.RequestSize:
			return parse1(header, payload, system.ParseRequest)
		case system.RequestOptionSize:
			return parse1(header, payload, system.ParseRequestOption)
		default:
			return errorMessage(header, payload, "no Request variant matches length")
		}
	case protocol.DataAddress:
		return parse1(header, payload, system.ParseAddress)
	case protocol.DataInformation:
		return parse1(header, payload, system.ParseInformation)
	case protocol.DataUpdate:
		return parse1(header, payload, system.ParseUpdate)
	case protocol.DataUpdateLocation:
		return parse1(header, payload, system.ParseUpdateLocation)
	case protocol.DataSystemInformation:
		return parse1(header, payload, system.ParseSystemInformation)
	case protocol.DataAdministrator:
		return parse1(header, payload, system.ParseAdministrator)

	case protocol.DataControl:
		switch len(payload) {
		case control.Quad8Size:
			return parse1(header, payload, control.ParseQuad8)
		case control.Quad8AndRequestDataSize:
			return parse1(header, payload, control.ParseQuad8AndRequestData)
		case control.Position16Size:
			return parse1(header, payload, control.ParsePosition16)
		case control.PositionSize:
			return parse1(header, payload, control.ParsePosition)
		default:
			return errorMessage(header, payload, "no Control variant matches length")
		}

	case protocol.DataCommand:
		return parse1(header, payload, command.Parse)
	case protocol.DataBattle:
		switch len(payload) {
		case battle.IrMessageSize:
			return parse1(header, payload, battle.ParseIrMessage)
		case battle.LightEventCommandSize:
			return parse1(header, payload, battle.ParseLightEventCommand)
		case battle.IrMessageLightEventCommandSize:
			return parse1(header, payload, battle.ParseIrMessageLightEventCommand)
		default:
			return errorMessage(header, payload, "no Battle variant matches length")
		}
	case protocol.DataPairing:
		return parse1(header, payload, communication.ParsePairing)
	case protocol.DataRssi:
		return parse1(header, payload, communication.ParseRssi)

	case protocol.DataLightManual:
		return parse1(header, payload, light.ParseManual)
	case protocol.DataLightMode, protocol.DataLightDefault:
		return parse1(header, payload, light.ParseModePreset)
	case protocol.DataLightEvent:
		return parse1(header, payload, light.ParseEvent)

	case protocol.DataRawMotion:
		return parse1(header, payload, sensor.ParseRawMotion)
	case protocol.DataRawFlow:
		return parse1(header, payload, sensor.ParseRawFlow)
	case protocol.DataAttitude:
		return parse1(header, payload, sensor.ParseAttitude)
	case protocol.DataPosition:
		switch len(payload) {
		case sensor.PositionSize:
			return parse1(header, payload, sensor.ParsePosition)
		case sensor.PositionVelocitySize:
			return parse1(header, payload, sensor.ParsePositionVelocity)
		default:
			return errorMessage(header, payload, "no Position variant matches length")
		}
	case protocol.DataMotion:
		return parse1(header, payload, sensor.ParseMotion)
	case protocol.DataRange:
		return parse1(header, payload, sensor.ParseRange)
	case protocol.DataCount:
		return parse1(header, payload, sensor.ParseCount)
	case protocol.DataBias:
		return parse1(header, payload, sensor.ParseBias)
	case protocol.DataTrim:
		return parse1(header, payload, sensor.ParseTrim)
	case protocol.DataLostConnection:
		return parse1(header, payload, sensor.ParseLostConnection)
	case protocol.DataMagnetometerOffset:
		return parse1(header, payload, sensor.ParseMagnetometerOffset)

	case protocol.DataMotor:
		switch len(payload) {
		case motor.VSize:
			return parse1(header, payload, motor.ParseV)
		case motor.RVSize:
			return parse1(header, payload, motor.ParseRV)
		case motor.VASize:
			return parse1(header, payload, motor.ParseVA)
		case motor.RVASize:
			return parse1(header, payload, motor.ParseRVA)
		default:
			return errorMessage(header, payload, "no Motor variant matches length")
		}
	case protocol.DataMotorSingle:
		switch len(payload) {
		case motor.SingleVSize:
			return parse1(header, payload, motor.ParseSingleV)
		case motor.SingleRVSize:
			return parse1(header, payload, motor.ParseSingleRV)
		default:
			return errorMessage(header, payload, "no MotorSingle variant matches length")
		}
	case protocol.DataBuzzer:
		switch len(payload) {
		case buzzer.MelodySize:
			return parse1(header, payload, buzzer.ParseMelody)
		case buzzer.ScaleCommandSize:
			return handleBuzzerCommand(header, payload)
		default:
			return errorMessage(header, payload, "no Buzzer variant matches length")
		}
	case protocol.DataVibrator:
		return parse1(header, payload, vibrator.Parse)

	case protocol.DataButton:
		return parse1(header, payload, input.ParseButton)
	case protocol.DataJoystick:
		return parse1(header, payload, input.ParseJoystick)

	case protocol.DataDisplayClear:
		switch len(payload) {
		case display.ClearAllSize:
			return parse1(header, payload, display.ParseClearAll)
		case display.ClearSize:
			return parse1(header, payload, display.ParseClear)
		default:
			return errorMessage(header, payload, "no DisplayClear variant matches length")
		}
	case protocol.DataDisplayInvert:
		return parse1(header, payload, display.ParseInvert)
	case protocol.DataDisplayDrawPoint:
		return parse1(header, payload, display.ParseDrawPoint)
	case protocol.DataDisplayDrawLine:
		return parse1(header, payload, display.ParseDrawLine)
	case protocol.DataDisplayDrawRect:
		return parse1(header, payload, display.ParseDrawRect)
	case protocol.DataDisplayDrawCircle:
		return parse1(header, payload, display.ParseDrawCircle)
	case protocol.DataDisplayDrawString:
		return parse1(header, payload, display.ParseDrawString)
	case protocol.DataDisplayDrawStringAlign:
		return parse1(header, payload, display.ParseDrawStringAlign)
	case protocol.DataDisplayDrawImage:
		return parse1(header, payload, display.ParseDrawImage)

	case protocol.DataMonitor:
		return handleMonitor(header, payload)

	case protocol.DataCardClassify:
		return parseList(header, payload, card.ParseClassifyList)
	case protocol.DataCardRange:
		return parse1(header, payload, card.ParseRange)
	case protocol.DataCardRaw:
		return parseList(header, payload, card.ParseRawList)
	case protocol.DataCardColor:
		return parseList(header, payload, card.ParseColorReadingList)
	case protocol.DataCardList:
		return parse1(header, payload, card.ParseListCard)
	case protocol.DataCardFunctionList:
		return parse1(header, payload, card.ParseListFunction)

	case protocol.DataNavigationTarget:
		switch len(payload) {
		case navigation.TargetMoveSize:
			return parse1(header, payload, navigation.ParseTargetMove)
		case navigation.TargetActionSize:
			return parse1(header, payload, navigation.ParseTargetAction)
		default:
			return errorMessage(header, payload, "no NavigationTarget variant matches length")
		}
	case protocol.DataNavigationLocation:
		return parse1(header, payload, navigation.ParseLocation)
	case protocol.DataNavigationMonitor:
		return parse1(header, payload, navigation.ParseMonitor)
	case protocol.DataNavigationHeading:
		return parse1(header, payload, navigation.ParseHeading)
	case protocol.DataNavigationCounter:
		return parse1(header, payload, navigation.ParseCounter)
	case protocol.DataNavigationSatellite:
		return parse1(header, payload, navigation.ParseSatellite)
	case protocol.DataNavigationLocationAdjust:
		return parse1(header, payload, navigation.ParseLocationAdjust)

	case protocol.DataUwbPosition:
		return parse1(header, payload, external.ParseUwbPosition)
	case protocol.DataTagData:
		return parseList(header, payload, external.ParseTagDataList)
	case protocol.DataExternalCameraState:
		return parse1(header, payload, external.ParseCameraState)
	case protocol.DataExternalCameraCommand:
		return parse1(header, payload, external.ParseCameraCommand)

	default:
		return errorMessage(header, payload, "unknown or unsupported DataType")
	}
}

// parse1 adapts a codec's Parse(data) (T, error) function into a Result,
// collapsing any parse failure into an ErrorMessage-shaped Result.
func parse1[T any](header protocol.Header, payload []byte, fn func([]byte) (T, error)) Result {
	v, err := fn(payload)
	if err != nil {
		return errorMessage(header, payload, err.Error())
	}
	return ok(header, v)
}

// parseList adapts a codec's repeating-run ParseXList(data) ([]T, error)
// function into a Result.
func parseList[T any](header protocol.Header, payload []byte, fn func([]byte) ([]T, error)) Result {
	v, err := fn(payload)
	if err != nil {
		return errorMessage(header, payload, err.Error())
	}
	return ok(header, v)
}

// handleBuzzerCommand resolves ScaleCommand/HzCommand — same wire size,
// disambiguated by the leading Mode byte's tone (scale vs raw Hz).
func handleBuzzerCommand(header protocol.Header, payload []byte) Result {
	switch buzzer.ModeFromU8(payload[0]) {
	case buzzer.ModeScaleInstantly, buzzer.ModeScaleContinually:
		return parse1(header, payload, buzzer.ParseScaleCommand)
	case buzzer.ModeHzInstantly, buzzer.ModeHzContinually:
		return parse1(header, payload, buzzer.ParseHzCommand)
	default:
		return errorMessage(header, payload, "Buzzer mode selects neither Scale nor Hz variant")
	}
}

// handleMonitor reads the leading HeaderType sub-discriminant byte, then
// parses the remainder as the matching Monitor0/4/8 shape.
func handleMonitor(header protocol.Header, payload []byte) Result {
	if len(payload) < 1 {
		return errorMessage(header, payload, "missing Monitor header type byte")
	}
	switch monitor.HeaderTypeFromU8(payload[0]) {
	case monitor.HeaderTypeMonitor0:
		return parse1(header, payload[1:], monitor.ParseMonitor0)
	case monitor.HeaderTypeMonitor4:
		return parse1(header, payload[1:], monitor.ParseMonitor4)
	case monitor.HeaderTypeMonitor8:
		return parse1(header, payload[1:], monitor.ParseMonitor8)
	default:
		return errorMessage(header, payload, "unrecognized Monitor header type")
	}
}
