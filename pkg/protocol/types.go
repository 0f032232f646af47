// Package protocol defines the e-drone wire protocol's header-level
// vocabulary: DeviceType and DataType (the two tags that route every
// frame), ModelNumber and Version (hardware/firmware identity), and Header
// itself. Payload bodies live in the protocol/* subpackages, one per
// category, mirroring the original Rust crate's src/protocol/*.rs layout.
package protocol

// DeviceType identifies a participant on the bus. Unknown wire bytes decode
// to None rather than failing — every enum conversion in this protocol is
// total, per the source contract.
type DeviceType uint8

const (
	DeviceNone DeviceType = 0x00

	DeviceDrone DeviceType = 0x10

	DeviceController DeviceType = 0x20

	DeviceLinkClient DeviceType = 0x30
	DeviceLinkServer DeviceType = 0x31
	DeviceBleClient  DeviceType = 0x32
	DeviceBleServer  DeviceType = 0x33

	DeviceRange DeviceType = 0x40

	DeviceBase DeviceType = 0x70

	DeviceByScratch DeviceType = 0x80
	DeviceScratch   DeviceType = 0x81
	DeviceEntry     DeviceType = 0x82

	DeviceTester    DeviceType = 0xA0
	DeviceMonitor   DeviceType = 0xA1
	DeviceUpdater   DeviceType = 0xA2
	DeviceEncrypter DeviceType = 0xA3

	// DeviceWhispering means "immediate neighbor only, do not forward";
	// the policy itself is the receiving peer's concern, not this core's.
	DeviceWhispering DeviceType = 0xFE
	// DeviceBroadcasting means "forward to all connected peers".
	DeviceBroadcasting DeviceType = 0xFF
)

var deviceTypeDefined = map[DeviceType]bool{
	DeviceNone: true, DeviceDrone: true, DeviceController: true,
	DeviceLinkClient: true, DeviceLinkServer: true, DeviceBleClient: true, DeviceBleServer: true,
	DeviceRange: true, DeviceBase: true,
	DeviceByScratch: true, DeviceScratch: true, DeviceEntry: true,
	DeviceTester: true, DeviceMonitor: true, DeviceUpdater: true, DeviceEncrypter: true,
	DeviceWhispering: true, DeviceBroadcasting: true,
}

// DeviceTypeFromU8 performs the total enum conversion: unknown bytes map to
// DeviceNone.
func DeviceTypeFromU8(b uint8) DeviceType {
	d := DeviceType(b)
	if deviceTypeDefined[d] {
		return d
	}
	return DeviceNone
}

// IsDefined reports whether d is one of the protocol's defined device
// roles. The framing layer (pkg/receiver) uses this to reject a header
// whose From/To byte names no known device, per spec §4.3 — unlike payload
// enum fields, an unknown device byte in the header aborts the frame.
func (d DeviceType) IsDefined() bool {
	return deviceTypeDefined[d]
}

// DataType names a payload kind. As with DeviceType, conversion from the
// wire byte is total: an unrecognized value maps to DataNone.
type DataType uint8

const (
	DataNone DataType = 0x00

	DataPing              DataType = 0x01
	DataAck               DataType = 0x02
	DataError             DataType = 0x03
	DataRequest           DataType = 0x04
	DataMessage           DataType = 0x05
	DataAddress           DataType = 0x06
	DataInformation       DataType = 0x07
	DataUpdate            DataType = 0x08
	DataUpdateLocation    DataType = 0x09
	DataEncrypt           DataType = 0x0A
	DataSystemCount       DataType = 0x0B
	DataSystemInformation DataType = 0x0C
	DataRegistration      DataType = 0x0D
	DataAdministrator     DataType = 0x0E
	DataMonitor           DataType = 0x0F
	DataControl           DataType = 0x10

	DataCommand           DataType = 0x11
	DataPairing           DataType = 0x12
	DataRssi              DataType = 0x13
	DataTimeSync          DataType = 0x14
	DataTransmissionPower DataType = 0x15
	DataConfiguration     DataType = 0x16
	DataEcho              DataType = 0x17

	DataBattle DataType = 0x1F

	DataLightManual  DataType = 0x20
	DataLightMode    DataType = 0x21
	DataLightEvent   DataType = 0x22
	DataLightDefault DataType = 0x23

	DataRawMotion DataType = 0x30
	DataRawFlow   DataType = 0x31

	DataState    DataType = 0x40
	DataAttitude DataType = 0x41
	DataPosition DataType = 0x42
	DataAltitude DataType = 0x43
	DataMotion   DataType = 0x44
	DataRange    DataType = 0x45
	DataFlow     DataType = 0x46

	DataCount              DataType = 0x50
	DataBias               DataType = 0x51
	DataTrim               DataType = 0x52
	DataWeight             DataType = 0x53
	DataLostConnection     DataType = 0x54
	DataMagnetometerOffset DataType = 0x55

	DataMotor       DataType = 0x60
	DataMotorSingle DataType = 0x61
	DataBuzzer      DataType = 0x62
	DataVibrator    DataType = 0x63

	DataButton   DataType = 0x70
	DataJoystick DataType = 0x71

	DataDisplayClear           DataType = 0x80
	DataDisplayInvert          DataType = 0x81
	DataDisplayDrawPoint       DataType = 0x82
	DataDisplayDrawLine        DataType = 0x83
	DataDisplayDrawRect        DataType = 0x84
	DataDisplayDrawCircle      DataType = 0x85
	DataDisplayDrawString      DataType = 0x86
	DataDisplayDrawStringAlign DataType = 0x87
	DataDisplayDrawImage       DataType = 0x88

	DataCardClassify     DataType = 0x90
	DataCardRange        DataType = 0x91
	DataCardRaw          DataType = 0x92
	DataCardColor        DataType = 0x93
	DataCardList         DataType = 0x94
	DataCardFunctionList DataType = 0x95

	DataInformationAssembledForController DataType = 0xA0
	DataInformationAssembledForEntry      DataType = 0xA1
	DataInformationAssembledForByBlocks   DataType = 0xA2

	DataNavigationTarget         DataType = 0xD0
	DataNavigationLocation       DataType = 0xD1
	DataNavigationMonitor        DataType = 0xD2
	DataNavigationHeading        DataType = 0xD3
	DataNavigationCounter        DataType = 0xD4
	DataNavigationSatellite      DataType = 0xD5
	DataNavigationLocationAdjust DataType = 0xD6

	DataNavigationTargetEcef   DataType = 0xD8
	DataNavigationLocationEcef DataType = 0xD9

	DataGpsRtkNavigationState            DataType = 0xDA
	DataGpsRtkExtendedRawMeasurementData DataType = 0xDB

	DataUwbPosition DataType = 0xE0
	DataTagData     DataType = 0xE1

	DataExternalCameraState   DataType = 0xE2
	DataExternalCameraCommand DataType = 0xE3
)

var dataTypeDefined = func() map[DataType]bool {
	m := map[DataType]bool{}
	for _, d := range []DataType{
		DataNone, DataPing, DataAck, DataError, DataRequest, DataMessage, DataAddress,
		DataInformation, DataUpdate, DataUpdateLocation, DataEncrypt, DataSystemCount,
		DataSystemInformation, DataRegistration, DataAdministrator, DataMonitor, DataControl,
		DataCommand, DataPairing, DataRssi, DataTimeSync, DataTransmissionPower,
		DataConfiguration, DataEcho, DataBattle,
		DataLightManual, DataLightMode, DataLightEvent, DataLightDefault,
		DataRawMotion, DataRawFlow,
		DataState, DataAttitude, DataPosition, DataAltitude, DataMotion, DataRange, DataFlow,
		DataCount, DataBias, DataTrim, DataWeight, DataLostConnection, DataMagnetometerOffset,
		DataMotor, DataMotorSingle, DataBuzzer, DataVibrator,
		DataButton, DataJoystick,
		DataDisplayClear, DataDisplayInvert, DataDisplayDrawPoint, DataDisplayDrawLine,
		DataDisplayDrawRect, DataDisplayDrawCircle, DataDisplayDrawString,
		DataDisplayDrawStringAlign, DataDisplayDrawImage,
		DataCardClassify, DataCardRange, DataCardRaw, DataCardColor, DataCardList, DataCardFunctionList,
		DataInformationAssembledForController, DataInformationAssembledForEntry, DataInformationAssembledForByBlocks,
		DataNavigationTarget, DataNavigationLocation, DataNavigationMonitor, DataNavigationHeading,
		DataNavigationCounter, DataNavigationSatellite, DataNavigationLocationAdjust,
		DataNavigationTargetEcef, DataNavigationLocationEcef,
		DataGpsRtkNavigationState, DataGpsRtkExtendedRawMeasurementData,
		DataUwbPosition, DataTagData, DataExternalCameraState, DataExternalCameraCommand,
	} {
		m[d] = true
	}
	return m
}()

// DataTypeFromU8 performs the total enum conversion: unknown bytes map to
// DataNone rather than erroring.
func DataTypeFromU8(b uint8) DataType {
	d := DataType(b)
	if dataTypeDefined[d] {
		return d
	}
	return DataNone
}

// IsDefined reports whether d names a DataType this protocol defines. The
// framing layer rejects a header whose DataType byte is undefined (spec
// §4.3); payload-level DataType fields (e.g. Quad8AndRequestData.DataType)
// are not subject to this check and simply decode to DataNone.
func (d DataType) IsDefined() bool {
	return dataTypeDefined[d]
}

// ModelNumber identifies a specific hardware revision. On the wire it is a
// little-endian u32 whose second octet equals the owning device's
// DeviceType.
type ModelNumber uint32

const (
	ModelNone ModelNumber = 0x00000000

	ModelDrone3DroneP1  ModelNumber = 0x00031001
	ModelDrone3DroneP10 ModelNumber = 0x0003100A

	ModelDrone4DroneP4 ModelNumber = 0x00041004
	ModelDrone4DroneP5 ModelNumber = 0x00041005
	ModelDrone4DroneP6 ModelNumber = 0x00041006
	ModelDrone4DroneP7 ModelNumber = 0x00041007

	ModelDrone4ControllerP2 ModelNumber = 0x00042002
	ModelDrone4ControllerP3 ModelNumber = 0x00042003
	ModelDrone4ControllerP4 ModelNumber = 0x00042004

	ModelDrone8DroneP1 ModelNumber = 0x00081004

	ModelDrone9DroneP2 ModelNumber = 0x00091002
)

var modelNumberDefined = map[ModelNumber]bool{
	ModelNone: true,
	ModelDrone3DroneP1: true, ModelDrone3DroneP10: true,
	ModelDrone4DroneP4: true, ModelDrone4DroneP5: true, ModelDrone4DroneP6: true, ModelDrone4DroneP7: true,
	ModelDrone4ControllerP2: true, ModelDrone4ControllerP3: true, ModelDrone4ControllerP4: true,
	ModelDrone8DroneP1: true,
	ModelDrone9DroneP2: true,
}

// ModelNumberFromU32 performs the total enum conversion for model numbers.
func ModelNumberFromU32(v uint32) ModelNumber {
	m := ModelNumber(v)
	if modelNumberDefined[m] {
		return m
	}
	return ModelNone
}

// DeviceType extracts the owning device role encoded in the model number's
// second octet (e.g. 0x00031001 -> DeviceDrone).
func (m ModelNumber) DeviceType() DeviceType {
	return DeviceType((uint32(m) >> 8) & 0xFF)
}

// Version is the device firmware/hardware version, packed on the wire as a
// little-endian u32: (major<<24)|(minor<<16)|build.
type Version struct {
	Build uint16
	Minor uint8
	Major uint8
}

// VersionFromU32 unpacks a wire-format version word.
func VersionFromU32(v uint32) Version {
	return Version{
		Build: uint16(v & 0xFFFF),
		Minor: uint8((v >> 16) & 0xFF),
		Major: uint8((v >> 24) & 0xFF),
	}
}

// ToU32 packs the version back into its wire representation.
func (v Version) ToU32() uint32 {
	return uint32(v.Major)<<24 | uint32(v.Minor)<<16 | uint32(v.Build)
}

// ModeUpdate reports a device's firmware-update readiness, carried in the
// Information payload.
type ModeUpdate uint8

const (
	ModeUpdateNone  ModeUpdate = 0x00
	ModeUpdateReady ModeUpdate = 0x01
	ModeUpdateUpdate ModeUpdate = 0x02
	ModeUpdateComplete ModeUpdate = 0x03

	// ModeUpdateFailed: update ran to completion but the body CRC16 did
	// not match.
	ModeUpdateFailed       ModeUpdate = 0x04
	ModeUpdateNotAvailable ModeUpdate = 0x05
	ModeUpdateRunApplication ModeUpdate = 0x06
	ModeUpdateNotRegistered  ModeUpdate = 0x07

	// ModeUpdateEndOfType is a sentinel value, not an array length.
	ModeUpdateEndOfType ModeUpdate = 0x08
)

var modeUpdateDefined = map[ModeUpdate]bool{
	ModeUpdateNone: true, ModeUpdateReady: true, ModeUpdateUpdate: true, ModeUpdateComplete: true,
	ModeUpdateFailed: true, ModeUpdateNotAvailable: true, ModeUpdateRunApplication: true,
	ModeUpdateNotRegistered: true,
}

// ModeUpdateFromU8 performs the total enum conversion.
func ModeUpdateFromU8(b uint8) ModeUpdate {
	m := ModeUpdate(b)
	if modeUpdateDefined[m] {
		return m
	}
	return ModeUpdateNone
}

// Header is the 4-byte frame header: DataType, payload Length, From and To
// device roles. It is a small value type, cheap to copy.
type Header struct {
	DataType DataType
	Length   uint8
	From     DeviceType
	To       DeviceType
}

// ToVec encodes the header as its 4 wire bytes, in order.
func (h Header) ToVec() []byte {
	return []byte{uint8(h.DataType), h.Length, uint8(h.From), uint8(h.To)}
}

// ParseHeader decodes a 4-byte header. Unlike the framing layer (which
// rejects undefined DataType/DeviceType bytes outright), this decode is
// total: undefined bytes simply become None/None/None — framing validation
// is the receiver's job, not the codec's.
func ParseHeader(data []byte) (Header, error) {
	if len(data) != 4 {
		return Header{}, errWrongLength
	}
	return Header{
		DataType: DataTypeFromU8(data[0]),
		Length:   data[1],
		From:     DeviceTypeFromU8(data[2]),
		To:       DeviceTypeFromU8(data[3]),
	}, nil
}
