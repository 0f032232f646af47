// Package system holds the core link-management payload kinds: liveness
// ping/ack, error flags, telemetry requests, raw address/admin-key blobs,
// device identity (Information), and the firmware-update block stream,
// grounded in the original Rust crate's protocol/mod.rs.
package system

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// PingSize is Ping's fixed wire size in bytes.
const PingSize = 8

// Ping carries the sender's system clock for round-trip/liveness checks.
type Ping struct {
	SystemTime uint64
}

// ParsePing decodes a Ping from exactly PingSize bytes.
func ParsePing(data []byte) (Ping, error) {
	if len(data) != PingSize {
		return Ping{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Ping{SystemTime: r.GetU64()}, nil
}

// ToVec serializes the Ping.
func (p Ping) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU64(p.SystemTime)
	return w.Bytes()
}

// AckSize is Ack's fixed wire size in bytes.
const AckSize = 11

// Ack acknowledges a previously received frame by echoing its DataType
// and CRC16.
type Ack struct {
	SystemTime uint64
	DataType   protocol.DataType
	Crc16      uint16
}

// ParseAck decodes an Ack from exactly AckSize bytes.
func ParseAck(data []byte) (Ack, error) {
	if len(data) != AckSize {
		return Ack{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Ack{
		SystemTime: r.GetU64(),
		DataType:   protocol.DataTypeFromU8(r.GetU8()),
		Crc16:      r.GetU16(),
	}, nil
}

// ToVec serializes the Ack.
func (a Ack) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU64(a.SystemTime)
	w.PutU8(uint8(a.DataType))
	w.PutU16(a.Crc16)
	return w.Bytes()
}

// ErrorSize is Error's fixed wire size in bytes.
const ErrorSize = 16

// Error reports the sender's onboard sensor/state error-flag bitmasks.
type Error struct {
	SystemTime          uint64
	ErrorFlagsForSensor uint32
	ErrorFlagsForState  uint32
}

// ParseError decodes an Error from exactly ErrorSize bytes.
func ParseError(data []byte) (Error, error) {
	if len(data) != ErrorSize {
		return Error{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Error{
		SystemTime:          r.GetU64(),
		ErrorFlagsForSensor: r.GetU32(),
		ErrorFlagsForState:  r.GetU32(),
	}, nil
}

// ToVec serializes the Error.
func (e Error) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU64(e.SystemTime)
	w.PutU32(e.ErrorFlagsForSensor)
	w.PutU32(e.ErrorFlagsForState)
	return w.Bytes()
}

// RequestSize is Request's fixed wire size in bytes.
const RequestSize = 1

// Request asks the peer to send back one frame of the named DataType.
type Request struct {
	DataType protocol.DataType
}

// ParseRequest decodes a Request from exactly RequestSize bytes.
func ParseRequest(data []byte) (Request, error) {
	if len(data) != RequestSize {
		return Request{}, protocol.ErrWrongLength
	}
	return Request{DataType: protocol.DataTypeFromU8(data[0])}, nil
}

// ToVec serializes the Request.
func (r Request) ToVec() []byte { return []byte{uint8(r.DataType)} }

// RequestOptionSize is RequestOption's fixed wire size in bytes.
const RequestOptionSize = 5

// RequestOption is a Request with an extra 32-bit selector, e.g. a
// Monitor index or navigation waypoint number.
type RequestOption struct {
	DataType protocol.DataType
	Option   uint32
}

// ParseRequestOption decodes a RequestOption from exactly
// RequestOptionSize bytes.
func ParseRequestOption(data []byte) (RequestOption, error) {
	if len(data) != RequestOptionSize {
		return RequestOption{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return RequestOption{DataType: protocol.DataTypeFromU8(r.GetU8()), Option: r.GetU32()}, nil
}

// ToVec serializes the RequestOption.
func (r RequestOption) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(r.DataType))
	w.PutU32(r.Option)
	return w.Bytes()
}

// AddressSize is Address's fixed wire size in bytes.
const AddressSize = 16

// Address is a raw 16-byte link-layer address blob.
type Address struct {
	Value []byte
}

// ParseAddress decodes an Address from exactly AddressSize bytes.
func ParseAddress(data []byte) (Address, error) {
	if len(data) != AddressSize {
		return Address{}, protocol.ErrWrongLength
	}
	value := make([]byte, AddressSize)
	copy(value, data)
	return Address{Value: value}, nil
}

// ToVec serializes the Address.
func (a Address) ToVec() []byte {
	out := make([]byte, AddressSize)
	copy(out, a.Value)
	return out
}

// AdministratorSize is Administrator's fixed wire size in bytes.
const AdministratorSize = 16

// Administrator is a raw 16-byte administrator-key blob.
type Administrator struct {
	Key []byte
}

// ParseAdministrator decodes an Administrator from exactly
// AdministratorSize bytes.
func ParseAdministrator(data []byte) (Administrator, error) {
	if len(data) != AdministratorSize {
		return Administrator{}, protocol.ErrWrongLength
	}
	key := make([]byte, AdministratorSize)
	copy(key, data)
	return Administrator{Key: key}, nil
}

// ToVec serializes the Administrator.
func (a Administrator) ToVec() []byte {
	out := make([]byte, AdministratorSize)
	copy(out, a.Key)
	return out
}

// InformationSize is Information's fixed wire size in bytes.
const InformationSize = 13

// Information identifies a device's hardware model, firmware version, and
// build date, and reports its update readiness.
type Information struct {
	ModeUpdate  protocol.ModeUpdate
	ModelNumber protocol.ModelNumber
	Version     protocol.Version
	Year        uint16
	Month       uint8
	Day         uint8
}

// ParseInformation decodes an Information from exactly InformationSize
// bytes.
func ParseInformation(data []byte) (Information, error) {
	if len(data) != InformationSize {
		return Information{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Information{
		ModeUpdate:  protocol.ModeUpdateFromU8(r.GetU8()),
		ModelNumber: protocol.ModelNumberFromU32(r.GetU32()),
		Version:     protocol.VersionFromU32(r.GetU32()),
		Year:        r.GetU16(),
		Month:       r.GetU8(),
		Day:         r.GetU8(),
	}, nil
}

// ToVec serializes the Information.
func (i Information) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(i.ModeUpdate))
	w.PutU32(uint32(i.ModelNumber))
	w.PutU32(i.Version.ToU32())
	w.PutU16(i.Year)
	w.PutU8(i.Month)
	w.PutU8(i.Day)
	return w.Bytes()
}

// SystemInformationSize is SystemInformation's fixed wire size in bytes.
const SystemInformationSize = 8

// SystemInformation reports the CRC32 of the installed bootloader and
// application images.
type SystemInformation struct {
	Crc32Bootloader uint32
	Crc32Application uint32
}

// ParseSystemInformation decodes a SystemInformation from exactly
// SystemInformationSize bytes.
func ParseSystemInformation(data []byte) (SystemInformation, error) {
	if len(data) != SystemInformationSize {
		return SystemInformation{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return SystemInformation{Crc32Bootloader: r.GetU32(), Crc32Application: r.GetU32()}, nil
}

// ToVec serializes the SystemInformation.
func (s SystemInformation) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU32(s.Crc32Bootloader)
	w.PutU32(s.Crc32Application)
	return w.Bytes()
}

// UpdateLocationSize is UpdateLocation's fixed wire size in bytes.
const UpdateLocationSize = 2

// UpdateLocation reports which firmware block the updater expects next.
type UpdateLocation struct {
	IndexBlockNext uint16
}

// ParseUpdateLocation decodes an UpdateLocation from exactly
// UpdateLocationSize bytes.
func ParseUpdateLocation(data []byte) (UpdateLocation, error) {
	if len(data) != UpdateLocationSize {
		return UpdateLocation{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return UpdateLocation{IndexBlockNext: r.GetU16()}, nil
}

// ToVec serializes the UpdateLocation.
func (u UpdateLocation) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU16(u.IndexBlockNext)
	return w.Bytes()
}

// UpdateMinSize is Update's fixed header size in bytes; the firmware block
// bytes follow to the end of the frame.
const UpdateMinSize = 2

// Update carries one firmware block, addressed by block index.
type Update struct {
	IndexBlockNext uint16
	Data           []byte
}

// ParseUpdate decodes an Update from more than UpdateMinSize bytes — it
// always carries at least one byte of block data.
func ParseUpdate(data []byte) (Update, error) {
	if len(data) <= UpdateMinSize {
		return Update{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Update{IndexBlockNext: r.GetU16(), Data: r.GetRemaining()}, nil
}

// Length returns the payload's total on-wire length.
func (u Update) Length() int { return UpdateMinSize + len(u.Data) }

// ToVec serializes the Update.
func (u Update) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU16(u.IndexBlockNext)
	w.PutArray(u.Data)
	return w.Bytes()
}
