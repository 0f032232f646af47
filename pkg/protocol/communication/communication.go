// Package communication holds link-quality and pairing payload kinds,
// grounded in the original Rust crate's protocol/communication.rs.
package communication

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// PairingSize is Pairing's fixed wire size in bytes.
const PairingSize = 11

// Pairing carries the address, scramble key, and channel set a controller
// uses to bond with a drone.
type Pairing struct {
	Address  [3]uint16
	Scramble uint8
	Channel  [4]uint8
}

// ParsePairing decodes a Pairing from exactly PairingSize bytes.
func ParsePairing(data []byte) (Pairing, error) {
	if len(data) != PairingSize {
		return Pairing{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	var p Pairing
	for i := range p.Address {
		p.Address[i] = r.GetU16()
	}
	p.Scramble = r.GetU8()
	for i := range p.Channel {
		p.Channel[i] = r.GetU8()
	}
	return p, nil
}

// ToVec serializes the Pairing.
func (p Pairing) ToVec() []byte {
	w := wire.NewWriter()
	for _, a := range p.Address {
		w.PutU16(a)
	}
	w.PutU8(p.Scramble)
	for _, c := range p.Channel {
		w.PutU8(c)
	}
	return w.Bytes()
}

// RssiSize is Rssi's fixed wire size in bytes.
const RssiSize = 1

// Rssi reports the received signal strength, in dBm.
type Rssi struct {
	Rssi int8
}

// ParseRssi decodes an Rssi from exactly RssiSize bytes.
func ParseRssi(data []byte) (Rssi, error) {
	if len(data) != RssiSize {
		return Rssi{}, protocol.ErrWrongLength
	}
	return Rssi{Rssi: int8(data[0])}, nil
}

// ToVec serializes the Rssi.
func (r Rssi) ToVec() []byte { return []byte{uint8(r.Rssi)} }
