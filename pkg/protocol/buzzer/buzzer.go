// Package buzzer holds the buzzer payload kinds: melody-table playback,
// musical-scale tones, and raw-frequency tones, grounded in the original
// Rust crate's protocol/buzzer.rs.
package buzzer

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// Mode selects how a buzzer command takes effect.
type Mode uint8

const (
	ModeStop Mode = 0

	ModeMuteInstantly   Mode = 1
	ModeMuteContinually Mode = 2

	ModeScaleInstantly   Mode = 3
	ModeScaleContinually Mode = 4

	ModeHzInstantly   Mode = 5
	ModeHzContinually Mode = 6
)

var modeDefined = map[Mode]bool{
	ModeStop: true, ModeMuteInstantly: true, ModeMuteContinually: true,
	ModeScaleInstantly: true, ModeScaleContinually: true, ModeHzInstantly: true, ModeHzContinually: true,
}

// ModeFromU8 performs the total enum conversion.
func ModeFromU8(b uint8) Mode {
	m := Mode(b)
	if modeDefined[m] {
		return m
	}
	return ModeStop
}

// Scale names a musical note, C1 through B8, plus the Mute/Fin sentinels
// used in melody tables.
type Scale uint16

const (
	ScaleC1 Scale = iota
	ScaleCS1
	ScaleD1
	ScaleDS1
	ScaleE1
	ScaleF1
	ScaleFS1
	ScaleG1
	ScaleGS1
	ScaleA1
	ScaleAS1
	ScaleB1
	ScaleC2
	ScaleCS2
	ScaleD2
	ScaleDS2
	ScaleE2
	ScaleF2
	ScaleFS2
	ScaleG2
	ScaleGS2
	ScaleA2
	ScaleAS2
	ScaleB2
	ScaleC3
	ScaleCS3
	ScaleD3
	ScaleDS3
	ScaleE3
	ScaleF3
	ScaleFS3
	ScaleG3
	ScaleGS3
	ScaleA3
	ScaleAS3
	ScaleB3
	ScaleC4
	ScaleCS4
	ScaleD4
	ScaleDS4
	ScaleE4
	ScaleF4
	ScaleFS4
	ScaleG4
	ScaleGS4
	ScaleA4
	ScaleAS4
	ScaleB4
	ScaleC5
	ScaleCS5
	ScaleD5
	ScaleDS5
	ScaleE5
	ScaleF5
	ScaleFS5
	ScaleG5
	ScaleGS5
	ScaleA5
	ScaleAS5
	ScaleB5
	ScaleC6
	ScaleCS6
	ScaleD6
	ScaleDS6
	ScaleE6
	ScaleF6
	ScaleFS6
	ScaleG6
	ScaleGS6
	ScaleA6
	ScaleAS6
	ScaleB6
	ScaleC7
	ScaleCS7
	ScaleD7
	ScaleDS7
	ScaleE7
	ScaleF7
	ScaleFS7
	ScaleG7
	ScaleGS7
	ScaleA7
	ScaleAS7
	ScaleB7
	ScaleC8
	ScaleCS8
	ScaleD8
	ScaleDS8
	ScaleE8
	ScaleF8
	ScaleFS8
	ScaleG8
	ScaleGS8
	ScaleA8
	ScaleAS8
	ScaleB8
)

const (
	// ScaleMute silences the buzzer for the entry's duration.
	ScaleMute Scale = 0xEE
	// ScaleFin marks the end of a melody table.
	ScaleFin Scale = 0xFF
)

var scaleDefined = func() map[Scale]bool {
	m := map[Scale]bool{ScaleMute: true, ScaleFin: true}
	for s := ScaleC1; s <= ScaleB8; s++ {
		m[s] = true
	}
	return m
}()

// ScaleFromU16 performs the total enum conversion; unrecognized values map
// to ScaleMute, matching the source's "unknown note plays as silence"
// convention.
func ScaleFromU16(v uint16) Scale {
	s := Scale(v)
	if scaleDefined[s] {
		return s
	}
	return ScaleMute
}

// MelodySize is Melody's fixed wire size in bytes.
const MelodySize = 2

// Melody selects a preprogrammed song by index, with a repeat count.
type Melody struct {
	Melody uint8
	Repeat uint8
}

// ParseMelody decodes a Melody from exactly MelodySize bytes.
func ParseMelody(data []byte) (Melody, error) {
	if len(data) != MelodySize {
		return Melody{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Melody{Melody: r.GetU8(), Repeat: r.GetU8()}, nil
}

// ToVec serializes the Melody.
func (m Melody) ToVec() []byte {
	return []byte{m.Melody, m.Repeat}
}

// ScaleCommandSize is Scale's fixed wire size in bytes.
const ScaleCommandSize = 5

// ScaleCommand plays a musical note for a duration, in milliseconds.
type ScaleCommand struct {
	Mode  Mode
	Scale Scale
	Time  uint16
}

// ParseScaleCommand decodes a ScaleCommand from exactly ScaleCommandSize
// bytes.
func ParseScaleCommand(data []byte) (ScaleCommand, error) {
	if len(data) != ScaleCommandSize {
		return ScaleCommand{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return ScaleCommand{
		Mode:  ModeFromU8(r.GetU8()),
		Scale: ScaleFromU16(r.GetU16()),
		Time:  r.GetU16(),
	}, nil
}

// ToVec serializes the ScaleCommand.
func (s ScaleCommand) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(s.Mode))
	w.PutU16(uint16(s.Scale))
	w.PutU16(s.Time)
	return w.Bytes()
}

// HzCommandSize is Hz's fixed wire size in bytes.
const HzCommandSize = 5

// HzCommand plays a raw frequency for a duration, both in the units the
// buzzer firmware expects (Hz, milliseconds).
type HzCommand struct {
	Mode Mode
	Hz   uint16
	Time uint16
}

// ParseHzCommand decodes an HzCommand from exactly HzCommandSize bytes.
func ParseHzCommand(data []byte) (HzCommand, error) {
	if len(data) != HzCommandSize {
		return HzCommand{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return HzCommand{
		Mode: ModeFromU8(r.GetU8()),
		Hz:   r.GetU16(),
		Time: r.GetU16(),
	}, nil
}

// ToVec serializes the HzCommand.
func (h HzCommand) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(uint8(h.Mode))
	w.PutU16(h.Hz)
	w.PutU16(h.Time)
	return w.Bytes()
}
