// Package card holds the floor-card color-recognition payload family: color
// classification results, raw/processed sensor readings, and the coding-card
// ID lists used by the block-programming firmware, grounded in the
// original Rust crate's protocol/card.rs.
package card

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// Color names a recognized floor color.
type Color uint8

const (
	ColorUnknown Color = 0x00
	ColorWhite   Color = 0x01
	ColorRed     Color = 0x02
	ColorYellow  Color = 0x03
	ColorGreen   Color = 0x04
	ColorCyan    Color = 0x05
	ColorBlue    Color = 0x06
	ColorMagenta Color = 0x07
	ColorBlack   Color = 0x08
	ColorGrey    Color = 0x09
)

var colorDefined = map[Color]bool{
	ColorUnknown: true, ColorWhite: true, ColorRed: true, ColorYellow: true, ColorGreen: true,
	ColorCyan: true, ColorBlue: true, ColorMagenta: true, ColorBlack: true, ColorGrey: true,
}

// ColorFromU8 performs the total enum conversion.
func ColorFromU8(b uint8) Color {
	c := Color(b)
	if colorDefined[c] {
		return c
	}
	return ColorUnknown
}

// classifyColumns is the number of i8 classification columns per card in a
// Classify entry.
const classifyColumns = 36

// ClassifySize is one Classify entry's fixed wire size in bytes.
const ClassifySize = 1 + classifyColumns + 2

// Classify is one frame of the raw front/rear color classification
// coefficients the drone streams during card calibration. A single
// payload carries a repeating run of these back to back.
type Classify struct {
	Index int8
	CC    [classifyColumns]int8
	L     [2]int8
}

// ParseClassifyList decodes a repeating run of Classify entries. The
// payload length must be a positive multiple of ClassifySize.
func ParseClassifyList(data []byte) ([]Classify, error) {
	if len(data) == 0 || len(data)%ClassifySize != 0 {
		return nil, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	out := make([]Classify, 0, len(data)/ClassifySize)
	for r.Remaining() > 0 {
		var c Classify
		c.Index = r.GetI8()
		for i := range c.CC {
			c.CC[i] = r.GetI8()
		}
		for i := range c.L {
			c.L[i] = r.GetI8()
		}
		out = append(out, c)
	}
	return out, nil
}

// ToVec serializes one Classify entry.
func (c Classify) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI8(c.Index)
	for _, v := range c.CC {
		w.PutI8(v)
	}
	for _, v := range c.L {
		w.PutI8(v)
	}
	return w.Bytes()
}

// RangeSize is Range's fixed wire size in bytes.
const RangeSize = 2 * 12

// Range carries the front- and rear-sensor min/max RGB calibration bounds.
type Range struct {
	// Values holds, in order: front R min/max, G min/max, B min/max, then
	// the same six for the rear sensor.
	Values [12]int16
}

// ParseRange decodes a Range from exactly RangeSize bytes.
func ParseRange(data []byte) (Range, error) {
	if len(data) != RangeSize {
		return Range{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	var out Range
	for i := range out.Values {
		out.Values[i] = r.GetI16()
	}
	return out, nil
}

// ToVec serializes the Range.
func (rg Range) ToVec() []byte {
	w := wire.NewWriter()
	for _, v := range rg.Values {
		w.PutI16(v)
	}
	return w.Bytes()
}

// RawSize is one Raw entry's fixed wire size in bytes.
const RawSize = (2 * 2 * 3) + (2 * 3) + (2 * 2 * 4) + 2 + 1

// Raw carries one sample of unprocessed front/rear color-sensor readings:
// raw ADC values, derived RGB, derived HSVL, and the classified colors.
type Raw struct {
	Raw   [6]int16
	Rgb   [6]uint8
	Hsvl  [8]int16
	Color [2]uint8
	Card  uint8
}

// ParseRawList decodes a repeating run of Raw entries. The payload length
// must be a positive multiple of RawSize.
func ParseRawList(data []byte) ([]Raw, error) {
	if len(data) == 0 || len(data)%RawSize != 0 {
		return nil, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	out := make([]Raw, 0, len(data)/RawSize)
	for r.Remaining() > 0 {
		var v Raw
		for i := range v.Raw {
			v.Raw[i] = r.GetI16()
		}
		for i := range v.Rgb {
			v.Rgb[i] = r.GetU8()
		}
		for i := range v.Hsvl {
			v.Hsvl[i] = r.GetI16()
		}
		for i := range v.Color {
			v.Color[i] = r.GetU8()
		}
		v.Card = r.GetU8()
		out = append(out, v)
	}
	return out, nil
}

// ToVec serializes one Raw entry.
func (rw Raw) ToVec() []byte {
	w := wire.NewWriter()
	for _, v := range rw.Raw {
		w.PutI16(v)
	}
	for _, v := range rw.Rgb {
		w.PutU8(v)
	}
	for _, v := range rw.Hsvl {
		w.PutI16(v)
	}
	for _, v := range rw.Color {
		w.PutU8(v)
	}
	w.PutU8(rw.Card)
	return w.Bytes()
}

// ColorReadingSize is one ColorReading entry's fixed wire size in bytes.
const ColorReadingSize = (2 * 2 * 4) + 2 + 1

// ColorReading carries one sample of the derived front/rear HSVL readings
// and classified colors, without the raw ADC values Raw also carries.
type ColorReading struct {
	Hsvl  [8]int16
	Color [2]uint8
	Card  uint8
}

// ParseColorReadingList decodes a repeating run of ColorReading entries.
// The payload length must be a positive multiple of ColorReadingSize.
func ParseColorReadingList(data []byte) ([]ColorReading, error) {
	if len(data) == 0 || len(data)%ColorReadingSize != 0 {
		return nil, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	out := make([]ColorReading, 0, len(data)/ColorReadingSize)
	for r.Remaining() > 0 {
		var v ColorReading
		for i := range v.Hsvl {
			v.Hsvl[i] = r.GetI16()
		}
		for i := range v.Color {
			v.Color[i] = r.GetU8()
		}
		v.Card = r.GetU8()
		out = append(out, v)
	}
	return out, nil
}

// ToVec serializes one ColorReading entry.
func (cr ColorReading) ToVec() []byte {
	w := wire.NewWriter()
	for _, v := range cr.Hsvl {
		w.PutI16(v)
	}
	for _, v := range cr.Color {
		w.PutU8(v)
	}
	w.PutU8(cr.Card)
	return w.Bytes()
}

// ListCardMinSize is ListCard's fixed header size in bytes.
const ListCardMinSize = 3

// ListCard carries one page of a run-length-coded card-name sequence
// recognized during card-coding playback.
type ListCard struct {
	IndexRun  uint8
	TotalSize uint8
	Index     uint8
	Card      []uint8
}

// ParseListCard decodes a ListCard from at least ListCardMinSize bytes.
func ParseListCard(data []byte) (ListCard, error) {
	if len(data) < ListCardMinSize {
		return ListCard{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	lc := ListCard{IndexRun: r.GetU8(), TotalSize: r.GetU8(), Index: r.GetU8()}
	lc.Card = r.GetRemaining()
	return lc, nil
}

// Length returns the payload's total on-wire length.
func (lc ListCard) Length() int { return ListCardMinSize + len(lc.Card) }

// ToVec serializes the ListCard.
func (lc ListCard) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(lc.IndexRun)
	w.PutU8(lc.TotalSize)
	w.PutU8(lc.Index)
	w.PutArray(lc.Card)
	return w.Bytes()
}

// ListFunctionMinSize is ListFunction's fixed header size in bytes.
const ListFunctionMinSize = 3

// ListFunction carries one page of a run-length-coded function-card
// sequence, shaped identically to ListCard but scoped to function cards.
type ListFunction struct {
	IndexRun  uint8
	TotalSize uint8
	Index     uint8
	Card      []uint8
}

// ParseListFunction decodes a ListFunction from at least
// ListFunctionMinSize bytes.
func ParseListFunction(data []byte) (ListFunction, error) {
	if len(data) < ListFunctionMinSize {
		return ListFunction{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	lf := ListFunction{IndexRun: r.GetU8(), TotalSize: r.GetU8(), Index: r.GetU8()}
	lf.Card = r.GetRemaining()
	return lf, nil
}

// Length returns the payload's total on-wire length.
func (lf ListFunction) Length() int { return ListFunctionMinSize + len(lf.Card) }

// ToVec serializes the ListFunction.
func (lf ListFunction) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU8(lf.IndexRun)
	w.PutU8(lf.TotalSize)
	w.PutU8(lf.Index)
	w.PutArray(lf.Card)
	return w.Bytes()
}
