// Package display holds the onboard-screen drawing payload kinds: clear,
// invert, and the point/line/rect/circle/string/image primitives, grounded
// in the original Rust crate's protocol/display.rs (enums) with sizes and
// field layout per the wire contract (display.rs's own draw-op structs beyond
// DrawPoint did not survive in the retrieved source).
package display

import (
	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// Pixel names a drawing operation's pen color against the 1-bit display.
type Pixel uint8

const (
	PixelBlack   Pixel = 0x00
	PixelWhite   Pixel = 0x01
	PixelInverse Pixel = 0x02
	PixelOutline Pixel = 0x03
)

var pixelDefined = map[Pixel]bool{PixelBlack: true, PixelWhite: true, PixelInverse: true, PixelOutline: true}

// PixelFromU8 performs the total enum conversion.
func PixelFromU8(b uint8) Pixel {
	p := Pixel(b)
	if pixelDefined[p] {
		return p
	}
	return PixelBlack
}

// LineStyle names how DrawLine renders its stroke.
type LineStyle uint8

const (
	LineStyleSolid  LineStyle = 0
	LineStyleDotted LineStyle = 1
	LineStyleDashed LineStyle = 2
)

var lineStyleDefined = map[LineStyle]bool{LineStyleSolid: true, LineStyleDotted: true, LineStyleDashed: true}

// LineStyleFromU8 performs the total enum conversion.
func LineStyleFromU8(b uint8) LineStyle {
	s := LineStyle(b)
	if lineStyleDefined[s] {
		return s
	}
	return LineStyleSolid
}

// Font names one of the two built-in bitmap fonts.
type Font uint8

const (
	FontLM5x8  Font = 0x00
	FontLM10x16 Font = 0x01
)

var fontDefined = map[Font]bool{FontLM5x8: true, FontLM10x16: true}

// FontFromU8 performs the total enum conversion.
func FontFromU8(b uint8) Font {
	f := Font(b)
	if fontDefined[f] {
		return f
	}
	return FontLM5x8
}

// Align names text alignment relative to the drawing cursor.
type Align uint8

const (
	AlignLeft   Align = 0x00
	AlignCenter Align = 0x01
	AlignRight  Align = 0x02
)

var alignDefined = map[Align]bool{AlignLeft: true, AlignCenter: true, AlignRight: true}

// AlignFromU8 performs the total enum conversion.
func AlignFromU8(b uint8) Align {
	a := Align(b)
	if alignDefined[a] {
		return a
	}
	return AlignLeft
}

// ClearAllSize is the ClearAll payload's fixed wire size in bytes.
const ClearAllSize = 1

// ClearAll wipes the whole screen to the given pixel value.
type ClearAll struct {
	Pixel Pixel
}

// ParseClearAll decodes a ClearAll from exactly ClearAllSize bytes.
func ParseClearAll(data []byte) (ClearAll, error) {
	if len(data) != ClearAllSize {
		return ClearAll{}, protocol.ErrWrongLength
	}
	return ClearAll{Pixel: PixelFromU8(data[0])}, nil
}

// ToVec serializes the ClearAll.
func (c ClearAll) ToVec() []byte { return []byte{uint8(c.Pixel)} }

// ClearSize is Clear's fixed wire size in bytes.
const ClearSize = 9

// Clear wipes a rectangular region.
type Clear struct {
	X, Y, Width, Height int16
	Pixel               Pixel
}

// ParseClear decodes a Clear from exactly ClearSize bytes.
func ParseClear(data []byte) (Clear, error) {
	if len(data) != ClearSize {
		return Clear{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Clear{
		X: r.GetI16(), Y: r.GetI16(), Width: r.GetI16(), Height: r.GetI16(),
		Pixel: PixelFromU8(r.GetU8()),
	}, nil
}

// ToVec serializes the Clear.
func (c Clear) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(c.X)
	w.PutI16(c.Y)
	w.PutI16(c.Width)
	w.PutI16(c.Height)
	w.PutU8(uint8(c.Pixel))
	return w.Bytes()
}

// InvertSize is Invert's fixed wire size in bytes.
const InvertSize = 8

// Invert flips pixel values within a rectangular region.
type Invert struct {
	X, Y, Width, Height int16
}

// ParseInvert decodes an Invert from exactly InvertSize bytes.
func ParseInvert(data []byte) (Invert, error) {
	if len(data) != InvertSize {
		return Invert{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return Invert{X: r.GetI16(), Y: r.GetI16(), Width: r.GetI16(), Height: r.GetI16()}, nil
}

// ToVec serializes the Invert.
func (i Invert) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(i.X)
	w.PutI16(i.Y)
	w.PutI16(i.Width)
	w.PutI16(i.Height)
	return w.Bytes()
}

// DrawPointSize is DrawPoint's fixed wire size in bytes.
const DrawPointSize = 5

// DrawPoint sets a single pixel.
type DrawPoint struct {
	X, Y  int16
	Pixel Pixel
}

// ParseDrawPoint decodes a DrawPoint from exactly DrawPointSize bytes.
func ParseDrawPoint(data []byte) (DrawPoint, error) {
	if len(data) != DrawPointSize {
		return DrawPoint{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return DrawPoint{X: r.GetI16(), Y: r.GetI16(), Pixel: PixelFromU8(r.GetU8())}, nil
}

// ToVec serializes the DrawPoint.
func (d DrawPoint) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(d.X)
	w.PutI16(d.Y)
	w.PutU8(uint8(d.Pixel))
	return w.Bytes()
}

// DrawLineSize is DrawLine's fixed wire size in bytes.
const DrawLineSize = 10

// DrawLine strokes a line between two points.
type DrawLine struct {
	X1, Y1, X2, Y2 int16
	Pixel          Pixel
	Line           LineStyle
}

// ParseDrawLine decodes a DrawLine from exactly DrawLineSize bytes.
func ParseDrawLine(data []byte) (DrawLine, error) {
	if len(data) != DrawLineSize {
		return DrawLine{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return DrawLine{
		X1: r.GetI16(), Y1: r.GetI16(), X2: r.GetI16(), Y2: r.GetI16(),
		Pixel: PixelFromU8(r.GetU8()), Line: LineStyleFromU8(r.GetU8()),
	}, nil
}

// ToVec serializes the DrawLine.
func (d DrawLine) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(d.X1)
	w.PutI16(d.Y1)
	w.PutI16(d.X2)
	w.PutI16(d.Y2)
	w.PutU8(uint8(d.Pixel))
	w.PutU8(uint8(d.Line))
	return w.Bytes()
}

// DrawRectSize is DrawRect's fixed wire size in bytes.
const DrawRectSize = 11

// DrawRect strokes (and optionally fills) a rectangle.
type DrawRect struct {
	X, Y, Width, Height int16
	Pixel               Pixel
	Fill                bool
	Line                LineStyle
}

// ParseDrawRect decodes a DrawRect from exactly DrawRectSize bytes.
func ParseDrawRect(data []byte) (DrawRect, error) {
	if len(data) != DrawRectSize {
		return DrawRect{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return DrawRect{
		X: r.GetI16(), Y: r.GetI16(), Width: r.GetI16(), Height: r.GetI16(),
		Pixel: PixelFromU8(r.GetU8()), Fill: r.GetBool(), Line: LineStyleFromU8(r.GetU8()),
	}, nil
}

// ToVec serializes the DrawRect.
func (d DrawRect) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(d.X)
	w.PutI16(d.Y)
	w.PutI16(d.Width)
	w.PutI16(d.Height)
	w.PutU8(uint8(d.Pixel))
	w.PutBool(d.Fill)
	w.PutU8(uint8(d.Line))
	return w.Bytes()
}

// DrawCircleSize is DrawCircle's fixed wire size in bytes.
const DrawCircleSize = 8

// DrawCircle strokes (and optionally fills) a circle.
type DrawCircle struct {
	X, Y, Radius int16
	Pixel        Pixel
	Fill         bool
}

// ParseDrawCircle decodes a DrawCircle from exactly DrawCircleSize bytes.
func ParseDrawCircle(data []byte) (DrawCircle, error) {
	if len(data) != DrawCircleSize {
		return DrawCircle{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return DrawCircle{
		X: r.GetI16(), Y: r.GetI16(), Radius: r.GetI16(),
		Pixel: PixelFromU8(r.GetU8()), Fill: r.GetBool(),
	}, nil
}

// ToVec serializes the DrawCircle.
func (d DrawCircle) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(d.X)
	w.PutI16(d.Y)
	w.PutI16(d.Radius)
	w.PutU8(uint8(d.Pixel))
	w.PutBool(d.Fill)
	return w.Bytes()
}

// DrawStringMinSize is DrawString's fixed header size in bytes; the UTF-8
// string bytes follow to the end of the frame.
const DrawStringMinSize = 6

// DrawString renders text at a point using the given font.
type DrawString struct {
	X, Y   int16
	Font   Font
	Pixel  Pixel
	String string
}

// ParseDrawString decodes a DrawString from at least DrawStringMinSize
// bytes; every byte past the header is the UTF-8 string body.
func ParseDrawString(data []byte) (DrawString, error) {
	if len(data) < DrawStringMinSize {
		return DrawString{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return DrawString{
		X: r.GetI16(), Y: r.GetI16(),
		Font: FontFromU8(r.GetU8()), Pixel: PixelFromU8(r.GetU8()),
		String: string(r.GetRemaining()),
	}, nil
}

// ToVec serializes the DrawString.
func (d DrawString) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(d.X)
	w.PutI16(d.Y)
	w.PutU8(uint8(d.Font))
	w.PutU8(uint8(d.Pixel))
	w.PutString(d.String)
	return w.Bytes()
}

// DrawStringAlignMinSize is DrawStringAlign's fixed header size in bytes;
// the UTF-8 string bytes follow to the end of the frame.
const DrawStringAlignMinSize = 9

// DrawStringAlign renders text within a region, aligned per Align.
type DrawStringAlign struct {
	X, Y, Width, Height int16
	Font                Font
	Pixel               Pixel
	Align               Align
	String              string
}

// ParseDrawStringAlign decodes a DrawStringAlign from at least
// DrawStringAlignMinSize bytes.
func ParseDrawStringAlign(data []byte) (DrawStringAlign, error) {
	if len(data) < DrawStringAlignMinSize {
		return DrawStringAlign{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return DrawStringAlign{
		X: r.GetI16(), Y: r.GetI16(), Width: r.GetI16(), Height: r.GetI16(),
		Font: FontFromU8(r.GetU8()), Pixel: PixelFromU8(r.GetU8()), Align: AlignFromU8(r.GetU8()),
		String: string(r.GetRemaining()),
	}, nil
}

// ToVec serializes the DrawStringAlign.
func (d DrawStringAlign) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(d.X)
	w.PutI16(d.Y)
	w.PutI16(d.Width)
	w.PutI16(d.Height)
	w.PutU8(uint8(d.Font))
	w.PutU8(uint8(d.Pixel))
	w.PutU8(uint8(d.Align))
	w.PutString(d.String)
	return w.Bytes()
}

// DrawImageMinSize is DrawImage's fixed header size in bytes; the packed
// pixel bytes follow to the end of the frame.
const DrawImageMinSize = 8

// DrawImage blits a packed 1-bit bitmap at a point.
type DrawImage struct {
	X, Y, Width, Height int16
	Image               []byte
}

// ParseDrawImage decodes a DrawImage from at least DrawImageMinSize bytes.
func ParseDrawImage(data []byte) (DrawImage, error) {
	if len(data) < DrawImageMinSize {
		return DrawImage{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return DrawImage{
		X: r.GetI16(), Y: r.GetI16(), Width: r.GetI16(), Height: r.GetI16(),
		Image: r.GetRemaining(),
	}, nil
}

// ToVec serializes the DrawImage.
func (d DrawImage) ToVec() []byte {
	w := wire.NewWriter()
	w.PutI16(d.X)
	w.PutI16(d.Y)
	w.PutI16(d.Width)
	w.PutI16(d.Height)
	w.PutArray(d.Image)
	return w.Bytes()
}
