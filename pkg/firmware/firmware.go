// Package firmware loads and slices an encrypted firmware image: a
// 16-byte header identifying the target model/version followed by a
// block-aligned body, grounded in the original Rust crate's file.rs
// EncryptedBinary/EncryptedBinaryHeader and fed to the Update datagram
// (protocol/system.Update) one block at a time.
package firmware

import (
	"fmt"
	"os"

	"github.com/byrobot-go/edrone/pkg/protocol"
	"github.com/byrobot-go/edrone/pkg/wire"
)

// HeaderSize is EncryptedBinaryHeader's fixed wire size in bytes.
const HeaderSize = 16

// BlockSize is the Update datagram's block granularity in bytes.
const BlockSize = 16

// EncryptedBinaryHeader identifies the image's target model, firmware
// version, and declared body length.
type EncryptedBinaryHeader struct {
	ModelNumber protocol.ModelNumber
	Version     protocol.Version
	Length      uint32
	Year        uint16
	Month       uint8
	Day         uint8
}

// ParseEncryptedBinaryHeader decodes a header from exactly HeaderSize
// bytes.
func ParseEncryptedBinaryHeader(data []byte) (EncryptedBinaryHeader, error) {
	if len(data) != HeaderSize {
		return EncryptedBinaryHeader{}, protocol.ErrWrongLength
	}
	r := wire.NewReader(data)
	return EncryptedBinaryHeader{
		ModelNumber: protocol.ModelNumberFromU32(r.GetU32()),
		Version:     protocol.VersionFromU32(r.GetU32()),
		Length:      r.GetU32(),
		Year:        r.GetU16(),
		Month:       r.GetU8(),
		Day:         r.GetU8(),
	}, nil
}

// ToVec serializes the header.
func (h EncryptedBinaryHeader) ToVec() []byte {
	w := wire.NewWriter()
	w.PutU32(uint32(h.ModelNumber))
	w.PutU32(h.Version.ToU32())
	w.PutU32(h.Length)
	w.PutU16(h.Year)
	w.PutU8(h.Month)
	w.PutU8(h.Day)
	return w.Bytes()
}

// EncryptedBinary is a loaded firmware image: its header plus the whole
// file's raw bytes (header included, matching the original's data_array).
type EncryptedBinary struct {
	FileName  string
	Header    EncryptedBinaryHeader
	DataArray []byte
	Open      bool
}

// Read loads the entire file into memory and parses its header. Any read
// or header-parse failure leaves Open false rather than returning an
// error — a corrupt or missing image is reported via the Open flag, not
// a panic or bubbled error, matching the original's read() -> bool.
func Read(path string) EncryptedBinary {
	bin := EncryptedBinary{FileName: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return bin
	}
	bin.DataArray = data

	if len(data) < HeaderSize {
		return bin
	}
	header, err := ParseEncryptedBinaryHeader(data[:HeaderSize])
	if err != nil {
		return bin
	}
	bin.Header = header
	bin.Open = true
	return bin
}

// TotalLen returns the image's total on-disk length, header included.
func (b EncryptedBinary) TotalLen() int { return len(b.DataArray) }

// Block returns the bytes covering BlockSize-aligned blocks
// [index, index+count), clamped to the end of the data array. It reports
// false if index's starting byte offset is already past the end of the
// data, matching the original's Option-returning block().
func (b EncryptedBinary) Block(index, count uint32) ([]byte, bool) {
	start := int(index) * BlockSize
	if start >= len(b.DataArray) {
		return nil, false
	}
	end := int(index+count) * BlockSize
	if end > len(b.DataArray) {
		end = len(b.DataArray)
	}
	return b.DataArray[start:end], true
}

// String renders a short diagnostic summary suitable for a single log line.
func (b EncryptedBinary) String() string {
	return fmt.Sprintf("firmware{file=%s model=%#x version=%d.%d.%d length=%d open=%t}",
		b.FileName, uint32(b.Header.ModelNumber), b.Header.Version.Major, b.Header.Version.Minor, b.Header.Version.Build,
		b.Header.Length, b.Open)
}
