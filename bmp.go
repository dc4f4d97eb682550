// Package ubmp reads the pixel data of Windows BMP images.
//
// Decode takes the complete file contents and returns the header fields
// found at their fixed offsets together with a flat sequence of decoded
// pixels. Compressed payloads are recognized but not decoded, and palette
// indices are not resolved to colors.
package ubmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBitmapData means that the input does not start with the
	// "BM" signature.
	ErrInvalidBitmapData = errors.New("bmp: invalid bitmap data")
	// ErrUnsupportedBitsPerPixel means that the input uses a bits-per-pixel
	// value that has no pixel decoder.
	ErrUnsupportedBitsPerPixel = errors.New("bmp: unsupported bits per pixel")
	// ErrTruncatedData means that the input is shorter than one of the
	// offsets its header declares.
	ErrTruncatedData = errors.New("bmp: truncated data")
)

// Byte offsets of the header fields. All multi-byte fields are
// little-endian.
const (
	offFileSize   = 2
	offPixOffset  = 10
	offHeaderSize = 14
	offWidth      = 18
	offHeight     = 22
	offBPP        = 28
	offMethod     = 30
	offImageSize  = 34
	offColors     = 46

	headerLen = 50
)

// BitmapV5Header is the subset of the DIB header that is decoded.
type BitmapV5Header struct {
	Size      uint32 // header size as declared in the file
	PixWidth  int32
	PixHeight int32 // negative for top-down rows; not interpreted
	BPP       uint16
	Method    CompressionMethod
	Colors    uint32
}

// Info holds the header of a bitmap without its pixels.
type Info struct {
	Size   uint32 // declared file size
	Offset uint32 // start of the pixel data
	End    uint32 // end of the pixel data
	Header BitmapV5Header
}

// Bitmap is a decoded BMP image.
//
// Data is the buffer passed to Decode. The package never modifies a Bitmap
// once it has been returned.
type Bitmap struct {
	Data   []byte
	Size   uint32
	Offset uint32
	Header BitmapV5Header
	Pixels []Pixel

	end uint32
}

// End returns the offset just past the pixel data.
func (b *Bitmap) End() uint32 {
	return b.end
}

// PixelData returns the region of Data the pixels were decoded from.
func (b *Bitmap) PixelData() []byte {
	return b.Data[b.Offset:b.end]
}

func readUint16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func readUint32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// parseHeader validates the signature and extracts the header fields. The
// pixel-data end is returned as a uint64 so that a bogus region size cannot
// wrap around.
func parseHeader(b []byte) (info Info, end uint64, err error) {
	if len(b) < 2 || string(b[:2]) != "BM" {
		return Info{}, 0, ErrInvalidBitmapData
	}
	if len(b) < headerLen {
		return Info{}, 0, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedData, headerLen, len(b))
	}
	info = Info{
		Size:   readUint32(b[offFileSize:]),
		Offset: readUint32(b[offPixOffset:]),
		Header: BitmapV5Header{
			Size:      readUint32(b[offHeaderSize:]),
			PixWidth:  int32(readUint32(b[offWidth:])),
			PixHeight: int32(readUint32(b[offHeight:])),
			BPP:       readUint16(b[offBPP:]),
			Method:    CompressionMethod(readUint32(b[offMethod:])),
			Colors:    readUint32(b[offColors:]),
		},
	}
	end = uint64(info.Offset) + uint64(readUint32(b[offImageSize:]))
	return info, end, nil
}

// checkRegion reports whether the pixel data [offset, end) lies within b
// and end still fits the 32-bit offsets of the format.
func checkRegion(b []byte, offset uint32, end uint64) error {
	if end > math.MaxUint32 {
		return fmt.Errorf("%w: pixel data end %d overflows 32 bits", ErrTruncatedData, end)
	}
	if end > uint64(len(b)) {
		return fmt.Errorf("%w: pixel data at [%d, %d) exceeds %d bytes", ErrTruncatedData, offset, end, len(b))
	}
	return nil
}

// DecodeHeader returns the header of the bitmap in b without decoding its
// pixels.
func DecodeHeader(b []byte) (Info, error) {
	info, end, err := parseHeader(b)
	if err != nil {
		return Info{}, err
	}
	if err := checkRegion(b, info.Offset, end); err != nil {
		return Info{}, err
	}
	info.End = uint32(end)
	return info, nil
}

// Decode decodes the bitmap held in b. The returned Bitmap keeps b as its
// Data, so the caller must not modify b afterwards.
func Decode(b []byte) (*Bitmap, error) {
	info, end, err := parseHeader(b)
	if err != nil {
		return nil, err
	}
	dec, err := lookupDecoder(info.Header.BPP)
	if err != nil {
		return nil, err
	}
	if err := checkRegion(b, info.Offset, end); err != nil {
		return nil, err
	}
	return &Bitmap{
		Data:   b,
		Size:   info.Size,
		Offset: info.Offset,
		Header: info.Header,
		Pixels: dec(b[info.Offset:end]),
		end:    uint32(end),
	}, nil
}
