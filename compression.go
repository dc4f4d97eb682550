package ubmp

import "strconv"

// CompressionMethod is the biCompression field. Codes without a constant
// are kept as they are; Known reports whether a code is one of the
// constants below.
type CompressionMethod uint32

const (
	None CompressionMethod = iota
	Rle8Bit
	Rle4Bit
	Huffman1D
	Jpeg
	Png
)

var methodNames = [...]string{
	None:      "BI_RGB",
	Rle8Bit:   "BI_RLE8",
	Rle4Bit:   "BI_RLE4",
	Huffman1D: "BI_BITFIELDS/HUFFMAN1D",
	Jpeg:      "BI_JPEG",
	Png:       "BI_PNG",
}

// Known reports whether m is one of the named methods.
func (m CompressionMethod) Known() bool {
	return m <= Png
}

// Code returns the raw value stored in the file.
func (m CompressionMethod) Code() uint32 {
	return uint32(m)
}

func (m CompressionMethod) String() string {
	if m.Known() {
		return methodNames[m]
	}
	return "other(" + strconv.FormatUint(uint64(m), 10) + ")"
}
