package ubmp

import "fmt"

// pixelDecoder turns the pixel-data region into samples.
type pixelDecoder func(b []byte) []Pixel

// decoders is only written from init.
var decoders = map[uint16]pixelDecoder{}

// registerDecoder registers the pixel decoder for a bits-per-pixel value.
func registerDecoder(bpp uint16, dec pixelDecoder) {
	if _, dup := decoders[bpp]; dup {
		panic(fmt.Sprintf("bmp: decoder for %d bpp registered twice", bpp))
	}
	decoders[bpp] = dec
}

func lookupDecoder(bpp uint16) (pixelDecoder, error) {
	dec, ok := decoders[bpp]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitsPerPixel, bpp)
	}
	return dec, nil
}

func init() {
	// 24 bpp is read as 4-byte groups, the same as 32 bpp.
	registerDecoder(24, decodeQuads)
	registerDecoder(32, decodeQuads)
	registerDecoder(4, decodeNibbles)
}
