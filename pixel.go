package ubmp

import "fmt"

// Pixel is one decoded sample. It is implemented by ABGR, BGR and
// PaletteColor only.
type Pixel interface {
	fmt.Stringer
	pixel()
}

// ABGR holds the four bytes of a 24 or 32 bpp sample in the order they
// appear in the file. For 24 bpp data the fourth byte is not alpha.
type ABGR struct {
	A, B, G, R uint8
}

// BGR is reserved for a row-aware 24 bpp decoder; nothing produces it yet.
type BGR struct {
	B, G, R uint8
}

// PaletteColor is an index into the color table. It is not resolved.
type PaletteColor uint8

func (ABGR) pixel()         {}
func (BGR) pixel()          {}
func (PaletteColor) pixel() {}

func (p ABGR) String() string {
	return fmt.Sprintf("abgr(%d,%d,%d,%d)", p.A, p.B, p.G, p.R)
}

func (p BGR) String() string {
	return fmt.Sprintf("bgr(%d,%d,%d)", p.B, p.G, p.R)
}

func (p PaletteColor) String() string {
	return fmt.Sprintf("palette(%d)", uint8(p))
}

// decodeQuads splits b into 4-byte groups. A trailing group of fewer than
// 4 bytes is dropped.
func decodeQuads(b []byte) []Pixel {
	pix := make([]Pixel, 0, len(b)/4)
	for i := 0; i+4 <= len(b); i += 4 {
		pix = append(pix, ABGR{b[i], b[i+1], b[i+2], b[i+3]})
	}
	return pix
}

// decodeNibbles yields two palette indices per byte, high nibble first.
func decodeNibbles(b []byte) []Pixel {
	pix := make([]Pixel, 0, 2*len(b))
	for _, c := range b {
		pix = append(pix, PaletteColor(c>>4), PaletteColor(c&0x0f))
	}
	return pix
}
