package ubmp

import "testing"

func TestCompressionMethod(t *testing.T) {
	names := map[CompressionMethod]string{
		None:      "BI_RGB",
		Rle8Bit:   "BI_RLE8",
		Rle4Bit:   "BI_RLE4",
		Huffman1D: "BI_BITFIELDS/HUFFMAN1D",
		Jpeg:      "BI_JPEG",
		Png:       "BI_PNG",
	}
	for m, name := range names {
		if !m.Known() {
			t.Fatalf("%d should be known", m.Code())
		}
		if m.String() != name {
			t.Fatalf("%d: got %q, want %q", m.Code(), m.String(), name)
		}
	}

	other := CompressionMethod(6)
	if other.Known() || other.Code() != 6 || other.String() != "other(6)" {
		t.Fatalf("unexpected %v", other)
	}
	other = CompressionMethod(0xffffffff)
	if other.Known() || other.String() != "other(4294967295)" {
		t.Fatalf("unexpected %v", other)
	}
}

func TestDecodeMethod(t *testing.T) {
	for code := uint32(0); code < 8; code++ {
		b := newBitmap(24, 54, nil)
		b[30] = byte(code)
		bm, err := Decode(b)
		if err != nil {
			t.Fatal(err)
		}
		if bm.Header.Method.Code() != code {
			t.Fatalf("got %v, want code %d", bm.Header.Method, code)
		}
	}
}

func TestPixelString(t *testing.T) {
	for _, c := range []struct {
		p    Pixel
		want string
	}{
		{ABGR{1, 2, 3, 4}, "abgr(1,2,3,4)"},
		{BGR{5, 6, 7}, "bgr(5,6,7)"},
		{PaletteColor(10), "palette(10)"},
	} {
		if got := c.p.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}
