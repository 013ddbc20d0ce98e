package format

import "testing"

// pack565 builds a little-endian RGB565 color word, the inverse of
// unpack565, for constructing test block data.
func pack565(r, g, b uint8) uint16 {
	return uint16(r&0x1f)<<11 | uint16(g&0x3f)<<5 | uint16(b&0x1f)
}

func TestDecodeBC1Block_FourColorMode(t *testing.T) {
	c0 := pack565(31, 0, 0) // red
	c1 := pack565(0, 0, 31) // blue
	block := []byte{
		byte(c0), byte(c0 >> 8),
		byte(c1), byte(c1 >> 8),
		0, 0, 0, 0, // every index 0 -> c0
	}
	dst := make([]byte, 4*4*4)
	DecodeBC1Block(dst, 4, 16, block, true, true)

	for texel := 0; texel < 16; texel++ {
		off := texel * 4
		if dst[off+0] != 0xff || dst[off+1] != 0 || dst[off+2] != 0 || dst[off+3] != 0xff {
			t.Fatalf("texel %d = %v, want opaque red", texel, dst[off:off+4])
		}
	}
}

func TestDecodeBC1Block_PunchThroughAlpha(t *testing.T) {
	c0 := pack565(0, 0, 0)
	c1 := pack565(31, 31, 31)
	// c0 < c1 selects two-color + transparent-black mode.
	block := []byte{
		byte(c0), byte(c0 >> 8),
		byte(c1), byte(c1 >> 8),
		0xff, 0xff, 0xff, 0xff, // every index 3 -> transparent black
	}
	dst := make([]byte, 4*4*4)
	DecodeBC1Block(dst, 4, 16, block, true, true)

	for texel := 0; texel < 16; texel++ {
		off := texel * 4
		if dst[off+3] != 0 {
			t.Fatalf("texel %d alpha = %d, want 0 (transparent)", texel, dst[off+3])
		}
	}
}

func TestDecodeBC1Block_ThreeColorInterpolatesInNativeWidth(t *testing.T) {
	// c0's red channel is the 5-bit max (0x1f), c1's is 0. Interpolating
	// at 5-bit width before expanding to 8 bits gives table[2].R = 173;
	// expanding first and interpolating in 8-bit space would give 170.
	c0 := pack565(31, 0, 0)
	c1 := pack565(0, 0, 0)
	block := []byte{
		byte(c0), byte(c0 >> 8),
		byte(c1), byte(c1 >> 8),
		0xaa, 0xaa, 0xaa, 0xaa, // every index 2
	}
	dst := make([]byte, 4*4*3)
	DecodeBC1Block(dst, 3, 12, block, true, false)

	if dst[0] != 173 {
		t.Errorf("table[2].R = %d, want 173", dst[0])
	}
}

func TestUnpack565(t *testing.T) {
	r, g, b := unpack565(pack565(31, 63, 31))
	if r != 0xff || g != 0xff || b != 0xff {
		t.Errorf("got (%d,%d,%d), want (255,255,255)", r, g, b)
	}
	r, g, b = unpack565(pack565(0, 0, 0))
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("got (%d,%d,%d), want (0,0,0)", r, g, b)
	}
}
