package format

import "github.com/darkuranium/tctex-go/pkg/colorutil"

// DecodeAlpha4Block decodes the 8-byte 4-bit-per-texel explicit alpha
// sub-block used by BC2, writing one expanded 8-bit alpha value per
// texel at dst[y*pitch + x*stride].
//
// Bytes are consumed in reverse order (byte 7 first); within each byte
// the high nibble is the first of its two texels.
func DecodeAlpha4Block(dst []byte, stride, pitch int, block []byte) {
	texel := 0
	for bi := 7; bi >= 0; bi-- {
		b := block[bi]
		nibbles := [2]uint8{b >> 4, b & 0xf}
		for _, n := range nibbles {
			y, x := texel/4, texel%4
			dst[y*pitch+x*stride] = colorutil.Expand8(uint32(n), 4)
			texel++
		}
	}
}
