package format

import "github.com/darkuranium/tctex-go/pkg/colorutil"

// DecodeBC1Block decodes one 8-byte BC1 block into a 4x4 region of dst.
// stride is the byte distance between texels within a row; pitch is the
// byte distance between rows. useSelect enables the two-color
// interpolation mode when c0 <= c1; useAlpha, only meaningful together
// with useSelect, makes index 3 write a transparent (0x00 alpha) texel
// instead of opaque black and causes the alpha byte to be written at
// all. When useAlpha is false, only 3 (RGB) bytes are written per texel.
func DecodeBC1Block(dst []byte, stride, pitch int, block []byte, useSelect, useAlpha bool) {
	c0 := uint16(block[0]) | uint16(block[1])<<8
	c1 := uint16(block[2]) | uint16(block[3])<<8

	var table [4][4]uint8 // [index][R,G,B,A]
	rr0, rg0, rb0 := unpack565Raw(c0)
	rr1, rg1, rb1 := unpack565Raw(c1)

	table[0] = [4]uint8{colorutil.Expand8(uint32(rr0), 5), colorutil.Expand8(uint32(rg0), 6), colorutil.Expand8(uint32(rb0), 5), 0xff}
	table[1] = [4]uint8{colorutil.Expand8(uint32(rr1), 5), colorutil.Expand8(uint32(rg1), 6), colorutil.Expand8(uint32(rb1), 5), 0xff}

	// table[2]/table[3] interpolate in native 5/6-bit channel width
	// first and expand the result to 8 bits afterward, mirroring how
	// the reference decoder derives the third/fourth color: expanding
	// the endpoints to 8 bits before interpolating would round each
	// channel to a different value.
	if !useSelect || c0 > c1 {
		table[2] = [4]uint8{
			colorutil.Expand8(uint32(colorutil.Interpolate3(rr0, rr1, 1)), 5),
			colorutil.Expand8(uint32(colorutil.Interpolate3(rg0, rg1, 1)), 6),
			colorutil.Expand8(uint32(colorutil.Interpolate3(rb0, rb1, 1)), 5),
			0xff,
		}
		table[3] = [4]uint8{
			colorutil.Expand8(uint32(colorutil.Interpolate3(rr0, rr1, 2)), 5),
			colorutil.Expand8(uint32(colorutil.Interpolate3(rg0, rg1, 2)), 6),
			colorutil.Expand8(uint32(colorutil.Interpolate3(rb0, rb1, 2)), 5),
			0xff,
		}
	} else {
		table[2] = [4]uint8{
			colorutil.Expand8(uint32(colorutil.InterpolateOdd(rr0, rr1, 1, 2)), 5),
			colorutil.Expand8(uint32(colorutil.InterpolateOdd(rg0, rg1, 1, 2)), 6),
			colorutil.Expand8(uint32(colorutil.InterpolateOdd(rb0, rb1, 1, 2)), 5),
			0xff,
		}
		alpha3 := uint8(0xff)
		if useAlpha {
			alpha3 = 0x00
		}
		table[3] = [4]uint8{0, 0, 0, alpha3}
	}

	indices := uint32(block[4]) | uint32(block[5])<<8 | uint32(block[6])<<16 | uint32(block[7])<<24
	bpp := 3
	if useAlpha {
		bpp = 4
	}
	for y := 0; y < 4; y++ {
		row := dst[y*pitch:]
		for x := 0; x < 4; x++ {
			idx := (indices >> uint((y*4+x)*2)) & 3
			c := &table[idx]
			off := x * stride
			row[off+0] = c[0]
			row[off+1] = c[1]
			row[off+2] = c[2]
			if bpp == 4 {
				row[off+3] = c[3]
			}
		}
	}
}

// unpack565Raw splits a packed RGB565 word into its raw 5/6/5-bit
// channel values, without expanding them to 8 bits.
func unpack565Raw(c uint16) (r, g, b uint8) {
	r = uint8(c>>11) & 0x1f
	g = uint8(c>>5) & 0x3f
	b = uint8(c) & 0x1f
	return
}

func unpack565(c uint16) (r, g, b uint8) {
	rr, rg, rb := unpack565Raw(c)
	r = colorutil.Expand8(uint32(rr), 5)
	g = colorutil.Expand8(uint32(rg), 6)
	b = colorutil.Expand8(uint32(rb), 5)
	return
}
