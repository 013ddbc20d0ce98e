package format

import "github.com/darkuranium/tctex-go/pkg/bitio"

// DecodeBC6HBlock decodes one 16-byte BC6H block into a 4x4 region of
// dst, three uint16 half-float channels (R,G,B) per texel, stride and
// pitch given in units of uint16. isSigned selects the BC6H_SF variant
// (signed 16-bit float output) over BC6H_UF (unsigned).
//
// Reserved mode values and any configuration this decoder cannot
// interpret produce an all-zero block, matching how real decoders
// treat a corrupt or reserved bitstream rather than panicking on it.
func DecodeBC6HBlock(dst []uint16, stride, pitch int, block []byte, isSigned bool) {
	sel := bitio.GetBits(block, 0, 5)
	key := int(sel)
	if sel&0x2 == 0 {
		key = int(sel & 0x1)
	}

	info, ok := bc6hModes[key]
	if !ok {
		zeroBC6H(dst, stride, pitch)
		return
	}

	r, g, b := extractBC6HFields(key, block)

	ns := 1
	if info.pb != 0 {
		ns = 2
	}
	ne := 2 * ns

	ep := make([]bc6hEndpoint, ne)
	ep[0] = bc6hEndpoint{r: signExtendIfSigned(r[0], info.epb, isSigned),
		g: signExtendIfSigned(g[0], info.epb, isSigned),
		b: signExtendIfSigned(b[0], info.epb, isSigned)}

	raw := [3][4]uint32{r, g, b}
	epbMask := int32(1)<<uint(info.epb) - 1
	for i := 1; i < ne; i++ {
		base := [3]int32{ep[0].r, ep[0].g, ep[0].b}
		var out [3]int32
		for c := 0; c < 3; c++ {
			v := raw[c][i]
			var val int32
			if isSigned || info.tr {
				val = signExtendTwos(v, info.db[c])
			} else {
				val = int32(v)
			}
			if info.tr {
				val = (val + base[c]) & epbMask
				if isSigned {
					val = signExtendTwos(uint32(val), info.epb)
				}
			}
			out[c] = val
		}
		ep[i] = bc6hEndpoint{r: out[0], g: out[1], b: out[2]}
	}

	for i := range ep {
		ep[i].r = unquantizeBC6H(ep[i].r, info.epb, isSigned)
		ep[i].g = unquantizeBC6H(ep[i].g, info.epb, isSigned)
		ep[i].b = unquantizeBC6H(ep[i].b, info.epb, isSigned)
	}

	var partSet int
	if info.pb != 0 {
		partSet = int(bitio.GetBits(block, 77, 5))
	}
	pos := 65
	if info.pb != 0 {
		pos = 82
	}

	indexBits := 4
	if ns == 2 {
		indexBits = 3
	}
	pattern := &[16]uint8{}
	anchor1 := 0
	if ns == 2 {
		pattern = &partitions2[partSet]
		anchor1 = anchors2[partSet]
	}

	for texel := 0; texel < 16; texel++ {
		bits := indexBits
		if texel == 0 || (ns == 2 && texel == anchor1) {
			bits--
		}
		idx := bitio.GetBits(block, pos, bits)
		pos += bits

		subset := 0
		if ns == 2 {
			subset = int(pattern[texel])
		}
		e0 := ep[2*subset]
		e1 := ep[2*subset+1]

		weight := weightTable(indexBits)[idx]

		rr := interpolateBC6H(e0.r, e1.r, weight)
		gg := interpolateBC6H(e0.g, e1.g, weight)
		bb := interpolateBC6H(e0.b, e1.b, weight)

		y, x := texel/4, texel%4
		off := y*pitch + x*stride
		dst[off+0] = finishBC6H(rr, isSigned)
		dst[off+1] = finishBC6H(gg, isSigned)
		dst[off+2] = finishBC6H(bb, isSigned)
	}
}

// extractBC6HFields scatters the bits of a BC6H block into per-endpoint
// R/G/B accumulators. Every mode's layout is transcribed literally
// (offsets, widths and shift amounts) from the reference decoder's
// per-mode bit assignments, since BC6H fields are not laid out as
// simple contiguous runs: several modes interleave single high-order
// bits of one channel between other channels' contiguous field chunks.
// r/g/b index 0 and 1 are endpoint 0 and 1 of (the sole, for
// single-subset modes) subset 0; indices 2 and 3 are subset 1's
// endpoints, used only when the mode carries a partition id.
func extractBC6HFields(key int, block []byte) (r, g, b [4]uint32) {
	bits := func(start, width int) uint32 { return bitio.GetBits(block, start, width) }

	switch key {
	case 0:
		g[2] |= bits(2, 1) << 4
		b[2] |= bits(3, 1) << 4
		b[3] |= bits(4, 1) << 4
		r[0] |= bits(5, 10) << 0
		g[0] |= bits(15, 10) << 0
		b[0] |= bits(25, 10) << 0
		r[1] |= bits(35, 5) << 0
		g[3] |= bits(40, 1) << 4
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 5) << 0
		b[3] |= bits(50, 1) << 0
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 5) << 0
		b[3] |= bits(60, 1) << 1
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 5) << 0
		b[3] |= bits(70, 1) << 2
		r[3] |= bits(71, 5) << 0
		b[3] |= bits(76, 1) << 3
	case 1:
		g[2] |= bits(2, 1) << 5
		g[3] |= bits(3, 1) << 4
		g[3] |= bits(4, 1) << 5
		r[0] |= bits(5, 7) << 0
		b[3] |= bits(12, 1) << 0
		b[3] |= bits(13, 1) << 1
		b[2] |= bits(14, 1) << 4
		g[0] |= bits(15, 7) << 0
		b[2] |= bits(22, 1) << 5
		b[3] |= bits(23, 1) << 2
		g[2] |= bits(24, 1) << 4
		b[0] |= bits(25, 7) << 0
		b[3] |= bits(32, 1) << 3
		b[3] |= bits(33, 1) << 5
		b[3] |= bits(34, 1) << 4
		r[1] |= bits(35, 6) << 0
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 6) << 0
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 6) << 0
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 6) << 0
		r[3] |= bits(71, 6) << 0
	case 2:
		r[0] |= bits(5, 10) << 0
		g[0] |= bits(15, 10) << 0
		b[0] |= bits(25, 10) << 0
		r[1] |= bits(35, 5) << 0
		r[0] |= bits(40, 1) << 10
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 4) << 0
		g[0] |= bits(49, 1) << 10
		b[3] |= bits(50, 1) << 0
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 4) << 0
		b[0] |= bits(59, 1) << 10
		b[3] |= bits(60, 1) << 1
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 5) << 0
		b[3] |= bits(70, 1) << 2
		r[3] |= bits(71, 5) << 0
		b[3] |= bits(76, 1) << 3
	case 3:
		r[0] |= bits(5, 10) << 0
		g[0] |= bits(15, 10) << 0
		b[0] |= bits(25, 10) << 0
		r[1] |= bits(35, 10) << 0
		g[1] |= bits(45, 10) << 0
		b[1] |= bits(55, 10) << 0
	case 6:
		r[0] |= bits(5, 10) << 0
		g[0] |= bits(15, 10) << 0
		b[0] |= bits(25, 10) << 0
		r[1] |= bits(35, 4) << 0
		r[0] |= bits(39, 1) << 10
		g[3] |= bits(40, 1) << 4
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 5) << 0
		g[0] |= bits(50, 1) << 10
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 4) << 0
		b[0] |= bits(59, 1) << 10
		b[3] |= bits(60, 1) << 1
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 4) << 0
		b[3] |= bits(69, 1) << 0
		b[3] |= bits(70, 1) << 2
		r[3] |= bits(71, 4) << 0
		g[2] |= bits(75, 1) << 4
		b[3] |= bits(76, 1) << 3
	case 7:
		r[0] |= bits(5, 10) << 0
		g[0] |= bits(15, 10) << 0
		b[0] |= bits(25, 10) << 0
		r[1] |= bits(35, 9) << 0
		r[0] |= bits(44, 1) << 10
		g[1] |= bits(45, 9) << 0
		g[0] |= bits(54, 1) << 10
		b[1] |= bits(55, 9) << 0
		b[0] |= bits(64, 1) << 10
	case 10:
		r[0] |= bits(5, 10) << 0
		g[0] |= bits(15, 10) << 0
		b[0] |= bits(25, 10) << 0
		r[1] |= bits(35, 4) << 0
		r[0] |= bits(39, 1) << 10
		b[2] |= bits(40, 1) << 4
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 4) << 0
		g[0] |= bits(49, 1) << 10
		b[3] |= bits(50, 1) << 0
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 5) << 0
		b[0] |= bits(60, 1) << 10
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 4) << 0
		b[3] |= bits(69, 1) << 1
		b[3] |= bits(70, 1) << 2
		r[3] |= bits(71, 4) << 0
		b[3] |= bits(75, 1) << 4
		b[3] |= bits(76, 1) << 3
	case 11:
		r[0] |= bits(5, 10) << 0
		g[0] |= bits(15, 10) << 0
		b[0] |= bits(25, 10) << 0
		r[1] |= bits(35, 8) << 0
		r[0] |= bits(43, 1) << 11
		r[0] |= bits(44, 1) << 10
		g[1] |= bits(45, 8) << 0
		g[0] |= bits(53, 1) << 11
		g[0] |= bits(54, 1) << 10
		b[1] |= bits(55, 8) << 0
		b[0] |= bits(63, 1) << 11
		b[0] |= bits(64, 1) << 10
	case 14:
		r[0] |= bits(5, 9) << 0
		b[2] |= bits(14, 1) << 4
		g[0] |= bits(15, 9) << 0
		g[2] |= bits(24, 1) << 4
		b[0] |= bits(25, 9) << 0
		b[3] |= bits(34, 1) << 4
		r[1] |= bits(35, 5) << 0
		g[3] |= bits(40, 1) << 4
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 5) << 0
		b[3] |= bits(50, 1) << 0
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 5) << 0
		b[3] |= bits(60, 1) << 1
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 5) << 0
		b[3] |= bits(70, 1) << 2
		r[3] |= bits(71, 5) << 0
		b[3] |= bits(76, 1) << 3
	case 15:
		r[0] |= bits(5, 10) << 0
		g[0] |= bits(15, 10) << 0
		b[0] |= bits(25, 10) << 0
		r[1] |= bits(35, 4) << 0
		r[0] |= bits(39, 1) << 15
		r[0] |= bits(40, 1) << 14
		r[0] |= bits(41, 1) << 13
		r[0] |= bits(42, 1) << 12
		r[0] |= bits(43, 1) << 11
		r[0] |= bits(44, 1) << 10
		g[1] |= bits(45, 4) << 0
		g[0] |= bits(49, 1) << 15
		g[0] |= bits(50, 1) << 14
		g[0] |= bits(51, 1) << 13
		g[0] |= bits(52, 1) << 12
		g[0] |= bits(53, 1) << 11
		g[0] |= bits(54, 1) << 10
		b[1] |= bits(55, 4) << 0
		b[0] |= bits(59, 1) << 15
		b[0] |= bits(60, 1) << 14
		b[0] |= bits(61, 1) << 13
		b[0] |= bits(62, 1) << 12
		b[0] |= bits(63, 1) << 11
		b[0] |= bits(64, 1) << 10
	case 18:
		r[0] |= bits(5, 8) << 0
		g[3] |= bits(13, 1) << 4
		b[2] |= bits(14, 1) << 4
		g[0] |= bits(15, 8) << 0
		b[3] |= bits(23, 1) << 2
		g[2] |= bits(24, 1) << 4
		b[0] |= bits(25, 8) << 0
		b[3] |= bits(33, 1) << 3
		b[3] |= bits(34, 1) << 4
		r[1] |= bits(35, 6) << 0
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 5) << 0
		b[3] |= bits(50, 1) << 0
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 5) << 0
		b[3] |= bits(60, 1) << 1
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 6) << 0
		r[3] |= bits(71, 6) << 0
	case 22:
		r[0] |= bits(5, 8) << 0
		b[3] |= bits(13, 1) << 0
		b[2] |= bits(14, 1) << 4
		g[0] |= bits(15, 8) << 0
		g[2] |= bits(23, 1) << 5
		g[2] |= bits(24, 1) << 4
		b[0] |= bits(25, 8) << 0
		g[3] |= bits(33, 1) << 5
		b[3] |= bits(34, 1) << 4
		r[1] |= bits(35, 5) << 0
		g[3] |= bits(40, 1) << 4
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 6) << 0
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 5) << 0
		b[3] |= bits(60, 1) << 1
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 5) << 0
		b[3] |= bits(70, 1) << 2
		r[3] |= bits(71, 5) << 0
		b[3] |= bits(76, 1) << 3
	case 26:
		r[0] |= bits(5, 8) << 0
		b[3] |= bits(13, 1) << 1
		b[2] |= bits(14, 1) << 4
		g[0] |= bits(15, 8) << 0
		b[2] |= bits(23, 1) << 5
		g[2] |= bits(24, 1) << 4
		b[0] |= bits(25, 8) << 0
		b[3] |= bits(33, 1) << 5
		b[3] |= bits(34, 1) << 4
		r[1] |= bits(35, 5) << 0
		g[3] |= bits(40, 1) << 4
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 5) << 0
		b[3] |= bits(50, 1) << 0
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 6) << 0
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 5) << 0
		b[3] |= bits(70, 1) << 2
		r[3] |= bits(71, 5) << 0
		b[3] |= bits(76, 1) << 3
	case 30:
		r[0] |= bits(5, 6) << 0
		g[3] |= bits(11, 1) << 4
		b[3] |= bits(12, 1) << 0
		b[3] |= bits(13, 1) << 1
		b[2] |= bits(14, 1) << 4
		g[0] |= bits(15, 6) << 0
		g[2] |= bits(21, 1) << 5
		b[2] |= bits(22, 1) << 5
		b[3] |= bits(23, 1) << 2
		g[2] |= bits(24, 1) << 4
		b[0] |= bits(25, 6) << 0
		g[3] |= bits(31, 1) << 5
		b[3] |= bits(32, 1) << 3
		b[3] |= bits(33, 1) << 5
		b[3] |= bits(34, 1) << 4
		r[1] |= bits(35, 6) << 0
		g[2] |= bits(41, 4) << 0
		g[1] |= bits(45, 6) << 0
		g[3] |= bits(51, 4) << 0
		b[1] |= bits(55, 6) << 0
		b[2] |= bits(61, 4) << 0
		r[2] |= bits(65, 6) << 0
		r[3] |= bits(71, 6) << 0
	}
	return
}

// bc6hEndpoint holds one decoded RGB endpoint, first in its
// quantized-precision form, then (after unquantizeBC6H) in the 16-bit
// range the interpolator and finishBC6H expect.
type bc6hEndpoint struct{ r, g, b int32 }

// signExtendTwos reinterprets the low bits bits of v as a two's
// complement signed integer, unconditionally. Used for BC6H's
// delta-endpoint fields, which are always stored as two's complement
// even in the unsigned (UF16) format.
func signExtendTwos(v uint32, bits int) int32 {
	sv := int32(v)
	mask := int32(1) << uint(bits-1)
	return (sv ^ mask) - mask
}

// signExtendIfSigned sign-extends v only when isSigned is set,
// otherwise returns it as a plain non-negative value. Used for BC6H's
// base endpoint, which is stored as an unsigned magnitude in the
// unsigned format and a two's complement value in the signed format.
func signExtendIfSigned(v uint32, bits int, isSigned bool) int32 {
	if !isSigned {
		return int32(v)
	}
	return signExtendTwos(v, bits)
}

// unquantizeBC6H expands a quantized endpoint component (epb significant
// bits) to the 16-bit range the interpolator and final half-float
// unquantization step expect.
func unquantizeBC6H(v int32, epb int, isSigned bool) int32 {
	if isSigned {
		sign := v < 0
		if sign {
			v = -v
		}
		var u int32
		if epb >= 16 {
			u = v
		} else if v == 0 {
			u = 0
		} else if v >= (1<<uint(epb-1))-1 {
			u = 0x7fff
		} else {
			u = (v<<15 + 0x4000) >> uint(epb-1)
		}
		if sign {
			u = -u
		}
		return u
	}
	if epb >= 16 {
		return v
	}
	if v == 0 {
		return 0
	}
	if v >= (1<<uint(epb))-1 {
		return 0xffff
	}
	return (v<<16 + 0x8000) >> uint(epb)
}

func interpolateBC6H(a, b int32, weight uint32) int32 {
	w := int32(weight)
	return ((64-w)*a + w*b + 32) >> 6
}

// finishBC6H converts an interpolated 16-bit-range value to the final
// stored half-float bit pattern: unsigned values are rescaled directly,
// signed values preserve sign and rescale the magnitude.
func finishBC6H(v int32, isSigned bool) uint16 {
	if isSigned {
		sign := uint16(0)
		if v < 0 {
			sign = 0x8000
			v = -v
		}
		return sign | uint16((v*31)>>5)
	}
	return uint16((v * 31) >> 6)
}

func zeroBC6H(dst []uint16, stride, pitch int) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			off := y*pitch + x*stride
			dst[off+0] = 0
			dst[off+1] = 0
			dst[off+2] = 0
		}
	}
}
