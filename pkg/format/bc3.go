package format

// DecodeBC3Block decodes one 16-byte BC3 block into a 4x4 RGBA region of
// dst (4 bytes per texel): a BC4 (unsigned) alpha sub-block followed by
// a BC1 color sub-block with mode selection enabled (useSelect), so the
// c0 <= c1 three-color mode is honored.
func DecodeBC3Block(dst []byte, stride, pitch int, block []byte) {
	var alpha [16]byte
	DecodeBC4Block(alpha[:], 1, 4, block[0:8], false)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			dst[y*pitch+x*stride+3] = alpha[y*4+x]
		}
	}
	DecodeBC1Block(dst, stride, pitch, block[8:16], true, false)
}
