package format

import "testing"

func TestDecodeBC5Block(t *testing.T) {
	block := make([]byte, 16)
	block[0], block[1] = 100, 0 // channel 0 (R): a0>a1 -> idx0=100
	block[8], block[9] = 0, 200 // channel 1 (G): a0<=a1 -> idx0=0

	dst := make([]byte, 4*4*2) // 2 channels per texel
	DecodeBC5Block(dst, 2, 8, block, false)

	for texel := 0; texel < 16; texel++ {
		off := texel * 2
		if dst[off+0] != 100 {
			t.Fatalf("texel %d R = %d, want 100", texel, dst[off+0])
		}
		if dst[off+1] != 0 {
			t.Fatalf("texel %d G = %d, want 0", texel, dst[off+1])
		}
	}
}
