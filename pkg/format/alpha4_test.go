package format

import "testing"

func TestDecodeAlpha4Block(t *testing.T) {
	// Texel 0 gets the high nibble of the last byte (bytes read in
	// reverse order, high nibble before low nibble).
	block := [8]byte{0, 0, 0, 0, 0, 0, 0, 0xf0}
	dst := make([]byte, 16)
	DecodeAlpha4Block(dst, 1, 4, block[:])
	if dst[0] != 0xff {
		t.Errorf("texel 0 = %#x, want 0xff", dst[0])
	}
	for i := 1; i < 16; i++ {
		if dst[i] != 0 {
			t.Errorf("texel %d = %#x, want 0", i, dst[i])
		}
	}
}

func TestDecodeAlpha4Block_AllOnes(t *testing.T) {
	block := [8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	dst := make([]byte, 16)
	DecodeAlpha4Block(dst, 1, 4, block[:])
	for i, v := range dst {
		if v != 0xff {
			t.Errorf("texel %d = %#x, want 0xff", i, v)
		}
	}
}
