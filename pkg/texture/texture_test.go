package texture

import (
	"testing"

	"github.com/darkuranium/tctex-go/pkg/format"
)

func TestGetMipmaps_Halving(t *testing.T) {
	tex := &Texture{
		Width: 64, Height: 64, Depth: 1,
		NMipLevels: 4,
		ArrayLen:   1,
		IFormat:    format.BC1UNorm,
	}
	tex.Memory = make([]byte, tex.mipChainBytes())

	mips, err := tex.GetMipmaps(0, 0)
	if err != nil {
		t.Fatalf("GetMipmaps: %v", err)
	}
	if len(mips) != 4 {
		t.Fatalf("got %d mips, want 4", len(mips))
	}
	wantSizes := []int{64, 32, 16, 8}
	for i, m := range mips {
		if m.Width != wantSizes[i] || m.Height != wantSizes[i] {
			t.Errorf("mip %d size = %dx%d, want %dx%d", i, m.Width, m.Height, wantSizes[i], wantSizes[i])
		}
	}
	if mips[0].Offset0 != 0 {
		t.Errorf("mip 0 offset = %d, want 0", mips[0].Offset0)
	}
	if mips[1].Offset0 != mips[0].NBytes {
		t.Errorf("mip 1 offset = %d, want %d", mips[1].Offset0, mips[0].NBytes)
	}
}

func TestGetMipmaps_Clamp(t *testing.T) {
	tex := &Texture{
		Width: 8, Height: 8, Depth: 1,
		NMipLevels: 1,
	}
	mips, err := tex.GetMipmaps(5, 0)
	if err != nil {
		t.Fatalf("GetMipmaps: %v", err)
	}
	if len(mips) != 1 {
		t.Errorf("got %d mips, want 1 (clamped to NMipLevels)", len(mips))
	}
}

func TestGetMipmaps_SliceIndexOutOfRange(t *testing.T) {
	tex := &Texture{Width: 4, Height: 4, NMipLevels: 1, ArrayLen: 1}
	if _, err := tex.GetMipmaps(0, 1); err == nil {
		t.Error("expected error for out-of-range slice index")
	}
}

func TestNextMipDim(t *testing.T) {
	cases := map[int]int{8: 4, 1: 1, 2: 1, 0: 1}
	for in, want := range cases {
		if got := nextMipDim(in); got != want {
			t.Errorf("nextMipDim(%d) = %d, want %d", in, got, want)
		}
	}
}
