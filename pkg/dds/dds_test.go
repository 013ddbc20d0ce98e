package dds

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/darkuranium/tctex-go/pkg/format"
)

func buildHeader(h header, pf pixelFormat) []byte {
	h.Size = headerSize
	h.PixelFormat = pf
	h.PixelFormat.Size = pixfmtSize
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, &h)
	return buf.Bytes()
}

func buildFile(h header, pf pixelFormat, dx10 *dx10Header, pixels []byte) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, uint32(magic))
	buf.Write(buildHeader(h, pf))
	if dx10 != nil {
		binary.Write(buf, binary.LittleEndian, dx10)
	}
	buf.Write(pixels)
	return buf.Bytes()
}

func TestLoad_LegacyDXT5(t *testing.T) {
	h := header{
		Flags:  flagMipmapCount,
		Width:  4,
		Height: 4,
	}
	pf := pixelFormat{Flags: pfFourCC, FourCC: fccDXT5}
	pixels := make([]byte, 16) // one BC3 block

	data := buildFile(h, pf, nil, pixels)
	tex, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.IFormat != format.BC3UNorm {
		t.Errorf("format = %v, want BC3UNorm", tex.IFormat)
	}
	if tex.Width != 4 || tex.Height != 4 {
		t.Errorf("dims = %dx%d, want 4x4", tex.Width, tex.Height)
	}
	if tex.NMipLevels != 1 {
		t.Errorf("mip levels = %d, want 1", tex.NMipLevels)
	}
}

func TestLoad_DX10Cubemap(t *testing.T) {
	h := header{
		Flags:  flagMipmapCount,
		Width:  4,
		Height: 4,
		Caps2:  caps2Cubemap,
	}
	pf := pixelFormat{Flags: pfFourCC, FourCC: fccDX10}
	dx10 := &dx10Header{
		DXGIFormat:        uint32(format.BC7UNorm),
		ResourceDimension: resourceDimTexture2D,
		MiscFlag:          miscFlagTextureCube,
		ArraySize:         1,
	}
	pixels := make([]byte, 16*6) // one BC7 block per face

	data := buildFile(h, pf, dx10, pixels)
	tex, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tex.IFormat != format.BC7UNorm {
		t.Errorf("format = %v, want BC7UNorm", tex.IFormat)
	}
	if tex.CubeFaces.Num != 6 {
		t.Errorf("cube faces = %d, want 6", tex.CubeFaces.Num)
	}
}

func TestLoad_InvalidMagic(t *testing.T) {
	if _, err := Load([]byte{0, 0, 0, 0}); err != ErrInvalidMagic {
		t.Errorf("got %v, want ErrInvalidMagic", err)
	}
}

func TestLoad_Truncated(t *testing.T) {
	h := header{Flags: flagMipmapCount, Width: 4, Height: 4}
	pf := pixelFormat{Flags: pfFourCC, FourCC: fccDXT1}
	data := buildFile(h, pf, nil, nil) // no pixel data at all
	if _, err := Load(data); err == nil {
		t.Error("expected error for missing pixel data")
	}
}
