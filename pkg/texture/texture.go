// Package texture models a decoded texture's layout (mip chain, array
// slices, cube faces) independent of the container it was loaded from,
// and drives block decoding through pkg/format.
package texture

import (
	"fmt"

	"github.com/darkuranium/tctex-go/pkg/format"
)

// CubeFaces describes which of a cubemap's six faces are present.
type CubeFaces struct {
	Num  int
	Mask uint32
}

const (
	CubeFacePositiveX = 1 << iota
	CubeFaceNegativeX
	CubeFacePositiveY
	CubeFaceNegativeY
	CubeFacePositiveZ
	CubeFaceNegativeZ
)

// AllCubeFaces is the face mask of a complete cubemap.
const AllCubeFaces = CubeFacePositiveX | CubeFaceNegativeX | CubeFacePositiveY | CubeFaceNegativeY | CubeFacePositiveZ | CubeFaceNegativeZ

// Texture is a fully-parsed, in-memory texture: the raw pixel memory
// plus enough metadata to locate and decode any mip level of any array
// slice or cube face.
type Texture struct {
	Memory []byte

	Width, Height, Depth int
	NMipLevels           int
	ArrayLen             int
	IFormat              format.InternalFormat
	AlphaMode            format.AlphaMode

	IsVolume  bool
	CubeFaces CubeFaces
}

// MipInfo locates one mip level's pixel data within Texture.Memory.
type MipInfo struct {
	Offset0              int
	NBytes               int
	Width, Height, Depth int
	PitchY, PitchZ       int
}

// GetMipmaps returns layout information for every mip level (up to max,
// or all of them if max is 0) of the given array/cube-face slot.
func (t *Texture) GetMipmaps(max, textureIdx int) ([]MipInfo, error) {
	if textureIdx < 0 || textureIdx >= t.sliceCount() {
		return nil, fmt.Errorf("texture: slice index %d out of range [0,%d)", textureIdx, t.sliceCount())
	}
	n := t.NMipLevels
	if max > 0 && max < n {
		n = max
	}

	blockBytes := format.BlockBytes(t.IFormat)
	sliceSize := t.mipChainBytes()
	base := textureIdx * sliceSize

	mips := make([]MipInfo, 0, n)
	offset := base
	w, h, d := t.Width, t.Height, t.Depth
	for level := 0; level < n; level++ {
		pitchY, pitchZ, levelBytes := mipLayout(w, h, d, t.IFormat, blockBytes)
		mips = append(mips, MipInfo{
			Offset0: offset,
			NBytes:  levelBytes,
			Width:   w, Height: h, Depth: d,
			PitchY: pitchY, PitchZ: pitchZ,
		})
		offset += levelBytes
		w, h, d = nextMipDim(w), nextMipDim(h), nextMipDim(d)
	}
	return mips, nil
}

func (t *Texture) sliceCount() int {
	n := t.ArrayLen
	if n == 0 {
		n = 1
	}
	if t.CubeFaces.Num > 0 {
		n *= t.CubeFaces.Num
	}
	return n
}

// mipChainBytes computes the byte size of one array/cube-face slice's
// full mip chain, used to locate the start of slice i as i times this
// value.
func (t *Texture) mipChainBytes() int {
	blockBytes := format.BlockBytes(t.IFormat)
	w, h, d := t.Width, t.Height, t.Depth
	total := 0
	for level := 0; level < t.NMipLevels; level++ {
		_, _, levelBytes := mipLayout(w, h, d, t.IFormat, blockBytes)
		total += levelBytes
		w, h, d = nextMipDim(w), nextMipDim(h), nextMipDim(d)
	}
	return total
}

func nextMipDim(v int) int {
	if v <= 1 {
		return 1
	}
	return v / 2
}

// mipLayout returns the row pitch, slice pitch and total byte size of
// one mip level. Block-compressed formats are laid out in 4x4-texel
// tiles; all other formats fall back to a flat uncompressed layout
// (this codec does not decode them, it only sizes them).
func mipLayout(w, h, d int, f format.InternalFormat, blockBytes int) (pitchY, pitchZ, size int) {
	if format.IsCompressed(f) {
		blocksWide := (w + 3) / 4
		blocksHigh := (h + 3) / 4
		pitchY = blocksWide * blockBytes
		pitchZ = pitchY * blocksHigh
		size = pitchZ * d
		return
	}
	bpp := bitsPerTexel(f) / 8
	if bpp == 0 {
		bpp = 4
	}
	pitchY = w * bpp
	pitchZ = pitchY * h
	size = pitchZ * d
	return
}

// bitsPerTexel gives a coarse per-texel bit width for the small set of
// uncompressed formats a DDS container can carry alongside BCn data
// (used only to size raw mip levels; this codec never decodes these
// formats' pixels).
func bitsPerTexel(f format.InternalFormat) int {
	switch f {
	case format.R8UNorm, format.R8UInt, format.R8SNorm, format.R8SInt, format.A8UNorm, format.R8Typeless:
		return 8
	case format.R8G8UNorm, format.R8G8UInt, format.R8G8SNorm, format.R8G8SInt, format.R8G8Typeless,
		format.B5G6R5UNorm, format.B5G5R5A1UNorm, format.B4G4R4A4UNorm,
		format.R16UNorm, format.R16Float, format.R16UInt, format.R16SNorm, format.R16SInt, format.R16Typeless:
		return 16
	case format.R8G8B8A8UNorm, format.R8G8B8A8UNormSRGB, format.R8G8B8A8Typeless,
		format.B8G8R8A8UNorm, format.B8G8R8X8UNorm, format.R10G10B10A2UNorm, format.R11G11B10Float:
		return 32
	case format.R16G16B16A16UNorm, format.R16G16B16A16Float, format.R16G16B16A16Typeless:
		return 64
	case format.R32G32B32A32Float, format.R32G32B32A32Typeless:
		return 128
	}
	return 0
}

// DecodeImage decodes every 4x4 block of mip into dst, a byte-per-channel
// buffer with the given stride (bytes per texel) and pitch (bytes per
// row). BC6H formats are rejected here; use DecodeImageHalf. For formats with two-texels-per-byte
// channel layouts (none in this codec) or multi-block composite
// formats (BC5), stride/pitch describe the decoded output, not the
// encoded block stream.
func DecodeImage(tex *Texture, mip MipInfo, dst []byte, stride, pitch int) error {
	data := tex.Memory[mip.Offset0 : mip.Offset0+mip.NBytes]
	blocksWide := (mip.Width + 3) / 4
	blocksHigh := (mip.Height + 3) / 4
	blockBytes := format.BlockBytes(tex.IFormat)
	if blockBytes == 0 {
		return fmt.Errorf("texture: %v is not a block-compressed format", tex.IFormat)
	}

	decodeBlock := blockDecoderFor(tex.IFormat)
	if decodeBlock == nil {
		return fmt.Errorf("texture: no decoder registered for %v", tex.IFormat)
	}

	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			blockOff := (by*blocksWide + bx) * blockBytes
			block := data[blockOff : blockOff+blockBytes]
			dstOff := by*4*pitch + bx*4*stride
			decodeBlock(dst[dstOff:], stride, pitch, block)
		}
	}
	return nil
}

func blockDecoderFor(f format.InternalFormat) func(dst []byte, stride, pitch int, block []byte) {
	switch f {
	case format.BC1Typeless, format.BC1UNorm, format.BC1UNormSRGB:
		return func(dst []byte, stride, pitch int, block []byte) {
			format.DecodeBC1Block(dst, stride, pitch, block, true, true)
		}
	case format.BC2Typeless, format.BC2UNorm, format.BC2UNormSRGB:
		return format.DecodeBC2Block
	case format.BC3Typeless, format.BC3UNorm, format.BC3UNormSRGB:
		return format.DecodeBC3Block
	case format.BC4UNorm, format.BC4Typeless:
		return func(dst []byte, stride, pitch int, block []byte) {
			format.DecodeBC4Block(dst, stride, pitch, block, false)
		}
	case format.BC4SNorm:
		return func(dst []byte, stride, pitch int, block []byte) {
			format.DecodeBC4Block(dst, stride, pitch, block, true)
		}
	case format.BC5UNorm, format.BC5Typeless:
		return func(dst []byte, stride, pitch int, block []byte) {
			format.DecodeBC5Block(dst, stride, pitch, block, false)
		}
	case format.BC5SNorm:
		return func(dst []byte, stride, pitch int, block []byte) {
			format.DecodeBC5Block(dst, stride, pitch, block, true)
		}
	case format.BC7Typeless, format.BC7UNorm, format.BC7UNormSRGB:
		return format.DecodeBC7Block
	}
	return nil
}

// DecodeImageHalf decodes a BC6H mip into dst, three uint16 half-float
// channels per texel. It is split from DecodeImage because BC6H's
// native output is half-float, not byte-per-channel RGBA.
func DecodeImageHalf(tex *Texture, mip MipInfo, dst []uint16, stride, pitch int) error {
	switch tex.IFormat {
	case format.BC6HUF16, format.BC6HSF16, format.BC6HTypeless:
	default:
		return fmt.Errorf("texture: %v is not a BC6H format", tex.IFormat)
	}
	data := tex.Memory[mip.Offset0 : mip.Offset0+mip.NBytes]
	blocksWide := (mip.Width + 3) / 4
	blocksHigh := (mip.Height + 3) / 4
	isSigned := tex.IFormat == format.BC6HSF16

	for by := 0; by < blocksHigh; by++ {
		for bx := 0; bx < blocksWide; bx++ {
			blockOff := (by*blocksWide + bx) * 16
			block := data[blockOff : blockOff+16]
			dstOff := by*4*pitch + bx*4*stride
			format.DecodeBC6HBlock(dst[dstOff:], stride, pitch, block, isSigned)
		}
	}
	return nil
}
