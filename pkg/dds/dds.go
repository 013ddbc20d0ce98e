// Package dds loads the DirectDraw Surface (.dds) container format:
// magic, header, optional DX10 extension header, followed by raw pixel
// data for every mip level of every array slice or cube face.
package dds

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/darkuranium/tctex-go/pkg/format"
	"github.com/darkuranium/tctex-go/pkg/texture"
)

var (
	ErrInvalidMagic       = errors.New("dds: not a DDS file")
	ErrTruncated          = errors.New("dds: truncated file")
	ErrMalformedHeader    = errors.New("dds: malformed header")
	ErrUnsupportedFormat  = errors.New("dds: unsupported pixel format")
	ErrUnsupportedFeature = errors.New("dds: unsupported feature")
)

const (
	magic = 0x20534444 // "DDS "

	headerSize  = 124
	pixfmtSize  = 32
	dx10HdrSize = 20

	flagMipmapCount = 0x20000
	flagDepth       = 0x800000
	flagPitch       = 0x8

	caps2Cubemap = 0x200
	caps2Volume  = 0x200000

	cubeFaceBit = 0x400 // caps2 bit of the first (+X) of the 6 per-face bits
)

const (
	pfFourCC      = 0x4
	pfRGB         = 0x40
	pfLuminance   = 0x20000
	pfAlphaPixels = 0x1
	pfAlpha       = 0x2
	pfBumpDUDV    = 0x80000
)

func fourCC(s string) uint32 {
	return uint32(s[0]) | uint32(s[1])<<8 | uint32(s[2])<<16 | uint32(s[3])<<24
}

var (
	fccDXT1 = fourCC("DXT1")
	fccDXT2 = fourCC("DXT2")
	fccDXT3 = fourCC("DXT3")
	fccDXT4 = fourCC("DXT4")
	fccDXT5 = fourCC("DXT5")
	fccATI1 = fourCC("ATI1")
	fccBC4U = fourCC("BC4U")
	fccBC4S = fourCC("BC4S")
	fccATI2 = fourCC("ATI2")
	fccBC5U = fourCC("BC5U")
	fccBC5S = fourCC("BC5S")
	fccDX10 = fourCC("DX10")
)

type pixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

type header struct {
	Size          uint32
	Flags         uint32
	Height        uint32
	Width         uint32
	PitchOrLinear uint32
	Depth         uint32
	MipMapCount   uint32
	Reserved1     [11]uint32
	PixelFormat   pixelFormat
	Caps          uint32
	Caps2         uint32
	Caps3         uint32
	Caps4         uint32
	Reserved2     uint32
}

type dx10Header struct {
	DXGIFormat        uint32
	ResourceDimension uint32
	MiscFlag          uint32
	ArraySize         uint32
	MiscFlags2        uint32
}

const (
	resourceDimTexture1D = 2
	resourceDimTexture2D = 3
	resourceDimTexture3D = 4

	miscFlagTextureCube = 0x4
)

// LoadFile reads and parses path as a DDS file.
func LoadFile(path string) (*texture.Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dds: %w", err)
	}
	return Load(data)
}

// Load parses a complete DDS file already held in memory. The returned
// Texture's Memory aliases the pixel-data tail of data; callers must
// not reuse data for anything else afterward.
func Load(data []byte) (*texture.Texture, error) {
	if len(data) < 4 {
		return nil, ErrTruncated
	}
	if binary.LittleEndian.Uint32(data[0:4]) != magic {
		return nil, ErrInvalidMagic
	}
	data = data[4:]
	if len(data) < headerSize {
		return nil, ErrTruncated
	}

	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	if h.Size != headerSize || h.PixelFormat.Size != pixfmtSize {
		return nil, ErrMalformedHeader
	}
	data = data[headerSize:]

	arrayLen := 1
	ifmt := format.Unknown
	alphaMode := format.AlphaUnknown
	isCubemap := h.Caps2&caps2Cubemap != 0
	isVolume := h.Caps2&caps2Volume != 0 && h.Flags&flagDepth != 0

	if h.PixelFormat.Flags&pfFourCC != 0 && h.PixelFormat.FourCC == fccDX10 {
		if len(data) < dx10HdrSize {
			return nil, ErrTruncated
		}
		var dh dx10Header
		if err := binary.Read(bytes.NewReader(data[:dx10HdrSize]), binary.LittleEndian, &dh); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		data = data[dx10HdrSize:]
		ifmt = format.InternalFormat(dh.DXGIFormat)
		if dh.ArraySize > 0 {
			arrayLen = int(dh.ArraySize)
		}
		isCubemap = dh.MiscFlag&miscFlagTextureCube != 0
		isVolume = dh.ResourceDimension == resourceDimTexture3D
		if isVolume && arrayLen != 1 {
			return nil, fmt.Errorf("%w: 3-D texture with array size %d", ErrMalformedHeader, arrayLen)
		}
		if m := dh.MiscFlags2 & 7; m <= uint32(format.AlphaCustom) {
			alphaMode = format.AlphaMode(m)
		}
	} else {
		var err error
		ifmt, err = legacyFormat(h.PixelFormat)
		if err != nil {
			return nil, err
		}
		alphaMode = alphaModeFor(h.PixelFormat, ifmt)
	}

	if ifmt == format.Unknown {
		return nil, ErrUnsupportedFormat
	}

	width, height, depth := int(h.Width), int(h.Height), 1
	if isVolume {
		depth = int(h.Depth)
		if depth < 1 {
			depth = 1
		}
	}
	if width <= 0 || height <= 0 {
		return nil, ErrMalformedHeader
	}
	if format.IsCompressed(ifmt) && (width%4 != 0 || height%4 != 0) {
		return nil, fmt.Errorf("%w: %dx%d is not a multiple of 4 for %v", ErrUnsupportedFeature, width, height, ifmt)
	}
	mipCount := 1
	if h.Flags&flagMipmapCount != 0 && h.MipMapCount > 0 {
		mipCount = int(h.MipMapCount)
	}

	faces := texture.CubeFaces{}
	if isCubemap {
		faces.Mask = (h.Caps2 >> 10) & 0x3f
		for m := faces.Mask; m != 0; m &= m - 1 {
			faces.Num++
		}
		if faces.Num == 0 {
			faces.Num = 6
			faces.Mask = 0x3f
		}
	}

	tex := &texture.Texture{
		Memory:     data,
		Width:      width,
		Height:     height,
		Depth:      depth,
		NMipLevels: mipCount,
		ArrayLen:   arrayLen,
		IFormat:    ifmt,
		AlphaMode:  alphaMode,
		IsVolume:   isVolume,
		CubeFaces:  faces,
	}

	required, err := totalImageBytes(tex)
	if err != nil {
		return nil, err
	}
	if len(data) < required {
		return nil, fmt.Errorf("%w: need %d bytes of pixel data, have %d", ErrTruncated, required, len(data))
	}
	tex.Memory = data[:required]
	return tex, nil
}

// totalImageBytes sums the mip-chain size across every array slot and
// cube face the header declares, used both to size Texture.Memory and
// to validate the file isn't truncated.
func totalImageBytes(tex *texture.Texture) (int, error) {
	slices := tex.ArrayLen
	if slices == 0 {
		slices = 1
	}
	if tex.CubeFaces.Num > 0 {
		slices *= tex.CubeFaces.Num
	}
	mips, err := tex.GetMipmaps(0, 0)
	if err != nil {
		return 0, err
	}
	sliceBytes := 0
	for _, m := range mips {
		sliceBytes += m.NBytes
	}
	return sliceBytes * slices, nil
}

// legacyFormat maps a pre-DX10 pixel-format block to an InternalFormat,
// covering the common FourCC codes, uncompressed RGB/alpha/luminance
// layouts, and the handful of single-byte legacy D3DFORMAT codes that
// some encoders still emit in the FourCC field.
func legacyFormat(pf pixelFormat) (format.InternalFormat, error) {
	if pf.Flags&pfFourCC != 0 {
		switch pf.FourCC {
		case fccDXT1:
			return format.BC1UNorm, nil
		case fccDXT2, fccDXT3:
			return format.BC2UNorm, nil
		case fccDXT4, fccDXT5:
			return format.BC3UNorm, nil
		case fccATI1, fccBC4U:
			return format.BC4UNorm, nil
		case fccBC4S:
			return format.BC4SNorm, nil
		case fccATI2, fccBC5U:
			return format.BC5UNorm, nil
		case fccBC5S:
			return format.BC5SNorm, nil
		}
		switch pf.FourCC {
		case 0x24:
			return format.R16G16B16A16UNorm, nil
		case 0x6E:
			return format.R16G16B16A16SNorm, nil
		case 0x6F:
			return format.R16Float, nil
		case 0x70:
			return format.R16G16Float, nil
		case 0x71:
			return format.R16G16B16A16Float, nil
		case 0x72:
			return format.R32Float, nil
		case 0x73:
			return format.R32G32Float, nil
		case 0x74:
			return format.R32G32B32A32Float, nil
		}
		return format.Unknown, fmt.Errorf("%w: FourCC %#08x", ErrUnsupportedFormat, pf.FourCC)
	}

	switch {
	case pf.Flags&pfRGB != 0 && pf.Flags&pfAlphaPixels != 0 && pf.RGBBitCount == 32 &&
		pf.RBitMask == 0xff0000 && pf.GBitMask == 0xff00 && pf.BBitMask == 0xff && pf.ABitMask == 0xff000000:
		return format.B8G8R8A8UNorm, nil
	case pf.Flags&pfRGB != 0 && pf.RGBBitCount == 32 &&
		pf.RBitMask == 0xff0000 && pf.GBitMask == 0xff00 && pf.BBitMask == 0xff:
		return format.B8G8R8X8UNorm, nil
	case pf.Flags&pfRGB != 0 && pf.RGBBitCount == 16 &&
		pf.RBitMask == 0xf800 && pf.GBitMask == 0x7e0 && pf.BBitMask == 0x1f:
		return format.B5G6R5UNorm, nil
	case pf.Flags&pfRGB != 0 && pf.Flags&pfAlphaPixels != 0 && pf.RGBBitCount == 16 &&
		pf.RBitMask == 0x7c00 && pf.GBitMask == 0x3e0 && pf.BBitMask == 0x1f:
		return format.B5G5R5A1UNorm, nil
	case pf.Flags&pfLuminance != 0 && pf.RGBBitCount == 8:
		return format.R8UNorm, nil
	case pf.Flags&pfLuminance != 0 && pf.RGBBitCount == 16:
		return format.R8G8UNorm, nil
	case pf.Flags&pfAlpha != 0 && pf.RGBBitCount == 8:
		return format.A8UNorm, nil
	case pf.Flags&pfBumpDUDV != 0 && pf.RGBBitCount == 16:
		return format.R8G8SNorm, nil
	case pf.Flags&pfBumpDUDV != 0 && pf.RGBBitCount == 32:
		return format.R8G8B8A8SNorm, nil
	}
	return format.Unknown, fmt.Errorf("%w: uncompressed pixel format flags %#x bitcount %d", ErrUnsupportedFormat, pf.Flags, pf.RGBBitCount)
}

func alphaModeFor(pf pixelFormat, f format.InternalFormat) format.AlphaMode {
	switch f {
	case format.BC1UNorm, format.BC1UNormSRGB, format.BC1Typeless:
		if pf.Flags&pfAlphaPixels != 0 {
			return format.AlphaStraight
		}
		return format.AlphaOpaque
	case format.BC2UNorm, format.BC3UNorm:
		return format.AlphaStraight
	case format.BC4UNorm, format.BC4SNorm, format.BC4Typeless:
		return format.AlphaOpaque
	}
	if pf.Flags&pfAlphaPixels == 0 && pf.ABitMask == 0 {
		return format.AlphaOpaque
	}
	return format.AlphaStraight
}
