// Package format defines the normalized texture format enum and the BCn
// block decoders that operate on it.
package format

import "fmt"

// InternalFormat is a flat tag identifying a channel layout and sample
// type pair. Numeric values are chosen to match DXGI_FORMAT exactly so a
// DX10 DDS header's dxgiFormat field can be stored here without
// translation.
type InternalFormat uint32

const (
	Unknown InternalFormat = 0

	R32G32B32A32Typeless InternalFormat = 1
	R32G32B32A32Float    InternalFormat = 2
	R32G32B32A32UInt     InternalFormat = 3
	R32G32B32A32SInt     InternalFormat = 4

	R32G32B32Typeless InternalFormat = 5
	R32G32B32Float    InternalFormat = 6
	R32G32B32UInt     InternalFormat = 7
	R32G32B32SInt     InternalFormat = 8

	R16G16B16A16Typeless InternalFormat = 9
	R16G16B16A16Float    InternalFormat = 10
	R16G16B16A16UNorm    InternalFormat = 11
	R16G16B16A16UInt     InternalFormat = 12
	R16G16B16A16SNorm    InternalFormat = 13
	R16G16B16A16SInt     InternalFormat = 14

	R32G32Typeless InternalFormat = 15
	R32G32Float    InternalFormat = 16
	R32G32UInt     InternalFormat = 17
	R32G32SInt     InternalFormat = 18

	R32G8X24Typeless        InternalFormat = 19
	D32FloatS8X24UInt       InternalFormat = 20
	R32FloatX8X24Typeless   InternalFormat = 21
	X32TypelessG8X24UInt    InternalFormat = 22

	R10G10B10A2Typeless InternalFormat = 23
	R10G10B10A2UNorm    InternalFormat = 24
	R10G10B10A2UInt     InternalFormat = 25
	R11G11B10Float      InternalFormat = 26

	R8G8B8A8Typeless InternalFormat = 27
	R8G8B8A8UNorm    InternalFormat = 28
	R8G8B8A8UNormSRGB InternalFormat = 29
	R8G8B8A8UInt     InternalFormat = 30
	R8G8B8A8SNorm    InternalFormat = 31
	R8G8B8A8SInt     InternalFormat = 32

	R16G16Typeless InternalFormat = 33
	R16G16Float    InternalFormat = 34
	R16G16UNorm    InternalFormat = 35
	R16G16UInt     InternalFormat = 36
	R16G16SNorm    InternalFormat = 37
	R16G16SInt     InternalFormat = 38

	R32Typeless InternalFormat = 39
	D32Float    InternalFormat = 40
	R32Float    InternalFormat = 41
	R32UInt     InternalFormat = 42
	R32SInt     InternalFormat = 43

	R24G8Typeless        InternalFormat = 44
	D24UNormS8UInt       InternalFormat = 45
	R24UNormX8Typeless   InternalFormat = 46
	X24TypelessG8UInt    InternalFormat = 47

	R8G8Typeless InternalFormat = 48
	R8G8UNorm    InternalFormat = 49
	R8G8UInt     InternalFormat = 50
	R8G8SNorm    InternalFormat = 51
	R8G8SInt     InternalFormat = 52

	R16Typeless InternalFormat = 53
	R16Float    InternalFormat = 54
	D16UNorm    InternalFormat = 55
	R16UNorm    InternalFormat = 56
	R16UInt     InternalFormat = 57
	R16SNorm    InternalFormat = 58
	R16SInt     InternalFormat = 59

	R8Typeless InternalFormat = 60
	R8UNorm    InternalFormat = 61
	R8UInt     InternalFormat = 62
	R8SNorm    InternalFormat = 63
	R8SInt     InternalFormat = 64
	A8UNorm    InternalFormat = 65
	R1UNorm    InternalFormat = 66

	R9G9B9E5SharedExp InternalFormat = 67
	R8G8B8G8UNorm     InternalFormat = 68
	G8R8G8B8UNorm     InternalFormat = 69

	BC1Typeless  InternalFormat = 70
	BC1UNorm     InternalFormat = 71
	BC1UNormSRGB InternalFormat = 72
	BC2Typeless  InternalFormat = 73
	BC2UNorm     InternalFormat = 74
	BC2UNormSRGB InternalFormat = 75
	BC3Typeless  InternalFormat = 76
	BC3UNorm     InternalFormat = 77
	BC3UNormSRGB InternalFormat = 78
	BC4Typeless  InternalFormat = 79
	BC4UNorm     InternalFormat = 80
	BC4SNorm     InternalFormat = 81
	BC5Typeless  InternalFormat = 82
	BC5UNorm     InternalFormat = 83
	BC5SNorm     InternalFormat = 84

	B5G6R5UNorm   InternalFormat = 85
	B5G5R5A1UNorm InternalFormat = 86
	B8G8R8A8UNorm InternalFormat = 87
	B8G8R8X8UNorm InternalFormat = 88

	R10G10B10XRBiasA2UNorm InternalFormat = 89
	B8G8R8A8Typeless       InternalFormat = 90
	B8G8R8A8UNormSRGB      InternalFormat = 91
	B8G8R8X8Typeless       InternalFormat = 92
	B8G8R8X8UNormSRGB      InternalFormat = 93

	BC6HTypeless InternalFormat = 94
	BC6HUF16     InternalFormat = 95
	BC6HSF16     InternalFormat = 96
	BC7Typeless  InternalFormat = 97
	BC7UNorm     InternalFormat = 98
	BC7UNormSRGB InternalFormat = 99

	AYUV     InternalFormat = 100
	Y410     InternalFormat = 101
	Y416     InternalFormat = 102
	NV12     InternalFormat = 103
	P010     InternalFormat = 104
	P016     InternalFormat = 105
	Opaque420 InternalFormat = 106
	YUY2     InternalFormat = 107
	Y210     InternalFormat = 108
	Y216     InternalFormat = 109
	NV11     InternalFormat = 110
	AI44     InternalFormat = 111
	IA44     InternalFormat = 112
	P8       InternalFormat = 113
	A8P8     InternalFormat = 114

	B4G4R4A4UNorm InternalFormat = 115

	// 116-129 are reserved in the upstream enum this mirrors; no sample
	// in the wild emits them and this codec does not need named
	// constants for them.

	P208 InternalFormat = 130
	V208 InternalFormat = 131
	V408 InternalFormat = 132
)

var formatNames = map[InternalFormat]string{
	BC1Typeless: "BC1_TYPELESS", BC1UNorm: "BC1_UNORM", BC1UNormSRGB: "BC1_UNORM_SRGB",
	BC2Typeless: "BC2_TYPELESS", BC2UNorm: "BC2_UNORM", BC2UNormSRGB: "BC2_UNORM_SRGB",
	BC3Typeless: "BC3_TYPELESS", BC3UNorm: "BC3_UNORM", BC3UNormSRGB: "BC3_UNORM_SRGB",
	BC4Typeless: "BC4_TYPELESS", BC4UNorm: "BC4_UNORM", BC4SNorm: "BC4_SNORM",
	BC5Typeless: "BC5_TYPELESS", BC5UNorm: "BC5_UNORM", BC5SNorm: "BC5_SNORM",
	BC6HTypeless: "BC6H_TYPELESS", BC6HUF16: "BC6H_UF16", BC6HSF16: "BC6H_SF16",
	BC7Typeless: "BC7_TYPELESS", BC7UNorm: "BC7_UNORM", BC7UNormSRGB: "BC7_UNORM_SRGB",
	R8G8B8A8UNorm: "R8G8B8A8_UNORM", B8G8R8A8UNorm: "B8G8R8A8_UNORM", B8G8R8X8UNorm: "B8G8R8X8_UNORM",
	B5G6R5UNorm: "B5G6R5_UNORM", B5G5R5A1UNorm: "B5G5R5A1_UNORM",
	Unknown: "UNKNOWN",
}

// String renders f using its DXGI_FORMAT name when known, or its
// numeric value otherwise.
func (f InternalFormat) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("FORMAT(%d)", uint32(f))
}

func (m AlphaMode) String() string {
	switch m {
	case AlphaStraight:
		return "straight"
	case AlphaPremultiplied:
		return "premultiplied"
	case AlphaOpaque:
		return "opaque"
	case AlphaCustom:
		return "custom"
	}
	return "unknown"
}

// AlphaMode describes how a format's alpha channel, if any, should be
// interpreted.
type AlphaMode uint8

const (
	AlphaUnknown AlphaMode = iota
	AlphaStraight
	AlphaPremultiplied
	AlphaOpaque
	AlphaCustom
)

// IsCompressed reports whether f is one of the BC1-BC7 block-compressed
// formats this package can decode.
func IsCompressed(f InternalFormat) bool {
	switch f {
	case BC1Typeless, BC1UNorm, BC1UNormSRGB,
		BC2Typeless, BC2UNorm, BC2UNormSRGB,
		BC3Typeless, BC3UNorm, BC3UNormSRGB,
		BC4Typeless, BC4UNorm, BC4SNorm,
		BC5Typeless, BC5UNorm, BC5SNorm,
		BC6HTypeless, BC6HUF16, BC6HSF16,
		BC7Typeless, BC7UNorm, BC7UNormSRGB:
		return true
	}
	return false
}

// BlockBytes returns the number of input bytes one 4x4 block of f
// occupies, or 0 if f is not a recognized block-compressed format.
func BlockBytes(f InternalFormat) int {
	switch f {
	case BC1Typeless, BC1UNorm, BC1UNormSRGB,
		BC4Typeless, BC4UNorm, BC4SNorm:
		return 8
	case BC2Typeless, BC2UNorm, BC2UNormSRGB,
		BC3Typeless, BC3UNorm, BC3UNormSRGB,
		BC5Typeless, BC5UNorm, BC5SNorm,
		BC6HTypeless, BC6HUF16, BC6HSF16,
		BC7Typeless, BC7UNorm, BC7UNormSRGB:
		return 16
	}
	return 0
}
