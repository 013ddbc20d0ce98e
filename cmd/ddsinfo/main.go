// Command ddsinfo loads a DDS texture and prints its header fields and
// mip-level layout, optionally decoding one mip level to a raw RGBA or
// RGB-half-float dump.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/darkuranium/tctex-go/pkg/archive"
	"github.com/darkuranium/tctex-go/pkg/dds"
	"github.com/darkuranium/tctex-go/pkg/format"
	"github.com/darkuranium/tctex-go/pkg/texture"
)

var (
	fromArchive bool
	dumpMip     int
	dumpPath    string
)

func init() {
	flag.BoolVar(&fromArchive, "zstd", false, "input is a zstd-compressed archive (see pkg/archive) wrapping a .dds file")
	flag.IntVar(&dumpMip, "dump-mip", -1, "decode this mip level (0-based) and write it to -dump-out")
	flag.StringVar(&dumpPath, "dump-out", "", "output path for -dump-mip; required when -dump-mip is set")
}

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: ddsinfo [options] <file.dds>")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	path := flag.Arg(0)
	tex, err := loadTexture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ddsinfo: %v\n", err)
		os.Exit(1)
	}

	printInfo(tex)

	if dumpMip >= 0 {
		if dumpPath == "" {
			fmt.Fprintln(os.Stderr, "ddsinfo: -dump-out is required with -dump-mip")
			os.Exit(1)
		}
		if err := dumpMipLevel(tex, dumpMip, dumpPath); err != nil {
			fmt.Fprintf(os.Stderr, "ddsinfo: %v\n", err)
			os.Exit(1)
		}
	}
}

func loadTexture(path string) (*texture.Texture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if fromArchive {
		data, err = archive.ReadAll(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}
	return dds.Load(data)
}

func printInfo(tex *texture.Texture) {
	fmt.Printf("Format:      %v\n", tex.IFormat)
	fmt.Printf("Dimensions:  %dx%dx%d\n", tex.Width, tex.Height, tex.Depth)
	fmt.Printf("Mip levels:  %d\n", tex.NMipLevels)
	fmt.Printf("Array size:  %d\n", tex.ArrayLen)
	fmt.Printf("Volume:      %v\n", tex.IsVolume)
	fmt.Printf("Cube faces:  %d (mask %#02x)\n", tex.CubeFaces.Num, tex.CubeFaces.Mask)
	fmt.Printf("Alpha mode:  %v\n", tex.AlphaMode)

	mips, err := tex.GetMipmaps(0, 0)
	if err != nil {
		fmt.Printf("mip layout error: %v\n", err)
		return
	}
	fmt.Printf("\n%-4s %-12s %-10s %-10s\n", "Mip", "Size", "Bytes", "RowPitch")
	for i, m := range mips {
		fmt.Printf("%-4d %-12s %-10d %-10d\n", i, fmt.Sprintf("%dx%dx%d", m.Width, m.Height, m.Depth), m.NBytes, m.PitchY)
	}
}

func dumpMipLevel(tex *texture.Texture, level int, path string) error {
	mips, err := tex.GetMipmaps(level+1, 0)
	if err != nil {
		return err
	}
	if level >= len(mips) {
		return fmt.Errorf("mip %d out of range (have %d)", level, len(mips))
	}
	mip := mips[level]

	if tex.IFormat == format.BC6HUF16 || tex.IFormat == format.BC6HSF16 || tex.IFormat == format.BC6HTypeless {
		stride, pitch := 3, mip.Width*3
		dst := make([]uint16, mip.Width*mip.Height*3)
		if err := texture.DecodeImageHalf(tex, mip, dst, stride, pitch); err != nil {
			return err
		}
		return writeUint16(path, dst)
	}

	stride, pitch := 4, mip.Width*4
	dst := make([]byte, mip.Width*mip.Height*4)
	if err := texture.DecodeImage(tex, mip, dst, stride, pitch); err != nil {
		return err
	}
	return os.WriteFile(path, dst, 0644)
}

func writeUint16(path string, data []uint16) error {
	buf := make([]byte, len(data)*2)
	for i, v := range data {
		buf[2*i] = byte(v)
		buf[2*i+1] = byte(v >> 8)
	}
	return os.WriteFile(path, buf, 0644)
}
