package format

import (
	"github.com/darkuranium/tctex-go/pkg/bitio"
	"github.com/darkuranium/tctex-go/pkg/colorutil"
)

// DecodeBC7Block decodes one 16-byte BC7 block into a 4x4 RGBA region
// of dst (4 bytes per texel, stride/pitch in bytes).
//
// A first header byte of zero (no mode bit set) is not a valid BC7
// encoding; it decodes as an all-zero, fully-transparent block.
func DecodeBC7Block(dst []byte, stride, pitch int, block []byte) {
	mode := -1
	for m := 0; m < 8; m++ {
		if block[0]&(1<<uint(m)) != 0 {
			mode = m
			break
		}
	}
	if mode < 0 {
		zeroBC7(dst, stride, pitch)
		return
	}
	info := bc7Modes[mode]
	pos := mode + 1

	partID := 0
	if info.pb > 0 {
		partID = int(bitio.GetBits(block, pos, info.pb))
		pos += info.pb
	}

	rotation := 0
	if info.rotation {
		rotation = int(bitio.GetBits(block, pos, 2))
		pos += 2
	}
	indexSel := false
	if info.indexSel {
		indexSel = bitio.GetBits(block, pos, 1) != 0
		pos++
	}

	ns := info.ns
	ne := 2 * ns
	type rgba struct{ r, g, b, a uint32 }
	ep := make([]rgba, ne)

	readComponent := func(width int, set func(i int, v uint32)) {
		for i := 0; i < ne; i++ {
			v := bitio.GetBits(block, pos, width)
			pos += width
			set(i, v)
		}
	}
	readComponent(info.cb, func(i int, v uint32) { ep[i].r = v })
	readComponent(info.cb, func(i int, v uint32) { ep[i].g = v })
	readComponent(info.cb, func(i int, v uint32) { ep[i].b = v })
	if info.ab > 0 {
		readComponent(info.ab, func(i int, v uint32) { ep[i].a = v })
	}

	colorWidth, alphaWidth := info.cb, info.ab

	switch {
	case info.epb:
		pbits := make([]uint32, ne)
		for i := range pbits {
			pbits[i] = bitio.GetBits(block, pos, 1)
			pos++
		}
		for i := range ep {
			ep[i].r = ep[i].r<<1 | pbits[i]
			ep[i].g = ep[i].g<<1 | pbits[i]
			ep[i].b = ep[i].b<<1 | pbits[i]
			if info.ab > 0 {
				ep[i].a = ep[i].a<<1 | pbits[i]
			}
		}
		colorWidth++
		if info.ab > 0 {
			alphaWidth++
		}
	case info.spb:
		pbits := make([]uint32, ns)
		for s := range pbits {
			pbits[s] = bitio.GetBits(block, pos, 1)
			pos++
		}
		for i := range ep {
			p := pbits[i/2]
			ep[i].r = ep[i].r<<1 | p
			ep[i].g = ep[i].g<<1 | p
			ep[i].b = ep[i].b<<1 | p
			if info.ab > 0 {
				ep[i].a = ep[i].a<<1 | p
			}
		}
		colorWidth++
		if info.ab > 0 {
			alphaWidth++
		}
	}

	for i := range ep {
		ep[i].r = uint32(colorutil.Expand8(ep[i].r, colorWidth))
		ep[i].g = uint32(colorutil.Expand8(ep[i].g, colorWidth))
		ep[i].b = uint32(colorutil.Expand8(ep[i].b, colorWidth))
		if info.ab > 0 {
			ep[i].a = uint32(colorutil.Expand8(ep[i].a, alphaWidth))
		} else {
			ep[i].a = 0xff
		}
	}

	pattern, anchor1, anchor2 := bc7Pattern(ns, partID)

	primary := readIndexStream(block, &pos, info.ib, pattern, anchor1, anchor2)
	var secondary []uint32
	if info.ib2 > 0 {
		secondary = readIndexStream(block, &pos, info.ib2, nil, -1, -1)
	}

	colorIdx, alphaIdx := primary, secondary
	colorIB, alphaIB := info.ib, info.ib2
	if indexSel {
		colorIdx, alphaIdx = secondary, primary
		colorIB, alphaIB = info.ib2, info.ib
	}

	for texel := 0; texel < 16; texel++ {
		subset := 0
		if pattern != nil {
			subset = int(pattern[texel])
		}
		e0, e1 := ep[2*subset], ep[2*subset+1]

		cw := weightTable(colorIB)[colorIdx[texel]]
		r := colorutil.Interpolate64(e0.r, e1.r, cw)
		g := colorutil.Interpolate64(e0.g, e1.g, cw)
		b := colorutil.Interpolate64(e0.b, e1.b, cw)

		var a uint32
		if info.ab == 0 {
			a = 0xff
		} else if alphaIdx != nil {
			aw := weightTable(alphaIB)[alphaIdx[texel]]
			a = colorutil.Interpolate64(e0.a, e1.a, aw)
		} else {
			a = colorutil.Interpolate64(e0.a, e1.a, cw)
		}

		switch rotation {
		case 1:
			r, a = a, r
		case 2:
			g, a = a, g
		case 3:
			b, a = a, b
		}

		off := texel/4*pitch + texel%4*stride
		dst[off+0] = byte(r)
		dst[off+1] = byte(g)
		dst[off+2] = byte(b)
		dst[off+3] = byte(a)
	}
}

// bc7Pattern resolves the per-texel subset table and anchor texel
// indices for the given subset count and partition id. For ns == 1 the
// pattern is nil (every texel is subset 0) and only the texel-0 anchor
// applies.
func bc7Pattern(ns, partID int) (pattern *[16]uint8, anchor1, anchor2 int) {
	switch ns {
	case 2:
		return &partitions2[partID], anchors2[partID], -1
	case 3:
		return &partitions3[partID], anchors3[0][partID], anchors3[1][partID]
	default:
		return nil, -1, -1
	}
}

// readIndexStream reads one 4x4 plane of index values, honoring the
// anchor-texel bit-width reduction (the implicit top bit of an anchor
// texel's index is always 0 and is not stored).
func readIndexStream(block []byte, pos *int, width int, pattern *[16]uint8, anchor1, anchor2 int) []uint32 {
	idx := make([]uint32, 16)
	for texel := 0; texel < 16; texel++ {
		subset := 0
		if pattern != nil {
			subset = int(pattern[texel])
		}
		isAnchor := texel == 0 || (subset == 1 && texel == anchor1) || (subset == 2 && texel == anchor2)
		w := width
		if isAnchor {
			w--
		}
		idx[texel] = bitio.GetBits(block, *pos, w)
		*pos += w
	}
	return idx
}

func zeroBC7(dst []byte, stride, pitch int) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			off := y*pitch + x*stride
			dst[off+0] = 0
			dst[off+1] = 0
			dst[off+2] = 0
			dst[off+3] = 0
		}
	}
}
