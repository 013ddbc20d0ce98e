package format

// bc7ModeInfo describes one BC7 mode's block layout: number of color
// subsets (ns), partition-id field width (pb), whether a rotation field
// is present (rotation), whether an index-selection bit chooses which
// index stream feeds color vs alpha (indexSel), the per-channel color
// bit depth (cb), the alpha bit depth (ab, 0 if the mode carries no
// alpha), whether per-endpoint P-bits are present (epb) or a single
// shared P-bit per subset (spb), and the primary/secondary index
// widths (ib, ib2).
type bc7ModeInfo struct {
	ns       int
	pb       int
	rotation bool
	indexSel bool
	cb       int
	ab       int
	epb      bool
	spb      bool
	ib       int
	ib2      int
}

// bc7Modes is indexed by mode number 0-7, the position of the first set
// bit in the block's first byte.
var bc7Modes = [8]bc7ModeInfo{
	0: {ns: 3, pb: 4, cb: 4, ab: 0, epb: true, ib: 3},
	1: {ns: 2, pb: 6, cb: 6, ab: 0, spb: true, ib: 3},
	2: {ns: 3, pb: 6, cb: 5, ab: 0, ib: 2},
	3: {ns: 2, pb: 6, cb: 7, ab: 0, epb: true, ib: 2},
	4: {ns: 1, pb: 0, rotation: true, indexSel: true, cb: 5, ab: 6, ib: 2, ib2: 3},
	5: {ns: 1, pb: 0, rotation: true, cb: 7, ab: 8, ib: 2, ib2: 2},
	6: {ns: 1, pb: 0, cb: 7, ab: 7, epb: true, ib: 4},
	7: {ns: 2, pb: 6, cb: 5, ab: 5, epb: true, ib: 2},
}
