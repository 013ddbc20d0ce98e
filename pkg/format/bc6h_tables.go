package format

// bc6hModeInfo describes one BC6H mode's header layout: whether
// non-base endpoints are delta-encoded against endpoint 0 (Tr), how
// many bits the partition-set-id field occupies (PB, 0 or 5), the bit
// width of the base endpoint (EPB), and the per-channel field width
// (DB) of each non-base endpoint as stored in the bitstream (used both
// to size the raw field and, when a delta, as the sign-extension
// width before the value is added back onto the base).
type bc6hModeInfo struct {
	tr  bool
	pb  int
	epb int
	db  [3]int
}

// bc6hModes holds the fourteen active BC6H modes keyed by their
// mode-selector value: a 2-bit value (folded from the low bit of the
// 5-bit selector whenever its second bit is clear) for modes 0 and 1,
// and the full 5-bit selector otherwise. Values are taken directly
// from the reference mode table, indexed by mode-selector value, not
// by position in a compacted list. Selector values absent from this
// map — 19, 23, 27, 31 plus every other 5-bit value with its second
// bit set that isn't listed below — are reserved and decode as an
// all-zero block.
var bc6hModes = map[int]bc6hModeInfo{
	0:  {tr: true, pb: 5, epb: 10, db: [3]int{5, 5, 5}},
	1:  {tr: true, pb: 5, epb: 7, db: [3]int{6, 6, 6}},
	2:  {tr: true, pb: 5, epb: 11, db: [3]int{5, 4, 4}},
	3:  {tr: false, pb: 0, epb: 10, db: [3]int{10, 10, 10}},
	6:  {tr: true, pb: 5, epb: 11, db: [3]int{4, 5, 4}},
	7:  {tr: true, pb: 0, epb: 11, db: [3]int{9, 9, 9}},
	10: {tr: true, pb: 5, epb: 11, db: [3]int{4, 4, 5}},
	11: {tr: true, pb: 0, epb: 12, db: [3]int{8, 8, 8}},
	14: {tr: true, pb: 5, epb: 9, db: [3]int{5, 5, 5}},
	15: {tr: true, pb: 0, epb: 16, db: [3]int{4, 4, 4}},
	18: {tr: true, pb: 5, epb: 8, db: [3]int{6, 5, 5}},
	22: {tr: true, pb: 5, epb: 8, db: [3]int{5, 6, 5}},
	26: {tr: true, pb: 5, epb: 8, db: [3]int{5, 5, 6}},
	30: {tr: false, pb: 5, epb: 6, db: [3]int{6, 6, 6}},
}
