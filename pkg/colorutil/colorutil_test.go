package colorutil

import (
	"math"
	"testing"
)

func TestExpand8(t *testing.T) {
	cases := []struct {
		v, bits int
		want    uint8
	}{
		{0, 5, 0},
		{0x1f, 5, 0xff},
		{0, 6, 0},
		{0x3f, 6, 0xff},
		{0xf, 4, 0xff},
	}
	for _, c := range cases {
		if got := Expand8(uint32(c.v), c.bits); got != c.want {
			t.Errorf("Expand8(%#x, %d) = %#x, want %#x", c.v, c.bits, got, c.want)
		}
	}
}

func TestSignExtend16(t *testing.T) {
	t.Run("PositiveStaysPositive", func(t *testing.T) {
		if got := SignExtend16(0x3f, 7); got != 0x3f {
			t.Errorf("got %d, want 63", got)
		}
	})
	t.Run("NegativeSignBitExtends", func(t *testing.T) {
		if got := SignExtend16(0x7f, 7); got != -1 {
			t.Errorf("got %d, want -1", got)
		}
	})
}

func TestFloatFromHalf(t *testing.T) {
	cases := []struct {
		h    uint16
		want float32
	}{
		{0x0000, 0},
		{0x3c00, 1.0},
		{0xbc00, -1.0},
		{0x4000, 2.0},
	}
	for _, c := range cases {
		if got := FloatFromHalf(c.h); got != c.want {
			t.Errorf("FloatFromHalf(%#04x) = %v, want %v", c.h, got, c.want)
		}
	}

	t.Run("Infinity", func(t *testing.T) {
		if got := FloatFromHalf(0x7c00); !math.IsInf(float64(got), 1) {
			t.Errorf("got %v, want +Inf", got)
		}
	})
	t.Run("NaN", func(t *testing.T) {
		if got := FloatFromHalf(0x7e00); !math.IsNaN(float64(got)) {
			t.Errorf("got %v, want NaN", got)
		}
	})
}

func TestSRGBRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v += 17 {
		lin := LinearFromSRGB(uint8(v))
		back := SRGBFromLinear(lin)
		diff := int(back) - v
		if diff < -1 || diff > 1 {
			t.Errorf("round trip for %d produced %d (linear=%v)", v, back, lin)
		}
	}
}

func TestInterpolate64Endpoints(t *testing.T) {
	if got := Interpolate64(10, 20, 0); got != 10 {
		t.Errorf("weight 0: got %d, want 10", got)
	}
	if got := Interpolate64(10, 20, 64); got != 20 {
		t.Errorf("weight 64: got %d, want 20", got)
	}
}
