package archive

import (
	"bytes"
	"testing"

	"github.com/darkuranium/tctex-go/pkg/format"
)

func TestHeader(t *testing.T) {
	t.Run("MarshalUnmarshal", func(t *testing.T) {
		original := &Header{
			Magic:            Magic,
			HeaderLength:     16,
			Length:           1024,
			CompressedLength: 512,
		}

		data, err := original.MarshalBinary()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		decoded := &Header{}
		if err := decoded.UnmarshalBinary(data); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		if *decoded != *original {
			t.Errorf("mismatch: got %+v, want %+v", decoded, original)
		}
	})

	t.Run("InvalidMagic", func(t *testing.T) {
		h := &Header{
			Magic:            [4]byte{0x00, 0x00, 0x00, 0x00},
			HeaderLength:     16,
			Length:           1024,
			CompressedLength: 512,
		}
		if err := h.Validate(); err == nil {
			t.Error("expected error for invalid magic")
		}
	})

	t.Run("ZeroLength", func(t *testing.T) {
		h := &Header{
			Magic:            Magic,
			HeaderLength:     16,
			Length:           0,
			CompressedLength: 512,
		}
		if err := h.Validate(); err == nil {
			t.Error("expected error for zero length")
		}
	})
}

func TestReadWrite(t *testing.T) {
	original := []byte("Hello, World! This is test data for compression.")

	t.Run("EncodeDecodeRoundTrip", func(t *testing.T) {
		var buf bytes.Buffer

		ws := &seekableBuffer{Buffer: &buf}

		if err := Encode(ws, original); err != nil {
			t.Fatalf("encode: %v", err)
		}

		rs := bytes.NewReader(buf.Bytes())
		decoded, err := ReadAll(rs)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		if !bytes.Equal(decoded, original) {
			t.Errorf("data mismatch: got %q, want %q", decoded, original)
		}
	})

	t.Run("RoundTripsEncodedBC1Payload", func(t *testing.T) {
		// A real headerless BC1 payload (one 8-byte block, opaque red),
		// the kind of texture payload this archive format actually
		// carries, rather than an arbitrary byte string.
		c0 := uint16(0x1f) << 11 // red, RGB565
		payload := []byte{
			byte(c0), byte(c0 >> 8),
			0, 0, // c1 = black
			0, 0, 0, 0, // every index 0 -> c0
		}

		var buf bytes.Buffer
		ws := &seekableBuffer{Buffer: &buf}
		if err := Encode(ws, payload); err != nil {
			t.Fatalf("encode: %v", err)
		}

		decoded, err := ReadAll(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !bytes.Equal(decoded, payload) {
			t.Fatalf("payload mismatch: got %x, want %x", decoded, payload)
		}

		dst := make([]byte, 4*4*3)
		format.DecodeBC1Block(dst, 3, 12, decoded, true, false)
		if dst[0] != 0xff || dst[1] != 0 || dst[2] != 0 {
			t.Errorf("decoded texel 0 = %v, want opaque red", dst[0:3])
		}
	})
}

type seekableBuffer struct {
	*bytes.Buffer
	pos int64
}

func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case 0:
		newPos = offset
	case 1:
		newPos = s.pos + offset
	case 2:
		newPos = int64(s.Buffer.Len()) + offset
	}
	s.pos = newPos
	return newPos, nil
}

func (s *seekableBuffer) Write(p []byte) (n int, err error) {
	for int64(s.Buffer.Len()) < s.pos {
		s.Buffer.WriteByte(0)
	}
	if s.pos < int64(s.Buffer.Len()) {
		data := s.Buffer.Bytes()
		n = copy(data[s.pos:], p)
		if n < len(p) {
			m, err := s.Buffer.Write(p[n:])
			n += m
			if err != nil {
				return n, err
			}
		}
	} else {
		n, err = s.Buffer.Write(p)
	}
	s.pos += int64(n)
	return n, err
}
