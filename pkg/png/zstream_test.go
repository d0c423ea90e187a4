package png

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"

	kzlib "github.com/klauspost/compress/zlib"
)

// inflateStd decodes a zlib stream with the standard library.
func inflateStd(t *testing.T, stream []byte) []byte {
	t.Helper()
	r, err := zlib.NewReader(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("zlib.NewReader failed: %v", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("inflate failed: %v", err)
	}
	return out
}

// inflateKlauspost decodes the same stream with an independent inflater.
func inflateKlauspost(t *testing.T, stream []byte) []byte {
	t.Helper()
	r, err := kzlib.NewReader(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("kzlib.NewReader failed: %v", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("inflate failed: %v", err)
	}
	return out
}

func TestZlibStored_RoundTrip(t *testing.T) {
	sizes := []int{0, 1, 14, 100, maxStoredBlock - 1, maxStoredBlock, maxStoredBlock + 1, 3 * maxStoredBlock, 200000}

	for _, size := range sizes {
		raw := make([]byte, size)
		for i := range raw {
			raw[i] = byte(i * 7)
		}

		stream := zlibStored(raw)

		if got := inflateStd(t, stream); !bytes.Equal(got, raw) {
			t.Errorf("size %d: stdlib inflate mismatch (%d bytes out)", size, len(got))
		}
		if got := inflateKlauspost(t, stream); !bytes.Equal(got, raw) {
			t.Errorf("size %d: klauspost inflate mismatch (%d bytes out)", size, len(got))
		}
	}
}

func TestZlibStored_Header(t *testing.T) {
	stream := zlibStored([]byte{1, 2, 3})
	if stream[0] != 0x78 || stream[1] != 0x01 {
		t.Errorf("stream header = %02X %02X, want 78 01", stream[0], stream[1])
	}
}

func TestZlibStored_SingleBlockLayout(t *testing.T) {
	// 14 bytes: the scanline buffer of a 2x2 red image.
	raw := []byte{0, 255, 0, 0, 255, 0, 0, 0, 255, 0, 0, 255, 0, 0}

	stream := zlibStored(raw)

	want := []byte{0x78, 0x01, 0x01, 0x0E, 0x00, 0xF1, 0xFF}
	want = append(want, raw...)
	a := Adler32(raw)
	want = append(want, byte(a>>24), byte(a>>16), byte(a>>8), byte(a))

	if !bytes.Equal(stream, want) {
		t.Errorf("stream = % X, want % X", stream, want)
	}
}

func TestZlibStored_Empty(t *testing.T) {
	// Empty input still yields one empty final block and the Adler-32 of
	// nothing (1).
	want := []byte{0x78, 0x01, 0x01, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x01}

	if got := zlibStored(nil); !bytes.Equal(got, want) {
		t.Errorf("stream = % X, want % X", got, want)
	}
}

func TestZlibStored_SplitsLargeInput(t *testing.T) {
	raw := make([]byte, maxStoredBlock+1)

	stream := zlibStored(raw)

	blocks := storedBlocks(t, stream)
	if blocks != 2 {
		t.Errorf("expected 2 stored blocks, got %d", blocks)
	}
}

// storedBlocks walks the deflate data of a stored-only stream and counts
// its blocks, checking the length complement of each header on the way.
func storedBlocks(t *testing.T, stream []byte) int {
	t.Helper()

	pos := 2 // skip the zlib header
	count := 0
	for {
		if pos+5 > len(stream) {
			t.Fatalf("truncated block header at offset %d", pos)
		}
		final := stream[pos]
		n := int(stream[pos+1]) | int(stream[pos+2])<<8
		comp := int(stream[pos+3]) | int(stream[pos+4])<<8
		if comp != int(^uint16(n)) {
			t.Fatalf("block %d: complement 0x%04X does not match length 0x%04X", count, comp, n)
		}
		pos += 5 + n
		count++
		if final&1 == 1 {
			break
		}
		if final != 0 {
			t.Fatalf("block %d: unexpected header byte 0x%02X", count, final)
		}
	}

	if rest := len(stream) - pos; rest != 4 {
		t.Fatalf("expected a 4-byte trailer after the final block, got %d bytes", rest)
	}
	return count
}
