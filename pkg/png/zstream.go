package png

import (
	"bytes"
	"encoding/binary"
)

// maxStoredBlock is the deflate limit for a single non-compressed block.
const maxStoredBlock = 65535

// zlibHeader signals deflate with a 32KB window and no preset dictionary.
var zlibHeader = [2]byte{0x78, 0x01}

// zlibStored wraps raw bytes in a zlib stream built entirely from stored
// (uncompressed) deflate blocks, so any conforming inflater can decode it.
// Inputs larger than 65535 bytes are split across blocks; only the last
// block carries the final flag. Empty input still produces a stream with a
// single empty final block. The trailer is the big-endian Adler-32 of the
// whole input.
func zlibStored(raw []byte) []byte {
	buf := new(bytes.Buffer)
	buf.Grow(len(raw) + 5*(len(raw)/maxStoredBlock+1) + 6)
	buf.Write(zlibHeader[:])

	rest := raw
	for {
		n := len(rest)
		if n > maxStoredBlock {
			n = maxStoredBlock
		}

		// Block header: bit 0 is the final flag, bits 1-2 are the block
		// type (00 = stored).
		final := byte(0)
		if n == len(rest) {
			final = 1
		}
		buf.WriteByte(final)
		binary.Write(buf, binary.LittleEndian, uint16(n))
		binary.Write(buf, binary.LittleEndian, ^uint16(n))
		buf.Write(rest[:n])

		rest = rest[n:]
		if final == 1 {
			break
		}
	}

	binary.Write(buf, binary.BigEndian, Adler32(raw))
	return buf.Bytes()
}
